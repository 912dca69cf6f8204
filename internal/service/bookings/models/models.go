package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/AppointEase/internal/domain"
)

var (
	// ErrInvalidPeriod возвращается при некорректном периоде
	ErrInvalidPeriod = errors.New("invalid appointments period")

	// ErrInvalidSort возвращается при некорректном порядке сортировки
	ErrInvalidSort = errors.New("invalid appointments sort")
)

// Request модели

// ListAppointmentsRequest запрос на получение журнала бронирований
type ListAppointmentsRequest struct {
	Period string     `json:"period,omitempty"` // all, upcoming, past
	Date   *time.Time `json:"date,omitempty"`   // Календарная дата (опционально)
	Query  string     `json:"q,omitempty"`      // Строка поиска (опционально)
	Sort   string     `json:"sort,omitempty"`   // booking, start_time
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		Date:   r.Date,
		Search: r.Query,
	}

	switch period := domain.AppointmentPeriod(r.Period); period {
	case "", domain.PeriodAll:
		filter.Period = domain.PeriodAll
	case domain.PeriodUpcoming, domain.PeriodPast:
		filter.Period = period
	default:
		return filter, fmt.Errorf("%w: %q", ErrInvalidPeriod, r.Period)
	}

	switch sortBy := domain.AppointmentSort(r.Sort); sortBy {
	case "", domain.SortByBooking:
		filter.SortBy = domain.SortByBooking
	case domain.SortByStartTime:
		filter.SortBy = sortBy
	default:
		return filter, fmt.Errorf("%w: %q", ErrInvalidSort, r.Sort)
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными бронирования
type AppointmentResponse struct {
	ID          string    `json:"id"`
	ServiceID   string    `json:"serviceId"`
	ServiceName string    `json:"serviceName"`
	Date        string    `json:"date"` // "2025-10-15"
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Notes         string `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
}

// AppointmentListResponse ответ со списком бронирований
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// SummaryResponse счётчики журнала
type SummaryResponse struct {
	Total    int `json:"total"`
	Upcoming int `json:"upcoming"`
	Past     int `json:"past"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:            a.ID,
		ServiceID:     a.ServiceID,
		ServiceName:   a.ServiceName,
		Date:          a.Date.Format(domain.DateFormat),
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
		CustomerName:  a.CustomerName,
		CustomerEmail: a.CustomerEmail,
		CustomerPhone: a.CustomerPhone,
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments = append(resp.Appointments, *apptResp)
		}
	}

	return resp
}
