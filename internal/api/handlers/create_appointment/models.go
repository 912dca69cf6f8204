package create_appointment

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/AppointEase/internal/domain"
	createBooking "github.com/m04kA/AppointEase/internal/usecase/create_booking"
	"github.com/m04kA/AppointEase/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID     string `json:"serviceId"`
	Date          string `json:"date"`      // "2025-10-15"
	StartTime     string `json:"startTime"` // "10:00"
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Notes         string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            string    `json:"id"`
	ServiceID     string    `json:"serviceId"`
	ServiceName   string    `json:"serviceName"`
	Date          string    `json:"date"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
}

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid start time")
)

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату в локальном часовом поясе
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &createBooking.Request{
		ServiceID: r.ServiceID,
		Date:      date,
		StartTime: startTime,
		Customer: domain.CustomerDetails{
			Name:  r.CustomerName,
			Email: r.CustomerEmail,
			Phone: r.CustomerPhone,
			Notes: r.Notes,
		},
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID,
		ServiceID:     resp.ServiceID,
		ServiceName:   resp.ServiceName,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime,
		EndTime:       resp.EndTime,
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		CustomerPhone: resp.CustomerPhone,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt,
	}
}
