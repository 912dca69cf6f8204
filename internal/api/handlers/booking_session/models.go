package booking_session

import (
	"time"

	"github.com/m04kA/AppointEase/internal/domain"
	"github.com/m04kA/AppointEase/internal/service/session"
)

// SelectServiceRequest тело PUT /sessions/{id}/service
type SelectServiceRequest struct {
	ServiceID string `json:"serviceId"`
}

// SelectDateRequest тело PUT /sessions/{id}/date
type SelectDateRequest struct {
	Date string `json:"date"` // "2025-10-15"
}

// SelectSlotRequest тело PUT /sessions/{id}/slot
type SelectSlotRequest struct {
	StartTime string `json:"startTime"` // "10:00"
}

// ConfirmRequest тело POST /sessions/{id}/confirm
type ConfirmRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Notes         string `json:"notes,omitempty"`
}

// ToCustomer конвертирует тело запроса в данные клиента
func (r *ConfirmRequest) ToCustomer() domain.CustomerDetails {
	return domain.CustomerDetails{
		Name:  r.CustomerName,
		Email: r.CustomerEmail,
		Phone: r.CustomerPhone,
		Notes: r.Notes,
	}
}

// DraftResponse HTTP модель черновика
type DraftResponse struct {
	ID        string           `json:"id"`
	Service   *ServiceResponse `json:"service"`
	Date      string           `json:"date"`
	Slot      *SlotResponse    `json:"slot"`
	Complete  bool             `json:"complete"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// ServiceResponse выбранная услуга
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// SlotResponse выбранный слот
type SlotResponse struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Label     string    `json:"label"`
}

// FromDraft конвертирует черновик в HTTP response
func FromDraft(d *session.Draft) *DraftResponse {
	resp := &DraftResponse{
		ID:        d.ID,
		Date:      d.Date.Format(domain.DateFormat),
		Complete:  d.IsComplete(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}

	if d.Service != nil {
		resp.Service = &ServiceResponse{
			ID:              d.Service.ID,
			Name:            d.Service.Name,
			DurationMinutes: d.Service.DurationMinutes,
			Price:           d.Service.Price,
		}
	}

	if d.Slot != nil {
		resp.Slot = &SlotResponse{
			ID:        d.Slot.ID,
			StartTime: d.Slot.StartTime,
			EndTime:   d.Slot.EndTime,
			Label:     d.Slot.StartTime.Format(domain.TimeFormat),
		}
	}

	return resp
}
