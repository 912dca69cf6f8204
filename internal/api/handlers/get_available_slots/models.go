package get_available_slots

import (
	"time"

	"github.com/m04kA/AppointEase/internal/domain"
	getAvailableSlots "github.com/m04kA/AppointEase/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date           string          `json:"date"`
	ServiceID      string          `json:"serviceId"`
	ServiceName    string          `json:"serviceName"`
	AvailableCount int             `json:"availableCount"`
	Slots          []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	ID              string    `json:"id"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	Label           string    `json:"label"` // "10:00"
	DurationMinutes int       `json:"durationMinutes"`
	Available       bool      `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			ID:              slot.ID,
			StartTime:       slot.StartTime,
			EndTime:         slot.EndTime,
			Label:           slot.StartTime.Format(domain.TimeFormat),
			DurationMinutes: slot.DurationMinutes(),
			Available:       slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		ServiceID:      resp.Service.ID,
		ServiceName:    resp.Service.Name,
		AvailableCount: resp.AvailableCount(),
		Slots:          slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
// Дата разбирается в локальном часовом поясе
func ToUseCaseRequest(serviceID, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	}, nil
}
