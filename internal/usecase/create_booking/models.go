package create_booking

import (
	"time"

	"github.com/m04kA/AppointEase/internal/domain"
	"github.com/m04kA/AppointEase/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ServiceID string                 // ID услуги
	Date      time.Time              // Дата бронирования (время суток игнорируется)
	StartTime types.TimeString       // Время начала слота (например, "10:00")
	Customer  domain.CustomerDetails // Данные клиента
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string    // ID созданного бронирования
	ServiceID string    // ID услуги
	Date      time.Time // Дата бронирования
	StartTime time.Time // Начало
	EndTime   time.Time // Конец

	// Денормализованные данные
	ServiceName string // Название услуги

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string

	CreatedAt time.Time // Время создания
}

func newResponse(appt *domain.Appointment) *Response {
	return &Response{
		ID:            appt.ID,
		ServiceID:     appt.ServiceID,
		Date:          appt.Date,
		StartTime:     appt.StartTime,
		EndTime:       appt.EndTime,
		ServiceName:   appt.ServiceName,
		CustomerName:  appt.CustomerName,
		CustomerEmail: appt.CustomerEmail,
		CustomerPhone: appt.CustomerPhone,
		Notes:         appt.Notes,
		CreatedAt:     appt.CreatedAt,
	}
}
