package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/AppointEase/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByDate получает все бронирования на календарную дату
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// Catalog интерфейс каталога услуг
type Catalog interface {
	GetService(ctx context.Context, id string) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
