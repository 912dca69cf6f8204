package session

import (
	"context"
	"time"

	"github.com/m04kA/AppointEase/internal/domain"
	"github.com/m04kA/AppointEase/internal/usecase/create_booking"
	"github.com/m04kA/AppointEase/internal/usecase/get_available_slots"
)

// Catalog интерфейс каталога услуг
type Catalog interface {
	GetService(ctx context.Context, id string) (*domain.Service, error)
}

// SlotsUseCase интерфейс получения слотов услуги на дату
type SlotsUseCase interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// BookingUseCase интерфейс создания бронирования
type BookingUseCase interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
