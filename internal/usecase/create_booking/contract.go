package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/AppointEase/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	Count(ctx context.Context) (int, error)
}

// Catalog интерфейс каталога услуг
type Catalog interface {
	GetService(ctx context.Context, id string) (*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс метрик бронирования
type Metrics interface {
	IncBooking(outcome string)
	SetLedgerSize(n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// IDGenerator интерфейс генератора идентификаторов бронирований
type IDGenerator interface {
	NewID() string
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

// UUIDGenerator генерирует идентификаторы UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый UUID
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
