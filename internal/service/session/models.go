package session

import (
	"time"

	"github.com/m04kA/AppointEase/internal/domain"
)

// Draft текущий выбор клиента до подтверждения бронирования
type Draft struct {
	ID        string
	Service   *domain.Service  // nil, пока услуга не выбрана
	Date      time.Time        // Выбранная дата, по умолчанию сегодня
	Slot      *domain.TimeSlot // nil, пока слот не выбран
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsComplete возвращает true, если выбраны услуга и слот
func (d *Draft) IsComplete() bool {
	return d.Service != nil && d.Slot != nil
}

func (d *Draft) clone() *Draft {
	c := *d
	if d.Service != nil {
		svc := *d.Service
		c.Service = &svc
	}
	if d.Slot != nil {
		slot := *d.Slot
		c.Slot = &slot
	}
	return &c
}
