package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/AppointEase/internal/domain"
)

// MemoryRepository журнал бронирований в памяти процесса
// Хранит порядок добавления, индекс по ID и корзины по календарной дате
type MemoryRepository struct {
	mu           sync.RWMutex
	appointments []*domain.Appointment
	byID         map[string]*domain.Appointment
	byDate       map[string][]*domain.Appointment
}

// NewMemoryRepository создает пустой журнал
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		appointments: make([]*domain.Appointment, 0),
		byID:         make(map[string]*domain.Appointment),
		byDate:       make(map[string][]*domain.Appointment),
	}
}

// Create добавляет бронирование в конец журнала
func (r *MemoryRepository) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if err := validateAppointment(appt); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[appt.ID]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, appt.ID)
	}

	stored := clone(appt)
	key := dateKey(stored.Date)

	r.appointments = append(r.appointments, stored)
	r.byID[stored.ID] = stored
	r.byDate[key] = append(r.byDate[key], stored)

	return clone(stored), nil
}

// GetByID получает бронирование по ID
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appt, ok := r.byID[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	return clone(appt), nil
}

// GetByDate получает бронирования на календарную дату в порядке добавления
func (r *MemoryRepository) GetByDate(_ context.Context, date time.Time) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneAll(r.byDate[dateKey(date)]), nil
}

// List получает все бронирования в порядке добавления
func (r *MemoryRepository) List(_ context.Context) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneAll(r.appointments), nil
}

// Count возвращает количество бронирований в журнале
func (r *MemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.appointments), nil
}

// Delete удаляет бронирование из журнала
func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	appt, ok := r.byID[id]
	if !ok {
		return ErrAppointmentNotFound
	}

	delete(r.byID, id)
	r.appointments = without(r.appointments, id)

	key := dateKey(appt.Date)
	r.byDate[key] = without(r.byDate[key], id)
	if len(r.byDate[key]) == 0 {
		delete(r.byDate, key)
	}

	return nil
}

func without(list []*domain.Appointment, id string) []*domain.Appointment {
	result := make([]*domain.Appointment, 0, len(list))
	for _, appt := range list {
		if appt.ID != id {
			result = append(result, appt)
		}
	}
	return result
}

func validateAppointment(appt *domain.Appointment) error {
	if appt == nil {
		return fmt.Errorf("%w: nil appointment", ErrInvalidAppointment)
	}
	if appt.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidAppointment)
	}
	if !appt.StartTime.Before(appt.EndTime) {
		return fmt.Errorf("%w: start %s is not before end %s", ErrInvalidAppointment,
			appt.StartTime.Format(time.RFC3339), appt.EndTime.Format(time.RFC3339))
	}
	return nil
}

func dateKey(date time.Time) string {
	return date.Format(domain.DateFormat)
}

func clone(appt *domain.Appointment) *domain.Appointment {
	c := *appt
	return &c
}

func cloneAll(list []*domain.Appointment) []*domain.Appointment {
	result := make([]*domain.Appointment, len(list))
	for i, appt := range list {
		result[i] = clone(appt)
	}
	return result
}
