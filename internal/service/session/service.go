package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/AppointEase/internal/domain"
	"github.com/m04kA/AppointEase/internal/service/catalog"
	"github.com/m04kA/AppointEase/internal/usecase/create_booking"
	"github.com/m04kA/AppointEase/internal/usecase/get_available_slots"
	"github.com/m04kA/AppointEase/pkg/types"
)

// Service хранит черновики выбора клиентов в памяти процесса
// Черновик проходит шаги: услуга, дата, слот, подтверждение
type Service struct {
	mu     sync.RWMutex
	drafts map[string]*Draft

	catalog      Catalog
	slots        SlotsUseCase
	booking      BookingUseCase
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(
	serviceCatalog Catalog,
	slots SlotsUseCase,
	booking BookingUseCase,
	logger Logger,
) *Service {
	return &Service{
		drafts:       make(map[string]*Draft),
		catalog:      serviceCatalog,
		slots:        slots,
		booking:      booking,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create создает пустой черновик на сегодняшнюю дату
func (s *Service) Create(_ context.Context) *Draft {
	now := s.timeProvider.Now()
	draft := &Draft{
		ID:        uuid.NewString(),
		Date:      domain.DateOnly(now),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.drafts[draft.ID] = draft
	s.mu.Unlock()

	s.logger.Info("Session: created draft id=%s", draft.ID)
	return draft.clone()
}

// Get возвращает копию черновика
func (s *Service) Get(_ context.Context, id string) (*Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	draft, ok := s.drafts[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return draft.clone(), nil
}

// Delete удаляет черновик
func (s *Service) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.drafts, id)

	s.logger.Info("Session: deleted draft id=%s", id)
	return nil
}

// SelectService выбирает услугу, при смене услуги выбранный слот сбрасывается
func (s *Service) SelectService(ctx context.Context, id, serviceID string) (*Draft, error) {
	service, err := s.catalog.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			s.logger.Warn("Session: service id=%s not found", serviceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Session: failed to get service id=%s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	return s.update(id, func(d *Draft) error {
		if d.Service == nil || d.Service.ID != service.ID {
			d.Slot = nil
		}
		d.Service = service
		return nil
	})
}

// SelectDate выбирает дату и сбрасывает выбранный слот
func (s *Service) SelectDate(_ context.Context, id string, date time.Time) (*Draft, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return s.update(id, func(d *Draft) error {
		d.Date = domain.DateOnly(date)
		d.Slot = nil
		return nil
	})
}

// SelectSlot выбирает слот по времени начала
// Слот ищется в сетке выбранной услуги на выбранную дату с учётом текущих бронирований
func (s *Service) SelectSlot(ctx context.Context, id string, startTime types.TimeString) (*Draft, error) {
	if err := startTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 1. Получаем черновик
	draft, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if draft.Service == nil {
		return nil, ErrNoServiceSelected
	}

	// 2. Получаем актуальную сетку слотов
	resp, err := s.slots.Execute(ctx, &get_available_slots.Request{
		ServiceID: draft.Service.ID,
		Date:      draft.Date,
	})
	if err != nil {
		s.logger.Error("Session: failed to get slots for draft id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	// 3. Находим слот
	slot, err := findSlot(resp.Slots, draft.Date, startTime)
	if err != nil {
		s.logger.Warn("Session: draft id=%s: %v", id, err)
		return nil, err
	}

	// 4. Сохраняем выбор, если за это время не поменялись услуга или дата
	return s.update(id, func(d *Draft) error {
		if d.Service == nil || d.Service.ID != draft.Service.ID || !d.Date.Equal(draft.Date) {
			return fmt.Errorf("%w: selection changed concurrently", ErrSlotNotFound)
		}
		d.Slot = &slot
		return nil
	})
}

// ClearSlot сбрасывает выбранный слот
func (s *Service) ClearSlot(_ context.Context, id string) (*Draft, error) {
	return s.update(id, func(d *Draft) error {
		d.Slot = nil
		return nil
	})
}

// Confirm бронирует выбранный слот
// После успешного бронирования услуга и слот сбрасываются, дата остаётся
func (s *Service) Confirm(ctx context.Context, id string, customer domain.CustomerDetails) (*create_booking.Response, error) {
	// 1. Получаем черновик
	draft, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !draft.IsComplete() {
		s.logger.Warn("Session: draft id=%s is incomplete", id)
		return nil, ErrIncompleteSelection
	}

	// 2. Бронируем
	resp, err := s.booking.Execute(ctx, &create_booking.Request{
		ServiceID: draft.Service.ID,
		Date:      draft.Date,
		StartTime: types.NewTimeString(draft.Slot.StartTime),
		Customer:  customer,
	})
	if err != nil {
		return nil, err
	}

	// 3. Сбрасываем выбор, если клиент не успел выбрать другое
	if _, err := s.update(id, func(d *Draft) error {
		if !sameSelection(d, draft) {
			s.logger.Info("Session: draft id=%s changed during booking, keeping new selection", id)
			return nil
		}
		d.Service = nil
		d.Slot = nil
		return nil
	}); err != nil {
		// черновик удалён параллельно, бронирование уже создано
		s.logger.Warn("Session: draft id=%s gone after booking id=%s", id, resp.ID)
	}

	s.logger.Info("Session: draft id=%s confirmed as appointment id=%s", id, resp.ID)
	return resp, nil
}

// update применяет fn к черновику под блокировкой и возвращает копию
func (s *Service) update(id string, fn func(d *Draft) error) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if err := fn(draft); err != nil {
		return nil, err
	}
	draft.UpdatedAt = s.timeProvider.Now()

	return draft.clone(), nil
}

// sameSelection сравнивает услугу, дату и слот двух черновиков
func sameSelection(a, b *Draft) bool {
	if a.Service == nil || b.Service == nil || a.Slot == nil || b.Slot == nil {
		return false
	}
	return a.Service.ID == b.Service.ID && a.Slot.ID == b.Slot.ID && a.Date.Equal(b.Date)
}

func findSlot(slots []domain.TimeSlot, date time.Time, startTime types.TimeString) (domain.TimeSlot, error) {
	start, err := startTime.On(date)
	if err != nil {
		return domain.TimeSlot{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for _, slot := range slots {
		if !slot.StartTime.Equal(start) {
			continue
		}
		if !slot.Available {
			return domain.TimeSlot{}, fmt.Errorf("%w: %s", ErrSlotNotAvailable, slot.ID)
		}
		return slot, nil
	}

	return domain.TimeSlot{}, fmt.Errorf("%w: %s", ErrSlotNotFound, startTime)
}
