package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/AppointEase/internal/availability"
	"github.com/m04kA/AppointEase/internal/domain"
	"github.com/m04kA/AppointEase/internal/service/catalog"
	"github.com/m04kA/AppointEase/pkg/metrics"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      Catalog
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	idGenerator  IDGenerator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceCatalog Catalog,
	txManager TransactionManager,
	bookingMetrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      serviceCatalog,
		txManager:    txManager,
		metrics:      bookingMetrics,
		timeProvider: &RealTimeProvider{},
		idGenerator:  &UUIDGenerator{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка свободности слота и добавление в журнал выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.IncBooking(metrics.OutcomeRejected)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	uc.logger.Info("CreateBooking: service=%s, date=%s, time=%s",
		req.ServiceID, date.Format(domain.DateFormat), req.StartTime)

	// 2. Получаем услугу
	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			uc.metrics.IncBooking(metrics.OutcomeRejected)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Строим сетку и находим слот с указанным временем начала
	slots, err := availability.GenerateSlots(date, service.DurationMinutes, service.ID)
	if err != nil {
		uc.logger.Warn("CreateBooking: service id=%s has invalid duration %d", service.ID, service.DurationMinutes)
		uc.metrics.IncBooking(metrics.OutcomeRejected)
		return nil, fmt.Errorf("%w: %w", ErrInvalidDuration, err)
	}

	slot, err := findSlot(slots, date, req.StartTime)
	if err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		uc.metrics.IncBooking(metrics.OutcomeRejected)
		return nil, err
	}

	customer := normalizeCustomer(req.Customer)

	// Переменная для хранения результата
	var result *domain.Appointment

	// 4. Повторная проверка и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем бронирования на дату
		appointments, err := uc.bookingRepo.GetByDate(txCtx, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 4.2. Проверяем, что слот всё ещё свободен
		if !availability.IsSlotFree(slot, date, appointments) {
			uc.logger.Warn("CreateBooking: slot %s is already taken", slot.ID)
			return ErrSlotNotAvailable
		}

		// 4.3. Создаем бронирование с денормализацией названия услуги
		appt := &domain.Appointment{
			ID:            uc.idGenerator.NewID(),
			ServiceID:     service.ID,
			ServiceName:   service.Name,
			Date:          date,
			StartTime:     slot.StartTime,
			EndTime:       slot.EndTime,
			CustomerName:  customer.Name,
			CustomerEmail: customer.Email,
			CustomerPhone: customer.Phone,
			Notes:         customer.Notes,
			CreatedAt:     uc.timeProvider.Now(),
		}

		// 4.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.metrics.IncBooking(metrics.OutcomeConflict)
		}
		return nil, err
	}

	uc.metrics.IncBooking(metrics.OutcomeCreated)
	if count, err := uc.bookingRepo.Count(ctx); err != nil {
		uc.logger.Warn("CreateBooking: failed to count appointments for ledger size metric: %v", err)
	} else {
		uc.metrics.SetLedgerSize(count)
	}

	uc.logger.Info("CreateBooking: successfully created appointment id=%s", result.ID)

	return newResponse(result), nil
}
