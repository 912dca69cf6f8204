package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/AppointEase/internal/availability"
	"github.com/m04kA/AppointEase/internal/domain"
	"github.com/m04kA/AppointEase/internal/service/catalog"
)

// UseCase use case для получения слотов услуги на дату
type UseCase struct {
	bookingRepo BookingRepository
	catalog     Catalog
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceCatalog Catalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalog:     serviceCatalog,
		logger:      logger,
	}
}

// Execute выполняет use case получения слотов
// Возвращает всю сетку дня, занятые слоты помечены как недоступные
// Пустой список слотов ошибкой не считается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s", req.ServiceID, date.Format(domain.DateFormat))

	// 2. Получаем услугу
	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Строим сетку слотов
	slots, err := availability.GenerateSlots(date, service.DurationMinutes, service.ID)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidDuration) {
			uc.logger.Warn("GetAvailableSlots: service id=%s has invalid duration %d", service.ID, service.DurationMinutes)
			return nil, fmt.Errorf("%w: %w", ErrInvalidDuration, err)
		}
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 4. Получаем бронирования на дату
	appointments, err := uc.bookingRepo.GetByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Отмечаем занятые слоты
	response := &Response{
		Date:    date,
		Service: *service,
		Slots:   availability.Annotate(slots, date, appointments),
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots available", response.AvailableCount(), len(response.Slots))

	return response, nil
}
