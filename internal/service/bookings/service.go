package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/AppointEase/internal/infra/storage/booking"
	"github.com/m04kA/AppointEase/internal/service/bookings/models"
)

// Service сервис для работы с журналом бронирований
type Service struct {
	bookingRepo  BookingRepository
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	ledgerMetrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		metrics:      ledgerMetrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appt, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List получает журнал бронирований с фильтрацией
// По умолчанию порядок бронирования, без разбиения на периоды
//
// Примеры использования:
// - Предстоящие по времени начала: Period = "upcoming", Sort = "start_time"
// - Бронирования на дату: указать Date
// - Поиск по клиенту, услуге или дате "June 15, 2026": указать Query
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	if req == nil {
		req = &models.ListAppointmentsRequest{}
	}
	s.logger.Info("List: period=%q, sort=%q, query=%q", req.Period, req.Sort, req.Query)

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	appointments, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := applyFilter(appointments, filter, s.timeProvider.Now())

	s.logger.Info("List: returning %d of %d appointments", len(result), len(appointments))
	return models.FromDomainAppointmentList(result), nil
}

// Cancel удаляет бронирование из журнала
// Повторная отмена возвращает ErrAppointmentNotFound и журнал не меняет
func (s *Service) Cancel(ctx context.Context, id string) error {
	s.logger.Info("Cancel: cancelling appointment id=%s", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.metrics.IncCancellation()
	if count, err := s.bookingRepo.Count(ctx); err != nil {
		s.logger.Warn("Cancel: failed to count appointments for ledger size metric: %v", err)
	} else {
		s.metrics.SetLedgerSize(count)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%s", id)
	return nil
}

// Summary считает бронирования всего, предстоящие и прошедшие
func (s *Service) Summary(ctx context.Context) (*models.SummaryResponse, error) {
	appointments, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("Summary: repository error: %v", err)
		return nil, fmt.Errorf("%w: Summary - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	summary := &models.SummaryResponse{Total: len(appointments)}
	for _, appt := range appointments {
		if appt.IsUpcoming(now) {
			summary.Upcoming++
		} else {
			summary.Past++
		}
	}

	return summary, nil
}
