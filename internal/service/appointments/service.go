package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	"github.com/m04kA/Clinic-SchedulingService/internal/infra/storage"
	"github.com/m04kA/Clinic-SchedulingService/internal/service/appointments/models"
)

// Service сервис чтения и отмены записей на приём
type Service struct {
	store  AppointmentStore
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(store AppointmentStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// GetByBookingID получает запись по её идентификатору
func (s *Service) GetByBookingID(ctx context.Context, bookingID string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByBookingID: fetching appointment booking_id=%s", bookingID)

	if bookingID == "" {
		return nil, fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	appointment, err := s.store.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, storage.ErrAppointmentNotFound) {
			s.logger.Warn("GetByBookingID: appointment booking_id=%s not found", bookingID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByBookingID: store error for booking_id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByBookingID - store error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// ListByDate возвращает записи на дату в хронологическом порядке.
// При includeCancelled в список попадают и отменённые записи.
func (s *Service) ListByDate(ctx context.Context, date time.Time, includeCancelled bool) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListByDate: fetching appointments for date=%s, includeCancelled=%t",
		date.Format(domain.DateFormat), includeCancelled)

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	appointments, err := s.store.GetByDate(ctx, date, !includeCancelled)
	if err != nil {
		s.logger.Error("ListByDate: store error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListByDate - store error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDate: fetched %d appointments for date=%s",
		len(appointments), date.Format(domain.DateFormat))
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись по booking_id. Запись не удаляется физически,
// статус переводится в cancelled. Повторная отмена уже отменённой записи
// считается успехом (идемпотентная политика, см. DESIGN.md).
func (s *Service) Cancel(ctx context.Context, bookingID string) error {
	s.logger.Info("Cancel: cancelling appointment booking_id=%s", bookingID)

	if bookingID == "" {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	if err := s.store.Cancel(ctx, bookingID); err != nil {
		if errors.Is(err, storage.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment booking_id=%s not found", bookingID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: store error for booking_id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: appointment booking_id=%s cancelled", bookingID)
	return nil
}
