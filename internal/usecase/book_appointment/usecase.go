package book_appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	checkAvailability "github.com/m04kA/Clinic-SchedulingService/internal/usecase/check_availability"
	"github.com/m04kA/Clinic-SchedulingService/pkg/types"
)

// UseCase use case бронирования приёма.
//
// Контракт ошибок: error возвращается только для ошибок валидации входных
// данных (ErrInvalidInput, ErrInvalidPatientInfo, ErrUnknownCategory), чтобы
// вызывающая сторона могла обработать их программно. Все остальные исходы,
// включая занятый слот и сбой персистентности, приходят как Response со
// Status=failed и причиной в Reason - эти две операции никогда не роняют
// ошибку за свою границу.
type UseCase struct {
	store        AppointmentStore
	availability AvailabilityUseCase
	catalog      *domain.Catalog
	schedule     *domain.ClinicSchedule
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store AppointmentStore,
	availability AvailabilityUseCase,
	catalog *domain.Catalog,
	schedule *domain.ClinicSchedule,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		availability: availability,
		catalog:      catalog,
		schedule:     schedule,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет транзакцию бронирования:
// Validating -> CheckingAvailability -> {Committing -> Confirmed} | Rejected(reason)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: category=%s, date=%s, time=%s, patient=%s",
		req.Category, req.Date.Format(domain.DateFormat), req.StartTime, req.Patient.Email)

	// 1. Валидация: fail-fast, хранилище не трогаем
	if err := validateRequest(uc.catalog, req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Календарные правила - те же, что у доступности. Отказ возвращается
	// как failed-результат с причиной, а не как ошибка
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("BookAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return uc.rejected(req, ReasonPastDate, now), nil
	}
	if !uc.schedule.IsWorkingDay(req.Date) {
		uc.logger.Warn("BookAppointment: clinic is closed on %s", req.Date.Format(domain.DateFormat))
		return uc.rejected(req, ReasonClinicClosed, now), nil
	}

	// 3. Длительность и время конца пересчитываются из каталога
	duration, err := uc.catalog.DurationOf(req.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCategory, err)
	}
	endTime, err := req.StartTime.AddMinutes(duration)
	if err != nil {
		uc.logger.Warn("BookAppointment: start time %s + %d min is out of day range", req.StartTime, duration)
		return uc.rejected(req, ReasonSlotNotAvailable, now), nil
	}

	var result *Response

	// 4. Проверка доступности и вставка под одной границей взаимного
	// исключения - закрывает гонку check-then-act между конкурирующими
	// бронированиями
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		availability, err := uc.availability.Execute(txCtx, &checkAvailability.Request{
			Date:     req.Date,
			Category: req.Category,
		})
		if err != nil {
			return fmt.Errorf("%w: recheck availability: %v", ErrInternal, err)
		}

		if !slotIsAvailable(availability.Slots, req.StartTime) {
			uc.logger.Warn("BookAppointment: slot %s on %s is not available",
				req.StartTime, req.Date.Format(domain.DateFormat))
			result = uc.rejected(req, ReasonSlotNotAvailable, now)
			return nil
		}

		appointment := &domain.Appointment{
			BookingID:        newBookingID(now),
			ConfirmationCode: newConfirmationCode(),
			Status:           domain.StatusConfirmed,
			Category:         req.Category,
			Date:             req.Date,
			StartTime:        req.StartTime,
			EndTime:          endTime,
			DurationMinutes:  duration,
			Patient:          req.Patient,
			Reason:           req.Reason,
			CreatedAt:        now,
		}

		created, err := uc.store.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("BookAppointment: failed to persist appointment: %v", err)
			result = uc.rejected(req, fmt.Sprintf("Booking failed: %v", err), now)
			return nil
		}

		result = &Response{
			BookingID:        created.BookingID,
			Status:           StatusConfirmed,
			ConfirmationCode: created.ConfirmationCode,
			Category:         created.Category,
			Date:             created.Date,
			StartTime:        created.StartTime,
			EndTime:          created.EndTime,
			PatientName:      created.Patient.Name,
			PatientEmail:     created.Patient.Email,
			Reason:           created.Reason,
			CreatedAt:        created.CreatedAt,
		}
		return nil
	})

	if txErr != nil {
		// Неожиданный сбой на границе транзакции - тоже failed-результат,
		// причина уходит вызывающему, наружу ошибка не поднимается
		uc.logger.Error("BookAppointment: transaction failed: %v", txErr)
		return uc.rejected(req, fmt.Sprintf("Booking failed: %v", txErr), now), nil
	}

	if result.IsConfirmed() {
		uc.logger.Info("BookAppointment: confirmed booking_id=%s, code=%s",
			result.BookingID, result.ConfirmationCode)
	}

	return result, nil
}

// rejected строит failed-результат с причиной для пользователя
func (uc *UseCase) rejected(req *Request, reason string, now time.Time) *Response {
	return &Response{
		Status:       StatusFailed,
		Category:     req.Category,
		Date:         req.Date,
		StartTime:    req.StartTime,
		PatientName:  req.Patient.Name,
		PatientEmail: req.Patient.Email,
		Reason:       reason,
		CreatedAt:    now,
	}
}

// slotIsAvailable проверяет, что запрошенное время начала есть среди
// доступных слотов
func slotIsAvailable(slots []domain.TimeSlot, startTime types.TimeString) bool {
	for _, slot := range slots {
		if slot.StartTime == startTime {
			return true
		}
	}
	return false
}

// isDateInPast проверяет, что дата строго раньше сегодняшнего дня
// Дата запроса приходит в UTC, часы сервера локальные, поэтому каждая
// сторона сравнивается по своей календарной дате.
func isDateInPast(date, now time.Time) bool {
	return date.Format(domain.DateFormat) < now.Format(domain.DateFormat)
}
