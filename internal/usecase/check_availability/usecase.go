package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
)

// UseCase use case вычисления доступных слотов на дату.
// Двухпроходная схема: сначала генерируются все кандидатные слоты дня,
// затем отдельными проходами отфильтровываются пересечения с занятыми
// интервалами и прошедшее время - генерация и поиск конфликтов
// тестируются независимо.
type UseCase struct {
	store        AppointmentStore
	catalog      *domain.Catalog
	schedule     *domain.ClinicSchedule
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store AppointmentStore,
	catalog *domain.Catalog,
	schedule *domain.ClinicSchedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		catalog:      catalog,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute вычисляет доступные слоты для (дата, тип приёма)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: date=%s, category=%s",
		req.Date.Format(domain.DateFormat), req.Category)

	// 1. Валидация входных данных
	if err := validateRequest(uc.catalog, req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Календарные правила: прошлое и выходные - пустой результат, не ошибка
	if isDateInPast(req.Date, now) {
		uc.logger.Info("CheckAvailability: date %s is in the past", req.Date.Format(domain.DateFormat))
		return emptyResponse(req, ReasonPastDate), nil
	}
	if !uc.schedule.IsWorkingDay(req.Date) {
		uc.logger.Info("CheckAvailability: clinic is closed on %s", req.Date.Format(domain.DateFormat))
		return emptyResponse(req, ReasonClinicClosed), nil
	}

	// 3. Длительность слота - единственный источник истины это каталог
	duration, err := uc.catalog.DurationOf(req.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCategory, err)
	}

	// 4. Первый проход: все кандидатные слоты дня
	slots, err := generateCandidateSlots(uc.schedule, duration)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to generate candidate slots: %v", err)
		return nil, fmt.Errorf("%w: generate slots: %v", ErrInternal, err)
	}

	// 5. Второй проход: снимаем кандидатов, пересекающихся с подтверждёнными записями
	booked, err := uc.store.GetByDate(ctx, req.Date, true)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: load bookings: %v", ErrInternal, err)
	}
	if err := markBookedOverlaps(slots, booked); err != nil {
		uc.logger.Error("CheckAvailability: failed to mark overlaps: %v", err)
		return nil, fmt.Errorf("%w: mark overlaps: %v", ErrInternal, err)
	}

	// 6. Для сегодняшней даты убираем уже прошедшие слоты
	if isSameDay(req.Date, now) {
		markElapsedSlots(slots, now)
	}

	available := availableOnly(slots)

	reason := ""
	if len(available) == 0 {
		reason = ReasonFullyBooked
	}

	uc.logger.Info("CheckAvailability: %d available slots for date=%s, category=%s",
		len(available), req.Date.Format(domain.DateFormat), req.Category)

	return &Response{
		Date:       req.Date,
		Category:   req.Category,
		Slots:      available,
		TotalSlots: len(available),
		Reason:     reason,
	}, nil
}

func emptyResponse(req *Request, reason string) *Response {
	return &Response{
		Date:       req.Date,
		Category:   req.Category,
		Slots:      []domain.TimeSlot{},
		TotalSlots: 0,
		Reason:     reason,
	}
}
