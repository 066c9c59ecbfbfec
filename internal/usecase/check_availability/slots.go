package check_availability

import (
	"time"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	"github.com/m04kA/Clinic-SchedulingService/pkg/types"
)

// generateCandidateSlots генерирует все кандидатные слоты дня: окно длиной
// duration скользит по рабочим часам с фиксированным шагом stride.
// Кандидат попадает в список, только если укладывается до конца рабочего дня.
func generateCandidateSlots(schedule *domain.ClinicSchedule, durationMinutes int) ([]domain.TimeSlot, error) {
	startMinutes, err := schedule.BusinessStart.Minutes()
	if err != nil {
		return nil, err
	}
	endMinutes, err := schedule.BusinessEnd.Minutes()
	if err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlot, 0)
	for start := startMinutes; start+durationMinutes <= endMinutes; start += schedule.StrideMinutes {
		slotStart, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			return nil, err
		}
		slotEnd, err := slotStart.AddMinutes(durationMinutes)
		if err != nil {
			return nil, err
		}
		slots = append(slots, domain.TimeSlot{
			StartTime: slotStart,
			EndTime:   slotEnd,
			Available: true,
		})
	}

	return slots, nil
}

// markBookedOverlaps помечает недоступными кандидатов, пересекающихся хотя бы
// с одной подтверждённой записью. Пересечение полуинтервалов строгое:
// a.start < b.end && b.start < a.end, граничащие интервалы не конфликтуют.
func markBookedOverlaps(slots []domain.TimeSlot, booked []*domain.Appointment) error {
	intervals := make([]domain.Interval, 0, len(booked))
	for _, appointment := range booked {
		if !appointment.IsConfirmed() {
			continue
		}
		interval, err := appointment.Interval()
		if err != nil {
			return err
		}
		intervals = append(intervals, interval)
	}

	for i := range slots {
		slotInterval, err := slots[i].Interval()
		if err != nil {
			return err
		}
		for _, booked := range intervals {
			if slotInterval.Overlaps(booked) {
				slots[i].Available = false
				break
			}
		}
	}

	return nil
}

// markElapsedSlots помечает недоступными слоты сегодняшнего дня, начало
// которых не позже текущего времени
func markElapsedSlots(slots []domain.TimeSlot, now time.Time) {
	currentTime := types.NewTimeString(now)
	for i := range slots {
		if !slots[i].StartTime.IsAfter(currentTime) {
			slots[i].Available = false
		}
	}
}

// availableOnly возвращает только доступные слоты, сохраняя порядок
func availableOnly(slots []domain.TimeSlot) []domain.TimeSlot {
	result := make([]domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.Available {
			result = append(result, slot)
		}
	}
	return result
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	return date1.Format(domain.DateFormat) == date2.Format(domain.DateFormat)
}

// isDateInPast проверяет, что календарная дата строго раньше сегодняшней.
// Дата запроса и текущее время могут быть в разных локациях (дата парсится
// в UTC, часы сервера локальные), поэтому сравниваются календарные
// компоненты каждого значения, а не моменты времени.
func isDateInPast(date, now time.Time) bool {
	return date.Format(domain.DateFormat) < now.Format(domain.DateFormat)
}
