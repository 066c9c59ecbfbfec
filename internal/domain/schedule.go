package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/Clinic-SchedulingService/pkg/types"
)

// ClinicSchedule holds the clinic-wide scheduling constants: the business
// hours window, the weekday set and the slot stride. Supplied by
// configuration, never hardcoded in engine logic.
type ClinicSchedule struct {
	BusinessStart types.TimeString
	BusinessEnd   types.TimeString
	StrideMinutes int

	workingDays map[time.Weekday]bool
}

// NewClinicSchedule validates and builds the schedule constants.
func NewClinicSchedule(start, end string, strideMinutes int, workingDays []time.Weekday) (*ClinicSchedule, error) {
	businessStart, err := types.NewTimeStringFromString(start)
	if err != nil {
		return nil, fmt.Errorf("domain: invalid business start: %w", err)
	}
	businessEnd, err := types.NewTimeStringFromString(end)
	if err != nil {
		return nil, fmt.Errorf("domain: invalid business end: %w", err)
	}
	if !businessStart.IsBefore(businessEnd) {
		return nil, fmt.Errorf("domain: business start %s must be before business end %s", businessStart, businessEnd)
	}
	if strideMinutes <= 0 {
		return nil, fmt.Errorf("domain: slot stride must be positive, got %d", strideMinutes)
	}

	if len(workingDays) == 0 {
		workingDays = DefaultWorkingDays
	}
	days := make(map[time.Weekday]bool, len(workingDays))
	for _, d := range workingDays {
		days[d] = true
	}

	return &ClinicSchedule{
		BusinessStart: businessStart,
		BusinessEnd:   businessEnd,
		StrideMinutes: strideMinutes,
		workingDays:   days,
	}, nil
}

// MustDefaultSchedule returns the canonical schedule: weekdays,
// [09:00, 17:00), 15-minute stride.
func MustDefaultSchedule() *ClinicSchedule {
	s, err := NewClinicSchedule(DefaultBusinessStart, DefaultBusinessEnd, DefaultSlotStride, DefaultWorkingDays)
	if err != nil {
		panic(err)
	}
	return s
}

// IsWorkingDay reports whether the clinic is open on the date's weekday.
func (s *ClinicSchedule) IsWorkingDay(date time.Time) bool {
	return s.workingDays[date.Weekday()]
}
