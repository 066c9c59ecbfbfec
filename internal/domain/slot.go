package domain

import "github.com/m04kA/Clinic-SchedulingService/pkg/types"

// TimeSlot is a candidate appointment interval on a single date with a
// derived availability flag. Slots are constructed during availability
// computation and never persisted.
type TimeSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
}

// Interval returns the slot's half-open [start, end) interval.
func (s TimeSlot) Interval() (Interval, error) {
	return NewInterval(s.StartTime, s.EndTime)
}
