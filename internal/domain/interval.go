package domain

import "github.com/m04kA/Clinic-SchedulingService/pkg/types"

// Interval is a half-open time interval [Start, End) within a single day,
// expressed in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// NewInterval builds an interval from HH:MM boundaries.
func NewInterval(start, end types.TimeString) (Interval, error) {
	s, err := start.Minutes()
	if err != nil {
		return Interval{}, err
	}
	e, err := end.Minutes()
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

// Overlaps reports whether two half-open intervals intersect:
// a.Start < b.End && b.Start < a.End. Intervals that merely touch at a
// boundary do not overlap.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}
