package domain

import (
	"time"

	"github.com/m04kA/Clinic-SchedulingService/pkg/types"
)

// AppointmentStatus represents the lifecycle status of an appointment.
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is the durable booking record. Records are never physically
// deleted; cancellation only flips the status, keeping the history available
// for audit and overlap checks.
type Appointment struct {
	BookingID        string
	ConfirmationCode string
	Status           AppointmentStatus
	Category         Category
	Date             time.Time // calendar date, time part is zero
	StartTime        types.TimeString
	EndTime          types.TimeString
	DurationMinutes  int
	Patient          Patient
	Reason           string
	CreatedAt        time.Time
}

// IsConfirmed returns true if the appointment still occupies its slot.
func (a *Appointment) IsConfirmed() bool {
	return a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// Interval returns the appointment's half-open [start, end) interval.
func (a *Appointment) Interval() (Interval, error) {
	return NewInterval(a.StartTime, a.EndTime)
}
