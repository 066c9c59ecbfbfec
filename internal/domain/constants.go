package domain

import "time"

// Default clinic schedule values, used when the config file does not override them.
const (
	DefaultBusinessStart = "09:00"
	DefaultBusinessEnd   = "17:00"
	DefaultSlotStride    = 15 // minutes between candidate slot starts
)

// Limits for boundary validation
const (
	MinPhoneDigits  = 10
	MaxReasonLength = 500
	MaxNameLength   = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultWorkingDays are the weekdays the clinic is open.
var DefaultWorkingDays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
}
