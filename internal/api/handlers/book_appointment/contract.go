package book_appointment

import (
	"context"

	bookAppointment "github.com/m04kA/Clinic-SchedulingService/internal/usecase/book_appointment"
)

type BookAppointmentUseCase interface {
	Execute(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error)
}

// BookingMetrics счётчики результатов бронирования
type BookingMetrics interface {
	BookingCreated()
	BookingRejected(reason string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
