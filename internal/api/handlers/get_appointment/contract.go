package get_appointment

import (
	"context"

	"github.com/m04kA/Clinic-SchedulingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByBookingID(ctx context.Context, bookingID string) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
