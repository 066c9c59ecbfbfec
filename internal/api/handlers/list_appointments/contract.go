package list_appointments

import (
	"context"
	"time"

	"github.com/m04kA/Clinic-SchedulingService/internal/service/appointments/models"
)

type AppointmentService interface {
	ListByDate(ctx context.Context, date time.Time, includeCancelled bool) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
