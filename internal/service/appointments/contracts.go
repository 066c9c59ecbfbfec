package appointments

import (
	"context"
	"time"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
)

// AppointmentStore интерфейс хранилища записей на приём
type AppointmentStore interface {
	GetByBookingID(ctx context.Context, bookingID string) (*domain.Appointment, error)
	GetByDate(ctx context.Context, date time.Time, onlyConfirmed bool) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, bookingID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
