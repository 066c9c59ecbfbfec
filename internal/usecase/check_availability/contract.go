package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
)

// AppointmentStore интерфейс хранилища записей на приём
type AppointmentStore interface {
	// GetByDate получает записи на конкретную дату (только подтверждённые при onlyConfirmed)
	GetByDate(ctx context.Context, date time.Time, onlyConfirmed bool) ([]*domain.Appointment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
