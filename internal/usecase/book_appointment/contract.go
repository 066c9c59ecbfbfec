package book_appointment

import (
	"context"
	"time"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	checkAvailability "github.com/m04kA/Clinic-SchedulingService/internal/usecase/check_availability"
)

// AppointmentStore интерфейс хранилища записей на приём
type AppointmentStore interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// AvailabilityUseCase интерфейс пересчёта доступности. Бронирование повторно
// выполняет тот же расчёт непосредственно перед коммитом.
type AvailabilityUseCase interface {
	Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error)
}

// TransactionManager граница взаимного исключения вокруг
// "прочитать занятые слоты - проверить - дописать".
// Для postgres это сериализуемая транзакция, для файлового хранилища - мьютекс.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
