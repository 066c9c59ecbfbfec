package book_appointment

import (
	"time"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	"github.com/m04kA/Clinic-SchedulingService/pkg/types"
)

// Статусы результата бронирования
const (
	StatusConfirmed = "confirmed"
	StatusFailed    = "failed"
)

// Причины отказа. Диалоговый слой показывает их пользователю дословно,
// поэтому формулировки фиксированы.
const (
	ReasonPastDate         = "Cannot book appointments in the past"
	ReasonClinicClosed     = "Clinic is closed on weekends"
	ReasonSlotNotAvailable = "Time slot is not available"
)

// Request модель запроса на бронирование
type Request struct {
	Category  domain.Category  // Тип приёма
	Date      time.Time        // Дата приёма (без времени)
	StartTime types.TimeString // Время начала слота
	Patient   domain.Patient   // Контактные данные пациента
	Reason    string           // Причина визита
}

// Response результат бронирования. Отказы по календарным правилам и занятости
// возвращаются как Status=failed с заполненным Reason, а не как ошибка:
// вызывающая сторона должна передать причину пользователю.
type Response struct {
	BookingID        string           // Идентификатор записи (пустой при отказе)
	Status           string           // confirmed | failed
	ConfirmationCode string           // Короткий код подтверждения (пустой при отказе)
	Category         domain.Category  // Тип приёма
	Date             time.Time        // Дата приёма
	StartTime        types.TimeString // Время начала
	EndTime          types.TimeString // Время конца (start + длительность категории)
	PatientName      string           // Имя пациента
	PatientEmail     string           // Email пациента
	Reason           string           // Причина визита либо причина отказа
	CreatedAt        time.Time        // Время создания результата
}

// IsConfirmed возвращает true для успешного бронирования
func (r *Response) IsConfirmed() bool {
	return r.Status == StatusConfirmed
}
