package check_availability

import (
	"time"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
)

// Причины пустого результата. Вызывающая сторона (диалоговый слой)
// транслирует их пользователю дословно.
const (
	ReasonPastDate     = "Date is in the past"
	ReasonClinicClosed = "Clinic is closed on weekends"
	ReasonFullyBooked  = "The date is fully booked"
)

// Request модель запроса доступных слотов
type Request struct {
	Date     time.Time       // Дата, на которую запрашиваются слоты (без времени)
	Category domain.Category // Тип приёма
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date       time.Time         // Дата запроса
	Category   domain.Category   // Тип приёма
	Slots      []domain.TimeSlot // Доступные слоты в хронологическом порядке
	TotalSlots int               // Количество доступных слотов
	Reason     string            // Причина пустого результата ("" если слоты есть)
}
