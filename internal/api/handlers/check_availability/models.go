package check_availability

import (
	"time"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	checkAvailability "github.com/m04kA/Clinic-SchedulingService/internal/usecase/check_availability"
)

// SlotResponse HTTP модель одного доступного слота
type SlotResponse struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "09:30"
}

// AvailabilityResponse HTTP модель ответа со слотами на дату
type AvailabilityResponse struct {
	Date            string         `json:"date"`
	AppointmentType string         `json:"appointmentType"`
	Slots           []SlotResponse `json:"slots"`
	TotalSlots      int            `json:"totalSlots"`
	Reason          string         `json:"reason,omitempty"`
}

// ToUseCaseRequest конвертирует query-параметры в модель use case
func ToUseCaseRequest(dateStr string, category domain.Category) (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		Date:     date,
		Category: category,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
		})
	}

	return &AvailabilityResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		AppointmentType: string(resp.Category),
		Slots:           slots,
		TotalSlots:      resp.TotalSlots,
		Reason:          resp.Reason,
	}
}
