package list_appointment_types

import "github.com/m04kA/Clinic-SchedulingService/internal/domain"

// AppointmentTypeResponse HTTP модель одного типа приёма
type AppointmentTypeResponse struct {
	AppointmentType string `json:"appointmentType"`
	DurationMinutes int    `json:"durationMinutes"`
	Description     string `json:"description"`
}

// AppointmentTypeListResponse HTTP модель каталога типов приёма
type AppointmentTypeListResponse struct {
	AppointmentTypes []AppointmentTypeResponse `json:"appointmentTypes"`
	Total            int                       `json:"total"`
}

// FromCatalog конвертирует каталог типов приёма в HTTP response
func FromCatalog(catalog *domain.Catalog) *AppointmentTypeListResponse {
	infos := catalog.List()
	items := make([]AppointmentTypeResponse, 0, len(infos))
	for _, info := range infos {
		items = append(items, AppointmentTypeResponse{
			AppointmentType: string(info.Category),
			DurationMinutes: info.DurationMinutes,
			Description:     info.Description,
		})
	}
	return &AppointmentTypeListResponse{
		AppointmentTypes: items,
		Total:            len(items),
	}
}
