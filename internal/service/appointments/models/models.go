package models

import (
	"time"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
)

// AppointmentResponse модель записи на приём для отдачи наружу
type AppointmentResponse struct {
	BookingID        string    `json:"bookingId"`
	ConfirmationCode string    `json:"confirmationCode"`
	Status           string    `json:"status"`
	AppointmentType  string    `json:"appointmentType"`
	Date             string    `json:"date"`      // "2026-09-01"
	StartTime        string    `json:"startTime"` // "09:00"
	EndTime          string    `json:"endTime"`   // "09:30"
	DurationMinutes  int       `json:"durationMinutes"`
	PatientName      string    `json:"patientName"`
	PatientEmail     string    `json:"patientEmail"`
	PatientPhone     string    `json:"patientPhone"`
	Reason           string    `json:"reason,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// AppointmentListResponse список записей на дату
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromDomainAppointment конвертирует доменную запись в модель сервиса
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		BookingID:        a.BookingID,
		ConfirmationCode: a.ConfirmationCode,
		Status:           string(a.Status),
		AppointmentType:  string(a.Category),
		Date:             a.Date.Format(domain.DateFormat),
		StartTime:        a.StartTime.String(),
		EndTime:          a.EndTime.String(),
		DurationMinutes:  a.DurationMinutes,
		PatientName:      a.Patient.Name,
		PatientEmail:     a.Patient.Email,
		PatientPhone:     a.Patient.Phone,
		Reason:           a.Reason,
		CreatedAt:        a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список доменных записей
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	appointments := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		appointments = append(appointments, *FromDomainAppointment(a))
	}
	return &AppointmentListResponse{
		Appointments: appointments,
		Total:        len(appointments),
	}
}
