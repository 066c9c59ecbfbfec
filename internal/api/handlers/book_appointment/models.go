package book_appointment

import (
	"time"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	bookAppointment "github.com/m04kA/Clinic-SchedulingService/internal/usecase/book_appointment"
	"github.com/m04kA/Clinic-SchedulingService/pkg/types"
)

// PatientInfo HTTP модель контактных данных пациента
type PatientInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	AppointmentType string      `json:"appointmentType"` // "general_consultation"
	Date            string      `json:"date"`            // "2026-09-01"
	StartTime       string      `json:"startTime"`       // "09:00"
	Patient         PatientInfo `json:"patient"`
	Reason          string      `json:"reason"`
}

// AppointmentResponse HTTP response model результата бронирования
type AppointmentResponse struct {
	BookingID        string `json:"bookingId,omitempty"`
	Status           string `json:"status"`
	ConfirmationCode string `json:"confirmationCode,omitempty"`
	AppointmentType  string `json:"appointmentType"`
	Date             string `json:"date"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime,omitempty"`
	PatientName      string `json:"patientName"`
	PatientEmail     string `json:"patientEmail"`
	Reason           string `json:"reason,omitempty"`
	CreatedAt        string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookAppointmentRequest) ToUseCaseRequest() (*bookAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время начала
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &bookAppointment.Request{
		Category:  domain.Category(r.AppointmentType),
		Date:      date,
		StartTime: startTime,
		Patient: domain.Patient{
			Name:  r.Patient.Name,
			Email: r.Patient.Email,
			Phone: r.Patient.Phone,
		},
		Reason: r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		BookingID:        resp.BookingID,
		Status:           resp.Status,
		ConfirmationCode: resp.ConfirmationCode,
		AppointmentType:  string(resp.Category),
		Date:             resp.Date.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		EndTime:          resp.EndTime.String(),
		PatientName:      resp.PatientName,
		PatientEmail:     resp.PatientEmail,
		Reason:           resp.Reason,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}
