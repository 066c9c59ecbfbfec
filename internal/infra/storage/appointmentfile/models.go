package appointmentfile

import (
	"fmt"
	"time"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	"github.com/m04kA/Clinic-SchedulingService/pkg/types"
)

// fileDocument корневой объект JSON-файла хранилища
type fileDocument struct {
	Appointments []appointmentRecord `json:"appointments"`
}

// appointmentRecord строка хранилища в формате файла
type appointmentRecord struct {
	BookingID        string        `json:"booking_id"`
	ConfirmationCode string        `json:"confirmation_code"`
	Status           string        `json:"status"`
	AppointmentType  string        `json:"appointment_type"`
	Date             string        `json:"date"`       // YYYY-MM-DD
	StartTime        string        `json:"start_time"` // HH:MM
	EndTime          string        `json:"end_time"`   // HH:MM
	DurationMinutes  int           `json:"duration_minutes"`
	Patient          patientRecord `json:"patient"`
	Reason           string        `json:"reason"`
	CreatedAt        string        `json:"created_at"` // RFC3339
}

type patientRecord struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// toRecord конвертирует доменную запись в формат файла
func toRecord(a *domain.Appointment) appointmentRecord {
	return appointmentRecord{
		BookingID:        a.BookingID,
		ConfirmationCode: a.ConfirmationCode,
		Status:           string(a.Status),
		AppointmentType:  string(a.Category),
		Date:             a.Date.Format(domain.DateFormat),
		StartTime:        a.StartTime.String(),
		EndTime:          a.EndTime.String(),
		DurationMinutes:  a.DurationMinutes,
		Patient: patientRecord{
			Name:  a.Patient.Name,
			Email: a.Patient.Email,
			Phone: a.Patient.Phone,
		},
		Reason:    a.Reason,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

// toDomain конвертирует строку файла в доменную запись
func (r appointmentRecord) toDomain() (*domain.Appointment, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("record %s: invalid date %q: %w", r.BookingID, r.Date, err)
	}

	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("record %s: invalid created_at %q: %w", r.BookingID, r.CreatedAt, err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("record %s: invalid start_time: %w", r.BookingID, err)
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("record %s: invalid end_time: %w", r.BookingID, err)
	}

	return &domain.Appointment{
		BookingID:        r.BookingID,
		ConfirmationCode: r.ConfirmationCode,
		Status:           domain.AppointmentStatus(r.Status),
		Category:         domain.Category(r.AppointmentType),
		Date:             date,
		StartTime:        startTime,
		EndTime:          endTime,
		DurationMinutes:  r.DurationMinutes,
		Patient: domain.Patient{
			Name:  r.Patient.Name,
			Email: r.Patient.Email,
			Phone: r.Patient.Phone,
		},
		Reason:    r.Reason,
		CreatedAt: createdAt,
	}, nil
}
