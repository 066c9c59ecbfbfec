package book_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	bookAppointment "github.com/m04kA/Clinic-SchedulingService/internal/usecase/book_appointment"
)

type mockUseCase struct {
	executeFunc func(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error)
}

func (m *mockUseCase) Execute(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error) {
	return m.executeFunc(ctx, req)
}

type mockMetrics struct {
	created  int
	rejected []string
}

func (m *mockMetrics) BookingCreated() {
	m.created++
}

func (m *mockMetrics) BookingRejected(reason string) {
	m.rejected = append(m.rejected, reason)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

const validBody = `{
	"appointmentType": "general_consultation",
	"date": "2026-09-07",
	"startTime": "09:00",
	"patient": {"name": "Sarah Mitchell", "email": "sarah.mitchell@example.com", "phone": "+15551234567"},
	"reason": "Persistent headaches"
}`

func postAppointment(t *testing.T, handler *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Confirmed(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error) {
			return &bookAppointment.Response{
				BookingID:        "APPT-20260901-3FA85F64",
				Status:           bookAppointment.StatusConfirmed,
				ConfirmationCode: "A1B2C3",
				Category:         req.Category,
				Date:             req.Date,
				StartTime:        req.StartTime,
				EndTime:          "09:30",
				PatientName:      req.Patient.Name,
				PatientEmail:     req.Patient.Email,
				Reason:           req.Reason,
				CreatedAt:        time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	metrics := &mockMetrics{}
	handler := NewHandler(uc, metrics, noopLogger{})

	rec := postAppointment(t, handler, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "APPT-20260901-3FA85F64", resp.BookingID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "A1B2C3", resp.ConfirmationCode)
	assert.Equal(t, "2026-09-07", resp.Date)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "09:30", resp.EndTime)

	assert.Equal(t, 1, metrics.created)
	assert.Empty(t, metrics.rejected)
}

func TestHandle_RejectedSlotTaken(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error) {
			return &bookAppointment.Response{
				Status:       bookAppointment.StatusFailed,
				Category:     req.Category,
				Date:         req.Date,
				StartTime:    req.StartTime,
				PatientName:  req.Patient.Name,
				PatientEmail: req.Patient.Email,
				Reason:       bookAppointment.ReasonSlotNotAvailable,
				CreatedAt:    time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	metrics := &mockMetrics{}
	handler := NewHandler(uc, metrics, noopLogger{})

	rec := postAppointment(t, handler, validBody)

	// Отказ бронирования - валидный результат, не ошибка запроса
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "failed", resp.Status)
	assert.Equal(t, "Time slot is not available", resp.Reason)
	assert.Empty(t, resp.BookingID)

	assert.Equal(t, 0, metrics.created)
	assert.Equal(t, []string{"Time slot is not available"}, metrics.rejected)
}

func TestHandle_ValidationErrors(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error) {
			if req.Category != domain.CategoryGeneralConsultation {
				return nil, bookAppointment.ErrUnknownCategory
			}
			return nil, bookAppointment.ErrInvalidPatientInfo
		},
	}
	handler := NewHandler(uc, &mockMetrics{}, noopLogger{})

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "not json"},
		{name: "unknown field", body: `{"appointmentType": "follow_up", "unknown": 1}`},
		{name: "malformed date", body: strings.Replace(validBody, "2026-09-07", "07.09.2026", 1)},
		{name: "malformed time", body: strings.Replace(validBody, `"09:00"`, `"9am"`, 1)},
		{name: "unknown appointment type", body: strings.Replace(validBody, "general_consultation", "dental", 1)},
		{name: "invalid patient email", body: strings.Replace(validBody, "sarah.mitchell@example.com", "nope", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postAppointment(t, handler, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
