package list_appointments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Clinic-SchedulingService/internal/service/appointments/models"
)

type mockService struct {
	listFunc func(ctx context.Context, date time.Time, includeCancelled bool) (*models.AppointmentListResponse, error)
}

func (m *mockService) ListByDate(ctx context.Context, date time.Time, includeCancelled bool) (*models.AppointmentListResponse, error) {
	return m.listFunc(ctx, date, includeCancelled)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestHandle_Success(t *testing.T) {
	var gotDate time.Time
	var gotIncludeCancelled bool
	svc := &mockService{
		listFunc: func(ctx context.Context, date time.Time, includeCancelled bool) (*models.AppointmentListResponse, error) {
			gotDate = date
			gotIncludeCancelled = includeCancelled
			return &models.AppointmentListResponse{
				Appointments: []models.AppointmentResponse{
					{BookingID: "APPT-20260907-AAAA0001", StartTime: "09:00"},
					{BookingID: "APPT-20260907-AAAA0002", StartTime: "11:00"},
				},
				Total: 2,
			}, nil
		},
	}
	handler := NewHandler(svc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments?date=2026-09-07", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-09-07", gotDate.Format("2006-01-02"))
	assert.False(t, gotIncludeCancelled)

	var resp models.AppointmentListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "APPT-20260907-AAAA0001", resp.Appointments[0].BookingID)
}

func TestHandle_IncludeCancelled(t *testing.T) {
	var gotIncludeCancelled bool
	svc := &mockService{
		listFunc: func(ctx context.Context, date time.Time, includeCancelled bool) (*models.AppointmentListResponse, error) {
			gotIncludeCancelled = includeCancelled
			return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}, nil
		},
	}
	handler := NewHandler(svc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments?date=2026-09-07&includeCancelled=true", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotIncludeCancelled)
}

func TestHandle_BadRequests(t *testing.T) {
	svc := &mockService{
		listFunc: func(ctx context.Context, date time.Time, includeCancelled bool) (*models.AppointmentListResponse, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	handler := NewHandler(svc, noopLogger{})

	tests := []struct {
		name string
		url  string
	}{
		{name: "missing date", url: "/api/v1/appointments"},
		{name: "malformed date", url: "/api/v1/appointments?date=07.09.2026"},
		{name: "bad includeCancelled", url: "/api/v1/appointments?date=2026-09-07&includeCancelled=maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			handler.Handle(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
