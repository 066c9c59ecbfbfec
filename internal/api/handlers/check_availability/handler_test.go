package check_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	checkAvailability "github.com/m04kA/Clinic-SchedulingService/internal/usecase/check_availability"
)

type mockUseCase struct {
	executeFunc func(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error)
}

func (m *mockUseCase) Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	return m.executeFunc(ctx, req)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestHandle_Success(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
			return &checkAvailability.Response{
				Date:     req.Date,
				Category: req.Category,
				Slots: []domain.TimeSlot{
					{StartTime: "09:00", EndTime: "09:30", Available: true},
					{StartTime: "09:15", EndTime: "09:45", Available: true},
				},
				TotalSlots: 2,
			}, nil
		},
	}
	handler := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/availability?date=2026-09-07&appointmentType=general_consultation", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-09-07", resp.Date)
	assert.Equal(t, "general_consultation", resp.AppointmentType)
	assert.Equal(t, 2, resp.TotalSlots)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime)
	assert.Equal(t, "09:30", resp.Slots[0].EndTime)
	assert.Empty(t, resp.Reason)
}

func TestHandle_WeekendReasonPassedThrough(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
			return &checkAvailability.Response{
				Date:     req.Date,
				Category: req.Category,
				Slots:    []domain.TimeSlot{},
				Reason:   checkAvailability.ReasonClinicClosed,
			}, nil
		},
	}
	handler := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/availability?date=2026-09-05&appointmentType=follow_up", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.TotalSlots)
	assert.Equal(t, "Clinic is closed on weekends", resp.Reason)
}

func TestHandle_BadRequests(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
			return nil, checkAvailability.ErrUnknownCategory
		},
	}
	handler := NewHandler(uc, noopLogger{})

	tests := []struct {
		name string
		url  string
	}{
		{name: "missing date", url: "/api/v1/availability?appointmentType=follow_up"},
		{name: "missing appointment type", url: "/api/v1/availability?date=2026-09-07"},
		{name: "malformed date", url: "/api/v1/availability?date=07.09.2026&appointmentType=follow_up"},
		{name: "unknown appointment type", url: "/api/v1/availability?date=2026-09-07&appointmentType=dental"},
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

func TestHandle_InternalError(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
			return nil, errors.New("store unavailable")
		},
	}
	handler := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/availability?date=2026-09-07&appointmentType=follow_up", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
