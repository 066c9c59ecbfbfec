package get_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Clinic-SchedulingService/internal/service/appointments"
	"github.com/m04kA/Clinic-SchedulingService/internal/service/appointments/models"
)

type mockService struct {
	getFunc func(ctx context.Context, bookingID string) (*models.AppointmentResponse, error)
}

func (m *mockService) GetByBookingID(ctx context.Context, bookingID string) (*models.AppointmentResponse, error) {
	return m.getFunc(ctx, bookingID)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newRouter(handler *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/appointments/{bookingId}", handler.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_Success(t *testing.T) {
	svc := &mockService{
		getFunc: func(ctx context.Context, bookingID string) (*models.AppointmentResponse, error) {
			return &models.AppointmentResponse{
				BookingID:       bookingID,
				Status:          "confirmed",
				AppointmentType: "physical_exam",
				Date:            "2026-09-07",
				StartTime:       "10:00",
				EndTime:         "10:45",
				DurationMinutes: 45,
			}, nil
		},
	}
	router := newRouter(NewHandler(svc, noopLogger{}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/APPT-20260907-3FA85F64", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "APPT-20260907-3FA85F64", resp.BookingID)
	assert.Equal(t, "physical_exam", resp.AppointmentType)
	assert.Equal(t, 45, resp.DurationMinutes)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &mockService{
		getFunc: func(ctx context.Context, bookingID string) (*models.AppointmentResponse, error) {
			return nil, appointments.ErrAppointmentNotFound
		},
	}
	router := newRouter(NewHandler(svc, noopLogger{}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/APPT-20260907-MISSING1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
