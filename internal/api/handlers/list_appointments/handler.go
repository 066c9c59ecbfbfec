package list_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/Clinic-SchedulingService/internal/api/handlers"
	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	"github.com/m04kA/Clinic-SchedulingService/internal/service/appointments"
)

const (
	msgMissingDate             = "дата обязательна"
	msgInvalidDate             = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidIncludeCancelled = "некорректное значение includeCancelled"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: date (required, YYYY-MM-DD), includeCancelled (optional, bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /appointments - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// По умолчанию отменённые записи не показываются
	includeCancelled := false
	if raw := r.URL.Query().Get("includeCancelled"); raw != "" {
		includeCancelled, err = strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid includeCancelled: %v", err)
			handlers.RespondBadRequest(w, msgInvalidIncludeCancelled)
			return
		}
	}

	result, err := h.service.ListByDate(r.Context(), date, includeCancelled)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments listed successfully: date=%s, count=%d",
		dateStr, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
