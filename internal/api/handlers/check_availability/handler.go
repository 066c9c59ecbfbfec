package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/Clinic-SchedulingService/internal/api/handlers"
	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	checkAvailability "github.com/m04kA/Clinic-SchedulingService/internal/usecase/check_availability"
)

const (
	msgMissingDate            = "дата обязательна"
	msgInvalidDate            = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingAppointmentType = "тип приёма обязателен"
	msgUnknownAppointmentType = "неизвестный тип приёма"
	msgInvalidRequest         = "некорректные параметры запроса"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required, YYYY-MM-DD), appointmentType (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем appointmentType из query параметров
	appointmentType := r.URL.Query().Get("appointmentType")
	if appointmentType == "" {
		h.logger.Warn("GET /availability - Missing appointment type")
		handlers.RespondBadRequest(w, msgMissingAppointmentType)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(dateStr, domain.Category(appointmentType))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrUnknownCategory):
			h.logger.Warn("GET /availability - Unknown appointment type: %s", appointmentType)
			handlers.RespondBadRequest(w, msgUnknownAppointmentType)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /availability - Failed to get slots: date=%s, appointment_type=%s, error=%v",
				dateStr, appointmentType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability - Slots retrieved successfully: date=%s, appointment_type=%s, slots_count=%d",
		dateStr, appointmentType, result.TotalSlots)
	handlers.RespondJSON(w, http.StatusOK, response)
}
