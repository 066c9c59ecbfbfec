package book_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/Clinic-SchedulingService/internal/api/handlers"
	bookAppointment "github.com/m04kA/Clinic-SchedulingService/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidDate            = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime            = "некорректный формат времени начала, ожидается HH:MM"
	msgUnknownAppointmentType = "неизвестный тип приёма"
	msgInvalidPatientInfo     = "некорректные данные пациента"
	msgInvalidRequest         = "некорректные параметры запроса"
)

type Handler struct {
	useCase BookAppointmentUseCase
	metrics BookingMetrics
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, metrics BookingMetrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
//
// Отказы по занятости слота и календарным правилам возвращаются со статусом
// 200 и телом status=failed - c точки зрения API это валидный результат
// бронирования, а не ошибка запроса.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if isDateParseError(err) {
			handlers.RespondBadRequest(w, msgInvalidDate)
		} else {
			handlers.RespondBadRequest(w, msgInvalidTime)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookAppointment.ErrUnknownCategory):
			h.logger.Warn("POST /appointments - Unknown appointment type: %s", req.AppointmentType)
			handlers.RespondBadRequest(w, msgUnknownAppointmentType)

		case errors.Is(err, bookAppointment.ErrInvalidPatientInfo):
			h.logger.Warn("POST /appointments - Invalid patient info: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPatientInfo)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /appointments - Failed to book appointment: date=%s, start_time=%s, error=%v",
				req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	if result.IsConfirmed() {
		h.metrics.BookingCreated()
		h.logger.Info("POST /appointments - Appointment booked successfully: booking_id=%s, date=%s, start_time=%s",
			result.BookingID, req.Date, req.StartTime)
		handlers.RespondJSON(w, http.StatusCreated, response)
		return
	}

	h.metrics.BookingRejected(result.Reason)
	h.logger.Warn("POST /appointments - Booking rejected: date=%s, start_time=%s, reason=%s",
		req.Date, req.StartTime, result.Reason)
	handlers.RespondJSON(w, http.StatusOK, response)
}

// isDateParseError отличает ошибку парсинга даты от ошибки парсинга времени
func isDateParseError(err error) bool {
	var parseErr *time.ParseError
	return errors.As(err, &parseErr)
}
