package list_appointment_types

import (
	"net/http"

	"github.com/m04kA/Clinic-SchedulingService/internal/api/handlers"
	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
)

type Handler struct {
	catalog *domain.Catalog
	logger  Logger
}

func NewHandler(catalog *domain.Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointment-types
//
// Каталог статичен и собирается при старте процесса, поэтому ответ
// формируется без обращения к хранилищу.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := FromCatalog(h.catalog)

	h.logger.Info("GET /appointment-types - Types listed successfully: count=%d", response.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}
