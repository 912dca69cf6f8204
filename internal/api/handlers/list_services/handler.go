package list_services

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/AppointEase/internal/api/handlers"
	"github.com/m04kA/AppointEase/internal/service/catalog"
)

const (
	msgServiceNotFound = "услуга не найдена"
)

type Handler struct {
	catalog Catalog
	logger  Logger
}

func NewHandler(catalog Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
// Query params: q (опционально) - поиск по названию, категории и описанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	services := h.catalog.Search(r.Context(), query)

	h.logger.Info("GET /services - Services retrieved: query=%q, count=%d", query, len(services))
	handlers.RespondJSON(w, http.StatusOK, FromDomainServices(services))
}

// HandleGet GET /api/v1/services/{serviceId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	service, err := h.catalog.GetService(r.Context(), serviceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			h.logger.Warn("GET /services/{id} - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)
			return
		}
		h.logger.Error("GET /services/{id} - Failed to get service: service_id=%s, error=%v", serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainService(*service))
}
