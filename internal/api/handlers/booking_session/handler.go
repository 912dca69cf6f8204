package booking_session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/AppointEase/internal/api/handlers"
	"github.com/m04kA/AppointEase/internal/api/handlers/create_appointment"
	"github.com/m04kA/AppointEase/internal/domain"
	"github.com/m04kA/AppointEase/internal/service/session"
	createBooking "github.com/m04kA/AppointEase/internal/usecase/create_booking"
	"github.com/m04kA/AppointEase/pkg/types"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime          = "некорректный формат времени начала, ожидается HH:MM"
	msgSessionNotFound      = "сессия не найдена"
	msgServiceNotFound      = "услуга не найдена"
	msgNoServiceSelected    = "сначала выберите услугу"
	msgSlotNotFound         = "слот не найден"
	msgSlotNotAvailable     = "выбранный временной слот недоступен"
	msgIncompleteSelection  = "не выбраны услуга или временной слот"
	msgInvalidInput         = "некорректные данные"
	msgInvalidCustomerInput = "не заполнены обязательные поля"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/sessions
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	draft := h.service.Create(r.Context())

	h.logger.Info("POST /sessions - Session created: session_id=%s", draft.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDraft(draft))
}

// Get GET /api/v1/sessions/{sessionId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	draft, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		h.respondSessionError(w, "GET /sessions/{id}", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDraft(draft))
}

// Delete DELETE /api/v1/sessions/{sessionId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	if err := h.service.Delete(r.Context(), sessionID); err != nil {
		h.respondSessionError(w, "DELETE /sessions/{id}", sessionID, err)
		return
	}

	h.logger.Info("DELETE /sessions/{id} - Session deleted: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// SelectService PUT /api/v1/sessions/{sessionId}/service
func (h *Handler) SelectService(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/service - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft, err := h.service.SelectService(r.Context(), sessionID, req.ServiceID)
	if err != nil {
		h.respondSessionError(w, "PUT /sessions/{id}/service", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDraft(draft))
}

// SelectDate PUT /api/v1/sessions/{sessionId}/date
func (h *Handler) SelectDate(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, time.Local)
	if err != nil {
		h.logger.Warn("PUT /sessions/{id}/date - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	draft, err := h.service.SelectDate(r.Context(), sessionID, date)
	if err != nil {
		h.respondSessionError(w, "PUT /sessions/{id}/date", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDraft(draft))
}

// SelectSlot PUT /api/v1/sessions/{sessionId}/slot
func (h *Handler) SelectSlot(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		h.logger.Warn("PUT /sessions/{id}/slot - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	draft, err := h.service.SelectSlot(r.Context(), sessionID, startTime)
	if err != nil {
		h.respondSessionError(w, "PUT /sessions/{id}/slot", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDraft(draft))
}

// ClearSlot DELETE /api/v1/sessions/{sessionId}/slot
func (h *Handler) ClearSlot(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	draft, err := h.service.ClearSlot(r.Context(), sessionID)
	if err != nil {
		h.respondSessionError(w, "DELETE /sessions/{id}/slot", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDraft(draft))
}

// Confirm POST /api/v1/sessions/{sessionId}/confirm
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req ConfirmRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Confirm(r.Context(), sessionID, req.ToCustomer())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /sessions/{id}/confirm - Slot taken: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/confirm - Invalid customer details: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCustomerInput)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot), errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /sessions/{id}/confirm - Invalid slot: %v", err)
			handlers.RespondBadRequest(w, msgSlotNotFound)

		default:
			h.respondSessionError(w, "POST /sessions/{id}/confirm", sessionID, err)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/confirm - Appointment created: session_id=%s, appointment_id=%s",
		sessionID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, create_appointment.FromUseCaseResponse(result))
}

func (h *Handler) respondSessionError(w http.ResponseWriter, route, sessionID string, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		h.logger.Warn("%s - Session not found: session_id=%s", route, sessionID)
		handlers.RespondNotFound(w, msgSessionNotFound)

	case errors.Is(err, session.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: session_id=%s", route, sessionID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, session.ErrNoServiceSelected):
		handlers.RespondBadRequest(w, msgNoServiceSelected)

	case errors.Is(err, session.ErrSlotNotFound):
		h.logger.Warn("%s - Slot not found: session_id=%s, error=%v", route, sessionID, err)
		handlers.RespondNotFound(w, msgSlotNotFound)

	case errors.Is(err, session.ErrSlotNotAvailable):
		h.logger.Warn("%s - Slot not available: session_id=%s", route, sessionID)
		handlers.RespondConflict(w, msgSlotNotAvailable)

	case errors.Is(err, session.ErrIncompleteSelection):
		handlers.RespondBadRequest(w, msgIncompleteSelection)

	case errors.Is(err, session.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Internal error: session_id=%s, error=%v", route, sessionID, err)
		handlers.RespondInternalError(w)
	}
}
