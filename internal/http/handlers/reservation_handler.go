package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/planventura/eventos-api/internal/domain"
	"github.com/planventura/eventos-api/internal/http/middleware"
	"github.com/planventura/eventos-api/internal/http/response"
)

func (h *Handlers) ListReservations(w http.ResponseWriter, r *http.Request) {
	claims := middleware.SessionClaims(r)

	reservations, err := h.reservations.ListForUser(r.Context(), claims.Sub)
	if err != nil {
		response.DomainError(w, r, err)
		return
	}
	if reservations == nil {
		reservations = []domain.ReservationWithEvent{}
	}
	response.WriteJSON(w, http.StatusOK, reservations)
}

func (h *Handlers) CreateReservation(w http.ResponseWriter, r *http.Request) {
	claims := middleware.SessionClaims(r)

	var req domain.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}
	if err := req.Validate(); err != nil {
		response.DomainError(w, r, err)
		return
	}

	result, err := h.reservations.Reserve(r.Context(), claims.Sub, req.EventID)
	if err != nil {
		response.DomainError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusCreated, result)
}

// CancelReservation is keyed by event, matching how the frontend tracks
// reservations: one active reservation per (user, event).
func (h *Handlers) CancelReservation(w http.ResponseWriter, r *http.Request) {
	claims := middleware.SessionClaims(r)

	eventID, ok := pathID(r, "eventId")
	if !ok {
		response.BadRequest(w, "Invalid event id")
		return
	}

	if err := h.reservations.Cancel(r.Context(), claims.Sub, eventID); err != nil {
		response.DomainError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
