package handlers

import (
	"net/http"

	"github.com/planventura/eventos-api/internal/domain"
	"github.com/planventura/eventos-api/internal/http/response"
)

func (h *Handlers) ListOrganizers(w http.ResponseWriter, r *http.Request) {
	organizers, err := h.catalog.ListOrganizers(r.Context())
	if err != nil {
		response.DomainError(w, r, err)
		return
	}
	if organizers == nil {
		organizers = []domain.OrganizerRef{}
	}
	response.WriteJSON(w, http.StatusOK, organizers)
}

func (h *Handlers) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.catalog.ListLocations(r.Context())
	if err != nil {
		response.DomainError(w, r, err)
		return
	}
	if locations == nil {
		locations = []domain.LocationRef{}
	}
	response.WriteJSON(w, http.StatusOK, locations)
}
