package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/planventura/eventos-api/internal/auth"
	"github.com/planventura/eventos-api/internal/domain"
	"github.com/planventura/eventos-api/internal/http/response"
)

// Register creates an end-user account and opens a session in the same
// round trip. The token travels only in the cookie, never in the body.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	user, token, err := h.auth.RegisterUser(r.Context(), &req)
	if err != nil {
		response.DomainError(w, r, err)
		return
	}

	auth.SetSessionCookie(w, r, token, h.sessionTTL)
	response.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success":  true,
		"userId":   user.ID,
		"userName": user.UserName,
		"email":    user.Email,
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	user, token, err := h.auth.LoginUser(r.Context(), &req)
	if err != nil {
		response.DomainError(w, r, err)
		return
	}

	auth.SetSessionCookie(w, r, token, h.sessionTTL)
	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    user.ToUserInfo(),
	})
}

func (h *Handlers) RegisterOrganizer(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrganizerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	organizer, token, err := h.auth.RegisterOrganizer(r.Context(), &req)
	if err != nil {
		response.DomainError(w, r, err)
		return
	}

	auth.SetSessionCookie(w, r, token, h.sessionTTL)
	response.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success":       true,
		"organizerId":   organizer.ID,
		"organizerName": organizer.OrganizerName,
	})
}

func (h *Handlers) LoginOrganizer(w http.ResponseWriter, r *http.Request) {
	var req domain.OrganizerLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	organizer, token, err := h.auth.LoginOrganizer(r.Context(), &req)
	if err != nil {
		response.DomainError(w, r, err)
		return
	}

	auth.SetSessionCookie(w, r, token, h.sessionTTL)
	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"organizer": domain.OrganizerRef{ID: organizer.ID, OrganizerName: organizer.OrganizerName},
	})
}

// Logout only clears the cookie. The token stays valid until exp; there is
// no revocation list.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	response.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// Check answers 200 with a boolean either way so the frontend can probe the
// session without tripping error interceptors.
func (h *Handlers) Check(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.guard.Verify(r)
	if !ok {
		response.WriteJSON(w, http.StatusOK, map[string]interface{}{"authenticated": false})
		return
	}
	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"kind":          claims.Kind,
	})
}
