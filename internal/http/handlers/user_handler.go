package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/planventura/eventos-api/internal/domain"
	"github.com/planventura/eventos-api/internal/http/middleware"
	"github.com/planventura/eventos-api/internal/http/response"
)

// Me returns the profile of the session's own account, interests flattened
// the way the preferences page consumes them.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.SessionClaims(r)

	user, err := h.users.GetByID(r.Context(), claims.Sub)
	if err != nil {
		response.DomainError(w, r, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user_id":   user.ID,
		"nombre":    user.UserName,
		"email":     user.Email,
		"age":       user.Age,
		"intereses": user.Interests(),
	})
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	user, ok := h.ownUser(w, r)
	if !ok {
		return
	}
	response.WriteJSON(w, http.StatusOK, user)
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownUserID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	user, err := h.users.Update(r.Context(), id, &req)
	if err != nil {
		response.DomainError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, user)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownUserID(w, r)
	if !ok {
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		response.DomainError(w, r, err)
		return
	}

	// The account is gone; the session cookie goes with it.
	h.Logout(w, r)
}

func (h *Handlers) ownUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	id, ok := h.ownUserID(w, r)
	if !ok {
		return nil, false
	}
	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		response.DomainError(w, r, err)
		return nil, false
	}
	return user, true
}

// ownUserID resolves the path id and rejects a session reaching for someone
// else's account.
func (h *Handlers) ownUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid user id")
		return 0, false
	}
	claims := middleware.SessionClaims(r)
	if claims.Sub != id {
		response.Forbidden(w, "No autorizado")
		return 0, false
	}
	return id, true
}
