package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/planventura/eventos-api/internal/domain"
	"github.com/planventura/eventos-api/internal/logger"
)

// ErrorResponse is the one JSON error shape clients ever see. Internal
// detail stays in the server logs.
type ErrorResponse struct {
	Error  string                  `json:"error"`
	Code   string                  `json:"code,omitempty"`
	Fields []domain.ValidationError `json:"fields,omitempty"`
}

const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeRateLimit     = "RATE_LIMIT_EXCEEDED"
	CodeInternalError = "INTERNAL_ERROR"
)

func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func WriteError(w http.ResponseWriter, statusCode int, message, code string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message, Code: code})
}

func BadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message, CodeInvalidInput)
}

func ValidationFailed(w http.ResponseWriter, errs domain.ValidationErrors) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:  "Validación fallida",
		Code:   CodeInvalidInput,
		Fields: errs,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnauthorized, message, CodeUnauthorized)
}

func Forbidden(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusForbidden, message, CodeForbidden)
}

func NotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message, CodeNotFound)
}

func Conflict(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusConflict, message, CodeConflict)
}

func RateLimit(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusTooManyRequests, message, CodeRateLimit)
}

func InternalError(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, "Error interno", CodeInternalError)
}

// DomainError maps a service-layer error onto the error taxonomy. Every
// handler funnels unknown errors through here so raw database text never
// reaches a client.
func DomainError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		ValidationFailed(w, verrs)
	case errors.Is(err, domain.ErrInvalidCredentials):
		Unauthorized(w, "Credenciales inválidas")
	case errors.Is(err, domain.ErrNotOwner):
		Forbidden(w, "No autorizado")
	case errors.Is(err, domain.ErrOrganizerNotFound):
		NotFound(w, "Organizador no existe")
	case errors.Is(err, domain.ErrLocationNotFound):
		NotFound(w, "Ubicación no existe")
	case errors.Is(err, domain.ErrNotFound):
		NotFound(w, "No encontrado")
	case errors.Is(err, domain.ErrEmailTaken):
		Conflict(w, "El email ya está registrado")
	case errors.Is(err, domain.ErrOrganizerNameTaken):
		Conflict(w, "Organizador ya existe")
	case errors.Is(err, domain.ErrDuplicateReservation):
		Conflict(w, "La reserva ya existe")
	default:
		logger.ErrorContext(r.Context(), "unhandled service error", "error", err, "path", r.URL.Path)
		InternalError(w)
	}
}
