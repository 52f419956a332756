package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-inventory-api/internal/domain"
	"github.com/go-inventory-api/internal/otp"
)

// MessageEnvelope is the generic response wrapper. Errors carries the full
// list of field violations for validation failures.
type MessageEnvelope struct {
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// UserSummary is the public projection of a credential record.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthEnvelope wraps register/login/refresh/verify-otp responses.
type AuthEnvelope struct {
	Message      string       `json:"message,omitempty"`
	Token        string       `json:"token,omitempty"`
	AccessToken  string       `json:"accessToken,omitempty"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	User         *UserSummary `json:"user,omitempty"`
}

// ListEnvelope wraps paginated entity list responses. NextCursor is the opaque
// token for the following page, absent on the last one.
type ListEnvelope struct {
	Data       interface{} `json:"data"`
	NextCursor string      `json:"nextCursor,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// writeServiceError translates application-layer errors into status codes.
// This is the only place the mapping lives; handlers never pick codes
// themselves.
func writeServiceError(w http.ResponseWriter, err error) {
	if verr, ok := domain.IsValidation(err); ok {
		writeJSON(w, http.StatusBadRequest, MessageEnvelope{Errors: verr.Messages})
		return
	}
	switch {
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrBadRequest),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, otp.ErrNotPending),
		errors.Is(err, otp.ErrMismatch):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDelivery):
		writeError(w, http.StatusInternalServerError, "failed to send OTP")
	default:
		// Backend failures must not leak internals.
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
