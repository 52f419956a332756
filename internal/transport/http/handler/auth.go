package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-inventory-api/internal/application/auth"
	"github.com/go-inventory-api/internal/domain"
)

// AuthHandler handles registration, both login flows and token refresh.
type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := h.svc.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, AuthEnvelope{
		Message: "user registered successfully",
		Token:   res.Token,
		User:    &UserSummary{ID: res.Account.AccountID, Email: res.Account.Email},
	})
}

// Login serves two flows on one route. A body carrying a password is a
// password login; a body without one starts an OTP login for the given email.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string  `json:"email"`
		Password *string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Password == nil {
		if err := h.svc.InitiateOTPLogin(r.Context(), req.Email); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageEnvelope{Message: "OTP sent successfully"})
		return
	}

	res, err := h.svc.Login(r.Context(), domain.LoginRequest{Email: req.Email, Password: *req.Password})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AuthEnvelope{
		Message:      "login successful",
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		User:         &UserSummary{ID: res.Account.AccountID, Email: res.Account.Email},
	})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	pair, err := h.svc.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AuthEnvelope{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// VerifyOTP redeems a pending code. Addresses without a credential record get
// a bare confirmation; known accounts also get a fresh token pair.
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	pair, err := h.svc.CompleteOTPLogin(r.Context(), req.Email, req.OTP)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	env := AuthEnvelope{Message: "OTP verified successfully"}
	if pair != nil {
		env.AccessToken = pair.AccessToken
		env.RefreshToken = pair.RefreshToken
	}
	writeJSON(w, http.StatusOK, env)
}
