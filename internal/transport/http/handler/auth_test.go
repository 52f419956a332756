package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-inventory-api/internal/application/auth"
	"github.com/go-inventory-api/internal/domain"
	"github.com/go-inventory-api/internal/otp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockAuthSvc struct{ mock.Mock }

func (m *mockAuthSvc) Register(ctx context.Context, req domain.RegisterRequest) (*auth.RegisterResult, error) {
	args := m.Called(ctx, req)
	if r, _ := args.Get(0).(*auth.RegisterResult); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthSvc) Login(ctx context.Context, req domain.LoginRequest) (*auth.LoginResult, error) {
	args := m.Called(ctx, req)
	if r, _ := args.Get(0).(*auth.LoginResult); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthSvc) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if p, _ := args.Get(0).(*auth.TokenPair); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthSvc) InitiateOTPLogin(ctx context.Context, address string) error {
	return m.Called(ctx, address).Error(0)
}

func (m *mockAuthSvc) CompleteOTPLogin(ctx context.Context, address, code string) (*auth.TokenPair, error) {
	args := m.Called(ctx, address, code)
	if p, _ := args.Get(0).(*auth.TokenPair); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- helpers ---

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

// --- tests ---

func TestRegisterHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(mockAuthSvc)
		svc.On("Register", mock.Anything, domain.RegisterRequest{Email: "a@example.com", Password: "Str0ng!pass"}).
			Return(&auth.RegisterResult{
				Token:   "tok",
				Account: &domain.Account{AccountID: "01A", Email: "a@example.com"},
			}, nil)
		h := NewAuthHandler(svc)

		rr := postJSON(t, h.Register, `{"email":"a@example.com","password":"Str0ng!pass"}`)
		assert.Equal(t, http.StatusCreated, rr.Code)

		body := decodeBody(t, rr)
		assert.Equal(t, "tok", body["token"])
		user := body["user"].(map[string]interface{})
		assert.Equal(t, "01A", user["id"])
		assert.Equal(t, "a@example.com", user["email"])
	})

	t.Run("validation messages are listed", func(t *testing.T) {
		svc := new(mockAuthSvc)
		svc.On("Register", mock.Anything, mock.Anything).
			Return(nil, &domain.ValidationError{Messages: []string{"Email is required", "Password is required"}})
		h := NewAuthHandler(svc)

		rr := postJSON(t, h.Register, `{}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		body := decodeBody(t, rr)
		assert.Len(t, body["errors"], 2)
	})

	t.Run("conflict maps to 400", func(t *testing.T) {
		svc := new(mockAuthSvc)
		svc.On("Register", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("user already exists: %w", domain.ErrConflict))
		h := NewAuthHandler(svc)

		rr := postJSON(t, h.Register, `{"email":"a@example.com","password":"Str0ng!pass"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		h := NewAuthHandler(new(mockAuthSvc))
		rr := postJSON(t, h.Register, `{not json`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("password present routes to password login", func(t *testing.T) {
		svc := new(mockAuthSvc)
		svc.On("Login", mock.Anything, domain.LoginRequest{Email: "a@example.com", Password: "pw"}).
			Return(&auth.LoginResult{
				AccessToken:  "acc",
				RefreshToken: "ref",
				Account:      &domain.Account{AccountID: "01A", Email: "a@example.com"},
			}, nil)
		h := NewAuthHandler(svc)

		rr := postJSON(t, h.Login, `{"email":"a@example.com","password":"pw"}`)
		assert.Equal(t, http.StatusOK, rr.Code)

		body := decodeBody(t, rr)
		assert.Equal(t, "acc", body["accessToken"])
		assert.Equal(t, "ref", body["refreshToken"])
		svc.AssertNotCalled(t, "InitiateOTPLogin", mock.Anything, mock.Anything)
	})

	t.Run("password absent routes to OTP initiation", func(t *testing.T) {
		svc := new(mockAuthSvc)
		svc.On("InitiateOTPLogin", mock.Anything, "a@example.com").Return(nil)
		h := NewAuthHandler(svc)

		rr := postJSON(t, h.Login, `{"email":"a@example.com"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "OTP sent successfully", decodeBody(t, rr)["message"])
		svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})

	t.Run("bad credentials map to 401", func(t *testing.T) {
		svc := new(mockAuthSvc)
		svc.On("Login", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized))
		h := NewAuthHandler(svc)

		rr := postJSON(t, h.Login, `{"email":"a@example.com","password":"bad"}`)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("OTP delivery failure maps to 500", func(t *testing.T) {
		svc := new(mockAuthSvc)
		svc.On("InitiateOTPLogin", mock.Anything, "a@example.com").
			Return(fmt.Errorf("send OTP: smtp down: %w", domain.ErrDelivery))
		h := NewAuthHandler(svc)

		rr := postJSON(t, h.Login, `{"email":"a@example.com"}`)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestRefreshHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(mockAuthSvc)
		svc.On("Refresh", mock.Anything, "ref").
			Return(&auth.TokenPair{AccessToken: "acc2", RefreshToken: "ref2"}, nil)
		h := NewAuthHandler(svc)

		rr := postJSON(t, h.Refresh, `{"refreshToken":"ref"}`)
		assert.Equal(t, http.StatusOK, rr.Code)

		body := decodeBody(t, rr)
		assert.Equal(t, "acc2", body["accessToken"])
		assert.Equal(t, "ref2", body["refreshToken"])
	})

	t.Run("expired maps to 401", func(t *testing.T) {
		svc := new(mockAuthSvc)
		svc.On("Refresh", mock.Anything, "stale").
			Return(nil, fmt.Errorf("token is expired: %w", domain.ErrTokenExpired))
		h := NewAuthHandler(svc)

		rr := postJSON(t, h.Refresh, `{"refreshToken":"stale"}`)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("unknown subject maps to 404", func(t *testing.T) {
		svc := new(mockAuthSvc)
		svc.On("Refresh", mock.Anything, "orphan").
			Return(nil, fmt.Errorf("user not found: %w", domain.ErrNotFound))
		h := NewAuthHandler(svc)

		rr := postJSON(t, h.Refresh, `{"refreshToken":"orphan"}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestVerifyOTPHandler(t *testing.T) {
	t.Run("known account gets tokens", func(t *testing.T) {
		svc := new(mockAuthSvc)
		svc.On("CompleteOTPLogin", mock.Anything, "a@example.com", "123456").
			Return(&auth.TokenPair{AccessToken: "acc", RefreshToken: "ref"}, nil)
		h := NewAuthHandler(svc)

		rr := postJSON(t, h.VerifyOTP, `{"email":"a@example.com","otp":"123456"}`)
		assert.Equal(t, http.StatusOK, rr.Code)

		body := decodeBody(t, rr)
		assert.Equal(t, "acc", body["accessToken"])
	})

	t.Run("unknown address gets a bare confirmation", func(t *testing.T) {
		svc := new(mockAuthSvc)
		svc.On("CompleteOTPLogin", mock.Anything, "guest@example.com", "123456").Return(nil, nil)
		h := NewAuthHandler(svc)

		rr := postJSON(t, h.VerifyOTP, `{"email":"guest@example.com","otp":"123456"}`)
		assert.Equal(t, http.StatusOK, rr.Code)

		body := decodeBody(t, rr)
		assert.NotContains(t, body, "accessToken")
		assert.Equal(t, "OTP verified successfully", body["message"])
	})

	t.Run("otp errors map to 400", func(t *testing.T) {
		for _, otpErr := range []error{otp.ErrNotPending, otp.ErrMismatch} {
			svc := new(mockAuthSvc)
			svc.On("CompleteOTPLogin", mock.Anything, "a@example.com", "000000").Return(nil, otpErr)
			h := NewAuthHandler(svc)

			rr := postJSON(t, h.VerifyOTP, `{"email":"a@example.com","otp":"000000"}`)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		}
	})
}
