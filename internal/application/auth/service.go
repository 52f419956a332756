package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/go-inventory-api/internal/domain"
	jwtinfra "github.com/go-inventory-api/internal/infrastructure/jwt"
	"github.com/go-inventory-api/internal/otp"
	"github.com/go-inventory-api/internal/pkg/id"
	"github.com/go-inventory-api/internal/pkg/validate"
	"golang.org/x/crypto/bcrypt"
)

type RegisterResult struct {
	Token   string
	Account *domain.Account
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
	Account      *domain.Account
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type Service interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*RegisterResult, error)
	Login(ctx context.Context, req domain.LoginRequest) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	InitiateOTPLogin(ctx context.Context, address string) error
	// CompleteOTPLogin returns a token pair when the verified address has a
	// credential record, nil otherwise (bare acknowledgment).
	CompleteOTPLogin(ctx context.Context, address, code string) (*TokenPair, error)
}

type accountStore interface {
	Put(ctx context.Context, a *domain.Account) error
	Get(ctx context.Context, accountID string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

type tokenProvider interface {
	Sign(accountID string, ttl time.Duration) (string, error)
	Verify(tokenStr string) (*jwtinfra.Claims, error)
}

type mailSender interface {
	SendEmail(to, subject, body string) error
}

type smsSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

type service struct {
	accounts accountStore
	tokens   tokenProvider
	otps     otp.Store
	mailer   mailSender
	sms      smsSender

	accessTTL          time.Duration
	refreshedAccessTTL time.Duration
	refreshTTL         time.Duration
	otpTTL             time.Duration
}

type ServiceDeps struct {
	Accounts accountStore
	Tokens   tokenProvider
	OTPs     otp.Store
	Mailer   mailSender
	SMS      smsSender

	AccessTTL          time.Duration
	RefreshedAccessTTL time.Duration
	RefreshTTL         time.Duration
	OTPTTL             time.Duration
}

func NewService(deps ServiceDeps) Service {
	return &service{
		accounts:           deps.Accounts,
		tokens:             deps.Tokens,
		otps:               deps.OTPs,
		mailer:             deps.Mailer,
		sms:                deps.SMS,
		accessTTL:          deps.AccessTTL,
		refreshedAccessTTL: deps.RefreshedAccessTTL,
		refreshTTL:         deps.RefreshTTL,
		otpTTL:             deps.OTPTTL,
	}
}

func (s *service) Register(ctx context.Context, req domain.RegisterRequest) (*RegisterResult, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, err
	}
	// The uniqueness check must actually run: only a definitive miss lets
	// registration proceed. A backend failure here aborts rather than risking
	// a duplicate-email account.
	_, err := s.accounts.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("user already exists: %w", domain.ErrConflict)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("check email uniqueness: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	a := &domain.Account{
		AccountID:    id.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.accounts.Put(ctx, a); err != nil {
		return nil, err
	}
	token, err := s.tokens.Sign(a.AccountID, s.accessTTL)
	if err != nil {
		return nil, err
	}
	return &RegisterResult{Token: token, Account: a}, nil
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*LoginResult, error) {
	// Same error whether the email is unknown or the password is wrong, so
	// responses don't reveal which addresses are registered.
	a, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)
	}
	access, err := s.tokens.Sign(a.AccountID, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.Sign(a.AccountID, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{AccessToken: access, RefreshToken: refresh, Account: a}, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, &domain.ValidationError{Messages: []string{"refreshToken is required"}}
	}
	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return nil, err
	}
	a, err := s.accounts.Get(ctx, claims.AccountID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", domain.ErrNotFound)
	}
	// Re-issued access tokens get a shorter TTL than login-issued ones; the
	// asymmetry is inherited behavior, kept on purpose.
	access, err := s.tokens.Sign(a.AccountID, s.refreshedAccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.Sign(a.AccountID, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *service) InitiateOTPLogin(ctx context.Context, address string) error {
	if address == "" {
		return &domain.ValidationError{Messages: []string{"email is required"}}
	}
	code, err := generateCode()
	if err != nil {
		return err
	}
	s.otps.Put(otp.Record{
		Address:   address,
		Code:      code,
		ExpiresAt: time.Now().Add(s.otpTTL),
	})
	if err := s.dispatch(ctx, address, code); err != nil {
		// Roll back: a code the user never received must not stay redeemable.
		s.otps.Delete(address)
		return fmt.Errorf("send OTP: %v: %w", err, domain.ErrDelivery)
	}
	return nil
}

func (s *service) CompleteOTPLogin(ctx context.Context, address, code string) (*TokenPair, error) {
	if address == "" || code == "" {
		return nil, &domain.ValidationError{Messages: []string{"email and OTP are required"}}
	}
	if err := s.otps.Consume(address, code, time.Now()); err != nil {
		return nil, err
	}
	a, err := s.accounts.GetByEmail(ctx, address)
	if err != nil {
		return nil, nil
	}
	access, err := s.tokens.Sign(a.AccountID, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.Sign(a.AccountID, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// dispatch routes the code to SMS for phone-number addresses and email
// otherwise. A phone-shaped address never falls back to SMTP: emailing a
// phone number can only fail confusingly.
func (s *service) dispatch(ctx context.Context, address, code string) error {
	if isPhoneNumber(address) {
		if s.sms == nil {
			return errors.New("SMS not available")
		}
		return s.sms.SendSMS(ctx, address, "Your OTP is: "+code)
	}
	return s.mailer.SendEmail(address, "Your One-Time Password (OTP)", "Your OTP is: "+code)
}

func isPhoneNumber(address string) bool {
	if !strings.HasPrefix(address, "+") || len(address) < 8 {
		return false
	}
	for _, r := range address[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// generateCode returns a uniformly random 6-digit code in [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
