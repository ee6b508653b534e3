package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"sampleapp/internal/auth"
	"sampleapp/internal/errors"
	"sampleapp/internal/metrics"
	"sampleapp/internal/model"
)

// Session is a signed session token bound to one account.
type Session struct {
	Token     string
	TokenID   string
	Account   *model.Account
	ExpiresAt time.Time
}

// SessionService turns credentials into sessions and sessions back into accounts.
type SessionService interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	Start(ctx context.Context, account *model.Account) (*Session, error)
	SignOut(ctx context.Context, claims *auth.Claims) error
	Current(ctx context.Context, claims *auth.Claims) (*model.Account, error)
}

type sessionService struct {
	accounts   AccountService
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewSessionService creates a new session service.
func NewSessionService(accounts AccountService, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) SessionService {
	return &sessionService{
		accounts:   accounts,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// SignIn verifies the email/password pair and starts a session.
func (s *sessionService) SignIn(ctx context.Context, email, password string) (*Session, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if err == errors.ErrAccountNotFound {
			metrics.SignInsTotal.WithLabelValues("failure").Inc()
			return nil, errors.ErrInvalidCredentials
		}
		return nil, err
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordDigest), []byte(password)); err != nil {
		metrics.SignInsTotal.WithLabelValues("failure").Inc()
		return nil, errors.ErrInvalidCredentials
	}

	metrics.SignInsTotal.WithLabelValues("success").Inc()
	return s.Start(ctx, account)
}

// Start issues a session token for an already authenticated account.
func (s *sessionService) Start(ctx context.Context, account *model.Account) (*Session, error) {
	tokenID, token, err := s.jwtService.GenerateSessionToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}
	return &Session{
		Token:     token,
		TokenID:   tokenID,
		Account:   account,
		ExpiresAt: time.Now().Add(s.jwtService.TTL()),
	}, nil
}

// SignOut revokes the session until its natural expiry.
func (s *sessionService) SignOut(ctx context.Context, claims *auth.Claims) error {
	if claims == nil {
		return nil
	}
	ttl := s.jwtService.TTL()
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	return s.tokenStore.RevokeSession(ctx, claims.ID, ttl)
}

// Current resolves the account behind a session. A nil account with a nil
// error means nobody is signed in.
func (s *sessionService) Current(ctx context.Context, claims *auth.Claims) (*model.Account, error) {
	if claims == nil {
		return nil, nil
	}
	revoked, err := s.tokenStore.IsSessionRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}
	if revoked {
		return nil, nil
	}

	account, err := s.accounts.GetAccount(ctx, claims.AccountID)
	if err != nil {
		if err == errors.ErrAccountNotFound {
			return nil, nil
		}
		return nil, err
	}
	return account, nil
}
