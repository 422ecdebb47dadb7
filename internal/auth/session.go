package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/fragmede/linkedinify/internal/storage"
)

// TokenKey is the storage key holding the credential.
const TokenKey = "linkedinify_auth_token"

// KV is the durable key/value store the session lives in.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Authenticator exchanges credentials for a token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password string) (string, error)
}

// Session is the process-wide handle on the stored credential. It is created
// once at startup and handed to the views that need it.
type Session struct {
	kv   KV
	auth Authenticator
	log  *zap.SugaredLogger
}

// NewSession creates a session backed by kv.
func NewSession(kv KV, auth Authenticator, log *zap.SugaredLogger) *Session {
	return &Session{kv: kv, auth: auth, log: log}
}

// Save persists token, replacing any previous one.
func (s *Session) Save(ctx context.Context, token string) error {
	if err := s.kv.Set(ctx, TokenKey, token); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	return nil
}

// Token returns the stored token, or false if there is none. Storage errors
// are logged and reported as absent.
func (s *Session) Token(ctx context.Context) (string, bool) {
	token, err := s.kv.Get(ctx, TokenKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warnw("reading token", "error", err)
		}
		return "", false
	}
	return token, true
}

// IsAuthenticated reports whether a non-empty token is stored.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	token, ok := s.Token(ctx)
	return ok && token != ""
}

// Remove deletes the stored token. Removing an absent token is a no-op.
func (s *Session) Remove(ctx context.Context) error {
	if err := s.kv.Delete(ctx, TokenKey); err != nil {
		return fmt.Errorf("removing token: %w", err)
	}
	return nil
}

// Login authenticates and stores the returned token. On failure the stored
// token is left as it was.
func (s *Session) Login(ctx context.Context, email, password string) (string, error) {
	token, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.log.Errorw("login error", "email", email, "error", err)
		return "", err
	}
	if err := s.Save(ctx, token); err != nil {
		return "", err
	}
	return token, nil
}

// Register creates an account and stores the returned token.
func (s *Session) Register(ctx context.Context, email, password string) (string, error) {
	token, err := s.auth.Register(ctx, email, password)
	if err != nil {
		s.log.Errorw("registration error", "email", email, "error", err)
		return "", err
	}
	if err := s.Save(ctx, token); err != nil {
		return "", err
	}
	return token, nil
}

// Account returns a label for the signed-in user taken from the token's "sub"
// claim. The token is not verified; the label is for display only and is
// empty when the token is not a JWT.
func (s *Session) Account(ctx context.Context) string {
	token, ok := s.Token(ctx)
	if !ok || token == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	sub, _ := claims.GetSubject()
	return sub
}
