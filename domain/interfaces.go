package domain

import (
	"context"
	"net/url"
	"time"
)

// SessionRepository defines session storage operations. Backings are
// pluggable; the gate logic depends only on this interface.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
	Refresh(ctx context.Context, sessionID string, ttl time.Duration) error
}

// TokenService signs and verifies the session cookie value.
type TokenService interface {
	Generate(sessionID string, expiresAt time.Time) (string, error)
	Validate(token string) (string, error)
}

// UpstreamClient issues single-shot calls against the advertising API.
// One attempt, fixed timeout, no retry.
type UpstreamClient interface {
	Call(ctx context.Context, method, path, token string, query url.Values, body any) (*UpstreamResult, error)
}

// AuthService defines the login gate. Login returns the created session and
// the signed cookie token for it.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*Session, string, error)
	Logout(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, cookieToken string) (*Session, error)
}
