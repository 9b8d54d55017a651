package mocks

import (
	"context"
	"time"

	"github.com/pearmediallc/symphony-ai/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	LoginFunc        func(ctx context.Context, username, password string) (*domain.Session, string, error)
	LogoutFunc       func(ctx context.Context, sessionID string) error
	AuthenticateFunc func(ctx context.Context, cookieToken string) (*domain.Session, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Login authenticates the configured credential pair
func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.Session, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	// Default behavior: accept anything
	session := &domain.Session{
		ID:            "mock-session",
		Authenticated: true,
		CreatedAt:     time.Now(),
		ExpiresAt:     time.Now().Add(time.Hour),
	}
	return session, "signed:mock-session", nil
}

// Logout destroys a session
func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	return nil
}

// Authenticate resolves a cookie token to a live session
func (m *MockAuthService) Authenticate(ctx context.Context, cookieToken string) (*domain.Session, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, cookieToken)
	}
	// Default behavior: no session
	return nil, domain.ErrSessionNotFound
}
