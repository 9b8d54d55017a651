package mocks

import (
	"time"

	"github.com/pearmediallc/symphony-ai/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateFunc func(sessionID string, expiresAt time.Time) (string, error)
	ValidateFunc func(token string) (string, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate signs a session id into a cookie token
func (m *MockTokenService) Generate(sessionID string, expiresAt time.Time) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(sessionID, expiresAt)
	}
	// Default behavior: token is "signed:" + session id
	return "signed:" + sessionID, nil
}

// Validate verifies a cookie token and returns the session id
func (m *MockTokenService) Validate(token string) (string, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: accept tokens minted by the default Generate
	if len(token) > 7 && token[:7] == "signed:" {
		return token[7:], nil
	}
	return "", domain.ErrTokenInvalid
}
