package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/pearmediallc/symphony-ai/domain"
	"github.com/pearmediallc/symphony-ai/internal/mocks"
)

func newTestAuthService(repo domain.SessionRepository, tokenSvc domain.TokenService) domain.AuthService {
	return NewAuthService("operator", "hunter2", repo, tokenSvc, time.Hour, zap.NewNop())
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		password    string
		expectError error
	}{
		{name: "exact match succeeds", username: "operator", password: "hunter2"},
		{name: "wrong password", username: "operator", password: "hunter3", expectError: domain.ErrInvalidCredentials},
		{name: "wrong username", username: "Operator", password: "hunter2", expectError: domain.ErrInvalidCredentials},
		{name: "empty credentials", username: "", password: "", expectError: domain.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created *domain.Session
			repo := mocks.NewMockSessionRepository()
			repo.CreateFunc = func(ctx context.Context, session *domain.Session) error {
				created = session
				return nil
			}
			svc := newTestAuthService(repo, mocks.NewMockTokenService())

			session, token, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Fatalf("expected %v, got %v", tt.expectError, err)
				}
				if created != nil {
					t.Error("expected no session on failed login")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if session == nil || !session.Authenticated {
				t.Fatalf("expected authenticated session, got %+v", session)
			}
			if created == nil || created.ID != session.ID {
				t.Error("expected session persisted in the repository")
			}
			if token != "signed:"+session.ID {
				t.Errorf("expected signed cookie token, got %q", token)
			}
			if time.Until(session.ExpiresAt) > time.Hour || time.Until(session.ExpiresAt) < 50*time.Minute {
				t.Errorf("expected TTL-bounded deadline, got %v", session.ExpiresAt)
			}
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	live := &domain.Session{
		ID:            "sess-1",
		Authenticated: true,
		CreatedAt:     time.Now(),
		ExpiresAt:     time.Now().Add(time.Hour),
	}

	tests := []struct {
		name        string
		token       string
		findErr     error
		expectError bool
	}{
		{name: "valid token and live session", token: "signed:sess-1"},
		{name: "bad token", token: "garbage", expectError: true},
		{name: "session gone", token: "signed:sess-1", findErr: domain.ErrSessionNotFound, expectError: true},
		{name: "session expired", token: "signed:sess-1", findErr: domain.ErrSessionExpired, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refreshed := false
			repo := mocks.NewMockSessionRepository()
			repo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
				if tt.findErr != nil {
					return nil, tt.findErr
				}
				if sessionID != "sess-1" {
					return nil, domain.ErrSessionNotFound
				}
				return live, nil
			}
			repo.RefreshFunc = func(ctx context.Context, sessionID string, ttl time.Duration) error {
				refreshed = true
				return nil
			}
			svc := newTestAuthService(repo, mocks.NewMockTokenService())

			session, err := svc.Authenticate(context.Background(), tt.token)
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if session.ID != "sess-1" {
				t.Errorf("expected live session, got %+v", session)
			}
			if !refreshed {
				t.Error("expected idle deadline to be refreshed")
			}
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	deleted := ""
	repo := mocks.NewMockSessionRepository()
	repo.DeleteFunc = func(ctx context.Context, sessionID string) error {
		deleted = sessionID
		return nil
	}
	svc := newTestAuthService(repo, mocks.NewMockTokenService())

	if err := svc.Logout(context.Background(), "sess-9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != "sess-9" {
		t.Errorf("expected session deleted, got %q", deleted)
	}
}
