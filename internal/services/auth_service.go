package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pearmediallc/symphony-ai/domain"
)

// AuthServiceImpl implements domain.AuthService against the single
// configured credential pair. Comparison is an exact string match.
type AuthServiceImpl struct {
	username    string
	password    string
	sessionRepo domain.SessionRepository
	tokenSvc    domain.TokenService
	sessionTTL  time.Duration
	logger      *zap.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(
	username, password string,
	sessionRepo domain.SessionRepository,
	tokenSvc domain.TokenService,
	sessionTTL time.Duration,
	logger *zap.Logger,
) domain.AuthService {
	return &AuthServiceImpl{
		username:    username,
		password:    password,
		sessionRepo: sessionRepo,
		tokenSvc:    tokenSvc,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

// Login implements domain.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (*domain.Session, string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		s.logger.Info("login rejected", zap.String("username", username))
		return nil, "", domain.ErrInvalidCredentials
	}

	now := time.Now()
	session := &domain.Session{
		ID:            uuid.NewString(),
		Authenticated: true,
		CreatedAt:     now,
		ExpiresAt:     now.Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.tokenSvc.Generate(session.ID, session.ExpiresAt)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign session token: %w", err)
	}

	s.logger.Info("login accepted", zap.String("session_id", session.ID))
	return session, token, nil
}

// Logout implements domain.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string) error {
	s.logger.Info("logout", zap.String("session_id", sessionID))
	return s.sessionRepo.Delete(ctx, sessionID)
}

// Authenticate implements domain.AuthService: it verifies the cookie token,
// loads the session and keeps it alive by refreshing the idle deadline.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, cookieToken string) (*domain.Session, error) {
	sessionID, err := s.tokenSvc.Validate(cookieToken)
	if err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Authenticated {
		return nil, domain.ErrSessionNotFound
	}

	if err := s.sessionRepo.Refresh(ctx, session.ID, s.sessionTTL); err != nil {
		s.logger.Warn("session refresh failed", zap.String("session_id", session.ID), zap.Error(err))
	}
	return session, nil
}
