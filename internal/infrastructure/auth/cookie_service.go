package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pearmediallc/symphony-ai/domain"
)

// CookieTokenService implements domain.TokenService. The session cookie
// value is an HS256 JWT carrying the session id, signed with the
// process-wide secret key so a forged cookie never reaches the store.
type CookieTokenService struct {
	secretKey []byte
	issuer    string
}

// NewCookieTokenService creates a new cookie token service.
func NewCookieTokenService(secretKey, issuer string) *CookieTokenService {
	return &CookieTokenService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
	}
}

// Generate implements domain.TokenService.
func (s *CookieTokenService) Generate(sessionID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"iss": s.issuer,
		"iat": time.Now().Unix(),
		"exp": expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Validate implements domain.TokenService and returns the session id the
// token was minted for.
func (s *CookieTokenService) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrTokenMalformed
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", domain.ErrTokenMalformed
	}
	return sid, nil
}
