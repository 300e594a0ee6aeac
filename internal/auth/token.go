package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"research_connect/internal/models"
	"research_connect/pkg/apperrors"
)

// SessionClaims is the claim set embedded in the session cookie.
type SessionClaims struct {
	UserID      string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        models.UserRole `json:"role"`
	CollegeName string          `json:"college_name"`
	jwt.RegisteredClaims
}

// GenerateToken signs the claims with HS256. ttl bounds the validity
// window; sessions default to one day.
func GenerateToken(claims SessionClaims, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", apperrors.ErrServerMisconfigured
	}

	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies the signature and expiry and returns the claims.
// Signature mismatch, expiry and malformed input all collapse into
// ErrInvalidToken; callers never need to tell them apart.
func ParseToken(tokenStr, secret string) (*SessionClaims, error) {
	if secret == "" {
		return nil, apperrors.ErrServerMisconfigured
	}

	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
