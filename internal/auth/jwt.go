// internal/auth/jwt.go
package auth

import (
	"fmt"
	"time"

	stderrors "giftwise/internal/common/errors"

	"github.com/golang-jwt/jwt/v5"
)

const resetPurpose = "password_reset"

// Claims is the payload carried by auth tokens.
type Claims struct {
	UserID    string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	SessionID string `json:"sid,omitempty"`
	Purpose   string `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 tokens: long-lived auth tokens
// bound to a session, and short-lived password-reset tokens.
type TokenManager struct {
	secret   []byte
	tokenTTL time.Duration
	resetTTL time.Duration
}

func NewTokenManager(secret string, tokenTTL, resetTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		resetTTL: resetTTL,
	}
}

// IssueAuthToken signs a session-bound auth token.
func (m *TokenManager) IssueAuthToken(userID, email, role, sessionID string) (string, time.Time, error) {
	expiresAt := time.Now().Add(m.tokenTTL)

	claims := Claims{
		UserID:    userID,
		Email:     email,
		Role:      role,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}

// IssueResetToken signs a short-lived token for a password reset link.
func (m *TokenManager) IssueResetToken(userID, email string) (string, error) {
	claims := Claims{
		UserID:  userID,
		Email:   email,
		Purpose: resetPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.resetTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign reset token: %w", err)
	}
	return token, nil
}

// VerifyAuthToken parses and validates an auth token.
func (m *TokenManager) VerifyAuthToken(token string) (*Claims, error) {
	claims, err := m.verify(token)
	if err != nil {
		return nil, stderrors.NewNotAuthenticatedError()
	}
	if claims.Purpose != "" {
		// Reset tokens are not valid for API access.
		return nil, stderrors.NewNotAuthenticatedError()
	}
	return claims, nil
}

// VerifyResetToken parses and validates a password-reset token.
func (m *TokenManager) VerifyResetToken(token string) (*Claims, error) {
	claims, err := m.verify(token)
	if err != nil {
		return nil, stderrors.NewInvalidResetTokenError("token is invalid or expired")
	}
	if claims.Purpose != resetPurpose {
		return nil, stderrors.NewInvalidResetTokenError("token is not a reset token")
	}
	return claims, nil
}

func (m *TokenManager) verify(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
