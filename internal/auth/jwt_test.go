// internal/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	stderrors "giftwise/internal/common/errors"
	"giftwise/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenManager() *TokenManager {
	return NewTokenManager("test-secret", time.Hour, 15*time.Minute)
}

// ========== 1. AUTH TOKENS ==========

func TestTokenManager_IssueAndVerifyAuthToken(t *testing.T) {
	tm := newTokenManager()

	token, expiresAt, err := tm.IssueAuthToken("user-1", "alice@example.com", models.RoleUser, "sess-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tm.VerifyAuthToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.Equal(t, "sess-1", claims.SessionID)
}

func TestTokenManager_VerifyAuthToken_WrongSecret(t *testing.T) {
	token, _, err := newTokenManager().IssueAuthToken("user-1", "alice@example.com", models.RoleUser, "sess-1")
	require.NoError(t, err)

	other := NewTokenManager("different-secret", time.Hour, 15*time.Minute)
	_, err = other.VerifyAuthToken(token)
	require.Error(t, err)
	assert.True(t, stderrors.IsCode(err, stderrors.ErrCodeNotAuthenticated))
}

func TestTokenManager_VerifyAuthToken_Expired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute, 15*time.Minute)

	token, _, err := tm.IssueAuthToken("user-1", "alice@example.com", models.RoleUser, "sess-1")
	require.NoError(t, err)

	_, err = tm.VerifyAuthToken(token)
	require.Error(t, err)
	assert.True(t, stderrors.IsCode(err, stderrors.ErrCodeNotAuthenticated))
}

func TestTokenManager_VerifyAuthToken_Garbage(t *testing.T) {
	_, err := newTokenManager().VerifyAuthToken("not-a-token")
	require.Error(t, err)
	assert.True(t, stderrors.IsCode(err, stderrors.ErrCodeNotAuthenticated))
}

// ========== 2. RESET TOKENS ==========

func TestTokenManager_IssueAndVerifyResetToken(t *testing.T) {
	tm := newTokenManager()

	token, err := tm.IssueResetToken("user-1", "alice@example.com")
	require.NoError(t, err)

	claims, err := tm.VerifyResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestTokenManager_ResetTokenRejectedAsAuthToken(t *testing.T) {
	tm := newTokenManager()

	token, err := tm.IssueResetToken("user-1", "alice@example.com")
	require.NoError(t, err)

	_, err = tm.VerifyAuthToken(token)
	require.Error(t, err)
	assert.True(t, stderrors.IsCode(err, stderrors.ErrCodeNotAuthenticated))
}

func TestTokenManager_AuthTokenRejectedAsResetToken(t *testing.T) {
	tm := newTokenManager()

	token, _, err := tm.IssueAuthToken("user-1", "alice@example.com", models.RoleUser, "sess-1")
	require.NoError(t, err)

	_, err = tm.VerifyResetToken(token)
	require.Error(t, err)
	assert.True(t, stderrors.IsCode(err, stderrors.ErrCodeInvalidResetToken))
}
