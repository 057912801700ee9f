// internal/auth/service.go
package auth

import (
	"context"
	"fmt"
	"time"

	stderrors "giftwise/internal/common/errors"
	"giftwise/internal/common/logger"
	"giftwise/internal/common/validation"
	"giftwise/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// UserRepository is the account storage the service needs.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

// SessionRepository tracks issued sessions for revocation.
type SessionRepository interface {
	Create(ctx context.Context, session models.Session) error
	Get(ctx context.Context, userID, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, userID, sessionID string) error
	DeleteAll(ctx context.Context, userID string) error
}

// Mailer delivers password-reset links.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, resetLink string) error
}

// ClientInfo records where a session was opened from.
type ClientInfo struct {
	IP        string
	UserAgent string
}

// Credentials is the result of a successful register or login.
type Credentials struct {
	User      models.SafeUser `json:"user"`
	Token     string          `json:"-"`
	ExpiresAt time.Time       `json:"-"`
}

// Service implements account signup, login, session revocation and the
// password-reset flow.
type Service struct {
	users      UserRepository
	sessions   SessionRepository
	tokens     *TokenManager
	mailer     Mailer
	bcryptCost int
	resetURL   string
	logger     logger.Logger
}

// NewService wires the auth service. mailer may be nil; the reset flow
// then only logs the token instead of emailing it.
func NewService(users UserRepository, sessions SessionRepository, tokens *TokenManager, mailer Mailer, bcryptCost int, resetURL string, log logger.Logger) *Service {
	return &Service{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		mailer:     mailer,
		bcryptCost: bcryptCost,
		resetURL:   resetURL,
		logger:     log,
	}
}

// Register creates an account and signs the new user in.
func (s *Service) Register(ctx context.Context, name, email, password string, client ClientInfo) (*Credentials, error) {
	if name == "" {
		return nil, stderrors.NewValidationFailedError("name is required")
	}
	if !validation.ValidateEmail(email) {
		return nil, stderrors.NewValidationFailedError("email address is invalid")
	}
	if len(password) < minPasswordLength {
		return nil, stderrors.NewValidationFailedError(
			fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, stderrors.NewInternalError(err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", map[string]interface{}{"user_id": user.ID})
	return s.startSession(ctx, user, client)
}

// Login verifies credentials and signs the user in. Unknown emails and
// wrong passwords produce the same error.
func (s *Service) Login(ctx context.Context, email, password string, client ClientInfo) (*Credentials, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.IsCode(err, stderrors.ErrCodeUserNotFound) {
			return nil, stderrors.NewInvalidCredentialsError()
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, stderrors.NewInvalidCredentialsError()
	}

	return s.startSession(ctx, user, client)
}

func (s *Service) startSession(ctx context.Context, user *models.User, client ClientInfo) (*Credentials, error) {
	sessionID := uuid.NewString()

	token, expiresAt, err := s.tokens.IssueAuthToken(user.ID, user.Email, user.Role, sessionID)
	if err != nil {
		return nil, stderrors.NewInternalError(err)
	}

	session := models.Session{
		ID:        sessionID,
		UserID:    user.ID,
		IPAddress: client.IP,
		UserAgent: client.UserAgent,
		CreatedAt: time.Now().UTC(),
		ExpiresAt: expiresAt,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	return &Credentials{
		User:      user.Safe(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Authenticate resolves a token to its user, rejecting revoked sessions.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.User, *Claims, error) {
	claims, err := s.tokens.VerifyAuthToken(token)
	if err != nil {
		return nil, nil, err
	}

	session, err := s.sessions.Get(ctx, claims.UserID, claims.SessionID)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, stderrors.NewNotAuthenticatedError()
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if stderrors.IsCode(err, stderrors.ErrCodeUserNotFound) {
			return nil, nil, stderrors.NewNotAuthenticatedError()
		}
		return nil, nil, err
	}
	return user, claims, nil
}

// Logout revokes the token's session.
func (s *Service) Logout(ctx context.Context, claims *Claims) error {
	return s.sessions.Delete(ctx, claims.UserID, claims.SessionID)
}

// ForgotPassword mints a reset token for the account and emails a reset
// link. Unknown emails return a not-found error.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.IsCode(err, stderrors.ErrCodeUserNotFound) {
			return stderrors.NewUserNotFoundError("No account found with this email")
		}
		return err
	}

	token, err := s.tokens.IssueResetToken(user.ID, user.Email)
	if err != nil {
		return stderrors.NewInternalError(err)
	}

	link := fmt.Sprintf("%s?token=%s", s.resetURL, token)

	if s.mailer == nil {
		s.logger.Warn("no mailer configured, skipping reset email", map[string]interface{}{
			"user_id": user.ID,
		})
		return nil
	}

	if err := s.mailer.SendPasswordReset(ctx, user.Email, link); err != nil {
		return stderrors.NewNotificationSendFailedError("password_reset", err)
	}

	s.logger.Info("password reset email sent", map[string]interface{}{"user_id": user.ID})
	return nil
}

// ResetPassword sets a new password from a valid reset token and revokes
// every open session for the account.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	claims, err := s.tokens.VerifyResetToken(token)
	if err != nil {
		return err
	}

	if len(newPassword) < minPasswordLength {
		return stderrors.NewValidationFailedError(
			fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return stderrors.NewInternalError(err)
	}

	if err := s.users.UpdatePassword(ctx, claims.UserID, string(hash)); err != nil {
		return err
	}

	if err := s.sessions.DeleteAll(ctx, claims.UserID); err != nil {
		s.logger.WithError(err).Warn("failed to revoke sessions after password reset", map[string]interface{}{
			"user_id": claims.UserID,
		})
	}
	return nil
}
