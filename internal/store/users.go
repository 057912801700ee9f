// internal/store/users.go
package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"giftwise/internal/common/database"
	stderrors "giftwise/internal/common/errors"
	"giftwise/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// UserStore persists accounts in Postgres.
type UserStore struct {
	db *database.PostgresClient
}

func NewUserStore(db *database.PostgresClient) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a new user. The email is stored trimmed and lowercased;
// inserting a duplicate returns a duplicate-user error.
func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.Email = NormalizeEmail(user.Email)
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := s.db.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return stderrors.NewDuplicateUserError(user.Email)
		}
		return stderrors.NewQueryExecutionFailedError("create user", err)
	}
	return nil
}

// FindByEmail returns the user with the given email, or a not-found error.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users WHERE email = $1`, NormalizeEmail(email))
}

// FindByID returns the user with the given id, or a not-found error.
func (s *UserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	return s.findOne(ctx, `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users WHERE id = $1`, id)
}

func (s *UserStore) findOne(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, stderrors.NewUserNotFoundError("no matching user record")
	}
	if err != nil {
		return nil, stderrors.NewQueryExecutionFailedError("find user", err)
	}
	return &user, nil
}

// UpdatePassword replaces a user's password hash.
func (s *UserStore) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	res, err := s.db.Exec(ctx, `
		UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`,
		passwordHash, time.Now().UTC(), userID,
	)
	if err != nil {
		return stderrors.NewQueryExecutionFailedError("update password", err)
	}
	return s.requireRow(res)
}

// UpdateRole changes a user's role.
func (s *UserStore) UpdateRole(ctx context.Context, userID, role string) error {
	res, err := s.db.Exec(ctx, `
		UPDATE users SET role = $1, updated_at = $2 WHERE id = $3`,
		role, time.Now().UTC(), userID,
	)
	if err != nil {
		return stderrors.NewQueryExecutionFailedError("update role", err)
	}
	return s.requireRow(res)
}

// List returns all users, newest first.
func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, stderrors.NewQueryExecutionFailedError("list users", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.PasswordHash,
			&user.Role, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, stderrors.NewQueryExecutionFailedError("scan user", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, stderrors.NewQueryExecutionFailedError("list users", err)
	}
	return users, nil
}

func (s *UserStore) requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return stderrors.NewQueryExecutionFailedError("rows affected", err)
	}
	if affected == 0 {
		return stderrors.NewUserNotFoundError("no matching user record")
	}
	return nil
}

// NormalizeEmail canonicalizes an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
