// internal/store/schema.go
package store

import (
	"context"

	"giftwise/internal/common/database"
	stderrors "giftwise/internal/common/errors"
)

const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'user',
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
)`

// EnsureSchema creates the relational tables if they do not exist yet.
// Called once at startup; safe to run repeatedly.
func EnsureSchema(ctx context.Context, db *database.PostgresClient) error {
	if _, err := db.Exec(ctx, usersSchema); err != nil {
		return stderrors.NewQueryExecutionFailedError("ensure schema", err)
	}
	return nil
}
