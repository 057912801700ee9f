// internal/store/schema_test.go
package store

import (
	"context"
	"errors"
	"testing"

	"giftwise/internal/common/database"
	stderrors "giftwise/internal/common/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = EnsureSchema(context.Background(), &database.PostgresClient{DB: db})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").
		WillReturnError(errors.New("permission denied"))

	err = EnsureSchema(context.Background(), &database.PostgresClient{DB: db})

	require.Error(t, err)
	assert.True(t, stderrors.IsCode(err, stderrors.ErrCodeQueryExecutionFailed))
}
