// internal/store/sessions_test.go
package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"giftwise/internal/common/database"
	"giftwise/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisClient(t *testing.T) *database.RedisClient {
	mr := miniredis.RunT(t)
	return &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
}

func testSession(userID, sessionID string) models.Session {
	now := time.Now().UTC()
	return models.Session{
		ID:        sessionID,
		UserID:    userID,
		IPAddress: "127.0.0.1",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestSessionStore_CreateAndGet(t *testing.T) {
	store := NewSessionStore(newRedisClient(t))
	ctx := context.Background()

	session := testSession("u1", "s1")
	require.NoError(t, store.Create(ctx, session))

	got, err := store.Get(ctx, "u1", "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "s1", got.ID)
}

func TestSessionStore_GetMissing(t *testing.T) {
	store := NewSessionStore(newRedisClient(t))

	got, err := store.Get(context.Background(), "u1", "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_GetExpiredPayload(t *testing.T) {
	// A key can outlive its payload's expiry when clocks drift or the
	// TTL was rounded up; Get must still treat the session as gone.
	rdb := newRedisClient(t)
	store := NewSessionStore(rdb)
	ctx := context.Background()

	session := testSession("u1", "s1")
	session.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	data, err := json.Marshal(session)
	require.NoError(t, err)
	require.NoError(t, rdb.Client.Set(ctx, sessionKey("u1", "s1"), data, 0).Err())

	got, err := store.Get(ctx, "u1", "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_CreateExpired(t *testing.T) {
	store := NewSessionStore(newRedisClient(t))

	session := testSession("u1", "s1")
	session.ExpiresAt = time.Now().Add(-time.Minute)

	err := store.Create(context.Background(), session)
	assert.Error(t, err)
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore(newRedisClient(t))
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testSession("u1", "s1")))
	require.NoError(t, store.Delete(ctx, "u1", "s1"))

	got, err := store.Get(ctx, "u1", "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_DeleteAll(t *testing.T) {
	store := NewSessionStore(newRedisClient(t))
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testSession("u1", "s1")))
	require.NoError(t, store.Create(ctx, testSession("u1", "s2")))
	require.NoError(t, store.Create(ctx, testSession("u2", "s3")))

	require.NoError(t, store.DeleteAll(ctx, "u1"))

	for _, sid := range []string{"s1", "s2"} {
		got, err := store.Get(ctx, "u1", sid)
		require.NoError(t, err)
		assert.Nil(t, got)
	}

	// Other users keep their sessions.
	got, err := store.Get(ctx, "u2", "s3")
	require.NoError(t, err)
	assert.NotNil(t, got)
}
