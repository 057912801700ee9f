// internal/store/sessions.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"giftwise/internal/common/database"
	stderrors "giftwise/internal/common/errors"
	"giftwise/internal/models"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps issued sessions in Redis so logout can revoke a
// token before its JWT expiry. Keys expire with the token.
type SessionStore struct {
	redis *database.RedisClient
}

func NewSessionStore(rdb *database.RedisClient) *SessionStore {
	return &SessionStore{redis: rdb}
}

func sessionKey(userID, sessionID string) string {
	return fmt.Sprintf("session:%s:%s", userID, sessionID)
}

// Create stores a session with a TTL matching its expiry.
func (s *SessionStore) Create(ctx context.Context, session models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return stderrors.NewSessionStoreFailedError(err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return stderrors.NewSessionStoreFailedError(fmt.Errorf("session already expired"))
	}

	if err := s.redis.Set(ctx, sessionKey(session.UserID, session.ID), data, ttl); err != nil {
		return stderrors.NewSessionStoreFailedError(err)
	}
	return nil
}

// Get returns the stored session, or (nil, nil) when it does not exist
// or has passed its expiry. Redis normally drops expired keys through the
// TTL, but the payload's own expiry is still authoritative.
func (s *SessionStore) Get(ctx context.Context, userID, sessionID string) (*models.Session, error) {
	raw, err := s.redis.Get(ctx, sessionKey(userID, sessionID))
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, stderrors.NewSessionStoreFailedError(err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, stderrors.NewSessionStoreFailedError(err)
	}
	if session.IsExpired() {
		return nil, nil
	}
	return &session, nil
}

// Delete revokes a single session.
func (s *SessionStore) Delete(ctx context.Context, userID, sessionID string) error {
	if err := s.redis.Del(ctx, sessionKey(userID, sessionID)); err != nil {
		return stderrors.NewSessionStoreFailedError(err)
	}
	return nil
}

// DeleteAll revokes every session for a user, for example after a
// password reset.
func (s *SessionStore) DeleteAll(ctx context.Context, userID string) error {
	pattern := fmt.Sprintf("session:%s:*", userID)

	iter := s.redis.Client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return stderrors.NewSessionStoreFailedError(err)
	}

	if len(keys) > 0 {
		if err := s.redis.Del(ctx, keys...); err != nil {
			return stderrors.NewSessionStoreFailedError(err)
		}
	}
	return nil
}
