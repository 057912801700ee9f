// internal/store/saved_gifts.go
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"giftwise/internal/common/database"
	stderrors "giftwise/internal/common/errors"
	"giftwise/internal/models"
)

// SavedGiftStore keeps each user's wishlist in a Redis hash keyed by
// gift id.
type SavedGiftStore struct {
	redis *database.RedisClient
}

func NewSavedGiftStore(rdb *database.RedisClient) *SavedGiftStore {
	return &SavedGiftStore{redis: rdb}
}

func savedGiftsKey(userID string) string {
	return fmt.Sprintf("saved_gifts:%s", userID)
}

// Save adds a gift to the user's wishlist. Saving the same gift twice
// overwrites the previous entry.
func (s *SavedGiftStore) Save(ctx context.Context, userID string, gift models.Gift) error {
	data, err := json.Marshal(gift)
	if err != nil {
		return stderrors.NewSessionStoreFailedError(err)
	}

	if err := s.redis.Client.HSet(ctx, savedGiftsKey(userID), gift.ID, data).Err(); err != nil {
		return stderrors.NewSessionStoreFailedError(err)
	}
	return nil
}

// List returns every saved gift for the user.
func (s *SavedGiftStore) List(ctx context.Context, userID string) ([]models.Gift, error) {
	entries, err := s.redis.Client.HGetAll(ctx, savedGiftsKey(userID)).Result()
	if err != nil {
		return nil, stderrors.NewSessionStoreFailedError(err)
	}

	gifts := make([]models.Gift, 0, len(entries))
	for _, raw := range entries {
		var gift models.Gift
		if err := json.Unmarshal([]byte(raw), &gift); err != nil {
			return nil, stderrors.NewSessionStoreFailedError(err)
		}
		gifts = append(gifts, gift)
	}
	return gifts, nil
}

// IsSaved reports whether the gift is on the user's wishlist.
func (s *SavedGiftStore) IsSaved(ctx context.Context, userID, giftID string) (bool, error) {
	saved, err := s.redis.Client.HExists(ctx, savedGiftsKey(userID), giftID).Result()
	if err != nil {
		return false, stderrors.NewSessionStoreFailedError(err)
	}
	return saved, nil
}

// Remove deletes a gift from the user's wishlist. Removing a gift that
// is not saved is a no-op.
func (s *SavedGiftStore) Remove(ctx context.Context, userID, giftID string) error {
	if err := s.redis.Client.HDel(ctx, savedGiftsKey(userID), giftID).Err(); err != nil {
		return stderrors.NewSessionStoreFailedError(err)
	}
	return nil
}
