// internal/store/gifts.go
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"giftwise/internal/catalog"
	"giftwise/internal/common/database"
	stderrors "giftwise/internal/common/errors"
	"giftwise/internal/models"
)

const giftsIndex = "gifts"

// GiftStore keeps the browsable gift documents in Elasticsearch.
type GiftStore struct {
	es *database.ElasticsearchClient
}

func NewGiftStore(es *database.ElasticsearchClient) *GiftStore {
	return &GiftStore{es: es}
}

// Index stores a gift document under its id.
func (s *GiftStore) Index(ctx context.Context, gift models.Gift) error {
	body, err := json.Marshal(gift)
	if err != nil {
		return stderrors.NewPersistenceFailedError(err)
	}

	res, err := s.es.Client.Index(
		giftsIndex,
		bytes.NewReader(body),
		s.es.Client.Index.WithDocumentID(gift.ID),
		s.es.Client.Index.WithContext(ctx),
	)
	if err != nil {
		return stderrors.NewPersistenceFailedError(err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return stderrors.NewPersistenceFailedError(fmt.Errorf("index gift: %s", res.Status()))
	}
	return nil
}

// SeedFromCatalog indexes every catalog entry so the browse and detail
// pages work before any model-generated gift exists.
func (s *GiftStore) SeedFromCatalog(ctx context.Context, cat *catalog.Catalog) error {
	for _, gift := range cat.Gifts() {
		if err := s.Index(ctx, gift); err != nil {
			return err
		}
	}
	return nil
}

// GetByID looks a gift up by document id first, then by its id field.
func (s *GiftStore) GetByID(ctx context.Context, id string) (*models.Gift, error) {
	res, err := s.es.Client.Get(
		giftsIndex,
		id,
		s.es.Client.Get.WithContext(ctx),
	)
	if err != nil {
		return nil, stderrors.NewSearchQueryFailedError("get gift", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 404 {
		return s.findByIDField(ctx, id)
	}
	if res.IsError() {
		return nil, stderrors.NewSearchQueryFailedError("get gift", fmt.Errorf("%s", res.Status()))
	}

	var envelope struct {
		Found  bool        `json:"found"`
		Source models.Gift `json:"_source"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, stderrors.NewSearchQueryFailedError("decode gift", err)
	}
	if !envelope.Found {
		return s.findByIDField(ctx, id)
	}
	return &envelope.Source, nil
}

func (s *GiftStore) findByIDField(ctx context.Context, id string) (*models.Gift, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"term": map[string]interface{}{
				"id.keyword": id,
			},
		},
		"size": 1,
	}

	gifts, err := s.search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(gifts) == 0 {
		return nil, stderrors.NewGiftNotFoundError(id)
	}
	return &gifts[0], nil
}

// ListAll returns up to limit gift documents.
func (s *GiftStore) ListAll(ctx context.Context, limit int) ([]models.Gift, error) {
	if limit <= 0 {
		limit = 100
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{"match_all": map[string]interface{}{}},
		"size":  limit,
	}
	return s.search(ctx, query)
}

func (s *GiftStore) search(ctx context.Context, query map[string]interface{}) ([]models.Gift, error) {
	body, _ := json.Marshal(query)

	res, err := s.es.Client.Search(
		s.es.Client.Search.WithContext(ctx),
		s.es.Client.Search.WithIndex(giftsIndex),
		s.es.Client.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, stderrors.NewSearchQueryFailedError("search gifts", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, stderrors.NewSearchQueryFailedError("search gifts", fmt.Errorf("%s", res.Status()))
	}

	var envelope struct {
		Hits struct {
			Hits []struct {
				Source models.Gift `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, stderrors.NewSearchQueryFailedError("decode gifts", err)
	}

	gifts := make([]models.Gift, 0, len(envelope.Hits.Hits))
	for _, hit := range envelope.Hits.Hits {
		gifts = append(gifts, hit.Source)
	}
	return gifts, nil
}
