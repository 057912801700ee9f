// internal/store/recommendations.go
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"giftwise/internal/common/database"
	stderrors "giftwise/internal/common/errors"
	"giftwise/internal/models"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const recommendationsIndex = "recommendations"

// RecommendationStore keeps recommendation runs in Elasticsearch, which
// also backs the admin usage stats.
type RecommendationStore struct {
	es *database.ElasticsearchClient
}

func NewRecommendationStore(es *database.ElasticsearchClient) *RecommendationStore {
	return &RecommendationStore{es: es}
}

// Save indexes a recommendation run.
func (s *RecommendationStore) Save(ctx context.Context, rec models.Recommendation) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return stderrors.NewPersistenceFailedError(err)
	}

	res, err := s.es.Client.Index(
		recommendationsIndex,
		bytes.NewReader(body),
		s.es.Client.Index.WithDocumentID(rec.ID),
		s.es.Client.Index.WithContext(ctx),
	)
	if err != nil {
		return stderrors.NewPersistenceFailedError(err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return stderrors.NewPersistenceFailedError(fmt.Errorf("index recommendation: %s", res.Status()))
	}
	return nil
}

// ListByUser returns a user's recommendation history, newest first.
func (s *RecommendationStore) ListByUser(ctx context.Context, userID string, limit int) ([]models.Recommendation, error) {
	if limit <= 0 {
		limit = 20
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"term": map[string]interface{}{
				"userId.keyword": userID,
			},
		},
		"sort": []interface{}{
			map[string]interface{}{"createdAt": map[string]interface{}{"order": "desc"}},
		},
		"size": limit,
	}

	body, _ := json.Marshal(query)

	res, err := s.es.Client.Search(
		s.es.Client.Search.WithContext(ctx),
		s.es.Client.Search.WithIndex(recommendationsIndex),
		s.es.Client.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, stderrors.NewSearchQueryFailedError("list recommendations", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, stderrors.NewSearchQueryFailedError("list recommendations", fmt.Errorf("%s", res.Status()))
	}

	var envelope struct {
		Hits struct {
			Hits []struct {
				Source models.Recommendation `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, stderrors.NewSearchQueryFailedError("decode recommendations", err)
	}

	recs := make([]models.Recommendation, 0, len(envelope.Hits.Hits))
	for _, hit := range envelope.Hits.Hits {
		recs = append(recs, hit.Source)
	}
	return recs, nil
}

// Stats counts all runs, today's runs, and this month's runs.
func (s *RecommendationStore) Stats(ctx context.Context) (models.RecommendationStats, error) {
	total, err := s.count(ctx, nil)
	if err != nil {
		return models.RecommendationStats{}, err
	}

	today, err := s.count(ctx, map[string]interface{}{
		"range": map[string]interface{}{
			"createdAt": map[string]interface{}{"gte": "now/d"},
		},
	})
	if err != nil {
		return models.RecommendationStats{}, err
	}

	month, err := s.count(ctx, map[string]interface{}{
		"range": map[string]interface{}{
			"createdAt": map[string]interface{}{"gte": "now/M"},
		},
	})
	if err != nil {
		return models.RecommendationStats{}, err
	}

	return models.RecommendationStats{Total: total, Today: today, ThisMonth: month}, nil
}

func (s *RecommendationStore) count(ctx context.Context, query map[string]interface{}) (int64, error) {
	countFn := s.es.Client.Count

	opts := []func(*esapi.CountRequest){
		countFn.WithContext(ctx),
		countFn.WithIndex(recommendationsIndex),
	}
	if query != nil {
		body, _ := json.Marshal(map[string]interface{}{"query": query})
		opts = append(opts, countFn.WithBody(bytes.NewReader(body)))
	}

	res, err := countFn(opts...)
	if err != nil {
		return 0, stderrors.NewSearchQueryFailedError("count recommendations", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, stderrors.NewSearchQueryFailedError("count recommendations", fmt.Errorf("%s", res.Status()))
	}

	var envelope struct {
		Count int64 `json:"count"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return 0, stderrors.NewSearchQueryFailedError("decode count", err)
	}
	return envelope.Count, nil
}
