// internal/recommend/service.go
package recommend

import (
	"context"
	"time"

	"giftwise/internal/common/logger"
	"giftwise/internal/common/metrics"
	"giftwise/internal/gemini"
	"giftwise/internal/models"

	"github.com/google/uuid"
)

// DefaultBudget is assumed when a survey arrives without one.
const DefaultBudget = gemini.DefaultBudget

// Saver persists completed recommendation runs.
type Saver interface {
	Save(ctx context.Context, rec models.Recommendation) error
}

// Result is a served set of gifts. Degraded marks sets that came from the
// curated catalog because the model could not be used.
type Result struct {
	Gifts    []models.Gift `json:"gifts"`
	Degraded bool          `json:"degraded"`
}

// Service orchestrates a recommendation run: ask the model once, degrade
// to the catalog on any failure, then persist best-effort for signed-in
// users. Serving gifts always succeeds.
type Service struct {
	requester gemini.Requester
	fallback  *Fallback
	saver     Saver
	logger    logger.Logger
}

// NewService wires the orchestrator. requester may be nil when the model
// is not configured; every run then degrades to the catalog.
func NewService(requester gemini.Requester, fallback *Fallback, saver Saver, log logger.Logger) *Service {
	return &Service{
		requester: requester,
		fallback:  fallback,
		saver:     saver,
		logger:    log,
	}
}

// Recommend produces gifts for a survey. userID is empty for anonymous
// requests, which are served but never persisted.
func (s *Service) Recommend(ctx context.Context, userID string, survey models.Survey) Result {
	result := s.generate(ctx, survey)

	if result.Degraded {
		metrics.RecommendationsTotal.WithLabelValues("fallback").Inc()
	} else {
		metrics.RecommendationsTotal.WithLabelValues("live").Inc()
	}

	s.persist(ctx, userID, survey, result)
	return result
}

func (s *Service) generate(ctx context.Context, survey models.Survey) Result {
	if s.requester == nil {
		return Result{Gifts: s.fallback.Select(survey), Degraded: true}
	}

	gifts, err := s.requester.Suggest(ctx, survey)
	if err != nil {
		s.logger.WithError(err).Warn("model suggestion failed, serving catalog fallback", map[string]interface{}{
			"interests": len(survey.Interests),
		})
		return Result{Gifts: s.fallback.Select(survey), Degraded: true}
	}

	return Result{Gifts: gifts, Degraded: false}
}

// persist stores the run for signed-in users. Failures are logged and
// swallowed; persistence never blocks serving gifts.
func (s *Service) persist(ctx context.Context, userID string, survey models.Survey, result Result) {
	if userID == "" || s.saver == nil {
		return
	}

	rec := models.Recommendation{
		ID:        uuid.NewString(),
		UserID:    userID,
		Survey:    survey,
		Gifts:     result.Gifts,
		Degraded:  result.Degraded,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.saver.Save(ctx, rec); err != nil {
		s.logger.WithError(err).Error("failed to persist recommendation", map[string]interface{}{
			"user_id": userID,
		})
	}
}
