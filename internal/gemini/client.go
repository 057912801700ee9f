// internal/gemini/client.go
package gemini

import (
	"context"
	"fmt"
	"time"

	"giftwise/internal/common/config"
	stderrors "giftwise/internal/common/errors"
	"giftwise/internal/common/logger"
	"giftwise/internal/common/metrics"
	"giftwise/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Requester produces gift suggestions for a survey. The live
// implementation talks to Gemini; tests substitute their own.
type Requester interface {
	Suggest(ctx context.Context, survey models.Survey) ([]models.Gift, error)
	Close() error
}

// Client calls the Gemini generate API and parses the free-text answer
// into gifts.
type Client struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
	timeout   time.Duration
	logger    logger.Logger
}

// NewClient builds a Gemini-backed requester. A missing API key is a
// configuration error so callers can fall back immediately instead of
// issuing doomed requests.
func NewClient(ctx context.Context, cfg config.GeminiConfig, log logger.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, stderrors.NewConfigurationMissingError("gemini.api_key")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(0.7)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(2048)

	return &Client{
		client:    client,
		model:     model,
		modelName: cfg.Model,
		timeout:   config.GetDuration(cfg.TimeoutMs),
		logger:    log,
	}, nil
}

// Close releases the underlying API connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// Suggest issues a single generate call for the survey. There is no retry;
// the caller degrades to the curated catalog on any error.
func (c *Client) Suggest(ctx context.Context, survey models.Survey) ([]models.Gift, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	prompt := BuildPrompt(survey)

	start := time.Now()
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	metrics.GeminiRequestDuration.WithLabelValues(c.modelName).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.GeminiRequestsFailed.WithLabelValues(c.modelName, string(stderrors.ErrCodeGeminiAPIFailed)).Inc()
		return nil, stderrors.NewGeminiAPIFailedError(err)
	}

	text := extractText(resp)
	if text == "" {
		metrics.GeminiRequestsFailed.WithLabelValues(c.modelName, string(stderrors.ErrCodeEmptyResponse)).Inc()
		return nil, stderrors.NewEmptyResponseError("model returned no text parts")
	}

	gifts := ParseGifts(text, survey)
	metrics.ParsedGiftsPerResponse.Observe(float64(len(gifts)))

	if len(gifts) == 0 {
		c.logger.Warn("model response yielded no parseable gifts", map[string]interface{}{
			"model":       c.modelName,
			"text_length": len(text),
		})
		return nil, stderrors.NewEmptyResponseError("no gifts could be parsed from model response")
	}

	c.logger.Info("generated gift suggestions", map[string]interface{}{
		"model": c.modelName,
		"gifts": len(gifts),
	})
	return gifts, nil
}

// extractText concatenates all text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	cand := resp.Candidates[0]
	if cand.Content == nil {
		return ""
	}

	var text string
	for _, part := range cand.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text += string(t)
		}
	}
	return text
}
