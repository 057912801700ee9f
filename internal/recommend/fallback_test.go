// internal/recommend/fallback_test.go
package recommend

import (
	"testing"

	"giftwise/internal/catalog"
	"giftwise/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFallback() *Fallback {
	return NewFallback(catalog.Default())
}

func TestFallback_AlwaysReturnsGifts(t *testing.T) {
	tests := []struct {
		name   string
		survey models.Survey
	}{
		{name: "empty survey", survey: models.Survey{}},
		{name: "nothing matches", survey: models.Survey{
			Interests:   []string{"Quantum Physics"},
			Personality: []string{"Stoic"},
			Budget:      []float64{100},
		}},
		{name: "typical survey", survey: models.Survey{
			Interests:   []string{"Reading", "Cooking"},
			Personality: []string{"Creative"},
			Budget:      []float64{75},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gifts := newFallback().Select(tt.survey)

			assert.NotEmpty(t, gifts)
			assert.LessOrEqual(t, len(gifts), maxResults)
			for _, g := range gifts {
				assert.NotEmpty(t, g.Name)
				assert.NotEmpty(t, g.ID)
			}
		})
	}
}

func TestFallback_BudgetFilter(t *testing.T) {
	// $50 is 4150 INR; with 20% slack nothing above 4980 passes.
	gifts := newFallback().Select(models.Survey{
		Interests:   []string{"Reading"},
		Personality: []string{"Bookworm"},
		Budget:      []float64{50},
	})

	// Only the mystery novel collection is tagged Reading and within
	// budget; the personalized bookends are tagged Reading but too pricey.
	require.Len(t, gifts, 1)
	assert.Equal(t, "1", gifts[0].ID)
	assert.LessOrEqual(t, gifts[0].Price, 4980.0)
}

func TestFallback_InterestMatchesCategorySubstring(t *testing.T) {
	gifts := newFallback().Select(models.Survey{
		Interests:   []string{"Tech"},
		Personality: []string{"Nonexistent"},
		Budget:      []float64{150},
	})

	require.NotEmpty(t, gifts)
	for _, g := range gifts {
		assert.Equal(t, "Technology", g.Category)
	}
}

func TestFallback_PersonalityMatchesTags(t *testing.T) {
	gifts := newFallback().Select(models.Survey{
		Interests:   []string{"Nonexistent"},
		Personality: []string{"Romantic"},
		Budget:      []float64{100},
	})

	require.Len(t, gifts, 1)
	assert.Equal(t, "Personalized Star Map", gifts[0].Name)
}

func TestFallback_HigherBudgetAdmitsPricierGifts(t *testing.T) {
	low := newFallback().Select(models.Survey{
		Interests:   []string{"Fitness"},
		Personality: []string{"Sporty"},
		Budget:      []float64{50},
	})
	high := newFallback().Select(models.Survey{
		Interests:   []string{"Fitness"},
		Personality: []string{"Sporty"},
		Budget:      []float64{150},
	})

	assert.NotContains(t, giftNames(low), "Smart Fitness Tracker")
	assert.Contains(t, giftNames(high), "Smart Fitness Tracker")
}

func TestFallback_EmptyPreferencesMatchEverythingInBudget(t *testing.T) {
	gifts := newFallback().Select(models.Survey{Budget: []float64{500}})

	// Everything is within a $500 budget, capped at eight results.
	assert.Len(t, gifts, maxResults)
}

func TestFallback_WidensWhenNothingMatches(t *testing.T) {
	gifts := newFallback().Select(models.Survey{
		Interests:   []string{"Quantum Physics"},
		Personality: []string{"Stoic"},
		Budget:      []float64{50},
	})

	assert.NotEmpty(t, gifts)
	for _, g := range gifts {
		assert.LessOrEqual(t, g.Price, 4980.0)
	}
}

func TestFallback_Deterministic(t *testing.T) {
	survey := models.Survey{
		Interests:   []string{"Cooking", "Travel"},
		Personality: []string{"Creative"},
		Budget:      []float64{80},
	}

	first := newFallback().Select(survey)
	second := newFallback().Select(survey)
	assert.Equal(t, first, second)
}

func TestFallback_DefaultBudgetApplied(t *testing.T) {
	withDefault := newFallback().Select(models.Survey{Interests: []string{"Reading"}})
	explicit := newFallback().Select(models.Survey{
		Interests: []string{"Reading"},
		Budget:    []float64{DefaultBudget},
	})

	assert.Equal(t, explicit, withDefault)
}

func giftNames(gifts []models.Gift) []string {
	names := make([]string, len(gifts))
	for i, g := range gifts {
		names[i] = g.Name
	}
	return names
}
