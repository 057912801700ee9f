// internal/recommend/fallback.go
package recommend

import (
	"math"
	"strings"

	"giftwise/internal/catalog"
	"giftwise/internal/models"
)

const (
	// usdToINR converts the survey's dollar budget to the catalog's
	// rupee prices.
	usdToINR = 83

	// budgetSlack allows gifts slightly above budget through the filter.
	budgetSlack = 1.2

	maxResults = 8
)

// Fallback selects gifts from the curated catalog. It is deterministic:
// the same survey against the same catalog always yields the same gifts,
// and it never fails.
type Fallback struct {
	catalog *catalog.Catalog
}

func NewFallback(cat *catalog.Catalog) *Fallback {
	return &Fallback{catalog: cat}
}

// Select filters the catalog by budget and preference match, preserving
// catalog order, and returns at most eight gifts. A survey with no
// interests or personality traits matches everything within budget. When
// nothing matches, the filter widens to everything within budget.
func (f *Fallback) Select(survey models.Survey) []models.Gift {
	budgetINR := toINR(survey.BudgetOrDefault(DefaultBudget))
	limit := budgetINR * budgetSlack

	var matched []models.Gift
	for _, gift := range f.catalog.Gifts() {
		if gift.Price > limit {
			continue
		}
		if matchesInterest(gift, survey.Interests) || matchesPersonality(gift, survey.Personality) {
			matched = append(matched, gift)
		}
	}

	if len(matched) == 0 {
		for _, gift := range f.catalog.Gifts() {
			if gift.Price <= limit {
				matched = append(matched, gift)
			}
		}
	}

	if len(matched) > maxResults {
		matched = matched[:maxResults]
	}
	return matched
}

func toINR(usd float64) float64 {
	return math.Round(usd * usdToINR)
}

// matchesInterest reports whether any interest appears in the gift's tags
// or as a substring of its category. An empty interest list matches
// everything.
func matchesInterest(gift models.Gift, interests []string) bool {
	if len(interests) == 0 {
		return true
	}

	category := strings.ToLower(gift.Category)
	for _, interest := range interests {
		if hasTag(gift.Tags, interest) || strings.Contains(category, strings.ToLower(interest)) {
			return true
		}
	}
	return false
}

// matchesPersonality reports whether any trait appears in the gift's
// tags. An empty trait list matches everything.
func matchesPersonality(gift models.Gift, personality []string) bool {
	if len(personality) == 0 {
		return true
	}

	for _, trait := range personality {
		if hasTag(gift.Tags, trait) {
			return true
		}
	}
	return false
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}
