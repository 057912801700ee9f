// internal/gemini/parser.go
package gemini

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"giftwise/internal/catalog"
	"giftwise/internal/models"
)

var (
	introPattern  = regexp.MustCompile(`(?i)^(here are|here's|these are).+?:`)
	splitPattern  = regexp.MustCompile(`\n\s*\n|\*\*|\d+\.`)
	bulletPattern = regexp.MustCompile(`^\s*[-*•]\s*`)
	pricePattern  = regexp.MustCompile(`\$(\d+(\.\d+)?)`)

	categoryPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)category:\s*([A-Za-z\s&]+)`),
		regexp.MustCompile(`(?i)type:\s*([A-Za-z\s&]+)`),
		regexp.MustCompile(`(?i)\b(Books|Technology|Sports|Art|Music|Travel|Cooking|Fashion|Home Decor|Gaming|Experiences)\b`),
	}

	reasonPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)because\s+(.+?)(\n|$)`),
		regexp.MustCompile(`(?i)perfect for\s+(.+?)(\n|$)`),
		regexp.MustCompile(`(?i)great for\s+(.+?)(\n|$)`),
		regexp.MustCompile(`(?i)ideal for\s+(.+?)(\n|$)`),
		regexp.MustCompile(`(?i)reason:\s+(.+?)(\n|$)`),
	}

	reasonKeywords = []string{"because", "perfect for", "great for", "ideal for", "reason:"}

	// tagKeywords are promoted to tags when they appear anywhere in a
	// gift's text.
	tagKeywords = []string{
		"Premium", "Luxury", "Handmade", "Personalized", "Custom", "Unique",
		"Bestselling", "Popular", "Trending", "Classic", "Modern", "Vintage",
		"Eco-friendly", "Sustainable", "Practical", "Fun", "Educational",
		"Traditional", "Elegant", "Stylish", "Innovative", "Authentic",
		"Artisanal", "Exclusive", "Limited Edition", "Handcrafted", "Organic",
		"Smart", "Portable", "Durable",
	}
)

const (
	defaultDescription = "A thoughtful gift option."
	defaultReason      = "This gift matches the recipient's interests and preferences."
	defaultCategory    = "Gift"
)

// ParseGifts turns a free-text model response into structured gifts. The
// model is prompted for plain list items, but the parser tolerates bold
// markers, numbered lists and bullets. Blocks it cannot make sense of are
// skipped; an unparseable response yields an empty slice, never an error.
func ParseGifts(text string, survey models.Survey) []models.Gift {
	cleaned := strings.TrimSpace(introPattern.ReplaceAllString(text, ""))

	var gifts []models.Gift
	for _, block := range splitPattern.Split(cleaned, -1) {
		if strings.TrimSpace(block) == "" {
			continue
		}

		lines := nonEmptyLines(block)
		if len(lines) == 0 {
			continue
		}

		name := strings.TrimSpace(bulletPattern.ReplaceAllString(lines[0], ""))
		if name == "" {
			// A bare bullet or separator line is not a gift.
			continue
		}
		index := len(gifts) + 1

		description := defaultDescription
		if len(lines) > 1 {
			description = strings.TrimSpace(lines[1])
		}

		category := extractCategory(block, survey)
		id := fmt.Sprintf("gift-%d", index)

		gifts = append(gifts, models.Gift{
			ID:          id,
			Name:        name,
			Description: description,
			Price:       extractPrice(block, survey),
			Category:    category,
			Reason:      extractReason(block),
			ImageURL:    catalog.ImageFor(name, category),
			PurchaseURL: "/gift/" + id,
			Tags:        extractTags(block, survey),
			Rating:      4.5 + rand.Float64()*0.5,
			ReviewCount: rand.Intn(100) + 20,
		})
	}

	return gifts
}

func nonEmptyLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// extractPrice pulls the first dollar amount out of the block. Without
// one, a plausible price between 20% and 100% of the budget is invented.
func extractPrice(block string, survey models.Survey) float64 {
	if m := pricePattern.FindStringSubmatch(block); m != nil {
		if price, err := strconv.ParseFloat(m[1], 64); err == nil {
			return price
		}
	}

	budget := survey.BudgetOrDefault(DefaultBudget)
	return float64(int(rand.Float64()*budget*0.8)) + budget*0.2
}

func extractCategory(block string, survey models.Survey) string {
	for _, pattern := range categoryPatterns {
		if m := pattern.FindStringSubmatch(block); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	if len(survey.Interests) > 0 {
		return survey.Interests[rand.Intn(len(survey.Interests))]
	}
	return defaultCategory
}

func extractReason(block string) string {
	lower := strings.ToLower(block)
	for i, keyword := range reasonKeywords {
		if !strings.Contains(lower, keyword) {
			continue
		}
		if m := reasonPatterns[i].FindStringSubmatch(block); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return defaultReason
}

// extractTags combines survey preferences with marketing keywords found
// in the block, capped at five unique tags.
func extractTags(block string, survey models.Survey) []string {
	var tags []string

	if len(survey.Interests) > 3 {
		tags = append(tags, survey.Interests[:3]...)
	} else {
		tags = append(tags, survey.Interests...)
	}

	if len(survey.Personality) > 2 {
		tags = append(tags, survey.Personality[:2]...)
	} else {
		tags = append(tags, survey.Personality...)
	}

	if survey.Occasion != "" {
		tags = append(tags, survey.Occasion)
	}

	lower := strings.ToLower(block)
	for _, keyword := range tagKeywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			tags = append(tags, keyword)
		}
	}

	seen := make(map[string]bool, len(tags))
	unique := tags[:0]
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		unique = append(unique, tag)
	}

	if len(unique) > 5 {
		unique = unique[:5]
	}
	return unique
}
