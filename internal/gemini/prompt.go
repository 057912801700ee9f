// internal/gemini/prompt.go
package gemini

import (
	"fmt"
	"strings"

	"giftwise/internal/models"
)

// DefaultBudget is assumed when a survey arrives without one.
const DefaultBudget = 50.0

// BuildPrompt renders the recommendation prompt for a survey. The format
// instructions matter: the parser expects plain list items without
// numbering or introductory text.
func BuildPrompt(survey models.Survey) string {
	additional := survey.AdditionalInfo
	if additional == "" {
		additional = "None"
	}

	return fmt.Sprintf(`
You are a gift recommendation expert. Based on the following information about a gift recipient,
generate 8 personalized gift recommendations. Provide simple text recommendations without any introductory text.

Recipient details:
- Age: %s
- Gender: %s
- Relationship: %s
- Occasion: %s
- Interests: %s
- Personality traits: %s
- Budget: $%g
- Additional Info: %s

For each gift, provide:
1. Gift name (short and concise)
2. Brief description (1-2 sentences)
3. Approximate price (within budget)
4. Category (one of: Books, Technology, Sports, Art, Music, Travel, Cooking, Fashion, Home Decor, Gaming, Experiences)
5. Why it's a good match for this person (1 sentence)

Format each gift as a simple list item without numbering or introductory text.
`,
		survey.Age,
		survey.Gender,
		survey.Relationship,
		survey.Occasion,
		strings.Join(survey.Interests, ", "),
		strings.Join(survey.Personality, ", "),
		survey.BudgetOrDefault(DefaultBudget),
		additional,
	)
}
