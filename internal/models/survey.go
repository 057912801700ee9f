// internal/models/survey.go
package models

// Survey captures the gift questionnaire. Every field is optional; the
// recommendation pipeline fills sensible defaults for anything missing.
type Survey struct {
	Relationship   string    `json:"relationship,omitempty"`
	Age            string    `json:"age,omitempty"`
	Gender         string    `json:"gender,omitempty"`
	Occasion       string    `json:"occasion,omitempty"`
	Interests      []string  `json:"interests,omitempty"`
	Personality    []string  `json:"personality,omitempty"`
	Budget         []float64 `json:"budget,omitempty"`
	AdditionalInfo string    `json:"additionalInfo,omitempty"`
}

// BudgetOrDefault returns the first budget value, or the fallback when the
// survey carries no budget.
func (s Survey) BudgetOrDefault(fallback float64) float64 {
	if len(s.Budget) > 0 && s.Budget[0] > 0 {
		return s.Budget[0]
	}
	return fallback
}
