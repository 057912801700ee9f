// internal/common/validation/survey.go
package validation

import (
	"fmt"
	"regexp"

	"github.com/xeipuuv/gojsonschema"
)

// surveySchema constrains the survey payload accepted by the
// recommendations endpoint. Every field is optional so partially filled
// surveys still produce recommendations, but present fields must be well
// typed.
const surveySchema = `{
	"type": "object",
	"properties": {
		"relationship":   {"type": "string", "maxLength": 100},
		"age":            {"type": "string", "maxLength": 50},
		"gender":         {"type": "string", "maxLength": 50},
		"occasion":       {"type": "string", "maxLength": 100},
		"interests":      {"type": "array", "items": {"type": "string", "maxLength": 100}, "maxItems": 50},
		"personality":    {"type": "array", "items": {"type": "string", "maxLength": 100}, "maxItems": 50},
		"budget":         {"type": "array", "items": {"type": "number", "minimum": 0}, "maxItems": 2},
		"additionalInfo": {"type": "string", "maxLength": 2000}
	},
	"additionalProperties": false
}`

var compiledSurveySchema = gojsonschema.NewStringLoader(surveySchema)

// ValidateSurvey checks a decoded survey document against the schema and
// returns one message per violation.
func ValidateSurvey(doc map[string]interface{}) ([]string, error) {
	documentLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(compiledSurveySchema, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	errs := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		errs[i] = desc.String()
	}
	return errs, nil
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail validates email format
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}
