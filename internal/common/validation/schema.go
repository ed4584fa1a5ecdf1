package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationResult reports the outcome of validating a request body
// against a JSON schema.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorMessages returns a flat list of "field: message" strings.
func (r *ValidationResult) ErrorMessages() []string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return msgs
}

// CalculationRequestSchema constrains the POST /calculator/housing-expenses
// body. Range checks that need the loan product (loanAmount vs loanLimit)
// happen later in the calculation service.
const CalculationRequestSchema = `{
	"type": "object",
	"properties": {
		"housingId": {"type": "string", "minLength": 1},
		"loanProductId": {"type": "string", "minLength": 1},
		"loanAmount": {"type": "integer", "minimum": 1},
		"loanTerm": {"type": "integer", "minimum": 1, "maximum": 600},
		"householdMemberIds": {
			"type": "array",
			"items": {"type": "string", "minLength": 1},
			"uniqueItems": true
		}
	},
	"required": ["housingId", "loanProductId", "loanAmount", "loanTerm"],
	"additionalProperties": false
}`

// ValidateJSON validates a raw JSON document against a schema document.
func ValidateJSON(document []byte, schema string) (*ValidationResult, error) {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	if result.Valid() {
		return &ValidationResult{Valid: true}, nil
	}

	out := &ValidationResult{Valid: false}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
			Code:    desc.Type(),
		})
	}
	return out, nil
}

// ValidateCalculationRequest validates a calculation request body.
func ValidateCalculationRequest(document []byte) (*ValidationResult, error) {
	return ValidateJSON(document, CalculationRequestSchema)
}
