package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCalculationRequest(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		valid bool
	}{
		{
			name:  "complete request",
			body:  `{"housingId":"h1","loanProductId":"p1","loanAmount":300000000,"loanTerm":360}`,
			valid: true,
		},
		{
			name:  "with member ids",
			body:  `{"housingId":"h1","loanProductId":"p1","loanAmount":1,"loanTerm":1,"householdMemberIds":["m1","m2"]}`,
			valid: true,
		},
		{
			name:  "missing loanTerm",
			body:  `{"housingId":"h1","loanProductId":"p1","loanAmount":300000000}`,
			valid: false,
		},
		{
			name:  "empty housingId",
			body:  `{"housingId":"","loanProductId":"p1","loanAmount":1,"loanTerm":1}`,
			valid: false,
		},
		{
			name:  "fractional loanAmount",
			body:  `{"housingId":"h1","loanProductId":"p1","loanAmount":1.5,"loanTerm":360}`,
			valid: false,
		},
		{
			name:  "duplicate member ids",
			body:  `{"housingId":"h1","loanProductId":"p1","loanAmount":1,"loanTerm":1,"householdMemberIds":["m1","m1"]}`,
			valid: false,
		},
		{
			name:  "unknown field",
			body:  `{"housingId":"h1","loanProductId":"p1","loanAmount":1,"loanTerm":1,"other":true}`,
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateCalculationRequest([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.NotEmpty(t, result.ErrorMessages())
			}
		})
	}
}

func TestValidateCalculationRequest_MalformedJSON(t *testing.T) {
	_, err := ValidateCalculationRequest([]byte(`{broken`))
	assert.Error(t, err)
}
