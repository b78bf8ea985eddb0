package filter

import (
	"regexp"

	"github.com/dmitrymomot/mailform/pkg/form"
)

var nonDigitRegex = regexp.MustCompile(`\D`)

// SanitizePhone strips every non-digit character from string values,
// leaving a bare digit sequence suitable for storage and comparison.
type SanitizePhone struct{}

// NewSanitizePhone creates a SanitizePhone filter.
func NewSanitizePhone() *SanitizePhone {
	return &SanitizePhone{}
}

// Process implements form.Processor.
func (f *SanitizePhone) Process(value any, _ *form.Field, _ *form.Context) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	return nonDigitRegex.ReplaceAllString(s, "")
}
