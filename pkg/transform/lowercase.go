package transform

import (
	"strings"

	"github.com/dmitrymomot/mailform/pkg/form"
)

// Lowercase folds string values to lower case. Unicode-aware by default;
// ASCII mode touches only the bytes A-Z, leaving everything else alone.
// Non-strings pass through unchanged. Idempotent.
type Lowercase struct {
	ascii bool
}

// LowercaseOption configures a Lowercase transformer.
type LowercaseOption func(*Lowercase)

// WithASCIIFolding restricts folding to the ASCII letters A-Z.
func WithASCIIFolding() LowercaseOption {
	return func(t *Lowercase) { t.ascii = true }
}

// NewLowercase creates a Lowercase transformer with Unicode folding.
func NewLowercase(opts ...LowercaseOption) *Lowercase {
	t := &Lowercase{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Process implements form.Processor.
func (t *Lowercase) Process(value any, _ *form.Field, _ *form.Context) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	if t.ascii {
		return strings.Map(func(r rune) rune {
			if r >= 'A' && r <= 'Z' {
				return r + ('a' - 'A')
			}
			return r
		}, s)
	}
	return strings.ToLower(s)
}
