package rule

import (
	"unicode/utf8"

	"github.com/dmitrymomot/mailform/pkg/form"
)

// Length validates string length against inclusive minimum and maximum
// bounds. Length is counted in runes by default (multibyte-aware); byte
// counting is available for storage-constrained fields.
//
// An empty string is always valid — presence is Required's job. A bound of
// zero disables that side of the check. Misconfigured bounds (min greater
// than max) are not rejected; both errors simply fire independently.
type Length struct {
	min   int
	max   int
	bytes bool
}

// LengthOption configures a Length rule.
type LengthOption func(*Length)

// WithByteCounting measures raw UTF-8 bytes instead of runes.
func WithByteCounting() LengthOption {
	return func(r *Length) { r.bytes = true }
}

// NewLength creates a Length rule with both bounds. A zero bound disables
// that side.
func NewLength(min, max int, opts ...LengthOption) *Length {
	r := &Length{min: min, max: max}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewMinLength creates a minimum-only Length rule.
func NewMinLength(min int, opts ...LengthOption) *Length {
	return NewLength(min, 0, opts...)
}

// NewMaxLength creates a maximum-only Length rule.
func NewMaxLength(max int, opts ...LengthOption) *Length {
	return NewLength(0, max, opts...)
}

// Process implements form.Processor.
func (r *Length) Process(value any, field *form.Field, ctx *form.Context) any {
	s, ok := value.(string)
	if !ok || s == "" {
		return value
	}

	length := utf8.RuneCountInString(s)
	if r.bytes {
		length = len(s)
	}

	if r.min > 0 && length < r.min {
		ctx.AddError(field.Name(), form.NewError("too_short").
			WithMessage("Must be at least {min} characters, got {length}").
			WithContext(map[string]any{"min": r.min, "length": length}))
	}
	if r.max > 0 && length > r.max {
		ctx.AddError(field.Name(), form.NewError("too_long").
			WithMessage("Must be at most {max} characters, got {length}").
			WithContext(map[string]any{"max": r.max, "length": length}))
	}
	return value
}
