package rule

import (
	"reflect"
	"strings"

	"github.com/dmitrymomot/mailform/pkg/form"
)

// Required validates that a value is present. Empty means: nil, boolean
// false, an empty string (after an optional trim), or an empty slice,
// array or map. Everything else counts as present, including numeric zero,
// the string "0" and arbitrary structs.
//
// The rule never rewrites the value: even when the emptiness check used a
// trimmed copy, downstream processors still see the original string.
type Required struct {
	code    string
	message string
	trim    bool
}

// RequiredOption configures a Required rule.
type RequiredOption func(*Required)

// WithRequiredCode overrides the machine code (default "required").
func WithRequiredCode(code string) RequiredOption {
	return func(r *Required) { r.code = code }
}

// WithRequiredMessage overrides the message template. The {field}
// placeholder interpolates to the field name.
func WithRequiredMessage(message string) RequiredOption {
	return func(r *Required) { r.message = message }
}

// WithoutTrim checks string emptiness without trimming first, so a
// whitespace-only string counts as present.
func WithoutTrim() RequiredOption {
	return func(r *Required) { r.trim = false }
}

// NewRequired creates a Required rule that trims strings before the
// emptiness check.
func NewRequired(opts ...RequiredOption) *Required {
	r := &Required{
		code:    "required",
		message: "{field} is required",
		trim:    true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Process implements form.Processor.
func (r *Required) Process(value any, field *form.Field, ctx *form.Context) any {
	if r.empty(value) {
		ctx.AddError(field.Name(), form.NewError(r.code).
			WithMessage(r.message).
			WithContext(map[string]any{"field": field.Name()}))
	}
	return value
}

func (r *Required) empty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		if r.trim {
			v = strings.TrimSpace(v)
		}
		return v == ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	}
	return false
}
