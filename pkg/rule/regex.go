package rule

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/mailform/pkg/form"
)

// Regex validates that a non-empty string value matches a pattern. The
// pattern is compiled at construction; an uncompilable pattern is a
// programming error and panics there, never per request. Empty strings and
// non-strings are always valid.
type Regex struct {
	pattern *regexp.Regexp
	code    string
	message string
}

// RegexOption configures a Regex rule.
type RegexOption func(*Regex)

// WithRegexCode overrides the machine code (default "invalid_format").
func WithRegexCode(code string) RegexOption {
	return func(r *Regex) { r.code = code }
}

// WithRegexMessage overrides the message template. The {value} and
// {pattern} placeholders are available.
func WithRegexMessage(message string) RegexOption {
	return func(r *Regex) { r.message = message }
}

// NewRegex creates a Regex rule, panicking if the pattern does not
// compile.
func NewRegex(pattern string, opts ...RegexOption) *Regex {
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		panic(fmt.Errorf("rule: invalid regex pattern %q: %w", pattern, err))
	}
	r := &Regex{
		pattern: compiled,
		code:    "invalid_format",
		message: "Value does not match the expected format",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Process implements form.Processor.
func (r *Regex) Process(value any, field *form.Field, ctx *form.Context) any {
	s, ok := value.(string)
	if !ok || s == "" {
		return value
	}
	if !r.pattern.MatchString(s) {
		ctx.AddError(field.Name(), form.NewError(r.code).
			WithMessage(r.message).
			WithContext(map[string]any{"value": s, "pattern": r.pattern.String()}))
	}
	return value
}
