package transform

import (
	"html"

	"github.com/dmitrymomot/mailform/pkg/form"
)

// HTMLEntities entity-encodes string values for safe embedding in HTML
// output. Empty strings and non-strings are skipped. Unlike the escape
// filter this transformer unescapes first when double encoding is off, so
// mixed input (partially encoded upstream) comes out encoded exactly once.
type HTMLEntities struct {
	doubleEncode bool
}

// HTMLEntitiesOption configures an HTMLEntities transformer.
type HTMLEntitiesOption func(*HTMLEntities)

// WithDoubleEncode re-encodes ampersands of existing entities instead of
// normalizing them to a single encoding pass.
func WithDoubleEncode() HTMLEntitiesOption {
	return func(t *HTMLEntities) { t.doubleEncode = true }
}

// NewHTMLEntities creates an HTMLEntities transformer with single-pass
// encoding.
func NewHTMLEntities(opts ...HTMLEntitiesOption) *HTMLEntities {
	t := &HTMLEntities{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Process implements form.Processor.
func (t *HTMLEntities) Process(value any, _ *form.Field, _ *form.Context) any {
	s, ok := value.(string)
	if !ok || s == "" {
		return value
	}
	if !t.doubleEncode {
		s = html.UnescapeString(s)
	}
	return html.EscapeString(s)
}
