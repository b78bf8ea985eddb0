package filter

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/mailform/pkg/form"
)

// entityRegex matches an already-encoded HTML entity starting at the
// beginning of the input.
var entityRegex = regexp.MustCompile(`^&(?:[a-zA-Z][a-zA-Z0-9]*|#[0-9]+|#[xX][0-9a-fA-F]+);`)

// HTMLEscape escapes the characters & < > " ' to HTML entities.
//
// With double encoding enabled (the default) every ampersand is escaped,
// including those that already start an entity, so the filter is NOT
// idempotent. With double encoding disabled, existing entities are left
// intact and re-applying the filter is a no-op.
type HTMLEscape struct {
	namedApostrophe bool
	doubleEncode    bool
}

// HTMLEscapeOption configures an HTMLEscape filter.
type HTMLEscapeOption func(*HTMLEscape)

// WithNamedApostrophe encodes ' as &apos; instead of the numeric &#39;.
// The numeric form is the default because &apos; is undefined in HTML 4.
func WithNamedApostrophe() HTMLEscapeOption {
	return func(f *HTMLEscape) { f.namedApostrophe = true }
}

// WithoutDoubleEncoding leaves already-encoded entities untouched, making
// the filter idempotent.
func WithoutDoubleEncoding() HTMLEscapeOption {
	return func(f *HTMLEscape) { f.doubleEncode = false }
}

// NewHTMLEscape creates an HTMLEscape filter with double encoding on and
// the numeric apostrophe entity.
func NewHTMLEscape(opts ...HTMLEscapeOption) *HTMLEscape {
	f := &HTMLEscape{doubleEncode: true}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Process implements form.Processor.
func (f *HTMLEscape) Process(value any, _ *form.Field, _ *form.Context) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	return f.apply(s)
}

func (f *HTMLEscape) apply(s string) string {
	apos := "&#39;"
	if f.namedApostrophe {
		apos = "&apos;"
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '&':
			if !f.doubleEncode {
				if loc := entityRegex.FindStringIndex(s[i:]); loc != nil {
					b.WriteString(s[i : i+loc[1]])
					i += loc[1] - 1
					continue
				}
			}
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString(apos)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
