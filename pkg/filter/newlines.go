package filter

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/mailform/pkg/form"
)

var trailingNewlinesRegex = regexp.MustCompile(`\n{2,}$`)

// NormalizeNewlines converts CRLF and lone CR line endings to LF and
// collapses two or more trailing newlines to exactly one. With the
// ensure-trailing option, a non-empty value that ends without a newline
// gets exactly one appended.
type NormalizeNewlines struct {
	ensureTrailing bool
}

// NormalizeNewlinesOption configures a NormalizeNewlines filter.
type NormalizeNewlinesOption func(*NormalizeNewlines)

// WithTrailingNewline enforces exactly one trailing newline on non-empty
// values.
func WithTrailingNewline() NormalizeNewlinesOption {
	return func(f *NormalizeNewlines) { f.ensureTrailing = true }
}

// NewNormalizeNewlines creates a NormalizeNewlines filter.
func NewNormalizeNewlines(opts ...NormalizeNewlinesOption) *NormalizeNewlines {
	f := &NormalizeNewlines{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Process implements form.Processor.
func (f *NormalizeNewlines) Process(value any, _ *form.Field, _ *form.Context) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	return f.apply(s)
}

func (f *NormalizeNewlines) apply(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = trailingNewlinesRegex.ReplaceAllString(s, "\n")
	if f.ensureTrailing && s != "" && !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return s
}
