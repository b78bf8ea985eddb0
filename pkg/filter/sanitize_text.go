package filter

import (
	"strings"
	"unicode"

	"github.com/dmitrymomot/mailform/pkg/form"
)

// SanitizeText repairs free-text input: invalid UTF-8 sequences are
// dropped, non-printable control characters are stripped (newline, carriage
// return and tab survive), and trailing whitespace is trimmed. The Unicode
// replacement character U+FFFD is kept by default since upstream decoders
// may have inserted it deliberately.
type SanitizeText struct {
	dropReplacementChar bool
}

// SanitizeTextOption configures a SanitizeText filter.
type SanitizeTextOption func(*SanitizeText)

// WithoutReplacementChar additionally removes U+FFFD characters.
func WithoutReplacementChar() SanitizeTextOption {
	return func(f *SanitizeText) { f.dropReplacementChar = true }
}

// NewSanitizeText creates a SanitizeText filter.
func NewSanitizeText(opts ...SanitizeTextOption) *SanitizeText {
	f := &SanitizeText{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Process implements form.Processor.
func (f *SanitizeText) Process(value any, _ *form.Field, _ *form.Context) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	return f.apply(s)
}

func (f *SanitizeText) apply(s string) string {
	s = strings.ToValidUTF8(s, "")

	s = strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return r
		case '�':
			if f.dropReplacementChar {
				return -1
			}
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)

	return strings.TrimRightFunc(s, unicode.IsSpace)
}
