package filter

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/mailform/pkg/form"
)

var (
	obfuscatedDotRegex    = regexp.MustCompile(`(?i)\[\s*\.\s*\]|\(\s*dot\s*\)|\s+dot\s+`)
	obfuscatedSchemeRegex = regexp.MustCompile(`(?i)hxxp(s?)://`)

	// urlRegex matches explicit URLs and bare domains with a path or a
	// recognizable TLD. Substrings preceded by @ are spared by the caller
	// so email addresses survive.
	urlRegex = regexp.MustCompile(`(?i)(?:https?://|www\.)[^\s<>"']+|\b(?:[a-z0-9][a-z0-9-]*\.)+[a-z]{2,24}\b(?:/[^\s<>"']*)?`)
)

// RemoveURL removes URLs and bare domain names from string values, a spam
// defense for free-text fields. Input is NFKC-normalized first so
// full-width and other homoglyph characters cannot smuggle a link past the
// pattern. Substrings immediately preceded by @ are left alone, so email
// addresses survive. Aggressive mode additionally rewrites the usual
// obfuscations ([.]  (dot)  spelled-out dot  hxxp://) back to canonical
// form before matching.
type RemoveURL struct {
	aggressive  bool
	placeholder string
}

// RemoveURLOption configures a RemoveURL filter.
type RemoveURLOption func(*RemoveURL)

// WithAggressiveMatching enables de-obfuscation of disguised separators
// and schemes before URL matching.
func WithAggressiveMatching() RemoveURLOption {
	return func(f *RemoveURL) { f.aggressive = true }
}

// WithPlaceholder substitutes matched URLs with the given marker instead
// of deleting them.
func WithPlaceholder(placeholder string) RemoveURLOption {
	return func(f *RemoveURL) { f.placeholder = placeholder }
}

// NewRemoveURL creates a RemoveURL filter that deletes matches outright.
func NewRemoveURL(opts ...RemoveURLOption) *RemoveURL {
	f := &RemoveURL{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Process implements form.Processor.
func (f *RemoveURL) Process(value any, _ *form.Field, _ *form.Context) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	return f.apply(s)
}

func (f *RemoveURL) apply(s string) string {
	s = norm.NFKC.String(s)

	if f.aggressive {
		s = obfuscatedDotRegex.ReplaceAllString(s, ".")
		s = obfuscatedSchemeRegex.ReplaceAllString(s, "http$1://")
	}

	matches := urlRegex.FindAllStringIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	prev := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		b.WriteString(s[prev:start])
		if start > 0 && s[start-1] == '@' {
			// Domain part of an email address, keep it.
			b.WriteString(s[start:end])
		} else {
			b.WriteString(f.placeholder)
		}
		prev = end
	}
	b.WriteString(s[prev:])

	return multiSpaceRegex.ReplaceAllString(b.String(), " ")
}
