package filter

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/mailform/pkg/form"
)

var (
	scriptBlockRegex = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	styleBlockRegex  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	tagRegex         = regexp.MustCompile(`(?s)</?([a-zA-Z][a-zA-Z0-9]*)\b[^>]*>`)
)

// StripTags removes markup from string values. Script and style blocks are
// always removed together with their content, regardless of the allow
// list; every other tag is stripped unless its name is allowed, in which
// case the tag survives (content of stripped tags is always kept).
type StripTags struct {
	allowed map[string]struct{}
}

// NewStripTags creates a StripTags filter. Tags named in allowedTags
// (case-insensitive, without angle brackets, e.g. "b", "a") are preserved.
func NewStripTags(allowedTags ...string) *StripTags {
	f := &StripTags{}
	if len(allowedTags) > 0 {
		f.allowed = make(map[string]struct{}, len(allowedTags))
		for _, tag := range allowedTags {
			f.allowed[strings.ToLower(tag)] = struct{}{}
		}
	}
	return f
}

// Process implements form.Processor.
func (f *StripTags) Process(value any, _ *form.Field, _ *form.Context) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	return f.apply(s)
}

func (f *StripTags) apply(s string) string {
	s = scriptBlockRegex.ReplaceAllString(s, "")
	s = styleBlockRegex.ReplaceAllString(s, "")

	return tagRegex.ReplaceAllStringFunc(s, func(tag string) string {
		name := strings.ToLower(tagRegex.FindStringSubmatch(tag)[1])
		if _, ok := f.allowed[name]; ok {
			return tag
		}
		return ""
	})
}
