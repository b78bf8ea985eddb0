package filter

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dmitrymomot/mailform/pkg/form"
)

// emojiTable covers emoji, pictographs, dingbats, regional-indicator
// (flag) pairs, variation selectors and the zero-width joiner used to
// compose emoji sequences.
var emojiTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x200D, Hi: 0x200D, Stride: 1}, // zero-width joiner
		{Lo: 0x2300, Hi: 0x23FF, Stride: 1}, // misc technical (watch, hourglass)
		{Lo: 0x2600, Hi: 0x26FF, Stride: 1}, // misc symbols
		{Lo: 0x2700, Hi: 0x27BF, Stride: 1}, // dingbats
		{Lo: 0x2B00, Hi: 0x2BFF, Stride: 1}, // misc symbols and arrows
		{Lo: 0xFE00, Hi: 0xFE0F, Stride: 1}, // variation selectors
	},
	R32: []unicode.Range32{
		{Lo: 0x1F000, Hi: 0x1F0FF, Stride: 1}, // mahjong, dominoes, cards
		{Lo: 0x1F1E6, Hi: 0x1F1FF, Stride: 1}, // regional indicators (flags)
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // misc symbols and pictographs
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // emoticons
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // transport and map
		{Lo: 0x1F700, Hi: 0x1F77F, Stride: 1}, // alchemical
		{Lo: 0x1F780, Hi: 0x1F8FF, Stride: 1}, // geometric shapes extended
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1}, // supplemental symbols
		{Lo: 0x1FA00, Hi: 0x1FAFF, Stride: 1}, // symbols and pictographs extended
	},
}

var (
	multiSpaceRegex    = regexp.MustCompile(` {2,}`)
	spaceBeforePunctRe = regexp.MustCompile(` +([.,!?;:])`)
)

func isEmoji(r rune) bool {
	return unicode.Is(emojiTable, r)
}

// RemoveEmoji strips emoji, pictographs, dingbats, flags, variation
// selectors and zero-width joiners from string values, then cleans up the
// spacing artifacts the removal leaves behind (double spaces, a space
// stranded before punctuation).
type RemoveEmoji struct{}

// NewRemoveEmoji creates a RemoveEmoji filter.
func NewRemoveEmoji() *RemoveEmoji {
	return &RemoveEmoji{}
}

// Process implements form.Processor.
func (f *RemoveEmoji) Process(value any, _ *form.Field, _ *form.Context) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	return f.apply(s)
}

func (f *RemoveEmoji) apply(s string) string {
	s = strings.Map(func(r rune) rune {
		if isEmoji(r) {
			return -1
		}
		return r
	}, s)
	s = multiSpaceRegex.ReplaceAllString(s, " ")
	return spaceBeforePunctRe.ReplaceAllString(s, "$1")
}
