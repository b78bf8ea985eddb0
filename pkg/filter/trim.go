package filter

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dmitrymomot/mailform/pkg/form"
)

// Direction selects which side of the value Trim cuts.
type Direction string

const (
	// TrimBoth cuts leading and trailing whitespace.
	TrimBoth Direction = "both"
	// TrimLeft cuts leading whitespace only.
	TrimLeft Direction = "left"
	// TrimRight cuts trailing whitespace only.
	TrimRight Direction = "right"
)

// asciiWhitespace is the ASCII-only whitespace set used when Unicode
// awareness is disabled.
const asciiWhitespace = " \t\n\v\f\r"

// Trim removes leading and/or trailing whitespace from string values.
// Non-strings pass through unchanged. Idempotent.
type Trim struct {
	direction Direction
	ascii     bool
}

// TrimOption configures a Trim filter.
type TrimOption func(*Trim)

// WithDirection restricts trimming to one side. An unknown direction is a
// programming error and panics at construction.
func WithDirection(d Direction) TrimOption {
	return func(t *Trim) {
		switch d {
		case TrimBoth, TrimLeft, TrimRight:
			t.direction = d
		default:
			panic(fmt.Errorf("filter: invalid trim direction %q: must be %q, %q or %q", d, TrimBoth, TrimLeft, TrimRight))
		}
	}
}

// WithASCIIWhitespace narrows the whitespace definition to the ASCII set
// instead of the full Unicode White_Space property.
func WithASCIIWhitespace() TrimOption {
	return func(t *Trim) { t.ascii = true }
}

// NewTrim creates a Trim filter cutting Unicode whitespace from both sides
// by default.
func NewTrim(opts ...TrimOption) *Trim {
	t := &Trim{direction: TrimBoth}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Process implements form.Processor.
func (t *Trim) Process(value any, _ *form.Field, _ *form.Context) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	return t.apply(s)
}

func (t *Trim) apply(s string) string {
	if t.ascii {
		switch t.direction {
		case TrimLeft:
			return strings.TrimLeft(s, asciiWhitespace)
		case TrimRight:
			return strings.TrimRight(s, asciiWhitespace)
		default:
			return strings.Trim(s, asciiWhitespace)
		}
	}
	switch t.direction {
	case TrimLeft:
		return strings.TrimLeftFunc(s, unicode.IsSpace)
	case TrimRight:
		return strings.TrimRightFunc(s, unicode.IsSpace)
	default:
		return strings.TrimFunc(s, unicode.IsSpace)
	}
}
