package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mailform/pkg/filter"
)

func TestNormalizeNewlines(t *testing.T) {
	f := filter.NewNormalizeNewlines()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "crlf becomes lf",
			input:    "a\r\nb",
			expected: "a\nb",
		},
		{
			name:     "lone cr becomes lf",
			input:    "a\rb",
			expected: "a\nb",
		},
		{
			name:     "trailing newlines collapse to one",
			input:    "text\n\n\n",
			expected: "text\n",
		},
		{
			name:     "single trailing newline kept",
			input:    "text\n",
			expected: "text\n",
		},
		{
			name:     "no trailing newline not added by default",
			input:    "text",
			expected: "text",
		},
		{
			name:     "interior blank lines preserved",
			input:    "a\n\nb",
			expected: "a\n\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, apply(f, tt.input))
		})
	}
}

func TestNormalizeNewlinesEnsureTrailing(t *testing.T) {
	f := filter.NewNormalizeNewlines(filter.WithTrailingNewline())

	assert.Equal(t, "text\n", apply(f, "text"))
	assert.Equal(t, "text\n", apply(f, "text\n\n"))
	assert.Equal(t, "", apply(f, ""))
}

func TestNormalizeNewlinesIdempotent(t *testing.T) {
	f := filter.NewNormalizeNewlines()
	once := apply(f, "a\r\nb\r\r\n\n")
	assert.Equal(t, once, apply(f, once))
}

func TestNormalizeNewlinesNonStringPassthrough(t *testing.T) {
	assertNonStringPassthrough(t, filter.NewNormalizeNewlines())
}
