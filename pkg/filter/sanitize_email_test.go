package filter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mailform/pkg/filter"
)

func TestSanitizeEmail(t *testing.T) {
	relaxed := filter.NewSanitizeEmail()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "clean address unchanged",
			input:    "user@example.com",
			expected: "user@example.com",
		},
		{
			name:     "domain lowercased",
			input:    "User@EXAMPLE.COM",
			expected: "User@example.com",
		},
		{
			name:     "angle brackets stripped",
			input:    "<user@example.com>",
			expected: "user@example.com",
		},
		{
			name:     "multiple at signs collapse onto the first",
			input:    "user@example.com@evil.com",
			expected: "user@example.comevil.com",
		},
		{
			name:     "encoded line breaks removed",
			input:    "user%0A%0D@example.com",
			expected: "user@example.com",
		},
		{
			name:     "literal escape sequences removed",
			input:    `user\r\n@example.com`,
			expected: "user@example.com",
		},
		{
			name:     "repeated dots collapse",
			input:    "first..last@example.com",
			expected: "first.last@example.com",
		},
		{
			name:     "leading and trailing dots trimmed",
			input:    ".user.@example.com",
			expected: "user@example.com",
		},
		{
			name:     "spaces in local part removed",
			input:    " us er @example.com",
			expected: "user@example.com",
		},
		{
			name:     "no domain part survives as local only",
			input:    "just-a-name",
			expected: "just-a-name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, apply(relaxed, tt.input))
		})
	}
}

func TestSanitizeEmailHeaderInjection(t *testing.T) {
	f := filter.NewSanitizeEmail()
	out := apply(f, "user@example.com\r\nCC:evil@hack.com").(string)

	assert.NotContains(t, out, "\r")
	assert.NotContains(t, out, "\n")
	assert.NotContains(t, strings.ToLower(out), "cc:")
}

func TestSanitizeEmailHeaderKeywords(t *testing.T) {
	f := filter.NewSanitizeEmail()
	for _, keyword := range []string{"cc:", "BCC:", "To:", "FROM:", "Subject:"} {
		out := apply(f, "user"+keyword+"@example.com").(string)
		assert.NotContains(t, strings.ToLower(out), strings.ToLower(keyword))
	}
}

func TestSanitizeEmailModes(t *testing.T) {
	t.Run("relaxed keeps unicode letters", func(t *testing.T) {
		f := filter.NewSanitizeEmail()
		assert.Equal(t, "josé@example.com", apply(f, "josé@example.com"))
	})

	t.Run("relaxed strips emoji", func(t *testing.T) {
		f := filter.NewSanitizeEmail()
		assert.Equal(t, "user@example.com", apply(f, "user\U0001F600@example.com"))
	})

	t.Run("strict strips unicode letters", func(t *testing.T) {
		f := filter.NewSanitizeEmail(filter.WithStrictLocalPart())
		assert.Equal(t, "jos@example.com", apply(f, "josé@example.com"))
	})

	t.Run("strict keeps the allowed symbol set", func(t *testing.T) {
		f := filter.NewSanitizeEmail(filter.WithStrictLocalPart())
		assert.Equal(t, "first+last_x@example.com", apply(f, "first+last_x@example.com"))
	})
}

func TestSanitizeEmailInternationalizedDomain(t *testing.T) {
	f := filter.NewSanitizeEmail()
	out := apply(f, "user@münchen.de").(string)
	assert.Equal(t, "user@xn--mnchen-3ya.de", out)
}

func TestSanitizeEmailNonStringPassthrough(t *testing.T) {
	assertNonStringPassthrough(t, filter.NewSanitizeEmail())
}
