package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mailform/pkg/filter"
)

func TestRemoveURL(t *testing.T) {
	plain := filter.NewRemoveURL()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes http urls",
			input:    "visit http://spam.example/offer now",
			expected: "visit now",
		},
		{
			name:     "removes https urls",
			input:    "see https://example.com/x?y=1",
			expected: "see ",
		},
		{
			name:     "removes www urls",
			input:    "go to www.example.com please",
			expected: "go to please",
		},
		{
			name:     "removes bare domains",
			input:    "check spam-site.biz today",
			expected: "check today",
		},
		{
			name:     "email addresses survive",
			input:    "write to me@example.com today",
			expected: "write to me@example.com today",
		},
		{
			name:     "plain text untouched",
			input:    "no links here, just words.",
			expected: "no links here, just words.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, apply(plain, tt.input))
		})
	}
}

func TestRemoveURLAggressive(t *testing.T) {
	aggressive := filter.NewRemoveURL(filter.WithAggressiveMatching())

	t.Run("bracketed dot obfuscation", func(t *testing.T) {
		assert.Equal(t, "go ", apply(aggressive, "go example[.]com"))
	})

	t.Run("spelled dot obfuscation", func(t *testing.T) {
		assert.Equal(t, "go ", apply(aggressive, "go example(dot)com"))
	})

	t.Run("hxxp scheme obfuscation", func(t *testing.T) {
		assert.Equal(t, "go ", apply(aggressive, "go hxxps://evil.example"))
	})

	t.Run("non-aggressive mode leaves obfuscations alone", func(t *testing.T) {
		plain := filter.NewRemoveURL()
		assert.Equal(t, "go example[.]com", apply(plain, "go example[.]com"))
	})
}

func TestRemoveURLPlaceholder(t *testing.T) {
	f := filter.NewRemoveURL(filter.WithPlaceholder("[link removed]"))
	assert.Equal(t, "see [link removed] now", apply(f, "see https://example.com now"))
}

func TestRemoveURLHomoglyphNormalization(t *testing.T) {
	// Full-width characters NFKC-normalize to ASCII, so the URL pattern
	// still catches them.
	f := filter.NewRemoveURL()
	out := apply(f, "go ｅｘａｍｐｌｅ．ｃｏｍ now").(string)
	assert.NotContains(t, out, "example.com")
}

func TestRemoveURLNonStringPassthrough(t *testing.T) {
	assertNonStringPassthrough(t, filter.NewRemoveURL())
}
