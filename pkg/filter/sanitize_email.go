package filter

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/idna"

	"github.com/dmitrymomot/mailform/pkg/form"
)

var (
	encodedCRLFRegex = regexp.MustCompile(`(?i)%0[ad]|\\r|\\n`)
	headerKeywordRe  = regexp.MustCompile(`(?i)(?:cc|bcc|to|from|subject):`)
	multiDotRegex    = regexp.MustCompile(`\.{2,}`)

	// strictLocalAllowed is the RFC 5321 atext symbol set permitted in an
	// ASCII local part, besides letters and digits.
	strictLocalAllowed = "!#$%&'*+-/=?^_`{|}~."
)

// SanitizeEmail defuses header injection and normalizes an email address
// before validation. The pipeline decodes encoded CR/LF sequences, strips
// control and invisible characters, actual line breaks, header keywords
// (cc:, bcc:, to:, from:, subject:) and angle brackets, collapses multiple
// @ signs onto the first, lowercases the domain and converts
// internationalized domains to their ASCII (punycode) form, sanitizes the
// local part, collapses repeated dots and trims stray dots and spaces.
//
// Strict mode keeps the local part ASCII-only (RFC 5321 flavor); relaxed
// mode, the default, keeps Unicode letters in the local part while still
// stripping emoji and pictographs (RFC 6531 flavor).
type SanitizeEmail struct {
	strict bool
}

// SanitizeEmailOption configures a SanitizeEmail filter.
type SanitizeEmailOption func(*SanitizeEmail)

// WithStrictLocalPart restricts the local part to the fixed ASCII symbol
// set instead of allowing Unicode letters.
func WithStrictLocalPart() SanitizeEmailOption {
	return func(f *SanitizeEmail) { f.strict = true }
}

// NewSanitizeEmail creates a SanitizeEmail filter in relaxed (Unicode
// local part) mode.
func NewSanitizeEmail(opts ...SanitizeEmailOption) *SanitizeEmail {
	f := &SanitizeEmail{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Process implements form.Processor.
func (f *SanitizeEmail) Process(value any, _ *form.Field, _ *form.Context) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	return f.apply(s)
}

func (f *SanitizeEmail) apply(s string) string {
	s = encodedCRLFRegex.ReplaceAllString(s, "")
	s = stripInvisible(s)
	s = strings.NewReplacer("\r", "", "\n", "").Replace(s)
	s = headerKeywordRe.ReplaceAllString(s, "")
	s = strings.NewReplacer("<", "", ">", "").Replace(s)

	local, domain, hasDomain := strings.Cut(s, "@")
	if hasDomain {
		// Extra @ signs are injection attempts or typos; everything after
		// the first @ is treated as the domain.
		domain = strings.ReplaceAll(domain, "@", "")
		domain = strings.ToLower(domain)
		domain = asciiDomain(domain)
	}

	local = f.sanitizeLocal(local)
	local = multiDotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ". ")

	if !hasDomain {
		return local
	}
	return local + "@" + domain
}

func (f *SanitizeEmail) sanitizeLocal(local string) string {
	return strings.Map(func(r rune) rune {
		if r < 128 {
			if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
				return r
			}
			if strings.ContainsRune(strictLocalAllowed, r) {
				return r
			}
			return -1
		}
		if f.strict {
			return -1
		}
		if isEmoji(r) {
			return -1
		}
		if unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, local)
}

// stripInvisible removes control and format characters (zero-width joiners
// and spaces, bidi marks) that hide injected content from the user.
func stripInvisible(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return r
		}
		if unicode.In(r, unicode.Cc, unicode.Cf) {
			return -1
		}
		return r
	}, s)
}

// asciiDomain converts an internationalized domain to punycode. The input
// is returned untouched when it is already ASCII or cannot be converted.
func asciiDomain(domain string) string {
	ascii := true
	for _, r := range domain {
		if r >= 128 {
			ascii = false
			break
		}
	}
	if ascii {
		return domain
	}
	converted, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		return domain
	}
	return converted
}
