package rule

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"

	"github.com/dmitrymomot/mailform/pkg/form"
)

// unicodeEmailRegex is the relaxed fallback for internationalized local
// parts: Unicode letters, marks and digits plus the standard local-part
// symbol set, followed by a dotted domain.
var unicodeEmailRegex = regexp.MustCompile(
	"^[\\p{L}\\p{M}\\p{N}!#$%&'*+/=?^_`{|}~.-]+@(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?\\.)+[a-zA-Z]{2,}$")

// Email validates email address syntax. The domain is converted to its
// ASCII (punycode) form first when internationalized, then the address is
// checked with the standard mail-address parser; when ASCII-only mode is
// off (the default), addresses the parser rejects get a second chance
// against a Unicode-aware pattern so internationalized local parts pass.
//
// An empty string is valid — presence is Required's job. Non-strings are
// not checked.
type Email struct {
	asciiOnly bool
	normalize bool
	code      string
	message   string
}

// EmailOption configures an Email rule.
type EmailOption func(*Email)

// WithASCIIOnly rejects addresses whose local part the standard parser
// cannot handle, disabling the Unicode fallback.
func WithASCIIOnly() EmailOption {
	return func(r *Email) { r.asciiOnly = true }
}

// WithoutDomainNormalization skips punycode conversion of the domain.
func WithoutDomainNormalization() EmailOption {
	return func(r *Email) { r.normalize = false }
}

// WithEmailCode overrides the machine code (default "invalid_email").
func WithEmailCode(code string) EmailOption {
	return func(r *Email) { r.code = code }
}

// NewEmail creates an Email rule with domain normalization on and the
// Unicode fallback enabled.
func NewEmail(opts ...EmailOption) *Email {
	r := &Email{
		normalize: true,
		code:      "invalid_email",
		message:   "Must be a valid email address",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Process implements form.Processor.
func (r *Email) Process(value any, field *form.Field, ctx *form.Context) any {
	s, ok := value.(string)
	if !ok || s == "" {
		return value
	}

	candidate := s
	if local, domain, found := strings.Cut(s, "@"); found && r.normalize {
		if converted, err := idna.Lookup.ToASCII(domain); err == nil {
			candidate = local + "@" + converted
		}
	}

	if !r.valid(candidate) {
		ctx.AddError(field.Name(), form.NewError(r.code).
			WithMessage(r.message).
			WithContext(map[string]any{"value": s, "normalized": candidate}))
	}
	return value
}

func (r *Email) valid(email string) bool {
	// net/mail accepts RFC 6532 UTF-8 local parts, so ASCII-only mode has
	// to reject those before the parser sees the address.
	if r.asciiOnly && !asciiLocalPart(email) {
		return false
	}
	if addr, err := mail.ParseAddress(email); err == nil && addr.Address == email {
		if domainPlausible(email) {
			return true
		}
	}
	if r.asciiOnly {
		return false
	}
	return unicodeEmailRegex.MatchString(email)
}

func asciiLocalPart(email string) bool {
	local, _, _ := strings.Cut(email, "@")
	for _, r := range local {
		if r >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// domainPlausible requires a dotted domain without empty labels, ruling
// out addresses like a@b that the RFC parser accepts but no mail provider
// delivers to.
func domainPlausible(email string) bool {
	_, domain, found := strings.Cut(email, "@")
	if !found || !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
