package mailer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/mailform/pkg/form"
)

// Field roles recognized by the composer. Roles are declared on form
// fields and read here; the processing pipeline itself ignores them.
const (
	// RoleReplyToEmail marks the field supplying the reply-to address.
	RoleReplyToEmail = "reply_to_email"
	// RoleReplyToName marks the field supplying the reply-to display name.
	RoleReplyToName = "reply_to_name"
	// RoleSubject marks fields whose values feed the subject line when no
	// subject template is configured.
	RoleSubject = "subject"
)

var templateTokenRegex = regexp.MustCompile(`\{([^{}]+)\}`)

// Render substitutes {key} tokens in a template with stringified values
// from data. Unknown tokens are left verbatim, mirroring the error-message
// interpolation in the form package.
func Render(template string, data map[string]any) string {
	return templateTokenRegex.ReplaceAllStringFunc(template, func(token string) string {
		key := token[1 : len(token)-1]
		if v, ok := data[key]; ok {
			return fmt.Sprint(v)
		}
		return token
	})
}

// Composer turns a validated form result into a ready-to-send email. The
// subject and body are {field} templates rendered against the result data;
// the reply-to address and name are picked out of the form's field roles.
type Composer struct {
	sendTo          string
	subjectTemplate string
	bodyTemplate    string
	tag             string
}

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithTag attaches a transport analytics tag to every composed email.
func WithTag(tag string) ComposerOption {
	return func(c *Composer) { c.tag = tag }
}

// NewComposer creates a Composer delivering to sendTo with the given
// subject and body templates.
func NewComposer(sendTo, subjectTemplate, bodyTemplate string, opts ...ComposerOption) *Composer {
	c := &Composer{
		sendTo:          sendTo,
		subjectTemplate: subjectTemplate,
		bodyTemplate:    bodyTemplate,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose renders an email from a processed submission. The caller is
// expected to have checked result.Valid first; Compose does not revalidate.
func (c *Composer) Compose(f *form.Form, result form.Result) SendEmailParams {
	data := result.Data()

	subject := Render(c.subjectTemplate, data)
	if c.subjectTemplate == "" {
		subject = subjectFromRoles(f, data)
	}

	params := SendEmailParams{
		SendTo:   c.sendTo,
		Subject:  subject,
		BodyHTML: Render(c.bodyTemplate, data),
		Tag:      c.tag,
	}

	for _, field := range f.Fields() {
		value, ok := data[field.Name()].(string)
		if !ok || value == "" {
			continue
		}
		if field.HasRole(RoleReplyToEmail) {
			params.ReplyTo = value
		}
		if field.HasRole(RoleReplyToName) {
			params.ReplyToName = value
		}
	}

	return params
}

// subjectFromRoles joins the values of subject-role fields in field
// declaration order, the fallback when no subject template is set.
func subjectFromRoles(f *form.Form, data map[string]any) string {
	var parts []string
	for _, field := range f.Fields() {
		if !field.HasRole(RoleSubject) {
			continue
		}
		if v, ok := data[field.Name()]; ok && v != nil {
			if s := fmt.Sprint(v); s != "" {
				parts = append(parts, s)
			}
		}
	}
	return strings.Join(parts, " ")
}
