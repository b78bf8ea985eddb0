package form

import (
	"encoding/json"
	"fmt"
	"maps"
	"regexp"
	"strings"
)

// placeholderRegex finds interpolation tokens in the form {name}.
var placeholderRegex = regexp.MustCompile(`\{([^{}]+)\}`)

// Error is a single validation failure: a stable machine code, a
// human-readable message template with optional {placeholder} tokens, a
// context map supplying placeholder values, and an optional field binding.
//
// Error values are immutable. WithMessage, WithContext and ForField return
// modified copies and never touch the receiver, so a shared Error (for
// example a package-level template) can safely be specialized per field.
type Error struct {
	code    string
	message string
	context map[string]any
	field   string
}

// NewError creates an Error with the given machine code and no message.
// Display falls back to the code itself until WithMessage is called.
func NewError(code string) Error {
	return Error{code: code}
}

// Code returns the stable machine identifier.
func (e Error) Code() string { return e.code }

// Message returns the raw, uninterpolated message template.
func (e Error) Message() string { return e.message }

// Field returns the bound field name, or an empty string for a
// form-level error.
func (e Error) Field() string { return e.field }

// Context returns a copy of the placeholder context map.
func (e Error) Context() map[string]any {
	if e.context == nil {
		return map[string]any{}
	}
	return maps.Clone(e.context)
}

// WithMessage returns a copy with the message template replaced.
func (e Error) WithMessage(message string) Error {
	e.message = message
	return e
}

// WithContext returns a copy whose context is the merge of the existing
// context and ctx, with ctx winning on key collisions.
func (e Error) WithContext(ctx map[string]any) Error {
	merged := make(map[string]any, len(e.context)+len(ctx))
	maps.Copy(merged, e.context)
	maps.Copy(merged, ctx)
	e.context = merged
	return e
}

// ForField returns a copy bound to the given field name.
func (e Error) ForField(field string) Error {
	e.field = field
	return e
}

// Interpolate renders the message template, substituting every {key} token
// whose key exists in the context with the stringified value. Unknown
// tokens are left verbatim. An empty message renders as the code itself.
func (e Error) Interpolate() string {
	if e.message == "" {
		return e.code
	}
	return placeholderRegex.ReplaceAllStringFunc(e.message, func(token string) string {
		key := token[1 : len(token)-1]
		if v, ok := e.context[key]; ok {
			return fmt.Sprint(v)
		}
		return token
	})
}

// Error implements the error interface, returning the interpolated message.
func (e Error) Error() string {
	return e.Interpolate()
}

// MarshalJSON serializes the error as {code, message, context, field} with
// empty context and field omitted. Context keys are emitted in sorted order
// for stable output.
func (e Error) MarshalJSON() ([]byte, error) {
	out := struct {
		Code    string         `json:"code"`
		Message string         `json:"message,omitempty"`
		Context map[string]any `json:"context,omitempty"`
		Field   string         `json:"field,omitempty"`
	}{
		Code:    e.code,
		Message: e.message,
		Context: e.context,
		Field:   e.field,
	}
	return json.Marshal(out)
}

// ErrorArg is a value convertible to an Error: a bare Code, a Desc record,
// or a built Error. It is a closed set; rules and callbacks report failures
// using one of the three variants.
type ErrorArg interface {
	toError(field string) Error
}

// Code is a bare machine code convertible to an Error. The message is
// derived by humanizing the code: underscore segments are space-joined and
// the first letter capitalized, so Code("too_short") renders as "Too short".
type Code string

func (c Code) toError(field string) Error {
	return Error{code: string(c), message: humanizeCode(string(c)), field: field}
}

// Desc describes an Error field-by-field. Zero-value attributes are filled
// with defaults during normalization: an empty Field inherits the owning
// field's name.
type Desc struct {
	Code    string
	Message string
	Context map[string]any
	Field   string
}

func (d Desc) toError(field string) Error {
	err := Error{
		code:    d.Code,
		message: d.Message,
		field:   d.Field,
	}
	if len(d.Context) > 0 {
		err.context = maps.Clone(d.Context)
	}
	if err.field == "" {
		err.field = field
	}
	return err
}

func (e Error) toError(field string) Error {
	if e.field == "" {
		e.field = field
	}
	return e
}

// Normalize converts any ErrorArg variant into a concrete Error bound to
// field (unless the argument already carries its own binding).
func Normalize(arg ErrorArg, field string) Error {
	return arg.toError(field)
}

// humanizeCode turns a machine code into a display message:
// "invalid_email" becomes "Invalid email".
func humanizeCode(code string) string {
	words := strings.Split(code, "_")
	joined := strings.Join(words, " ")
	if joined == "" {
		return ""
	}
	return strings.ToUpper(joined[:1]) + joined[1:]
}
