package rule

import (
	"github.com/dmitrymomot/mailform/pkg/form"
)

// CallbackFunc inspects a value and returns zero or more failures. Each
// element is a form.ErrorArg: a bare form.Code (message auto-derived from
// the code), a form.Desc record, or a built form.Error. Returning nil or
// an empty slice means the value passed.
type CallbackFunc func(value any, field *form.Field, ctx *form.Context) []form.ErrorArg

// Callback wraps a user-supplied validation function as a rule. Reported
// failures are normalized and bound to the field; the value always passes
// through unchanged. A nil function panics at construction.
func Callback(fn CallbackFunc) form.Processor {
	if fn == nil {
		panic("rule: nil callback")
	}
	return form.ProcessorFunc(func(value any, field *form.Field, ctx *form.Context) any {
		for _, arg := range fn(value, field, ctx) {
			ctx.AddError(field.Name(), form.Normalize(arg, field.Name()))
		}
		return value
	})
}
