package filter

import (
	"github.com/dmitrymomot/mailform/pkg/form"
)

// Callback wraps a value-only function as a filter. The adapter fixes the
// full processor signature at construction, so there is no runtime arity
// dispatch. A nil function is a programming error and panics.
func Callback(fn func(value any) any) form.Processor {
	if fn == nil {
		panic("filter: nil callback")
	}
	return form.ProcessorFunc(func(value any, _ *form.Field, _ *form.Context) any {
		return fn(value)
	})
}

// CallbackField wraps a function that also receives the field descriptor.
func CallbackField(fn func(value any, field *form.Field) any) form.Processor {
	if fn == nil {
		panic("filter: nil callback")
	}
	return form.ProcessorFunc(func(value any, field *form.Field, _ *form.Context) any {
		return fn(value, field)
	})
}

// CallbackContext wraps a function receiving the full processor contract,
// including the shared run context.
func CallbackContext(fn func(value any, field *form.Field, ctx *form.Context) any) form.Processor {
	if fn == nil {
		panic("filter: nil callback")
	}
	return form.ProcessorFunc(fn)
}
