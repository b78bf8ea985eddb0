package transform

import (
	"github.com/dmitrymomot/mailform/pkg/form"
)

// Callback wraps a value-only function as a transformer. Like the filter
// adapters, the full processor signature is fixed at construction; a nil
// function panics.
func Callback(fn func(value any) any) form.Processor {
	if fn == nil {
		panic("transform: nil callback")
	}
	return form.ProcessorFunc(func(value any, _ *form.Field, _ *form.Context) any {
		return fn(value)
	})
}

// CallbackField wraps a function that also receives the field descriptor.
func CallbackField(fn func(value any, field *form.Field) any) form.Processor {
	if fn == nil {
		panic("transform: nil callback")
	}
	return form.ProcessorFunc(func(value any, field *form.Field, _ *form.Context) any {
		return fn(value, field)
	})
}

// CallbackContext wraps a function receiving the full processor contract.
// Useful for cross-field transforms that read sibling values from the
// context.
func CallbackContext(fn func(value any, field *form.Field, ctx *form.Context) any) form.Processor {
	if fn == nil {
		panic("transform: nil callback")
	}
	return form.ProcessorFunc(fn)
}
