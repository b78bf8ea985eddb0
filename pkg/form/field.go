package form

import (
	"fmt"
	"slices"
)

// Processor is the uniform contract every pipeline stage satisfies:
// filters, transformers and rules all consume the current value, the field
// descriptor and the shared run context, and return the (possibly
// transformed) value. Stages may record errors or write other fields'
// values through the context as side effects.
//
// Processors must be stateless across invocations: the same inputs against
// the same context state always produce the same observable result, so a
// single instance can be shared across fields, forms and concurrent runs.
type Processor interface {
	Process(value any, field *Field, ctx *Context) any
}

// ProcessorFunc adapts a plain function to the Processor interface.
type ProcessorFunc func(value any, field *Field, ctx *Context) any

// Process implements Processor.
func (f ProcessorFunc) Process(value any, field *Field, ctx *Context) any {
	return f(value, field, ctx)
}

// Field is the static schema for one named input slot: its semantic roles
// and its ordered processor pipeline. Roles are opaque tags consumed by the
// mail-composition layer (for example "reply_to_email"); the pipeline
// itself ignores them.
//
// Fields are built once at form-setup time. The processor list may only
// grow, via the fluent Add helpers, and its declared order is exactly the
// execution order.
type Field struct {
	name       string
	roles      []string
	processors []Processor
}

// NewField creates a field schema. The name must be non-empty; an empty
// name is a programming error and panics.
func NewField(name string, roles ...string) *Field {
	if name == "" {
		panic(fmt.Errorf("form: field name must not be empty"))
	}
	return &Field{name: name, roles: roles}
}

// Name returns the field's unique key within a form.
func (f *Field) Name() string { return f.name }

// Roles returns the field's semantic tags in declaration order.
func (f *Field) Roles() []string {
	return slices.Clone(f.roles)
}

// HasRole reports whether the field carries the given semantic tag.
func (f *Field) HasRole(role string) bool {
	return slices.Contains(f.roles, role)
}

// Add appends a processor to the pipeline and returns the field for
// chaining.
func (f *Field) Add(p Processor) *Field {
	f.processors = append(f.processors, p)
	return f
}

// AddFilter appends a sanitizing processor. Behaviorally identical to Add;
// the name documents intent at the call site.
func (f *Field) AddFilter(p Processor) *Field {
	return f.Add(p)
}

// AddRule appends a validating processor. Behaviorally identical to Add.
func (f *Field) AddRule(p Processor) *Field {
	return f.Add(p)
}

// Processors returns the pipeline in declared order. Callers must treat
// the returned slice as read-only.
func (f *Field) Processors() []Processor {
	return f.processors
}
