package form

import "maps"

// GlobalField is the reserved error-map key for form-level errors that are
// not bound to any particular field.
const GlobalField = "_form"

// Context is the mutable per-run scratchpad threaded through every
// processor invocation. It carries the raw submitted input (never mutated
// after construction), the evolving normalized data, and the accumulated
// errors keyed by field name.
//
// A Context lives for exactly one Form.Process call and is not safe for
// concurrent use. Processors keep no per-run state of their own; everything
// a run accumulates lives here.
type Context struct {
	input  map[string]any
	data   map[string]any
	errors map[string][]Error
}

// NewContext creates a Context seeded with raw submitted input. The input
// map is copied, so later mutation by the caller does not leak in.
func NewContext(input map[string]any) *Context {
	c := &Context{
		input:  make(map[string]any, len(input)),
		data:   make(map[string]any),
		errors: make(map[string][]Error),
	}
	maps.Copy(c.input, input)
	return c
}

// Input returns the raw submitted value for name, or nil when the key was
// not submitted.
func (c *Context) Input(name string) any {
	return c.input[name]
}

// HasInput reports whether the key was present in the submitted input.
func (c *Context) HasInput(name string) bool {
	_, ok := c.input[name]
	return ok
}

// Value returns the normalized value for name if a processor has set one,
// falling back to the raw input value, and nil when neither exists.
func (c *Context) Value(name string) any {
	if v, ok := c.data[name]; ok {
		return v
	}
	return c.input[name]
}

// SetValue overwrites the normalized value for name. Last writer wins; the
// pipeline runs sequentially and each processor reads the evolving value
// forward.
func (c *Context) SetValue(name string, value any) {
	c.data[name] = value
}

// AddError appends err to the field's error list, binding it to name when
// it carries no field of its own. Errors are never deduplicated and never
// stop the remaining processors in the field's pipeline.
func (c *Context) AddError(name string, err Error) {
	if err.field == "" {
		err.field = name
	}
	c.errors[name] = append(c.errors[name], err)
}

// AddGlobalError appends a form-level error under the GlobalField key.
func (c *Context) AddGlobalError(err Error) {
	c.AddError(GlobalField, err)
}

// HasError reports whether the field has at least one error.
func (c *Context) HasError(name string) bool {
	return len(c.errors[name]) > 0
}

// HasErrors reports whether any field (including GlobalField) has errors.
func (c *Context) HasErrors() bool {
	for _, list := range c.errors {
		if len(list) > 0 {
			return true
		}
	}
	return false
}

// FieldErrors returns the field's errors in insertion order, empty when the
// field has none.
func (c *Context) FieldErrors(name string) []Error {
	list := c.errors[name]
	out := make([]Error, len(list))
	copy(out, list)
	return out
}

// Errors returns a copy of the full error map, skipping fields whose lists
// are empty.
func (c *Context) Errors() map[string][]Error {
	out := make(map[string][]Error, len(c.errors))
	for name, list := range c.errors {
		if len(list) == 0 {
			continue
		}
		cp := make([]Error, len(list))
		copy(cp, list)
		out[name] = cp
	}
	return out
}

// Data returns a copy of the normalized data map.
func (c *Context) Data() map[string]any {
	return maps.Clone(c.data)
}

// AllInput returns a copy of the raw input map.
func (c *Context) AllInput() map[string]any {
	return maps.Clone(c.input)
}

// SetErrors replaces the whole error map. Intended for rule composition and
// tests; the map is copied list-by-list.
func (c *Context) SetErrors(errs map[string][]Error) {
	c.errors = make(map[string][]Error, len(errs))
	for name, list := range errs {
		cp := make([]Error, len(list))
		copy(cp, list)
		c.errors[name] = cp
	}
}

// ClearFieldErrors drops all errors recorded for name.
func (c *Context) ClearFieldErrors(name string) {
	delete(c.errors, name)
}

// ClearErrors drops every recorded error.
func (c *Context) ClearErrors() {
	c.errors = make(map[string][]Error)
}

// WithValue returns an independent copy of the context with exactly one
// value change applied. The original is untouched; the copy shares no maps
// with it.
func (c *Context) WithValue(name string, value any) *Context {
	cp := c.clone()
	cp.data[name] = value
	return cp
}

// WithError returns an independent copy of the context with one error
// appended.
func (c *Context) WithError(name string, err Error) *Context {
	cp := c.clone()
	cp.AddError(name, err)
	return cp
}

func (c *Context) clone() *Context {
	cp := &Context{
		input:  maps.Clone(c.input),
		data:   maps.Clone(c.data),
		errors: make(map[string][]Error, len(c.errors)),
	}
	for name, list := range c.errors {
		l := make([]Error, len(list))
		copy(l, list)
		cp.errors[name] = l
	}
	return cp
}
