package form

import (
	"encoding/json"
	"maps"
)

// Result is the immutable end-of-run snapshot: the validity flag, a copy
// of the error map and a copy of the normalized data. All accessors are
// pure reads; the snapshot never observes later context mutation.
type Result struct {
	valid  bool
	errors map[string][]Error
	data   map[string]any
}

// NewResult snapshots a context: valid iff the context holds no errors,
// with error and data maps copied rather than referenced.
func NewResult(ctx *Context) Result {
	return Result{
		valid:  !ctx.HasErrors(),
		errors: ctx.Errors(),
		data:   ctx.Data(),
	}
}

// Valid reports whether the run produced zero errors.
func (r Result) Valid() bool { return r.valid }

// Errors returns the field-keyed error map. The top-level map is copied;
// callers iterate, they do not mutate.
func (r Result) Errors() map[string][]Error {
	out := make(map[string][]Error, len(r.errors))
	for name, list := range r.errors {
		cp := make([]Error, len(list))
		copy(cp, list)
		out[name] = cp
	}
	return out
}

// FieldErrors returns the field's errors in insertion order.
func (r Result) FieldErrors(name string) []Error {
	list := r.errors[name]
	out := make([]Error, len(list))
	copy(out, list)
	return out
}

// HasFieldErrors reports whether the field collected any errors.
func (r Result) HasFieldErrors(name string) bool {
	return len(r.errors[name]) > 0
}

// Messages returns the field's errors as interpolated display strings.
func (r Result) Messages(name string) []string {
	list := r.errors[name]
	out := make([]string, len(list))
	for i, err := range list {
		out[i] = err.Interpolate()
	}
	return out
}

// Data returns a copy of the normalized field-value map.
func (r Result) Data() map[string]any {
	return maps.Clone(r.data)
}

// Value returns the normalized value for name, nil when absent.
func (r Result) Value(name string) any {
	return r.data[name]
}

// MarshalJSON serializes the snapshot as {valid, errors, data}, with each
// error in its {code, message, context, field} record form.
func (r Result) MarshalJSON() ([]byte, error) {
	out := struct {
		Valid  bool               `json:"valid"`
		Errors map[string][]Error `json:"errors,omitempty"`
		Data   map[string]any     `json:"data"`
	}{
		Valid:  r.valid,
		Errors: r.errors,
		Data:   r.data,
	}
	return json.Marshal(out)
}
