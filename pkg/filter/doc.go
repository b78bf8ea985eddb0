// Package filter provides the built-in sanitizing processors for form
// pipelines: stateless value cleaners that normalize or defuse user input
// and never report validation errors.
//
// Every filter implements form.Processor and follows two shared rules:
// non-string values pass through untouched, and re-applying a filter to
// its own output is a no-op wherever practical (HTMLEscape with double
// encoding enabled is the documented exception).
//
// Filters hold no per-call state, so a single configured instance can be
// shared across fields, forms and concurrent processing runs:
//
//	trim := filter.NewTrim()
//	email := filter.NewSanitizeEmail(filter.WithStrictLocalPart())
//
//	f := form.New("contact").
//		Add(form.NewField("email").AddFilter(trim).AddFilter(email))
//
// Configuration mistakes (an unknown trim direction, a nil callback) panic
// at construction rather than surfacing per request.
package filter
