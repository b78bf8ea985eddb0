// Package form implements the field-processing pipeline at the heart of
// mailform: declarative form schemas whose fields run ordered chains of
// processors (filters, transformers, rules) against submitted input,
// accumulating typed, interpolatable errors and producing an immutable
// result snapshot.
//
// # Architecture
//
// Every pipeline stage satisfies the single Processor contract:
//
//	Process(value any, field *Field, ctx *Context) any
//
// A stage receives the previous stage's output, may record errors or write
// other fields' values through the shared Context, and returns the value
// handed to the next stage. The three processor families differ only by
// convention: filters sanitize and never report errors, transformers
// mutate values, rules validate and append errors without altering the
// value. Concrete implementations live in the filter, transform and rule
// packages.
//
// # Usage
//
//	contact := form.New("contact").
//		Add(form.NewField("name").
//			AddFilter(filter.NewTrim()).
//			AddRule(rule.NewRequired())).
//		Add(form.NewField("email", "reply_to_email").
//			AddFilter(filter.NewSanitizeEmail()).
//			AddRule(rule.NewRequired()).
//			AddRule(rule.NewEmail()))
//
//	result := contact.Process(map[string]any{
//		"name":  "  Julien ",
//		"email": "MOI@Example.COM",
//	})
//	if !result.Valid() {
//		for field, errs := range result.Errors() {
//			// each Error carries a stable code plus an
//			// interpolatable message template
//			_ = field
//			_ = errs
//		}
//	}
//
// # Error model
//
// Validation failures are Error values, never Go errors returned from
// Process: the presence of validation errors is a normal outcome, reported
// through Result.Valid. Programming mistakes (empty field names, invalid
// filter configuration, uncompilable rule patterns) panic at construction
// instead, so misconfigured schemas fail at startup rather than per
// request.
//
// # Concurrency
//
// A Context (and therefore one Process run) is strictly single-threaded.
// Processor instances hold no per-run state, so the same instance may be
// shared across fields, forms and concurrent Process calls.
package form
