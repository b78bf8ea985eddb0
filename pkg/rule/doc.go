// Package rule provides the built-in validating processors. Rules inspect
// the current value and append zero or more form.Error values to the run
// context; the value itself passes through unchanged, and a failing rule
// never stops the rest of the field's pipeline.
//
// Presence and format concerns are deliberately split: Length, Regex and
// Email all treat the empty string as valid, so "must be present" is
// always expressed with Required. A field that is both mandatory and
// format-checked declares both rules:
//
//	form.NewField("email").
//		AddRule(rule.NewRequired()).
//		AddRule(rule.NewEmail())
//
// Configuration mistakes — an uncompilable Regex pattern, a nil Callback —
// panic at construction.
package rule
