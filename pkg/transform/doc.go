// Package transform provides the built-in value-mutating processors:
// case folding, entity encoding and callback wrappers. Transformers sit
// between sanitization and validation in a typical pipeline, though the
// pipeline itself enforces no ordering — whatever the schema declares is
// what runs.
//
// Like filters, transformers never report errors and return non-string
// values unchanged.
package transform
