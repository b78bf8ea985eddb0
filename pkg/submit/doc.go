// Package submit is the HTTP boundary: it decodes request bodies into the
// raw field-value maps the form pipeline consumes, maps results to JSON
// responses with stable status codes, and dispatches valid submissions as
// email when a transport is configured.
//
// Validation failures answer 422 with a field-keyed error list — either
// serialized {code, message, context, field} records or interpolated
// display strings, chosen at construction. Uncaught processor panics are
// programming errors and propagate to the server's recovery middleware.
package submit
