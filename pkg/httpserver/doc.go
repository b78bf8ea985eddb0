// Package httpserver wraps net/http with graceful shutdown, signal
// handling and option-based configuration for the mailform daemon.
package httpserver
