// Package config loads environment-based configuration into tagged
// structs, with .env file support for development and per-type caching so
// the same configuration is parsed once per process.
package config
