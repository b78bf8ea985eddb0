// Package logger is a small factory over log/slog used by the HTTP layer
// and the daemon. The processing pipeline itself never logs; logging is a
// caller-side concern wrapping Process calls.
//
//	log := logger.New(logger.WithDevelopment("mailform"))
//	log.Info("form processed", "form", name, "valid", result.Valid())
package logger
