// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels, plus helpers for carrying a logger through a
// context.Context so lower layers can log with request- or test-scoped attributes.
package logger
