// Package logging assembles structured slog loggers for tvremote.
//
// It owns the console and JSON handlers, maps configuration onto levels and
// outputs, and exposes helpers that tag log lines with a component name and
// the correlation ID carried in a context. A no-op logger is provided for
// tests and for wiring code that has no logger to pass.
package logging
