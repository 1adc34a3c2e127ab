// Package logger provides slog constructors used across the module:
// a JSON logger tagged with a component name, and a no-op logger used as
// the default when logging is not configured.
package logger
