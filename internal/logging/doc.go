// Package logging constructs the application slog logger and provides the
// attribute helpers and standardized field names used across packages.
package logging
