// Package logging builds the slog loggers used across slate.
//
// It supports two output formats: a compact single-line console format for
// interactive runs and JSON for machine consumption, selected by the logging
// config section. Typed attr helpers (String, Int, Float64, Error) keep call
// sites consistent so log fields stay greppable across packages.
//
// Obtain loggers through New or NewNop; components accept *slog.Logger and
// never construct their own handlers.
package logging
