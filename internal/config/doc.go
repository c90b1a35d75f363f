// Package config loads, normalizes, and validates slate configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// SLATE_TRENDS_API_KEY (optionally sourced from a .env file). The Config type
// centralizes every knob the CLI and workflow need, and Profile projects the
// timing/audio/overlay/export contract into the immutable value injected into
// the manifest builder.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical defaults, and clear validation errors.
package config
