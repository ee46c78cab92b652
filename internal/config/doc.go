// Package config loads, normalizes, and validates tvremote configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts) and reads TOML files. The Config type gathers the logging and
// on-screen display knobs the CLI needs so callers discover them in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical enum values, and clear validation errors.
package config
