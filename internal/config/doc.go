// Package config loads, normalizes, and validates cubby configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), decodes TOML files, and keeps the category table in
// declaration order so classification stays deterministic. The Config type
// centralizes every knob the CLI needs: state and log directories, the
// category table, the fallback bucket, and undo cleanup behavior.
//
// Always obtain settings through Load so downstream code receives sanitized
// paths, canonical extension spellings, and clear validation errors instead
// of raw file contents.
package config
