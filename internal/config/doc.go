// Package config loads, normalizes, and validates webpify configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and clamps out-of-range values such as the
// WebP quality factor. The Config type centralizes every knob the CLI needs.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
