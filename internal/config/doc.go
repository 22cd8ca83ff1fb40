// Package config loads, normalizes, and validates exporter configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and keeps every knob the CLI needs in one
// place: the Steam storefront endpoint, the ffmpeg binary, temp and ledger
// locations, and logging preferences.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
