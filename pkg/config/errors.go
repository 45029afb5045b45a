package config

import "errors"

var (
	// ErrUnknownPreset is returned when no embedded preset has the given name.
	ErrUnknownPreset = errors.New("config: unknown preset")
	// ErrInvalidRange is returned when a numeric range field has an empty or
	// half-open domain.
	ErrInvalidRange = errors.New("config: invalid range")
	// ErrUnsupportedFormat is returned for files that are neither YAML nor JSON.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
)
