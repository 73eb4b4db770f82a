package config

import "errors"

// Errors returned by the configuration loaders.
var (
	// ErrInvalidPort indicates a port value that is not an integer in the
	// 1..65535 range.
	ErrInvalidPort = errors.New("invalid port")
	// ErrEmptyName indicates a greeting config whose name is empty after
	// defaults were applied.
	ErrEmptyName = errors.New("empty greeting name")
	// ErrInvalidServiceConfigs indicates invalid lab service settings
	// (for example, an empty peer host or a non-positive timeout).
	ErrInvalidServiceConfigs = errors.New("invalid service configuration")
)
