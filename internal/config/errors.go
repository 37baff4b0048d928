package config

import "errors"

// Validation errors returned when a configuration view is incomplete.
var (
	// ErrInvalidAppConfigs indicates missing token settings or a bcrypt cost
	// out of range.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive timeout or feed limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidBoardConfigs indicates a non-positive recent notes window.
	ErrInvalidBoardConfigs = errors.New("invalid board configuration")
)
