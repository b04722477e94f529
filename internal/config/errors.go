package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidBackendConfigs indicates a missing backend endpoint or
	// project id.
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidStorageConfigs indicates an unknown storage driver or a
	// driver without its required settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates missing listen address or timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidGuardConfigs indicates empty guard prefix lists.
	ErrInvalidGuardConfigs = errors.New("invalid guard configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero expiry interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
