package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid node identity settings
	// (for example, a malformed node URL or unpaired key files).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an unknown engine or a missing
	// path/DSN for the selected one.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidTLSConfigs indicates an unknown TLS mode or missing
	// certificate material for strict mode.
	ErrInvalidTLSConfigs = errors.New("invalid tls configuration")
	// ErrInvalidAdapterConfigs indicates invalid outbound push settings
	// (for example, zero attempts or zero timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero discovery interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
