package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration cannot start the service.
var (
	// ErrNoServerAddress indicates that neither an HTTP nor a gRPC address
	// is configured.
	ErrNoServerAddress = errors.New("no server address configured")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a negative request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid fault journal settings
	// (for example, an unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnsupportedConfigFile indicates a config file extension other than
	// .json, .yaml or .yml.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
