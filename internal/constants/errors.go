package constants

import "errors"

// Configuration errors.
var (
	ErrNilConfig         = errors.New("config must not be nil")
	ErrMissingToken      = errors.New("API token is required")
	ErrMissingEndpoint   = errors.New("API endpoint is required")
	ErrInvalidEndpoint   = errors.New("API endpoint is not a valid URL")
	ErrNegativeTimeout   = errors.New("timeout must not be negative")
	ErrNoTokenInConfig   = errors.New("no API token configured, use 'skylift auth login' or set SKYLIFT_TOKEN")
	ErrTokenFromTerminal = errors.New("reading token from terminal failed")
)

// Polling errors.
var (
	ErrActionFailed      = errors.New("action failed")
	ErrActionPollTimeout = errors.New("action polling timed out")
	ErrNoActionIDs       = errors.New("at least one action ID is required")
)

// Resource lookup errors used by the CLI.
var (
	ErrServerNotFound     = errors.New("server not found")
	ErrImageNotFound      = errors.New("image not found")
	ErrVolumeNotFound     = errors.New("volume not found")
	ErrSSHKeyNotFound     = errors.New("SSH key not found")
	ErrServerNameRequired = errors.New("server name is required")
	ErrVolumeNameRequired = errors.New("volume name is required")
	ErrSSHKeyNameRequired = errors.New("SSH key name is required")
	ErrPublicKeyRequired  = errors.New("public key is required")
)

// Output errors.
var (
	ErrUnknownOutputFormat = errors.New("unknown output format")
)
