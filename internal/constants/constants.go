package constants

import "time"

// API endpoint defaults.
const (
	// DefaultEndpoint is the production Skylift Cloud API endpoint.
	DefaultEndpoint = "https://api.skylift.cloud/v1"

	// DefaultUserAgent identifies this library on the wire.
	DefaultUserAgent = "skylift-go/" + Version

	// Version is the library version reported in the User-Agent header.
	Version = "1.4.0"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default per-request timeout.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations in tests and the CLI.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. The client performs no automatic retries unless a caller
// opts in through the retry configuration.
const (
	// DefaultRetryMax disables automatic retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait between opt-in retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between opt-in retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Action polling intervals and deadlines.
const (
	// DefaultActionPollInterval is the wait between successive action fetches.
	DefaultActionPollInterval = 1 * time.Second

	// DefaultActionPollTimeout bounds a whole polling loop, independent of the
	// per-request HTTP timeout.
	DefaultActionPollTimeout = 5 * time.Minute
)

// Pagination limits.
const (
	// DefaultPerPage is the page size used when the caller does not set one.
	DefaultPerPage = 25

	// MaxPerPage is the largest page size the provider accepts.
	MaxPerPage = 50

	// FirstPage is the page number list endpoints start at.
	FirstPage = 1
)

// Progress bounds reported on actions.
const (
	// ProgressDone is the progress value of a finished action.
	ProgressDone = 100
)

// File and directory permissions for CLI configuration.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Output format names shared by CLI commands.
const (
	// FormatTable renders human-readable tables.
	FormatTable = "table"

	// FormatJSON renders JSON output.
	FormatJSON = "json"

	// FormatYAML renders YAML output.
	FormatYAML = "yaml"
)

// Display constants.
const (
	// NotAvailable is shown when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)
