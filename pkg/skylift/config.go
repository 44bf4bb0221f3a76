package skylift

import (
	"net/http"
	"time"
)

// Config represents client configuration for building a skylift.Client.
//
// # Authentication
//
// Token is the only credential: every request carries it as a static Bearer
// token. The token is checked at construction time, so a missing or blank
// token fails with code INVALID_TOKEN before any request leaves the process.
//
// # Timeouts and retries
//
// Timeout bounds each HTTP exchange from connection to body; a request that
// exceeds it fails with code TIMEOUT and the in-flight call is cancelled.
// Retries are off by default (RetryMax 0 means exactly one attempt per
// operation); setting RetryMax enables bounded retries with backoff between
// RetryWaitMin and RetryWaitMax for transient transport failures only.
//
// The Config value is copied by slclient.New. Mutating it afterwards has no
// effect on the built client, which is safe for concurrent use.
type Config struct {
	// Required fields
	// Token: Skylift Cloud API token used as the static Bearer credential.
	Token string

	// Optional configurations
	// Endpoint: base URL of the API. Defaults to the public endpoint
	// "https://api.skylift.cloud/v1". slclient.New normalizes the value by
	// trimming trailing slashes and adding "https://" if no scheme is present.
	Endpoint string
	// Timeout: wall-clock budget per HTTP exchange. Defaults to 30 seconds.
	Timeout time.Duration
	// PollInterval: default pause between action status fetches when polling.
	// Defaults to 1 second; PollOptions.Interval overrides it per call.
	PollInterval time.Duration
	// PollTimeout: default total budget for waiting on a single action.
	// Defaults to 5 minutes; PollOptions.Timeout overrides it per call.
	PollTimeout time.Duration
	// RetryMax: maximum number of retries for transient transport failures.
	// Defaults to 0: every operation performs exactly one HTTP call.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
	// HTTPClient: optional pre-configured http.Client, for tests or custom
	// transports. The client's own Timeout field is left untouched; the
	// Timeout above still applies per request.
	HTTPClient *http.Client
}
