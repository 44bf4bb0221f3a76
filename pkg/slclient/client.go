// Package slclient provides the main entry point for creating Skylift Cloud API clients
package slclient

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/skylift-io/skylift-go/internal/client"
	"github.com/skylift-io/skylift-go/internal/constants"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// New creates a new Skylift Cloud API client. The configuration is copied
// before use; the endpoint is normalized and the token is checked here, so a
// misconfigured client fails at construction instead of on its first call.
func New(config *skylift.Config) (skylift.Client, error) {
	if config == nil {
		return nil, skylift.ErrConfigRequired
	}

	// Work on a copy so the caller's Config stays untouched.
	cfg := *config

	endpoint, err := normalizeEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	cfg.Endpoint = endpoint

	// Use the internal client implementation
	apiClient, err := client.New(&cfg)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return apiClient, nil
}

// normalizeEndpoint applies the endpoint default and brings the value into
// canonical form: no trailing slashes, explicit scheme, non-empty host.
func normalizeEndpoint(endpoint string) (string, error) {
	if endpoint == "" {
		return constants.DefaultEndpoint, nil
	}

	endpoint = strings.TrimRight(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parsing endpoint URL: %w", err)
	}

	if parsed.Host == "" {
		return "", skylift.ErrNoHostInURL
	}

	return endpoint, nil
}

// NewWithToken creates a new client for the public API endpoint.
func NewWithToken(token string) (skylift.Client, error) {
	return New(&skylift.Config{
		Token: token,
	})
}

// NewWithEndpoint creates a new client for a non-default API endpoint, for
// example a regional deployment or a test server.
func NewWithEndpoint(token, endpoint string) (skylift.Client, error) {
	return New(&skylift.Config{
		Token:    token,
		Endpoint: endpoint,
	})
}
