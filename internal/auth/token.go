// Package auth builds the Authorization header presented on API requests.
//
// Skylift authenticates every request with a static bearer token. The token
// is validated once, before any network activity, so a misconfigured client
// fails fast instead of producing a 401 on its first call.
package auth

import (
	"context"
	"strings"

	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// TokenManager provides the API token presented on each request.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// StaticTokenManager serves a fixed API token.
type StaticTokenManager struct {
	token string
}

// NewStaticTokenManager creates a token manager for a fixed API token.
// An empty or all-whitespace token is rejected with code INVALID_TOKEN.
func NewStaticTokenManager(token string) (*StaticTokenManager, error) {
	if strings.TrimSpace(token) == "" {
		return nil, invalidTokenError()
	}

	return &StaticTokenManager{token: token}, nil
}

// GetToken returns the configured token.
func (m *StaticTokenManager) GetToken(_ context.Context) (string, error) {
	return m.token, nil
}

// BuildAuthHeader returns the Authorization header for the given token.
// An empty or all-whitespace token is rejected with code INVALID_TOKEN.
func BuildAuthHeader(token string) (map[string]string, error) {
	if strings.TrimSpace(token) == "" {
		return nil, invalidTokenError()
	}

	return map[string]string{"Authorization": "Bearer " + token}, nil
}

func invalidTokenError() *skylift.APIError {
	return &skylift.APIError{
		Message: "API token is missing or blank",
		Code:    skylift.ErrorCodeInvalidToken,
	}
}
