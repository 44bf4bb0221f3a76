package auth_test

import (
	"context"
	"testing"

	"github.com/skylift-io/skylift-go/internal/auth"
	"github.com/skylift-io/skylift-go/pkg/skylift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAuthHeader(t *testing.T) {
	t.Parallel()

	tests := getAuthHeaderTestCases()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			headers, err := auth.BuildAuthHeader(tt.token)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, headers)

				apiErr := &skylift.APIError{}
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, skylift.ErrorCodeInvalidToken, apiErr.Code)
				assert.Equal(t, 0, apiErr.HTTPStatus)
			} else {
				require.NoError(t, err)
				assert.Equal(t, map[string]string{"Authorization": tt.expected}, headers)
			}
		})
	}
}

func getAuthHeaderTestCases() []struct {
	name     string
	token    string
	expected string
	wantErr  bool
} {
	return []struct {
		name     string
		token    string
		expected string
		wantErr  bool
	}{
		{
			name:     "valid token",
			token:    "sk-test-token",
			expected: "Bearer sk-test-token",
		},
		{
			name:    "empty token",
			token:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only token",
			token:   "   ",
			wantErr: true,
		},
		{
			name:    "tabs and newlines only",
			token:   "\t\n ",
			wantErr: true,
		},
		{
			name:     "token with surrounding whitespace is kept verbatim",
			token:    " sk-test-token ",
			expected: "Bearer  sk-test-token ",
		},
	}
}

func TestNewStaticTokenManager(t *testing.T) {
	t.Parallel()

	t.Run("valid token", func(t *testing.T) {
		t.Parallel()

		manager, err := auth.NewStaticTokenManager("sk-test-token")
		require.NoError(t, err)

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "sk-test-token", token)
	})

	t.Run("empty token rejected before any request", func(t *testing.T) {
		t.Parallel()

		manager, err := auth.NewStaticTokenManager("")
		require.Error(t, err)
		assert.Nil(t, manager)

		apiErr := &skylift.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, skylift.ErrorCodeInvalidToken, apiErr.Code)
	})

	t.Run("whitespace token rejected", func(t *testing.T) {
		t.Parallel()

		manager, err := auth.NewStaticTokenManager(" \t ")
		require.Error(t, err)
		assert.Nil(t, manager)

		apiErr := &skylift.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, skylift.ErrorCodeInvalidToken, apiErr.Code)
	})
}
