package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/skylift-io/skylift-go/internal/http"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// newTestHTTPClient builds an unauthenticated HTTP client against the stub
// handler.
func newTestHTTPClient(t *testing.T, handler http.Handler) *internalhttp.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return internalhttp.NewClient(server.URL, nil)
}

// newCountingServer returns a client whose server counts requests and always
// fails, for asserting that invalid requests never reach the network.
func newCountingServer(t *testing.T) (*internalhttp.Client, *atomic.Int64) {
	t.Helper()

	var hits atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		writer.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	return internalhttp.NewClient(server.URL, nil), &hits
}

// writeJSON encodes payload to the response writer with the given status.
func writeJSON(writer http.ResponseWriter, status int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(payload)
}

// testMeta returns the pagination block list responses carry.
func testMeta(total int) skylift.Meta {
	return skylift.Meta{
		Pagination: &skylift.Pagination{
			Page:         1,
			PerPage:      25,
			LastPage:     1,
			TotalEntries: total,
		},
	}
}

// testAction returns a finished action for stub responses.
func testAction(id int64, command string) skylift.Action {
	return skylift.Action{
		ID:       id,
		Command:  command,
		Status:   skylift.ActionStatusSuccess,
		Progress: 100,
		Started:  time.Now().Add(-time.Minute),
	}
}

// testLocation returns a populated location for stub responses. Responses
// are re-validated after decoding, so nested blocks have to be complete.
func testLocation() skylift.Location {
	return skylift.Location{
		ID:          1,
		Name:        "osl1",
		Description: "Oslo 1",
		Country:     "NO",
		City:        "Oslo",
		NetworkZone: "eu-north",
	}
}

// runActionTest stubs one body-less action endpoint and asserts the decoded
// action round-trips.
func runActionTest(t *testing.T, expectedPath string, command string, call func(*internalhttp.Client) (*skylift.Action, error)) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, expectedPath, request.URL.Path)
		assert.Equal(t, "POST", request.Method)
		writeJSON(writer, http.StatusCreated, actionResponse{Action: testAction(4711, command)})
	}))
	t.Cleanup(server.Close)

	action, err := call(internalhttp.NewClient(server.URL, nil))
	require.NoError(t, err)
	require.NotNil(t, action)
	assert.Equal(t, int64(4711), action.ID)
	assert.Equal(t, command, action.Command)
	assert.Equal(t, skylift.ActionStatusSuccess, action.Status)
}

// requireRejectedBeforeSend asserts that err is a validation error raised
// before any request went out.
func requireRejectedBeforeSend(t *testing.T, err error, hits *atomic.Int64) *skylift.APIError {
	t.Helper()

	var apiErr *skylift.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, skylift.ErrorCodeValidation, apiErr.Code)
	assert.Equal(t, 0, apiErr.HTTPStatus)
	assert.Equal(t, int64(0), hits.Load())

	return apiErr
}

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func boolPtr(b bool) *bool {
	return &b
}
