package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylift-io/skylift-go/pkg/skylift"
)

const testPublicKey = "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIKq root@build"

func testSSHKey(id int64, name string) skylift.SSHKey {
	return skylift.SSHKey{
		ID:          id,
		Name:        name,
		Fingerprint: "b7:2f:30:a0:2f:6c:58:6c:21:04:58:61:ba:06:3b:2f",
		PublicKey:   testPublicKey,
	}
}

func TestSSHKeysClient_List(t *testing.T) {
	client := NewSSHKeysClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/ssh_keys", request.URL.Path)
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, []string{"b7:2f:30:a0:2f:6c:58:6c:21:04:58:61:ba:06:3b:2f"}, request.URL.Query()["fingerprint"])

		writeJSON(writer, http.StatusOK, map[string]interface{}{
			"ssh_keys": []skylift.SSHKey{testSSHKey(14, "deploy")},
			"meta":     testMeta(1),
		})
	})))

	list, err := client.List(context.Background(), &skylift.SSHKeyListParams{
		Fingerprint: "b7:2f:30:a0:2f:6c:58:6c:21:04:58:61:ba:06:3b:2f",
	})
	require.NoError(t, err)
	require.Len(t, list.SSHKeys, 1)
	assert.Equal(t, "deploy", list.SSHKeys[0].Name)
}

func TestSSHKeysClient_Get(t *testing.T) {
	client := NewSSHKeysClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/ssh_keys/14", request.URL.Path)

		writeJSON(writer, http.StatusOK, sshKeyResponse{SSHKey: testSSHKey(14, "deploy")})
	})))

	key, err := client.Get(context.Background(), 14)
	require.NoError(t, err)
	assert.Equal(t, int64(14), key.ID)
	assert.Equal(t, testPublicKey, key.PublicKey)
}

func TestSSHKeysClient_Create(t *testing.T) {
	client := NewSSHKeysClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/ssh_keys", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "deploy", body["name"])
		assert.Equal(t, testPublicKey, body["public_key"])

		writeJSON(writer, http.StatusCreated, sshKeyResponse{SSHKey: testSSHKey(14, "deploy")})
	})))

	key, err := client.Create(context.Background(), &skylift.SSHKeyCreateRequest{
		Name:      "deploy",
		PublicKey: testPublicKey,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(14), key.ID)
}

func TestSSHKeysClient_Create_MissingPublicKey(t *testing.T) {
	httpClient, hits := newCountingServer(t)

	_, err := NewSSHKeysClient(httpClient).Create(context.Background(), &skylift.SSHKeyCreateRequest{Name: "deploy"})

	apiErr := requireRejectedBeforeSend(t, err, hits)
	require.True(t, apiErr.HasFieldErrors())
	assert.Equal(t, "public_key", apiErr.Details.Fields[0].Name)
	assert.Equal(t, []string{"is required"}, apiErr.Details.Fields[0].Messages)
}

func TestSSHKeysClient_Update(t *testing.T) {
	client := NewSSHKeysClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/ssh_keys/14", request.URL.Path)
		assert.Equal(t, "PUT", request.Method)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "deploy-old", body["name"])

		writeJSON(writer, http.StatusOK, sshKeyResponse{SSHKey: testSSHKey(14, "deploy-old")})
	})))

	key, err := client.Update(context.Background(), 14, &skylift.SSHKeyUpdateRequest{Name: stringPtr("deploy-old")})
	require.NoError(t, err)
	assert.Equal(t, "deploy-old", key.Name)
}

func TestSSHKeysClient_Delete(t *testing.T) {
	client := NewSSHKeysClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/ssh_keys/14", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)
		writer.WriteHeader(http.StatusNoContent)
	})))

	require.NoError(t, client.Delete(context.Background(), 14))
}
