package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/skylift-io/skylift-go/internal/http"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// testServer returns a populated server for stub responses.
func testServer(id int64, name string) skylift.Server {
	return skylift.Server{
		ID:     id,
		Name:   name,
		Status: skylift.ServerStatusRunning,
		ServerType: skylift.ServerType{
			ID:     3,
			Name:   "sl-2c-4g",
			Cores:  2,
			Memory: 4,
			Disk:   40,
		},
		Datacenter: skylift.Datacenter{
			ID:       2,
			Name:     "osl1-dc3",
			Location: testLocation(),
		},
	}
}

func TestServersClient_List(t *testing.T) {
	client := NewServersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/servers", request.URL.Path)
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "web", request.URL.Query().Get("name"))
		assert.Equal(t, "env=prod", request.URL.Query().Get("label_selector"))
		assert.Equal(t, []string{"running", "off"}, request.URL.Query()["status"])
		assert.Equal(t, []string{"name:asc"}, request.URL.Query()["sort"])
		assert.Equal(t, "3", request.URL.Query().Get("page"))
		assert.Equal(t, "50", request.URL.Query().Get("per_page"))

		writeJSON(writer, http.StatusOK, map[string]interface{}{
			"servers": []skylift.Server{testServer(1, "web-1"), testServer(2, "web-2")},
			"meta":    testMeta(2),
		})
	})))

	list, err := client.List(context.Background(), &skylift.ServerListParams{
		ListParams:    skylift.ListParams{Page: 3, PerPage: 50},
		Name:          "web",
		LabelSelector: "env=prod",
		Status:        []skylift.ServerStatus{skylift.ServerStatusRunning, skylift.ServerStatusOff},
		Sort:          []string{"name:asc"},
	})
	require.NoError(t, err)
	require.Len(t, list.Servers, 2)
	assert.Equal(t, "web-1", list.Servers[0].Name)
	assert.Equal(t, "web-2", list.Servers[1].Name)
}

func TestServersClient_List_NilParams(t *testing.T) {
	client := NewServersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Empty(t, request.URL.RawQuery)

		writeJSON(writer, http.StatusOK, map[string]interface{}{
			"servers": []skylift.Server{},
			"meta":    testMeta(0),
		})
	})))

	list, err := client.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, list.Servers)
}

func TestServersClient_Get(t *testing.T) {
	client := NewServersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/servers/42", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		writeJSON(writer, http.StatusOK, serverResponse{Server: testServer(42, "web-1")})
	})))

	server, err := client.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), server.ID)
	assert.Equal(t, "web-1", server.Name)
	assert.Equal(t, "sl-2c-4g", server.ServerType.Name)
}

func TestServersClient_Get_IncompleteResponse(t *testing.T) {
	client := NewServersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writeJSON(writer, http.StatusOK, serverResponse{Server: testServer(42, "")})
	})))

	_, err := client.Get(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, skylift.IsValidationError(err))
	assert.Contains(t, err.Error(), "parsing server response")

	var apiErr *skylift.APIError

	require.ErrorAs(t, err, &apiErr)
	require.True(t, apiErr.HasFieldErrors())
	assert.Equal(t, "server.name", apiErr.Details.Fields[0].Name)
	assert.Equal(t, []string{"is required"}, apiErr.Details.Fields[0].Messages)
}

func TestServersClient_Create(t *testing.T) {
	client := NewServersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/servers", request.URL.Path)
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "web-1", body["name"])
		assert.Equal(t, "sl-2c-4g", body["server_type"])
		assert.Equal(t, "ubuntu-24.04", body["image"])
		assert.Equal(t, "osl1", body["location"])
		assert.NotContains(t, body, "datacenter")
		assert.NotContains(t, body, "start_after_create")

		writeJSON(writer, http.StatusCreated, map[string]interface{}{
			"server":        testServer(42, "web-1"),
			"action":        testAction(10, "create_server"),
			"next_actions":  []skylift.Action{testAction(11, "start_server")},
			"root_password": "zFh3swqu7driv",
		})
	})))

	result, err := client.Create(context.Background(), &skylift.ServerCreateRequest{
		Name:       "web-1",
		ServerType: "sl-2c-4g",
		Image:      "ubuntu-24.04",
		Location:   "osl1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.Server.ID)
	assert.Equal(t, int64(10), result.Action.ID)
	require.Len(t, result.NextActions, 1)
	assert.Equal(t, "start_server", result.NextActions[0].Command)
	require.NotNil(t, result.RootPassword)
	assert.Equal(t, "zFh3swqu7driv", *result.RootPassword)
}

func TestServersClient_Create_InvalidRequest(t *testing.T) {
	t.Run("missing image", func(t *testing.T) {
		httpClient, hits := newCountingServer(t)

		_, err := NewServersClient(httpClient).Create(context.Background(), &skylift.ServerCreateRequest{
			Name:       "web-1",
			ServerType: "sl-2c-4g",
		})

		apiErr := requireRejectedBeforeSend(t, err, hits)
		require.True(t, apiErr.HasFieldErrors())
		assert.Equal(t, "image", apiErr.Details.Fields[0].Name)
	})

	t.Run("location conflicts with datacenter", func(t *testing.T) {
		httpClient, hits := newCountingServer(t)

		_, err := NewServersClient(httpClient).Create(context.Background(), &skylift.ServerCreateRequest{
			Name:       "web-1",
			ServerType: "sl-2c-4g",
			Image:      "ubuntu-24.04",
			Location:   "osl1",
			Datacenter: "osl1-dc3",
		})

		apiErr := requireRejectedBeforeSend(t, err, hits)
		require.True(t, apiErr.HasFieldErrors())
		assert.Equal(t, "location", apiErr.Details.Fields[0].Name)
		assert.Equal(t, []string{"conflicts with another provided field"}, apiErr.Details.Fields[0].Messages)
	})

	t.Run("invalid hostname", func(t *testing.T) {
		httpClient, hits := newCountingServer(t)

		_, err := NewServersClient(httpClient).Create(context.Background(), &skylift.ServerCreateRequest{
			Name:       "not a hostname!",
			ServerType: "sl-2c-4g",
			Image:      "ubuntu-24.04",
		})

		apiErr := requireRejectedBeforeSend(t, err, hits)
		require.True(t, apiErr.HasFieldErrors())
		assert.Equal(t, "name", apiErr.Details.Fields[0].Name)
		assert.Equal(t, []string{"must be a valid hostname"}, apiErr.Details.Fields[0].Messages)
	})
}

func TestServersClient_Update(t *testing.T) {
	client := NewServersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/servers/42", request.URL.Path)
		assert.Equal(t, "PUT", request.Method)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "web-renamed", body["name"])

		writeJSON(writer, http.StatusOK, serverResponse{Server: testServer(42, "web-renamed")})
	})))

	server, err := client.Update(context.Background(), 42, &skylift.ServerUpdateRequest{
		Name: stringPtr("web-renamed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "web-renamed", server.Name)
}

func TestServersClient_Delete(t *testing.T) {
	client := NewServersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/servers/42", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)

		writeJSON(writer, http.StatusOK, actionResponse{Action: testAction(10, "delete_server")})
	})))

	action, err := client.Delete(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "delete_server", action.Command)
}

func TestServersClient_Actions(t *testing.T) {
	cases := []struct {
		command string
		call    func(context.Context, *ServersClient) (*skylift.Action, error)
	}{
		{"poweron", func(ctx context.Context, c *ServersClient) (*skylift.Action, error) { return c.Poweron(ctx, 42) }},
		{"poweroff", func(ctx context.Context, c *ServersClient) (*skylift.Action, error) { return c.Poweroff(ctx, 42) }},
		{"reboot", func(ctx context.Context, c *ServersClient) (*skylift.Action, error) { return c.Reboot(ctx, 42) }},
		{"shutdown", func(ctx context.Context, c *ServersClient) (*skylift.Action, error) { return c.Shutdown(ctx, 42) }},
		{"reset", func(ctx context.Context, c *ServersClient) (*skylift.Action, error) { return c.Reset(ctx, 42) }},
		{"disable_rescue", func(ctx context.Context, c *ServersClient) (*skylift.Action, error) { return c.DisableRescue(ctx, 42) }},
		{"enable_backup", func(ctx context.Context, c *ServersClient) (*skylift.Action, error) { return c.EnableBackup(ctx, 42) }},
		{"disable_backup", func(ctx context.Context, c *ServersClient) (*skylift.Action, error) { return c.DisableBackup(ctx, 42) }},
		{"detach_iso", func(ctx context.Context, c *ServersClient) (*skylift.Action, error) { return c.DetachISO(ctx, 42) }},
	}

	for _, tc := range cases {
		t.Run(tc.command, func(t *testing.T) {
			runActionTest(t, "/servers/42/actions/"+tc.command, tc.command, func(httpClient *internalhttp.Client) (*skylift.Action, error) {
				return tc.call(context.Background(), NewServersClient(httpClient))
			})
		})
	}
}

func TestServersClient_ResetPassword(t *testing.T) {
	client := NewServersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/servers/42/actions/reset_password", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		writeJSON(writer, http.StatusCreated, map[string]interface{}{
			"action":        testAction(10, "reset_password"),
			"root_password": "zFh3swqu7driv",
		})
	})))

	result, err := client.ResetPassword(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "zFh3swqu7driv", result.RootPassword)
}

func TestServersClient_ResetPassword_MissingPassword(t *testing.T) {
	client := NewServersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writeJSON(writer, http.StatusCreated, map[string]interface{}{
			"action": testAction(10, "reset_password"),
		})
	})))

	_, err := client.ResetPassword(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, skylift.IsValidationError(err))

	var apiErr *skylift.APIError

	require.ErrorAs(t, err, &apiErr)
	require.True(t, apiErr.HasFieldErrors())
	assert.Equal(t, "root_password", apiErr.Details.Fields[0].Name)
}

func TestServersClient_EnableRescue(t *testing.T) {
	t.Run("nil request sends no body", func(t *testing.T) {
		client := NewServersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/servers/42/actions/enable_rescue", request.URL.Path)

			body, err := io.ReadAll(request.Body)
			assert.NoError(t, err)
			assert.Empty(t, body)

			writeJSON(writer, http.StatusCreated, map[string]interface{}{
				"action":        testAction(10, "enable_rescue"),
				"root_password": "rescue-pw",
			})
		})))

		result, err := client.EnableRescue(context.Background(), 42, nil)
		require.NoError(t, err)
		assert.Equal(t, "rescue-pw", result.RootPassword)
	})

	t.Run("with ssh keys", func(t *testing.T) {
		client := NewServersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "linux64", body["type"])
			assert.Equal(t, []interface{}{float64(7)}, body["ssh_keys"])

			writeJSON(writer, http.StatusCreated, map[string]interface{}{
				"action":        testAction(10, "enable_rescue"),
				"root_password": "rescue-pw",
			})
		})))

		_, err := client.EnableRescue(context.Background(), 42, &skylift.ServerEnableRescueRequest{
			Type:    "linux64",
			SSHKeys: []int64{7},
		})
		require.NoError(t, err)
	})

	t.Run("unsupported rescue type", func(t *testing.T) {
		httpClient, hits := newCountingServer(t)

		_, err := NewServersClient(httpClient).EnableRescue(context.Background(), 42, &skylift.ServerEnableRescueRequest{
			Type: "windows",
		})

		apiErr := requireRejectedBeforeSend(t, err, hits)
		require.True(t, apiErr.HasFieldErrors())
		assert.Equal(t, "type", apiErr.Details.Fields[0].Name)
		assert.Equal(t, []string{"must be one of: linux64"}, apiErr.Details.Fields[0].Messages)
	})
}

func TestServersClient_CreateImage(t *testing.T) {
	image := skylift.Image{
		ID:     77,
		Type:   skylift.ImageTypeSnapshot,
		Status: skylift.ImageStatusCreating,
	}

	t.Run("nil request sends no body", func(t *testing.T) {
		client := NewServersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/servers/42/actions/create_image", request.URL.Path)

			body, err := io.ReadAll(request.Body)
			assert.NoError(t, err)
			assert.Empty(t, body)

			writeJSON(writer, http.StatusCreated, map[string]interface{}{
				"action": testAction(10, "create_image"),
				"image":  image,
			})
		})))

		result, err := client.CreateImage(context.Background(), 42, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(77), result.Image.ID)
	})

	t.Run("with description", func(t *testing.T) {
		client := NewServersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "nightly", body["description"])
			assert.Equal(t, "backup", body["type"])

			writeJSON(writer, http.StatusCreated, map[string]interface{}{
				"action": testAction(10, "create_image"),
				"image":  image,
			})
		})))

		imageType := skylift.ImageTypeBackup

		_, err := client.CreateImage(context.Background(), 42, &skylift.ServerCreateImageRequest{
			Description: stringPtr("nightly"),
			Type:        &imageType,
		})
		require.NoError(t, err)
	})
}

func TestServersClient_Rebuild(t *testing.T) {
	client := NewServersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/servers/42/actions/rebuild", request.URL.Path)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "ubuntu-24.04", body["image"])

		writeJSON(writer, http.StatusCreated, map[string]interface{}{
			"action":        testAction(10, "rebuild_server"),
			"root_password": nil,
		})
	})))

	result, err := client.Rebuild(context.Background(), 42, &skylift.ServerRebuildRequest{Image: "ubuntu-24.04"})
	require.NoError(t, err)
	assert.Equal(t, "rebuild_server", result.Action.Command)
	assert.Nil(t, result.RootPassword)
}

func TestServersClient_ChangeType(t *testing.T) {
	client := NewServersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/servers/42/actions/change_type", request.URL.Path)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "sl-4c-8g", body["server_type"])
		assert.Equal(t, true, body["upgrade_disk"])

		writeJSON(writer, http.StatusCreated, actionResponse{Action: testAction(10, "change_server_type")})
	})))

	action, err := client.ChangeType(context.Background(), 42, &skylift.ServerChangeTypeRequest{
		ServerType:  "sl-4c-8g",
		UpgradeDisk: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "change_server_type", action.Command)
}

func TestServersClient_AttachISO(t *testing.T) {
	client := NewServersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/servers/42/actions/attach_iso", request.URL.Path)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "rescue-live", body["iso"])

		writeJSON(writer, http.StatusCreated, actionResponse{Action: testAction(10, "attach_iso")})
	})))

	_, err := client.AttachISO(context.Background(), 42, &skylift.ServerAttachISORequest{ISO: "rescue-live"})
	require.NoError(t, err)
}

func TestServersClient_AttachToNetwork(t *testing.T) {
	t.Run("with fixed ip", func(t *testing.T) {
		client := NewServersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/servers/42/actions/attach_to_network", request.URL.Path)

			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, float64(15), body["network"])
			assert.Equal(t, "10.0.1.5", body["ip"])

			writeJSON(writer, http.StatusCreated, actionResponse{Action: testAction(10, "attach_to_network")})
		})))

		_, err := client.AttachToNetwork(context.Background(), 42, &skylift.ServerAttachToNetworkRequest{
			Network: 15,
			IP:      stringPtr("10.0.1.5"),
		})
		require.NoError(t, err)
	})

	t.Run("rejects malformed ip", func(t *testing.T) {
		httpClient, hits := newCountingServer(t)

		_, err := NewServersClient(httpClient).AttachToNetwork(context.Background(), 42, &skylift.ServerAttachToNetworkRequest{
			Network: 15,
			IP:      stringPtr("not-an-ip"),
		})

		apiErr := requireRejectedBeforeSend(t, err, hits)
		require.True(t, apiErr.HasFieldErrors())
		assert.Equal(t, "ip", apiErr.Details.Fields[0].Name)
		assert.Equal(t, []string{"must be a valid IP address"}, apiErr.Details.Fields[0].Messages)
	})
}

func TestServersClient_DetachFromNetwork(t *testing.T) {
	client := NewServersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/servers/42/actions/detach_from_network", request.URL.Path)

		writeJSON(writer, http.StatusCreated, actionResponse{Action: testAction(10, "detach_from_network")})
	})))

	_, err := client.DetachFromNetwork(context.Background(), 42, &skylift.ServerDetachFromNetworkRequest{Network: 15})
	require.NoError(t, err)
}

func TestServersClient_ChangeProtection(t *testing.T) {
	client := NewServersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/servers/42/actions/change_protection", request.URL.Path)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, true, body["delete"])
		assert.Equal(t, true, body["rebuild"])

		writeJSON(writer, http.StatusCreated, actionResponse{Action: testAction(10, "change_protection")})
	})))

	_, err := client.ChangeProtection(context.Background(), 42, &skylift.ServerChangeProtectionRequest{
		Delete:  boolPtr(true),
		Rebuild: boolPtr(true),
	})
	require.NoError(t, err)
}

func TestServersClient_ChangeDNSPtr(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		client := NewServersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/servers/42/actions/change_dns_ptr", request.URL.Path)

			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "192.0.2.10", body["ip"])
			assert.Equal(t, "web.example.com", body["dns_ptr"])

			writeJSON(writer, http.StatusCreated, actionResponse{Action: testAction(10, "change_dns_ptr")})
		})))

		_, err := client.ChangeDNSPtr(context.Background(), 42, &skylift.ChangeDNSPtrRequest{
			IP:     "192.0.2.10",
			DNSPtr: stringPtr("web.example.com"),
		})
		require.NoError(t, err)
	})

	t.Run("reset to default", func(t *testing.T) {
		client := NewServersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Contains(t, body, "dns_ptr")
			assert.Nil(t, body["dns_ptr"])

			writeJSON(writer, http.StatusCreated, actionResponse{Action: testAction(10, "change_dns_ptr")})
		})))

		_, err := client.ChangeDNSPtr(context.Background(), 42, &skylift.ChangeDNSPtrRequest{IP: "192.0.2.10"})
		require.NoError(t, err)
	})
}
