package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/skylift-io/skylift-go/internal/http"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// testFloatingIP returns a populated floating IP for stub responses.
func testFloatingIP(id int64, name string) skylift.FloatingIP {
	return skylift.FloatingIP{
		ID:           id,
		Name:         name,
		IP:           "192.0.2.10",
		Type:         skylift.FloatingIPTypeIPv4,
		HomeLocation: testLocation(),
	}
}

func TestFloatingIPsClient_List(t *testing.T) {
	client := NewFloatingIPsClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/floating_ips", request.URL.Path)
		assert.Equal(t, "env=prod", request.URL.Query().Get("label_selector"))

		writeJSON(writer, http.StatusOK, map[string]interface{}{
			"floating_ips": []skylift.FloatingIP{testFloatingIP(23, "ingress-ip")},
			"meta":         testMeta(1),
		})
	})))

	list, err := client.List(context.Background(), &skylift.FloatingIPListParams{LabelSelector: "env=prod"})
	require.NoError(t, err)
	require.Len(t, list.FloatingIPs, 1)
	assert.Equal(t, "192.0.2.10", list.FloatingIPs[0].IP)
}

func TestFloatingIPsClient_Get(t *testing.T) {
	client := NewFloatingIPsClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/floating_ips/23", request.URL.Path)

		writeJSON(writer, http.StatusOK, floatingIPResponse{FloatingIP: testFloatingIP(23, "ingress-ip")})
	})))

	floatingIP, err := client.Get(context.Background(), 23)
	require.NoError(t, err)
	assert.Equal(t, skylift.FloatingIPTypeIPv4, floatingIP.Type)
	assert.Equal(t, "osl1", floatingIP.HomeLocation.Name)
}

func TestFloatingIPsClient_Create(t *testing.T) {
	t.Run("in home location", func(t *testing.T) {
		client := NewFloatingIPsClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/floating_ips", request.URL.Path)
			assert.Equal(t, "POST", request.Method)

			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "ipv4", body["type"])
			assert.Equal(t, "osl1", body["home_location"])
			assert.NotContains(t, body, "server")

			writeJSON(writer, http.StatusCreated, map[string]interface{}{
				"floating_ip": testFloatingIP(23, "ingress-ip"),
			})
		})))

		result, err := client.Create(context.Background(), &skylift.FloatingIPCreateRequest{
			Type:         skylift.FloatingIPTypeIPv4,
			HomeLocation: "osl1",
			Name:         stringPtr("ingress-ip"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(23), result.FloatingIP.ID)
		assert.Nil(t, result.Action, "unassigned IPs are created synchronously")
	})

	t.Run("assigned to server", func(t *testing.T) {
		client := NewFloatingIPsClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, float64(42), body["server"])
			assert.NotContains(t, body, "home_location")

			writeJSON(writer, http.StatusCreated, map[string]interface{}{
				"floating_ip": testFloatingIP(23, "ingress-ip"),
				"action":      testAction(10, "assign_floating_ip"),
			})
		})))

		result, err := client.Create(context.Background(), &skylift.FloatingIPCreateRequest{
			Type:   skylift.FloatingIPTypeIPv4,
			Server: 42,
		})
		require.NoError(t, err)
		require.NotNil(t, result.Action)
	})

	t.Run("unknown address family", func(t *testing.T) {
		httpClient, hits := newCountingServer(t)

		_, err := NewFloatingIPsClient(httpClient).Create(context.Background(), &skylift.FloatingIPCreateRequest{
			Type:         "ipv5",
			HomeLocation: "osl1",
		})

		apiErr := requireRejectedBeforeSend(t, err, hits)
		require.True(t, apiErr.HasFieldErrors())
		assert.Equal(t, "type", apiErr.Details.Fields[0].Name)
		assert.Equal(t, []string{"must be one of: ipv4, ipv6"}, apiErr.Details.Fields[0].Messages)
	})

	t.Run("home location conflicts with server", func(t *testing.T) {
		httpClient, hits := newCountingServer(t)

		_, err := NewFloatingIPsClient(httpClient).Create(context.Background(), &skylift.FloatingIPCreateRequest{
			Type:         skylift.FloatingIPTypeIPv4,
			HomeLocation: "osl1",
			Server:       42,
		})

		apiErr := requireRejectedBeforeSend(t, err, hits)
		require.True(t, apiErr.HasFieldErrors())
		assert.Equal(t, "home_location", apiErr.Details.Fields[0].Name)
	})
}

func TestFloatingIPsClient_Update(t *testing.T) {
	client := NewFloatingIPsClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/floating_ips/23", request.URL.Path)
		assert.Equal(t, "PUT", request.Method)

		writeJSON(writer, http.StatusOK, floatingIPResponse{FloatingIP: testFloatingIP(23, "egress-ip")})
	})))

	floatingIP, err := client.Update(context.Background(), 23, &skylift.FloatingIPUpdateRequest{
		Name: stringPtr("egress-ip"),
	})
	require.NoError(t, err)
	assert.Equal(t, "egress-ip", floatingIP.Name)
}

func TestFloatingIPsClient_Delete(t *testing.T) {
	client := NewFloatingIPsClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/floating_ips/23", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)
		writer.WriteHeader(http.StatusNoContent)
	})))

	require.NoError(t, client.Delete(context.Background(), 23))
}

func TestFloatingIPsClient_Assign(t *testing.T) {
	t.Run("to server", func(t *testing.T) {
		client := NewFloatingIPsClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/floating_ips/23/actions/assign", request.URL.Path)

			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, map[string]interface{}{"server": float64(42)}, body)

			writeJSON(writer, http.StatusCreated, actionResponse{Action: testAction(10, "assign_floating_ip")})
		})))

		action, err := client.Assign(context.Background(), 23, &skylift.FloatingIPAssignRequest{Server: 42})
		require.NoError(t, err)
		assert.Equal(t, "assign_floating_ip", action.Command)
	})

	t.Run("missing server", func(t *testing.T) {
		httpClient, hits := newCountingServer(t)

		_, err := NewFloatingIPsClient(httpClient).Assign(context.Background(), 23, &skylift.FloatingIPAssignRequest{})

		apiErr := requireRejectedBeforeSend(t, err, hits)
		require.True(t, apiErr.HasFieldErrors())
		assert.Equal(t, "server", apiErr.Details.Fields[0].Name)
	})
}

func TestFloatingIPsClient_Unassign(t *testing.T) {
	runActionTest(t, "/floating_ips/23/actions/unassign", "unassign_floating_ip", func(httpClient *internalhttp.Client) (*skylift.Action, error) {
		return NewFloatingIPsClient(httpClient).Unassign(context.Background(), 23)
	})
}

func TestFloatingIPsClient_ChangeDNSPtr(t *testing.T) {
	client := NewFloatingIPsClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/floating_ips/23/actions/change_dns_ptr", request.URL.Path)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "192.0.2.10", body["ip"])
		assert.Equal(t, "mail.example.com", body["dns_ptr"])

		writeJSON(writer, http.StatusCreated, actionResponse{Action: testAction(10, "change_dns_ptr")})
	})))

	_, err := client.ChangeDNSPtr(context.Background(), 23, &skylift.ChangeDNSPtrRequest{
		IP:     "192.0.2.10",
		DNSPtr: stringPtr("mail.example.com"),
	})
	require.NoError(t, err)
}

func TestFloatingIPsClient_ChangeProtection(t *testing.T) {
	client := NewFloatingIPsClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/floating_ips/23/actions/change_protection", request.URL.Path)

		writeJSON(writer, http.StatusCreated, actionResponse{Action: testAction(10, "change_protection")})
	})))

	_, err := client.ChangeProtection(context.Background(), 23, &skylift.ChangeProtectionRequest{
		Delete: boolPtr(true),
	})
	require.NoError(t, err)
}
