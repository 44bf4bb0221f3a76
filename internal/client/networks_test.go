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

// testNetwork returns a populated network for stub responses.
func testNetwork(id int64, name string) skylift.Network {
	return skylift.Network{
		ID:      id,
		Name:    name,
		IPRange: "10.0.0.0/16",
		Subnets: []skylift.NetworkSubnet{
			{
				Type:        "cloud",
				IPRange:     "10.0.1.0/24",
				NetworkZone: "eu-north",
				Gateway:     "10.0.0.1",
			},
		},
	}
}

func TestNetworksClient_List(t *testing.T) {
	client := NewNetworksClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/networks", request.URL.Path)
		assert.Equal(t, "backend", request.URL.Query().Get("name"))

		writeJSON(writer, http.StatusOK, map[string]interface{}{
			"networks": []skylift.Network{testNetwork(15, "backend")},
			"meta":     testMeta(1),
		})
	})))

	list, err := client.List(context.Background(), &skylift.NetworkListParams{Name: "backend"})
	require.NoError(t, err)
	require.Len(t, list.Networks, 1)
	assert.Equal(t, "10.0.0.0/16", list.Networks[0].IPRange)
}

func TestNetworksClient_Get(t *testing.T) {
	client := NewNetworksClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/networks/15", request.URL.Path)

		writeJSON(writer, http.StatusOK, networkResponse{Network: testNetwork(15, "backend")})
	})))

	network, err := client.Get(context.Background(), 15)
	require.NoError(t, err)
	assert.Equal(t, "backend", network.Name)
	require.Len(t, network.Subnets, 1)
	assert.Equal(t, "10.0.1.0/24", network.Subnets[0].IPRange)
}

func TestNetworksClient_Create(t *testing.T) {
	client := NewNetworksClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/networks", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "backend", body["name"])
		assert.Equal(t, "10.0.0.0/16", body["ip_range"])

		writeJSON(writer, http.StatusCreated, networkResponse{Network: testNetwork(15, "backend")})
	})))

	network, err := client.Create(context.Background(), &skylift.NetworkCreateRequest{
		Name:    "backend",
		IPRange: "10.0.0.0/16",
		Subnets: []skylift.NetworkSubnet{
			{Type: "cloud", IPRange: "10.0.1.0/24", NetworkZone: "eu-north"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15), network.ID)
}

func TestNetworksClient_Create_InvalidIPRange(t *testing.T) {
	httpClient, hits := newCountingServer(t)

	_, err := NewNetworksClient(httpClient).Create(context.Background(), &skylift.NetworkCreateRequest{
		Name:    "backend",
		IPRange: "10.0.0.0",
	})

	apiErr := requireRejectedBeforeSend(t, err, hits)
	require.True(t, apiErr.HasFieldErrors())
	assert.Equal(t, "ip_range", apiErr.Details.Fields[0].Name)
	assert.Equal(t, []string{"must be a valid CIDR block"}, apiErr.Details.Fields[0].Messages)
}

func TestNetworksClient_Update(t *testing.T) {
	client := NewNetworksClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/networks/15", request.URL.Path)
		assert.Equal(t, "PUT", request.Method)

		writeJSON(writer, http.StatusOK, networkResponse{Network: testNetwork(15, "backend-2")})
	})))

	network, err := client.Update(context.Background(), 15, &skylift.NetworkUpdateRequest{
		Name: stringPtr("backend-2"),
	})
	require.NoError(t, err)
	assert.Equal(t, "backend-2", network.Name)
}

func TestNetworksClient_Delete(t *testing.T) {
	client := NewNetworksClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/networks/15", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)
		writer.WriteHeader(http.StatusNoContent)
	})))

	require.NoError(t, client.Delete(context.Background(), 15))
}

func TestNetworksClient_AddSubnet(t *testing.T) {
	t.Run("cloud subnet", func(t *testing.T) {
		client := NewNetworksClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/networks/15/actions/add_subnet", request.URL.Path)

			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "cloud", body["type"])
			assert.Equal(t, "10.0.2.0/24", body["ip_range"])
			assert.Equal(t, "eu-north", body["network_zone"])

			writeJSON(writer, http.StatusCreated, actionResponse{Action: testAction(10, "add_subnet")})
		})))

		_, err := client.AddSubnet(context.Background(), 15, skylift.NetworkSubnet{
			Type:        "cloud",
			IPRange:     "10.0.2.0/24",
			NetworkZone: "eu-north",
		})
		require.NoError(t, err)
	})

	t.Run("missing network zone", func(t *testing.T) {
		httpClient, hits := newCountingServer(t)

		_, err := NewNetworksClient(httpClient).AddSubnet(context.Background(), 15, skylift.NetworkSubnet{
			Type:    "cloud",
			IPRange: "10.0.2.0/24",
		})

		apiErr := requireRejectedBeforeSend(t, err, hits)
		require.True(t, apiErr.HasFieldErrors())
		assert.Equal(t, "network_zone", apiErr.Details.Fields[0].Name)
	})
}

func TestNetworksClient_DeleteSubnet(t *testing.T) {
	t.Run("by ip range", func(t *testing.T) {
		client := NewNetworksClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/networks/15/actions/delete_subnet", request.URL.Path)

			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, map[string]interface{}{"ip_range": "10.0.2.0/24"}, body)

			writeJSON(writer, http.StatusCreated, actionResponse{Action: testAction(10, "delete_subnet")})
		})))

		_, err := client.DeleteSubnet(context.Background(), 15, "10.0.2.0/24")
		require.NoError(t, err)
	})

	t.Run("malformed ip range", func(t *testing.T) {
		httpClient, hits := newCountingServer(t)

		_, err := NewNetworksClient(httpClient).DeleteSubnet(context.Background(), 15, "not-a-cidr")

		apiErr := requireRejectedBeforeSend(t, err, hits)
		require.True(t, apiErr.HasFieldErrors())
		assert.Equal(t, "ip_range", apiErr.Details.Fields[0].Name)
	})
}

func TestNetworksClient_AddRoute(t *testing.T) {
	client := NewNetworksClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/networks/15/actions/add_route", request.URL.Path)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "10.100.1.0/24", body["destination"])
		assert.Equal(t, "10.0.1.1", body["gateway"])

		writeJSON(writer, http.StatusCreated, actionResponse{Action: testAction(10, "add_route")})
	})))

	_, err := client.AddRoute(context.Background(), 15, skylift.NetworkRoute{
		Destination: "10.100.1.0/24",
		Gateway:     "10.0.1.1",
	})
	require.NoError(t, err)
}

func TestNetworksClient_DeleteRoute(t *testing.T) {
	client := NewNetworksClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/networks/15/actions/delete_route", request.URL.Path)

		writeJSON(writer, http.StatusCreated, actionResponse{Action: testAction(10, "delete_route")})
	})))

	_, err := client.DeleteRoute(context.Background(), 15, skylift.NetworkRoute{
		Destination: "10.100.1.0/24",
		Gateway:     "10.0.1.1",
	})
	require.NoError(t, err)
}

func TestNetworksClient_ChangeIPRange(t *testing.T) {
	client := NewNetworksClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/networks/15/actions/change_ip_range", request.URL.Path)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "10.0.0.0/12", body["ip_range"])

		writeJSON(writer, http.StatusCreated, actionResponse{Action: testAction(10, "change_ip_range")})
	})))

	_, err := client.ChangeIPRange(context.Background(), 15, &skylift.NetworkChangeIPRangeRequest{
		IPRange: "10.0.0.0/12",
	})
	require.NoError(t, err)
}

func TestNetworksClient_ChangeProtection(t *testing.T) {
	client := NewNetworksClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/networks/15/actions/change_protection", request.URL.Path)

		writeJSON(writer, http.StatusCreated, actionResponse{Action: testAction(10, "change_protection")})
	})))

	_, err := client.ChangeProtection(context.Background(), 15, &skylift.ChangeProtectionRequest{
		Delete: boolPtr(true),
	})
	require.NoError(t, err)
}
