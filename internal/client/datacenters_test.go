package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylift-io/skylift-go/pkg/skylift"
)

func testDatacenter() skylift.Datacenter {
	return skylift.Datacenter{
		ID:          2,
		Name:        "osl1-dc3",
		Description: "Oslo 1 virtual DC 3",
		Location:    testLocation(),
		ServerTypes: skylift.DatacenterServerTypes{
			Supported: []int64{1, 2, 3},
			Available: []int64{1, 3},
		},
	}
}

func TestDatacentersClient_List(t *testing.T) {
	client := NewDatacentersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/datacenters", request.URL.Path)
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, []string{"osl1-dc3"}, request.URL.Query()["name"])

		writeJSON(writer, http.StatusOK, map[string]interface{}{
			"datacenters": []skylift.Datacenter{testDatacenter()},
			"meta":        testMeta(1),
		})
	})))

	list, err := client.List(context.Background(), &skylift.DatacenterListParams{Name: "osl1-dc3"})
	require.NoError(t, err)
	require.Len(t, list.Datacenters, 1)
	assert.Equal(t, "osl1", list.Datacenters[0].Location.Name)
	assert.Equal(t, []int64{1, 3}, list.Datacenters[0].ServerTypes.Available)
}

func TestDatacentersClient_Get(t *testing.T) {
	client := NewDatacentersClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/datacenters/2", request.URL.Path)

		writeJSON(writer, http.StatusOK, datacenterResponse{Datacenter: testDatacenter()})
	})))

	datacenter, err := client.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "osl1-dc3", datacenter.Name)
}
