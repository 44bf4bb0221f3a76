package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylift-io/skylift-go/pkg/skylift"
)

func TestLocationsClient_List(t *testing.T) {
	client := NewLocationsClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/locations", request.URL.Path)
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, []string{"osl1"}, request.URL.Query()["name"])

		writeJSON(writer, http.StatusOK, map[string]interface{}{
			"locations": []skylift.Location{testLocation()},
			"meta":      testMeta(1),
		})
	})))

	list, err := client.List(context.Background(), &skylift.LocationListParams{Name: "osl1"})
	require.NoError(t, err)
	require.Len(t, list.Locations, 1)
	assert.Equal(t, "osl1", list.Locations[0].Name)
	assert.Equal(t, "eu-north", list.Locations[0].NetworkZone)
}

func TestLocationsClient_Get(t *testing.T) {
	client := NewLocationsClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/locations/1", request.URL.Path)

		writeJSON(writer, http.StatusOK, locationResponse{Location: testLocation()})
	})))

	location, err := client.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), location.ID)
	assert.Equal(t, "NO", location.Country)
}
