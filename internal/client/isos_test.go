package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylift-io/skylift-go/pkg/skylift"
)

func TestISOsClient_List(t *testing.T) {
	client := NewISOsClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/isos", request.URL.Path)
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, []string{"x86"}, request.URL.Query()["architecture"])
		assert.Equal(t, []string{"true"}, request.URL.Query()["include_wildcard_architecture"])

		writeJSON(writer, http.StatusOK, map[string]interface{}{
			"isos": []skylift.ISO{
				{ID: 11, Name: "debian-12.5-amd64-netinst.iso", Type: "public", Architecture: stringPtr("x86")},
				{ID: 12, Name: "grml-full.iso", Type: "public"},
			},
			"meta": testMeta(2),
		})
	})))

	list, err := client.List(context.Background(), &skylift.ISOListParams{
		Architecture:                []string{"x86"},
		IncludeWildcardArchitecture: true,
	})
	require.NoError(t, err)
	require.Len(t, list.ISOs, 2)
	assert.Equal(t, "debian-12.5-amd64-netinst.iso", list.ISOs[0].Name)
	assert.Nil(t, list.ISOs[1].Architecture)
}

func TestISOsClient_List_NilParams(t *testing.T) {
	client := NewISOsClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Empty(t, request.URL.RawQuery)

		writeJSON(writer, http.StatusOK, map[string]interface{}{
			"isos": []skylift.ISO{},
			"meta": testMeta(0),
		})
	})))

	list, err := client.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, list.ISOs)
}

func TestISOsClient_Get(t *testing.T) {
	client := NewISOsClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/isos/11", request.URL.Path)

		writeJSON(writer, http.StatusOK, isoResponse{
			ISO: skylift.ISO{ID: 11, Name: "debian-12.5-amd64-netinst.iso", Description: "Debian 12.5"},
		})
	})))

	iso, err := client.Get(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, int64(11), iso.ID)
	assert.Equal(t, "Debian 12.5", iso.Description)
}

func TestISOsClient_Get_IncompleteResponse(t *testing.T) {
	client := NewISOsClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(writer, http.StatusOK, isoResponse{ISO: skylift.ISO{ID: 11}})
	})))

	_, err := client.Get(context.Background(), 11)
	require.Error(t, err)

	var apiErr *skylift.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, skylift.IsValidationError(apiErr))
	require.True(t, apiErr.HasFieldErrors())
	assert.Equal(t, "iso.name", apiErr.Details.Fields[0].Name)
}
