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

// testImage returns a populated image for stub responses.
func testImage(id int64, imageType skylift.ImageType) skylift.Image {
	return skylift.Image{
		ID:           id,
		Name:         stringPtr("ubuntu-24.04"),
		Type:         imageType,
		Status:       skylift.ImageStatusAvailable,
		Description:  "Ubuntu 24.04",
		OSFlavor:     "ubuntu",
		Architecture: "x86",
	}
}

func TestImagesClient_List(t *testing.T) {
	client := NewImagesClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/images", request.URL.Path)
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, []string{"snapshot", "backup"}, request.URL.Query()["type"])
		assert.Equal(t, []string{"available"}, request.URL.Query()["status"])
		assert.Equal(t, []string{"x86", "arm"}, request.URL.Query()["architecture"])
		assert.Equal(t, []string{"42"}, request.URL.Query()["bound_to"])
		assert.Equal(t, []string{"true"}, request.URL.Query()["include_deprecated"])
		assert.Equal(t, []string{"created:desc"}, request.URL.Query()["sort"])

		writeJSON(writer, http.StatusOK, map[string]interface{}{
			"images": []skylift.Image{testImage(77, skylift.ImageTypeSnapshot)},
			"meta":   testMeta(1),
		})
	})))

	list, err := client.List(context.Background(), &skylift.ImageListParams{
		Type:              []skylift.ImageType{skylift.ImageTypeSnapshot, skylift.ImageTypeBackup},
		Status:            []skylift.ImageStatus{skylift.ImageStatusAvailable},
		Architecture:      []string{"x86", "arm"},
		BoundTo:           "42",
		IncludeDeprecated: true,
		Sort:              []string{"created:desc"},
	})
	require.NoError(t, err)
	require.Len(t, list.Images, 1)
	assert.Equal(t, int64(77), list.Images[0].ID)
}

func TestImagesClient_List_OmitsUnsetParams(t *testing.T) {
	client := NewImagesClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.NotContains(t, request.URL.Query(), "bound_to")
		assert.NotContains(t, request.URL.Query(), "include_deprecated")
		assert.NotContains(t, request.URL.Query(), "type")

		writeJSON(writer, http.StatusOK, map[string]interface{}{
			"images": []skylift.Image{},
			"meta":   testMeta(0),
		})
	})))

	_, err := client.List(context.Background(), &skylift.ImageListParams{Name: "ubuntu-24.04"})
	require.NoError(t, err)
}

func TestImagesClient_Get(t *testing.T) {
	client := NewImagesClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/images/77", request.URL.Path)

		writeJSON(writer, http.StatusOK, imageResponse{Image: testImage(77, skylift.ImageTypeSystem)})
	})))

	image, err := client.Get(context.Background(), 77)
	require.NoError(t, err)
	assert.Equal(t, int64(77), image.ID)
	require.NotNil(t, image.Name)
	assert.Equal(t, "ubuntu-24.04", *image.Name)
}

func TestImagesClient_Update(t *testing.T) {
	t.Run("convert backup to snapshot", func(t *testing.T) {
		client := NewImagesClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/images/77", request.URL.Path)
			assert.Equal(t, "PUT", request.Method)

			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "snapshot", body["type"])

			writeJSON(writer, http.StatusOK, imageResponse{Image: testImage(77, skylift.ImageTypeSnapshot)})
		})))

		imageType := skylift.ImageTypeSnapshot

		image, err := client.Update(context.Background(), 77, &skylift.ImageUpdateRequest{Type: &imageType})
		require.NoError(t, err)
		assert.Equal(t, skylift.ImageTypeSnapshot, image.Type)
	})

	t.Run("conversion target must be snapshot", func(t *testing.T) {
		httpClient, hits := newCountingServer(t)
		imageType := skylift.ImageTypeBackup

		_, err := NewImagesClient(httpClient).Update(context.Background(), 77, &skylift.ImageUpdateRequest{Type: &imageType})

		apiErr := requireRejectedBeforeSend(t, err, hits)
		require.True(t, apiErr.HasFieldErrors())
		assert.Equal(t, "type", apiErr.Details.Fields[0].Name)
		assert.Equal(t, []string{"must be one of: snapshot"}, apiErr.Details.Fields[0].Messages)
	})
}

func TestImagesClient_Delete(t *testing.T) {
	client := NewImagesClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/images/77", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)
		writer.WriteHeader(http.StatusNoContent)
	})))

	require.NoError(t, client.Delete(context.Background(), 77))
}

func TestImagesClient_ChangeProtection(t *testing.T) {
	client := NewImagesClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/images/77/actions/change_protection", request.URL.Path)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, true, body["delete"])

		writeJSON(writer, http.StatusCreated, actionResponse{Action: testAction(10, "change_protection")})
	})))

	_, err := client.ChangeProtection(context.Background(), 77, &skylift.ChangeProtectionRequest{
		Delete: boolPtr(true),
	})
	require.NoError(t, err)
}
