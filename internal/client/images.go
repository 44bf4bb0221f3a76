package client

import (
	"context"
	"fmt"

	"github.com/skylift-io/skylift-go/internal/http"
	"github.com/skylift-io/skylift-go/internal/validation"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// ImagesClient implements the skylift.ImagesClient interface.
type ImagesClient struct {
	httpClient *http.Client
}

// NewImagesClient creates a new images client.
func NewImagesClient(httpClient *http.Client) *ImagesClient {
	return &ImagesClient{httpClient: httpClient}
}

// imageResponse wraps a single image as returned by the API.
type imageResponse struct {
	Image skylift.Image `json:"image"`
}

// List implements skylift.ImagesClient.List.
func (c *ImagesClient) List(ctx context.Context, params *skylift.ImageListParams) (*skylift.ImageList, error) {
	resp, err := c.httpClient.Get(ctx, "/images", params.ToValues())
	if err != nil {
		return nil, err
	}

	var list skylift.ImageList
	if err := validation.DecodeResponse(resp.Body, &list, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing image list response: %w", err)
	}

	return &list, nil
}

// Get implements skylift.ImagesClient.Get.
func (c *ImagesClient) Get(ctx context.Context, imageID int64) (*skylift.Image, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/images/%d", imageID), nil)
	if err != nil {
		return nil, err
	}

	var envelope imageResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing image response: %w", err)
	}

	return &envelope.Image, nil
}

// Update implements skylift.ImagesClient.Update.
func (c *ImagesClient) Update(ctx context.Context, imageID int64, request *skylift.ImageUpdateRequest) (*skylift.Image, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("updating image: %w", err)
	}

	resp, err := c.httpClient.Put(ctx, fmt.Sprintf("/images/%d", imageID), request)
	if err != nil {
		return nil, err
	}

	var envelope imageResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing image update response: %w", err)
	}

	return &envelope.Image, nil
}

// Delete implements skylift.ImagesClient.Delete.
func (c *ImagesClient) Delete(ctx context.Context, imageID int64) error {
	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("/images/%d", imageID))

	return err
}

// ChangeProtection implements skylift.ImagesClient.ChangeProtection.
func (c *ImagesClient) ChangeProtection(ctx context.Context, imageID int64, request *skylift.ChangeProtectionRequest) (*skylift.Action, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("changing image protection: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/images/%d/actions/change_protection", imageID), request)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "image change_protection")
}
