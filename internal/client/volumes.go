package client

import (
	"context"
	"fmt"

	"github.com/skylift-io/skylift-go/internal/http"
	"github.com/skylift-io/skylift-go/internal/validation"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// VolumesClient implements the skylift.VolumesClient interface.
type VolumesClient struct {
	httpClient *http.Client
}

// NewVolumesClient creates a new volumes client.
func NewVolumesClient(httpClient *http.Client) *VolumesClient {
	return &VolumesClient{httpClient: httpClient}
}

// volumeResponse wraps a single volume as returned by the API.
type volumeResponse struct {
	Volume skylift.Volume `json:"volume"`
}

// List implements skylift.VolumesClient.List.
func (c *VolumesClient) List(ctx context.Context, params *skylift.VolumeListParams) (*skylift.VolumeList, error) {
	resp, err := c.httpClient.Get(ctx, "/volumes", params.ToValues())
	if err != nil {
		return nil, err
	}

	var list skylift.VolumeList
	if err := validation.DecodeResponse(resp.Body, &list, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing volume list response: %w", err)
	}

	return &list, nil
}

// Get implements skylift.VolumesClient.Get.
func (c *VolumesClient) Get(ctx context.Context, volumeID int64) (*skylift.Volume, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/volumes/%d", volumeID), nil)
	if err != nil {
		return nil, err
	}

	var envelope volumeResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing volume response: %w", err)
	}

	return &envelope.Volume, nil
}

// Create implements skylift.VolumesClient.Create.
func (c *VolumesClient) Create(ctx context.Context, request *skylift.VolumeCreateRequest) (*skylift.VolumeCreateResult, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("creating volume: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, "/volumes", request)
	if err != nil {
		return nil, err
	}

	var result skylift.VolumeCreateResult
	if err := validation.DecodeResponse(resp.Body, &result, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing volume create response: %w", err)
	}

	return &result, nil
}

// Update implements skylift.VolumesClient.Update.
func (c *VolumesClient) Update(ctx context.Context, volumeID int64, request *skylift.VolumeUpdateRequest) (*skylift.Volume, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("updating volume: %w", err)
	}

	resp, err := c.httpClient.Put(ctx, fmt.Sprintf("/volumes/%d", volumeID), request)
	if err != nil {
		return nil, err
	}

	var envelope volumeResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing volume update response: %w", err)
	}

	return &envelope.Volume, nil
}

// Delete implements skylift.VolumesClient.Delete.
func (c *VolumesClient) Delete(ctx context.Context, volumeID int64) error {
	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("/volumes/%d", volumeID))

	return err
}

// Attach implements skylift.VolumesClient.Attach.
func (c *VolumesClient) Attach(ctx context.Context, volumeID int64, request *skylift.VolumeAttachRequest) (*skylift.Action, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("attaching volume: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/volumes/%d/actions/attach", volumeID), request)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "volume attach")
}

// Detach implements skylift.VolumesClient.Detach.
func (c *VolumesClient) Detach(ctx context.Context, volumeID int64) (*skylift.Action, error) {
	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/volumes/%d/actions/detach", volumeID), nil)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "volume detach")
}

// Resize implements skylift.VolumesClient.Resize.
func (c *VolumesClient) Resize(ctx context.Context, volumeID int64, request *skylift.VolumeResizeRequest) (*skylift.Action, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("resizing volume: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/volumes/%d/actions/resize", volumeID), request)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "volume resize")
}

// ChangeProtection implements skylift.VolumesClient.ChangeProtection.
func (c *VolumesClient) ChangeProtection(ctx context.Context, volumeID int64, request *skylift.ChangeProtectionRequest) (*skylift.Action, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("changing volume protection: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/volumes/%d/actions/change_protection", volumeID), request)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "volume change_protection")
}
