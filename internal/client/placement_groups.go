package client

import (
	"context"
	"fmt"

	"github.com/skylift-io/skylift-go/internal/http"
	"github.com/skylift-io/skylift-go/internal/validation"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// PlacementGroupsClient implements the skylift.PlacementGroupsClient
// interface.
type PlacementGroupsClient struct {
	httpClient *http.Client
}

// NewPlacementGroupsClient creates a new placement groups client.
func NewPlacementGroupsClient(httpClient *http.Client) *PlacementGroupsClient {
	return &PlacementGroupsClient{httpClient: httpClient}
}

// placementGroupResponse wraps a single placement group as returned by the
// API.
type placementGroupResponse struct {
	PlacementGroup skylift.PlacementGroup `json:"placement_group"`
}

// List implements skylift.PlacementGroupsClient.List.
func (c *PlacementGroupsClient) List(ctx context.Context, params *skylift.PlacementGroupListParams) (*skylift.PlacementGroupList, error) {
	resp, err := c.httpClient.Get(ctx, "/placement_groups", params.ToValues())
	if err != nil {
		return nil, err
	}

	var list skylift.PlacementGroupList
	if err := validation.DecodeResponse(resp.Body, &list, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing placement group list response: %w", err)
	}

	return &list, nil
}

// Get implements skylift.PlacementGroupsClient.Get.
func (c *PlacementGroupsClient) Get(ctx context.Context, placementGroupID int64) (*skylift.PlacementGroup, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/placement_groups/%d", placementGroupID), nil)
	if err != nil {
		return nil, err
	}

	var envelope placementGroupResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing placement group response: %w", err)
	}

	return &envelope.PlacementGroup, nil
}

// Create implements skylift.PlacementGroupsClient.Create.
func (c *PlacementGroupsClient) Create(ctx context.Context, request *skylift.PlacementGroupCreateRequest) (*skylift.PlacementGroup, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("creating placement group: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, "/placement_groups", request)
	if err != nil {
		return nil, err
	}

	var envelope placementGroupResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing placement group create response: %w", err)
	}

	return &envelope.PlacementGroup, nil
}

// Update implements skylift.PlacementGroupsClient.Update.
func (c *PlacementGroupsClient) Update(ctx context.Context, placementGroupID int64, request *skylift.PlacementGroupUpdateRequest) (*skylift.PlacementGroup, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("updating placement group: %w", err)
	}

	resp, err := c.httpClient.Put(ctx, fmt.Sprintf("/placement_groups/%d", placementGroupID), request)
	if err != nil {
		return nil, err
	}

	var envelope placementGroupResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing placement group update response: %w", err)
	}

	return &envelope.PlacementGroup, nil
}

// Delete implements skylift.PlacementGroupsClient.Delete.
func (c *PlacementGroupsClient) Delete(ctx context.Context, placementGroupID int64) error {
	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("/placement_groups/%d", placementGroupID))

	return err
}
