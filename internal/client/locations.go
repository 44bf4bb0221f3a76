package client

import (
	"context"
	"fmt"

	"github.com/skylift-io/skylift-go/internal/http"
	"github.com/skylift-io/skylift-go/internal/validation"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// LocationsClient implements the skylift.LocationsClient interface.
type LocationsClient struct {
	httpClient *http.Client
}

// NewLocationsClient creates a new locations client.
func NewLocationsClient(httpClient *http.Client) *LocationsClient {
	return &LocationsClient{httpClient: httpClient}
}

// locationResponse wraps a single location as returned by the API.
type locationResponse struct {
	Location skylift.Location `json:"location"`
}

// List implements skylift.LocationsClient.List.
func (c *LocationsClient) List(ctx context.Context, params *skylift.LocationListParams) (*skylift.LocationList, error) {
	resp, err := c.httpClient.Get(ctx, "/locations", params.ToValues())
	if err != nil {
		return nil, err
	}

	var list skylift.LocationList
	if err := validation.DecodeResponse(resp.Body, &list, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing location list response: %w", err)
	}

	return &list, nil
}

// Get implements skylift.LocationsClient.Get.
func (c *LocationsClient) Get(ctx context.Context, locationID int64) (*skylift.Location, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/locations/%d", locationID), nil)
	if err != nil {
		return nil, err
	}

	var envelope locationResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing location response: %w", err)
	}

	return &envelope.Location, nil
}
