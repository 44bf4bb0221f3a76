package client

import (
	"context"
	"fmt"

	"github.com/skylift-io/skylift-go/internal/http"
	"github.com/skylift-io/skylift-go/internal/validation"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// DatacentersClient implements the skylift.DatacentersClient interface.
type DatacentersClient struct {
	httpClient *http.Client
}

// NewDatacentersClient creates a new datacenters client.
func NewDatacentersClient(httpClient *http.Client) *DatacentersClient {
	return &DatacentersClient{httpClient: httpClient}
}

// datacenterResponse wraps a single datacenter as returned by the API.
type datacenterResponse struct {
	Datacenter skylift.Datacenter `json:"datacenter"`
}

// List implements skylift.DatacentersClient.List.
func (c *DatacentersClient) List(ctx context.Context, params *skylift.DatacenterListParams) (*skylift.DatacenterList, error) {
	resp, err := c.httpClient.Get(ctx, "/datacenters", params.ToValues())
	if err != nil {
		return nil, err
	}

	var list skylift.DatacenterList
	if err := validation.DecodeResponse(resp.Body, &list, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing datacenter list response: %w", err)
	}

	return &list, nil
}

// Get implements skylift.DatacentersClient.Get.
func (c *DatacentersClient) Get(ctx context.Context, datacenterID int64) (*skylift.Datacenter, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/datacenters/%d", datacenterID), nil)
	if err != nil {
		return nil, err
	}

	var envelope datacenterResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing datacenter response: %w", err)
	}

	return &envelope.Datacenter, nil
}
