package client

import (
	"context"
	"fmt"

	"github.com/skylift-io/skylift-go/internal/http"
	"github.com/skylift-io/skylift-go/internal/validation"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// LoadBalancerTypesClient implements the skylift.LoadBalancerTypesClient
// interface.
type LoadBalancerTypesClient struct {
	httpClient *http.Client
}

// NewLoadBalancerTypesClient creates a new load balancer types client.
func NewLoadBalancerTypesClient(httpClient *http.Client) *LoadBalancerTypesClient {
	return &LoadBalancerTypesClient{httpClient: httpClient}
}

// loadBalancerTypeResponse wraps a single load balancer type as returned by
// the API.
type loadBalancerTypeResponse struct {
	LoadBalancerType skylift.LoadBalancerType `json:"load_balancer_type"`
}

// List implements skylift.LoadBalancerTypesClient.List.
func (c *LoadBalancerTypesClient) List(ctx context.Context, params *skylift.LoadBalancerTypeListParams) (*skylift.LoadBalancerTypeList, error) {
	resp, err := c.httpClient.Get(ctx, "/load_balancer_types", params.ToValues())
	if err != nil {
		return nil, err
	}

	var list skylift.LoadBalancerTypeList
	if err := validation.DecodeResponse(resp.Body, &list, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing load balancer type list response: %w", err)
	}

	return &list, nil
}

// Get implements skylift.LoadBalancerTypesClient.Get.
func (c *LoadBalancerTypesClient) Get(ctx context.Context, loadBalancerTypeID int64) (*skylift.LoadBalancerType, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/load_balancer_types/%d", loadBalancerTypeID), nil)
	if err != nil {
		return nil, err
	}

	var envelope loadBalancerTypeResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing load balancer type response: %w", err)
	}

	return &envelope.LoadBalancerType, nil
}
