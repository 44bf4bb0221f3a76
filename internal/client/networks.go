package client

import (
	"context"
	"fmt"

	"github.com/skylift-io/skylift-go/internal/http"
	"github.com/skylift-io/skylift-go/internal/validation"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// NetworksClient implements the skylift.NetworksClient interface.
type NetworksClient struct {
	httpClient *http.Client
}

// NewNetworksClient creates a new networks client.
func NewNetworksClient(httpClient *http.Client) *NetworksClient {
	return &NetworksClient{httpClient: httpClient}
}

// networkResponse wraps a single network as returned by the API.
type networkResponse struct {
	Network skylift.Network `json:"network"`
}

// deleteSubnetRequest identifies the subnet to remove by its IP range.
type deleteSubnetRequest struct {
	IPRange string `json:"ip_range" validate:"required,cidr"`
}

// List implements skylift.NetworksClient.List.
func (c *NetworksClient) List(ctx context.Context, params *skylift.NetworkListParams) (*skylift.NetworkList, error) {
	resp, err := c.httpClient.Get(ctx, "/networks", params.ToValues())
	if err != nil {
		return nil, err
	}

	var list skylift.NetworkList
	if err := validation.DecodeResponse(resp.Body, &list, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing network list response: %w", err)
	}

	return &list, nil
}

// Get implements skylift.NetworksClient.Get.
func (c *NetworksClient) Get(ctx context.Context, networkID int64) (*skylift.Network, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/networks/%d", networkID), nil)
	if err != nil {
		return nil, err
	}

	var envelope networkResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing network response: %w", err)
	}

	return &envelope.Network, nil
}

// Create implements skylift.NetworksClient.Create.
func (c *NetworksClient) Create(ctx context.Context, request *skylift.NetworkCreateRequest) (*skylift.Network, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("creating network: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, "/networks", request)
	if err != nil {
		return nil, err
	}

	var envelope networkResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing network create response: %w", err)
	}

	return &envelope.Network, nil
}

// Update implements skylift.NetworksClient.Update.
func (c *NetworksClient) Update(ctx context.Context, networkID int64, request *skylift.NetworkUpdateRequest) (*skylift.Network, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("updating network: %w", err)
	}

	resp, err := c.httpClient.Put(ctx, fmt.Sprintf("/networks/%d", networkID), request)
	if err != nil {
		return nil, err
	}

	var envelope networkResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing network update response: %w", err)
	}

	return &envelope.Network, nil
}

// Delete implements skylift.NetworksClient.Delete.
func (c *NetworksClient) Delete(ctx context.Context, networkID int64) error {
	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("/networks/%d", networkID))

	return err
}

// AddSubnet implements skylift.NetworksClient.AddSubnet.
func (c *NetworksClient) AddSubnet(ctx context.Context, networkID int64, subnet skylift.NetworkSubnet) (*skylift.Action, error) {
	if err := validation.ValidateRequest(subnet); err != nil {
		return nil, fmt.Errorf("adding subnet: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/networks/%d/actions/add_subnet", networkID), subnet)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "network add_subnet")
}

// DeleteSubnet implements skylift.NetworksClient.DeleteSubnet.
func (c *NetworksClient) DeleteSubnet(ctx context.Context, networkID int64, ipRange string) (*skylift.Action, error) {
	request := deleteSubnetRequest{IPRange: ipRange}
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("deleting subnet: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/networks/%d/actions/delete_subnet", networkID), request)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "network delete_subnet")
}

// AddRoute implements skylift.NetworksClient.AddRoute.
func (c *NetworksClient) AddRoute(ctx context.Context, networkID int64, route skylift.NetworkRoute) (*skylift.Action, error) {
	if err := validation.ValidateRequest(route); err != nil {
		return nil, fmt.Errorf("adding route: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/networks/%d/actions/add_route", networkID), route)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "network add_route")
}

// DeleteRoute implements skylift.NetworksClient.DeleteRoute. The route must
// match an existing route exactly.
func (c *NetworksClient) DeleteRoute(ctx context.Context, networkID int64, route skylift.NetworkRoute) (*skylift.Action, error) {
	if err := validation.ValidateRequest(route); err != nil {
		return nil, fmt.Errorf("deleting route: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/networks/%d/actions/delete_route", networkID), route)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "network delete_route")
}

// ChangeIPRange implements skylift.NetworksClient.ChangeIPRange.
func (c *NetworksClient) ChangeIPRange(ctx context.Context, networkID int64, request *skylift.NetworkChangeIPRangeRequest) (*skylift.Action, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("changing IP range: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/networks/%d/actions/change_ip_range", networkID), request)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "network change_ip_range")
}

// ChangeProtection implements skylift.NetworksClient.ChangeProtection.
func (c *NetworksClient) ChangeProtection(ctx context.Context, networkID int64, request *skylift.ChangeProtectionRequest) (*skylift.Action, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("changing network protection: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/networks/%d/actions/change_protection", networkID), request)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "network change_protection")
}
