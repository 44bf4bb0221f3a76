package client

import (
	"context"
	"fmt"

	"github.com/skylift-io/skylift-go/internal/http"
	"github.com/skylift-io/skylift-go/internal/validation"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// FloatingIPsClient implements the skylift.FloatingIPsClient interface.
type FloatingIPsClient struct {
	httpClient *http.Client
}

// NewFloatingIPsClient creates a new floating IPs client.
func NewFloatingIPsClient(httpClient *http.Client) *FloatingIPsClient {
	return &FloatingIPsClient{httpClient: httpClient}
}

// floatingIPResponse wraps a single floating IP as returned by the API.
type floatingIPResponse struct {
	FloatingIP skylift.FloatingIP `json:"floating_ip"`
}

// List implements skylift.FloatingIPsClient.List.
func (c *FloatingIPsClient) List(ctx context.Context, params *skylift.FloatingIPListParams) (*skylift.FloatingIPList, error) {
	resp, err := c.httpClient.Get(ctx, "/floating_ips", params.ToValues())
	if err != nil {
		return nil, err
	}

	var list skylift.FloatingIPList
	if err := validation.DecodeResponse(resp.Body, &list, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing floating IP list response: %w", err)
	}

	return &list, nil
}

// Get implements skylift.FloatingIPsClient.Get.
func (c *FloatingIPsClient) Get(ctx context.Context, floatingIPID int64) (*skylift.FloatingIP, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/floating_ips/%d", floatingIPID), nil)
	if err != nil {
		return nil, err
	}

	var envelope floatingIPResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing floating IP response: %w", err)
	}

	return &envelope.FloatingIP, nil
}

// Create implements skylift.FloatingIPsClient.Create.
func (c *FloatingIPsClient) Create(ctx context.Context, request *skylift.FloatingIPCreateRequest) (*skylift.FloatingIPCreateResult, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("creating floating IP: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, "/floating_ips", request)
	if err != nil {
		return nil, err
	}

	var result skylift.FloatingIPCreateResult
	if err := validation.DecodeResponse(resp.Body, &result, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing floating IP create response: %w", err)
	}

	return &result, nil
}

// Update implements skylift.FloatingIPsClient.Update.
func (c *FloatingIPsClient) Update(ctx context.Context, floatingIPID int64, request *skylift.FloatingIPUpdateRequest) (*skylift.FloatingIP, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("updating floating IP: %w", err)
	}

	resp, err := c.httpClient.Put(ctx, fmt.Sprintf("/floating_ips/%d", floatingIPID), request)
	if err != nil {
		return nil, err
	}

	var envelope floatingIPResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing floating IP update response: %w", err)
	}

	return &envelope.FloatingIP, nil
}

// Delete implements skylift.FloatingIPsClient.Delete.
func (c *FloatingIPsClient) Delete(ctx context.Context, floatingIPID int64) error {
	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("/floating_ips/%d", floatingIPID))

	return err
}

// Assign implements skylift.FloatingIPsClient.Assign.
func (c *FloatingIPsClient) Assign(ctx context.Context, floatingIPID int64, request *skylift.FloatingIPAssignRequest) (*skylift.Action, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("assigning floating IP: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/floating_ips/%d/actions/assign", floatingIPID), request)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "floating IP assign")
}

// Unassign implements skylift.FloatingIPsClient.Unassign.
func (c *FloatingIPsClient) Unassign(ctx context.Context, floatingIPID int64) (*skylift.Action, error) {
	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/floating_ips/%d/actions/unassign", floatingIPID), nil)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "floating IP unassign")
}

// ChangeDNSPtr implements skylift.FloatingIPsClient.ChangeDNSPtr.
func (c *FloatingIPsClient) ChangeDNSPtr(ctx context.Context, floatingIPID int64, request *skylift.ChangeDNSPtrRequest) (*skylift.Action, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("changing reverse DNS: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/floating_ips/%d/actions/change_dns_ptr", floatingIPID), request)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "floating IP change_dns_ptr")
}

// ChangeProtection implements skylift.FloatingIPsClient.ChangeProtection.
func (c *FloatingIPsClient) ChangeProtection(ctx context.Context, floatingIPID int64, request *skylift.ChangeProtectionRequest) (*skylift.Action, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("changing floating IP protection: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/floating_ips/%d/actions/change_protection", floatingIPID), request)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "floating IP change_protection")
}
