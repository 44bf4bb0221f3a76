package client

import (
	"context"
	"fmt"

	"github.com/skylift-io/skylift-go/internal/http"
	"github.com/skylift-io/skylift-go/internal/validation"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// LoadBalancersClient implements the skylift.LoadBalancersClient interface.
type LoadBalancersClient struct {
	httpClient *http.Client
}

// NewLoadBalancersClient creates a new load balancers client.
func NewLoadBalancersClient(httpClient *http.Client) *LoadBalancersClient {
	return &LoadBalancersClient{httpClient: httpClient}
}

// loadBalancerResponse wraps a single load balancer as returned by the API.
type loadBalancerResponse struct {
	LoadBalancer skylift.LoadBalancer `json:"load_balancer"`
}

// deleteServiceRequest identifies the service to remove by its listen port.
type deleteServiceRequest struct {
	ListenPort int `json:"listen_port" validate:"required,min=1,max=65535"`
}

// List implements skylift.LoadBalancersClient.List.
func (c *LoadBalancersClient) List(ctx context.Context, params *skylift.LoadBalancerListParams) (*skylift.LoadBalancerList, error) {
	resp, err := c.httpClient.Get(ctx, "/load_balancers", params.ToValues())
	if err != nil {
		return nil, err
	}

	var list skylift.LoadBalancerList
	if err := validation.DecodeResponse(resp.Body, &list, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing load balancer list response: %w", err)
	}

	return &list, nil
}

// Get implements skylift.LoadBalancersClient.Get.
func (c *LoadBalancersClient) Get(ctx context.Context, loadBalancerID int64) (*skylift.LoadBalancer, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/load_balancers/%d", loadBalancerID), nil)
	if err != nil {
		return nil, err
	}

	var envelope loadBalancerResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing load balancer response: %w", err)
	}

	return &envelope.LoadBalancer, nil
}

// Create implements skylift.LoadBalancersClient.Create.
func (c *LoadBalancersClient) Create(ctx context.Context, request *skylift.LoadBalancerCreateRequest) (*skylift.LoadBalancerCreateResult, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("creating load balancer: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, "/load_balancers", request)
	if err != nil {
		return nil, err
	}

	var result skylift.LoadBalancerCreateResult
	if err := validation.DecodeResponse(resp.Body, &result, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing load balancer create response: %w", err)
	}

	return &result, nil
}

// Update implements skylift.LoadBalancersClient.Update.
func (c *LoadBalancersClient) Update(ctx context.Context, loadBalancerID int64, request *skylift.LoadBalancerUpdateRequest) (*skylift.LoadBalancer, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("updating load balancer: %w", err)
	}

	resp, err := c.httpClient.Put(ctx, fmt.Sprintf("/load_balancers/%d", loadBalancerID), request)
	if err != nil {
		return nil, err
	}

	var envelope loadBalancerResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing load balancer update response: %w", err)
	}

	return &envelope.LoadBalancer, nil
}

// Delete implements skylift.LoadBalancersClient.Delete.
func (c *LoadBalancersClient) Delete(ctx context.Context, loadBalancerID int64) error {
	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("/load_balancers/%d", loadBalancerID))

	return err
}

// AddService implements skylift.LoadBalancersClient.AddService.
func (c *LoadBalancersClient) AddService(ctx context.Context, loadBalancerID int64, service skylift.LoadBalancerService) (*skylift.Action, error) {
	if err := validation.ValidateRequest(service); err != nil {
		return nil, fmt.Errorf("adding load balancer service: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/load_balancers/%d/actions/add_service", loadBalancerID), service)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "load balancer add_service")
}

// DeleteService implements skylift.LoadBalancersClient.DeleteService.
func (c *LoadBalancersClient) DeleteService(ctx context.Context, loadBalancerID int64, listenPort int) (*skylift.Action, error) {
	request := deleteServiceRequest{ListenPort: listenPort}
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("deleting load balancer service: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/load_balancers/%d/actions/delete_service", loadBalancerID), request)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "load balancer delete_service")
}

// AddTarget implements skylift.LoadBalancersClient.AddTarget.
func (c *LoadBalancersClient) AddTarget(ctx context.Context, loadBalancerID int64, target skylift.LoadBalancerTarget) (*skylift.Action, error) {
	if err := validation.ValidateRequest(target); err != nil {
		return nil, fmt.Errorf("adding load balancer target: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/load_balancers/%d/actions/add_target", loadBalancerID), target)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "load balancer add_target")
}

// RemoveTarget implements skylift.LoadBalancersClient.RemoveTarget.
func (c *LoadBalancersClient) RemoveTarget(ctx context.Context, loadBalancerID int64, target skylift.LoadBalancerTarget) (*skylift.Action, error) {
	if err := validation.ValidateRequest(target); err != nil {
		return nil, fmt.Errorf("removing load balancer target: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/load_balancers/%d/actions/remove_target", loadBalancerID), target)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "load balancer remove_target")
}

// AttachToNetwork implements skylift.LoadBalancersClient.AttachToNetwork.
func (c *LoadBalancersClient) AttachToNetwork(ctx context.Context, loadBalancerID int64, request *skylift.LoadBalancerAttachToNetworkRequest) (*skylift.Action, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("attaching load balancer to network: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/load_balancers/%d/actions/attach_to_network", loadBalancerID), request)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "load balancer attach_to_network")
}

// DetachFromNetwork implements skylift.LoadBalancersClient.DetachFromNetwork.
func (c *LoadBalancersClient) DetachFromNetwork(ctx context.Context, loadBalancerID int64, request *skylift.LoadBalancerDetachFromNetworkRequest) (*skylift.Action, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("detaching load balancer from network: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/load_balancers/%d/actions/detach_from_network", loadBalancerID), request)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "load balancer detach_from_network")
}

// ChangeProtection implements skylift.LoadBalancersClient.ChangeProtection.
func (c *LoadBalancersClient) ChangeProtection(ctx context.Context, loadBalancerID int64, request *skylift.ChangeProtectionRequest) (*skylift.Action, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("changing load balancer protection: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/load_balancers/%d/actions/change_protection", loadBalancerID), request)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "load balancer change_protection")
}
