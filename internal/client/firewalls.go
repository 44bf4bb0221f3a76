package client

import (
	"context"
	"fmt"

	"github.com/skylift-io/skylift-go/internal/http"
	"github.com/skylift-io/skylift-go/internal/validation"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// FirewallsClient implements the skylift.FirewallsClient interface.
type FirewallsClient struct {
	httpClient *http.Client
}

// NewFirewallsClient creates a new firewalls client.
func NewFirewallsClient(httpClient *http.Client) *FirewallsClient {
	return &FirewallsClient{httpClient: httpClient}
}

// firewallResponse wraps a single firewall as returned by the API.
type firewallResponse struct {
	Firewall skylift.Firewall `json:"firewall"`
}

// firewallApplyRequest applies a firewall to a set of resources.
type firewallApplyRequest struct {
	ApplyTo []skylift.FirewallResource `json:"apply_to" validate:"required,min=1,dive"`
}

// firewallRemoveRequest removes a firewall from a set of resources.
type firewallRemoveRequest struct {
	RemoveFrom []skylift.FirewallResource `json:"remove_from" validate:"required,min=1,dive"`
}

// List implements skylift.FirewallsClient.List.
func (c *FirewallsClient) List(ctx context.Context, params *skylift.FirewallListParams) (*skylift.FirewallList, error) {
	resp, err := c.httpClient.Get(ctx, "/firewalls", params.ToValues())
	if err != nil {
		return nil, err
	}

	var list skylift.FirewallList
	if err := validation.DecodeResponse(resp.Body, &list, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing firewall list response: %w", err)
	}

	return &list, nil
}

// Get implements skylift.FirewallsClient.Get.
func (c *FirewallsClient) Get(ctx context.Context, firewallID int64) (*skylift.Firewall, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/firewalls/%d", firewallID), nil)
	if err != nil {
		return nil, err
	}

	var envelope firewallResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing firewall response: %w", err)
	}

	return &envelope.Firewall, nil
}

// Create implements skylift.FirewallsClient.Create.
func (c *FirewallsClient) Create(ctx context.Context, request *skylift.FirewallCreateRequest) (*skylift.FirewallCreateResult, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("creating firewall: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, "/firewalls", request)
	if err != nil {
		return nil, err
	}

	var result skylift.FirewallCreateResult
	if err := validation.DecodeResponse(resp.Body, &result, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing firewall create response: %w", err)
	}

	return &result, nil
}

// Update implements skylift.FirewallsClient.Update.
func (c *FirewallsClient) Update(ctx context.Context, firewallID int64, request *skylift.FirewallUpdateRequest) (*skylift.Firewall, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("updating firewall: %w", err)
	}

	resp, err := c.httpClient.Put(ctx, fmt.Sprintf("/firewalls/%d", firewallID), request)
	if err != nil {
		return nil, err
	}

	var envelope firewallResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing firewall update response: %w", err)
	}

	return &envelope.Firewall, nil
}

// Delete implements skylift.FirewallsClient.Delete.
func (c *FirewallsClient) Delete(ctx context.Context, firewallID int64) error {
	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("/firewalls/%d", firewallID))

	return err
}

// SetRules implements skylift.FirewallsClient.SetRules. The given rules
// replace the firewall's entire rule set; applying them to every attached
// resource yields one action per resource.
func (c *FirewallsClient) SetRules(ctx context.Context, firewallID int64, request *skylift.FirewallSetRulesRequest) ([]skylift.Action, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("setting firewall rules: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/firewalls/%d/actions/set_rules", firewallID), request)
	if err != nil {
		return nil, err
	}

	return decodeActions(resp.Body, "firewall set_rules")
}

// ApplyToResources implements skylift.FirewallsClient.ApplyToResources.
func (c *FirewallsClient) ApplyToResources(ctx context.Context, firewallID int64, resources []skylift.FirewallResource) ([]skylift.Action, error) {
	request := firewallApplyRequest{ApplyTo: resources}
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("applying firewall to resources: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/firewalls/%d/actions/apply_to_resources", firewallID), request)
	if err != nil {
		return nil, err
	}

	return decodeActions(resp.Body, "firewall apply_to_resources")
}

// RemoveFromResources implements skylift.FirewallsClient.RemoveFromResources.
func (c *FirewallsClient) RemoveFromResources(ctx context.Context, firewallID int64, resources []skylift.FirewallResource) ([]skylift.Action, error) {
	request := firewallRemoveRequest{RemoveFrom: resources}
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("removing firewall from resources: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/firewalls/%d/actions/remove_from_resources", firewallID), request)
	if err != nil {
		return nil, err
	}

	return decodeActions(resp.Body, "firewall remove_from_resources")
}
