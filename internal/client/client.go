// Package client implements the skylift.Client interface: one file per
// endpoint group, plus the action poller shared by all of them.
package client

import (
	"context"
	"fmt"

	"github.com/skylift-io/skylift-go/internal/auth"
	"github.com/skylift-io/skylift-go/internal/constants"
	"github.com/skylift-io/skylift-go/internal/http"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// Client implements the skylift.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       skylift.Logger

	// Resource clients
	actions           skylift.ActionsClient
	servers           skylift.ServersClient
	images            skylift.ImagesClient
	isos              skylift.ISOsClient
	placementGroups   skylift.PlacementGroupsClient
	volumes           skylift.VolumesClient
	floatingIPs       skylift.FloatingIPsClient
	networks          skylift.NetworksClient
	firewalls         skylift.FirewallsClient
	loadBalancers     skylift.LoadBalancersClient
	certificates      skylift.CertificatesClient
	sshKeys           skylift.SSHKeysClient
	locations         skylift.LocationsClient
	datacenters       skylift.DatacentersClient
	serverTypes       skylift.ServerTypesClient
	loadBalancerTypes skylift.LoadBalancerTypesClient
	pricing           skylift.PricingClient
	zones             skylift.ZonesClient
}

// New creates a client from a fully populated configuration. The endpoint
// must be set; the token is validated here, before any request is made.
func New(config *skylift.Config) (*Client, error) {
	if config.Endpoint == "" {
		return nil, skylift.ErrEndpointRequired
	}

	tokenManager, err := auth.NewStaticTokenManager(config.Token)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(config.Endpoint, tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.Endpoint,
		logger:       config.Logger,
	}

	client.initializeResourceClients(config)

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *skylift.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.Timeout))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients(config *skylift.Config) {
	pollInterval := config.PollInterval
	if pollInterval <= 0 {
		pollInterval = constants.DefaultActionPollInterval
	}

	pollTimeout := config.PollTimeout
	if pollTimeout <= 0 {
		pollTimeout = constants.DefaultActionPollTimeout
	}

	c.actions = NewActionsClient(c.httpClient, pollInterval, pollTimeout)
	c.servers = NewServersClient(c.httpClient)
	c.images = NewImagesClient(c.httpClient)
	c.isos = NewISOsClient(c.httpClient)
	c.placementGroups = NewPlacementGroupsClient(c.httpClient)
	c.volumes = NewVolumesClient(c.httpClient)
	c.floatingIPs = NewFloatingIPsClient(c.httpClient)
	c.networks = NewNetworksClient(c.httpClient)
	c.firewalls = NewFirewallsClient(c.httpClient)
	c.loadBalancers = NewLoadBalancersClient(c.httpClient)
	c.certificates = NewCertificatesClient(c.httpClient)
	c.sshKeys = NewSSHKeysClient(c.httpClient)
	c.locations = NewLocationsClient(c.httpClient)
	c.datacenters = NewDatacentersClient(c.httpClient)
	c.serverTypes = NewServerTypesClient(c.httpClient)
	c.loadBalancerTypes = NewLoadBalancerTypesClient(c.httpClient)
	c.pricing = NewPricingClient(c.httpClient)
	c.zones = NewZonesClient(c.httpClient)
}

// GetToken returns the token presented on requests.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("getting token: %w", err)
	}

	return token, nil
}

// Resource client accessors

// Actions implements skylift.Client.Actions.
func (c *Client) Actions() skylift.ActionsClient {
	return c.actions
}

// Servers implements skylift.Client.Servers.
func (c *Client) Servers() skylift.ServersClient {
	return c.servers
}

// Images implements skylift.Client.Images.
func (c *Client) Images() skylift.ImagesClient {
	return c.images
}

// ISOs implements skylift.Client.ISOs.
func (c *Client) ISOs() skylift.ISOsClient {
	return c.isos
}

// PlacementGroups implements skylift.Client.PlacementGroups.
func (c *Client) PlacementGroups() skylift.PlacementGroupsClient {
	return c.placementGroups
}

// Volumes implements skylift.Client.Volumes.
func (c *Client) Volumes() skylift.VolumesClient {
	return c.volumes
}

// FloatingIPs implements skylift.Client.FloatingIPs.
func (c *Client) FloatingIPs() skylift.FloatingIPsClient {
	return c.floatingIPs
}

// Networks implements skylift.Client.Networks.
func (c *Client) Networks() skylift.NetworksClient {
	return c.networks
}

// Firewalls implements skylift.Client.Firewalls.
func (c *Client) Firewalls() skylift.FirewallsClient {
	return c.firewalls
}

// LoadBalancers implements skylift.Client.LoadBalancers.
func (c *Client) LoadBalancers() skylift.LoadBalancersClient {
	return c.loadBalancers
}

// Certificates implements skylift.Client.Certificates.
func (c *Client) Certificates() skylift.CertificatesClient {
	return c.certificates
}

// SSHKeys implements skylift.Client.SSHKeys.
func (c *Client) SSHKeys() skylift.SSHKeysClient {
	return c.sshKeys
}

// Locations implements skylift.Client.Locations.
func (c *Client) Locations() skylift.LocationsClient {
	return c.locations
}

// Datacenters implements skylift.Client.Datacenters.
func (c *Client) Datacenters() skylift.DatacentersClient {
	return c.datacenters
}

// ServerTypes implements skylift.Client.ServerTypes.
func (c *Client) ServerTypes() skylift.ServerTypesClient {
	return c.serverTypes
}

// LoadBalancerTypes implements skylift.Client.LoadBalancerTypes.
func (c *Client) LoadBalancerTypes() skylift.LoadBalancerTypesClient {
	return c.loadBalancerTypes
}

// Pricing implements skylift.Client.Pricing.
func (c *Client) Pricing() skylift.PricingClient {
	return c.pricing
}

// Zones implements skylift.Client.Zones.
func (c *Client) Zones() skylift.ZonesClient {
	return c.zones
}
