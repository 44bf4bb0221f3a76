package skylift

import (
	"errors"
)

// Static errors for err113 compliance.
var (
	ErrDeprecatedClientConstructor = errors.New("use github.com/skylift-io/skylift-go/pkg/slclient.New to create a client")
)

// ComputeClients provides access to compute resource clients.
type ComputeClients interface {
	Servers() ServersClient
	Images() ImagesClient
	ISOs() ISOsClient
	PlacementGroups() PlacementGroupsClient
}

// NetworkingClients provides access to networking resource clients.
type NetworkingClients interface {
	Networks() NetworksClient
	LoadBalancers() LoadBalancersClient
	FloatingIPs() FloatingIPsClient
	Zones() ZonesClient
}

// SecurityClients provides access to security resource clients.
type SecurityClients interface {
	Firewalls() FirewallsClient
	Certificates() CertificatesClient
	SSHKeys() SSHKeysClient
}

// StorageClients provides access to storage resource clients.
type StorageClients interface {
	Volumes() VolumesClient
}

// CatalogClients provides access to the provider's read-only catalogs.
type CatalogClients interface {
	Locations() LocationsClient
	Datacenters() DatacentersClient
	ServerTypes() ServerTypesClient
	LoadBalancerTypes() LoadBalancerTypesClient
	Pricing() PricingClient
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	// Composite interfaces for resource groups
	ComputeClients
	NetworkingClients
	SecurityClients
	StorageClients
	CatalogClients
}

type Client interface {
	// Composite interfaces for related resource groups
	ResourceClients

	// Actions tracks the asynchronous operations the other clients return.
	Actions() ActionsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// NewClient creates a new Skylift Cloud API client
// Deprecated: Use github.com/skylift-io/skylift-go/pkg/slclient.New instead.
func NewClient(config *Config) (Client, error) {
	return nil, ErrDeprecatedClientConstructor
}
