package skylift

import "context"

// ActionsClient tracks the asynchronous actions returned by mutating calls.
type ActionsClient interface {
	List(ctx context.Context, params *ActionListParams) (*ActionList, error)
	Get(ctx context.Context, actionID int64) (*Action, error)
	PollUntilDone(ctx context.Context, actionID int64, opts *PollOptions) (*Action, error)
	PollManyUntilDone(ctx context.Context, actionIDs []int64, opts *PollOptions) ([]*Action, error)
}

// ServersClient manages servers and their lifecycle actions.
type ServersClient interface {
	List(ctx context.Context, params *ServerListParams) (*ServerList, error)
	Get(ctx context.Context, serverID int64) (*Server, error)
	Create(ctx context.Context, request *ServerCreateRequest) (*ServerCreateResult, error)
	Update(ctx context.Context, serverID int64, request *ServerUpdateRequest) (*Server, error)
	Delete(ctx context.Context, serverID int64) (*Action, error)
	Poweron(ctx context.Context, serverID int64) (*Action, error)
	Poweroff(ctx context.Context, serverID int64) (*Action, error)
	Reboot(ctx context.Context, serverID int64) (*Action, error)
	Shutdown(ctx context.Context, serverID int64) (*Action, error)
	Reset(ctx context.Context, serverID int64) (*Action, error)
	ResetPassword(ctx context.Context, serverID int64) (*ServerResetPasswordResult, error)
	EnableRescue(ctx context.Context, serverID int64, request *ServerEnableRescueRequest) (*ServerEnableRescueResult, error)
	DisableRescue(ctx context.Context, serverID int64) (*Action, error)
	CreateImage(ctx context.Context, serverID int64, request *ServerCreateImageRequest) (*ServerCreateImageResult, error)
	Rebuild(ctx context.Context, serverID int64, request *ServerRebuildRequest) (*ServerRebuildResult, error)
	ChangeType(ctx context.Context, serverID int64, request *ServerChangeTypeRequest) (*Action, error)
	EnableBackup(ctx context.Context, serverID int64) (*Action, error)
	DisableBackup(ctx context.Context, serverID int64) (*Action, error)
	AttachISO(ctx context.Context, serverID int64, request *ServerAttachISORequest) (*Action, error)
	DetachISO(ctx context.Context, serverID int64) (*Action, error)
	AttachToNetwork(ctx context.Context, serverID int64, request *ServerAttachToNetworkRequest) (*Action, error)
	DetachFromNetwork(ctx context.Context, serverID int64, request *ServerDetachFromNetworkRequest) (*Action, error)
	ChangeProtection(ctx context.Context, serverID int64, request *ServerChangeProtectionRequest) (*Action, error)
	ChangeDNSPtr(ctx context.Context, serverID int64, request *ChangeDNSPtrRequest) (*Action, error)
}

// ImagesClient manages system images, snapshots, and backups.
type ImagesClient interface {
	List(ctx context.Context, params *ImageListParams) (*ImageList, error)
	Get(ctx context.Context, imageID int64) (*Image, error)
	Update(ctx context.Context, imageID int64, request *ImageUpdateRequest) (*Image, error)
	Delete(ctx context.Context, imageID int64) error
	ChangeProtection(ctx context.Context, imageID int64, request *ChangeProtectionRequest) (*Action, error)
}

// ISOsClient reads the ISO image catalog.
type ISOsClient interface {
	List(ctx context.Context, params *ISOListParams) (*ISOList, error)
	Get(ctx context.Context, isoID int64) (*ISO, error)
}

// PlacementGroupsClient manages server anti-affinity groups.
type PlacementGroupsClient interface {
	List(ctx context.Context, params *PlacementGroupListParams) (*PlacementGroupList, error)
	Get(ctx context.Context, placementGroupID int64) (*PlacementGroup, error)
	Create(ctx context.Context, request *PlacementGroupCreateRequest) (*PlacementGroup, error)
	Update(ctx context.Context, placementGroupID int64, request *PlacementGroupUpdateRequest) (*PlacementGroup, error)
	Delete(ctx context.Context, placementGroupID int64) error
}

// VolumesClient manages block storage volumes.
type VolumesClient interface {
	List(ctx context.Context, params *VolumeListParams) (*VolumeList, error)
	Get(ctx context.Context, volumeID int64) (*Volume, error)
	Create(ctx context.Context, request *VolumeCreateRequest) (*VolumeCreateResult, error)
	Update(ctx context.Context, volumeID int64, request *VolumeUpdateRequest) (*Volume, error)
	Delete(ctx context.Context, volumeID int64) error
	Attach(ctx context.Context, volumeID int64, request *VolumeAttachRequest) (*Action, error)
	Detach(ctx context.Context, volumeID int64) (*Action, error)
	Resize(ctx context.Context, volumeID int64, request *VolumeResizeRequest) (*Action, error)
	ChangeProtection(ctx context.Context, volumeID int64, request *ChangeProtectionRequest) (*Action, error)
}

// FloatingIPsClient manages floating IPs.
type FloatingIPsClient interface {
	List(ctx context.Context, params *FloatingIPListParams) (*FloatingIPList, error)
	Get(ctx context.Context, floatingIPID int64) (*FloatingIP, error)
	Create(ctx context.Context, request *FloatingIPCreateRequest) (*FloatingIPCreateResult, error)
	Update(ctx context.Context, floatingIPID int64, request *FloatingIPUpdateRequest) (*FloatingIP, error)
	Delete(ctx context.Context, floatingIPID int64) error
	Assign(ctx context.Context, floatingIPID int64, request *FloatingIPAssignRequest) (*Action, error)
	Unassign(ctx context.Context, floatingIPID int64) (*Action, error)
	ChangeDNSPtr(ctx context.Context, floatingIPID int64, request *ChangeDNSPtrRequest) (*Action, error)
	ChangeProtection(ctx context.Context, floatingIPID int64, request *ChangeProtectionRequest) (*Action, error)
}

// NetworksClient manages private networks.
type NetworksClient interface {
	List(ctx context.Context, params *NetworkListParams) (*NetworkList, error)
	Get(ctx context.Context, networkID int64) (*Network, error)
	Create(ctx context.Context, request *NetworkCreateRequest) (*Network, error)
	Update(ctx context.Context, networkID int64, request *NetworkUpdateRequest) (*Network, error)
	Delete(ctx context.Context, networkID int64) error
	AddSubnet(ctx context.Context, networkID int64, subnet NetworkSubnet) (*Action, error)
	DeleteSubnet(ctx context.Context, networkID int64, ipRange string) (*Action, error)
	AddRoute(ctx context.Context, networkID int64, route NetworkRoute) (*Action, error)
	DeleteRoute(ctx context.Context, networkID int64, route NetworkRoute) (*Action, error)
	ChangeIPRange(ctx context.Context, networkID int64, request *NetworkChangeIPRangeRequest) (*Action, error)
	ChangeProtection(ctx context.Context, networkID int64, request *ChangeProtectionRequest) (*Action, error)
}

// FirewallsClient manages firewalls and their application to servers.
type FirewallsClient interface {
	List(ctx context.Context, params *FirewallListParams) (*FirewallList, error)
	Get(ctx context.Context, firewallID int64) (*Firewall, error)
	Create(ctx context.Context, request *FirewallCreateRequest) (*FirewallCreateResult, error)
	Update(ctx context.Context, firewallID int64, request *FirewallUpdateRequest) (*Firewall, error)
	Delete(ctx context.Context, firewallID int64) error
	SetRules(ctx context.Context, firewallID int64, request *FirewallSetRulesRequest) ([]Action, error)
	ApplyToResources(ctx context.Context, firewallID int64, resources []FirewallResource) ([]Action, error)
	RemoveFromResources(ctx context.Context, firewallID int64, resources []FirewallResource) ([]Action, error)
}

// LoadBalancersClient manages load balancers, their services, and targets.
type LoadBalancersClient interface {
	List(ctx context.Context, params *LoadBalancerListParams) (*LoadBalancerList, error)
	Get(ctx context.Context, loadBalancerID int64) (*LoadBalancer, error)
	Create(ctx context.Context, request *LoadBalancerCreateRequest) (*LoadBalancerCreateResult, error)
	Update(ctx context.Context, loadBalancerID int64, request *LoadBalancerUpdateRequest) (*LoadBalancer, error)
	Delete(ctx context.Context, loadBalancerID int64) error
	AddService(ctx context.Context, loadBalancerID int64, service LoadBalancerService) (*Action, error)
	DeleteService(ctx context.Context, loadBalancerID int64, listenPort int) (*Action, error)
	AddTarget(ctx context.Context, loadBalancerID int64, target LoadBalancerTarget) (*Action, error)
	RemoveTarget(ctx context.Context, loadBalancerID int64, target LoadBalancerTarget) (*Action, error)
	AttachToNetwork(ctx context.Context, loadBalancerID int64, request *LoadBalancerAttachToNetworkRequest) (*Action, error)
	DetachFromNetwork(ctx context.Context, loadBalancerID int64, request *LoadBalancerDetachFromNetworkRequest) (*Action, error)
	ChangeProtection(ctx context.Context, loadBalancerID int64, request *ChangeProtectionRequest) (*Action, error)
}

// CertificatesClient manages TLS certificates.
type CertificatesClient interface {
	List(ctx context.Context, params *CertificateListParams) (*CertificateList, error)
	Get(ctx context.Context, certificateID int64) (*Certificate, error)
	Create(ctx context.Context, request *CertificateCreateRequest) (*CertificateCreateResult, error)
	Update(ctx context.Context, certificateID int64, request *CertificateUpdateRequest) (*Certificate, error)
	Delete(ctx context.Context, certificateID int64) error
	RetryIssuance(ctx context.Context, certificateID int64) (*Action, error)
}

// SSHKeysClient manages SSH public keys.
type SSHKeysClient interface {
	List(ctx context.Context, params *SSHKeyListParams) (*SSHKeyList, error)
	Get(ctx context.Context, sshKeyID int64) (*SSHKey, error)
	Create(ctx context.Context, request *SSHKeyCreateRequest) (*SSHKey, error)
	Update(ctx context.Context, sshKeyID int64, request *SSHKeyUpdateRequest) (*SSHKey, error)
	Delete(ctx context.Context, sshKeyID int64) error
}

// LocationsClient reads the location catalog.
type LocationsClient interface {
	List(ctx context.Context, params *LocationListParams) (*LocationList, error)
	Get(ctx context.Context, locationID int64) (*Location, error)
}

// DatacentersClient reads the datacenter catalog.
type DatacentersClient interface {
	List(ctx context.Context, params *DatacenterListParams) (*DatacenterList, error)
	Get(ctx context.Context, datacenterID int64) (*Datacenter, error)
}

// ServerTypesClient reads the server type catalog.
type ServerTypesClient interface {
	List(ctx context.Context, params *ServerTypeListParams) (*ServerTypeList, error)
	Get(ctx context.Context, serverTypeID int64) (*ServerType, error)
}

// LoadBalancerTypesClient reads the load balancer type catalog.
type LoadBalancerTypesClient interface {
	List(ctx context.Context, params *LoadBalancerTypeListParams) (*LoadBalancerTypeList, error)
	Get(ctx context.Context, loadBalancerTypeID int64) (*LoadBalancerType, error)
}

// PricingClient reads the provider price list.
type PricingClient interface {
	Get(ctx context.Context) (*Pricing, error)
}

// ZonesClient manages DNS zones and their records.
type ZonesClient interface {
	List(ctx context.Context, params *ZoneListParams) (*ZoneList, error)
	Get(ctx context.Context, zoneID string) (*Zone, error)
	Create(ctx context.Context, request *ZoneCreateRequest) (*Zone, error)
	Update(ctx context.Context, zoneID string, request *ZoneUpdateRequest) (*Zone, error)
	Delete(ctx context.Context, zoneID string) error
	ImportZoneFile(ctx context.Context, zoneID string, zoneFile string) (*Zone, error)
	ExportZoneFile(ctx context.Context, zoneID string) (string, error)
	ListRecords(ctx context.Context, zoneID string, params *RecordListParams) (*RecordList, error)
	GetRecord(ctx context.Context, recordID string) (*Record, error)
	CreateRecord(ctx context.Context, request *RecordCreateRequest) (*Record, error)
	UpdateRecord(ctx context.Context, recordID string, request *RecordUpdateRequest) (*Record, error)
	DeleteRecord(ctx context.Context, recordID string) error
}
