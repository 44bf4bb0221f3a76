package skylift

import (
	"net/url"
	"time"
)

// Location represents a Skylift Cloud location.
type Location struct {
	ID          int64   `json:"id"           yaml:"id"           validate:"required"`
	Name        string  `json:"name"         yaml:"name"         validate:"required"`
	Description string  `json:"description"  yaml:"description"`
	Country     string  `json:"country"      yaml:"country"`
	City        string  `json:"city"         yaml:"city"`
	Latitude    float64 `json:"latitude"     yaml:"latitude"`
	Longitude   float64 `json:"longitude"    yaml:"longitude"`
	NetworkZone string  `json:"network_zone" yaml:"network_zone"`
}

// LocationList is the response to listing locations.
type LocationList struct {
	Locations []Location `json:"locations" yaml:"locations" validate:"dive"`
	Meta      Meta       `json:"meta"      yaml:"meta"`
}

// LocationListParams filters and orders location listings.
type LocationListParams struct {
	ListParams

	// Name selects a single location by name.
	Name string
	// Sort orders the result, for example "id" or "name:asc".
	Sort []string
}

// ToValues encodes the parameters, including only fields that are set.
func (p *LocationListParams) ToValues() url.Values {
	if p == nil {
		return nil
	}

	values := p.ListParams.ToValues()
	addStringParam(values, "name", p.Name)
	addRepeatedParam(values, "sort", p.Sort)

	return values
}

// Datacenter represents a Skylift Cloud datacenter.
type Datacenter struct {
	ID          int64                 `json:"id"           yaml:"id"           validate:"required"`
	Name        string                `json:"name"         yaml:"name"         validate:"required"`
	Description string                `json:"description"  yaml:"description"`
	Location    Location              `json:"location"     yaml:"location"`
	ServerTypes DatacenterServerTypes `json:"server_types" yaml:"server_types"`
}

// DatacenterServerTypes lists which server types a datacenter offers.
type DatacenterServerTypes struct {
	Supported             []int64 `json:"supported"               yaml:"supported"`
	AvailableForMigration []int64 `json:"available_for_migration" yaml:"available_for_migration"`
	Available             []int64 `json:"available"               yaml:"available"`
}

// DatacenterList is the response to listing datacenters.
type DatacenterList struct {
	Datacenters []Datacenter `json:"datacenters" yaml:"datacenters" validate:"dive"`
	Meta        Meta         `json:"meta"        yaml:"meta"`
}

// DatacenterListParams filters and orders datacenter listings.
type DatacenterListParams struct {
	ListParams

	// Name selects a single datacenter by its qualified name,
	// for example "osl1-dc3".
	Name string
	// Sort orders the result, for example "id" or "name:asc".
	Sort []string
}

// ToValues encodes the parameters, including only fields that are set.
func (p *DatacenterListParams) ToValues() url.Values {
	if p == nil {
		return nil
	}

	values := p.ListParams.ToValues()
	addStringParam(values, "name", p.Name)
	addRepeatedParam(values, "sort", p.Sort)

	return values
}

// Deprecation describes the retirement schedule of a deprecated resource.
type Deprecation struct {
	Announced        time.Time `json:"announced"         yaml:"announced"`
	UnavailableAfter time.Time `json:"unavailable_after" yaml:"unavailable_after"`
}

// ServerType represents a bookable server configuration.
type ServerType struct {
	ID           int64           `json:"id"           yaml:"id"           validate:"required"`
	Name         string          `json:"name"         yaml:"name"         validate:"required"`
	Description  string          `json:"description"  yaml:"description"`
	Cores        int             `json:"cores"        yaml:"cores"`
	Memory       float64         `json:"memory"       yaml:"memory"`
	Disk         int             `json:"disk"         yaml:"disk"`
	StorageType  string          `json:"storage_type" yaml:"storage_type"`
	CPUType      string          `json:"cpu_type"     yaml:"cpu_type"`
	Architecture string          `json:"architecture" yaml:"architecture"`
	Deprecation  *Deprecation    `json:"deprecation"  yaml:"deprecation"`
	Prices       []LocationPrice `json:"prices"       yaml:"prices"`
}

// ServerTypeList is the response to listing server types.
type ServerTypeList struct {
	ServerTypes []ServerType `json:"server_types" yaml:"server_types" validate:"dive"`
	Meta        Meta         `json:"meta"         yaml:"meta"`
}

// ServerTypeListParams filters server type listings.
type ServerTypeListParams struct {
	ListParams

	// Name selects a single server type by name.
	Name string
}

// ToValues encodes the parameters, including only fields that are set.
func (p *ServerTypeListParams) ToValues() url.Values {
	if p == nil {
		return nil
	}

	values := p.ListParams.ToValues()
	addStringParam(values, "name", p.Name)

	return values
}

// ImageType is the category of an image.
type ImageType string

// Image categories.
const (
	ImageTypeSystem   ImageType = "system"
	ImageTypeSnapshot ImageType = "snapshot"
	ImageTypeBackup   ImageType = "backup"
	ImageTypeApp      ImageType = "app"
)

// ImageStatus is the availability state of an image.
type ImageStatus string

// Image availability states.
const (
	ImageStatusAvailable   ImageStatus = "available"
	ImageStatusCreating    ImageStatus = "creating"
	ImageStatusUnavailable ImageStatus = "unavailable"
)

// Image represents a system image, snapshot, backup, or app image.
type Image struct {
	ID           int64             `json:"id"           yaml:"id"           validate:"required"`
	Name         *string           `json:"name"         yaml:"name"`
	Type         ImageType         `json:"type"         yaml:"type"         validate:"required"`
	Status       ImageStatus       `json:"status"       yaml:"status"       validate:"required"`
	Description  string            `json:"description"  yaml:"description"`
	ImageSize    *float64          `json:"image_size"   yaml:"image_size"`
	DiskSize     float64           `json:"disk_size"    yaml:"disk_size"`
	Created      time.Time         `json:"created"      yaml:"created"`
	CreatedFrom  *ImageCreatedFrom `json:"created_from" yaml:"created_from"`
	BoundTo      *int64            `json:"bound_to"     yaml:"bound_to"`
	OSFlavor     string            `json:"os_flavor"    yaml:"os_flavor"`
	OSVersion    *string           `json:"os_version"   yaml:"os_version"`
	RapidDeploy  bool              `json:"rapid_deploy" yaml:"rapid_deploy"`
	Architecture string            `json:"architecture" yaml:"architecture"`
	Protection   Protection        `json:"protection"   yaml:"protection"`
	Deprecated   *time.Time        `json:"deprecated"   yaml:"deprecated"`
	Labels       map[string]string `json:"labels"       yaml:"labels"`
}

// ImageCreatedFrom references the server an image was created from.
type ImageCreatedFrom struct {
	ID   int64  `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// ImageList is the response to listing images.
type ImageList struct {
	Images []Image `json:"images" yaml:"images" validate:"dive"`
	Meta   Meta    `json:"meta"   yaml:"meta"`
}

// ImageListParams filters and orders image listings. Type, Status, and
// Architecture accept multiple values and encode as repeated keys; BoundTo
// and IncludeDeprecated are single-valued on the wire.
type ImageListParams struct {
	ListParams

	// Name selects images by name.
	Name string
	// LabelSelector filters by label selector expression.
	LabelSelector string
	// Type limits the result to the given image categories.
	Type []ImageType
	// Status limits the result to images in the given states.
	Status []ImageStatus
	// Architecture limits the result to the given CPU architectures.
	Architecture []string
	// BoundTo selects backup images bound to the given server id.
	BoundTo string
	// IncludeDeprecated includes deprecated images in the result.
	IncludeDeprecated bool
	// Sort orders the result, for example "id" or "created:desc".
	Sort []string
}

// ToValues encodes the parameters, including only fields that are set.
func (p *ImageListParams) ToValues() url.Values {
	if p == nil {
		return nil
	}

	values := p.ListParams.ToValues()
	addStringParam(values, "name", p.Name)
	addStringParam(values, "label_selector", p.LabelSelector)
	addRepeatedParam(values, "type", p.Type)
	addRepeatedParam(values, "status", p.Status)
	addRepeatedParam(values, "architecture", p.Architecture)
	addStringParam(values, "bound_to", p.BoundTo)
	addBoolParam(values, "include_deprecated", p.IncludeDeprecated)
	addRepeatedParam(values, "sort", p.Sort)

	return values
}

// ImageUpdateRequest modifies an image. Only snapshots can change their type.
type ImageUpdateRequest struct {
	Description *string           `json:"description,omitempty" yaml:"description,omitempty"`
	Type        *ImageType        `json:"type,omitempty"        yaml:"type,omitempty"        validate:"omitempty,oneof=snapshot"`
	Labels      map[string]string `json:"labels,omitempty"      yaml:"labels,omitempty"`
}

// ISO represents a bootable ISO image.
type ISO struct {
	ID           int64        `json:"id"           yaml:"id"           validate:"required"`
	Name         string       `json:"name"         yaml:"name"         validate:"required"`
	Description  string       `json:"description"  yaml:"description"`
	Type         string       `json:"type"         yaml:"type"`
	Architecture *string      `json:"architecture" yaml:"architecture"`
	Deprecation  *Deprecation `json:"deprecation"  yaml:"deprecation"`
}

// ISOList is the response to listing ISO images.
type ISOList struct {
	ISOs []ISO `json:"isos" yaml:"isos" validate:"dive"`
	Meta Meta  `json:"meta" yaml:"meta"`
}

// ISOListParams filters ISO listings.
type ISOListParams struct {
	ListParams

	// Name selects a single ISO by name.
	Name string
	// Architecture limits the result to the given CPU architectures.
	Architecture []string
	// IncludeWildcardArchitecture includes ISOs not bound to an
	// architecture in the result.
	IncludeWildcardArchitecture bool
}

// ToValues encodes the parameters, including only fields that are set.
func (p *ISOListParams) ToValues() url.Values {
	if p == nil {
		return nil
	}

	values := p.ListParams.ToValues()
	addStringParam(values, "name", p.Name)
	addRepeatedParam(values, "architecture", p.Architecture)
	addBoolParam(values, "include_wildcard_architecture", p.IncludeWildcardArchitecture)

	return values
}

// SSHKey represents an SSH public key registered with the provider.
type SSHKey struct {
	ID          int64             `json:"id"          yaml:"id"          validate:"required"`
	Name        string            `json:"name"        yaml:"name"        validate:"required"`
	Fingerprint string            `json:"fingerprint" yaml:"fingerprint"`
	PublicKey   string            `json:"public_key"  yaml:"public_key"`
	Labels      map[string]string `json:"labels"      yaml:"labels"`
	Created     time.Time         `json:"created"     yaml:"created"`
}

// SSHKeyList is the response to listing SSH keys.
type SSHKeyList struct {
	SSHKeys []SSHKey `json:"ssh_keys" yaml:"ssh_keys" validate:"dive"`
	Meta    Meta     `json:"meta"     yaml:"meta"`
}

// SSHKeyListParams filters and orders SSH key listings.
type SSHKeyListParams struct {
	ListParams

	// Name selects a single key by name.
	Name string
	// Fingerprint selects a single key by its MD5 fingerprint.
	Fingerprint string
	// LabelSelector filters by label selector expression.
	LabelSelector string
	// Sort orders the result, for example "id" or "name:asc".
	Sort []string
}

// ToValues encodes the parameters, including only fields that are set.
func (p *SSHKeyListParams) ToValues() url.Values {
	if p == nil {
		return nil
	}

	values := p.ListParams.ToValues()
	addStringParam(values, "name", p.Name)
	addStringParam(values, "fingerprint", p.Fingerprint)
	addStringParam(values, "label_selector", p.LabelSelector)
	addRepeatedParam(values, "sort", p.Sort)

	return values
}

// SSHKeyCreateRequest registers a new SSH public key.
type SSHKeyCreateRequest struct {
	Name      string            `json:"name"             yaml:"name"             validate:"required"`
	PublicKey string            `json:"public_key"       yaml:"public_key"       validate:"required"`
	Labels    map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// SSHKeyUpdateRequest modifies an SSH key.
type SSHKeyUpdateRequest struct {
	Name   *string           `json:"name,omitempty"   yaml:"name,omitempty"`
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// ServerStatus is the lifecycle state of a server.
type ServerStatus string

// Server lifecycle states.
const (
	ServerStatusInitializing ServerStatus = "initializing"
	ServerStatusStarting     ServerStatus = "starting"
	ServerStatusRunning      ServerStatus = "running"
	ServerStatusStopping     ServerStatus = "stopping"
	ServerStatusOff          ServerStatus = "off"
	ServerStatusDeleting     ServerStatus = "deleting"
	ServerStatusRebuilding   ServerStatus = "rebuilding"
	ServerStatusMigrating    ServerStatus = "migrating"
	ServerStatusUnknown      ServerStatus = "unknown"
)

// Server represents a Skylift Cloud virtual machine.
type Server struct {
	ID              int64              `json:"id"                yaml:"id"                validate:"required"`
	Name            string             `json:"name"              yaml:"name"              validate:"required"`
	Status          ServerStatus       `json:"status"            yaml:"status"            validate:"required"`
	Created         time.Time          `json:"created"           yaml:"created"`
	PublicNet       ServerPublicNet    `json:"public_net"        yaml:"public_net"`
	PrivateNet      []ServerPrivateNet `json:"private_net"       yaml:"private_net"`
	ServerType      ServerType         `json:"server_type"       yaml:"server_type"`
	Datacenter      Datacenter         `json:"datacenter"        yaml:"datacenter"`
	Image           *Image             `json:"image"             yaml:"image"`
	ISO             *ISO               `json:"iso"               yaml:"iso"`
	RescueEnabled   bool               `json:"rescue_enabled"    yaml:"rescue_enabled"`
	Locked          bool               `json:"locked"            yaml:"locked"`
	BackupWindow    *string            `json:"backup_window"     yaml:"backup_window"`
	OutgoingTraffic *uint64            `json:"outgoing_traffic"  yaml:"outgoing_traffic"`
	IngoingTraffic  *uint64            `json:"ingoing_traffic"   yaml:"ingoing_traffic"`
	IncludedTraffic uint64             `json:"included_traffic"  yaml:"included_traffic"`
	PrimaryDiskSize int                `json:"primary_disk_size" yaml:"primary_disk_size"`
	Protection      ServerProtection   `json:"protection"        yaml:"protection"`
	Labels          map[string]string  `json:"labels"            yaml:"labels"`
	Volumes         []int64            `json:"volumes"           yaml:"volumes"`
	LoadBalancers   []int64            `json:"load_balancers"    yaml:"load_balancers"`
	PlacementGroup  *PlacementGroup    `json:"placement_group"   yaml:"placement_group"`
}

// ServerPublicNet is the public network configuration of a server.
type ServerPublicNet struct {
	IPv4        *ServerPublicNetIPv4   `json:"ipv4"         yaml:"ipv4"`
	IPv6        *ServerPublicNetIPv6   `json:"ipv6"         yaml:"ipv6"`
	FloatingIPs []int64                `json:"floating_ips" yaml:"floating_ips"`
	Firewalls   []ServerFirewallStatus `json:"firewalls"    yaml:"firewalls"`
}

// ServerPublicNetIPv4 is a server's primary IPv4 address.
type ServerPublicNetIPv4 struct {
	ID      int64  `json:"id"      yaml:"id"`
	IP      string `json:"ip"      yaml:"ip"`
	Blocked bool   `json:"blocked" yaml:"blocked"`
	DNSPtr  string `json:"dns_ptr" yaml:"dns_ptr"`
}

// ServerPublicNetIPv6 is a server's IPv6 network assignment.
type ServerPublicNetIPv6 struct {
	ID      int64         `json:"id"      yaml:"id"`
	IP      string        `json:"ip"      yaml:"ip"`
	Blocked bool          `json:"blocked" yaml:"blocked"`
	DNSPtr  []DNSPtrEntry `json:"dns_ptr" yaml:"dns_ptr"`
}

// ServerFirewallStatus reports whether a firewall is applied to a server.
type ServerFirewallStatus struct {
	ID     int64  `json:"id"     yaml:"id"`
	Status string `json:"status" yaml:"status"`
}

// ServerPrivateNet is a server's attachment to a private network.
type ServerPrivateNet struct {
	Network    int64    `json:"network"     yaml:"network"`
	IP         string   `json:"ip"          yaml:"ip"`
	AliasIPs   []string `json:"alias_ips"   yaml:"alias_ips"`
	MACAddress string   `json:"mac_address" yaml:"mac_address"`
}

// ServerList is the response to listing servers.
type ServerList struct {
	Servers []Server `json:"servers" yaml:"servers" validate:"dive"`
	Meta    Meta     `json:"meta"    yaml:"meta"`
}

// ServerListParams filters and orders server listings. Status and Sort
// accept multiple values and encode as repeated keys.
type ServerListParams struct {
	ListParams

	// Name selects servers by name.
	Name string
	// LabelSelector filters by label selector expression.
	LabelSelector string
	// Status limits the result to servers in the given states.
	Status []ServerStatus
	// Sort orders the result, for example "id" or "name:asc".
	Sort []string
}

// ToValues encodes the parameters, including only fields that are set.
func (p *ServerListParams) ToValues() url.Values {
	if p == nil {
		return nil
	}

	values := p.ListParams.ToValues()
	addStringParam(values, "name", p.Name)
	addStringParam(values, "label_selector", p.LabelSelector)
	addRepeatedParam(values, "status", p.Status)
	addRepeatedParam(values, "sort", p.Sort)

	return values
}

// ServerCreateRequest creates a server. ServerType, Image, Location, and
// Datacenter accept a name or a numeric id rendered as a string.
type ServerCreateRequest struct {
	Name             string                 `json:"name"                         yaml:"name"                         validate:"required,hostname_rfc1123"`
	ServerType       string                 `json:"server_type"                  yaml:"server_type"                  validate:"required"`
	Image            string                 `json:"image"                        yaml:"image"                        validate:"required"`
	SSHKeys          []string               `json:"ssh_keys,omitempty"           yaml:"ssh_keys,omitempty"`
	Location         string                 `json:"location,omitempty"           yaml:"location,omitempty"           validate:"excluded_with=Datacenter"`
	Datacenter       string                 `json:"datacenter,omitempty"         yaml:"datacenter,omitempty"`
	UserData         string                 `json:"user_data,omitempty"          yaml:"user_data,omitempty"`
	StartAfterCreate *bool                  `json:"start_after_create,omitempty" yaml:"start_after_create,omitempty"`
	Labels           map[string]string      `json:"labels,omitempty"             yaml:"labels,omitempty"`
	Automount        *bool                  `json:"automount,omitempty"          yaml:"automount,omitempty"`
	Volumes          []int64                `json:"volumes,omitempty"            yaml:"volumes,omitempty"`
	Networks         []int64                `json:"networks,omitempty"           yaml:"networks,omitempty"`
	Firewalls        []ServerCreateFirewall `json:"firewalls,omitempty"          yaml:"firewalls,omitempty"          validate:"omitempty,dive"`
	PlacementGroup   int64                  `json:"placement_group,omitempty"    yaml:"placement_group,omitempty"`
	PublicNet        *ServerCreatePublicNet `json:"public_net,omitempty"         yaml:"public_net,omitempty"`
}

// ServerCreateFirewall references a firewall to apply at create time.
type ServerCreateFirewall struct {
	Firewall int64 `json:"firewall" yaml:"firewall" validate:"required"`
}

// ServerCreatePublicNet selects which public address families a new server
// is assigned.
type ServerCreatePublicNet struct {
	EnableIPv4 bool `json:"enable_ipv4" yaml:"enable_ipv4"`
	EnableIPv6 bool `json:"enable_ipv6" yaml:"enable_ipv6"`
}

// ServerCreateResult is the response to creating a server. RootPassword is
// nil when the request supplied SSH keys.
type ServerCreateResult struct {
	Server       Server   `json:"server"        yaml:"server"`
	Action       Action   `json:"action"        yaml:"action"`
	NextActions  []Action `json:"next_actions"  yaml:"next_actions"  validate:"dive"`
	RootPassword *string  `json:"root_password" yaml:"root_password"`
}

// ServerUpdateRequest modifies a server.
type ServerUpdateRequest struct {
	Name   *string           `json:"name,omitempty"   yaml:"name,omitempty"   validate:"omitempty,hostname_rfc1123"`
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// ServerResetPasswordResult is the response to resetting a server's root
// password.
type ServerResetPasswordResult struct {
	Action       Action `json:"action"        yaml:"action"`
	RootPassword string `json:"root_password" yaml:"root_password" validate:"required"`
}

// ServerEnableRescueRequest enables the rescue system for a server.
type ServerEnableRescueRequest struct {
	Type    string  `json:"type,omitempty"     yaml:"type,omitempty" validate:"omitempty,oneof=linux64"`
	SSHKeys []int64 `json:"ssh_keys,omitempty" yaml:"ssh_keys,omitempty"`
}

// ServerEnableRescueResult is the response to enabling the rescue system.
type ServerEnableRescueResult struct {
	Action       Action `json:"action"        yaml:"action"`
	RootPassword string `json:"root_password" yaml:"root_password" validate:"required"`
}

// ServerCreateImageRequest creates an image from a server.
type ServerCreateImageRequest struct {
	Description *string           `json:"description,omitempty" yaml:"description,omitempty"`
	Type        *ImageType        `json:"type,omitempty"        yaml:"type,omitempty"        validate:"omitempty,oneof=snapshot backup"`
	Labels      map[string]string `json:"labels,omitempty"      yaml:"labels,omitempty"`
}

// ServerCreateImageResult is the response to creating an image from a
// server.
type ServerCreateImageResult struct {
	Action Action `json:"action" yaml:"action"`
	Image  Image  `json:"image"  yaml:"image"`
}

// ServerRebuildRequest rebuilds a server from an image.
type ServerRebuildRequest struct {
	Image string `json:"image" yaml:"image" validate:"required"`
}

// ServerRebuildResult is the response to rebuilding a server. RootPassword
// is nil when the server keeps its existing credentials.
type ServerRebuildResult struct {
	Action       Action  `json:"action"        yaml:"action"`
	RootPassword *string `json:"root_password" yaml:"root_password"`
}

// ServerChangeTypeRequest migrates a server to a different server type.
type ServerChangeTypeRequest struct {
	ServerType  string `json:"server_type"  yaml:"server_type" validate:"required"`
	UpgradeDisk bool   `json:"upgrade_disk" yaml:"upgrade_disk"`
}

// ServerAttachISORequest attaches an ISO to a server by name or id.
type ServerAttachISORequest struct {
	ISO string `json:"iso" yaml:"iso" validate:"required"`
}

// ServerAttachToNetworkRequest attaches a server to a private network.
type ServerAttachToNetworkRequest struct {
	Network  int64    `json:"network"             yaml:"network" validate:"required"`
	IP       *string  `json:"ip,omitempty"        yaml:"ip,omitempty" validate:"omitempty,ip"`
	AliasIPs []string `json:"alias_ips,omitempty" yaml:"alias_ips,omitempty" validate:"omitempty,dive,ip"`
}

// ServerDetachFromNetworkRequest detaches a server from a private network.
type ServerDetachFromNetworkRequest struct {
	Network int64 `json:"network" yaml:"network" validate:"required"`
}

// VolumeStatus is the lifecycle state of a volume.
type VolumeStatus string

// Volume lifecycle states.
const (
	VolumeStatusCreating  VolumeStatus = "creating"
	VolumeStatusAvailable VolumeStatus = "available"
)

// Volume represents a block storage volume.
type Volume struct {
	ID          int64             `json:"id"           yaml:"id"           validate:"required"`
	Name        string            `json:"name"         yaml:"name"         validate:"required"`
	Status      VolumeStatus      `json:"status"       yaml:"status"       validate:"required"`
	Server      *int64            `json:"server"       yaml:"server"`
	Location    Location          `json:"location"     yaml:"location"`
	Size        int               `json:"size"         yaml:"size"`
	LinuxDevice string            `json:"linux_device" yaml:"linux_device"`
	Format      *string           `json:"format"       yaml:"format"`
	Protection  Protection        `json:"protection"   yaml:"protection"`
	Labels      map[string]string `json:"labels"       yaml:"labels"`
	Created     time.Time         `json:"created"      yaml:"created"`
}

// VolumeList is the response to listing volumes.
type VolumeList struct {
	Volumes []Volume `json:"volumes" yaml:"volumes" validate:"dive"`
	Meta    Meta     `json:"meta"    yaml:"meta"`
}

// VolumeListParams filters and orders volume listings.
type VolumeListParams struct {
	ListParams

	// Name selects volumes by name.
	Name string
	// LabelSelector filters by label selector expression.
	LabelSelector string
	// Status limits the result to volumes in the given states.
	Status []VolumeStatus
	// Sort orders the result, for example "id" or "created:desc".
	Sort []string
}

// ToValues encodes the parameters, including only fields that are set.
func (p *VolumeListParams) ToValues() url.Values {
	if p == nil {
		return nil
	}

	values := p.ListParams.ToValues()
	addStringParam(values, "name", p.Name)
	addStringParam(values, "label_selector", p.LabelSelector)
	addRepeatedParam(values, "status", p.Status)
	addRepeatedParam(values, "sort", p.Sort)

	return values
}

// VolumeCreateRequest creates a volume in a location, either standalone or
// attached to a server. Exactly one of Location and Server must be set.
type VolumeCreateRequest struct {
	Name      string            `json:"name"               yaml:"name"               validate:"required"`
	Size      int               `json:"size"               yaml:"size"               validate:"required,min=10"`
	Location  string            `json:"location,omitempty" yaml:"location,omitempty" validate:"required_without=Server,excluded_with=Server"`
	Server    int64             `json:"server,omitempty"   yaml:"server,omitempty"`
	Format    *string           `json:"format,omitempty"   yaml:"format,omitempty"   validate:"omitempty,oneof=xfs ext4"`
	Automount *bool             `json:"automount,omitempty" yaml:"automount,omitempty"`
	Labels    map[string]string `json:"labels,omitempty"   yaml:"labels,omitempty"`
}

// VolumeCreateResult is the response to creating a volume.
type VolumeCreateResult struct {
	Volume      Volume   `json:"volume"       yaml:"volume"`
	Action      *Action  `json:"action"       yaml:"action"`
	NextActions []Action `json:"next_actions" yaml:"next_actions" validate:"dive"`
}

// VolumeUpdateRequest modifies a volume.
type VolumeUpdateRequest struct {
	Name   *string           `json:"name,omitempty"   yaml:"name,omitempty"`
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// VolumeAttachRequest attaches a volume to a server.
type VolumeAttachRequest struct {
	Server    int64 `json:"server"              yaml:"server" validate:"required"`
	Automount *bool `json:"automount,omitempty" yaml:"automount,omitempty"`
}

// VolumeResizeRequest grows a volume. Shrinking is not supported.
type VolumeResizeRequest struct {
	Size int `json:"size" yaml:"size" validate:"required,min=10"`
}

// FloatingIPType is the address family of a floating IP.
type FloatingIPType string

// Floating IP address families.
const (
	FloatingIPTypeIPv4 FloatingIPType = "ipv4"
	FloatingIPTypeIPv6 FloatingIPType = "ipv6"
)

// FloatingIP represents an IP address that can move between servers.
type FloatingIP struct {
	ID           int64             `json:"id"            yaml:"id"            validate:"required"`
	Name         string            `json:"name"          yaml:"name"          validate:"required"`
	Description  string            `json:"description"   yaml:"description"`
	IP           string            `json:"ip"            yaml:"ip"            validate:"required"`
	Type         FloatingIPType    `json:"type"          yaml:"type"          validate:"required"`
	Server       *int64            `json:"server"        yaml:"server"`
	DNSPtr       []DNSPtrEntry     `json:"dns_ptr"       yaml:"dns_ptr"`
	HomeLocation Location          `json:"home_location" yaml:"home_location"`
	Blocked      bool              `json:"blocked"       yaml:"blocked"`
	Protection   Protection        `json:"protection"    yaml:"protection"`
	Labels       map[string]string `json:"labels"        yaml:"labels"`
	Created      time.Time         `json:"created"       yaml:"created"`
}

// FloatingIPList is the response to listing floating IPs.
type FloatingIPList struct {
	FloatingIPs []FloatingIP `json:"floating_ips" yaml:"floating_ips" validate:"dive"`
	Meta        Meta         `json:"meta"         yaml:"meta"`
}

// FloatingIPListParams filters and orders floating IP listings.
type FloatingIPListParams struct {
	ListParams

	// Name selects floating IPs by name.
	Name string
	// LabelSelector filters by label selector expression.
	LabelSelector string
	// Sort orders the result, for example "id" or "created:desc".
	Sort []string
}

// ToValues encodes the parameters, including only fields that are set.
func (p *FloatingIPListParams) ToValues() url.Values {
	if p == nil {
		return nil
	}

	values := p.ListParams.ToValues()
	addStringParam(values, "name", p.Name)
	addStringParam(values, "label_selector", p.LabelSelector)
	addRepeatedParam(values, "sort", p.Sort)

	return values
}

// FloatingIPCreateRequest reserves a floating IP, either in a home location
// or directly assigned to a server. Exactly one of HomeLocation and Server
// must be set.
type FloatingIPCreateRequest struct {
	Type         FloatingIPType    `json:"type"                    yaml:"type"                    validate:"required,oneof=ipv4 ipv6"`
	HomeLocation string            `json:"home_location,omitempty" yaml:"home_location,omitempty" validate:"required_without=Server,excluded_with=Server"`
	Server       int64             `json:"server,omitempty"        yaml:"server,omitempty"`
	Name         *string           `json:"name,omitempty"          yaml:"name,omitempty"`
	Description  *string           `json:"description,omitempty"   yaml:"description,omitempty"`
	Labels       map[string]string `json:"labels,omitempty"        yaml:"labels,omitempty"`
}

// FloatingIPCreateResult is the response to reserving a floating IP. Action
// is nil when the IP was created unassigned.
type FloatingIPCreateResult struct {
	FloatingIP FloatingIP `json:"floating_ip" yaml:"floating_ip"`
	Action     *Action    `json:"action"      yaml:"action"`
}

// FloatingIPUpdateRequest modifies a floating IP.
type FloatingIPUpdateRequest struct {
	Name        *string           `json:"name,omitempty"        yaml:"name,omitempty"`
	Description *string           `json:"description,omitempty" yaml:"description,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"      yaml:"labels,omitempty"`
}

// FloatingIPAssignRequest assigns a floating IP to a server.
type FloatingIPAssignRequest struct {
	Server int64 `json:"server" yaml:"server" validate:"required"`
}

// Network represents a private network.
type Network struct {
	ID                    int64             `json:"id"                       yaml:"id"                       validate:"required"`
	Name                  string            `json:"name"                     yaml:"name"                     validate:"required"`
	IPRange               string            `json:"ip_range"                 yaml:"ip_range"                 validate:"required"`
	Subnets               []NetworkSubnet   `json:"subnets"                  yaml:"subnets"`
	Routes                []NetworkRoute    `json:"routes"                   yaml:"routes"`
	Servers               []int64           `json:"servers"                  yaml:"servers"`
	LoadBalancers         []int64           `json:"load_balancers"           yaml:"load_balancers"`
	Protection            Protection        `json:"protection"               yaml:"protection"`
	Labels                map[string]string `json:"labels"                   yaml:"labels"`
	ExposeRoutesToVSwitch bool              `json:"expose_routes_to_vswitch" yaml:"expose_routes_to_vswitch"`
	Created               time.Time         `json:"created"                  yaml:"created"`
}

// NetworkSubnet is one subnet of a private network. Gateway is assigned by
// the provider and read-only.
type NetworkSubnet struct {
	Type        string `json:"type"                 yaml:"type"                 validate:"required,oneof=cloud server vswitch"`
	IPRange     string `json:"ip_range,omitempty"   yaml:"ip_range,omitempty"   validate:"omitempty,cidr"`
	NetworkZone string `json:"network_zone"         yaml:"network_zone"         validate:"required"`
	Gateway     string `json:"gateway,omitempty"    yaml:"gateway,omitempty"`
	VSwitchID   int64  `json:"vswitch_id,omitempty" yaml:"vswitch_id,omitempty"`
}

// NetworkRoute is one static route of a private network.
type NetworkRoute struct {
	Destination string `json:"destination" yaml:"destination" validate:"required,cidr"`
	Gateway     string `json:"gateway"     yaml:"gateway"     validate:"required,ip"`
}

// NetworkList is the response to listing networks.
type NetworkList struct {
	Networks []Network `json:"networks" yaml:"networks" validate:"dive"`
	Meta     Meta      `json:"meta"     yaml:"meta"`
}

// NetworkListParams filters network listings.
type NetworkListParams struct {
	ListParams

	// Name selects networks by name.
	Name string
	// LabelSelector filters by label selector expression.
	LabelSelector string
}

// ToValues encodes the parameters, including only fields that are set.
func (p *NetworkListParams) ToValues() url.Values {
	if p == nil {
		return nil
	}

	values := p.ListParams.ToValues()
	addStringParam(values, "name", p.Name)
	addStringParam(values, "label_selector", p.LabelSelector)

	return values
}

// NetworkCreateRequest creates a private network.
type NetworkCreateRequest struct {
	Name                  string            `json:"name"                               yaml:"name"                               validate:"required"`
	IPRange               string            `json:"ip_range"                           yaml:"ip_range"                           validate:"required,cidr"`
	Subnets               []NetworkSubnet   `json:"subnets,omitempty"                  yaml:"subnets,omitempty"                  validate:"omitempty,dive"`
	Routes                []NetworkRoute    `json:"routes,omitempty"                   yaml:"routes,omitempty"                   validate:"omitempty,dive"`
	Labels                map[string]string `json:"labels,omitempty"                   yaml:"labels,omitempty"`
	ExposeRoutesToVSwitch bool              `json:"expose_routes_to_vswitch,omitempty" yaml:"expose_routes_to_vswitch,omitempty"`
}

// NetworkUpdateRequest modifies a private network.
type NetworkUpdateRequest struct {
	Name                  *string           `json:"name,omitempty"                     yaml:"name,omitempty"`
	Labels                map[string]string `json:"labels,omitempty"                   yaml:"labels,omitempty"`
	ExposeRoutesToVSwitch *bool             `json:"expose_routes_to_vswitch,omitempty" yaml:"expose_routes_to_vswitch,omitempty"`
}

// NetworkChangeIPRangeRequest expands the IP range of a private network.
// The new range must contain all existing subnets.
type NetworkChangeIPRangeRequest struct {
	IPRange string `json:"ip_range" yaml:"ip_range" validate:"required,cidr"`
}

// Firewall represents a stateful firewall applicable to servers.
type Firewall struct {
	ID        int64              `json:"id"         yaml:"id"         validate:"required"`
	Name      string             `json:"name"       yaml:"name"       validate:"required"`
	Rules     []FirewallRule     `json:"rules"      yaml:"rules"`
	AppliedTo []FirewallResource `json:"applied_to" yaml:"applied_to"`
	Labels    map[string]string  `json:"labels"     yaml:"labels"`
	Created   time.Time          `json:"created"    yaml:"created"`
}

// FirewallRule is one traffic rule of a firewall. SourceIPs applies to
// inbound rules, DestinationIPs to outbound rules; both hold CIDR blocks.
type FirewallRule struct {
	Direction      string   `json:"direction"                 yaml:"direction"                 validate:"required,oneof=in out"`
	Protocol       string   `json:"protocol"                  yaml:"protocol"                  validate:"required,oneof=tcp udp icmp esp gre"`
	SourceIPs      []string `json:"source_ips,omitempty"      yaml:"source_ips,omitempty"      validate:"omitempty,dive,cidr"`
	DestinationIPs []string `json:"destination_ips,omitempty" yaml:"destination_ips,omitempty" validate:"omitempty,dive,cidr"`
	Port           *string  `json:"port,omitempty"            yaml:"port,omitempty"`
	Description    *string  `json:"description,omitempty"     yaml:"description,omitempty"`
}

// FirewallResource is a target a firewall applies to, either one server or
// every server matched by a label selector.
type FirewallResource struct {
	Type          string                         `json:"type"                     yaml:"type"                     validate:"required,oneof=server label_selector"`
	Server        *FirewallResourceServer        `json:"server,omitempty"         yaml:"server,omitempty"         validate:"required_if=Type server"`
	LabelSelector *FirewallResourceLabelSelector `json:"label_selector,omitempty" yaml:"label_selector,omitempty" validate:"required_if=Type label_selector"`
}

// FirewallResourceServer references a server a firewall applies to.
type FirewallResourceServer struct {
	ID int64 `json:"id" yaml:"id" validate:"required"`
}

// FirewallResourceLabelSelector selects servers a firewall applies to.
type FirewallResourceLabelSelector struct {
	Selector string `json:"selector" yaml:"selector" validate:"required"`
}

// FirewallList is the response to listing firewalls.
type FirewallList struct {
	Firewalls []Firewall `json:"firewalls" yaml:"firewalls" validate:"dive"`
	Meta      Meta       `json:"meta"      yaml:"meta"`
}

// FirewallListParams filters and orders firewall listings.
type FirewallListParams struct {
	ListParams

	// Name selects firewalls by name.
	Name string
	// LabelSelector filters by label selector expression.
	LabelSelector string
	// Sort orders the result, for example "id" or "name:asc".
	Sort []string
}

// ToValues encodes the parameters, including only fields that are set.
func (p *FirewallListParams) ToValues() url.Values {
	if p == nil {
		return nil
	}

	values := p.ListParams.ToValues()
	addStringParam(values, "name", p.Name)
	addStringParam(values, "label_selector", p.LabelSelector)
	addRepeatedParam(values, "sort", p.Sort)

	return values
}

// FirewallCreateRequest creates a firewall, optionally with initial rules
// and resources to apply it to.
type FirewallCreateRequest struct {
	Name    string             `json:"name"               yaml:"name"               validate:"required"`
	Rules   []FirewallRule     `json:"rules,omitempty"    yaml:"rules,omitempty"    validate:"omitempty,dive"`
	ApplyTo []FirewallResource `json:"apply_to,omitempty" yaml:"apply_to,omitempty" validate:"omitempty,dive"`
	Labels  map[string]string  `json:"labels,omitempty"   yaml:"labels,omitempty"`
}

// FirewallCreateResult is the response to creating a firewall. Actions
// covers applying the firewall to the requested resources.
type FirewallCreateResult struct {
	Firewall Firewall `json:"firewall" yaml:"firewall"`
	Actions  []Action `json:"actions"  yaml:"actions"  validate:"dive"`
}

// FirewallUpdateRequest modifies a firewall.
type FirewallUpdateRequest struct {
	Name   *string           `json:"name,omitempty"   yaml:"name,omitempty"`
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// FirewallSetRulesRequest replaces all rules of a firewall. An empty list
// removes every rule.
type FirewallSetRulesRequest struct {
	Rules []FirewallRule `json:"rules" yaml:"rules" validate:"dive"`
}

// LoadBalancerType represents a bookable load balancer configuration.
type LoadBalancerType struct {
	ID                      int64           `json:"id"                        yaml:"id"                        validate:"required"`
	Name                    string          `json:"name"                      yaml:"name"                      validate:"required"`
	Description             string          `json:"description"               yaml:"description"`
	MaxConnections          int             `json:"max_connections"           yaml:"max_connections"`
	MaxServices             int             `json:"max_services"              yaml:"max_services"`
	MaxTargets              int             `json:"max_targets"               yaml:"max_targets"`
	MaxAssignedCertificates int             `json:"max_assigned_certificates" yaml:"max_assigned_certificates"`
	Prices                  []LocationPrice `json:"prices"                    yaml:"prices"`
}

// LoadBalancerTypeList is the response to listing load balancer types.
type LoadBalancerTypeList struct {
	LoadBalancerTypes []LoadBalancerType `json:"load_balancer_types" yaml:"load_balancer_types" validate:"dive"`
	Meta              Meta               `json:"meta"                yaml:"meta"`
}

// LoadBalancerTypeListParams filters load balancer type listings.
type LoadBalancerTypeListParams struct {
	ListParams

	// Name selects a single load balancer type by name.
	Name string
}

// ToValues encodes the parameters, including only fields that are set.
func (p *LoadBalancerTypeListParams) ToValues() url.Values {
	if p == nil {
		return nil
	}

	values := p.ListParams.ToValues()
	addStringParam(values, "name", p.Name)

	return values
}

// LoadBalancer represents a managed load balancer.
type LoadBalancer struct {
	ID               int64                    `json:"id"                 yaml:"id"                 validate:"required"`
	Name             string                   `json:"name"               yaml:"name"               validate:"required"`
	PublicNet        LoadBalancerPublicNet    `json:"public_net"         yaml:"public_net"`
	PrivateNet       []LoadBalancerPrivateNet `json:"private_net"        yaml:"private_net"`
	Location         Location                 `json:"location"           yaml:"location"`
	LoadBalancerType LoadBalancerType         `json:"load_balancer_type" yaml:"load_balancer_type"`
	Services         []LoadBalancerService    `json:"services"           yaml:"services"`
	Targets          []LoadBalancerTarget     `json:"targets"            yaml:"targets"`
	Algorithm        LoadBalancerAlgorithm    `json:"algorithm"          yaml:"algorithm"`
	IncludedTraffic  uint64                   `json:"included_traffic"   yaml:"included_traffic"`
	OutgoingTraffic  *uint64                  `json:"outgoing_traffic"   yaml:"outgoing_traffic"`
	IngoingTraffic   *uint64                  `json:"ingoing_traffic"    yaml:"ingoing_traffic"`
	Protection       Protection               `json:"protection"         yaml:"protection"`
	Labels           map[string]string        `json:"labels"             yaml:"labels"`
	Created          time.Time                `json:"created"            yaml:"created"`
}

// LoadBalancerPublicNet is the public network configuration of a load
// balancer.
type LoadBalancerPublicNet struct {
	Enabled bool                    `json:"enabled" yaml:"enabled"`
	IPv4    LoadBalancerPublicNetIP `json:"ipv4"    yaml:"ipv4"`
	IPv6    LoadBalancerPublicNetIP `json:"ipv6"    yaml:"ipv6"`
}

// LoadBalancerPublicNetIP is one public address of a load balancer.
type LoadBalancerPublicNetIP struct {
	IP     string `json:"ip"      yaml:"ip"`
	DNSPtr string `json:"dns_ptr" yaml:"dns_ptr"`
}

// LoadBalancerPrivateNet is a load balancer's attachment to a private
// network.
type LoadBalancerPrivateNet struct {
	Network int64  `json:"network" yaml:"network"`
	IP      string `json:"ip"      yaml:"ip"`
}

// LoadBalancerAlgorithm selects how a load balancer distributes requests.
type LoadBalancerAlgorithm struct {
	Type string `json:"type" yaml:"type" validate:"required,oneof=round_robin least_connections"`
}

// LoadBalancerService is one forwarding rule of a load balancer.
type LoadBalancerService struct {
	Protocol        string                   `json:"protocol"         yaml:"protocol"         validate:"required,oneof=tcp http https"`
	ListenPort      int                      `json:"listen_port"      yaml:"listen_port"      validate:"required,min=1,max=65535"`
	DestinationPort int                      `json:"destination_port" yaml:"destination_port" validate:"omitempty,min=1,max=65535"`
	Proxyprotocol   bool                     `json:"proxyprotocol"    yaml:"proxyprotocol"`
	HTTP            *LoadBalancerServiceHTTP `json:"http,omitempty"   yaml:"http,omitempty"`
	HealthCheck     *LoadBalancerHealthCheck `json:"health_check,omitempty" yaml:"health_check,omitempty"`
}

// LoadBalancerServiceHTTP is the HTTP-specific configuration of a service.
type LoadBalancerServiceHTTP struct {
	CookieName     *string `json:"cookie_name,omitempty"     yaml:"cookie_name,omitempty"`
	CookieLifetime *int    `json:"cookie_lifetime,omitempty" yaml:"cookie_lifetime,omitempty"`
	Certificates   []int64 `json:"certificates,omitempty"    yaml:"certificates,omitempty"`
	RedirectHTTP   *bool   `json:"redirect_http,omitempty"   yaml:"redirect_http,omitempty"`
	StickySessions *bool   `json:"sticky_sessions,omitempty" yaml:"sticky_sessions,omitempty"`
}

// LoadBalancerHealthCheck probes service targets. Interval and Timeout are
// in seconds.
type LoadBalancerHealthCheck struct {
	Protocol string                       `json:"protocol"       yaml:"protocol" validate:"required,oneof=tcp http"`
	Port     int                          `json:"port"           yaml:"port"     validate:"required,min=1,max=65535"`
	Interval int                          `json:"interval"       yaml:"interval"`
	Timeout  int                          `json:"timeout"        yaml:"timeout"`
	Retries  int                          `json:"retries"        yaml:"retries"`
	HTTP     *LoadBalancerHealthCheckHTTP `json:"http,omitempty" yaml:"http,omitempty"`
}

// LoadBalancerHealthCheckHTTP is the HTTP probe configuration of a health
// check.
type LoadBalancerHealthCheckHTTP struct {
	Domain      *string  `json:"domain,omitempty"       yaml:"domain,omitempty"`
	Path        string   `json:"path,omitempty"         yaml:"path,omitempty"`
	Response    *string  `json:"response,omitempty"     yaml:"response,omitempty"`
	StatusCodes []string `json:"status_codes,omitempty" yaml:"status_codes,omitempty"`
	TLS         bool     `json:"tls,omitempty"          yaml:"tls,omitempty"`
}

// LoadBalancerTarget is one backend of a load balancer. For label_selector
// targets the provider resolves the matched servers into Targets.
type LoadBalancerTarget struct {
	Type          string                           `json:"type"                     yaml:"type"                     validate:"required,oneof=server label_selector ip"`
	Server        *LoadBalancerTargetServer        `json:"server,omitempty"         yaml:"server,omitempty"         validate:"required_if=Type server"`
	LabelSelector *LoadBalancerTargetLabelSelector `json:"label_selector,omitempty" yaml:"label_selector,omitempty" validate:"required_if=Type label_selector"`
	IP            *LoadBalancerTargetIP            `json:"ip,omitempty"             yaml:"ip,omitempty"             validate:"required_if=Type ip"`
	HealthStatus  []LoadBalancerTargetHealthStatus `json:"health_status,omitempty"  yaml:"health_status,omitempty"`
	UsePrivateIP  *bool                            `json:"use_private_ip,omitempty" yaml:"use_private_ip,omitempty"`
	Targets       []LoadBalancerTarget             `json:"targets,omitempty"        yaml:"targets,omitempty"`
}

// LoadBalancerTargetServer references a server backend.
type LoadBalancerTargetServer struct {
	ID int64 `json:"id" yaml:"id" validate:"required"`
}

// LoadBalancerTargetLabelSelector selects server backends by label.
type LoadBalancerTargetLabelSelector struct {
	Selector string `json:"selector" yaml:"selector" validate:"required"`
}

// LoadBalancerTargetIP is a backend addressed by IP, for targets outside
// the provider.
type LoadBalancerTargetIP struct {
	IP string `json:"ip" yaml:"ip" validate:"required,ip"`
}

// LoadBalancerTargetHealthStatus is the probe state of one backend port.
type LoadBalancerTargetHealthStatus struct {
	ListenPort int    `json:"listen_port" yaml:"listen_port"`
	Status     string `json:"status"      yaml:"status"`
}

// LoadBalancerList is the response to listing load balancers.
type LoadBalancerList struct {
	LoadBalancers []LoadBalancer `json:"load_balancers" yaml:"load_balancers" validate:"dive"`
	Meta          Meta           `json:"meta"           yaml:"meta"`
}

// LoadBalancerListParams filters and orders load balancer listings.
type LoadBalancerListParams struct {
	ListParams

	// Name selects load balancers by name.
	Name string
	// LabelSelector filters by label selector expression.
	LabelSelector string
	// Sort orders the result, for example "id" or "name:asc".
	Sort []string
}

// ToValues encodes the parameters, including only fields that are set.
func (p *LoadBalancerListParams) ToValues() url.Values {
	if p == nil {
		return nil
	}

	values := p.ListParams.ToValues()
	addStringParam(values, "name", p.Name)
	addStringParam(values, "label_selector", p.LabelSelector)
	addRepeatedParam(values, "sort", p.Sort)

	return values
}

// LoadBalancerCreateRequest creates a load balancer. Exactly one of
// Location and NetworkZone must be set.
type LoadBalancerCreateRequest struct {
	Name             string                 `json:"name"                       yaml:"name"                       validate:"required"`
	LoadBalancerType string                 `json:"load_balancer_type"         yaml:"load_balancer_type"         validate:"required"`
	Algorithm        *LoadBalancerAlgorithm `json:"algorithm,omitempty"        yaml:"algorithm,omitempty"`
	Location         string                 `json:"location,omitempty"         yaml:"location,omitempty"         validate:"required_without=NetworkZone,excluded_with=NetworkZone"`
	NetworkZone      string                 `json:"network_zone,omitempty"     yaml:"network_zone,omitempty"`
	Network          int64                  `json:"network,omitempty"          yaml:"network,omitempty"`
	PublicInterface  *bool                  `json:"public_interface,omitempty" yaml:"public_interface,omitempty"`
	Services         []LoadBalancerService  `json:"services,omitempty"         yaml:"services,omitempty"         validate:"omitempty,dive"`
	Targets          []LoadBalancerTarget   `json:"targets,omitempty"          yaml:"targets,omitempty"          validate:"omitempty,dive"`
	Labels           map[string]string      `json:"labels,omitempty"           yaml:"labels,omitempty"`
}

// LoadBalancerCreateResult is the response to creating a load balancer.
type LoadBalancerCreateResult struct {
	LoadBalancer LoadBalancer `json:"load_balancer" yaml:"load_balancer"`
	Action       Action       `json:"action"        yaml:"action"`
}

// LoadBalancerUpdateRequest modifies a load balancer.
type LoadBalancerUpdateRequest struct {
	Name   *string           `json:"name,omitempty"   yaml:"name,omitempty"`
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// LoadBalancerAttachToNetworkRequest attaches a load balancer to a private
// network.
type LoadBalancerAttachToNetworkRequest struct {
	Network int64   `json:"network"      yaml:"network" validate:"required"`
	IP      *string `json:"ip,omitempty" yaml:"ip,omitempty" validate:"omitempty,ip"`
}

// LoadBalancerDetachFromNetworkRequest detaches a load balancer from a
// private network.
type LoadBalancerDetachFromNetworkRequest struct {
	Network int64 `json:"network" yaml:"network" validate:"required"`
}

// CertificateType is the provisioning mode of a certificate.
type CertificateType string

// Certificate provisioning modes.
const (
	CertificateTypeUploaded CertificateType = "uploaded"
	CertificateTypeManaged  CertificateType = "managed"
)

// Certificate represents a TLS certificate usable by load balancers.
type Certificate struct {
	ID             int64                  `json:"id"               yaml:"id"               validate:"required"`
	Name           string                 `json:"name"             yaml:"name"             validate:"required"`
	Type           CertificateType        `json:"type"             yaml:"type"             validate:"required"`
	Certificate    string                 `json:"certificate"      yaml:"certificate"`
	DomainNames    []string               `json:"domain_names"     yaml:"domain_names"`
	Fingerprint    string                 `json:"fingerprint"      yaml:"fingerprint"`
	NotValidBefore time.Time              `json:"not_valid_before" yaml:"not_valid_before"`
	NotValidAfter  time.Time              `json:"not_valid_after"  yaml:"not_valid_after"`
	Status         *CertificateStatus     `json:"status"           yaml:"status"`
	UsedBy         []CertificateUsedByRef `json:"used_by"          yaml:"used_by"`
	Labels         map[string]string      `json:"labels"           yaml:"labels"`
	Created        time.Time              `json:"created"          yaml:"created"`
}

// CertificateStatus is the issuance and renewal state of a managed
// certificate. It is nil for uploaded certificates.
type CertificateStatus struct {
	Issuance string       `json:"issuance" yaml:"issuance"`
	Renewal  string       `json:"renewal"  yaml:"renewal"`
	Error    *ActionError `json:"error"    yaml:"error"`
}

// CertificateUsedByRef identifies a resource using a certificate.
type CertificateUsedByRef struct {
	ID   int64  `json:"id"   yaml:"id"`
	Type string `json:"type" yaml:"type"`
}

// CertificateList is the response to listing certificates.
type CertificateList struct {
	Certificates []Certificate `json:"certificates" yaml:"certificates" validate:"dive"`
	Meta         Meta          `json:"meta"         yaml:"meta"`
}

// CertificateListParams filters and orders certificate listings.
type CertificateListParams struct {
	ListParams

	// Name selects certificates by name.
	Name string
	// LabelSelector filters by label selector expression.
	LabelSelector string
	// Type limits the result to the given provisioning modes.
	Type []CertificateType
	// Sort orders the result, for example "id" or "name:asc".
	Sort []string
}

// ToValues encodes the parameters, including only fields that are set.
func (p *CertificateListParams) ToValues() url.Values {
	if p == nil {
		return nil
	}

	values := p.ListParams.ToValues()
	addStringParam(values, "name", p.Name)
	addStringParam(values, "label_selector", p.LabelSelector)
	addRepeatedParam(values, "type", p.Type)
	addRepeatedParam(values, "sort", p.Sort)

	return values
}

// CertificateCreateRequest creates a certificate. Uploaded certificates
// carry their PEM material; managed certificates name the domains the
// provider should obtain a certificate for.
type CertificateCreateRequest struct {
	Name        string            `json:"name"                   yaml:"name"                   validate:"required"`
	Type        CertificateType   `json:"type,omitempty"         yaml:"type,omitempty"         validate:"omitempty,oneof=uploaded managed"`
	Certificate string            `json:"certificate,omitempty"  yaml:"certificate,omitempty"  validate:"required_if=Type uploaded"`
	PrivateKey  string            `json:"private_key,omitempty"  yaml:"private_key,omitempty"  validate:"required_if=Type uploaded"`
	DomainNames []string          `json:"domain_names,omitempty" yaml:"domain_names,omitempty" validate:"required_if=Type managed"`
	Labels      map[string]string `json:"labels,omitempty"       yaml:"labels,omitempty"`
}

// CertificateCreateResult is the response to creating a certificate.
// Action is nil for uploaded certificates, which complete synchronously.
type CertificateCreateResult struct {
	Certificate Certificate `json:"certificate" yaml:"certificate"`
	Action      *Action     `json:"action"      yaml:"action"`
}

// CertificateUpdateRequest modifies a certificate.
type CertificateUpdateRequest struct {
	Name   *string           `json:"name,omitempty"   yaml:"name,omitempty"`
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// PlacementGroup represents a server anti-affinity group.
type PlacementGroup struct {
	ID      int64             `json:"id"      yaml:"id"      validate:"required"`
	Name    string            `json:"name"    yaml:"name"    validate:"required"`
	Type    string            `json:"type"    yaml:"type"    validate:"required"`
	Servers []int64           `json:"servers" yaml:"servers"`
	Labels  map[string]string `json:"labels"  yaml:"labels"`
	Created time.Time         `json:"created" yaml:"created"`
}

// PlacementGroupList is the response to listing placement groups.
type PlacementGroupList struct {
	PlacementGroups []PlacementGroup `json:"placement_groups" yaml:"placement_groups" validate:"dive"`
	Meta            Meta             `json:"meta"             yaml:"meta"`
}

// PlacementGroupListParams filters and orders placement group listings.
// Type is single-valued on the wire.
type PlacementGroupListParams struct {
	ListParams

	// Name selects placement groups by name.
	Name string
	// LabelSelector filters by label selector expression.
	LabelSelector string
	// Type limits the result to one placement strategy.
	Type string
	// Sort orders the result, for example "id" or "created:desc".
	Sort []string
}

// ToValues encodes the parameters, including only fields that are set.
func (p *PlacementGroupListParams) ToValues() url.Values {
	if p == nil {
		return nil
	}

	values := p.ListParams.ToValues()
	addStringParam(values, "name", p.Name)
	addStringParam(values, "label_selector", p.LabelSelector)
	addStringParam(values, "type", p.Type)
	addRepeatedParam(values, "sort", p.Sort)

	return values
}

// PlacementGroupCreateRequest creates a placement group.
type PlacementGroupCreateRequest struct {
	Name   string            `json:"name"             yaml:"name"             validate:"required"`
	Type   string            `json:"type"             yaml:"type"             validate:"required,oneof=spread"`
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// PlacementGroupUpdateRequest modifies a placement group.
type PlacementGroupUpdateRequest struct {
	Name   *string           `json:"name,omitempty"   yaml:"name,omitempty"`
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// Pricing is the provider's full price list. All prices are quoted in
// Currency and exclude VAT.
type Pricing struct {
	Currency          string                    `json:"currency"            yaml:"currency"            validate:"required"`
	VATRate           string                    `json:"vat_rate"            yaml:"vat_rate"`
	Image             PricingImage              `json:"image"               yaml:"image"`
	FloatingIP        PricingFloatingIP         `json:"floating_ip"         yaml:"floating_ip"`
	Traffic           PricingTraffic            `json:"traffic"             yaml:"traffic"`
	ServerBackup      PricingServerBackup       `json:"server_backup"       yaml:"server_backup"`
	Volume            PricingVolume             `json:"volume"              yaml:"volume"`
	ServerTypes       []PricingServerType       `json:"server_types"        yaml:"server_types"`
	LoadBalancerTypes []PricingLoadBalancerType `json:"load_balancer_types" yaml:"load_balancer_types"`
}

// PricingImage is the price of image storage.
type PricingImage struct {
	PerGBMonth Price `json:"price_per_gb_month" yaml:"price_per_gb_month"`
}

// PricingFloatingIP is the price of a floating IP.
type PricingFloatingIP struct {
	Monthly Price `json:"price_monthly" yaml:"price_monthly"`
}

// PricingTraffic is the price of outgoing traffic beyond the included
// allowance.
type PricingTraffic struct {
	PerTB Price `json:"price_per_tb" yaml:"price_per_tb"`
}

// PricingServerBackup is the surcharge for enabling server backups,
// as a percentage of the server price.
type PricingServerBackup struct {
	Percentage string `json:"percentage" yaml:"percentage"`
}

// PricingVolume is the price of volume storage.
type PricingVolume struct {
	PerGBMonth Price `json:"price_per_gb_month" yaml:"price_per_gb_month"`
}

// PricingServerType quotes one server type across locations.
type PricingServerType struct {
	ID     int64           `json:"id"     yaml:"id"`
	Name   string          `json:"name"   yaml:"name"`
	Prices []LocationPrice `json:"prices" yaml:"prices"`
}

// PricingLoadBalancerType quotes one load balancer type across locations.
type PricingLoadBalancerType struct {
	ID     int64           `json:"id"     yaml:"id"`
	Name   string          `json:"name"   yaml:"name"`
	Prices []LocationPrice `json:"prices" yaml:"prices"`
}

// ZoneStatus is the delegation state of a DNS zone.
type ZoneStatus string

// Zone delegation states.
const (
	ZoneStatusVerified ZoneStatus = "verified"
	ZoneStatusPending  ZoneStatus = "pending"
	ZoneStatusFailed   ZoneStatus = "failed"
)

// Zone represents a DNS zone. Zones use string ids, unlike the numeric ids
// of cloud resources.
type Zone struct {
	ID           string     `json:"id"            yaml:"id"            validate:"required"`
	Name         string     `json:"name"          yaml:"name"          validate:"required"`
	TTL          int        `json:"ttl"           yaml:"ttl"`
	Status       ZoneStatus `json:"status"        yaml:"status"`
	NS           []string   `json:"ns"            yaml:"ns"`
	RecordsCount int        `json:"records_count" yaml:"records_count"`
	Paused       bool       `json:"paused"        yaml:"paused"`
	Created      time.Time  `json:"created"       yaml:"created"`
	Modified     time.Time  `json:"modified"      yaml:"modified"`
}

// ZoneList is the response to listing DNS zones.
type ZoneList struct {
	Zones []Zone `json:"zones" yaml:"zones" validate:"dive"`
	Meta  Meta   `json:"meta"  yaml:"meta"`
}

// ZoneListParams filters zone listings.
type ZoneListParams struct {
	ListParams

	// Name selects a single zone by its exact name.
	Name string
	// SearchName selects zones whose name contains the given string.
	SearchName string
}

// ToValues encodes the parameters, including only fields that are set.
func (p *ZoneListParams) ToValues() url.Values {
	if p == nil {
		return nil
	}

	values := p.ListParams.ToValues()
	addStringParam(values, "name", p.Name)
	addStringParam(values, "search_name", p.SearchName)

	return values
}

// ZoneCreateRequest creates a DNS zone.
type ZoneCreateRequest struct {
	Name string `json:"name"          yaml:"name"          validate:"required,fqdn"`
	TTL  *int   `json:"ttl,omitempty" yaml:"ttl,omitempty" validate:"omitempty,min=60"`
}

// ZoneUpdateRequest modifies a DNS zone.
type ZoneUpdateRequest struct {
	Name *string `json:"name,omitempty" yaml:"name,omitempty" validate:"omitempty,fqdn"`
	TTL  *int    `json:"ttl,omitempty"  yaml:"ttl,omitempty"  validate:"omitempty,min=60"`
}

// Record represents a DNS record in a zone.
type Record struct {
	ID       string    `json:"id"       yaml:"id"       validate:"required"`
	ZoneID   string    `json:"zone_id"  yaml:"zone_id"  validate:"required"`
	Type     string    `json:"type"     yaml:"type"     validate:"required"`
	Name     string    `json:"name"     yaml:"name"     validate:"required"`
	Value    string    `json:"value"    yaml:"value"    validate:"required"`
	TTL      *int      `json:"ttl"      yaml:"ttl"`
	Created  time.Time `json:"created"  yaml:"created"`
	Modified time.Time `json:"modified" yaml:"modified"`
}

// RecordList is the response to listing DNS records.
type RecordList struct {
	Records []Record `json:"records" yaml:"records" validate:"dive"`
	Meta    Meta     `json:"meta"    yaml:"meta"`
}

// RecordListParams pages through a zone's records.
type RecordListParams struct {
	ListParams
}

// ToValues encodes the parameters, including only fields that are set.
func (p *RecordListParams) ToValues() url.Values {
	if p == nil {
		return nil
	}

	return p.ListParams.ToValues()
}

// RecordCreateRequest creates a DNS record. Name is relative to the zone;
// "@" addresses the zone apex.
type RecordCreateRequest struct {
	ZoneID string `json:"zone_id"       yaml:"zone_id"       validate:"required"`
	Type   string `json:"type"          yaml:"type"          validate:"required,oneof=A AAAA CNAME MX NS TXT SRV CAA DS PTR SOA"`
	Name   string `json:"name"          yaml:"name"          validate:"required"`
	Value  string `json:"value"         yaml:"value"         validate:"required"`
	TTL    *int   `json:"ttl,omitempty" yaml:"ttl,omitempty" validate:"omitempty,min=60"`
}

// RecordUpdateRequest replaces a DNS record. The provider requires the full
// record on update, not a partial patch.
type RecordUpdateRequest struct {
	ZoneID string `json:"zone_id"       yaml:"zone_id"       validate:"required"`
	Type   string `json:"type"          yaml:"type"          validate:"required,oneof=A AAAA CNAME MX NS TXT SRV CAA DS PTR SOA"`
	Name   string `json:"name"          yaml:"name"          validate:"required"`
	Value  string `json:"value"         yaml:"value"         validate:"required"`
	TTL    *int   `json:"ttl,omitempty" yaml:"ttl,omitempty" validate:"omitempty,min=60"`
}
