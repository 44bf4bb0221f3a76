package skylift

// Meta carries the metadata block returned by list endpoints.
type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty" validate:"required"`
}

// Pagination describes the provider's page cursor state. PreviousPage and
// NextPage are nil on the first and last page respectively.
type Pagination struct {
	Page         int  `json:"page"          yaml:"page"`
	PerPage      int  `json:"per_page"      yaml:"per_page"`
	PreviousPage *int `json:"previous_page" yaml:"previous_page"`
	NextPage     *int `json:"next_page"     yaml:"next_page"`
	LastPage     int  `json:"last_page"     yaml:"last_page"`
	TotalEntries int  `json:"total_entries" yaml:"total_entries"`
}

// Protection is the deletion protection state carried by most resources.
type Protection struct {
	Delete bool `json:"delete" yaml:"delete"`
}

// ServerProtection is the protection state of a server, which additionally
// guards against rebuilds.
type ServerProtection struct {
	Delete  bool `json:"delete"  yaml:"delete"`
	Rebuild bool `json:"rebuild" yaml:"rebuild"`
}

// ChangeProtectionRequest toggles deletion protection on a resource. A nil
// field leaves the current setting unchanged.
type ChangeProtectionRequest struct {
	Delete *bool `json:"delete,omitempty" yaml:"delete,omitempty"`
}

// ServerChangeProtectionRequest toggles protection on a server.
type ServerChangeProtectionRequest struct {
	Delete  *bool `json:"delete,omitempty"  yaml:"delete,omitempty"`
	Rebuild *bool `json:"rebuild,omitempty" yaml:"rebuild,omitempty"`
}

// ChangeDNSPtrRequest sets or resets the reverse DNS entry for one of a
// resource's IP addresses. A nil DNSPtr resets the entry to the provider
// default.
type ChangeDNSPtrRequest struct {
	IP     string  `json:"ip"      yaml:"ip"      validate:"required,ip"`
	DNSPtr *string `json:"dns_ptr" yaml:"dns_ptr"`
}

// DNSPtrEntry is one reverse DNS mapping on an IPv6 network.
type DNSPtrEntry struct {
	IP     string `json:"ip"      yaml:"ip"`
	DNSPtr string `json:"dns_ptr" yaml:"dns_ptr"`
}

// Price is a single gross/net price pair quoted by the provider.
type Price struct {
	Net   string `json:"net"   yaml:"net"`
	Gross string `json:"gross" yaml:"gross"`
}

// LocationPrice quotes a resource's price in one location.
type LocationPrice struct {
	Location     string `json:"location"      yaml:"location"`
	PriceHourly  Price  `json:"price_hourly"  yaml:"price_hourly"`
	PriceMonthly Price  `json:"price_monthly" yaml:"price_monthly"`
}
