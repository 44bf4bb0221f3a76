// Package skylift provides types, interfaces, and helpers for working with
// the Skylift Cloud API.
//
// # Overview
//
// The skylift package defines the domain types (e.g., Server, Volume,
// Network, FloatingIP) and the interfaces for resource-oriented clients
// (e.g., ServersClient, VolumesClient). A concrete implementation of these
// clients is provided by the slclient package, which wires configuration,
// transport, and authentication. Most consumers should import slclient to
// construct a client and then interact with the resource client interfaces
// exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/skylift-io/skylift-go/pkg/skylift"
//	  "github.com/skylift-io/skylift-go/pkg/slclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := slclient.New(&skylift.Config{Token: "..."})
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of servers
//	  servers, err := cli.Servers().List(ctx, &skylift.ServerListParams{
//	    ListParams: skylift.ListParams{PerPage: 50},
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = servers
//	}
//
// # Queries and pagination
//
// Every List method takes a typed params struct whose fields encode as query
// parameters only when set; multi-valued filters such as status and sort
// encode as repeated keys. The package also provides helpers for iterating
// or collecting paginated results:
//
//	fetch := func(ctx context.Context, page int) ([]skylift.Server, *skylift.Pagination, error) {
//	  list, err := cli.Servers().List(ctx, &skylift.ServerListParams{
//	    ListParams: skylift.ListParams{Page: page},
//	  })
//	  if err != nil { return nil, nil, err }
//	  return list.Servers, list.Meta.Pagination, nil
//	}
//
//	it := skylift.NewPageIterator(fetch, nil)
//	for it.HasNext() {
//	  servers, err := it.Next(ctx)
//	  if err != nil { break }
//	  _ = servers
//	}
//
// or fetch all pages at once:
//
//	all, err := skylift.CollectPages(ctx, fetch, &skylift.PageOptions{MaxPages: 5})
//	if err != nil { /* handle error */ }
//	_ = all
//
// # Errors
//
// Every failure surfaces as an *APIError carrying the provider's message and
// code verbatim when a response was received, a synthesized code (TIMEOUT,
// NETWORK_ERROR, VALIDATION_ERROR, ...) when it was not, and the HTTP status
// of the exchange (0 when no exchange completed). Helpers such as IsNotFound,
// IsTimeout, and IsValidationError make it easy to branch on common cases.
//
// # Actions
//
// Mutating calls never block on the provider: they return the created or
// changed resource together with an Action reference. Waiting is explicit
// via cli.Actions().PollUntilDone (one action) or PollManyUntilDone (a
// concurrent join over several), both governed by PollOptions.
//
// # Resources
//
// Resource clients follow a consistent CRUD-and-actions pattern across
// Skylift resources (Servers, Images, ISOs, Volumes, Networks, Firewalls,
// FloatingIPs, LoadBalancers, Certificates, SSHKeys, PlacementGroups,
// Locations, Datacenters, ServerTypes, LoadBalancerTypes, Pricing, Zones,
// etc.). See the individual interfaces in resource_clients.go for the full
// surface area.
package skylift
