// Package slclient provides the primary entry point for constructing a
// Skylift Cloud API client that implements the skylift.Client interface.
//
// It layers endpoint normalization, HTTP transport, and bearer token
// authentication on top of the resource interfaces and types defined in the
// skylift package. Most applications should import slclient to build a
// client, then use the returned skylift.Client to access resource-specific
// clients, for example Servers(), Volumes(), Zones(), etc.
//
// Quick start
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
//
//	  // Minimal: a token against the public endpoint.
//	  cli, err := slclient.NewWithToken("my-api-token")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a full configuration:
//	  cli, err = slclient.New(&skylift.Config{
//	    Token:    "my-api-token",
//	    Endpoint: "https://api.skylift.cloud/v1",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the skylift.Client interface
//	  servers, err := cli.Servers().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = servers
//	}
//
// The token is validated at construction time: a missing or blank token
// fails with code INVALID_TOKEN before any request is made. The endpoint
// defaults to the public API; values without a scheme get "https://"
// prepended and trailing slashes are trimmed.
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken and
// NewWithEndpoint that wrap New with the appropriate configuration.
package slclient
