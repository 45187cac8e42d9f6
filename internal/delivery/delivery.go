// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is implemented by every transport (HTTP today) so the entrypoint
// can start them uniformly.
type Delivery interface {
	// Serve blocks, accepting and handling requests until the server stops.
	Serve(ctx context.Context) error
}
