// Package delivery defines the contract every transport entrypoint
// (HTTP server, worker, ...) satisfies so the bootstrap can start them
// uniformly.
package delivery

import "context"

// Delivery is a long-running transport serving the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
