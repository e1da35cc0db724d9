// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application
// runtime. Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
