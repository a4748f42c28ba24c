// Package delivery defines the contract every transport front end of the
// application fulfills.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application
// entrypoint. Serve blocks until the listener stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
