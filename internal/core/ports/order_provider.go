package ports

import (
	"context"

	"consolidator/internal/core/domain/model/fulfillment"
	"consolidator/internal/core/domain/model/kernel"
)

// OrderProvider defines the contract with the remote order data provider
// (the Shopify Admin API in production). It is the only channel through which
// the consolidation engine reads orders and requests sub-order relocation.
//
// Both operations are remote calls. The caller performs no transport-level
// retries here; retry policy lives at the job level in the processor/queue.
type OrderProvider interface {
	// FetchOrder retrieves an order together with its fulfillment sub-orders.
	// Returns an error matching errs.ErrObjectNotFound (via errors.Is) when the
	// provider has no order for the given identifier; that condition is
	// terminal and must not be retried by the caller.
	FetchOrder(ctx context.Context, orderID string) (*fulfillment.Order, error)

	// MoveSubOrder requests relocation of a single sub-order to the target
	// location. Business-rule rejections from the provider are returned as
	// UserErrors inside the MoveResult, not as an error; a non-nil error
	// indicates a transport or protocol failure.
	MoveSubOrder(ctx context.Context, subOrderID string, target kernel.LocationID) (fulfillment.MoveResult, error)
}
