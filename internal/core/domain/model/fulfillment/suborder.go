package fulfillment

import "consolidator/internal/core/domain/model/kernel"

// Order is the provider's view of an e-commerce order together with its
// fulfillment sub-orders. The ID is the provider's opaque identifier
// (e.g. "gid://shopify/Order/5678901234").
type Order struct {
	ID        string
	Name      string
	SubOrders []SubOrder
}

// SubOrder is a provider-side grouping of an order's line items assigned to a
// single stocking location for shipment (a Shopify fulfillment order).
//
// Invariant (enforced by the provider): a sub-order has at most one assigned
// location at a time. AssignedLocationID is nil when the provider has not yet
// assigned one.
type SubOrder struct {
	ID                 string
	Status             string
	AssignedLocationID *kernel.LocationID
	LineItems          []LineItem
}

// LineItem references a quantity of a product within a sub-order.
type LineItem struct {
	ID       string
	Quantity int
}

// IsAssignedTo reports whether the sub-order is currently assigned to the given
// location. Sub-orders without an assigned location are never "at" any location.
func (s SubOrder) IsAssignedTo(location kernel.LocationID) bool {
	return s.AssignedLocationID != nil && s.AssignedLocationID.IsEqual(location)
}

// MoveResult is the provider's response to a request to relocate a sub-order.
// UserErrors carries business-rule rejections from the provider; they are data,
// not transport failures, and the caller is expected to continue past them.
type MoveResult struct {
	SubOrderID    string
	NewLocationID string
	Status        string
	UserErrors    []MoveUserError
}

// MoveUserError is a single business-rule rejection returned by the provider
// for a move request (e.g. "fulfillment order is already closed").
type MoveUserError struct {
	Field   []string
	Message string
}
