package kernel

import (
	"consolidator/internal/pkg/errs"
	"consolidator/internal/pkg/guard"
)

// ErrLocationIDIsNotConstructed is returned when attempting to use an improperly
// initialized LocationID. LocationIDs must be created via NewLocationID.
var ErrLocationIDIsNotConstructed = errs.NewValueIsRequiredError(
	"location ID must be created via NewLocationID constructor")

// ErrLocationIDIsRequired is returned when an empty identifier is passed to NewLocationID.
var ErrLocationIDIsRequired = errs.NewValueIsRequiredError("location ID")

// LocationID represents a warehouse location identifier owned by the remote
// order provider (e.g. "gid://shopify/Location/67642458351"). The consolidator
// never interprets the identifier; it only compares locations for equality when
// deciding whether an order's fulfillment is split across warehouses.
//
// LocationID is an immutable value object. The zero value is invalid and fails
// validation - use NewLocationID to create instances.
//
// Example:
//
//	target, err := kernel.NewLocationID("gid://shopify/Location/67642458351")
//	if err != nil {
//	    // Handle validation error
//	}
type LocationID struct { //nolint:recvcheck //using for validation
	id    string
	guard guard.ConstructorGuard
}

// NewLocationID creates a LocationID from the provider's identifier string.
// Returns ErrLocationIDIsRequired if the identifier is empty.
func NewLocationID(id string) (LocationID, error) {
	if id == "" {
		return LocationID{}, ErrLocationIDIsRequired
	}

	return LocationID{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the provider's identifier string.
func (l LocationID) String() string {
	return l.id
}

// IsEqual compares two location identifiers by value.
func (l LocationID) IsEqual(other LocationID) bool {
	return l.id == other.id
}

// Validate ensures the LocationID was created through NewLocationID.
func (l LocationID) Validate() error {
	return l.guard.Validate(ErrLocationIDIsNotConstructed)
}
