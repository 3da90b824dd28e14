package fulfillment

import "consolidator/internal/core/domain/model/kernel"

// LocationDistribution summarizes how an order's fulfillment sub-orders are
// spread across warehouse locations. It is derived data: the location analyzer
// computes it fresh per evaluation and it is never persisted.
//
// Sub-orders without an assigned location are excluded from UniqueLocations and
// SubOrdersPerLocation but still counted in TotalSubOrders.
type LocationDistribution struct {
	// UniqueLocations holds the distinct assigned locations, ordered by
	// identifier for deterministic output regardless of input order.
	UniqueLocations []kernel.LocationID

	// SubOrdersPerLocation counts sub-orders per assigned location identifier.
	SubOrdersPerLocation map[string]int

	// TotalSubOrders is the number of sub-orders examined, including those
	// without an assigned location.
	TotalSubOrders int

	// NeedsConsolidation is true iff more than one distinct location is assigned.
	// A single foreign location does NOT need consolidation: the business rule
	// fires only on genuinely mixed locations.
	NeedsConsolidation bool

	// AllAtTarget is true iff every examined sub-order is assigned to the
	// target location. It is false for an empty sub-order set.
	AllAtTarget bool
}

// SingleLocation reports whether all assigned sub-orders sit in exactly one
// location (which may or may not be the target).
func (d LocationDistribution) SingleLocation() bool {
	return len(d.UniqueLocations) == 1
}
