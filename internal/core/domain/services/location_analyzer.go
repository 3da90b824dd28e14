package services

import (
	"sort"

	"consolidator/internal/core/domain/model/fulfillment"
	"consolidator/internal/core/domain/model/kernel"
)

// LocationAnalyzer is a domain service that maps a set of fulfillment
// sub-orders to a location-distribution summary.
//
// Key properties:
//   - Deterministic: the same input multiset always yields the same output,
//     independent of input ordering (set semantics for location identity)
//   - Pure: no side effects, no I/O
//   - Sub-orders lacking an assigned location are excluded from the distinct
//     location set but still counted in the total
//
// Business rule encoded here: consolidation is needed iff the sub-orders are
// assigned to more than one distinct location. A single location that is not
// the target does NOT need consolidation on its own.
//
// Example usage:
//
//	analyzer := services.NewLocationAnalyzer()
//	distribution := analyzer.Analyze(order.SubOrders, targetLocation)
//	if distribution.NeedsConsolidation {
//	    // relocate sub-orders not at the target
//	}
type LocationAnalyzer struct{}

// NewLocationAnalyzer creates a new LocationAnalyzer instance.
func NewLocationAnalyzer() LocationAnalyzer {
	return LocationAnalyzer{}
}

// Analyze derives the LocationDistribution for the given sub-orders.
//
// An empty sub-order set yields zero unique locations, NeedsConsolidation=false
// and AllAtTarget=false.
func (LocationAnalyzer) Analyze(
	subOrders []fulfillment.SubOrder,
	target kernel.LocationID,
) fulfillment.LocationDistribution {
	seen := make(map[string]kernel.LocationID)
	counts := make(map[string]int)
	allAtTarget := len(subOrders) > 0

	for _, subOrder := range subOrders {
		if !subOrder.IsAssignedTo(target) {
			allAtTarget = false
		}

		if subOrder.AssignedLocationID == nil {
			continue
		}

		location := *subOrder.AssignedLocationID
		seen[location.String()] = location
		counts[location.String()]++
	}

	unique := make([]kernel.LocationID, 0, len(seen))
	for _, location := range seen {
		unique = append(unique, location)
	}
	sort.Slice(unique, func(i, j int) bool {
		return unique[i].String() < unique[j].String()
	})

	return fulfillment.LocationDistribution{
		UniqueLocations:      unique,
		SubOrdersPerLocation: counts,
		TotalSubOrders:       len(subOrders),
		NeedsConsolidation:   len(unique) > 1,
		AllAtTarget:          allAtTarget,
	}
}
