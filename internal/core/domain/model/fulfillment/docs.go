// Package fulfillment contains the read model for orders and their fulfillment
// sub-orders as owned by the remote order provider.
//
// Unlike the job aggregate, nothing in this package is mutated locally: the
// provider is the system of record for orders, sub-orders, and their assigned
// locations. The consolidator only reads these structures and requests
// relocation through the provider port, so the types here are plain data
// carriers rather than encapsulated aggregates.
//
// The package also defines LocationDistribution, the ephemeral summary the
// location analyzer derives from a set of sub-orders. A distribution is
// computed fresh on every evaluation and never persisted.
package fulfillment
