// Package services contains stateless domain services for the consolidator.
//
// The package currently holds the LocationAnalyzer, the pure decision function
// at the heart of the system: given an order's fulfillment sub-orders and the
// configured target location, it derives the LocationDistribution that tells
// the consolidation engine whether any relocation is needed at all.
//
// Domain services here perform no I/O and hold no state; they operate purely
// on domain model values so the business rule can be tested exhaustively
// without any provider in the loop.
package services
