// Package kernel provides core domain primitives for the consolidator system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers (job IDs) with validation
//     and comparison capabilities
//   - LocationID: a value object wrapping a warehouse location identifier as
//     issued by the remote order provider
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use by the job processor.
package kernel
