// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"consolidator/internal/pkg/guard"
)

var (
	ErrGetProcessorStatusQueryIsNotConstructed = errors.New(
		"GetProcessorStatusQuery must be created via NewGetProcessorStatusQuery constructor",
	)
)

// GetProcessorStatusQuery retrieves the current state of the job processor.
// Returns queue counters and the orders being consolidated right now, for
// monitoring and operational checks.
//
// Example:
//
//	query := NewGetProcessorStatusQuery()
//	handler := NewGetProcessorStatusQueryHandler(processor)
//
//	status, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve processor status: %w", err)
//	}
//
//	fmt.Printf("Running: %v, in flight: %d\n",
//	    status.IsRunning, len(status.CurrentlyProcessing))
type GetProcessorStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProcessorStatusQuery creates a query to retrieve processor status.
// This is a parameterless query that snapshots the whole processor state.
func NewGetProcessorStatusQuery() GetProcessorStatusQuery {
	return GetProcessorStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProcessorStatusQueryIsNotConstructed if validation fails.
func (q GetProcessorStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetProcessorStatusQueryIsNotConstructed)
}
