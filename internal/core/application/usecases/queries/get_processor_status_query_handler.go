package queries

import (
	"context"

	"consolidator/internal/jobs"
)

// GetProcessorStatusQueryHandler snapshots the job processor for read access.
// Reads directly from the in-memory queue and processor; there is no
// persistent read model behind this query.
type GetProcessorStatusQueryHandler struct {
	processor *jobs.Processor
}

// NewGetProcessorStatusQueryHandler creates a handler for status queries.
// Requires the processor whose state will be reported.
func NewGetProcessorStatusQueryHandler(processor *jobs.Processor) GetProcessorStatusQueryHandler {
	return GetProcessorStatusQueryHandler{processor: processor}
}

// Handle executes the query and returns the processor snapshot.
// The snapshot is consistent at the time of the call; counters may move the
// moment it is returned.
func (h GetProcessorStatusQueryHandler) Handle(
	_ context.Context,
	query GetProcessorStatusQuery,
) (jobs.ProcessorStatus, error) {
	if err := query.Validate(); err != nil {
		return jobs.ProcessorStatus{}, err
	}

	return h.processor.Status(), nil
}
