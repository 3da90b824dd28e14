package commands

// Action describes what the consolidation engine did with an order.
type Action string

const (
	// ActionConsolidated means at least one sub-order move was attempted.
	ActionConsolidated Action = "consolidated"

	// ActionNoChangeNeeded means the order required no mutation at all.
	ActionNoChangeNeeded Action = "no_change_needed"
)

// No-op reasons recorded on ConsolidationResult.Reason when the engine decides
// not to touch the order. Consolidation fires only on genuinely mixed
// locations, never merely because a sub-order is not at the target.
const (
	ReasonSingleLocation = "single location already"
	ReasonAllAtTarget    = "all already at target"
)

// MoveError records a per-sub-order failure collected during the move loop.
// Move errors do not abort the batch; remaining sub-orders are still moved.
type MoveError struct {
	SubOrderID string
	Message    string
}

// ConsolidationResult aggregates the outcome of one engine evaluation.
type ConsolidationResult struct {
	OrderID        string
	Action         Action
	Reason         string
	MovedSubOrders int
	Errors         []MoveError
}
