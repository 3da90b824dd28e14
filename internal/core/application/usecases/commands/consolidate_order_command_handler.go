package commands

import (
	"context"
	"fmt"
	"log/slog"

	"consolidator/internal/core/domain/model/fulfillment"
	"consolidator/internal/core/domain/model/kernel"
	"consolidator/internal/core/domain/services"
	"consolidator/internal/core/ports"
)

// ConsolidateOrderCommandHandler is the consolidation engine: it fetches an
// order from the remote provider, analyzes the distribution of its fulfillment
// sub-orders across warehouse locations, and relocates mixed sub-orders to the
// configured target location.
//
// Partial-failure tolerance: sub-order moves run sequentially and
// independently. Business-rule rejections (user errors) from the provider are
// collected per sub-order and never fail the evaluation. Transport failures on
// individual moves are also collected without aborting the remaining moves,
// but surface as an error afterwards so the job level retries the whole
// evaluation; sub-orders already relocated resolve as no-ops on the retry read.
//
// Example:
//
//	handler := NewConsolidateOrderCommandHandler(shopifyClient, targetLocation, logger)
//	cmd, _ := NewConsolidateOrderCommand(orderID)
//	result, err := handler.Handle(ctx, cmd)
type ConsolidateOrderCommandHandler struct {
	provider ports.OrderProvider
	analyzer services.LocationAnalyzer
	target   kernel.LocationID
	logger   *slog.Logger
}

// NewConsolidateOrderCommandHandler creates the consolidation engine.
// Requires the order-provider port and the target location all mixed orders
// are consolidated into.
func NewConsolidateOrderCommandHandler(
	provider ports.OrderProvider,
	target kernel.LocationID,
	logger *slog.Logger,
) ConsolidateOrderCommandHandler {
	return ConsolidateOrderCommandHandler{
		provider: provider,
		analyzer: services.NewLocationAnalyzer(),
		target:   target,
		logger:   logger.With("component", "consolidation_engine"),
	}
}

// Handle evaluates one order and consolidates it if needed.
//
// Returns an error matching errs.ErrObjectNotFound when the provider does not
// know the order (terminal for the caller), or a transport error when the read
// or any move failed at the transport level (retriable at the job level).
// A nil error means the returned result is final for this evaluation.
func (h *ConsolidateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd ConsolidateOrderCommand,
) (ConsolidationResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConsolidationResult{}, err
	}

	order, err := h.provider.FetchOrder(ctx, cmd.OrderID())
	if err != nil {
		return ConsolidationResult{}, fmt.Errorf("fetching order %s: %w", cmd.OrderID(), err)
	}

	distribution := h.analyzer.Analyze(order.SubOrders, h.target)
	h.logger.InfoContext(ctx, "Analyzed order locations",
		"orderId", order.ID,
		"orderName", order.Name,
		"subOrders", distribution.TotalSubOrders,
		"uniqueLocations", len(distribution.UniqueLocations),
		"needsConsolidation", distribution.NeedsConsolidation,
	)

	// The single most important business rule: consolidate only genuinely
	// mixed locations. A lone non-target location is left where it is.
	if !distribution.NeedsConsolidation {
		reason := ReasonSingleLocation
		if distribution.AllAtTarget {
			reason = ReasonAllAtTarget
		}

		h.logger.InfoContext(ctx, "No consolidation needed", "orderId", order.ID, "reason", reason)
		return ConsolidationResult{
			OrderID: order.ID,
			Action:  ActionNoChangeNeeded,
			Reason:  reason,
		}, nil
	}

	return h.consolidate(ctx, order)
}

// consolidate moves every sub-order assigned to a non-target location to the
// target, sequentially, tolerating per-item failures. Sub-orders already at
// the target and sub-orders without an assigned location are left untouched.
func (h *ConsolidateOrderCommandHandler) consolidate(
	ctx context.Context,
	order *fulfillment.Order,
) (ConsolidationResult, error) {
	result := ConsolidationResult{
		OrderID: order.ID,
		Action:  ActionConsolidated,
	}

	var transportFailure error
	for _, subOrder := range order.SubOrders {
		if subOrder.AssignedLocationID == nil || subOrder.IsAssignedTo(h.target) {
			continue
		}

		moveResult, err := h.provider.MoveSubOrder(ctx, subOrder.ID, h.target)
		if err != nil {
			h.logger.ErrorContext(ctx, "Sub-order move failed",
				"orderId", order.ID,
				"subOrderId", subOrder.ID,
				"error", err,
			)
			result.Errors = append(result.Errors, MoveError{SubOrderID: subOrder.ID, Message: err.Error()})
			if transportFailure == nil {
				transportFailure = err
			}
			continue
		}

		if len(moveResult.UserErrors) > 0 {
			for _, userError := range moveResult.UserErrors {
				h.logger.WarnContext(ctx, "Sub-order move rejected by provider",
					"orderId", order.ID,
					"subOrderId", subOrder.ID,
					"message", userError.Message,
				)
				result.Errors = append(result.Errors, MoveError{SubOrderID: subOrder.ID, Message: userError.Message})
			}
			continue
		}

		result.MovedSubOrders++
		h.logger.InfoContext(ctx, "Sub-order moved to target location",
			"orderId", order.ID,
			"subOrderId", subOrder.ID,
			"from", subOrder.AssignedLocationID.String(),
			"to", h.target.String(),
		)
	}

	if transportFailure != nil {
		return ConsolidationResult{}, fmt.Errorf(
			"consolidating order %s: moved %d sub-orders before transport failure: %w",
			order.ID, result.MovedSubOrders, transportFailure,
		)
	}

	return result, nil
}
