package commands

import (
	"errors"

	"consolidator/internal/pkg/guard"
)

var (
	ErrConsolidateOrderCommandIsNotConstructed = errors.New(
		"ConsolidateOrderCommand must be created via NewConsolidateOrderCommand constructor",
	)
	ErrOrderIDIsRequired = errors.New("order ID is required")
)

// ConsolidateOrderCommand represents a request to evaluate one order's
// fulfillment locations and consolidate them into the target location if they
// are split across warehouses.
//
// Example:
//
//	cmd, err := NewConsolidateOrderCommand("gid://shopify/Order/5678901234")
//	if err != nil {
//	    return fmt.Errorf("invalid order reference: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("consolidation failed: %w", err)
//	}
//	fmt.Printf("action=%s moved=%d", result.Action, result.MovedSubOrders)
type ConsolidateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewConsolidateOrderCommand creates a command to consolidate a single order.
// Validates that the order identifier is not empty.
func NewConsolidateOrderCommand(orderID string) (ConsolidateOrderCommand, error) {
	command := ConsolidateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return ConsolidateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConsolidateOrderCommandIsNotConstructed if validation fails.
func (c ConsolidateOrderCommand) Validate() error {
	return c.guard.Validate(ErrConsolidateOrderCommandIsNotConstructed)
}

// OrderID returns the provider's identifier of the order to evaluate.
func (c ConsolidateOrderCommand) OrderID() string {
	return c.orderID
}

func (c *ConsolidateOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}
