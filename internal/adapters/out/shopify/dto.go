package shopify

import (
	"consolidator/internal/core/domain/model/fulfillment"
	"consolidator/internal/core/domain/model/kernel"
)

// graphQLRequest is the wire envelope for every Admin API call.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphQLError is a top-level GraphQL error, distinct from mutation userErrors.
type graphQLError struct {
	Message string `json:"message"`
}

type orderResponse struct {
	Data struct {
		Order *orderDTO `json:"order"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type orderDTO struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	FulfillmentOrders struct {
		Edges []struct {
			Node fulfillmentOrderDTO `json:"node"`
		} `json:"edges"`
	} `json:"fulfillmentOrders"`
}

type fulfillmentOrderDTO struct {
	ID               string               `json:"id"`
	Status           string               `json:"status"`
	AssignedLocation *assignedLocationDTO `json:"assignedLocation"`
	LineItems        struct {
		Edges []struct {
			Node lineItemDTO `json:"node"`
		} `json:"edges"`
	} `json:"lineItems"`
}

type assignedLocationDTO struct {
	Location *struct {
		ID string `json:"id"`
	} `json:"location"`
}

type lineItemDTO struct {
	ID            string `json:"id"`
	TotalQuantity int    `json:"totalQuantity"`
}

type moveResponse struct {
	Data struct {
		FulfillmentOrderMove *struct {
			MovedFulfillmentOrder *struct {
				ID               string               `json:"id"`
				Status           string               `json:"status"`
				AssignedLocation *assignedLocationDTO `json:"assignedLocation"`
			} `json:"movedFulfillmentOrder"`
			UserErrors []userErrorDTO `json:"userErrors"`
		} `json:"fulfillmentOrderMove"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type userErrorDTO struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// toDomain maps the provider's order shape onto the domain model. Fulfillment
// orders whose assigned location is absent come through with a nil location.
func toDomain(dto *orderDTO) (*fulfillment.Order, error) {
	order := &fulfillment.Order{
		ID:   dto.ID,
		Name: dto.Name,
	}

	for _, edge := range dto.FulfillmentOrders.Edges {
		subOrder := fulfillment.SubOrder{
			ID:     edge.Node.ID,
			Status: edge.Node.Status,
		}

		if loc := edge.Node.AssignedLocation; loc != nil && loc.Location != nil {
			locationID, err := kernel.NewLocationID(loc.Location.ID)
			if err != nil {
				return nil, err
			}
			subOrder.AssignedLocationID = &locationID
		}

		for _, itemEdge := range edge.Node.LineItems.Edges {
			subOrder.LineItems = append(subOrder.LineItems, fulfillment.LineItem{
				ID:       itemEdge.Node.ID,
				Quantity: itemEdge.Node.TotalQuantity,
			})
		}

		order.SubOrders = append(order.SubOrders, subOrder)
	}

	return order, nil
}

func toUserErrors(dtos []userErrorDTO) []fulfillment.MoveUserError {
	if len(dtos) == 0 {
		return nil
	}

	userErrors := make([]fulfillment.MoveUserError, 0, len(dtos))
	for _, dto := range dtos {
		userErrors = append(userErrors, fulfillment.MoveUserError{
			Field:   dto.Field,
			Message: dto.Message,
		})
	}
	return userErrors
}
