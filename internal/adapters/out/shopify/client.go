// Package shopify implements the order provider port against the Shopify
// Admin GraphQL API.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"consolidator/internal/core/domain/model/fulfillment"
	"consolidator/internal/core/domain/model/kernel"
	"consolidator/internal/pkg/errs"

	"golang.org/x/time/rate"
)

const (
	apiVersion = "2023-10"

	// minCallInterval paces outbound Admin API calls so sequential per-sub-order
	// moves stay under the provider's rate limits.
	minCallInterval = 500 * time.Millisecond

	requestTimeout = 10 * time.Second
)

const fetchOrderQuery = `
query getOrderFulfillmentOrders($id: ID!) {
  order(id: $id) {
    id
    name
    fulfillmentOrders(first: 50) {
      edges {
        node {
          id
          status
          assignedLocation {
            location {
              id
            }
          }
          lineItems(first: 100) {
            edges {
              node {
                id
                totalQuantity
              }
            }
          }
        }
      }
    }
  }
}`

const moveSubOrderMutation = `
mutation moveFulfillmentOrder($id: ID!, $newLocationId: ID!) {
  fulfillmentOrderMove(id: $id, newLocationId: $newLocationId) {
    movedFulfillmentOrder {
      id
      status
      assignedLocation {
        location {
          id
        }
      }
    }
    userErrors {
      field
      message
    }
  }
}`

// Client is the Admin GraphQL client implementing ports.OrderProvider.
// All calls pass through an outbound rate limiter enforcing a minimum
// inter-call interval.
type Client struct {
	endpoint    string
	accessToken string
	httpClient  *http.Client
	limiter     *rate.Limiter
	logger      *slog.Logger
}

// NewClient creates a client for the given shop. The shop domain may carry an
// explicit scheme; otherwise https is assumed.
func NewClient(shopDomain string, accessToken string, logger *slog.Logger) (*Client, error) {
	if shopDomain == "" {
		return nil, errs.NewValueIsRequiredError("shopDomain")
	}
	if accessToken == "" {
		return nil, errs.NewValueIsRequiredError("accessToken")
	}

	base := shopDomain
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}

	return &Client{
		endpoint:    fmt.Sprintf("%s/admin/api/%s/graphql.json", base, apiVersion),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: requestTimeout},
		limiter:     rate.NewLimiter(rate.Every(minCallInterval), 1),
		logger:      logger.With("component", "shopify_client"),
	}, nil
}

// FetchOrder reads an order and its fulfillment orders in a single call.
// Returns an object-not-found error when the provider has no order for the id.
func (c *Client) FetchOrder(ctx context.Context, orderID string) (*fulfillment.Order, error) {
	var response orderResponse
	err := c.execute(ctx, graphQLRequest{
		Query:     fetchOrderQuery,
		Variables: map[string]any{"id": orderGID(orderID)},
	}, &response)
	if err != nil {
		return nil, err
	}

	if len(response.Errors) > 0 {
		return nil, fmt.Errorf("fetch order query failed: %s", response.Errors[0].Message)
	}
	if response.Data.Order == nil {
		return nil, errs.NewObjectNotFoundError("order", orderID)
	}

	order, err := toDomain(response.Data.Order)
	if err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "Fetched order",
		"orderId", order.ID,
		"name", order.Name,
		"subOrders", len(order.SubOrders),
	)
	return order, nil
}

// MoveSubOrder asks the provider to relocate one fulfillment order to the
// target location. Business-rule rejections come back as user errors in the
// result; only transport and query-level failures return an error.
func (c *Client) MoveSubOrder(
	ctx context.Context,
	subOrderID string,
	target kernel.LocationID,
) (fulfillment.MoveResult, error) {
	if err := target.Validate(); err != nil {
		return fulfillment.MoveResult{}, err
	}

	var response moveResponse
	err := c.execute(ctx, graphQLRequest{
		Query: moveSubOrderMutation,
		Variables: map[string]any{
			"id":            subOrderID,
			"newLocationId": target.String(),
		},
	}, &response)
	if err != nil {
		return fulfillment.MoveResult{}, err
	}

	if len(response.Errors) > 0 {
		return fulfillment.MoveResult{}, fmt.Errorf("move mutation failed: %s", response.Errors[0].Message)
	}
	payload := response.Data.FulfillmentOrderMove
	if payload == nil {
		return fulfillment.MoveResult{}, fmt.Errorf("move mutation returned no payload for %s", subOrderID)
	}

	result := fulfillment.MoveResult{
		SubOrderID: subOrderID,
		UserErrors: toUserErrors(payload.UserErrors),
	}
	if moved := payload.MovedFulfillmentOrder; moved != nil {
		result.Status = moved.Status
		if loc := moved.AssignedLocation; loc != nil && loc.Location != nil {
			result.NewLocationID = loc.Location.ID
		}
	}

	c.logger.InfoContext(ctx, "Move requested",
		"subOrderId", subOrderID,
		"targetLocationId", target.String(),
		"userErrors", len(result.UserErrors),
	)
	return result, nil
}

// execute runs one rate-limited GraphQL call and decodes the response into out.
func (c *Client) execute(ctx context.Context, request graphQLRequest, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(request)
	if err != nil {
		return err
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("X-Shopify-Access-Token", c.accessToken)

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return err
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		responseBody, _ := io.ReadAll(io.LimitReader(httpResponse.Body, 1024))
		return fmt.Errorf("shopify responded with status %d: %s", httpResponse.StatusCode, responseBody)
	}

	return json.NewDecoder(httpResponse.Body).Decode(out)
}

// orderGID converts a plain webhook order id into the Admin API global id.
// Ids that are already global pass through unchanged.
func orderGID(orderID string) string {
	if strings.HasPrefix(orderID, "gid://") {
		return orderID
	}
	return "gid://shopify/Order/" + orderID
}
