package shopify_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"consolidator/internal/adapters/out/shopify"
	"consolidator/internal/core/domain/model/kernel"
	"consolidator/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type capturedRequest struct {
	accessToken string
	variables   map[string]any
}

// newTestClient points the client at a stub Admin API returning responseBody.
func newTestClient(t *testing.T, responseBody string, captured *capturedRequest) *shopify.Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/api/2023-10/graphql.json", r.URL.Path)

		if captured != nil {
			captured.accessToken = r.Header.Get("X-Shopify-Access-Token")
			var body struct {
				Variables map[string]any `json:"variables"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			captured.variables = body.Variables
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(responseBody))
	}))
	t.Cleanup(server.Close)

	client, err := shopify.NewClient(server.URL, "test-token", testLogger())
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("requires shop domain and access token", func(t *testing.T) {
		_, err := shopify.NewClient("", "token", testLogger())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = shopify.NewClient("example.myshopify.com", "", testLogger())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestClient_FetchOrder(t *testing.T) {
	t.Run("maps order with mixed fulfillment orders", func(t *testing.T) {
		// Given: two assigned fulfillment orders and one without a location
		response := `{
			"data": {
				"order": {
					"id": "gid://shopify/Order/1001",
					"name": "#1001",
					"fulfillmentOrders": {
						"edges": [
							{"node": {
								"id": "gid://shopify/FulfillmentOrder/1",
								"status": "OPEN",
								"assignedLocation": {"location": {"id": "gid://shopify/Location/10"}},
								"lineItems": {"edges": [{"node": {"id": "li-1", "totalQuantity": 2}}]}
							}},
							{"node": {
								"id": "gid://shopify/FulfillmentOrder/2",
								"status": "OPEN",
								"assignedLocation": {"location": {"id": "gid://shopify/Location/20"}},
								"lineItems": {"edges": []}
							}},
							{"node": {
								"id": "gid://shopify/FulfillmentOrder/3",
								"status": "SCHEDULED",
								"assignedLocation": null,
								"lineItems": {"edges": []}
							}}
						]
					}
				}
			}
		}`
		captured := &capturedRequest{}
		client := newTestClient(t, response, captured)

		// When
		order, err := client.FetchOrder(context.Background(), "1001")

		// Then
		require.NoError(t, err)
		assert.Equal(t, "gid://shopify/Order/1001", order.ID)
		assert.Equal(t, "#1001", order.Name)
		require.Len(t, order.SubOrders, 3)

		assert.Equal(t, "gid://shopify/FulfillmentOrder/1", order.SubOrders[0].ID)
		require.NotNil(t, order.SubOrders[0].AssignedLocationID)
		assert.Equal(t, "gid://shopify/Location/10", order.SubOrders[0].AssignedLocationID.String())
		require.Len(t, order.SubOrders[0].LineItems, 1)
		assert.Equal(t, 2, order.SubOrders[0].LineItems[0].Quantity)

		assert.Nil(t, order.SubOrders[2].AssignedLocationID)

		// And: the webhook id was converted to a global id, token attached
		assert.Equal(t, "gid://shopify/Order/1001", captured.variables["id"])
		assert.Equal(t, "test-token", captured.accessToken)
	})

	t.Run("missing order maps to object not found", func(t *testing.T) {
		// Given
		client := newTestClient(t, `{"data": {"order": null}}`, nil)

		// When
		_, err := client.FetchOrder(context.Background(), "9999")

		// Then
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("top-level graphql errors fail the call", func(t *testing.T) {
		// Given
		client := newTestClient(t, `{"errors": [{"message": "throttled"}]}`, nil)

		// When
		_, err := client.FetchOrder(context.Background(), "1001")

		// Then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "throttled")
	})

	t.Run("non-200 response fails the call", func(t *testing.T) {
		// Given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		t.Cleanup(server.Close)
		client, err := shopify.NewClient(server.URL, "bad-token", testLogger())
		require.NoError(t, err)

		// When
		_, err = client.FetchOrder(context.Background(), "1001")

		// Then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})
}

func TestClient_MoveSubOrder(t *testing.T) {
	target, err := kernel.NewLocationID("gid://shopify/Location/10")
	require.NoError(t, err)

	t.Run("maps successful move", func(t *testing.T) {
		// Given
		response := `{
			"data": {
				"fulfillmentOrderMove": {
					"movedFulfillmentOrder": {
						"id": "gid://shopify/FulfillmentOrder/2",
						"status": "OPEN",
						"assignedLocation": {"location": {"id": "gid://shopify/Location/10"}}
					},
					"userErrors": []
				}
			}
		}`
		captured := &capturedRequest{}
		client := newTestClient(t, response, captured)

		// When
		result, err := client.MoveSubOrder(context.Background(), "gid://shopify/FulfillmentOrder/2", target)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "gid://shopify/FulfillmentOrder/2", result.SubOrderID)
		assert.Equal(t, "OPEN", result.Status)
		assert.Equal(t, "gid://shopify/Location/10", result.NewLocationID)
		assert.Empty(t, result.UserErrors)
		assert.Equal(t, "gid://shopify/Location/10", captured.variables["newLocationId"])
	})

	t.Run("user errors are data, not an error", func(t *testing.T) {
		// Given
		response := `{
			"data": {
				"fulfillmentOrderMove": {
					"movedFulfillmentOrder": null,
					"userErrors": [{"field": ["id"], "message": "cannot move a closed fulfillment order"}]
				}
			}
		}`
		client := newTestClient(t, response, nil)

		// When
		result, err := client.MoveSubOrder(context.Background(), "gid://shopify/FulfillmentOrder/9", target)

		// Then
		require.NoError(t, err)
		require.Len(t, result.UserErrors, 1)
		assert.Equal(t, "cannot move a closed fulfillment order", result.UserErrors[0].Message)
	})

	t.Run("rejects unconstructed target location", func(t *testing.T) {
		// Given
		client := newTestClient(t, `{}`, nil)

		// When
		_, err := client.MoveSubOrder(context.Background(), "gid://shopify/FulfillmentOrder/1", kernel.LocationID{})

		// Then
		require.Error(t, err)
	})
}
