// Package http is the inbound HTTP adapter: the provider webhook endpoint plus
// operator-facing health and status endpoints.
package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"consolidator/internal/core/application/usecases/queries"
	"consolidator/internal/jobs"

	"github.com/labstack/echo/v4"
)

// HmacHeader carries the webhook signature computed by the provider.
const HmacHeader = "X-Shopify-Hmac-Sha256"

// DefaultSettleDelay is how long after order creation a consolidation job
// becomes eligible, giving the provider's own fulfillment assignment time to
// settle.
const DefaultSettleDelay = time.Minute

// Error is the JSON error body returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// orderCreatedPayload is the slice of the orders/create webhook body we need.
type orderCreatedPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Server handles HTTP requests and coordinates with the job queue and query
// handlers. It verifies every webhook signature before touching the payload.
type Server struct {
	queue         *jobs.Queue
	statusHandler queries.GetProcessorStatusQueryHandler
	webhookSecret string
	settleDelay   time.Duration
	logger        *slog.Logger
}

// NewServer creates the HTTP server. A non-positive settle delay falls back to
// DefaultSettleDelay.
func NewServer(
	queue *jobs.Queue,
	statusHandler queries.GetProcessorStatusQueryHandler,
	webhookSecret string,
	settleDelay time.Duration,
	logger *slog.Logger,
) *Server {
	if settleDelay <= 0 {
		settleDelay = DefaultSettleDelay
	}

	return &Server{
		queue:         queue,
		statusHandler: statusHandler,
		webhookSecret: webhookSecret,
		settleDelay:   settleDelay,
		logger:        logger.With("component", "http_server"),
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/webhooks/orders/create", s.HandleOrderCreated)
	e.GET("/status", s.GetStatus)
	e.GET("/health", s.GetHealth)
}

// HandleOrderCreated handles POST /webhooks/orders/create.
// Schedules a consolidation job for the new order, eligible after the settle
// delay. Always returns 200 for well-formed authentic webhooks, including
// duplicates for already processed orders, so the provider does not retry.
func (s *Server) HandleOrderCreated(ctx echo.Context) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Failed to read request body",
		})
	}

	if !s.verifySignature(body, ctx.Request().Header.Get(HmacHeader)) {
		s.logger.Warn("Webhook signature verification failed")
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Invalid webhook signature",
		})
	}

	var payload orderCreatedPayload
	if err := json.Unmarshal(body, &payload); err != nil || payload.ID == 0 {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid webhook payload",
		})
	}

	orderID := strconv.FormatInt(payload.ID, 10)
	eligibleAt := time.Now().Add(s.settleDelay)

	jobID, err := s.queue.Schedule(orderID, eligibleAt)
	if err != nil {
		if errors.Is(err, jobs.ErrOrderAlreadyProcessed) {
			return ctx.JSON(http.StatusOK, map[string]string{
				"status": "already_processed",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to schedule consolidation",
		})
	}

	s.logger.Info("Webhook accepted, consolidation scheduled",
		"orderId", orderID,
		"orderName", payload.Name,
		"jobId", jobID.String(),
		"eligibleAt", eligibleAt,
	)
	return ctx.JSON(http.StatusOK, map[string]string{
		"status": "scheduled",
		"jobId":  jobID.String(),
	})
}

// GetStatus handles GET /status - the operator-facing processor snapshot.
func (s *Server) GetStatus(ctx echo.Context) error {
	status, err := s.statusHandler.Handle(ctx.Request().Context(), queries.NewGetProcessorStatusQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve processor status",
		})
	}

	return ctx.JSON(http.StatusOK, status)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// verifySignature checks the webhook body against the shared-secret HMAC.
// Comparison is constant time.
func (s *Server) verifySignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(s.webhookSecret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
