package cmd

import (
	"log/slog"

	inhttp "consolidator/internal/adapters/in/http"
	"consolidator/internal/adapters/out/shopify"
	"consolidator/internal/core/application/usecases/commands"
	"consolidator/internal/core/application/usecases/queries"
	"consolidator/internal/core/domain/model/kernel"
	"consolidator/internal/jobs"
)

// CompositionRoot wires the whole application object graph: the Shopify
// client, the consolidation engine, the job queue and processor, and the
// HTTP server over all of them.
type CompositionRoot struct {
	configs Config
	logger  *slog.Logger

	queue      *jobs.Queue
	processor  *jobs.Processor
	jobManager *jobs.JobManager
}

// NewCompositionRoot builds the object graph from configuration.
// Fails when the Shopify credentials or the target location are invalid.
func NewCompositionRoot(configs Config, logger *slog.Logger) (*CompositionRoot, error) {
	client, err := shopify.NewClient(configs.ShopifyShopDomain, configs.ShopifyAccessToken, logger)
	if err != nil {
		return nil, err
	}

	target, err := kernel.NewLocationID(configs.TargetLocationID)
	if err != nil {
		return nil, err
	}

	engine := commands.NewConsolidateOrderCommandHandler(client, target, logger)
	queue := jobs.NewQueue(logger)
	processor := jobs.NewProcessor(queue, &engine, logger)
	jobManager := jobs.NewJobManager(processor, queue, configs.RetentionWindow, logger)

	return &CompositionRoot{
		configs:    configs,
		logger:     logger,
		queue:      queue,
		processor:  processor,
		jobManager: jobManager,
	}, nil
}

// JobManager returns the manager owning all background cadences.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return c.jobManager
}

// CreateGetProcessorStatusQueryHandler builds the operator status query handler.
func (c *CompositionRoot) CreateGetProcessorStatusQueryHandler() queries.GetProcessorStatusQueryHandler {
	return queries.NewGetProcessorStatusQueryHandler(c.processor)
}

// CreateHTTPServer builds the inbound HTTP adapter over the job queue.
func (c *CompositionRoot) CreateHTTPServer() *inhttp.Server {
	return inhttp.NewServer(
		c.queue,
		c.CreateGetProcessorStatusQueryHandler(),
		c.configs.ShopifyWebhookSecret,
		c.configs.SettleDelay,
		c.logger,
	)
}
