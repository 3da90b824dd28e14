package jobs

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"consolidator/internal/core/application/usecases/commands"
	"consolidator/internal/core/domain/model/job"
	"consolidator/internal/core/domain/model/kernel"
)

// MaxConcurrentJobs caps how many consolidation jobs may run at once.
// Due jobs beyond the cap stay scheduled and are picked up on a later tick.
const MaxConcurrentJobs = 5

// ConsolidationHandler is the slice of the consolidation engine the processor
// needs. Satisfied by commands.ConsolidateOrderCommandHandler.
type ConsolidationHandler interface {
	Handle(ctx context.Context, cmd commands.ConsolidateOrderCommand) (commands.ConsolidationResult, error)
}

// ProcessorStatus is the operator-facing health snapshot.
type ProcessorStatus struct {
	IsRunning           bool       `json:"isRunning"`
	CurrentlyProcessing []string   `json:"currentlyProcessing"`
	QueueStats          QueueStats `json:"queueStats"`
}

// Processor drives the job queue: on each tick it pulls due jobs, dispatches
// them against the consolidation engine up to the concurrency cap, and reports
// every outcome back to the queue as a state transition. No engine error is
// ever dropped at the job boundary.
//
// The in-flight set is keyed by order identifier, which enforces the
// at-most-one-active-job-per-order invariant even when duplicate events put
// two scheduled jobs for the same order in the queue.
//
// Once dispatched, a job always runs to a terminal per-attempt outcome: job
// goroutines use a background context, so stopping the tick never cancels
// work already in flight.
type Processor struct {
	queue   *Queue
	handler ConsolidationHandler
	logger  *slog.Logger

	running atomic.Bool

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewProcessor creates a processor over the given queue and engine.
func NewProcessor(queue *Queue, handler ConsolidationHandler, logger *slog.Logger) *Processor {
	return &Processor{
		queue:    queue,
		handler:  handler,
		logger:   logger.With("component", "job_processor"),
		inFlight: make(map[string]struct{}),
	}
}

// ProcessDueJobs runs one tick: pull due jobs, skip orders already in flight,
// and dispatch up to the free concurrency slots. Each selected job runs in its
// own goroutine; one job's failure never affects its siblings.
func (p *Processor) ProcessDueJobs(now time.Time) {
	due := p.queue.DueJobs(now)
	if len(due) == 0 {
		return
	}

	// Deterministic dispatch order when more jobs are due than slots.
	sort.Slice(due, func(i, j int) bool {
		return due[i].EligibleAt().Before(due[j].EligibleAt())
	})

	dispatched := p.dispatch(due)
	if dispatched > 0 {
		p.logger.Info("Dispatched due jobs", "due", len(due), "dispatched", dispatched)
	}
}

// dispatch claims free slots for due jobs and starts their goroutines.
// Returns how many jobs were started.
func (p *Processor) dispatch(due []*job.Job) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	dispatched := 0
	for _, j := range due {
		if len(p.inFlight) >= MaxConcurrentJobs {
			break
		}
		if _, active := p.inFlight[j.OrderID()]; active {
			continue
		}

		p.inFlight[j.OrderID()] = struct{}{}
		dispatched++
		go p.runJob(j.ID(), j.OrderID())
	}
	return dispatched
}

// runJob executes a single job to a terminal per-attempt outcome and always
// releases the order's in-flight slot.
func (p *Processor) runJob(jobID kernel.UUID, orderID string) {
	defer func() {
		p.mu.Lock()
		delete(p.inFlight, orderID)
		p.mu.Unlock()
	}()

	// Deliberately not tied to the tick: in-flight consolidations are never cancelled.
	ctx := context.Background()

	if err := p.queue.MarkProcessing(jobID); err != nil {
		p.logger.Warn("Skipping job that could not start", "jobId", jobID.String(), "error", err)
		return
	}

	cmd, err := commands.NewConsolidateOrderCommand(orderID)
	if err != nil {
		p.failJob(jobID, err)
		return
	}

	result, err := p.handler.Handle(ctx, cmd)
	if err != nil {
		p.failJob(jobID, err)
		return
	}

	if err := p.queue.MarkCompleted(jobID, job.Result{
		Action:         string(result.Action),
		Reason:         result.Reason,
		MovedSubOrders: result.MovedSubOrders,
		ErrorCount:     len(result.Errors),
	}); err != nil {
		p.logger.Error("Failed to record job completion", "jobId", jobID.String(), "error", err)
	}
}

func (p *Processor) failJob(jobID kernel.UUID, cause error) {
	if err := p.queue.MarkFailed(jobID, cause); err != nil {
		p.logger.Error("Failed to record job failure", "jobId", jobID.String(), "error", err)
	}
}

// Status exposes {isRunning, currentlyProcessing, queueStats} for
// health/observability integrations.
func (p *Processor) Status() ProcessorStatus {
	p.mu.Lock()
	processing := make([]string, 0, len(p.inFlight))
	for orderID := range p.inFlight {
		processing = append(processing, orderID)
	}
	p.mu.Unlock()
	sort.Strings(processing)

	return ProcessorStatus{
		IsRunning:           p.running.Load(),
		CurrentlyProcessing: processing,
		QueueStats:          p.queue.Stats(),
	}
}

func (p *Processor) setRunning(running bool) {
	p.running.Store(running)
}
