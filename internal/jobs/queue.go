package jobs

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"consolidator/internal/core/domain/model/job"
	"consolidator/internal/core/domain/model/kernel"
)

var (
	// ErrOrderAlreadyProcessed is returned by Schedule when the order has
	// already been consolidated successfully. It is the idempotency guarantee:
	// a completed order is never rescheduled for re-evaluation.
	ErrOrderAlreadyProcessed = errors.New("order already processed")

	// ErrJobNotFound is returned by the mark operations when the job is absent,
	// e.g. already removed by cleanup. The queue state is left untouched.
	ErrJobNotFound = errors.New("job not found")
)

// DefaultRetentionWindow is how long terminal jobs stay in memory before
// Cleanup removes them.
const DefaultRetentionWindow = 24 * time.Hour

// QueueStats is an observability snapshot of the queue.
type QueueStats struct {
	Scheduled       int `json:"scheduled"`
	Processing      int `json:"processing"`
	Completed       int `json:"completed"`
	Failed          int `json:"failed"`
	Total           int `json:"total"`
	ProcessedOrders int `json:"processedOrders"`
}

// Queue is the in-memory store of deferred consolidation jobs. It owns the job
// table and the processed-order set; both are private and reachable only
// through the operations below. The processor never touches queue internals.
//
// All operations are safe for concurrent use: cron ticks and job goroutines
// run in parallel, so the job table is guarded by a mutex.
//
// State is process-lifetime only. Jobs do not survive a restart, and the
// processed-order set grows monotonically until the process exits.
type Queue struct {
	mu              sync.Mutex
	jobs            map[string]*job.Job
	processedOrders map[string]struct{}
	logger          *slog.Logger
}

// NewQueue creates an empty job queue.
func NewQueue(logger *slog.Logger) *Queue {
	return &Queue{
		jobs:            make(map[string]*job.Job),
		processedOrders: make(map[string]struct{}),
		logger:          logger.With("component", "job_queue"),
	}
}

// Schedule creates a consolidation job for the order, eligible to run at
// eligibleAt. Returns ErrOrderAlreadyProcessed without creating a job when the
// order has already reached terminal success.
//
// Each call creates a distinct job with its own queue-unique identifier; a
// permanently failed order is deliberately NOT in the processed set, so a later
// duplicate event may schedule it afresh.
func (q *Queue) Schedule(orderID string, eligibleAt time.Time) (kernel.UUID, error) {
	if orderID == "" {
		return kernel.UUID{}, job.ErrOrderIDIsRequired
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if _, done := q.processedOrders[orderID]; done {
		q.logger.Info("Order already processed, not scheduling", "orderId", orderID)
		return kernel.UUID{}, ErrOrderAlreadyProcessed
	}

	newJob, err := job.NewJob(kernel.NewUUID(), orderID, job.KindOrderConsolidation, eligibleAt, time.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	q.jobs[newJob.ID().String()] = newJob
	q.logger.Info("Job scheduled",
		"jobId", newJob.ID().String(),
		"orderId", orderID,
		"eligibleAt", eligibleAt,
	)
	return newJob.ID(), nil
}

// DueJobs returns all scheduled jobs whose eligibility time has passed.
// Pure read; no state change.
func (q *Queue) DueJobs(now time.Time) []*job.Job {
	q.mu.Lock()
	defer q.mu.Unlock()

	var due []*job.Job
	for _, j := range q.jobs {
		if j.IsDue(now) {
			due = append(due, j)
		}
	}
	return due
}

// MarkProcessing transitions a job from scheduled to processing, incrementing
// its attempt counter and recording the start time. Returns ErrJobNotFound if
// the job is absent (already cleaned up); the queue state is then untouched.
func (q *Queue) MarkProcessing(jobID kernel.UUID) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	j, ok := q.jobs[jobID.String()]
	if !ok {
		return ErrJobNotFound
	}

	return j.StartProcessing(time.Now())
}

// MarkCompleted transitions a job to the terminal completed state, records the
// result, and adds the job's order to the processed-order set so future
// Schedule calls for that order are rejected.
func (q *Queue) MarkCompleted(jobID kernel.UUID, result job.Result) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	j, ok := q.jobs[jobID.String()]
	if !ok {
		return ErrJobNotFound
	}

	if err := j.Complete(result, time.Now()); err != nil {
		return err
	}

	q.processedOrders[j.OrderID()] = struct{}{}
	q.logger.Info("Job completed",
		"jobId", jobID.String(),
		"orderId", j.OrderID(),
		"action", result.Action,
		"movedSubOrders", result.MovedSubOrders,
	)
	return nil
}

// MarkFailed records a failed attempt. While attempts remain the job goes back
// to scheduled with exponential backoff; otherwise it becomes terminally
// failed. A terminally failed order is NOT added to the processed set.
func (q *Queue) MarkFailed(jobID kernel.UUID, cause error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	j, ok := q.jobs[jobID.String()]
	if !ok {
		return ErrJobNotFound
	}

	retried, err := j.Fail(cause, time.Now())
	if err != nil {
		return err
	}

	if retried {
		q.logger.Warn("Job attempt failed, rescheduled with backoff",
			"jobId", jobID.String(),
			"orderId", j.OrderID(),
			"attempt", j.Attempt(),
			"maxAttempts", j.MaxAttempts(),
			"nextEligibleAt", j.EligibleAt(),
			"error", cause,
		)
		return nil
	}

	q.logger.Error("Job permanently failed, attempts exhausted",
		"jobId", jobID.String(),
		"orderId", j.OrderID(),
		"attempts", j.Attempt(),
		"error", cause,
	)
	return nil
}

// Cleanup removes terminal jobs whose completion timestamp is older than the
// retention window and returns how many were removed. Scheduled and processing
// jobs are never touched.
func (q *Queue) Cleanup(retention time.Duration) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	cutoff := time.Now().Add(-retention)
	removed := 0
	for id, j := range q.jobs {
		if !j.Status().IsTerminal() {
			continue
		}
		if completedAt := j.CompletedAt(); completedAt != nil && completedAt.Before(cutoff) {
			delete(q.jobs, id)
			removed++
		}
	}

	if removed > 0 {
		q.logger.Info("Cleaned up terminal jobs", "removed", removed, "retention", retention)
	}
	return removed
}

// Stats returns per-status job counts and the size of the processed-order set.
func (q *Queue) Stats() QueueStats {
	q.mu.Lock()
	defer q.mu.Unlock()

	stats := QueueStats{
		Total:           len(q.jobs),
		ProcessedOrders: len(q.processedOrders),
	}
	for _, j := range q.jobs {
		switch j.Status() {
		case job.Scheduled:
			stats.Scheduled++
		case job.Processing:
			stats.Processing++
		case job.Completed:
			stats.Completed++
		case job.Failed:
			stats.Failed++
		case job.Unknown:
		}
	}
	return stats
}
