package job

import (
	"errors"
	"time"

	"consolidator/internal/core/domain/model/kernel"
	"consolidator/internal/pkg/errs"
)

var (
	// ErrJobIsNotConstructed is returned when a Job instance was not created
	// through the NewJob factory method.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")

	// ErrOrderIDIsRequired is returned when a job is created without an order identifier.
	ErrOrderIDIsRequired = errs.NewValueIsRequiredError("orderID")
)

// DefaultMaxAttempts is the attempts ceiling for newly created jobs.
const DefaultMaxAttempts = 3

// Kind identifies the work a job performs.
type Kind string

// KindOrderConsolidation is the only job kind currently scheduled: evaluate an
// order's fulfillment locations and consolidate them if they are mixed.
const KindOrderConsolidation Kind = "order-consolidation"

// Result is the payload recorded on a completed job: the outcome of one
// consolidation evaluation, reduced to what stats and operators need.
type Result struct {
	Action         string
	Reason         string
	MovedSubOrders int
	ErrorCount     int
}

// Job is the aggregate for one deferred consolidation task. It is created by
// the queue's Schedule operation and mutated only through the validated
// transition methods below.
//
// Job follows these invariants:
//   - Must have a valid unique identifier and a non-empty order identifier
//   - The attempt counter never exceeds MaxAttempts
//   - Status transitions follow the state machine defined on Status
//   - Once terminal (Completed/Failed), a job is never transitioned again
type Job struct {
	id          kernel.UUID
	orderID     string
	kind        Kind
	status      Status
	attempt     int
	maxAttempts int
	eligibleAt  time.Time
	createdAt   time.Time
	startedAt   *time.Time
	completedAt *time.Time
	lastError   string
	result      *Result

	isConstructed bool
}

// NewJob creates a job in Scheduled status with a zero attempt counter and the
// default attempts ceiling.
//
// Parameters:
//   - id: queue-unique identifier for this scheduling event
//   - orderID: the provider's order identifier (must be non-empty)
//   - kind: the work to perform
//   - eligibleAt: earliest time the processor may pick the job up
//   - now: creation timestamp
func NewJob(id kernel.UUID, orderID string, kind Kind, eligibleAt time.Time, now time.Time) (*Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if orderID == "" {
		return nil, ErrOrderIDIsRequired
	}

	return &Job{
		id:            id,
		orderID:       orderID,
		kind:          kind,
		status:        Scheduled,
		attempt:       0,
		maxAttempts:   DefaultMaxAttempts,
		eligibleAt:    eligibleAt,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// Validate ensures the Job instance was constructed through NewJob.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// OrderID returns the provider's order identifier the job evaluates.
func (j *Job) OrderID() string {
	return j.orderID
}

// Kind returns the work the job performs.
func (j *Job) Kind() Kind {
	return j.kind
}

// Status returns the job's current lifecycle state.
func (j *Job) Status() Status {
	return j.status
}

// Attempt returns the number of processing attempts started so far.
func (j *Job) Attempt() int {
	return j.attempt
}

// MaxAttempts returns the attempts ceiling.
func (j *Job) MaxAttempts() int {
	return j.maxAttempts
}

// EligibleAt returns the earliest time the processor may pick the job up.
func (j *Job) EligibleAt() time.Time {
	return j.eligibleAt
}

// CreatedAt returns the job's creation timestamp.
func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

// StartedAt returns when the latest attempt started, or nil if never started.
func (j *Job) StartedAt() *time.Time {
	return j.startedAt
}

// CompletedAt returns the terminal timestamp, or nil while the job is live.
func (j *Job) CompletedAt() *time.Time {
	return j.completedAt
}

// LastError returns the message of the most recent failure, if any.
func (j *Job) LastError() string {
	return j.lastError
}

// Result returns the recorded outcome of a completed job, or nil.
func (j *Job) Result() *Result {
	return j.result
}

// IsDue reports whether the job is eligible for dispatch at the given time.
func (j *Job) IsDue(now time.Time) bool {
	return j.status == Scheduled && !j.eligibleAt.After(now)
}

// StartProcessing transitions the job to Processing, increments the attempt
// counter, and records the start time.
func (j *Job) StartProcessing(now time.Time) error {
	newStatus, err := j.status.StartProcessing()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.attempt++
	j.startedAt = &now
	return nil
}

// Complete transitions the job to the terminal Completed state and records the
// result and completion time.
func (j *Job) Complete(result Result, now time.Time) error {
	newStatus, err := j.status.Complete()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.result = &result
	j.completedAt = &now
	return nil
}

// Fail records a failed attempt. While attempts remain below the ceiling the
// job is rescheduled with exponential backoff (1, 2, 4 minutes for attempts
// 1, 2, 3); otherwise it transitions to the terminal Failed state.
//
// Returns:
//   - retried=true when the job went back to Scheduled with a new eligibleAt
//   - retried=false when the job is terminally Failed
func (j *Job) Fail(cause error, now time.Time) (retried bool, err error) {
	if cause != nil {
		j.lastError = cause.Error()
	}

	if j.attempt < j.maxAttempts {
		newStatus, err := j.status.Reschedule()
		if err != nil {
			return false, err
		}

		j.status = newStatus
		j.eligibleAt = now.Add(j.backoffDelay())
		return true, nil
	}

	newStatus, err := j.status.Fail()
	if err != nil {
		return false, err
	}

	j.status = newStatus
	j.completedAt = &now
	return false, nil
}

// backoffDelay doubles per attempt: attempt 1 -> 1min, 2 -> 2min, 3 -> 4min.
func (j *Job) backoffDelay() time.Duration {
	return time.Duration(1<<(j.attempt-1)) * time.Minute
}
