package job

import (
	"fmt"

	"consolidator/internal/pkg/errs"
)

// Status represents the lifecycle state of a deferred job.
// It implements a state machine with defined transitions so jobs follow the
// scheduling workflow.
//
// State transitions:
//
//	Scheduled ──> Processing ──┬──> Completed
//	    ^                      │
//	    └──────────────────────┼──> Scheduled (retry with backoff)
//	                           └──> Failed (attempts exhausted)
//
// Completed and Failed are terminal; terminal jobs are only ever removed by
// cleanup, never transitioned again.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Scheduled is the initial status at creation and the status a job returns
	// to when a failed attempt is rescheduled with backoff.
	Scheduled

	// Processing indicates the job has been picked up by the processor and a
	// consolidation attempt is in flight.
	Processing

	// Completed indicates the consolidation attempt succeeded. Terminal.
	Completed

	// Failed indicates all attempts are exhausted. Terminal.
	Failed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Scheduled:  "scheduled",
		Processing: "processing",
		Completed:  "completed",
		Failed:     "failed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Scheduled:  "scheduled",
		Processing: "processing",
		Completed:  "completed",
		Failed:     "failed",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Scheduled, Processing, Completed, Failed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status ("scheduled", "processing",
// "completed", "failed"), or "unknown" for invalid values. The same strings
// appear in logs and queue stats.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status is a final state.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Failed
}

// StartProcessing transitions the status to Processing.
//
// Valid transitions:
//   - Scheduled -> Processing
//
// Returns (0, error) if the job is not in Scheduled status.
func (s Status) StartProcessing() (Status, error) {
	if s != Scheduled {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start processing", s.String()),
		)
	}

	return Processing, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Processing -> Completed
//
// Returns (0, error) if the job is not in Processing status.
func (s Status) Complete() (Status, error) {
	if s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Reschedule transitions the status back to Scheduled for a retry attempt.
//
// Valid transitions:
//   - Processing -> Scheduled
//
// Returns (0, error) if the job is not in Processing status.
func (s Status) Reschedule() (Status, error) {
	if s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to reschedule", s.String()),
		)
	}

	return Scheduled, nil
}

// Fail transitions the status to the terminal Failed state.
//
// Valid transitions:
//   - Processing -> Failed
//
// Returns (0, error) if the job is not in Processing status.
func (s Status) Fail() (Status, error) {
	if s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to fail", s.String()),
		)
	}

	return Failed, nil
}
