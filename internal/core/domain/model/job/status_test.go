package job_test

import (
	"testing"

	"consolidator/internal/core/domain/model/job"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   job.Status
		expected string
	}{
		{job.Scheduled, "scheduled"},
		{job.Processing, "processing"},
		{job.Completed, "completed"},
		{job.Failed, "failed"},
		{job.Unknown, "unknown"},
		{job.Status(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass validation", func(t *testing.T) {
		for _, s := range []job.Status{job.Scheduled, job.Processing, job.Completed, job.Failed} {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("unknown status fails validation", func(t *testing.T) {
		require.Error(t, job.Unknown.Validate())
		require.Error(t, job.Status(42).Validate())
	})
}

func TestStatus_StartProcessing(t *testing.T) {
	t.Run("scheduled can start processing", func(t *testing.T) {
		newStatus, err := job.Scheduled.StartProcessing()

		require.NoError(t, err)
		assert.Equal(t, job.Processing, newStatus)
	})

	t.Run("other statuses cannot start processing", func(t *testing.T) {
		for _, s := range []job.Status{job.Processing, job.Completed, job.Failed, job.Unknown} {
			_, err := s.StartProcessing()
			require.Error(t, err, s.String())
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("processing can complete", func(t *testing.T) {
		newStatus, err := job.Processing.Complete()

		require.NoError(t, err)
		assert.Equal(t, job.Completed, newStatus)
	})

	t.Run("other statuses cannot complete", func(t *testing.T) {
		for _, s := range []job.Status{job.Scheduled, job.Completed, job.Failed, job.Unknown} {
			_, err := s.Complete()
			require.Error(t, err, s.String())
		}
	})
}

func TestStatus_Reschedule(t *testing.T) {
	t.Run("processing can be rescheduled", func(t *testing.T) {
		newStatus, err := job.Processing.Reschedule()

		require.NoError(t, err)
		assert.Equal(t, job.Scheduled, newStatus)
	})

	t.Run("terminal statuses cannot be rescheduled", func(t *testing.T) {
		for _, s := range []job.Status{job.Completed, job.Failed} {
			_, err := s.Reschedule()
			require.Error(t, err, s.String())
		}
	})
}

func TestStatus_Fail(t *testing.T) {
	t.Run("processing can fail", func(t *testing.T) {
		newStatus, err := job.Processing.Fail()

		require.NoError(t, err)
		assert.Equal(t, job.Failed, newStatus)
	})

	t.Run("scheduled cannot fail directly", func(t *testing.T) {
		_, err := job.Scheduled.Fail()
		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, job.Completed.IsTerminal())
	assert.True(t, job.Failed.IsTerminal())
	assert.False(t, job.Scheduled.IsTerminal())
	assert.False(t, job.Processing.IsTerminal())
	assert.False(t, job.Unknown.IsTerminal())
}
