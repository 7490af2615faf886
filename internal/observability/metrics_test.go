package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordUserCreated(t *testing.T) {
	before := testutil.ToFloat64(usersCreatedCounter)
	RecordUserCreated()
	assert.Equal(t, before+1, testutil.ToFloat64(usersCreatedCounter))
}

func TestRecordExerciseRecorded(t *testing.T) {
	before := testutil.ToFloat64(exercisesRecordedCounter)
	RecordExerciseRecorded()
	RecordExerciseRecorded()
	assert.Equal(t, before+2, testutil.ToFloat64(exercisesRecordedCounter))
}

func TestRecordLogQueryLabelsTruncation(t *testing.T) {
	truncated := logQueriesCounter.WithLabelValues("true")
	full := logQueriesCounter.WithLabelValues("false")
	beforeTruncated := testutil.ToFloat64(truncated)
	beforeFull := testutil.ToFloat64(full)

	RecordLogQuery(true)

	assert.Equal(t, beforeTruncated+1, testutil.ToFloat64(truncated))
	assert.Equal(t, beforeFull, testutil.ToFloat64(full))
}

func TestRecordGuardRejectionReason(t *testing.T) {
	duplicate := guardRejectionsCounter.WithLabelValues("username", "duplicate")
	missing := guardRejectionsCounter.WithLabelValues("user_id", "missing")
	beforeDuplicate := testutil.ToFloat64(duplicate)
	beforeMissing := testutil.ToFloat64(missing)

	RecordGuardRejection("username", true)
	RecordGuardRejection("user_id", false)

	assert.Equal(t, beforeDuplicate+1, testutil.ToFloat64(duplicate))
	assert.Equal(t, beforeMissing+1, testutil.ToFloat64(missing))
}
