// Package observability exposes the Prometheus counters the tracker records.
package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "exercise_tracker"

var (
	usersCreatedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Number of users registered.",
	})
	exercisesRecordedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exercises_recorded_total",
		Help:      "Number of exercises added to a user's log.",
	})
	logQueriesCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "log_queries_total",
		Help:      "Number of log queries served, labelled by whether a limit truncated the result.",
	}, []string{"truncated"})
	guardRejectionsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_rejections_total",
		Help:      "Requests rejected because the user existed when it must not, or was missing when it must exist.",
	}, []string{"field", "reason"})
)

func init() {
	prometheus.MustRegister(usersCreatedCounter, exercisesRecordedCounter, logQueriesCounter, guardRejectionsCounter)
}

// RecordUserCreated counts a successfully created user.
func RecordUserCreated() {
	usersCreatedCounter.Inc()
}

// RecordExerciseRecorded counts a successfully stored exercise.
func RecordExerciseRecorded() {
	exercisesRecordedCounter.Inc()
}

// RecordLogQuery counts a served log query.
func RecordLogQuery(truncated bool) {
	logQueriesCounter.WithLabelValues(strconv.FormatBool(truncated)).Inc()
}

// RecordGuardRejection counts an existence-guard rejection on field.
// exists is what the lookup found.
func RecordGuardRejection(field string, exists bool) {
	reason := "missing"
	if exists {
		reason = "duplicate"
	}
	guardRejectionsCounter.WithLabelValues(field, reason).Inc()
}
