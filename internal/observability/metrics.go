package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	usersCreatedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Subsystem: "persistence",
		Name:      "users_created_total",
		Help:      "Total number of users persisted to the store.",
	})
	exercisesLoggedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Subsystem: "persistence",
		Name:      "exercises_logged_total",
		Help:      "Total number of exercises persisted to the store.",
	})
	exercisePersistGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "exercise_tracker",
		Subsystem: "persistence",
		Name:      "last_exercise_date_timestamp_seconds",
		Help:      "Unix timestamp of the most recently persisted exercise date.",
	})
)

func init() {
	prometheus.MustRegister(usersCreatedCounter, exercisesLoggedCounter, exercisePersistGauge)
}

// RecordUserCreated increments the user creation counter.
func RecordUserCreated() {
	usersCreatedCounter.Inc()
}

// RecordExerciseLogged updates the exercise counters and watermark.
func RecordExerciseLogged(date time.Time) {
	exercisesLoggedCounter.Inc()
	if date.IsZero() {
		return
	}
	exercisePersistGauge.Set(float64(date.Unix()))
}
