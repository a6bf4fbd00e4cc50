package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	createdCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "waytrack",
		Subsystem: "workouts",
		Name:      "created_total",
		Help:      "Workouts created since process start.",
	})
	editedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "waytrack",
		Subsystem: "workouts",
		Name:      "edited_total",
		Help:      "Workout edits committed since process start.",
	})
	deletedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "waytrack",
		Subsystem: "workouts",
		Name:      "deleted_total",
		Help:      "Workouts deleted since process start, delete-all included.",
	})
	fullRedrawCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "waytrack",
		Subsystem: "sync",
		Name:      "full_redraws_total",
		Help:      "Times the map and list views were rebuilt from the full store.",
	})
	persistCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "waytrack",
		Subsystem: "sync",
		Name:      "snapshot_persists_total",
		Help:      "Snapshot writes to persistent storage.",
	})
	storeGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "waytrack",
		Subsystem: "store",
		Name:      "workouts",
		Help:      "Workouts currently held in the in-memory store.",
	})
)

func init() {
	prometheus.MustRegister(createdCounter, editedCounter, deletedCounter,
		fullRedrawCounter, persistCounter, storeGauge)
}

// WorkoutCreated counts a successful create.
func WorkoutCreated() { createdCounter.Inc() }

// WorkoutEdited counts a committed edit.
func WorkoutEdited() { editedCounter.Inc() }

// WorkoutDeleted counts n removals (n > 1 for delete-all).
func WorkoutDeleted(n int) { deletedCounter.Add(float64(n)) }

// FullRedraw counts a full map+list rebuild.
func FullRedraw() { fullRedrawCounter.Inc() }

// SnapshotPersisted counts a snapshot write.
func SnapshotPersisted() { persistCounter.Inc() }

// SetStoreSize updates the live store-size gauge.
func SetStoreSize(n int) { storeGauge.Set(float64(n)) }
