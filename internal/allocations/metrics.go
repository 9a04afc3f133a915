package allocations

import (
	"trace-analytics/internal/shared/metrics"
)

const (
	lookupHit  = "hit"
	lookupMiss = "miss"
)

// metricFrameLookupsTotal counts subframe lookups by cache result (hit, miss).
// Every miss re-reads the allocation file.
var (
	metricFrameLookupsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAllocation,
			Name:      "frame_lookups_total",
		},
		[]string{"result"},
	)
)
