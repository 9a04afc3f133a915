package aggregators

import (
	"trace-analytics/internal/shared/metrics"
)

// metricRecordsTotal counts records folded into per-file aggregates.
//
// The family label is the metric family of the record (block_error, byte_count, beam_gain, pdcp).
// The outcome label is one of:
//   - accepted: the record updated its key's aggregate
//   - filtered: dropped by the transfer size or bearer filter
//   - duplicate: a second byte counter for the same key, summed into the first
//   - anomaly: accepted, but corrupted although sent at or above the requested MCS
//
// Example: a 150 byte DL transport block with the default filter increments
// {family="block_error", outcome="filtered"}.
var (
	metricRecordsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "records_total",
		},
		[]string{"family", "outcome"},
	)
)
