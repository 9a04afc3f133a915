package reports

import (
	"trace-analytics/internal/shared/metrics"
)

const errCodeStore = "REP_9000"

// metricReportsWrittenTotal counts emitted series files.
// The series label is the plot name without its tag, e.g. BLER_DL.
var (
	metricReportsWrittenTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "series_written_total",
		},
		[]string{"series", metrics.FieldErrorCode},
	)
)
