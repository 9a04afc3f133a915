package ingestors

import (
	"trace-analytics/internal/shared/metrics"
)

var (
	// metricTraceIngestedTotal counts ingestion attempts by resulting error code ("" on success).
	metricTraceIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "trace_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricRecordsClassifiedTotal counts decoded records per metric family. A line
	// reporting two families counts twice.
	metricRecordsClassifiedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubParsing,
			Name:      "records_classified_total",
		},
		[]string{"family"},
	)

	metricDiagnosticsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubParsing,
			Name:      "diagnostics_total",
		},
		[]string{"kind"},
	)
)
