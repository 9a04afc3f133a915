package campaigns

import (
	"trace-analytics/internal/shared/metrics"
)

// metricRunsAnalyzedTotal counts campaign runs by outcome.
// error_code is empty for a run that made it into the summary.
var (
	metricRunsAnalyzedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCampaign,
			Name:      "runs_analyzed_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
