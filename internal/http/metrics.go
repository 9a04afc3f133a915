package http

import (
	"trace-analytics/internal/shared/metrics"
)

var (
	metricHTTPRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_total",
			Help:      "HTTP requests by route, status and uploaded trace format.",
		},
		[]string{"method", "path", "status", metrics.FieldErrorCode, metrics.FieldTraceFormat},
	)

	metricHTTPRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_latency_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"method", "path", "status", metrics.FieldErrorCode, metrics.FieldTraceFormat},
	)

	// Declared Content-Length of uploads, 1KiB to 1GiB.
	metricHTTPUploadBytes = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "upload_bytes",
			Buckets:   metrics.ExponentialBuckets(1024, 4, 11),
		},
		[]string{metrics.FieldTraceFormat},
	)
)
