package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID      = "x-request-id"
	headerIdempotencyKey = "idempotency-key"
	headerTraceFormat    = "x-trace-format"
	headerTraceLabel     = "x-trace-label"
	headerTraceSource    = "x-trace-source"
	headerLocation       = "location"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func idempotencyKey(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerIdempotencyKey))
}

func traceFormat(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerTraceFormat))
}

func traceLabel(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerTraceLabel))
}

func traceSource(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerTraceSource))
}
