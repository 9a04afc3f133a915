package http

import (
	"net/http"

	"trace-analytics/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter is a wrapper around the http.ResponseWriter that stores app details for middleware access
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
	traceID  string
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

// SetTraceID records the trace result a request created or read, for the completion log.
func (w *appResponseWriter) SetTraceID(traceID string) {
	w.traceID = traceID
}

func (w *appResponseWriter) TraceID() string {
	return w.traceID
}

func setTraceID(w http.ResponseWriter, traceID string) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetTraceID(traceID)
	}
}
