package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"trace-analytics/internal/models"
	"trace-analytics/internal/shared/loggers"
	"trace-analytics/internal/shared/svcerrors"
	"trace-analytics/internal/shared/ulid"

	"github.com/go-chi/chi/v5"
)

func setupMiddleware(router *chi.Mux, httpLogger loggers.Logger) {
	router.Use(mwRequestContext(httpLogger))
	router.Use(mwAppResponseWriter)
	router.Use(mwPrometheus)
	router.Use(mwRequestCompletionLog)
	router.Use(mwRecoverer)
}

// mwAppResponseWriter initializes the appResponseWriter once and passes it through the middleware chain.
func mwAppResponseWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appWriter := newAppResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(appWriter, r)
	})
}

// mwPrometheus records request counts and latency by route pattern, not raw
// path, so trace ids do not become label values. Uploads also record their
// declared size.
func mwPrometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		routePattern := chi.RouteContext(r.Context()).RoutePattern()
		if routePattern == "" {
			routePattern = r.URL.Path
		}
		status, _, errorCode := responseOutcome(w)
		format := formatLabel(r)
		labels := []string{r.Method, routePattern, strconv.Itoa(status), errorCode, format}

		metricHTTPRequestsTotal.WithLabelValues(labels...).Inc()
		metricHTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		if r.ContentLength > 0 {
			metricHTTPUploadBytes.WithLabelValues(format).Observe(float64(r.ContentLength))
		}
	})
}

// formatLabel bounds the trace_format label to known formats.
func formatLabel(r *http.Request) string {
	raw := traceFormat(r)
	if raw == "" {
		return ""
	}
	format, err := models.NewTraceFormatFromString(raw)
	if err != nil {
		return "invalid"
	}
	return string(format)
}

// mwRequestContext extracts or generates a request ID and attaches a
// request-scoped logger to the context. Trace uploads also get their format
// and source on every log line.
func mwRequestContext(httpLogger loggers.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := requestID(r)
			if requestID == "" {
				requestID = ulid.NewULID()
				setRequestID(r, requestID)
			}
			logCtx := httpLogger.With().Str(loggers.FieldRequestID, requestID)
			if format := traceFormat(r); format != "" {
				logCtx = logCtx.Str(loggers.FieldTraceFormat, format)
			}
			if source := traceSource(r); source != "" {
				logCtx = logCtx.Str(loggers.FieldTraceSource, source)
			}
			next.ServeHTTP(w, r.WithContext(logCtx.Logger().WithContext(r.Context())))
		})
	}
}

// mwRequestCompletionLog logs one line per request once the handler returns.
func mwRequestCompletionLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			status, traceID, errorCode := responseOutcome(w)
			event := loggers.Ctx(r.Context()).Info().
				Str(loggers.FieldHttpMethod, r.Method).
				Str(loggers.FieldHttpPath, r.URL.Path).
				Int(loggers.FieldHttpStatus, status).
				Int64(loggers.FieldDuration, time.Since(start).Milliseconds())
			if r.ContentLength > 0 {
				event = event.Int64("bytes_in", r.ContentLength)
			}
			if traceID != "" {
				event = event.Str(loggers.FieldTraceID, traceID)
			}
			if errorCode != "" {
				event = event.Str(loggers.FieldErrorCode, errorCode)
			}
			event.Msg("request completed")
		}()

		next.ServeHTTP(w, r)
	})
}

// responseOutcome reads what the handler wrote. Status defaults to 200.
func responseOutcome(w http.ResponseWriter) (status int, traceID, errorCode string) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		status = appWriter.Status()
		traceID = appWriter.TraceID()
		errorCode = appWriter.ErrorCode()
	}
	if status == 0 {
		status = http.StatusOK
	}
	return status, traceID, errorCode
}

// mwRecoverer provides panic recovery middleware.
func mwRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				loggers.Ctx(r.Context()).Error().
					Bytes(loggers.FieldErrorStack, debug.Stack()).
					Msgf("http panic recovered: %v", p)

				var panicErr error
				if err, ok := p.(error); ok {
					panicErr = err
				} else {
					panicErr = fmt.Errorf("%v", p)
				}

				svcErr := svcerrors.NewInternalErrorPanic(panicErr)
				writeErrorResponse(w, r, svcErr)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
