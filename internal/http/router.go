package http

import (
	"net/http"

	"trace-analytics/internal/ingestors"
	"trace-analytics/internal/shared/loggers"
	"trace-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(ingestionService ingestors.IngestionService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	ingestTraceHandler := NewIngestTraceHandler(ingestionService)
	getTraceResultHandler := NewGetTraceResultHandler(ingestionService)

	// Routes
	router.Post("/traces", errorHandlingAdapter(ingestTraceHandler))
	router.Get("/traces/{"+paramTraceID+"}", errorHandlingAdapter(getTraceResultHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
