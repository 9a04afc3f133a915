package http

import (
	"net/http"

	"trace-analytics/internal/ingestors"
	"trace-analytics/internal/models"
	"trace-analytics/internal/shared/svcerrors"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// IngestTraceResponse is the body of a successful POST /traces.
type IngestTraceResponse struct {
	ID          string             `json:"id"`
	Source      string             `json:"source"`
	Label       string             `json:"label"`
	Format      models.TraceFormat `json:"format"`
	LinesRead   int                `json:"linesRead"`
	Diagnostics int                `json:"diagnostics"`
}

type ingestTraceHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestTraceHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestTraceHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /traces requests. The body is the raw trace file, optionally gzip or zstd compressed.
func (h *ingestTraceHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	req := ingestors.IngestRequest{
		Format:         traceFormat(r),
		Label:          traceLabel(r),
		Source:         traceSource(r),
		IdempotencyKey: idempotencyKey(r),
	}
	result, err := h.ingestionService.IngestTrace(r.Context(), req, r.Body)
	if err != nil {
		// A replayed idempotency key names the stored result.
		if svcErr, ok := svcerrors.AsServiceError(err); ok && svcErr.IsResourceConflict() && req.IdempotencyKey != "" {
			setTraceID(w, req.IdempotencyKey)
			w.Header().Set(headerLocation, "/traces/"+req.IdempotencyKey)
		}
		return err
	}

	setTraceID(w, result.ID)
	w.Header().Set(headerLocation, "/traces/"+result.ID)
	writeJSON(w, http.StatusCreated, IngestTraceResponse{
		ID:          result.ID,
		Source:      result.Source,
		Label:       result.Label,
		Format:      result.Format,
		LinesRead:   result.LinesRead,
		Diagnostics: len(result.Diagnostics),
	})
	return nil
}
