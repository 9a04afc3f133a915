package http

import (
	"net/http"

	"trace-analytics/internal/ingestors"

	"github.com/go-chi/chi/v5"
)

const paramTraceID = "id"

type getTraceResultHandler struct {
	ingestionService ingestors.IngestionService
}

func NewGetTraceResultHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &getTraceResultHandler{ingestionService: ingestionService}
}

// Handle processes GET /traces/{id} requests.
func (h *getTraceResultHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.GetTraceResult(r.Context(), chi.URLParam(r, paramTraceID))
	if err != nil {
		return err
	}
	setTraceID(w, result.ID)
	writeJSON(w, http.StatusOK, result)
	return nil
}
