package ingestors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"trace-analytics/internal/models"
	"trace-analytics/internal/parsers"
	"trace-analytics/internal/shared/loggers"
	"trace-analytics/internal/shared/metrics"
	"trace-analytics/internal/shared/ulid"
	"trace-analytics/internal/stores"
)

const (
	DefaultMaxTraceBytes = 256 * 1024 * 1024
	defaultSource        = "upload"
	maxLabelLen          = 128
	maxSourceLen         = 256
)

var idempotencyKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

var errTraceTooLarge = errors.New("trace too large")

// IngestRequest describes one uploaded trace file.
type IngestRequest struct {
	Format         string
	Label          string
	Source         string
	IdempotencyKey string
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestTrace aggregates one trace file and stores the result.
	IngestTrace(ctx context.Context, req IngestRequest, r io.Reader) (*models.FileResult, error)
	// GetTraceResult returns a stored result by id.
	GetTraceResult(ctx context.Context, id string) (*models.FileResult, error)
}

type ingestionService struct {
	pipeline      Pipeline
	resultStore   stores.TraceResultStore
	maxTraceBytes int64
	now           func() time.Time
}

func NewIngestionService(pipeline Pipeline, resultStore stores.TraceResultStore, maxTraceBytes int64) IngestionService {
	if maxTraceBytes <= 0 {
		maxTraceBytes = DefaultMaxTraceBytes
	}
	return &ingestionService{
		pipeline:      pipeline,
		resultStore:   resultStore,
		maxTraceBytes: maxTraceBytes,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *ingestionService) IngestTrace(ctx context.Context, req IngestRequest, r io.Reader) (*models.FileResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting trace with source: %s, idempotency key: %s, format: %s", req.Source, req.IdempotencyKey, req.Format)

	result, err := s.ingestTrace(ctx, req, r)
	if err != nil {
		metricTraceIngestedTotal.WithLabelValues(err.Code).Inc()
		return nil, err
	}
	metricTraceIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return result, nil
}

func (s *ingestionService) ingestTrace(ctx context.Context, req IngestRequest, r io.Reader) (*models.FileResult, *serviceError) {
	format, err := s.validateRequest(&req, r)
	if err != nil {
		return nil, err
	}

	body := &maxBytesReader{r: r, remaining: s.maxTraceBytes}
	result, pipelineErr := s.pipeline.Process(ctx, req.Source, format, body)
	if pipelineErr != nil {
		var parseErr *parsers.ParseError
		switch {
		case errors.Is(pipelineErr, errTraceTooLarge):
			return nil, errValidationFailed(fmt.Sprintf("trace too large: must be <= %d bytes", s.maxTraceBytes), pipelineErr)
		case errors.As(pipelineErr, &parseErr), errors.Is(pipelineErr, ErrLineTooLong):
			return nil, errMalformedTrace(pipelineErr)
		case ctx.Err() != nil:
			return nil, errInternalPipelineFailed(ctx.Err())
		default:
			return nil, errInternalPipelineFailed(pipelineErr)
		}
	}

	createdAt := s.now()
	result.ID = req.IdempotencyKey
	if result.ID == "" {
		result.ID = ulid.NewULIDAt(createdAt)
	}
	result.Label = req.Label
	result.CreatedAt = createdAt

	if err := s.resultStore.Put(ctx, result); err != nil {
		if errors.Is(err, stores.ErrTraceResultAlreadyExists) {
			return nil, errTraceAlreadyProcessed(err)
		}
		return nil, errInternalTraceResultStoreFailed(err)
	}
	return result, nil
}

func (s *ingestionService) GetTraceResult(ctx context.Context, id string) (*models.FileResult, error) {
	id = strings.TrimSpace(id)
	if !idempotencyKeyPattern.MatchString(id) {
		return nil, errTraceResultNotFound(nil)
	}
	result, err := s.resultStore.Get(ctx, id)
	if err != nil {
		if errors.Is(err, stores.ErrTraceResultNotFound) {
			return nil, errTraceResultNotFound(err)
		}
		return nil, errInternalTraceResultStoreFailed(err)
	}
	return result, nil
}

// validateRequest normalizes req in place and returns the parsed trace format.
func (s *ingestionService) validateRequest(req *IngestRequest, r io.Reader) (models.TraceFormat, *serviceError) {
	if r == nil {
		return "", errValidationFailed("empty request body", nil)
	}

	format, err := models.NewTraceFormatFromString(req.Format)
	if err != nil {
		return "", errValidationFailed(fmt.Sprintf("unsupported trace format: %q", req.Format), err)
	}

	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	if req.IdempotencyKey != "" && !idempotencyKeyPattern.MatchString(req.IdempotencyKey) {
		return "", errValidationFailed("idempotency key must be 1-128 characters of [A-Za-z0-9_-]", nil)
	}

	req.Source = strings.TrimSpace(req.Source)
	if req.Source == "" {
		req.Source = defaultSource
	}
	if len(req.Source) > maxSourceLen {
		return "", errValidationFailed(fmt.Sprintf("source too long: max %d characters", maxSourceLen), nil)
	}

	req.Label = strings.TrimSpace(req.Label)
	if req.Label == "" {
		req.Label = req.Source
	}
	if len(req.Label) > maxLabelLen {
		return "", errValidationFailed(fmt.Sprintf("label too long: max %d characters", maxLabelLen), nil)
	}
	return format, nil
}

// maxBytesReader fails with errTraceTooLarge once more than remaining bytes were read.
type maxBytesReader struct {
	r         io.Reader
	remaining int64
}

func (m *maxBytesReader) Read(p []byte) (int, error) {
	if m.remaining < 0 {
		return 0, errTraceTooLarge
	}
	if int64(len(p)) > m.remaining+1 {
		p = p[:m.remaining+1]
	}
	n, err := m.r.Read(p)
	m.remaining -= int64(n)
	if m.remaining < 0 {
		return n, errTraceTooLarge
	}
	return n, err
}
