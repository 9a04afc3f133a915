package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"trace-analytics/internal/models"
	"trace-analytics/internal/shared/filestorages"
)

var (
	ErrTraceResultAlreadyExists = errors.New("trace result already exists")
	ErrTraceResultNotFound      = errors.New("trace result not found")
)

// TraceResultStore keeps one JSON document per ingested trace file. Put is a
// create-if-not-exists so a replayed upload with the same id is detected and
// rejected instead of silently replacing the stored aggregates.
//
//go:generate mockgen -source=trace_result_store.go -destination=./mocks/trace_result_store_mock.go -package=mocks
type TraceResultStore interface {
	Put(ctx context.Context, result *models.FileResult) error
	Get(ctx context.Context, id string) (*models.FileResult, error)
}

type traceResultStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewTraceResultStore(fileStorage filestorages.FileStorage) TraceResultStore {
	return &traceResultStore{fileStorage: fileStorage, dir: "trace-results"}
}

func (s *traceResultStore) Put(ctx context.Context, result *models.FileResult) error {
	jsonData, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal trace result: %w", err)
	}
	reader := bytes.NewReader(jsonData)

	_, err = s.fileStorage.Put(ctx, s.getKey(result.ID), reader, filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrTraceResultAlreadyExists
		}
		return fmt.Errorf("failed to put trace result: %w", err)
	}
	return nil
}

func (s *traceResultStore) Get(ctx context.Context, id string) (*models.FileResult, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(id))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) || errors.Is(err, filestorages.ErrInvalidKey) {
			return nil, ErrTraceResultNotFound
		}
		return nil, fmt.Errorf("failed to get trace result: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace result: %w", err)
	}
	var result models.FileResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trace result: %w", err)
	}
	return &result, nil
}

func (s *traceResultStore) getKey(id string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, id)
}
