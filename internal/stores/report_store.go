package stores

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path"

	"trace-analytics/internal/models"
	"trace-analytics/internal/shared/filestorages"
)

//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	// PutTable writes the table as <dir>/<name>.csv, replacing an earlier report of the same name.
	PutTable(ctx context.Context, table *models.Table) (string, error)
	// PutText writes free-form report text as <dir>/<name>.
	PutText(ctx context.Context, name string, text []byte) (string, error)
}

type reportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

// NewReportStore writes reports under dir. An empty dir writes to the storage root.
func NewReportStore(fileStorage filestorages.FileStorage, dir string) ReportStore {
	return &reportStore{fileStorage: fileStorage, dir: dir}
}

func (s *reportStore) PutTable(ctx context.Context, table *models.Table) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(table.Header); err != nil {
		return "", fmt.Errorf("failed to encode report %s: %w", table.Name, err)
	}
	if err := w.WriteAll(table.Rows); err != nil {
		return "", fmt.Errorf("failed to encode report %s: %w", table.Name, err)
	}
	return s.put(ctx, table.Name+".csv", &buf)
}

func (s *reportStore) PutText(ctx context.Context, name string, text []byte) (string, error) {
	return s.put(ctx, name, bytes.NewReader(text))
}

func (s *reportStore) put(ctx context.Context, name string, r io.Reader) (string, error) {
	key := path.Join(s.dir, name)
	result, err := s.fileStorage.Put(ctx, key, r, filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return "", fmt.Errorf("failed to put report %s: %w", name, err)
	}
	return result.FileKey, nil
}
