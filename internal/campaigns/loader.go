package campaigns

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"

	"trace-analytics/internal/shared/filestorages"
	"trace-analytics/internal/shared/loggers"
)

// Run is one finished simulation: a directory under the campaign data dir
// holding the parameter file and the trace files the simulator wrote.
type Run struct {
	ID  string
	Dir string
}

//go:generate mockgen -source=loader.go -destination=./mocks/loader_mock.go -package=mocks
type Loader interface {
	// Runs lists the run directories that have a parameter file, in name order.
	Runs(ctx context.Context) ([]Run, error)
	// Params decodes the parameter file of a run.
	Params(ctx context.Context, run Run) (map[string]any, error)
	// Open opens one output file of a run.
	Open(ctx context.Context, run Run, name string) (io.ReadCloser, error)
}

type loader struct {
	fileStorage filestorages.FileStorage
	dataDir     string
	paramsFile  string
}

func NewLoader(fileStorage filestorages.FileStorage, dataDir, paramsFile string) Loader {
	return &loader{fileStorage: fileStorage, dataDir: dataDir, paramsFile: paramsFile}
}

func (l *loader) Runs(ctx context.Context) ([]Run, error) {
	entries, err := l.fileStorage.List(ctx, l.dataDir)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNoRuns, l.dataDir)
		}
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	runs := make([]Run, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir {
			continue
		}
		ok, err := l.fileStorage.Exists(ctx, path.Join(e.Key, l.paramsFile))
		if err != nil {
			return nil, fmt.Errorf("failed to check run %s: %w", e.Name, err)
		}
		if !ok {
			loggers.Ctx(ctx).Debug().Str(loggers.FieldRunID, e.Name).Msg("skipping directory without parameter file")
			continue
		}
		runs = append(runs, Run{ID: e.Name, Dir: e.Key})
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRuns, l.dataDir)
	}
	return runs, nil
}

func (l *loader) Params(ctx context.Context, run Run) (map[string]any, error) {
	rc, err := l.Open(ctx, run, l.paramsFile)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var params map[string]any
	if err := json.NewDecoder(rc).Decode(&params); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", l.paramsFile, err)
	}
	return params, nil
}

func (l *loader) Open(ctx context.Context, run Run, name string) (io.ReadCloser, error) {
	rc, err := l.fileStorage.Get(ctx, path.Join(run.Dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	return rc, nil
}
