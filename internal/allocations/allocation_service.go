package allocations

import (
	"context"
	"fmt"

	"trace-analytics/internal/models"
	"trace-analytics/internal/shared/filestorages"
	"trace-analytics/internal/shared/loggers"

	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultCacheSize = 64

type AllocationService interface {
	// Frame returns the slot layout of one subframe. A cache miss re-reads the whole file.
	Frame(ctx context.Context, subframe int) (*models.Frame, error)
	// Layout returns the frame placed in the unit square.
	Layout(ctx context.Context, subframe int) ([]models.Rect, error)
}

type allocationService struct {
	fileStorage filestorages.FileStorage
	key         string
	source      Source
	maxSymbols  int
	cache       *lru.Cache[int, *models.Frame]
}

// NewAllocationService serves the allocations of the file stored under key.
func NewAllocationService(fileStorage filestorages.FileStorage, key string, cacheSize, maxSymbols int) (AllocationService, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[int, *models.Frame](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create frame cache: %w", err)
	}
	return &allocationService{
		fileStorage: fileStorage,
		key:         key,
		source:      SourceForFile(key),
		maxSymbols:  maxSymbols,
		cache:       cache,
	}, nil
}

func (s *allocationService) Frame(ctx context.Context, subframe int) (*models.Frame, error) {
	if subframe < 0 {
		return nil, errInvalidSubframe(subframe)
	}
	if frame, ok := s.cache.Get(subframe); ok {
		metricFrameLookupsTotal.WithLabelValues(lookupHit).Inc()
		return frame, nil
	}
	metricFrameLookupsTotal.WithLabelValues(lookupMiss).Inc()

	rc, err := s.fileStorage.Get(ctx, s.key)
	if err != nil {
		return nil, errAllocationFileUnavailable(s.key, err)
	}
	defer rc.Close()

	frame, err := ParseFrame(ctx, rc, s.source, subframe, s.maxSymbols)
	if err != nil {
		return nil, errMalformedAllocations(err)
	}
	loggers.Ctx(ctx).Debug().
		Int(loggers.FieldSubframe, subframe).
		Int("layers", len(frame.Layers)).
		Msg("frame loaded")

	s.cache.Add(subframe, frame)
	return frame, nil
}

func (s *allocationService) Layout(ctx context.Context, subframe int) ([]models.Rect, error) {
	frame, err := s.Frame(ctx, subframe)
	if err != nil {
		return nil, err
	}
	return Layout(frame), nil
}
