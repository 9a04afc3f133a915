package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"trace-analytics/internal/models"
	"trace-analytics/internal/shared/filestorages"
	"trace-analytics/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestFileResult(id string) *models.FileResult {
	aggregates := models.NewFileAggregates()
	bler := models.NewBlockErrorAggregate()
	bler.BLER.Add(0.1)
	bler.BLER.Add(0.2)
	bler.SINRLinear.Add(10)
	bler.SINRLinear.Add(100)
	bler.SINRSamples = models.Samples{10, 20}
	bler.MCSSamples = []int{7, 9}
	aggregates.BlockError[models.AggregateKey{Direction: models.DirectionDL, UserID: 5}] = bler
	aggregates.ReceivedBytes[models.AggregateKey{Direction: models.DirectionUL, UserID: 3}] = &models.ByteCountAggregate{Bytes: 384, Reports: 2}

	return &models.FileResult{
		ID:          id,
		Source:      "log.txt",
		Label:       "baseline",
		Format:      models.FormatBlerLog,
		CreatedAt:   time.Date(2025, 12, 28, 18, 3, 15, 0, time.UTC),
		LinesRead:   42,
		Aggregates:  aggregates,
		Diagnostics: []models.Diagnostic{},
	}
}

func TestTraceResultStore_Put_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewTraceResultStore(mockFileStorage)

	ctx := context.Background()
	result := newTestFileResult("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	expectedKey := "trace-results/01ARZ3NDEKTSV4RRFFQ69G5FAV.json"
	expectedJSON, err := json.Marshal(result)
	require.NoError(t, err)

	mockFileStorage.EXPECT().
		Put(ctx, expectedKey, gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, expectedJSON, data)
			return &filestorages.PutResult{FileKey: key}, nil
		})

	err = store.Put(ctx, result)
	assert.NoError(t, err)
}

func TestTraceResultStore_Put_AlreadyExists(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewTraceResultStore(mockFileStorage)

	ctx := context.Background()
	mockFileStorage.EXPECT().
		Put(ctx, "trace-results/key-1.json", gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		Return(nil, filestorages.ErrFileAlreadyExists)

	err := store.Put(ctx, newTestFileResult("key-1"))
	assert.ErrorIs(t, err, ErrTraceResultAlreadyExists)
}

func TestTraceResultStore_Put_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewTraceResultStore(mockFileStorage)

	ctx := context.Background()
	mockFileStorage.EXPECT().
		Put(ctx, "trace-results/key-1.json", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("storage error"))

	err := store.Put(ctx, newTestFileResult("key-1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to put trace result")
	assert.Contains(t, err.Error(), "storage error")
	assert.NotErrorIs(t, err, ErrTraceResultAlreadyExists)
}

func TestTraceResultStore_Get_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewTraceResultStore(mockFileStorage)

	ctx := context.Background()
	want := newTestFileResult("key-1")
	data, err := json.Marshal(want)
	require.NoError(t, err)

	mockFileStorage.EXPECT().
		Get(ctx, "trace-results/key-1.json").
		Return(io.NopCloser(bytes.NewReader(data)), nil)

	got, err := store.Get(ctx, "key-1")
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Label, got.Label)
	assert.Equal(t, want.Format, got.Format)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))

	bler := got.Aggregates.BlockError[models.AggregateKey{Direction: models.DirectionDL, UserID: 5}]
	require.NotNil(t, bler)
	assert.InDelta(t, 0.15, bler.BLER.Value(), 1e-12)
	assert.Equal(t, []int{7, 9}, bler.MCSSamples)
	assert.Equal(t, int64(384), got.Aggregates.ReceivedBytes[models.AggregateKey{Direction: models.DirectionUL, UserID: 3}].Bytes)
}

func TestTraceResultStore_Get_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewTraceResultStore(mockFileStorage)

	ctx := context.Background()
	mockFileStorage.EXPECT().Get(ctx, "trace-results/missing.json").Return(nil, filestorages.ErrFileNotFound)
	mockFileStorage.EXPECT().Get(ctx, "trace-results/../x.json").Return(nil, filestorages.ErrInvalidKey)

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrTraceResultNotFound)

	_, err = store.Get(ctx, "../x")
	assert.ErrorIs(t, err, ErrTraceResultNotFound)
}

func TestTraceResultStore_Get_CorruptDocument(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewTraceResultStore(mockFileStorage)

	ctx := context.Background()
	mockFileStorage.EXPECT().
		Get(ctx, "trace-results/key-1.json").
		Return(io.NopCloser(bytes.NewReader([]byte("{not json"))), nil)

	_, err := store.Get(ctx, "key-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal trace result")
}

func TestTraceResultStore_RoundTripOnDisk(t *testing.T) {
	t.Parallel()

	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	store := NewTraceResultStore(fileStorage)
	ctx := context.Background()

	result := newTestFileResult("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	require.NoError(t, store.Put(ctx, result))
	assert.ErrorIs(t, store.Put(ctx, result), ErrTraceResultAlreadyExists)

	got, err := store.Get(ctx, result.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Aggregates, got.Aggregates)
}
