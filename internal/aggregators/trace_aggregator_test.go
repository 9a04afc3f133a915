package aggregators

import (
	"math"
	"testing"

	"trace-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blerReport(dir models.Direction, ue int, tbler, sinr float64, size int64) *models.BlockErrorReport {
	return &models.BlockErrorReport{
		Direction:    dir,
		UserID:       ue,
		TBLER:        tbler,
		SINRdB:       sinr,
		AchievedMCS:  7,
		TransferSize: size,
	}
}

func TestTraceAggregator_BlockErrorMeans(t *testing.T) {
	t.Parallel()

	aggregator := NewTraceAggregator(DefaultOptions())

	outcome, err := aggregator.Add(blerReport(models.DirectionDL, 5, 0.10, 10, 300))
	require.NoError(t, err)
	assert.Equal(t, OutcomeAccepted, outcome)
	_, err = aggregator.Add(blerReport(models.DirectionDL, 5, 0.20, 20, 300))
	require.NoError(t, err)

	key := models.AggregateKey{Direction: models.DirectionDL, UserID: 5}
	agg := aggregator.Result().BlockError[key]
	require.NotNil(t, agg)
	assert.Equal(t, int64(2), agg.Count())
	assert.InDelta(t, 0.15, agg.BLER.Value(), 1e-12)
	assert.InDelta(t, 10*math.Log10((10+100)/2.0), agg.AvgSINRdB(), 1e-9)
	assert.Equal(t, []float64{10, 20}, agg.SINRSamples.Float64s())
	assert.Equal(t, []int{7, 7}, agg.MCSSamples)

	// power averaging is never below the plain dB mean
	assert.GreaterOrEqual(t, agg.AvgSINRdB(), 15.0)

	byDirection := aggregator.Result().BlockErrorByDirection[models.DirectionDL]
	require.NotNil(t, byDirection)
	assert.Equal(t, agg.BLER, byDirection.BLER)
	assert.Nil(t, aggregator.Result().BlockErrorByDirection[models.DirectionUL])
}

func TestTraceAggregator_IncrementalMeanMatchesFold(t *testing.T) {
	t.Parallel()

	aggregator := NewTraceAggregator(DefaultOptions())
	values := []float64{0.013, 0.7, 0.1, 0.33333, 1e-9, 0.5, 0.9999, 0.25}

	var want float64
	for i, v := range values {
		want = (want*float64(i) + v) * 1.0 / float64(i+1)
		_, err := aggregator.Add(blerReport(models.DirectionUL, 1, v, 3, 1000))
		require.NoError(t, err)
	}

	agg := aggregator.Result().BlockError[models.AggregateKey{Direction: models.DirectionUL, UserID: 1}]
	assert.Equal(t, want, agg.BLER.Value(), "mean must be bit-identical to a left fold")
}

func TestTraceAggregator_SizeFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		opts      Options
		size      int64
		wantAdded bool
	}{
		{name: "at threshold is dropped", opts: DefaultOptions(), size: 200, wantAdded: false},
		{name: "below threshold is dropped", opts: DefaultOptions(), size: 12, wantAdded: false},
		{name: "above threshold is kept", opts: DefaultOptions(), size: 201, wantAdded: true},
		{name: "disabled filter keeps everything", opts: Options{MinTransferSize: NoSizeFilter}, size: 0, wantAdded: true},
		{name: "custom threshold", opts: Options{MinTransferSize: 500}, size: 400, wantAdded: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			aggregator := NewTraceAggregator(tt.opts)
			outcome, err := aggregator.Add(blerReport(models.DirectionDL, 2, 0.1, 5, tt.size))
			require.NoError(t, err)

			_, added := aggregator.Result().BlockError[models.AggregateKey{Direction: models.DirectionDL, UserID: 2}]
			assert.Equal(t, tt.wantAdded, added)
			if tt.wantAdded {
				assert.Equal(t, OutcomeAccepted, outcome)
			} else {
				assert.Equal(t, OutcomeFiltered, outcome)
			}
		})
	}
}

func TestTraceAggregator_MCSAnomalyAndUndershoot(t *testing.T) {
	t.Parallel()

	aggregator := NewTraceAggregator(DefaultOptions())

	anomaly := blerReport(models.DirectionDL, 4, 0.3, 12, 300)
	anomaly.HasRequestedMCS = true
	anomaly.RequestedMCS = 7
	anomaly.AchievedMCS = 9
	anomaly.CorruptedBytes = 40

	undershoot := blerReport(models.DirectionDL, 4, 0.3, 12, 300)
	undershoot.HasRequestedMCS = true
	undershoot.RequestedMCS = 9
	undershoot.AchievedMCS = 5
	undershoot.Undershoot = true
	undershoot.CorruptedBytes = 40

	outcome, err := aggregator.Add(anomaly)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAnomaly, outcome)

	outcome, err = aggregator.Add(undershoot)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAccepted, outcome)

	agg := aggregator.Result().BlockError[models.AggregateKey{Direction: models.DirectionDL, UserID: 4}]
	assert.Equal(t, int64(2), agg.Count(), "anomalies are still aggregated")
	assert.Equal(t, int64(1), agg.MCSAnomalies)
	assert.Equal(t, int64(1), agg.Undershoots)
	assert.Equal(t, []int{7, 9}, agg.RequestedMCS)
	assert.Equal(t, []int{9, 5}, agg.MCSSamples)
	assert.InDelta(t, 40, agg.Corrupted.Value(), 1e-12)
}

func TestTraceAggregator_FilteredAnomalyIsNotCounted(t *testing.T) {
	t.Parallel()

	aggregator := NewTraceAggregator(DefaultOptions())
	r := blerReport(models.DirectionUL, 4, 0.3, 12, 100)
	r.HasRequestedMCS = true
	r.RequestedMCS = 7
	r.CorruptedBytes = 40

	outcome, err := aggregator.Add(r)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFiltered, outcome)
	assert.Empty(t, aggregator.Result().BlockError)
}

func TestTraceAggregator_ByteCountDuplicatesAreSummed(t *testing.T) {
	t.Parallel()

	aggregator := NewTraceAggregator(DefaultOptions())
	key := models.AggregateKey{Direction: models.DirectionDL, UserID: 3}

	outcome, err := aggregator.Add(&models.ByteCountReport{Direction: models.DirectionDL, UserID: 3, Bytes: 128})
	require.NoError(t, err)
	assert.Equal(t, OutcomeAccepted, outcome)
	assert.Equal(t, int64(128), aggregator.Result().ReceivedBytes[key].Bytes)

	outcome, err = aggregator.Add(&models.ByteCountReport{Direction: models.DirectionDL, UserID: 3, Bytes: 128})
	require.NoError(t, err)
	assert.Equal(t, OutcomeDuplicate, outcome)
	assert.Equal(t, int64(256), aggregator.Result().ReceivedBytes[key].Bytes)
	assert.Equal(t, int64(2), aggregator.Result().ReceivedBytes[key].Reports)

	outcome, err = aggregator.Add(&models.ByteCountReport{Direction: models.DirectionUL, UserID: 3, Bytes: 7})
	require.NoError(t, err)
	assert.Equal(t, OutcomeAccepted, outcome, "same user in the other direction is a different key")
}

func TestTraceAggregator_BeamGainSamples(t *testing.T) {
	t.Parallel()

	aggregator := NewTraceAggregator(DefaultOptions())
	for _, g := range []float64{0.5, 1.5} {
		outcome, err := aggregator.Add(&models.BeamGainReport{TxNode: 1, RxNode: 2, TxBeam: 0, RxBeam: 3, Gain: g})
		require.NoError(t, err)
		assert.Equal(t, OutcomeAccepted, outcome)
	}

	agg := aggregator.Result().BeamGain[models.BeamKey{TxNode: 1, RxNode: 2, TxBeam: 0, RxBeam: 3}]
	require.NotNil(t, agg)
	assert.Equal(t, []float64{0.5, 1.5}, agg.Samples.Float64s())
	assert.Equal(t, 1.0, agg.Gain.Value())
}

func TestTraceAggregator_Pdcp(t *testing.T) {
	t.Parallel()

	aggregator := NewTraceAggregator(DefaultOptions())
	records := []*models.PdcpReport{
		{Mode: models.PdcpTx, DrbID: 3, Size: 1000},
		{Mode: models.PdcpTx, DrbID: 1, Size: 50},
		{Mode: models.PdcpRx, DrbID: 3, Size: 900, Delay: 2e6},
		{Mode: models.PdcpRx, DrbID: 4, Size: 100, Delay: 4e6},
		{Mode: models.PdcpRx, DrbID: 2, Size: 70, Delay: 9e9},
	}
	var outcomes []Outcome
	for _, r := range records {
		outcome, err := aggregator.Add(r)
		require.NoError(t, err)
		outcomes = append(outcomes, outcome)
	}

	assert.Equal(t, []Outcome{OutcomeAccepted, OutcomeFiltered, OutcomeAccepted, OutcomeAccepted, OutcomeFiltered}, outcomes)
	pdcp := aggregator.Result().Pdcp
	assert.Equal(t, int64(1000), pdcp.TxBytes)
	assert.Equal(t, int64(1000), pdcp.RxBytes)
	assert.Equal(t, 3e6, pdcp.Delay.Value())
	assert.Equal(t, []float64{2e6, 4e6}, pdcp.DelaySamples.Float64s())
}

type unknownRecord struct{}

func (unknownRecord) Family() models.Family { return "unknown" }

func TestTraceAggregator_UnsupportedRecord(t *testing.T) {
	t.Parallel()

	aggregator := NewTraceAggregator(DefaultOptions())
	_, err := aggregator.Add(unknownRecord{})
	assert.ErrorIs(t, err, ErrUnsupportedRecord)
}

func TestTraceAggregator_FreshPerFile(t *testing.T) {
	t.Parallel()

	first := NewTraceAggregator(DefaultOptions())
	_, err := first.Add(&models.ByteCountReport{Direction: models.DirectionDL, UserID: 3, Bytes: 128})
	require.NoError(t, err)

	second := NewTraceAggregator(DefaultOptions())
	assert.Empty(t, second.Result().ReceivedBytes)
	assert.Len(t, first.Result().ReceivedBytes, 1)
}
