package reports_test

import (
	"math"
	"testing"

	"trace-analytics/internal/aggregators"
	"trace-analytics/internal/models"
	"trace-analytics/internal/reports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileResult(t *testing.T, source, label string, records ...models.TraceRecord) *models.FileResult {
	t.Helper()
	agg := aggregators.NewTraceAggregator(aggregators.Options{
		MinTransferSize: aggregators.NoSizeFilter,
		MinDrbID:        aggregators.DefaultMinDrbID,
	})
	for _, r := range records {
		_, err := agg.Add(r)
		require.NoError(t, err)
	}
	return &models.FileResult{Source: source, Label: label, Aggregates: agg.Result()}
}

func blockError(dir models.Direction, user int, tbler, sinr float64, mcs int) *models.BlockErrorReport {
	return &models.BlockErrorReport{Direction: dir, UserID: user, TBLER: tbler, SINRdB: sinr, AchievedMCS: mcs, TransferSize: 300}
}

func sampleSet(t *testing.T) *models.ResultSet {
	t.Helper()
	set := &models.ResultSet{}
	set.Add(fileResult(t, "a.txt", "harq",
		blockError(models.DirectionDL, 2, 0.25, 0, 4),
		blockError(models.DirectionDL, 1, 0.25, 10, 7),
		blockError(models.DirectionDL, 1, 0.75, 20, 9),
		&models.ByteCountReport{Direction: models.DirectionDL, UserID: 1, Bytes: 100},
		&models.ByteCountReport{Direction: models.DirectionDL, UserID: 2, Bytes: 28},
	))
	set.Add(fileResult(t, "b.txt", "no-harq",
		blockError(models.DirectionUL, 3, 0.5, 5, 2),
	))
	return set
}

func TestPlotName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "BLER_DL_plot-x", reports.PlotName(models.MetricBlockErrorRate, models.DirectionDL, "-x"))
	assert.Equal(t, "PKTS_UL_plot", reports.PlotName(models.MetricByteCount, models.DirectionUL, ""))
	assert.Equal(t, "BFGAIN_plot1", reports.PlotName(models.MetricBeamGain, "", "1"))
}

func TestBLERBars_MeanOfUserMeans(t *testing.T) {
	t.Parallel()

	set := sampleSet(t)

	dl := reports.BLERBars(set, models.DirectionDL, "")
	assert.Equal(t, "BLER_DL_plot", dl.Name)
	assert.Equal(t, [][]string{{"harq", "0.375"}, {"no-harq", ""}}, dl.Rows)

	ul := reports.BLERBars(set, models.DirectionUL, "")
	assert.Equal(t, [][]string{{"harq", ""}, {"no-harq", "0.5"}}, ul.Rows)
}

func TestReceivedBytesBars_SumsUsers(t *testing.T) {
	t.Parallel()

	set := sampleSet(t)

	dl := reports.ReceivedBytesBars(set, models.DirectionDL, "t")
	assert.Equal(t, "PKTS_DL_plott", dl.Name)
	assert.Equal(t, [][]string{{"harq", "128"}, {"no-harq", "0"}}, dl.Rows)
}

func TestSINRCDF_PoolsUsers(t *testing.T) {
	t.Parallel()

	table := reports.SINRCDF(sampleSet(t), models.DirectionDL, "")
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"harq", "0", "0"}, table.Rows[0])
	assert.Equal(t, "10", table.Rows[1][1])
	assert.Equal(t, "20", table.Rows[2][1])
}

func TestMCSScatter_PairsSamples(t *testing.T) {
	t.Parallel()

	table := reports.MCSScatter(sampleSet(t), models.DirectionDL, "")
	assert.Equal(t, [][]string{
		{"harq", "7", "10"},
		{"harq", "9", "20"},
		{"harq", "4", "0"},
	}, table.Rows)
}

func TestBeamGainSeries(t *testing.T) {
	t.Parallel()

	set := &models.ResultSet{}
	set.Add(fileResult(t, "bf.txt", "bf",
		&models.BeamGainReport{TxNode: 1, RxNode: 2, TxBeam: 0, RxBeam: 3, Gain: 0.5},
		&models.BeamGainReport{TxNode: 1, RxNode: 1, TxBeam: 0, RxBeam: 0, Gain: 2},
		&models.BeamGainReport{TxNode: 1, RxNode: 2, TxBeam: 0, RxBeam: 3, Gain: 1.5},
	))

	table := reports.BeamGainSeries(set, "")
	assert.Equal(t, [][]string{
		{"bf", "1", "1", "0", "0", "0", "2"},
		{"bf", "1", "2", "0", "3", "0", "0.5"},
		{"bf", "1", "2", "0", "3", "1", "1.5"},
	}, table.Rows)
}

func TestPdcpDelayCDF_DropsInfiniteDelays(t *testing.T) {
	t.Parallel()

	set := &models.ResultSet{}
	set.Add(fileResult(t, "UlPdcpStats.txt", "ul",
		&models.PdcpReport{Mode: models.PdcpRx, DrbID: 3, Size: 10, Delay: 1},
		&models.PdcpReport{Mode: models.PdcpRx, DrbID: 3, Size: 10, Delay: math.Inf(1)},
		&models.PdcpReport{Mode: models.PdcpRx, DrbID: 4, Size: 10, Delay: 3},
	))

	table := reports.PdcpDelayCDF(set, "", 3)
	assert.Equal(t, "DELAY_plot", table.Name)
	assert.Equal(t, [][]string{
		{"ul", "1", "0.5"},
		{"ul", "2", "0.5"},
		{"ul", "3", "1"},
	}, table.Rows)
}

func TestUserLines(t *testing.T) {
	t.Parallel()

	lines := reports.UserLines(sampleSet(t))
	assert.Equal(t, []string{
		"File a.txt User 1 downlink TBLER 0.500 AvgSINR 17.40 dB CRPT 0.00",
		"File a.txt User 2 downlink TBLER 0.250 AvgSINR 0.00 dB CRPT 0.00",
		"File b.txt User 3 uplink   TBLER 0.500 AvgSINR 5.00 dB CRPT 0.00",
	}, lines)
}
