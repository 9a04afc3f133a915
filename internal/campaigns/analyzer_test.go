package campaigns_test

import (
	"context"
	"math"
	"testing"

	"trace-analytics/internal/aggregators"
	"trace-analytics/internal/campaigns"
	"trace-analytics/internal/ingestors"
	"trace-analytics/internal/shared/filestorages"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFiles = campaigns.Files{
	RxTrace: "RxPacketTrace.txt",
	UlPdcp:  "UlPdcpStats.txt",
	DlPdcp:  "DlPdcpStats.txt",
}

func newAnalyzer(t *testing.T, root string) (campaigns.Loader, campaigns.Analyzer) {
	t.Helper()
	fs, err := filestorages.NewFileStorage(root)
	require.NoError(t, err)
	loader := campaigns.NewLoader(fs, "data", "params.json")
	pipeline := ingestors.NewPipeline(aggregators.Options{
		MinTransferSize: aggregators.NoSizeFilter,
		MinDrbID:        aggregators.DefaultMinDrbID,
	})
	return loader, campaigns.NewAnalyzer(loader, pipeline, testFiles)
}

func TestAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeRun(t, root, "r0", `{"RngRun": 0, "harq": false}`,
		[]string{
			rx("DL", "100", "10", "0.1"),
			rx("DL", "1000", "20", "0.3"),
			rx("UL", "500", "5", "0.5"),
		},
		[]string{
			"Tx 0.1 1 3 3 100 0",
			"Rx 0.2 1 3 3 100 2000",
			"Tx 0.3 1 3 1 999 0",
		},
		[]string{
			"Tx 0.1 1 3 4 200 0",
			"Rx 0.2 1 3 4 150 1000",
			"Rx 0.3 1 3 4 50 3000",
		},
	)
	_, analyzer := newAnalyzer(t, root)

	result, err := analyzer.Analyze(context.Background(), campaigns.Run{ID: "r0", Dir: "data/r0"})
	require.NoError(t, err)

	assert.Equal(t, "r0", result.RunID)
	assert.Equal(t, map[string]any{"RngRun": float64(0), "harq": false}, result.Params)

	m := result.Metrics
	assert.InDelta(t, 10*math.Log10(55), m.AvgSINRDL, 1e-9, "small blocks are not filtered")
	assert.InDelta(t, 5, m.AvgSINRUL, 1e-9)
	assert.InDelta(t, 0.2, m.AvgBLERDL, 1e-9)
	assert.InDelta(t, 0.5, m.AvgBLERUL, 1e-9)
	assert.Equal(t, 100.0, m.ULTxPdcpData, "signalling bearer is excluded")
	assert.Equal(t, 100.0, m.ULRxPdcpData)
	assert.Equal(t, 2000.0, m.ULPdcpDelay)
	assert.Equal(t, 200.0, m.DLTxPdcpData)
	assert.Equal(t, 200.0, m.DLRxPdcpData)
	assert.Equal(t, 2000.0, m.DLPdcpDelay)
}

func TestAnalyzer_Analyze_MissingDirectionIsNaN(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeRun(t, root, "r0", `{"RngRun": 0}`,
		[]string{rx("DL", "300", "10", "0.1")},
		[]string{},
		[]string{},
	)
	_, analyzer := newAnalyzer(t, root)

	result, err := analyzer.Analyze(context.Background(), campaigns.Run{ID: "r0", Dir: "data/r0"})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(result.Metrics.AvgSINRUL))
	assert.True(t, math.IsNaN(result.Metrics.AvgBLERUL))
	assert.True(t, math.IsNaN(result.Metrics.ULPdcpDelay))
	assert.Equal(t, 0.0, result.Metrics.ULTxPdcpData)
}

func TestAnalyzer_Analyze_Errors(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeRun(t, root, "missing-pdcp", `{"RngRun": 0}`, []string{rx("DL", "300", "10", "0.1")}, nil, nil)
	writeRun(t, root, "malformed", `{"RngRun": 1}`, []string{rx("DL", "300", "ten", "0.1")}, []string{}, []string{})
	_, analyzer := newAnalyzer(t, root)
	ctx := context.Background()

	_, err := analyzer.Analyze(ctx, campaigns.Run{ID: "missing-pdcp", Dir: "data/missing-pdcp"})
	assert.ErrorIs(t, err, filestorages.ErrFileNotFound)

	_, err = analyzer.Analyze(ctx, campaigns.Run{ID: "malformed", Dir: "data/malformed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed/RxPacketTrace.txt")
}
