package campaigns

import (
	"context"
	"math"
	"path"

	"trace-analytics/internal/ingestors"
	"trace-analytics/internal/models"
)

// Files names the per-run trace files read by the analyzer.
type Files struct {
	RxTrace string
	UlPdcp  string
	DlPdcp  string
}

//go:generate mockgen -source=analyzer.go -destination=./mocks/analyzer_mock.go -package=mocks
type Analyzer interface {
	// Analyze reads the parameters and traces of one run and computes its metrics.
	Analyze(ctx context.Context, run Run) (*models.RunResult, error)
}

type analyzer struct {
	loader   Loader
	pipeline ingestors.Pipeline
	files    Files
}

// NewAnalyzer expects a pipeline built without a transfer size filter:
// run metrics average every transport block.
func NewAnalyzer(loader Loader, pipeline ingestors.Pipeline, files Files) Analyzer {
	return &analyzer{loader: loader, pipeline: pipeline, files: files}
}

func (a *analyzer) Analyze(ctx context.Context, run Run) (*models.RunResult, error) {
	params, err := a.loader.Params(ctx, run)
	if err != nil {
		return nil, err
	}

	phy, err := a.process(ctx, run, a.files.RxTrace, models.FormatRxTrace)
	if err != nil {
		return nil, err
	}
	ul, err := a.process(ctx, run, a.files.UlPdcp, models.FormatPdcp)
	if err != nil {
		return nil, err
	}
	dl, err := a.process(ctx, run, a.files.DlPdcp, models.FormatPdcp)
	if err != nil {
		return nil, err
	}

	m := models.RunMetrics{
		AvgSINRUL:    directionSINR(phy, models.DirectionUL),
		AvgSINRDL:    directionSINR(phy, models.DirectionDL),
		AvgBLERUL:    directionBLER(phy, models.DirectionUL),
		AvgBLERDL:    directionBLER(phy, models.DirectionDL),
		ULTxPdcpData: float64(ul.Pdcp.TxBytes),
		ULRxPdcpData: float64(ul.Pdcp.RxBytes),
		ULPdcpDelay:  ul.Pdcp.Delay.Value(),
		DLTxPdcpData: float64(dl.Pdcp.TxBytes),
		DLRxPdcpData: float64(dl.Pdcp.RxBytes),
		DLPdcpDelay:  dl.Pdcp.Delay.Value(),
	}
	return &models.RunResult{RunID: run.ID, Params: params, Metrics: m}, nil
}

func (a *analyzer) process(ctx context.Context, run Run, name string, format models.TraceFormat) (*models.FileAggregates, error) {
	rc, err := a.loader.Open(ctx, run, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	result, err := a.pipeline.Process(ctx, path.Join(run.ID, name), format, rc)
	if err != nil {
		return nil, err
	}
	return result.Aggregates, nil
}

func directionSINR(a *models.FileAggregates, dir models.Direction) float64 {
	agg, ok := a.BlockErrorByDirection[dir]
	if !ok {
		return math.NaN()
	}
	return agg.AvgSINRdB()
}

func directionBLER(a *models.FileAggregates, dir models.Direction) float64 {
	agg, ok := a.BlockErrorByDirection[dir]
	if !ok {
		return math.NaN()
	}
	return agg.BLER.Value()
}
