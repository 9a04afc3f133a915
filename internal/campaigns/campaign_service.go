package campaigns

import (
	"context"
	"errors"

	"trace-analytics/internal/models"
	"trace-analytics/internal/shared/loggers"
	"trace-analytics/internal/shared/metrics"
	"trace-analytics/internal/stores"

	"go.uber.org/multierr"
)

// Options names the output tables and the parameters left out of grouping.
type Options struct {
	ResultsName  string
	SummaryName  string
	IgnoreParams []string
}

// Report is the outcome of one campaign pass.
type Report struct {
	Runs    []*models.RunResult
	Summary []models.SummaryRow
	Keys    []string
	Failed  int
}

type CampaignService interface {
	// Summarize analyzes every run and writes the results and summary tables.
	// Failed runs are skipped; their errors are combined into the returned error
	// next to a report built from the remaining runs.
	Summarize(ctx context.Context) (*Report, error)
}

type campaignService struct {
	loader   Loader
	analyzer Analyzer
	store    stores.ReportStore
	opts     Options
}

func NewCampaignService(loader Loader, analyzer Analyzer, store stores.ReportStore, opts Options) CampaignService {
	return &campaignService{loader: loader, analyzer: analyzer, store: store, opts: opts}
}

func (s *campaignService) Summarize(ctx context.Context) (*Report, error) {
	logger := loggers.Ctx(ctx)

	runs, err := s.loader.Runs(ctx)
	if err != nil {
		if errors.Is(err, ErrNoRuns) {
			return nil, errNoRuns(err)
		}
		return nil, err
	}

	report := &Report{}
	var runErrs error
	for _, run := range runs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := s.analyzer.Analyze(ctx, run)
		if err != nil {
			svcErr := errRunFailed(run.ID, err)
			metricRunsAnalyzedTotal.WithLabelValues(svcErr.Code).Inc()
			logger.Warn().Err(err).Str(loggers.FieldRunID, run.ID).Msg("skipping failed run")
			runErrs = multierr.Append(runErrs, svcErr)
			report.Failed++
			continue
		}
		metricRunsAnalyzedTotal.WithLabelValues(metrics.ValueNoError).Inc()
		logger.Debug().Str(loggers.FieldRunID, run.ID).Msg("run analyzed")
		report.Runs = append(report.Runs, result)
	}

	report.Summary = Summarize(report.Runs, s.opts.IgnoreParams)

	for _, t := range []*models.Table{
		ResultsTable(s.opts.ResultsName, report.Runs),
		SummaryTable(s.opts.SummaryName, report.Summary),
	} {
		key, err := s.store.PutTable(ctx, t)
		if err != nil {
			return nil, multierr.Append(runErrs, errInternalReportStoreFailed(err))
		}
		report.Keys = append(report.Keys, key)
	}

	logger.Info().
		Int("runs", len(report.Runs)).
		Int("failed_runs", report.Failed).
		Int("groups", len(report.Summary)).
		Msg("campaign summarized")
	return report, runErrs
}
