package ingestors

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"trace-analytics/internal/aggregators"
	"trace-analytics/internal/models"
	"trace-analytics/internal/parsers"
	"trace-analytics/internal/shared/loggers"
	"trace-analytics/internal/shared/readers"
)

const (
	maxLineBytes       = 1024 * 1024
	ctxCheckEveryLines = 4096
	maxDiagnostics     = 1000
)

var ErrLineTooLong = errors.New("trace line too long")

//go:generate mockgen -source=pipeline.go -destination=./mocks/pipeline_mock.go -package=mocks
type Pipeline interface {
	// Process runs classify, extract and aggregate over one trace in a single pass.
	// The returned result has no ID, label or creation time yet.
	Process(ctx context.Context, source string, format models.TraceFormat, r io.Reader) (*models.FileResult, error)
}

type pipeline struct {
	opts aggregators.Options
}

func NewPipeline(opts aggregators.Options) Pipeline {
	return &pipeline{opts: opts}
}

func (p *pipeline) Process(ctx context.Context, source string, format models.TraceFormat, r io.Reader) (*models.FileResult, error) {
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldTraceSource, source).
		Str(loggers.FieldTraceFormat, string(format)).
		Logger()

	parser, err := parsers.NewParser(format)
	if err != nil {
		return nil, err
	}

	input, encoding, err := readers.NewDecompressingReader(r)
	if err != nil {
		return nil, err
	}
	defer input.Close()
	logger.Debug().Str("encoding", string(encoding)).Msg("started processing trace")

	aggregator := aggregators.NewTraceAggregator(p.opts)
	result := &models.FileResult{
		Source:      source,
		Format:      format,
		Diagnostics: []models.Diagnostic{},
	}
	diagnose := func(d models.Diagnostic) {
		metricDiagnosticsTotal.WithLabelValues(string(d.Kind)).Inc()
		logger.Warn().
			Int(loggers.FieldLine, d.Line).
			Str(loggers.FieldDiagnosticKind, string(d.Kind)).
			Msg(d.Message)
		if len(result.Diagnostics) < maxDiagnostics {
			result.Diagnostics = append(result.Diagnostics, d)
		}
	}

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%ctxCheckEveryLines == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if lineNo <= parser.HeaderLines() {
			continue
		}

		line := scanner.Text()
		records, parseErr := parser.Parse(line)
		if parseErr != nil {
			var fieldErr *parsers.ParseError
			switch {
			case errors.As(parseErr, &fieldErr):
				fieldErr.Line = lineNo
				return nil, fmt.Errorf("%s: %w", source, fieldErr)
			case errors.Is(parseErr, parsers.ErrUnknownDirection):
				diagnose(models.Diagnostic{
					Kind:    models.DiagnosticUnknownDirection,
					Line:    lineNo,
					Raw:     line,
					Message: fmt.Sprintf("found a report with unknown DL/UL attribution (%v)", parseErr),
				})
			default:
				return nil, fmt.Errorf("%s line %d: %w", source, lineNo, parseErr)
			}
		}

		for _, record := range records {
			metricRecordsClassifiedTotal.WithLabelValues(string(record.Family())).Inc()
			outcome, err := aggregator.Add(record)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", source, lineNo, err)
			}
			switch outcome {
			case aggregators.OutcomeAnomaly:
				diagnose(models.Diagnostic{
					Kind:    models.DiagnosticMCSAnomaly,
					Line:    lineNo,
					Raw:     line,
					Message: "corrupted transport block sent at or above the requested MCS",
				})
			case aggregators.OutcomeDuplicate:
				diagnose(models.Diagnostic{
					Kind:    models.DiagnosticDuplicateByteCount,
					Line:    lineNo,
					Raw:     line,
					Message: "byte counter reported twice for the same user, values summed",
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%s line %d: %w", source, lineNo+1, ErrLineTooLong)
		}
		return nil, fmt.Errorf("%s: failed to read trace: %w", source, err)
	}

	result.LinesRead = lineNo
	result.Aggregates = aggregator.Result()
	logger.Debug().Int("lines_read", lineNo).Int("diagnostics", len(result.Diagnostics)).Msg("finished processing trace")
	return result, nil
}
