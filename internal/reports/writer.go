package reports

import (
	"context"
	"fmt"
	"strings"

	"trace-analytics/internal/models"
	"trace-analytics/internal/shared/loggers"
	"trace-analytics/internal/shared/metrics"
	"trace-analytics/internal/stores"
)

const DefaultEcdfBins = 100

type Writer interface {
	// Write emits every series the result set has data for and returns the written keys.
	// Results are rendered in set order so labelled series stay aligned across files.
	Write(ctx context.Context, set *models.ResultSet, tag string) ([]string, error)
}

type writer struct {
	store    stores.ReportStore
	ecdfBins int
}

// NewWriter returns a Writer backed by store. ecdfBins <= 0 means DefaultEcdfBins.
func NewWriter(store stores.ReportStore, ecdfBins int) Writer {
	if ecdfBins <= 0 {
		ecdfBins = DefaultEcdfBins
	}
	return &writer{store: store, ecdfBins: ecdfBins}
}

func (w *writer) Write(ctx context.Context, set *models.ResultSet, tag string) ([]string, error) {
	tables := Tables(set, tag, w.ecdfBins)

	keys := make([]string, 0, len(tables)+1)
	for _, t := range tables {
		key, err := w.store.PutTable(ctx, t)
		if err != nil {
			metricReportsWrittenTotal.WithLabelValues(seriesOf(t.Name), errCodeStore).Inc()
			return keys, err
		}
		metricReportsWrittenTotal.WithLabelValues(seriesOf(t.Name), metrics.ValueNoError).Inc()
		keys = append(keys, key)
	}

	if lines := UserLines(set); len(lines) > 0 {
		name := fmt.Sprintf("USERS_plot%s.txt", tag)
		key, err := w.store.PutText(ctx, name, []byte(strings.Join(lines, "\n")+"\n"))
		if err != nil {
			return keys, err
		}
		keys = append(keys, key)
	}

	loggers.Ctx(ctx).Debug().Int("reports", len(keys)).Str("tag", tag).Msg("reports written")
	return keys, nil
}

// Tables builds the series of every metric family present in at least one result.
func Tables(set *models.ResultSet, tag string, ecdfBins int) []*models.Table {
	var has struct{ blockError, bytes, beam, pdcp bool }
	for _, r := range set.Results {
		a := r.Aggregates
		has.blockError = has.blockError || len(a.BlockError) > 0
		has.bytes = has.bytes || len(a.ReceivedBytes) > 0
		has.beam = has.beam || len(a.BeamGain) > 0
		has.pdcp = has.pdcp || a.Pdcp.TxBytes > 0 || a.Pdcp.RxBytes > 0
	}

	var tables []*models.Table
	if has.blockError {
		for _, dir := range models.Directions {
			tables = append(tables, BLERBars(set, dir, tag), SINRCDF(set, dir, tag), MCSScatter(set, dir, tag))
		}
	}
	if has.bytes {
		for _, dir := range models.Directions {
			tables = append(tables, ReceivedBytesBars(set, dir, tag))
		}
	}
	if has.beam {
		tables = append(tables, BeamGainSeries(set, tag))
	}
	if has.pdcp {
		tables = append(tables, PdcpDelayCDF(set, tag, ecdfBins))
	}
	return tables
}

// seriesOf strips the tag from a plot name for use as a metric label.
func seriesOf(name string) string {
	series, _, _ := strings.Cut(name, "_plot")
	return series
}
