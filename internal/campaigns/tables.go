package campaigns

import (
	"fmt"
	"slices"
	"strconv"

	"trace-analytics/internal/models"
)

// ResultsTable has one row per run: every parameter, then every metric.
func ResultsTable(name string, runs []*models.RunResult) *models.Table {
	params := make([]map[string]any, len(runs))
	for i, r := range runs {
		params[i] = r.Params
	}
	columns := paramColumns(params)

	t := &models.Table{Name: name, Header: append(slices.Clone(columns), models.MetricColumns...)}
	for _, r := range runs {
		row := make([]string, 0, len(t.Header))
		for _, c := range columns {
			row = append(row, formatParam(r.Params[c]))
		}
		for _, v := range r.Metrics.Values() {
			row = append(row, models.FormatFloat(v))
		}
		t.AddRow(row...)
	}
	return t
}

// SummaryTable has one row per parameter combination with mean, variance and
// standard error columns per metric, followed by the packet reception ratios.
func SummaryTable(name string, rows []models.SummaryRow) *models.Table {
	params := make([]map[string]any, len(rows))
	for i, r := range rows {
		params[i] = r.Params
	}
	columns := paramColumns(params)

	header := append(slices.Clone(columns), "runs")
	for _, m := range models.MetricColumns {
		header = append(header, m+"Mean", m+"Var", m+"StdErr")
	}
	header = append(header, "prrUlMean", "prrUlStdErr", "prrDlMean", "prrDlStdErr")

	t := &models.Table{Name: name, Header: header}
	for _, r := range rows {
		row := make([]string, 0, len(header))
		for _, c := range columns {
			row = append(row, formatParam(r.Params[c]))
		}
		row = append(row, strconv.Itoa(r.Runs))
		for _, m := range models.MetricColumns {
			s := r.Metrics[m]
			row = append(row, models.FormatFloat(s.Mean), models.FormatFloat(s.Variance), models.FormatFloat(s.StdErr))
		}
		row = append(row,
			models.FormatFloat(r.PRRUL.Mean), models.FormatFloat(r.PRRUL.StdErr),
			models.FormatFloat(r.PRRDL.Mean), models.FormatFloat(r.PRRDL.StdErr))
		t.AddRow(row...)
	}
	return t
}

// paramColumns is the sorted union of parameter names.
func paramColumns(params []map[string]any) []string {
	seen := make(map[string]struct{})
	var columns []string
	for _, p := range params {
		for name := range p {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				columns = append(columns, name)
			}
		}
	}
	slices.Sort(columns)
	return columns
}

func formatParam(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case float64:
		return models.FormatFloat(v)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
