package campaigns

import (
	"encoding/json"
	"maps"
	"math"

	"trace-analytics/internal/models"
)

// Summarize groups runs that share every parameter except the ignored ones
// (the random seed) and computes the spread of each metric across a group.
// Groups keep the order in which their first run appears.
func Summarize(runs []*models.RunResult, ignore []string) []models.SummaryRow {
	type group struct {
		params map[string]any
		runs   []*models.RunResult
	}
	var order []string
	groups := make(map[string]*group)

	for _, run := range runs {
		params := maps.Clone(run.Params)
		for _, name := range ignore {
			delete(params, name)
		}
		// json.Marshal sorts map keys, which makes the encoding a stable group key.
		raw, _ := json.Marshal(params)
		key := string(raw)
		g, ok := groups[key]
		if !ok {
			g = &group{params: params}
			groups[key] = g
			order = append(order, key)
		}
		g.runs = append(g.runs, run)
	}

	rows := make([]models.SummaryRow, 0, len(order))
	for _, key := range order {
		g := groups[key]
		row := models.SummaryRow{
			Params:  g.params,
			Runs:    len(g.runs),
			Metrics: make(map[string]models.Statistic, len(models.MetricColumns)),
		}
		for i, column := range models.MetricColumns {
			values := make([]float64, len(g.runs))
			for j, run := range g.runs {
				values[j] = run.Metrics.Values()[i]
			}
			row.Metrics[column] = statistic(values)
		}

		ulRatio := make([]float64, len(g.runs))
		dlRatio := make([]float64, len(g.runs))
		for j, run := range g.runs {
			ulRatio[j] = run.Metrics.ULRxPdcpData / run.Metrics.ULTxPdcpData
			dlRatio[j] = run.Metrics.DLRxPdcpData / run.Metrics.DLTxPdcpData
		}
		row.PRRUL = statistic(ulRatio)
		row.PRRDL = statistic(dlRatio)

		rows = append(rows, row)
	}
	return rows
}

// statistic ignores NaN and infinite values. Variance is the population variance
// and StdErr is its square root over the square root of the sample count.
func statistic(values []float64) models.Statistic {
	var n int
	var sum float64
	for _, v := range values {
		if isFinite(v) {
			n++
			sum += v
		}
	}
	if n == 0 {
		return models.Statistic{Mean: math.NaN(), Variance: math.NaN(), StdErr: math.NaN()}
	}

	mean := sum / float64(n)
	var sq float64
	for _, v := range values {
		if isFinite(v) {
			sq += (v - mean) * (v - mean)
		}
	}
	variance := sq / float64(n)
	return models.Statistic{
		Mean:     mean,
		Variance: variance,
		StdErr:   math.Sqrt(variance) / math.Sqrt(float64(n)),
		Samples:  n,
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
