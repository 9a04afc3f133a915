package reports

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"

	"trace-analytics/internal/models"
)

// PlotName builds the output name of one series, e.g. BLER_DL_plot-harq.
// Series without a link direction leave the direction part out.
func PlotName(kind models.MetricKind, dir models.Direction, tag string) string {
	if dir == "" {
		return fmt.Sprintf("%s_plot%s", kind.SeriesName(), tag)
	}
	return fmt.Sprintf("%s_%s_plot%s", kind.SeriesName(), dir, tag)
}

// BLERBars has one row per file: the mean over users of each user's mean BLER.
func BLERBars(set *models.ResultSet, dir models.Direction, tag string) *models.Table {
	t := &models.Table{
		Name:   PlotName(models.MetricBlockErrorRate, dir, tag),
		Header: []string{"label", "bler"},
	}
	for _, r := range set.Results {
		var perUser []float64
		for _, key := range blockErrorKeys(r.Aggregates, dir) {
			perUser = append(perUser, r.Aggregates.BlockError[key].BLER.Value())
		}
		t.AddRow(r.Label, models.FormatFloat(mean(perUser)))
	}
	return t
}

// ReceivedBytesBars has one row per file: the received bytes summed over users.
func ReceivedBytesBars(set *models.ResultSet, dir models.Direction, tag string) *models.Table {
	t := &models.Table{
		Name:   PlotName(models.MetricByteCount, dir, tag),
		Header: []string{"label", "bytes"},
	}
	for _, r := range set.Results {
		var total int64
		for key, agg := range r.Aggregates.ReceivedBytes {
			if key.Direction == dir {
				total += agg.Bytes
			}
		}
		t.AddRow(r.Label, strconv.FormatInt(total, 10))
	}
	return t
}

// SINRCDF is the empirical CDF of every retained SINR sample of a file, all users pooled.
func SINRCDF(set *models.ResultSet, dir models.Direction, tag string) *models.Table {
	t := &models.Table{
		Name:   PlotName(models.MetricSINR, dir, tag),
		Header: []string{"label", "sinr_db", "cdf"},
	}
	for _, r := range set.Results {
		var pooled []float64
		for _, key := range blockErrorKeys(r.Aggregates, dir) {
			pooled = append(pooled, r.Aggregates.BlockError[key].SINRSamples.Float64s()...)
		}
		x, y := ECDF(pooled)
		for i := range x {
			t.AddRow(r.Label, models.FormatFloat(x[i]), models.FormatFloat(y[i]))
		}
	}
	return t
}

// MCSScatter pairs each achieved MCS with the SINR of the same report.
func MCSScatter(set *models.ResultSet, dir models.Direction, tag string) *models.Table {
	t := &models.Table{
		Name:   PlotName(models.MetricMCS, dir, tag),
		Header: []string{"label", "mcs", "sinr_db"},
	}
	for _, r := range set.Results {
		for _, key := range blockErrorKeys(r.Aggregates, dir) {
			agg := r.Aggregates.BlockError[key]
			n := min(len(agg.MCSSamples), len(agg.SINRSamples))
			for i := 0; i < n; i++ {
				t.AddRow(r.Label, strconv.Itoa(agg.MCSSamples[i]), models.FormatFloat(float64(agg.SINRSamples[i])))
			}
		}
	}
	return t
}

// BeamGainSeries lists the gain samples of every beam pair in observation order.
func BeamGainSeries(set *models.ResultSet, tag string) *models.Table {
	t := &models.Table{
		Name:   PlotName(models.MetricBeamGain, "", tag),
		Header: []string{"label", "tx_node", "rx_node", "tx_beam", "rx_beam", "sample", "gain"},
	}
	for _, r := range set.Results {
		keys := make([]models.BeamKey, 0, len(r.Aggregates.BeamGain))
		for key := range r.Aggregates.BeamGain {
			keys = append(keys, key)
		}
		slices.SortFunc(keys, compareBeamKeys)
		for _, key := range keys {
			for i, g := range r.Aggregates.BeamGain[key].Samples {
				t.AddRow(r.Label,
					strconv.Itoa(key.TxNode), strconv.Itoa(key.RxNode),
					strconv.Itoa(key.TxBeam), strconv.Itoa(key.RxBeam),
					strconv.Itoa(i), models.FormatFloat(float64(g)))
			}
		}
	}
	return t
}

// PdcpDelayCDF is the binned CDF of received PDCP packet delays.
func PdcpDelayCDF(set *models.ResultSet, tag string, bins int) *models.Table {
	t := &models.Table{
		Name:   PlotName(models.MetricPdcpDelay, "", tag),
		Header: []string{"label", "delay", "cdf"},
	}
	for _, r := range set.Results {
		var delays []float64
		for _, d := range r.Aggregates.Pdcp.DelaySamples {
			if !math.IsInf(float64(d), 0) {
				delays = append(delays, float64(d))
			}
		}
		x, y := BinnedECDF(delays, bins)
		for i := range x {
			t.AddRow(r.Label, models.FormatFloat(x[i]), models.FormatFloat(y[i]))
		}
	}
	return t
}

// UserLines renders the per-user block error summary, downlink users first.
//
//	File RxPacketTrace.txt User 5 downlink TBLER 0.150 AvgSINR 17.40 dB CRPT 0.00
func UserLines(set *models.ResultSet) []string {
	var lines []string
	for _, r := range set.Results {
		for _, dir := range models.Directions {
			for _, key := range blockErrorKeys(r.Aggregates, dir) {
				agg := r.Aggregates.BlockError[key]
				lines = append(lines, fmt.Sprintf("File %s User %d %-8s TBLER %.3f AvgSINR %.2f dB CRPT %.2f",
					r.Source, key.UserID, dir.Long(), agg.BLER.Value(), agg.AvgSINRdB(), agg.Corrupted.Value()))
			}
		}
	}
	return lines
}

func blockErrorKeys(aggregates *models.FileAggregates, dir models.Direction) []models.AggregateKey {
	var keys []models.AggregateKey
	for key := range aggregates.BlockError {
		if key.Direction == dir {
			keys = append(keys, key)
		}
	}
	slices.SortFunc(keys, func(a, b models.AggregateKey) int { return cmp.Compare(a.UserID, b.UserID) })
	return keys
}

func compareBeamKeys(a, b models.BeamKey) int {
	return cmp.Or(
		cmp.Compare(a.TxNode, b.TxNode),
		cmp.Compare(a.RxNode, b.RxNode),
		cmp.Compare(a.TxBeam, b.TxBeam),
		cmp.Compare(a.RxBeam, b.RxBeam),
	)
}
