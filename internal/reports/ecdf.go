package reports

import (
	"math"
	"slices"
	"sort"
)

// ECDF returns the sorted samples with y = i/n, the step curve drawn per file.
// NaN samples are dropped.
func ECDF(samples []float64) (x, y []float64) {
	x = sortedFinite(samples)
	y = make([]float64, len(x))
	for i := range x {
		y[i] = float64(i) / float64(len(x))
	}
	return x, y
}

// BinnedECDF evaluates the empirical CDF at bins evenly spaced points between
// the smallest and largest sample, y = |{s <= x}| / n.
func BinnedECDF(samples []float64, bins int) (x, y []float64) {
	sorted := sortedFinite(samples)
	if len(sorted) == 0 || bins <= 0 {
		return []float64{}, []float64{}
	}

	x = linspace(sorted[0], sorted[len(sorted)-1], bins)
	y = make([]float64, len(x))
	for i, v := range x {
		n := sort.Search(len(sorted), func(j int) bool { return sorted[j] > v })
		y[i] = float64(n) / float64(len(sorted))
	}
	return x, y
}

func linspace(start, stop float64, num int) []float64 {
	out := make([]float64, num)
	if num == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(num-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[num-1] = stop
	return out
}

func sortedFinite(samples []float64) []float64 {
	out := make([]float64, 0, len(samples))
	for _, s := range samples {
		if !math.IsNaN(s) {
			out = append(out, s)
		}
	}
	slices.Sort(out)
	return out
}

// mean is the plain arithmetic mean, NaN for no values.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
