package models

import "math"

// RunningMean is an incrementally updated arithmetic mean.
//
// Updates use mean' = (mean*n + x)/(n+1) in observation order, so rounding accumulates
// exactly like a left-to-right fold over the accepted samples.
type RunningMean struct {
	Count int64 `json:"count"`
	Mean  Float `json:"mean"`
}

func (m *RunningMean) Add(x float64) {
	n := float64(m.Count)
	m.Mean = Float((float64(m.Mean)*n + x) * 1.0 / (n + 1))
	m.Count++
}

// Value returns the mean, or NaN when no sample was accepted.
func (m RunningMean) Value() float64 {
	if m.Count == 0 {
		return math.NaN()
	}
	return float64(m.Mean)
}

// LinearToDB converts a linear power ratio to decibels.
func LinearToDB(linear float64) float64 {
	return 10.0 * math.Log10(linear)
}

// DBToLinear converts decibels to a linear power ratio.
func DBToLinear(dB float64) float64 {
	return math.Pow(10.0, dB/10.0)
}
