package models

// RunMetrics are the per-run values written to the parsed results CSV.
type RunMetrics struct {
	AvgSINRUL    float64
	AvgSINRDL    float64
	AvgBLERUL    float64
	AvgBLERDL    float64
	ULTxPdcpData float64
	ULRxPdcpData float64
	ULPdcpDelay  float64
	DLTxPdcpData float64
	DLRxPdcpData float64
	DLPdcpDelay  float64
}

// MetricColumns is the fixed column order of RunMetrics in CSV output.
var MetricColumns = []string{
	"avgSinrUl", "avgSinrDl", "avgBlerUl", "avgBlerDl",
	"ulTxPdcpData", "ulRxPdcpData", "ulPdcpDelay",
	"dlTxPdcpData", "dlRxPdcpData", "dlPdcpDelay",
}

// Values returns the metrics in MetricColumns order.
func (m RunMetrics) Values() []float64 {
	return []float64{
		m.AvgSINRUL, m.AvgSINRDL, m.AvgBLERUL, m.AvgBLERDL,
		m.ULTxPdcpData, m.ULRxPdcpData, m.ULPdcpDelay,
		m.DLTxPdcpData, m.DLRxPdcpData, m.DLPdcpDelay,
	}
}

// RunResult is one simulation run: its parameter combination and computed metrics.
type RunResult struct {
	RunID   string
	Params  map[string]any
	Metrics RunMetrics
}

// Statistic is a mean with its spread across the runs of one parameter combination.
type Statistic struct {
	Mean     float64
	Variance float64
	StdErr   float64
	Samples  int
}

// SummaryRow aggregates every run that shares a parameter combination (ignoring the seed).
type SummaryRow struct {
	Params  map[string]any
	Runs    int
	Metrics map[string]Statistic
	PRRUL   Statistic
	PRRDL   Statistic
}
