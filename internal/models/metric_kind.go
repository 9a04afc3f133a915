package models

// Family is the metric family reported by one trace line.
type Family string

const (
	FamilyByteCount  Family = "byte_count"
	FamilyBlockError Family = "block_error"
	FamilyBeamGain   Family = "beam_gain"
	FamilyPdcp       Family = "pdcp"
)

// MetricKind names a single tracked metric. It is also used to name emitted series.
type MetricKind string

const (
	MetricByteCount      MetricKind = "byte_count"
	MetricBlockErrorRate MetricKind = "block_error_rate"
	MetricSINR           MetricKind = "sinr"
	MetricMCS            MetricKind = "mcs"
	MetricCorruption     MetricKind = "corruption"
	MetricBeamGain       MetricKind = "beam_gain"
	MetricPdcpDelay      MetricKind = "pdcp_delay"
)

// SeriesName returns the upper-case tag used in output file names.
func (m MetricKind) SeriesName() string {
	switch m {
	case MetricByteCount:
		return "PKTS"
	case MetricBlockErrorRate:
		return "BLER"
	case MetricSINR:
		return "SINR"
	case MetricMCS:
		return "MCS"
	case MetricCorruption:
		return "CRPT"
	case MetricBeamGain:
		return "BFGAIN"
	case MetricPdcpDelay:
		return "DELAY"
	}
	return string(m)
}
