package models

import (
	"fmt"
	"strings"
)

// TraceFormat identifies the layout of an input trace file.
type TraceFormat string

const (
	// FormatRxTrace is the tab-separated RxPacketTrace with a header row.
	FormatRxTrace TraceFormat = "rx-trace"
	// FormatBlerLog is the semi-structured simulator log carrying TBLER reports.
	FormatBlerLog TraceFormat = "bler-log"
	// FormatPacketLog is the semi-structured log carrying received byte counters.
	FormatPacketLog TraceFormat = "pkt-log"
	// FormatBeamGainLog is the semi-structured log carrying beamforming gain reports.
	FormatBeamGainLog TraceFormat = "bf-gain"
	// FormatPdcp is the space-separated PDCP stats file with a header row.
	FormatPdcp TraceFormat = "pdcp"
)

var traceFormats = []TraceFormat{FormatRxTrace, FormatBlerLog, FormatPacketLog, FormatBeamGainLog, FormatPdcp}

func NewTraceFormatFromString(s string) (TraceFormat, error) {
	normalized := TraceFormat(strings.ToLower(strings.TrimSpace(s)))
	for _, f := range traceFormats {
		if f == normalized {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid trace format: %q", s)
}

// IsTextLog reports whether the format is parsed with marker-relative offsets.
func (f TraceFormat) IsTextLog() bool {
	return f == FormatBlerLog || f == FormatPacketLog || f == FormatBeamGainLog
}
