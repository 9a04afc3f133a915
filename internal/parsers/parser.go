package parsers

import (
	"fmt"

	"trace-analytics/internal/models"
)

// LineParser decodes lines of one trace format into records.
//
// Parse returns (nil, nil) for lines that carry no metric. A line reporting
// several families yields one record per family. When some family on the line
// has no DL/UL attribution, the remaining records are returned together with an
// error wrapping ErrUnknownDirection. Any *ParseError is fatal for the file.
type LineParser interface {
	Format() models.TraceFormat
	// HeaderLines is the number of leading lines that are column headers.
	HeaderLines() int
	Parse(line string) ([]models.TraceRecord, error)
}

// NewParser returns the parser for a trace format.
func NewParser(format models.TraceFormat) (LineParser, error) {
	switch format {
	case models.FormatBlerLog, models.FormatPacketLog, models.FormatBeamGainLog:
		return NewTextLogParser(format), nil
	case models.FormatRxTrace:
		return NewRxTraceParser(), nil
	case models.FormatPdcp:
		return NewPdcpParser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
