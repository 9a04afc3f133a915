package parsers

import (
	"strings"

	"trace-analytics/internal/models"
)

// Columns of UlPdcpStats.txt / DlPdcpStats.txt (space separated, one header line).
var pdcpColumns = columnFieldTable{
	{name: fieldMode, column: 0},
	{name: fieldTime, column: 1},
	{name: fieldDrbID, column: 4},
	{name: fieldSize, column: 5},
	{name: fieldDelay, column: 6},
}

type pdcpParser struct{}

func NewPdcpParser() LineParser {
	return &pdcpParser{}
}

func (p *pdcpParser) Format() models.TraceFormat {
	return models.FormatPdcp
}

func (p *pdcpParser) HeaderLines() int {
	return 1
}

// Parse ignores rows whose mode is neither Tx nor Rx.
func (p *pdcpParser) Parse(line string) ([]models.TraceRecord, error) {
	vals := strings.Fields(line)
	if len(vals) == 0 {
		return nil, nil
	}
	t := pdcpColumns
	mode := models.PdcpMode(vals[0])
	if mode != models.PdcpTx && mode != models.PdcpRx {
		return nil, nil
	}

	report := &models.PdcpReport{Mode: mode}
	var err error
	if report.Time, err = t.float(vals, fieldTime); err != nil {
		return nil, err
	}
	if report.DrbID, err = t.int(vals, fieldDrbID); err != nil {
		return nil, err
	}
	if report.Size, err = t.int64(vals, fieldSize); err != nil {
		return nil, err
	}
	if report.Delay, err = t.float(vals, fieldDelay); err != nil {
		return nil, err
	}
	return []models.TraceRecord{report}, nil
}
