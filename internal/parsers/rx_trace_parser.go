package parsers

import (
	"strings"

	"trace-analytics/internal/models"
)

// Columns of RxPacketTrace.txt (tab separated, one header line).
var rxTraceColumns = columnFieldTable{
	{name: fieldMode, column: 0},
	{name: fieldFrame, column: 2},
	{name: fieldSubframe, column: 3},
	{name: fieldStartSym, column: 4},
	{name: fieldNumSym, column: 5},
	{name: fieldRNTI, column: 7},
	{name: fieldSize, column: 9},
	{name: fieldMCS, column: 10},
	{name: fieldSINR, column: 12},
	{name: fieldCorrupted, column: 13},
	{name: fieldTBLER, column: 14},
	{name: fieldLayerDL, column: 15},
	{name: fieldLayerUL, column: 16},
}

// RxTraceRow is one decoded RxPacketTrace row.
type RxTraceRow struct {
	Mode        string
	Direction   models.Direction
	Frame       int
	Subframe    int
	StartSymbol int
	NumSymbols  int
	RNTI        int
	Size        int64
	MCS         int
	SINRdB      float64
	Corrupted   int64
	TBLER       float64

	// Layer is -1 when the row has no layer column for its direction.
	Layer int
}

// ParseRxTraceRow decodes a tab separated row. Rows whose mode names neither
// direction are returned with ErrUnknownDirection and a zero Direction.
func ParseRxTraceRow(line string) (RxTraceRow, error) {
	vals := strings.Split(line, "\t")
	t := rxTraceColumns
	row := RxTraceRow{Layer: -1}
	var err error

	if row.Mode, err = t.raw(vals, fieldMode); err != nil {
		return row, err
	}
	if row.Frame, err = t.int(vals, fieldFrame); err != nil {
		return row, err
	}
	if row.Subframe, err = t.int(vals, fieldSubframe); err != nil {
		return row, err
	}
	if row.StartSymbol, err = t.int(vals, fieldStartSym); err != nil {
		return row, err
	}
	if row.NumSymbols, err = t.int(vals, fieldNumSym); err != nil {
		return row, err
	}
	if row.RNTI, err = t.int(vals, fieldRNTI); err != nil {
		return row, err
	}
	if row.Size, err = t.int64(vals, fieldSize); err != nil {
		return row, err
	}
	if row.MCS, err = t.int(vals, fieldMCS); err != nil {
		return row, err
	}
	if row.SINRdB, err = t.float(vals, fieldSINR); err != nil {
		return row, err
	}
	if row.Corrupted, err = t.int64(vals, fieldCorrupted); err != nil {
		return row, err
	}
	if row.TBLER, err = t.float(vals, fieldTBLER); err != nil {
		return row, err
	}

	row.Direction, err = modeDirection(row.Mode)
	if err != nil {
		return row, err
	}
	layerField := fieldLayerDL
	if row.Direction == models.DirectionUL {
		layerField = fieldLayerUL
	}
	if t.lookup(layerField).column < len(vals) {
		if row.Layer, err = t.int(vals, layerField); err != nil {
			return row, err
		}
	}
	return row, nil
}

type rxTraceParser struct{}

// NewRxTraceParser decodes RxPacketTrace rows into block-error reports.
// The trace has no requested-MCS column, so undershoot is never set.
func NewRxTraceParser() LineParser {
	return &rxTraceParser{}
}

func (p *rxTraceParser) Format() models.TraceFormat {
	return models.FormatRxTrace
}

func (p *rxTraceParser) HeaderLines() int {
	return 1
}

func (p *rxTraceParser) Parse(line string) ([]models.TraceRecord, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}
	row, err := ParseRxTraceRow(line)
	if err != nil {
		return nil, err
	}
	return []models.TraceRecord{&models.BlockErrorReport{
		Direction:      row.Direction,
		UserID:         row.RNTI,
		TBLER:          row.TBLER,
		SINRdB:         row.SINRdB,
		CorruptedBytes: row.Corrupted,
		AchievedMCS:    row.MCS,
		TransferSize:   row.Size,
	}}, nil
}
