package parsers

import (
	"errors"
	"fmt"
	"strings"

	"trace-analytics/internal/models"
)

const (
	fieldRNTI       = "rnti"
	fieldTBLER      = "tbler"
	fieldSINR       = "sinr"
	fieldSize       = "size"
	fieldRequested  = "requested_mcs"
	fieldMCS        = "mcs"
	fieldCorrupted  = "corrupted"
	fieldDirection  = "direction"
	fieldBytes      = "bytes"
	fieldTxNode     = "tx_node"
	fieldRxNode     = "rx_node"
	fieldTxBeam     = "tx_beam"
	fieldRxBeam     = "rx_beam"
	fieldGain       = "gain"
	fieldMode       = "mode"
	fieldTime       = "time"
	fieldDrbID      = "drb_id"
	fieldDelay      = "delay"
	fieldFrame      = "frame"
	fieldSubframe   = "subframe"
	fieldStartSym   = "start_symbol"
	fieldNumSym     = "num_symbols"
	fieldLayerDL    = "layer_dl"
	fieldLayerUL    = "layer_ul"
	byteCountPrefix = "number of"
)

// Example: "RNTI 5 TBLER 0.10 SINR 10 DL size 300 should be 9 mcs 7 corrupted 0"
var blockErrorFields = textFieldTable{
	{name: fieldRNTI, marker: "RNTI"},
	{name: fieldTBLER, marker: "TBLER"},
	{name: fieldSINR, marker: "SINR"},
	{name: fieldSize, marker: "size"},
	{name: fieldRequested, marker: "should be", optional: true},
	{name: fieldMCS, marker: "mcs"},
	{name: fieldCorrupted, marker: "corrupted", optional: true},
}

// Example: "The number of DL received bytes for UE 3: 128"
var byteCountFields = textFieldTable{
	{name: fieldDirection, marker: byteCountPrefix},
	{name: fieldRNTI, marker: "for UE", terminators: ":" + defaultTerminators},
	{name: fieldBytes, marker: ":", after: "for UE"},
}

// Example: "BF Gain TxId 1 RxId 2 TxBeam 0 RxBeam 3 g= 0.5"
var beamGainFields = textFieldTable{
	{name: fieldTxNode, marker: "TxId"},
	{name: fieldRxNode, marker: "RxId"},
	{name: fieldTxBeam, marker: "TxBeam"},
	{name: fieldRxBeam, marker: "RxBeam"},
	{name: fieldGain, marker: "g="},
}

type textLogParser struct {
	format models.TraceFormat
}

// NewTextLogParser parses the simulator's free-form log. All three text log
// formats share it: every family found on a line is decoded.
func NewTextLogParser(format models.TraceFormat) LineParser {
	return &textLogParser{format: format}
}

func (p *textLogParser) Format() models.TraceFormat {
	return p.format
}

func (p *textLogParser) HeaderLines() int {
	return 0
}

func (p *textLogParser) Parse(line string) ([]models.TraceRecord, error) {
	families := Classify(line)
	if len(families) == 0 {
		return nil, nil
	}

	var (
		records []models.TraceRecord
		skipped error
	)
	for _, family := range families {
		var (
			record models.TraceRecord
			err    error
		)
		switch family {
		case models.FamilyBlockError:
			record, err = parseBlockErrorLine(line)
		case models.FamilyByteCount:
			record, err = parseByteCountLine(line)
		case models.FamilyBeamGain:
			record, err = parseBeamGainLine(line)
		default:
			continue
		}
		if err != nil {
			if isUnknownDirection(err) {
				skipped = fmt.Errorf("%s: %w", family, err)
				continue
			}
			return nil, err
		}
		records = append(records, record)
	}
	return records, skipped
}

func parseBlockErrorLine(line string) (models.TraceRecord, error) {
	t := blockErrorFields
	rnti, err := t.int(line, fieldRNTI)
	if err != nil {
		return nil, err
	}
	tbler, err := t.float(line, fieldTBLER)
	if err != nil {
		return nil, err
	}
	sinr, err := t.float(line, fieldSINR)
	if err != nil {
		return nil, err
	}
	size, err := t.int64(line, fieldSize)
	if err != nil {
		return nil, err
	}
	achieved, err := t.int(line, fieldMCS)
	if err != nil {
		return nil, err
	}
	corrupted, err := t.int64(line, fieldCorrupted)
	if err != nil {
		return nil, err
	}

	report := &models.BlockErrorReport{
		UserID:         rnti,
		TBLER:          tbler,
		SINRdB:         sinr,
		CorruptedBytes: corrupted,
		AchievedMCS:    achieved,
		TransferSize:   size,
	}
	if _, ok := t.lookup(fieldRequested).raw(line); ok {
		requested, err := t.int(line, fieldRequested)
		if err != nil {
			return nil, err
		}
		report.RequestedMCS = requested
		report.HasRequestedMCS = true
		report.Undershoot = achieved < requested
	}

	direction, err := tokenDirection(line)
	if err != nil {
		return nil, err
	}
	report.Direction = direction
	return report, nil
}

func parseByteCountLine(line string) (models.TraceRecord, error) {
	t := byteCountFields
	raw, _ := t.lookup(fieldDirection).raw(line)
	direction, err := models.ParseDirection(raw)
	if err != nil {
		return nil, ErrUnknownDirection
	}
	rnti, err := t.int(line, fieldRNTI)
	if err != nil {
		return nil, err
	}
	bytes, err := t.int64(line, fieldBytes)
	if err != nil {
		return nil, err
	}
	return &models.ByteCountReport{Direction: direction, UserID: rnti, Bytes: bytes}, nil
}

func parseBeamGainLine(line string) (models.TraceRecord, error) {
	t := beamGainFields
	report := &models.BeamGainReport{}
	var err error
	if report.TxNode, err = t.int(line, fieldTxNode); err != nil {
		return nil, err
	}
	if report.RxNode, err = t.int(line, fieldRxNode); err != nil {
		return nil, err
	}
	if report.TxBeam, err = t.int(line, fieldTxBeam); err != nil {
		return nil, err
	}
	if report.RxBeam, err = t.int(line, fieldRxBeam); err != nil {
		return nil, err
	}
	if report.Gain, err = t.float(line, fieldGain); err != nil {
		return nil, err
	}
	return report, nil
}

// tokenDirection requires exactly one of the standalone tokens DL and UL.
func tokenDirection(line string) (models.Direction, error) {
	dl := indexToken(line, string(models.DirectionDL)) >= 0
	ul := indexToken(line, string(models.DirectionUL)) >= 0
	switch {
	case dl && !ul:
		return models.DirectionDL, nil
	case ul && !dl:
		return models.DirectionUL, nil
	default:
		return "", ErrUnknownDirection
	}
}

func isUnknownDirection(err error) bool {
	return errors.Is(err, ErrUnknownDirection)
}

// modeDirection reads the direction from a columnar mode field such as "DL" or "ULDATA".
func modeDirection(mode string) (models.Direction, error) {
	switch {
	case strings.Contains(mode, string(models.DirectionDL)):
		return models.DirectionDL, nil
	case strings.Contains(mode, string(models.DirectionUL)):
		return models.DirectionUL, nil
	default:
		return "", ErrUnknownDirection
	}
}
