package parsers

import (
	"strings"

	"trace-analytics/internal/models"
)

const (
	fieldEndSym = "end_symbol"
	fieldLayer  = "layer"
	fieldLayers = "layers"
	fieldUE     = "ue"

	allocationPrefix = "Fr "
)

// Example: "Fr 12 Sf 3 SfType DL sym range 2 to 5 of 14, DL to UE 3, layerIdx 1 of 2"
var allocationFields = textFieldTable{
	{name: fieldFrame, marker: "Fr"},
	{name: fieldSubframe, marker: "Sf"},
	{name: fieldStartSym, marker: "sym range"},
	{name: fieldEndSym, marker: "to", after: "sym range"},
	{name: fieldLayer, marker: "layerIdx", optional: true},
	{name: fieldLayers, marker: "of", after: "layerIdx", optional: true},
	{name: fieldUE, marker: "to UE", optional: true},
}

// AllocationLine is one scheduler allocation printed to the simulator log.
type AllocationLine struct {
	Frame       int
	Subframe    int
	StartSymbol int
	EndSymbol   int
	Layer       int
	Layers      int
	Type        models.SlotType
	UE          int
}

// ParseAllocationLine decodes a scheduler allocation line. ok is false for
// lines that are not allocations; err is set when an allocation line is malformed.
func ParseAllocationLine(line string) (a AllocationLine, ok bool, err error) {
	if !strings.HasPrefix(line, allocationPrefix) {
		return a, false, nil
	}
	t := allocationFields

	if a.Frame, err = t.int(line, fieldFrame); err != nil {
		return a, true, err
	}
	if a.Subframe, err = t.int(line, fieldSubframe); err != nil {
		return a, true, err
	}
	if a.StartSymbol, err = t.int(line, fieldStartSym); err != nil {
		return a, true, err
	}
	if a.EndSymbol, err = t.int(line, fieldEndSym); err != nil {
		return a, true, err
	}

	a.Layers = 1
	if _, found := t.lookup(fieldLayer).raw(line); found {
		if a.Layer, err = t.int(line, fieldLayer); err != nil {
			return a, true, err
		}
		if a.Layers, err = t.int(line, fieldLayers); err != nil {
			return a, true, err
		}
	}

	switch {
	case strings.Contains(line, "DL CTRL"):
		a.Type = models.SlotDLCtrl
	case strings.Contains(line, "UL CTRL"):
		a.Type = models.SlotULCtrl
	case strings.Contains(line, "to UE "):
		if a.UE, err = t.int(line, fieldUE); err != nil {
			return a, true, err
		}
		switch {
		case strings.Contains(line, "DL"):
			a.Type = models.SlotDLData
		case strings.Contains(line, "UL"):
			a.Type = models.SlotULData
		default:
			a.Type = models.SlotUnknown
		}
	default:
		a.Type = models.SlotUnknown
	}
	return a, true, nil
}

// Size is the number of symbols the allocation spans, both ends included.
func (a AllocationLine) Size() int {
	return a.EndSymbol - a.StartSymbol + 1
}
