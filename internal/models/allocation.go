package models

import "fmt"

// SlotType is the content of one run of OFDM symbols in a subframe layer.
type SlotType string

const (
	SlotPadding SlotType = "PADDING"
	SlotDLCtrl  SlotType = "DLCTRL"
	SlotULCtrl  SlotType = "ULCTRL"
	SlotDLData  SlotType = "DLDATA"
	SlotULData  SlotType = "ULDATA"
	SlotUnknown SlotType = "unknown"
	SlotBlank   SlotType = "blank"
)

// Slot is a contiguous run of Size symbols in one layer.
type Slot struct {
	Type SlotType `json:"type"`
	Size int      `json:"size"`
	UE   int      `json:"ue"`
}

// Label returns the text drawn inside the slot, empty for padding and unknown slots.
func (s Slot) Label() string {
	switch s.Type {
	case SlotDLCtrl:
		return "DC"
	case SlotULCtrl:
		return "UC"
	case SlotDLData:
		return fmt.Sprintf("D%d", s.UE)
	case SlotULData:
		return fmt.Sprintf("U%d", s.UE)
	}
	return ""
}

// Frame is the time-frequency allocation of one subframe, one slot list per layer.
type Frame struct {
	Subframe    int      `json:"subframe"`
	MaxSubframe int      `json:"maxSubframe"`
	Layers      [][]Slot `json:"layers"`
}

// SubframeIndex flattens a frame/subframe pair the way the simulator numbers them.
func SubframeIndex(frame, subframe int) int {
	return frame*10 + subframe
}

// Rect is a slot placed in the unit square.
type Rect struct {
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	Type   SlotType `json:"type"`
	Label  string   `json:"label,omitempty"`
}
