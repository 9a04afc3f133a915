package models

import "fmt"

// Direction identifies the link a report belongs to.
type Direction string

const (
	DirectionDL Direction = "DL"
	DirectionUL Direction = "UL"
)

// Directions lists both links in reporting order.
var Directions = []Direction{DirectionDL, DirectionUL}

func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionDL, DirectionUL:
		return Direction(s), nil
	}
	return "", fmt.Errorf("invalid direction: %q", s)
}

// Long returns the spelled-out link name used in per-user tables.
func (d Direction) Long() string {
	switch d {
	case DirectionDL:
		return "downlink"
	case DirectionUL:
		return "uplink"
	default:
		panic(fmt.Sprintf("invalid Direction: %q", d))
	}
}
