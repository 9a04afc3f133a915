package models

import (
	"math"
	"strconv"
)

// Table is a named, rectangular block of plot-ready values. Cells are already
// formatted; an empty cell stands for a missing value.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// AddRow appends a row. It panics when the row width differs from the header,
// which is always a programming error.
func (t *Table) AddRow(cells ...string) {
	if len(cells) != len(t.Header) {
		panic("models: table row width does not match header")
	}
	t.Rows = append(t.Rows, cells)
}

// FormatFloat renders a cell value. NaN becomes an empty cell so that
// spreadsheet and pandas readers see a missing value.
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
