package parsers

import (
	"strconv"
	"strings"
)

const defaultTerminators = " \t\r\n,;"

// textField describes where a value sits in a semi-structured log line:
// right after marker, up to the first terminator. When after is set the
// marker is searched for only past the first occurrence of after.
type textField struct {
	name        string
	marker      string
	after       string
	terminators string
	optional    bool
}

type textFieldTable []textField

// lookup finds the field by name. Tables are small and fixed, a linear scan is enough.
func (t textFieldTable) lookup(name string) textField {
	for _, f := range t {
		if f.name == name {
			return f
		}
	}
	panic("unknown text field: " + name)
}

// raw extracts the unparsed value of a field. ok is false when the marker is absent.
func (f textField) raw(line string) (string, bool) {
	if f.after != "" {
		j := strings.Index(line, f.after)
		if j < 0 {
			return "", false
		}
		line = line[j+len(f.after):]
	}
	i := indexToken(line, f.marker)
	if i < 0 {
		return "", false
	}
	rest := strings.TrimLeft(line[i+len(f.marker):], " \t=:")
	terminators := f.terminators
	if terminators == "" {
		terminators = defaultTerminators
	}
	if end := strings.IndexAny(rest, terminators); end >= 0 {
		rest = rest[:end]
	}
	return rest, rest != ""
}

func (t textFieldTable) int(line, name string) (int, error) {
	f := t.lookup(name)
	raw, ok := f.raw(line)
	if !ok {
		if f.optional {
			return 0, nil
		}
		return 0, &ParseError{Field: name, Err: ErrMissingField}
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ParseError{Field: name, Raw: raw, Err: err}
	}
	return v, nil
}

func (t textFieldTable) int64(line, name string) (int64, error) {
	f := t.lookup(name)
	raw, ok := f.raw(line)
	if !ok {
		if f.optional {
			return 0, nil
		}
		return 0, &ParseError{Field: name, Err: ErrMissingField}
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &ParseError{Field: name, Raw: raw, Err: err}
	}
	return v, nil
}

func (t textFieldTable) float(line, name string) (float64, error) {
	f := t.lookup(name)
	raw, ok := f.raw(line)
	if !ok {
		if f.optional {
			return 0, nil
		}
		return 0, &ParseError{Field: name, Err: ErrMissingField}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ParseError{Field: name, Raw: raw, Err: err}
	}
	return v, nil
}

// indexToken is strings.Index restricted to matches that are not part of a longer word,
// so "mcs" does not match inside "mcsReq" and "SINR" not inside "AvgSINR".
// A dot before the marker is a boundary, so "UePhy.RNTI" still matches "RNTI".
func indexToken(line, marker string) int {
	from := 0
	for from <= len(line)-len(marker) {
		i := strings.Index(line[from:], marker)
		if i < 0 {
			return -1
		}
		i += from
		end := i + len(marker)
		startsClean := !isWordByte(marker[0]) || i == 0 || line[i-1] == '.' || !isWordByte(line[i-1])
		endsClean := !isWordByte(marker[len(marker)-1]) || end == len(line) || !isWordByte(line[end])
		if startsClean && endsClean {
			return i
		}
		from = i + 1
	}
	return -1
}

func isWordByte(b byte) bool {
	return b == '_' || b == '.' ||
		('0' <= b && b <= '9') ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z')
}

// columnField maps a named value to a fixed column of a delimited row.
type columnField struct {
	name   string
	column int
}

type columnFieldTable []columnField

func (t columnFieldTable) lookup(name string) columnField {
	for _, f := range t {
		if f.name == name {
			return f
		}
	}
	panic("unknown column field: " + name)
}

// minColumns is the number of columns a row needs for every field in the table.
func (t columnFieldTable) minColumns() int {
	n := 0
	for _, f := range t {
		if f.column+1 > n {
			n = f.column + 1
		}
	}
	return n
}

func (t columnFieldTable) raw(vals []string, name string) (string, error) {
	f := t.lookup(name)
	if f.column >= len(vals) {
		return "", &ParseError{Field: name, Err: ErrMissingField}
	}
	return strings.TrimSpace(vals[f.column]), nil
}

func (t columnFieldTable) int(vals []string, name string) (int, error) {
	raw, err := t.raw(vals, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ParseError{Field: name, Raw: raw, Err: err}
	}
	return v, nil
}

func (t columnFieldTable) int64(vals []string, name string) (int64, error) {
	raw, err := t.raw(vals, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &ParseError{Field: name, Raw: raw, Err: err}
	}
	return v, nil
}

func (t columnFieldTable) float(vals []string, name string) (float64, error) {
	raw, err := t.raw(vals, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ParseError{Field: name, Raw: raw, Err: err}
	}
	return v, nil
}
