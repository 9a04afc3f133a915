package allocations

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"trace-analytics/internal/models"
	"trace-analytics/internal/parsers"
)

const maxLineBytes = 1024 * 1024

// Source is the layout of a file that carries allocations.
type Source string

const (
	// SourceLog is the scheduler log with one "Fr N Sf M ..." line per allocation.
	SourceLog Source = "log"
	// SourceRxTrace is the tab-separated RxPacketTrace; control symbols are implied.
	SourceRxTrace Source = "rx-trace"
)

// SourceForFile picks the layout from a file name the way the simulator names its outputs.
func SourceForFile(name string) Source {
	if strings.Contains(name, ".log") {
		return SourceLog
	}
	return SourceRxTrace
}

// ParseFrame reads a whole file and builds the layout of one subframe
// (frame*10 + subframe). MaxSubframe is taken from every line of the file.
func ParseFrame(ctx context.Context, r io.Reader, source Source, subframe, maxSymbols int) (*models.Frame, error) {
	switch source {
	case SourceLog:
		return parseLogFrame(ctx, r, subframe)
	case SourceRxTrace:
		return parseRxTraceFrame(ctx, r, subframe, maxSymbols)
	}
	return nil, fmt.Errorf("unknown allocation source %q", source)
}

func parseLogFrame(ctx context.Context, r io.Reader, subframe int) (*models.Frame, error) {
	b := &frameBuilder{}
	maxSubframe, maxLayers := 0, 1

	err := scanLines(ctx, r, func(lineNo int, line string) error {
		a, ok, err := parsers.ParseAllocationLine(line)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		index := models.SubframeIndex(a.Frame, a.Subframe)
		maxSubframe = max(maxSubframe, index)
		maxLayers = max(maxLayers, a.Layers)
		if index == subframe {
			b.place(a.Layer, a.StartSymbol, models.Slot{Type: a.Type, Size: a.Size(), UE: a.UE})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.grow(maxLayers)
	return b.frame(subframe, maxSubframe), nil
}

func parseRxTraceFrame(ctx context.Context, r io.Reader, subframe, maxSymbols int) (*models.Frame, error) {
	b := &frameBuilder{}
	b.place(0, 0, models.Slot{Type: models.SlotDLCtrl, Size: 1})
	maxSubframe := 0

	err := scanLines(ctx, r, func(lineNo int, line string) error {
		if lineNo == 1 || strings.TrimSpace(line) == "" {
			return nil
		}
		row, err := parsers.ParseRxTraceRow(line)
		if errors.Is(err, parsers.ErrUnknownDirection) {
			return nil
		}
		if err != nil {
			return err
		}
		index := models.SubframeIndex(row.Frame, row.Subframe)
		maxSubframe = max(maxSubframe, index)
		if index != subframe {
			return nil
		}

		slotType := models.SlotDLData
		if row.Direction == models.DirectionUL {
			slotType = models.SlotULData
		}
		b.place(max(row.Layer, 0), row.StartSymbol, models.Slot{Type: slotType, Size: row.NumSymbols, UE: row.RNTI})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The uplink control symbol closes the subframe on the first layer.
	ulCtrl := maxSymbols - 1
	b.place(0, max(ulCtrl, b.next(0)), models.Slot{Type: models.SlotULCtrl, Size: 1})
	return b.frame(subframe, maxSubframe), nil
}

func scanLines(ctx context.Context, r io.Reader, fn func(lineNo int, line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%4096 == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(lineNo, scanner.Text()); err != nil {
			var parseErr *parsers.ParseError
			if errors.As(err, &parseErr) {
				parseErr.Line = lineNo
				return parseErr
			}
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read allocations: %w", err)
	}
	return nil
}
