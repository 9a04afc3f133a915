package allocations

import "trace-analytics/internal/models"

// Layout places the slots of a frame in the unit square: one row per layer,
// each slot as wide as its share of the fullest layer. A frame without slots
// is a single blank rectangle.
func Layout(frame *models.Frame) []models.Rect {
	maxSymbols := 0
	for _, layer := range frame.Layers {
		n := 0
		for _, s := range layer {
			n += s.Size
		}
		maxSymbols = max(maxSymbols, n)
	}
	if maxSymbols == 0 {
		return []models.Rect{{Width: 1, Height: 1, Type: models.SlotBlank}}
	}

	height := 1.0 / float64(len(frame.Layers))
	var rects []models.Rect
	for i, layer := range frame.Layers {
		x := 0.0
		for _, s := range layer {
			width := float64(s.Size) / float64(maxSymbols)
			rects = append(rects, models.Rect{
				X:      x,
				Y:      float64(i) * height,
				Width:  width,
				Height: height,
				Type:   s.Type,
				Label:  s.Label(),
			})
			x += width
		}
	}
	return rects
}
