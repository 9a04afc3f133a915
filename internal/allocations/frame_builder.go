package allocations

import "trace-analytics/internal/models"

// frameBuilder packs slots left to right per layer, filling gaps with padding.
type frameBuilder struct {
	layers [][]models.Slot
}

func (b *frameBuilder) grow(layers int) {
	for len(b.layers) < layers {
		b.layers = append(b.layers, []models.Slot{})
	}
}

// next is the first free symbol of a layer.
func (b *frameBuilder) next(layer int) int {
	n := 0
	for _, s := range b.layers[layer] {
		n += s.Size
	}
	return n
}

// place appends slot at start, padding from the current end of the layer.
// Overlapping allocations are appended as is.
func (b *frameBuilder) place(layer, start int, slot models.Slot) {
	b.grow(layer + 1)
	if next := b.next(layer); next < start {
		b.layers[layer] = append(b.layers[layer], models.Slot{Type: models.SlotPadding, Size: start - next})
	}
	b.layers[layer] = append(b.layers[layer], slot)
}

func (b *frameBuilder) frame(subframe, maxSubframe int) *models.Frame {
	return &models.Frame{Subframe: subframe, MaxSubframe: maxSubframe, Layers: b.layers}
}
