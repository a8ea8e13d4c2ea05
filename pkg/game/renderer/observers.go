package renderer

import (
	"log"

	"arrowboard/pkg/engine/world"
)

// NopObserver ignores every event. Embed it to implement only some callbacks.
type NopObserver struct{}

func (NopObserver) OnCellsBuilt(grid *world.Grid)                              {}
func (NopObserver) OnCursorMoved(cell world.Cell)                              {}
func (NopObserver) OnClassificationChanged(cell world.Cell, label world.Label) {}
func (NopObserver) OnDisplayMode(label world.Label)                            {}

// Multi fans events out to several observers in order
type Multi []Observer

func (m Multi) OnCellsBuilt(grid *world.Grid) {
	for _, o := range m {
		o.OnCellsBuilt(grid)
	}
}

func (m Multi) OnCursorMoved(cell world.Cell) {
	for _, o := range m {
		o.OnCursorMoved(cell)
	}
}

func (m Multi) OnClassificationChanged(cell world.Cell, label world.Label) {
	for _, o := range m {
		o.OnClassificationChanged(cell, label)
	}
}

func (m Multi) OnDisplayMode(label world.Label) {
	for _, o := range m {
		o.OnDisplayMode(label)
	}
}

// LogObserver writes board events to the standard logger
type LogObserver struct {
	// Verbose also logs every cursor move and cell label
	Verbose bool
}

func (l LogObserver) OnCellsBuilt(grid *world.Grid) {
	log.Printf("Board built: %dx%d (%v)", grid.Size(), grid.Size(), grid.ID())
}

func (l LogObserver) OnCursorMoved(cell world.Cell) {
	if l.Verbose {
		log.Printf("Checker at %v", cell.Name())
	}
}

func (l LogObserver) OnClassificationChanged(cell world.Cell, label world.Label) {
	if l.Verbose {
		log.Printf("Cell %v is %v", cell.Name(), label)
	}
}

func (l LogObserver) OnDisplayMode(label world.Label) {
	log.Printf("Display mode: %v", label)
}
