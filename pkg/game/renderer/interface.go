package renderer

import (
	"arrowboard/pkg/engine/world"
	"arrowboard/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleCellDark
	StyleCellLight
	StyleChecker
	StyleAction
	StyleActionShort
	StyleSubtle
	StyleLeadsOffBoard
	StyleOnCycle
	StyleLeadsIntoCycle
	StyleNotOnPath
)

// LabelStyle returns the text style used to highlight a label
func LabelStyle(l world.Label) TextStyle {
	switch l {
	case world.LeadsOffBoard:
		return StyleLeadsOffBoard
	case world.OnCycle:
		return StyleOnCycle
	case world.LeadsIntoCycle:
		return StyleLeadsIntoCycle
	case world.NotOnCurrentPath:
		return StyleNotOnPath
	default:
		return StyleNormal
	}
}

// Observer is told about every change the board makes that a display may need to show.
// Callbacks are made without any board lock held; they may call back into the Controller.
type Observer interface {
	// OnCellsBuilt is called after the board was (re)built, with no checker on it
	OnCellsBuilt(grid *world.Grid)

	// OnCursorMoved is called when the checker is placed or advances
	OnCursorMoved(cell world.Cell)

	// OnClassificationChanged is called for every cell a path run labels
	OnClassificationChanged(cell world.Cell, label world.Label)

	// OnDisplayMode is called when the classification of the active start cell changes
	OnDisplayMode(label world.Label)
}

// Controller is the set of board operations a UI may invoke
type Controller interface {
	StartOrResume() error
	Stop()
	Reset() error
	GrowSize() int
	ShrinkSize() int

	// View runs fn with the board locked. fn must not keep b or call the Controller.
	View(fn func(b *state.Board))
}

// Renderer defines the interface for display backends (TUI, Ebiten)
type Renderer interface {
	Observer

	// Init initializes the renderer (colors, fonts, window, etc.)
	Init() error

	// Run shows the board and feeds user input to ctrl until the user quits
	Run(ctrl Controller) error

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string
}
