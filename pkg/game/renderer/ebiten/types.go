package ebiten

import (
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"arrowboard/pkg/engine/world"
	"arrowboard/pkg/game/renderer"
	"arrowboard/pkg/game/state"
)

// squareState is what the renderer needs to draw one square
type squareState struct {
	direction world.Direction
	label     world.Label // Display label for the active path
}

// renderSnapshot holds a consistent copy of the board for rendering.
// It is refreshed from the controller whenever an observer event arrives.
type renderSnapshot struct {
	valid     bool
	size      int
	pending   int
	squares   []squareState // Row-major
	hasCursor bool
	cursorRow int
	cursorCol int
	running   bool
	steps     int
	mode      world.Label
	messages  []state.Message
}

// textSegment represents a segment of text with a specific color
type textSegment struct {
	text  string
	color color.Color
}

// button is a clickable control above the board
type button struct {
	caption  string // gotext key or literal text
	code     string // Raw input code sent when clicked
	x, y     float32
	w, h     float32
	disabled bool
}

// contains returns true if the point is inside the button
func (b button) contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.x && fx < b.x+b.w && fy >= b.y && fy < b.y+b.h
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions as last reported by Layout
	windowWidth  int
	windowHeight int

	// Board size the window was last sized for
	windowBoardSize int

	// Font sources for text rendering
	monoFontSource     *text.GoTextFaceSource
	sansFontSource     *text.GoTextFaceSource
	sansBoldFontSource *text.GoTextFaceSource

	// Cached font faces
	cachedMonoFontSize float64
	cachedMonoFace     *text.GoTextFace
	cachedSansFace     *text.GoTextFace
	cachedSansBoldFace *text.GoTextFace

	ctrl renderer.Controller

	// Set by observer callbacks (any goroutine), cleared by Update
	dirty atomic.Bool

	// Cached render snapshot for consistent drawing
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Flag to track if we've logged window opening
	windowOpenedLogged bool

	quit bool
}
