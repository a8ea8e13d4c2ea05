package ebiten

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"arrowboard/pkg/game/renderer"
	"arrowboard/pkg/game/state"
)

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	w, h := windowSizeFor(state.DefaultSize)
	return &EbitenRenderer{
		windowWidth:  w,
		windowHeight: h,
	}
}

// Init loads fonts and sets up the window
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(windowTitle(state.DefaultSize))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// StyleText returns text unchanged; Ebiten colors come from markup segments
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// Run starts the Ebiten game loop and returns when the window is closed
// or the user quits
func (e *EbitenRenderer) Run(ctrl renderer.Controller) error {
	e.ctrl = ctrl
	e.dirty.Store(true)
	e.refreshSnapshot()
	e.resizeWindow()

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// resizeWindow grows or shrinks the window to fit a newly built board,
// within the bounds of the monitor
func (e *EbitenRenderer) resizeWindow() {
	snap := e.getSnapshot()
	if !snap.valid || snap.size == e.windowBoardSize {
		return
	}
	e.windowBoardSize = snap.size

	w, h := windowSizeFor(snap.size)
	if m := ebiten.Monitor(); m != nil {
		mw, mh := m.Size()
		if mw > 0 && mh > 0 {
			w, h = min(w, mw*9/10), min(h, mh*9/10)
		}
	}

	log.Printf("Resizing window for a %dx%d board (%dx%d)", snap.size, snap.size, w, h)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(windowTitle(snap.size))
}
