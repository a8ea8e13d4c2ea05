package ebiten

import (
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "arrowboard/pkg/engine/input"
	"arrowboard/pkg/game/gameplay"
)

// keyCodes names the non-letter keys the bindings use
var keyCodes = map[ebiten.Key]string{
	ebiten.KeySpace:          "space",
	ebiten.KeyEnter:          "enter",
	ebiten.KeyEscape:         "escape",
	ebiten.KeyArrowUp:        "arrow_up",
	ebiten.KeyArrowDown:      "arrow_down",
	ebiten.KeyArrowLeft:      "arrow_left",
	ebiten.KeyArrowRight:     "arrow_right",
	ebiten.KeyEqual:          "=",
	ebiten.KeyMinus:          "-",
	ebiten.KeyNumpadAdd:      "numpad_add",
	ebiten.KeyNumpadSubtract: "numpad_subtract",
	ebiten.KeyF9:             "f9",
}

// codeForKey returns the raw input code for an Ebiten key
func codeForKey(k ebiten.Key) string {
	if code, ok := keyCodes[k]; ok {
		return code
	}
	if k >= ebiten.KeyA && k <= ebiten.KeyZ {
		return strings.ToLower(k.String())
	}
	if k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9 {
		return strings.TrimPrefix(k.String(), "Digit")
	}
	return ""
}

// Update handles input and refreshes the snapshot (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	e.refreshSnapshot()
	e.resizeWindow()

	for _, raw := range e.checkInput() {
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
		if gameplay.ProcessIntent(e.ctrl, intent) {
			log.Printf("Quit requested")
			return ebiten.Termination
		}
	}

	return nil
}

// checkInput collects this frame's key presses and button clicks
func (e *EbitenRenderer) checkInput() []engineinput.RawInput {
	now := time.Now()
	var raws []engineinput.RawInput

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		code := codeForKey(k)
		if code == "" {
			continue
		}
		// Shift+= is the + key on most layouts
		if code == "=" && ebiten.IsKeyPressed(ebiten.KeyShift) {
			code = "+"
		}
		raws = append(raws, engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code, Timestamp: now})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		snap := e.getSnapshot()
		if b, ok := e.buttonAt(&snap, x, y); ok {
			raws = append(raws, engineinput.RawInput{Device: engineinput.DeviceMouse, Code: b.code, Timestamp: now})
		}
	}

	return raws
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
