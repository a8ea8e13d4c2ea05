package ebiten

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"arrowboard/pkg/game/state"
)

// appendRoundedRect adds a rounded rectangle to the path. (x, y) is top-left; w, h are size; r is corner radius.
func appendRoundedRect(p *vector.Path, x, y, w, h, r float32) {
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	halfPi := float32(math.Pi / 2)
	pi := float32(math.Pi)
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, 3*halfPi, 0, vector.Clockwise)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, halfPi, vector.Clockwise)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, halfPi, pi, vector.Clockwise)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, pi, 3*halfPi, vector.Clockwise)
	p.Close()
}

// drawRoundedRect fills a rounded rectangle and strokes its border
func drawRoundedRect(screen *ebiten.Image, x, y, w, h, r, borderWidth float32, bgColor, borderColor color.Color) {
	var path vector.Path
	appendRoundedRect(&path, x, y, w, h, r)

	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(bgColor)
	vector.FillPath(screen, &path, nil, drawOpts)

	strokeOpts := &vector.StrokeOptions{Width: borderWidth, MiterLimit: 10}
	drawOpts = &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(borderColor)
	vector.StrokePath(screen, &path, strokeOpts, drawOpts)
}

// buttons lays out the controls for the current snapshot:
// Play, Stop, Reset, then the size arrows around the pending size
func (e *EbitenRenderer) buttons(snap *renderSnapshot) []button {
	x := float32(boardMargin)
	y := float32(boardMargin / 2)

	add := func(caption, code string, w float32, disabled bool) button {
		b := button{caption: caption, code: code, x: x, y: y, w: w, h: buttonHeight, disabled: disabled}
		x += w + buttonGap
		return b
	}

	list := []button{
		add("BUTTON_PLAY", "button_play", 80, snap.running),
		add("BUTTON_STOP", "button_stop", 80, !snap.running),
		add("BUTTON_RESET", "button_reset", 80, false),
	}
	x += buttonGap * 2
	list = append(list, add("−", "button_shrink", buttonHeight, snap.pending <= state.MinSize))
	// Leave room for the size caption between the arrows
	x += sizeCaptionWidth
	list = append(list, add("+", "button_grow", buttonHeight, snap.pending >= state.MaxSize))
	return list
}

const sizeCaptionWidth = 90

// buttonAt returns the button under (x, y)
func (e *EbitenRenderer) buttonAt(snap *renderSnapshot, x, y int) (button, bool) {
	for _, b := range e.buttons(snap) {
		if !b.disabled && b.contains(x, y) {
			return b, true
		}
	}
	return button{}, false
}

// drawButtons draws the controls and the pending size between the arrows
func (e *EbitenRenderer) drawButtons(screen *ebiten.Image, snap *renderSnapshot) {
	mx, my := ebiten.CursorPosition()
	face := e.getSansBoldFontFace()

	list := e.buttons(snap)
	for _, b := range list {
		bg, fg := colorButton, color.Color(colorText)
		switch {
		case b.disabled:
			bg, fg = colorButtonDisabled, colorSubtle
		case b.contains(mx, my):
			bg = colorButtonHover
		}
		drawRoundedRect(screen, b.x, b.y, b.w, b.h, buttonRadius, 1.5, bg, colorButtonBorder)
		e.drawCenteredText(screen, dynamicGet(b.caption), float64(b.x+b.w/2), float64(b.y+b.h/2), fg, face)
	}

	// The last two buttons are the size arrows
	shrink, grow := list[len(list)-2], list[len(list)-1]
	caption := fmt.Sprintf("%s %d", gotext.Get("SIZE_CAPTION"), snap.pending)
	cx := float64(shrink.x+shrink.w+grow.x) / 2
	e.drawCenteredText(screen, caption, cx, float64(shrink.y+shrink.h/2), colorAction, e.getSansFontFace())
}
