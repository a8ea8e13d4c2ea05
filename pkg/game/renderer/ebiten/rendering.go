package ebiten

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"arrowboard/pkg/engine/world"
	"arrowboard/pkg/game/renderer"
)

// boardLayout returns the square size and top-left corner of an n×n board
// drawn in a screen of the given size. Squares are squareSize pixels unless
// the board would not fit.
func boardLayout(n, screenWidth, screenHeight int) (square float32, x, y float32) {
	if n <= 0 {
		return 0, boardMargin, headerHeight
	}
	availableW := screenWidth - boardMargin*2
	availableH := screenHeight - headerHeight - messagesPanel - boardMargin

	size := squareSize
	if fit := min(availableW, availableH) / n; fit < size {
		size = max(fit, minSquareSize)
	}
	return float32(size), boardMargin, headerHeight
}

// windowSizeFor returns the window size that shows an n×n board with
// full-size squares, never smaller than the minimum window
func windowSizeFor(n int) (w, h int) {
	w = max(minWindowW, n*squareSize+boardMargin*2)
	h = max(minWindowH, n*squareSize+headerHeight+messagesPanel+boardMargin)
	return w, h
}

// Draw renders the board to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap := e.getSnapshot()
	if !snap.valid || e.sansFontSource == nil {
		// Can't draw without valid snapshot or fonts
		return
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()

	e.drawButtons(screen, &snap)
	e.drawStatus(screen, &snap, boardMargin, boardMargin/2+buttonHeight+12)

	square, bx, by := boardLayout(snap.size, screenWidth, screenHeight)
	e.drawBoard(screen, &snap, square, bx, by)

	e.drawMessages(screen, &snap, screenWidth, screenHeight)
}

// drawStatus draws the size, step count, walk state and display mode
func (e *EbitenRenderer) drawStatus(screen *ebiten.Image, snap *renderSnapshot, x, y int) {
	face := e.getSansFontFace()

	status := gotext.Get("STATUS_IDLE")
	if snap.running {
		status = gotext.Get("STATUS_RUNNING")
	}
	line := strings.Join([]string{
		fmt.Sprintf(gotext.Get("BOARD_SIZE"), snap.size, snap.size),
		fmt.Sprintf(gotext.Get("STEPS"), snap.steps),
		status,
	}, "   ")
	e.drawColoredText(screen, line, float64(x), float64(y), colorSubtle, face)

	mode := gotext.Get("MODE") + " " + renderer.LabelMarkup(snap.mode)
	e.drawColoredTextSegments(screen, e.parseMarkup(mode), float64(x), float64(y)+e.getUIFontSize()+6, face)
}

// drawBoard draws every square, its arrow and the checker
func (e *EbitenRenderer) drawBoard(screen *ebiten.Image, snap *renderSnapshot, square, x, y float32) {
	boardSize := square * float32(snap.size)
	vector.DrawFilledRect(screen, x-4, y-4, boardSize+8, boardSize+8, colorMapBackground, false)

	for i, sq := range snap.squares {
		row, col := i/snap.size, i%snap.size
		sx := x + float32(col)*square
		sy := y + float32(row)*square
		e.drawSquare(screen, sq, row, col, sx, sy, square)
	}

	if snap.hasCursor {
		cx := x + (float32(snap.cursorCol)+0.5)*square
		cy := y + (float32(snap.cursorRow)+0.5)*square
		e.drawChecker(screen, cx, cy, square, snap.running, snap.steps)
	}
}

// drawSquare draws one checkerboard square, washed with its label color
func (e *EbitenRenderer) drawSquare(screen *ebiten.Image, sq squareState, row, col int, x, y, size float32) {
	dark := (row+col)%2 == 0
	bg, arrow := colorSquareLight, colorArrowOnLight
	if dark {
		bg, arrow = colorSquareDark, colorArrowOnDark
	}
	vector.DrawFilledRect(screen, x, y, size, size, bg, false)

	if c, ok := labelColors[sq.label]; ok {
		vector.DrawFilledRect(screen, x, y, size, size, withAlpha(c, 110), false)
	}

	if sq.direction.IsValid() {
		drawArrow(screen, sq.direction, x+size/2, y+size/2, size, arrow)
	}
}

// drawArrow draws a shaft and a triangular head pointing in dir, centered on (cx, cy)
func drawArrow(screen *ebiten.Image, dir world.Direction, cx, cy, size float32, clr color.Color) {
	dr, dc := dir.Delta()
	fx, fy := float32(dc), float32(dr) // forward
	px, py := -fy, fx                  // perpendicular

	half := size * 0.3
	head := size * 0.14
	width := max(size*0.05, 1)

	tailX, tailY := cx-fx*half, cy-fy*half
	tipX, tipY := cx+fx*half, cy+fy*half
	baseX, baseY := tipX-fx*head, tipY-fy*head

	vector.StrokeLine(screen, tailX, tailY, baseX, baseY, width, clr, true)

	var path vector.Path
	path.MoveTo(tipX, tipY)
	path.LineTo(baseX+px*head*0.8, baseY+py*head*0.8)
	path.LineTo(baseX-px*head*0.8, baseY-py*head*0.8)
	path.Close()

	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(clr)
	vector.FillPath(screen, &path, nil, drawOpts)
}

// drawChecker draws the checker as a disc over its square, with the step
// count on it when the square is large enough to read
func (e *EbitenRenderer) drawChecker(screen *ebiten.Image, cx, cy, square float32, running bool, steps int) {
	r := square * 0.32
	vector.DrawFilledCircle(screen, cx, cy, r+max(square*0.04, 1), colorCheckerBorder, true)
	vector.DrawFilledCircle(screen, cx, cy, r, e.getPulsingCheckerColor(running), true)

	if square >= 30 {
		e.drawCenteredText(screen, fmt.Sprint(steps), float64(cx), float64(cy), colorCheckerBorder, e.getMonoFontFace(float64(square)))
	}
}

// drawMessages draws the newest messages under the board, fading old ones out
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, snap *renderSnapshot, screenWidth, screenHeight int) {
	if len(snap.messages) == 0 {
		return
	}

	face := e.getSansFontFace()
	lineHeight := e.getUIFontSize() + 4
	now := time.Now().UnixMilli()

	type visibleMessage struct {
		segments []textSegment
	}
	visible := make([]visibleMessage, 0, maxMessageLines)

	start := max(len(snap.messages)-maxMessageLines, 0)
	for _, msg := range snap.messages[start:] {
		age := now - msg.Timestamp
		if age >= messageLifetime {
			continue
		}

		// Fade over the last 30% of the lifetime
		fadeStart := int64(messageLifetime * 7 / 10)
		alpha := 1.0
		if age > fadeStart {
			alpha = 1.0 - float64(age-fadeStart)/float64(messageLifetime-fadeStart)
		}

		segments := e.parseMarkup(msg.Text)
		for j := range segments {
			segments[j].color = applyAlpha(segments[j].color, alpha)
		}
		visible = append(visible, visibleMessage{segments: segments})
	}

	if len(visible) == 0 {
		return
	}

	panelHeight := float32(len(visible))*float32(lineHeight) + 16
	panelY := float32(screenHeight) - panelHeight - boardMargin/2
	vector.DrawFilledRect(screen, boardMargin/2, panelY, float32(screenWidth-boardMargin), panelHeight, colorPanelBackground, false)

	for i, v := range visible {
		y := float64(panelY) + 8 + float64(i)*lineHeight
		e.drawColoredTextSegments(screen, v.segments, boardMargin, y, face)
	}
}

// windowTitle returns the window title for a board size
func windowTitle(n int) string {
	return fmt.Sprintf("%s (%dx%d)", gotext.Get("TITLE"), n, n)
}
