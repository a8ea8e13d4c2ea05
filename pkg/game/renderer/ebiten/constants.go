// Package ebiten provides an Ebiten-based 2D graphical renderer for the arrow board.
package ebiten

import (
	"image/color"

	"arrowboard/pkg/engine/world"
)

// Color palette
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for board area
	colorSquareDark      = color.RGBA{0x33, 0x33, 0x33, 255}
	colorSquareLight     = color.RGBA{0xBB, 0xBB, 0xBB, 255}
	colorArrowOnDark     = color.RGBA{220, 220, 230, 255}
	colorArrowOnLight    = color.RGBA{40, 40, 50, 255}
	colorChecker         = color.RGBA{230, 60, 60, 255} // Pulses between 60% and 100%
	colorCheckerBorder   = color.RGBA{255, 230, 230, 255}
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorButton          = color.RGBA{50, 50, 80, 255}
	colorButtonHover     = color.RGBA{70, 70, 110, 255}
	colorButtonDisabled  = color.RGBA{40, 40, 55, 255}
	colorButtonBorder    = color.RGBA{110, 100, 170, 255}

	// Classification colors; squares get a translucent wash, text the full color
	colorLeadsOffBoard  = color.RGBA{255, 100, 100, 255}
	colorOnCycle        = color.RGBA{100, 230, 130, 255}
	colorLeadsIntoCycle = color.RGBA{255, 210, 90, 255}
	colorNotOnPath      = color.RGBA{110, 150, 220, 255}
)

// labelColors maps a display label to its color. Undetermined has none.
var labelColors = map[world.Label]color.RGBA{
	world.LeadsOffBoard:    colorLeadsOffBoard,
	world.OnCycle:          colorOnCycle,
	world.LeadsIntoCycle:   colorLeadsIntoCycle,
	world.NotOnCurrentPath: colorNotOnPath,
}

// Layout
const (
	squareSize    = 70 // Preferred square size in pixels
	minSquareSize = 6
	boardMargin   = 20
	headerHeight  = 100 // Buttons and status lines above the board
	messagesPanel = 90  // Message log below the board
	minWindowW    = 800
	minWindowH    = 600

	buttonHeight = 32
	buttonGap    = 10
	buttonRadius = 6
	baseFontSize = 16.0
)

const (
	messageLifetime = 10000 // Milliseconds a message stays visible
	maxMessageLines = 4
	pulsePeriod     = 2000.0 // Milliseconds per checker pulse
)
