package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the bundled Go fonts into face sources
func (e *EbitenRenderer) loadFonts() error {
	var err error
	if e.monoFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF)); err != nil {
		return fmt.Errorf("load mono font: %w", err)
	}
	if e.sansFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("load sans font: %w", err)
	}
	if e.sansBoldFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF)); err != nil {
		return fmt.Errorf("load bold font: %w", err)
	}
	return nil
}

// getUIFontSize returns the font size for status and message text
func (e *EbitenRenderer) getUIFontSize() float64 {
	return baseFontSize
}

// getSansFontFace returns a cached sans-serif font face for UI text
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	if e.cachedSansFace == nil {
		e.cachedSansFace = &text.GoTextFace{Source: e.sansFontSource, Size: e.getUIFontSize()}
	}
	return e.cachedSansFace
}

// getSansBoldFontFace returns a cached bold face for button captions
func (e *EbitenRenderer) getSansBoldFontFace() *text.GoTextFace {
	if e.cachedSansBoldFace == nil {
		e.cachedSansBoldFace = &text.GoTextFace{Source: e.sansBoldFontSource, Size: e.getUIFontSize()}
	}
	return e.cachedSansBoldFace
}

// getMonoFontFace returns a monospace face sized for square captions.
// Recreated when the square size changes.
func (e *EbitenRenderer) getMonoFontFace(square float64) *text.GoTextFace {
	size := square * 0.22
	if size < 8 {
		size = 8
	}
	if e.cachedMonoFace == nil || e.cachedMonoFontSize != size {
		e.cachedMonoFontSize = size
		e.cachedMonoFace = &text.GoTextFace{Source: e.monoFontSource, Size: size}
	}
	return e.cachedMonoFace
}
