package ebiten

import (
	"image/color"
	"math"
	"time"
)

// getPulsingCheckerColor returns the checker color, pulsing between 60% and
// 100% brightness on a sine wave while the walk is running
func (e *EbitenRenderer) getPulsingCheckerColor(running bool) color.Color {
	if !running {
		return colorChecker
	}

	now := time.Now().UnixMilli()
	pulsePhase := float64(now%int64(pulsePeriod)) / pulsePeriod
	pulseValue := (math.Sin(pulsePhase*2*math.Pi) + 1.0) / 2.0

	const minBrightness, maxBrightness = 0.6, 1.0
	brightness := minBrightness + (maxBrightness-minBrightness)*pulseValue

	return color.RGBA{
		uint8(float64(colorChecker.R) * brightness),
		uint8(float64(colorChecker.G) * brightness),
		uint8(float64(colorChecker.B) * brightness),
		colorChecker.A,
	}
}
