package gameplay

import (
	"fmt"

	"arrowboard/pkg/game/state"
)

// logMessage formats a translated message and adds it to the board's message log.
// Translations may contain markup (see renderer.ParseMarkup).
func logMessage(b *state.Board, format string, a ...any) {
	b.AddMessage(fmt.Sprintf(format, a...))
}
