package gameplay

import (
	"log"

	engineinput "arrowboard/pkg/engine/input"
	"arrowboard/pkg/game/devtools"
	"arrowboard/pkg/game/renderer"
	"arrowboard/pkg/game/state"
)

// ProcessIntent runs the board operation for a high-level input intent.
// It returns true when the user asked to quit.
func ProcessIntent(c renderer.Controller, intent engineinput.Intent) (quit bool) {
	switch intent.Action {
	case engineinput.ActionNone:
		return false

	case engineinput.ActionPlay:
		if err := c.StartOrResume(); err != nil {
			log.Printf("Play failed: %v", err)
		}

	case engineinput.ActionStop:
		c.Stop()

	case engineinput.ActionReset:
		if err := c.Reset(); err != nil {
			log.Printf("Reset failed: %v", err)
		}

	case engineinput.ActionGrow:
		log.Printf("Next board size: %d", c.GrowSize())

	case engineinput.ActionShrink:
		log.Printf("Next board size: %d", c.ShrinkSize())

	case engineinput.ActionDump:
		var (
			path string
			err  error
		)
		c.View(func(b *state.Board) {
			path, err = devtools.DumpBoardToFile(b)
		})
		if err != nil {
			log.Printf("Board dump failed: %v", err)
		} else {
			log.Printf("Board dumped to %s", path)
		}

	case engineinput.ActionQuit:
		return true
	}

	return false
}
