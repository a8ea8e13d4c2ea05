package ebiten

import (
	"arrowboard/pkg/engine/world"
	"arrowboard/pkg/game/state"
)

// Observer callbacks only mark the snapshot stale; Update rebuilds it on
// the game loop goroutine.

func (e *EbitenRenderer) OnCellsBuilt(grid *world.Grid)                              { e.dirty.Store(true) }
func (e *EbitenRenderer) OnCursorMoved(cell world.Cell)                              { e.dirty.Store(true) }
func (e *EbitenRenderer) OnClassificationChanged(cell world.Cell, label world.Label) { e.dirty.Store(true) }
func (e *EbitenRenderer) OnDisplayMode(label world.Label)                            { e.dirty.Store(true) }

// refreshSnapshot copies the board into a new render snapshot if anything changed
func (e *EbitenRenderer) refreshSnapshot() {
	if e.ctrl == nil || !e.dirty.Swap(false) {
		return
	}

	var snap renderSnapshot
	e.ctrl.View(func(b *state.Board) {
		snap = buildSnapshot(b)
	})

	e.snapshotMutex.Lock()
	e.snapshot = snap
	e.snapshotMutex.Unlock()
}

// buildSnapshot copies everything Draw needs out of b
func buildSnapshot(b *state.Board) renderSnapshot {
	snap := renderSnapshot{
		valid:   b.Grid != nil,
		size:    b.Size(),
		pending: b.PendingSize,
		running: b.Running,
		steps:   b.Steps,
		mode:    b.Mode,
	}
	if !snap.valid {
		return snap
	}

	snap.squares = make([]squareState, 0, b.Grid.Len())
	b.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		snap.squares = append(snap.squares, squareState{
			direction: cell.Direction,
			label:     b.Path.DisplayLabel(cell),
		})
	})

	if c := b.CursorCell(); c != nil {
		snap.hasCursor = true
		snap.cursorRow = c.Row
		snap.cursorCol = c.Col
	}

	snap.messages = make([]state.Message, len(b.Messages))
	copy(snap.messages, b.Messages)
	return snap
}

// getSnapshot returns a copy of the current snapshot
func (e *EbitenRenderer) getSnapshot() renderSnapshot {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()
	return e.snapshot
}
