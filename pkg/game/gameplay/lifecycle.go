package gameplay

import (
	"fmt"
	"log"

	"github.com/leonelquinteros/gotext"

	"arrowboard/pkg/game/state"
)

// Rebuild cancels any walk, lifts the checker and replaces the board with
// a freshly generated one at the pending size. If generation fails the
// walk stays cancelled and the current grid is kept with its labels cleared.
func (s *Simulation) Rebuild() error {
	var err error
	s.do(func() {
		err = s.rebuildLocked()
	})
	return err
}

// Reset returns the board to idle with no checker and rebuilds it
func (s *Simulation) Reset() error {
	return s.Rebuild()
}

func (s *Simulation) rebuildLocked() error {
	b := s.board
	size := b.PendingSize

	// The timer goes before the grid so no tick sees a discarded cell
	s.cancelLocked()
	b.ClearCursor()

	log.Printf("Creating a new board (%dx%d)", size, size)
	grid, err := s.gen.Generate(size)
	if err != nil {
		if b.Grid != nil {
			b.Grid.ResetLabels()
			s.emitBoard()
		}
		return fmt.Errorf("rebuild with %v: %w", s.gen.Name(), err)
	}
	b.Grid = grid

	b.ClearMessages()
	logMessage(b, gotext.Get("MSG_BOARD_BUILT"), size, size)
	s.emitBoard()
	return nil
}

// GrowSize increases the size the next rebuild will use and returns it.
// The current board is not changed.
func (s *Simulation) GrowSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.GrowSize()
}

// ShrinkSize decreases the size the next rebuild will use and returns it
func (s *Simulation) ShrinkSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.ShrinkSize()
}

// PendingSize returns the size the next rebuild will use
func (s *Simulation) PendingSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.PendingSize
}

// SetPendingSize sets the size the next rebuild will use, clamped to the valid range
func (s *Simulation) SetPendingSize(size int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board.PendingSize = state.ClampSize(size)
	return s.board.PendingSize
}
