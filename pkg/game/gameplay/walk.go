package gameplay

import (
	"fmt"
	"log"

	"github.com/leonelquinteros/gotext"

	"arrowboard/pkg/engine/world"
	"arrowboard/pkg/game/pathfind"
	"arrowboard/pkg/game/renderer"
)

// StartOrResume starts the walk. With no checker on the board it drops one
// on a random cell and classifies that cell's path first. The first advance
// happens immediately, later ones every interval.
// Calling it while the walk is running does nothing.
func (s *Simulation) StartOrResume() error {
	var err error
	s.do(func() {
		err = s.startLocked()
	})
	return err
}

func (s *Simulation) startLocked() error {
	b := s.board
	if b.Running {
		return nil
	}

	if !b.HasCursor() {
		if err := s.dropCheckerLocked(); err != nil {
			return err
		}
	}

	t := &walkTimer{}
	s.timer = t
	b.Running = true
	logMessage(b, gotext.Get("MSG_WALK_STARTED"), b.CursorCell().Name())
	// Ticks take the lock, so none can see t before Timer is set
	t.Timer = s.sched.Every(s.interval, func() { s.tick(t) })

	return s.advanceLocked()
}

// dropCheckerLocked puts the checker on a random cell and classifies its path
func (s *Simulation) dropCheckerLocked() error {
	b := s.board
	start := b.Grid.CellAt(s.rng.Intn(b.Grid.Len()))

	path, err := pathfind.Classify(b.Grid, b.Grid.Ref(start))
	if err != nil {
		return fmt.Errorf("drop checker: %w", err)
	}

	b.Cursor = path.Start
	b.Path = path
	b.Mode = path.Outcome
	b.Steps = 0

	for _, i := range path.Cells {
		cell := *b.Grid.CellAt(i)
		s.emit(func(o renderer.Observer) { o.OnClassificationChanged(cell, cell.Label) })
	}
	first := *start
	mode := b.Mode
	s.emit(func(o renderer.Observer) { o.OnCursorMoved(first) })
	s.emit(func(o renderer.Observer) { o.OnDisplayMode(mode) })

	log.Printf("Checker dropped on %v: %v after %d steps", start.Name(), path.Outcome, path.Steps)
	return nil
}

// tick is the timer callback. Ticks from a timer that has since been
// cancelled are ignored.
func (s *Simulation) tick(t *walkTimer) {
	s.do(func() {
		if s.timer != t {
			return
		}
		if err := s.advanceLocked(); err != nil {
			log.Printf("Walk stopped: %v", err)
			s.cancelLocked()
		}
	})
}

// Advance moves the checker one step, as a timer tick would.
// It fails with ErrInconsistentState when no checker is on the board.
func (s *Simulation) Advance() error {
	var err error
	s.do(func() {
		err = s.advanceLocked()
	})
	return err
}

func (s *Simulation) advanceLocked() error {
	b := s.board
	if !b.HasCursor() {
		return fmt.Errorf("advance with no checker on the board: %w", world.ErrInconsistentState)
	}
	current, err := b.Grid.Resolve(b.Cursor)
	if err != nil {
		return fmt.Errorf("advance: %w", err)
	}

	next := b.Grid.Next(current)
	if next == nil {
		s.cancelLocked()
		logMessage(b, gotext.Get("MSG_WALK_ENDED"), current.Name(), b.Steps)
		log.Printf("End")
		return nil
	}

	b.Cursor = b.Grid.Ref(next)
	b.Steps++
	cell := *next
	s.emit(func(o renderer.Observer) { o.OnCursorMoved(cell) })
	return nil
}

// Stop cancels the walk and leaves the checker where it is
func (s *Simulation) Stop() {
	s.do(func() {
		if !s.board.Running {
			return
		}
		s.cancelLocked()
		logMessage(s.board, gotext.Get("MSG_WALK_STOPPED"), s.board.Steps)
	})
}

// cancelLocked stops the timer and marks the walk idle. Safe to call when idle.
func (s *Simulation) cancelLocked() {
	if s.timer != nil {
		if s.timer.Timer != nil {
			s.timer.Stop()
		}
		s.timer = nil
	}
	s.board.Running = false
}
