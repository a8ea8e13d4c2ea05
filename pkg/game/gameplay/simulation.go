// Package gameplay runs the checker walk and the board lifecycle.
package gameplay

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"arrowboard/pkg/engine/clock"
	"arrowboard/pkg/engine/world"
	"arrowboard/pkg/game/generator"
	"arrowboard/pkg/game/renderer"
	"arrowboard/pkg/game/state"
)

// DefaultInterval is the time between two advances of a running walk
const DefaultInterval = 2 * time.Second

// Options configures a Simulation. Zero fields get defaults.
type Options struct {
	Size      int
	Interval  time.Duration
	Generator generator.GridGenerator
	Scheduler clock.Scheduler

	// Rand picks the cell the checker is dropped on
	Rand *rand.Rand

	Observer renderer.Observer
}

// Simulation owns one board and drives its walk.
// All methods are safe for concurrent use; observer callbacks are made
// after the lock is released.
type Simulation struct {
	mu       sync.Mutex
	board    *state.Board
	gen      generator.GridGenerator
	sched    clock.Scheduler
	interval time.Duration
	rng      *rand.Rand

	// The single periodic timer. Non-nil exactly when the walk is running.
	timer *walkTimer

	observer renderer.Observer
	pending  []func(renderer.Observer)
}

var _ renderer.Controller = (*Simulation)(nil)

// walkTimer ties a scheduled task to the walk that created it, so ticks
// delivered after a cancel are recognised and dropped
type walkTimer struct {
	clock.Timer
}

// NewSimulation creates a simulation and builds its first board
func NewSimulation(opts Options) (*Simulation, error) {
	if opts.Size == 0 {
		opts.Size = state.DefaultSize
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Generator == nil {
		opts.Generator = generator.NewArrowGenerator(time.Now().UnixNano())
	}
	if opts.Scheduler == nil {
		opts.Scheduler = clock.TickerScheduler{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Observer == nil {
		opts.Observer = renderer.NopObserver{}
	}
	if opts.Size < state.MinSize || opts.Size > state.MaxSize {
		return nil, fmt.Errorf("board size %d not in [%d, %d]: %w", opts.Size, state.MinSize, state.MaxSize, world.ErrInvalidSize)
	}

	s := &Simulation{
		board:    state.NewBoard(opts.Size),
		gen:      opts.Generator,
		sched:    opts.Scheduler,
		interval: opts.Interval,
		rng:      opts.Rand,
		observer: opts.Observer,
	}

	if err := s.Rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

// Attach replaces the observer and replays the current board to it
func (s *Simulation) Attach(obs renderer.Observer) {
	s.do(func() {
		s.observer = obs
		s.emitBoard()
	})
}

// View runs fn with the board locked
func (s *Simulation) View(fn func(b *state.Board)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.board)
}

// Running returns true while the checker is advancing on the timer
func (s *Simulation) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Running
}

// Interval returns the time between two advances
func (s *Simulation) Interval() time.Duration {
	return s.interval
}

// Close cancels any running walk
func (s *Simulation) Close() {
	s.do(s.cancelLocked)
}

// do runs fn under the lock, then delivers the events fn queued
func (s *Simulation) do(fn func()) {
	s.mu.Lock()
	fn()
	events := s.pending
	s.pending = nil
	obs := s.observer
	s.mu.Unlock()

	for _, e := range events {
		e(obs)
	}
}

// emit queues an observer call. Must be called with the lock held.
func (s *Simulation) emit(e func(renderer.Observer)) {
	s.pending = append(s.pending, e)
}

// emitBoard queues a full redraw of the current board
func (s *Simulation) emitBoard() {
	grid := s.board.Grid
	mode := s.board.Mode
	s.emit(func(o renderer.Observer) { o.OnCellsBuilt(grid) })
	if c := s.board.CursorCell(); c != nil {
		cell := *c
		s.emit(func(o renderer.Observer) { o.OnCursorMoved(cell) })
	}
	s.emit(func(o renderer.Observer) { o.OnDisplayMode(mode) })
}
