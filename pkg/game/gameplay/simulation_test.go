package gameplay

import (
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arrowboard/pkg/engine/clock"
	engineinput "arrowboard/pkg/engine/input"
	"arrowboard/pkg/engine/world"
	"arrowboard/pkg/game/generator"
	"arrowboard/pkg/game/state"
)

func TestMain(m *testing.M) {
	gotext.Configure("../../../locales", "en_GB", "default")
	os.Exit(m.Run())
}

// recorder counts observer callbacks
type recorder struct {
	mu         sync.Mutex
	built      int
	moves      []world.Cell
	classified map[int]world.Label
	modes      []world.Label
}

func newRecorder() *recorder {
	return &recorder{classified: make(map[int]world.Label)}
}

func (r *recorder) OnCellsBuilt(grid *world.Grid) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.built++
}

func (r *recorder) OnCursorMoved(cell world.Cell) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.moves = append(r.moves, cell)
}

func (r *recorder) OnClassificationChanged(cell world.Cell, label world.Label) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classified[cell.Index] = label
}

func (r *recorder) OnDisplayMode(label world.Label) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modes = append(r.modes, label)
}

func (r *recorder) builtCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.built
}

func (r *recorder) lastMode() world.Label {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.modes[len(r.modes)-1]
}

// newTestSimulation builds a simulation on a fixed board driven by a manual clock
func newTestSimulation(t *testing.T, size int, arrows string) (*Simulation, *clock.ManualScheduler, *recorder) {
	t.Helper()
	dirs, err := generator.ParseArrows(arrows)
	require.NoError(t, err)

	sched := clock.NewManualScheduler()
	rec := newRecorder()
	sim, err := NewSimulation(Options{
		Size:      size,
		Interval:  time.Second,
		Generator: &generator.FixedGenerator{Directions: dirs},
		Scheduler: sched,
		Rand:      rand.New(rand.NewSource(1)),
		Observer:  rec,
	})
	require.NoError(t, err)
	t.Cleanup(sim.Close)
	return sim, sched, rec
}

// snapshot copies the parts of the board a test checks
type snapshot struct {
	gridID    string
	size      int
	pending   int
	hasCursor bool
	cursor    world.Cell
	running   bool
	steps     int
	mode      world.Label
	pathLen   int
}

func take(sim *Simulation) snapshot {
	var snap snapshot
	sim.View(func(b *state.Board) {
		snap.gridID = b.Grid.ID().String()
		snap.size = b.Size()
		snap.pending = b.PendingSize
		snap.hasCursor = b.HasCursor()
		if c := b.CursorCell(); c != nil {
			snap.cursor = *c
		}
		snap.running = b.Running
		snap.steps = b.Steps
		snap.mode = b.Mode
		snap.pathLen = b.Path.Len()
	})
	return snap
}

func TestNewSimulation_BuildsIdleBoard(t *testing.T) {
	sim, sched, rec := newTestSimulation(t, 2, "RD UL")

	snap := take(sim)
	assert.Equal(t, 2, snap.size)
	assert.False(t, snap.hasCursor)
	assert.False(t, snap.running)
	assert.Equal(t, world.Undetermined, snap.mode)
	assert.Equal(t, 0, sched.Created())
	assert.Equal(t, 1, rec.built)
}

func TestNewSimulation_RejectsInvalidSize(t *testing.T) {
	for _, size := range []int{-1, state.MaxSize + 1} {
		_, err := NewSimulation(Options{Size: size, Scheduler: clock.NewManualScheduler()})
		assert.ErrorIs(t, err, world.ErrInvalidSize, "size %d", size)
	}
}

func TestStartOrResume_DropsCheckerAndAdvancesImmediately(t *testing.T) {
	sim, sched, rec := newTestSimulation(t, 2, "RD UL")

	require.NoError(t, sim.StartOrResume())

	snap := take(sim)
	assert.True(t, snap.running)
	assert.True(t, snap.hasCursor)
	assert.Equal(t, 1, snap.steps, "first advance happens without waiting")
	assert.Equal(t, world.OnCycle, snap.mode)
	assert.Equal(t, 4, snap.pathLen)
	assert.Equal(t, 1, sched.Active())

	// drop + immediate advance
	require.Len(t, rec.moves, 2)
	sim.View(func(b *state.Board) {
		start, err := b.Grid.Resolve(b.Path.Start)
		require.NoError(t, err)
		assert.Equal(t, start.Index, rec.moves[0].Index)
		assert.Equal(t, start.Outgoing, rec.moves[1].Index)
	})
	assert.Len(t, rec.classified, 4)
	assert.Equal(t, world.OnCycle, rec.lastMode())
}

func TestStartOrResume_TwiceKeepsOneTimer(t *testing.T) {
	sim, sched, _ := newTestSimulation(t, 2, "RD UL")

	require.NoError(t, sim.StartOrResume())
	require.NoError(t, sim.StartOrResume())

	assert.Equal(t, 1, sched.Created())
	assert.Equal(t, 1, take(sim).steps)

	assert.Equal(t, 1, sched.Tick())
	assert.Equal(t, 2, take(sim).steps, "one advance per interval")
}

func TestWalk_EndsAtTerminalCell(t *testing.T) {
	// Every row walks right and off the board
	sim, sched, _ := newTestSimulation(t, 3, "RRR RRR RRR")

	require.NoError(t, sim.StartOrResume())
	for i := 0; i < 5 && sim.Running(); i++ {
		sched.Tick()
	}

	snap := take(sim)
	assert.False(t, snap.running)
	assert.True(t, snap.hasCursor, "checker stays on the last cell")
	assert.Equal(t, 2, snap.cursor.Col)
	assert.True(t, snap.cursor.IsTerminal())
	assert.Equal(t, world.LeadsOffBoard, snap.mode)
	assert.Equal(t, 0, sched.Active())
	assert.Equal(t, 0, sched.Tick())
}

func TestWalk_TerminalStartEndsImmediately(t *testing.T) {
	sim, sched, _ := newTestSimulation(t, 1, "U")

	require.NoError(t, sim.StartOrResume())

	snap := take(sim)
	assert.False(t, snap.running)
	assert.Equal(t, 0, snap.steps)
	assert.Equal(t, world.LeadsOffBoard, snap.mode)
	assert.Equal(t, 0, sched.Active())

	// Resuming from a terminal cell ends again straight away
	require.NoError(t, sim.StartOrResume())
	assert.False(t, sim.Running())
	assert.Equal(t, 2, sched.Created())
	assert.Equal(t, 0, sched.Active())
}

func TestStop_KeepsCheckerAndResumeContinues(t *testing.T) {
	sim, sched, _ := newTestSimulation(t, 2, "RD UL")

	require.NoError(t, sim.StartOrResume())
	before := take(sim)
	var pathBefore any
	sim.View(func(b *state.Board) { pathBefore = b.Path })

	sim.Stop()
	stopped := take(sim)
	assert.False(t, stopped.running)
	assert.Equal(t, before.cursor.Index, stopped.cursor.Index)
	assert.Equal(t, 0, sched.Active())
	assert.Equal(t, 0, sched.Tick())

	// Stop is idempotent
	sim.Stop()
	assert.False(t, sim.Running())

	require.NoError(t, sim.StartOrResume())
	resumed := take(sim)
	assert.True(t, resumed.running)
	assert.Equal(t, before.cursor.Outgoing, resumed.cursor.Index)
	assert.Equal(t, 2, resumed.steps)
	sim.View(func(b *state.Board) { assert.Same(t, pathBefore, b.Path, "resume must not reclassify") })
	assert.Equal(t, 1, sched.Active())
}

func TestReset_FromAnyState(t *testing.T) {
	setups := map[string]func(sim *Simulation, sched *clock.ManualScheduler){
		"idle":    func(sim *Simulation, sched *clock.ManualScheduler) {},
		"running": func(sim *Simulation, sched *clock.ManualScheduler) { _ = sim.StartOrResume() },
		"stopped": func(sim *Simulation, sched *clock.ManualScheduler) {
			_ = sim.StartOrResume()
			sched.Tick()
			sim.Stop()
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			sim, sched, rec := newTestSimulation(t, 2, "RD UL")
			setup(sim, sched)
			before := take(sim)

			require.NoError(t, sim.Reset())

			after := take(sim)
			assert.False(t, after.running)
			assert.False(t, after.hasCursor)
			assert.Equal(t, 0, after.steps)
			assert.Equal(t, world.Undetermined, after.mode)
			assert.NotEqual(t, before.gridID, after.gridID)
			assert.Equal(t, 0, sched.Active())
			assert.Equal(t, world.Undetermined, rec.lastMode())

			sim.View(func(b *state.Board) {
				b.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
					assert.Equal(t, world.Undetermined, cell.Label)
				})
			})
		})
	}
}

func TestTick_FromCancelledWalkIsIgnored(t *testing.T) {
	sim, _, _ := newTestSimulation(t, 2, "RD UL")

	require.NoError(t, sim.StartOrResume())
	sim.mu.Lock()
	old := sim.timer
	sim.mu.Unlock()

	require.NoError(t, sim.Reset())
	sim.tick(old)

	snap := take(sim)
	assert.False(t, snap.hasCursor)
	assert.False(t, snap.running)
}

func TestAdvance_WithoutCheckerFails(t *testing.T) {
	sim, _, _ := newTestSimulation(t, 2, "RD UL")
	assert.ErrorIs(t, sim.Advance(), world.ErrInconsistentState)
}

func TestReset_GenerationFailureStillGoesIdle(t *testing.T) {
	// The fixed layout only fits a 2x2 board
	sim, sched, rec := newTestSimulation(t, 2, "RD UL")
	require.NoError(t, sim.StartOrResume())
	before := take(sim)
	require.True(t, before.running)
	builds := rec.builtCount()

	assert.Equal(t, 3, sim.GrowSize())
	assert.ErrorIs(t, sim.Reset(), world.ErrInvalidSize)

	after := take(sim)
	assert.Equal(t, before.gridID, after.gridID, "old grid is kept")
	assert.False(t, after.running)
	assert.False(t, after.hasCursor)
	assert.Equal(t, world.Undetermined, after.mode)
	assert.Equal(t, 0, after.pathLen)
	assert.Equal(t, 0, sched.Active())
	assert.Equal(t, builds+1, rec.builtCount(), "the cleared board is announced again")
	assert.Equal(t, world.Undetermined, rec.lastMode())

	sim.View(func(b *state.Board) {
		b.Grid.ForEachCell(func(_, _ int, cell *world.Cell) {
			assert.Equal(t, world.Undetermined, cell.Label)
		})
	})

	// Play still works on the kept grid
	require.NoError(t, sim.StartOrResume())
	assert.True(t, take(sim).hasCursor)
}

func TestNewSimulation_DefaultGenerator(t *testing.T) {
	sim, err := NewSimulation(Options{Size: 4, Scheduler: clock.NewManualScheduler()})
	require.NoError(t, err)
	defer sim.Close()

	snap := take(sim)
	assert.Equal(t, 4, snap.size)
	assert.False(t, snap.hasCursor)
}

func TestGrowShrink_ClampAndApplyOnRebuild(t *testing.T) {
	sim, err := NewSimulation(Options{Size: 3, Scheduler: clock.NewManualScheduler(), Generator: generator.NewArrowGenerator(5)})
	require.NoError(t, err)

	assert.Equal(t, 4, sim.GrowSize())
	assert.Equal(t, 3, take(sim).size, "size changes only on rebuild")
	require.NoError(t, sim.Reset())
	assert.Equal(t, 4, take(sim).size)

	for i := 0; i < 10; i++ {
		sim.ShrinkSize()
	}
	assert.Equal(t, state.MinSize, sim.PendingSize())

	assert.Equal(t, state.MaxSize, sim.SetPendingSize(500))
	assert.Equal(t, state.MaxSize, sim.GrowSize())
	require.NoError(t, sim.Reset())
	assert.Equal(t, state.MaxSize, take(sim).size)
}

func TestAttach_ReplaysBoard(t *testing.T) {
	sim, _, _ := newTestSimulation(t, 2, "RD UL")
	require.NoError(t, sim.StartOrResume())

	rec := newRecorder()
	sim.Attach(rec)

	assert.Equal(t, 1, rec.built)
	require.Len(t, rec.moves, 1)
	assert.Equal(t, take(sim).cursor.Index, rec.moves[0].Index)
	assert.Equal(t, world.OnCycle, rec.lastMode())
}

func TestProcessIntent(t *testing.T) {
	sim, sched, _ := newTestSimulation(t, 2, "RD UL")

	assert.False(t, ProcessIntent(sim, engineinput.Intent{Action: engineinput.ActionPlay}))
	assert.True(t, sim.Running())

	assert.False(t, ProcessIntent(sim, engineinput.Intent{Action: engineinput.ActionStop}))
	assert.False(t, sim.Running())
	assert.Equal(t, 0, sched.Active())

	ProcessIntent(sim, engineinput.Intent{Action: engineinput.ActionGrow})
	assert.Equal(t, 3, sim.PendingSize())
	ProcessIntent(sim, engineinput.Intent{Action: engineinput.ActionShrink})
	assert.Equal(t, 2, sim.PendingSize())

	ProcessIntent(sim, engineinput.Intent{Action: engineinput.ActionReset})
	assert.False(t, take(sim).hasCursor)

	assert.False(t, ProcessIntent(sim, engineinput.Intent{Action: engineinput.ActionNone}))
	assert.True(t, ProcessIntent(sim, engineinput.Intent{Action: engineinput.ActionQuit}))
}

func TestProcessIntent_Dump(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	sim, _, _ := newTestSimulation(t, 2, "RD UL")

	assert.False(t, ProcessIntent(sim, engineinput.Intent{Action: engineinput.ActionDump}))

	data, err := os.ReadFile(filepath.Join(dir, "board.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "layout: RD UL")
}

func TestWalk_RealTicker(t *testing.T) {
	sim, err := NewSimulation(Options{
		Size:      2,
		Interval:  5 * time.Millisecond,
		Generator: &generator.FixedGenerator{Directions: []world.Direction{world.Right, world.Down, world.Up, world.Left}},
		Rand:      rand.New(rand.NewSource(3)),
	})
	require.NoError(t, err)
	defer sim.Close()

	require.NoError(t, sim.StartOrResume())
	assert.Eventually(t, func() bool { return take(sim).steps >= 4 }, time.Second, 5*time.Millisecond)

	sim.Stop()
	steps := take(sim).steps
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, steps, take(sim).steps, "no advance after stop")
}

func TestMessages_Logged(t *testing.T) {
	sim, _, _ := newTestSimulation(t, 1, "U")
	require.NoError(t, sim.StartOrResume())

	assert.Equal(t, []string{
		"Built a new 1x1 board.",
		"Walking from CELL{0:0}.",
		"Stopped at CELL{0:0} after 0 steps: its arrow leads off the board.",
	}, messages(sim))
}

func TestMessages_StopReportsSteps(t *testing.T) {
	sim, _, _ := newTestSimulation(t, 2, "RD UL")
	require.NoError(t, sim.StartOrResume())
	require.NoError(t, sim.Advance())
	sim.Stop()

	msgs := messages(sim)
	require.NotEmpty(t, msgs)
	assert.Equal(t, "Stopped after 2 steps.", msgs[len(msgs)-1])
}

func messages(sim *Simulation) []string {
	var msgs []string
	sim.View(func(b *state.Board) {
		for _, m := range b.Messages {
			msgs = append(msgs, m.Text)
		}
	})
	return msgs
}
