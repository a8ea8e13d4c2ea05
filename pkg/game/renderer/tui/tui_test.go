package tui

import (
	"os"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"arrowboard/pkg/engine/world"
	"arrowboard/pkg/game/generator"
	"arrowboard/pkg/game/pathfind"
	"arrowboard/pkg/game/renderer"
	"arrowboard/pkg/game/state"
)

func TestMain(m *testing.M) {
	gotext.Configure("../../../../locales", "en_GB", "default")
	color.Disable()
	os.Exit(m.Run())
}

func newRenderer(t *testing.T) *TUIRenderer {
	t.Helper()
	r := New("")
	if err := r.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return r
}

// walkingBoard returns a 2x2 board on a 4-cycle with the checker on (0,1)
func walkingBoard(t *testing.T) *state.Board {
	t.Helper()
	dirs, err := generator.ParseArrows("RD UL")
	if err != nil {
		t.Fatal(err)
	}
	grid, err := (&generator.FixedGenerator{Directions: dirs}).Generate(2)
	if err != nil {
		t.Fatal(err)
	}
	start, _ := grid.RefAt(0, 0)
	path, err := pathfind.Classify(grid, start)
	if err != nil {
		t.Fatal(err)
	}

	b := state.NewBoard(2)
	b.Grid = grid
	b.Path = path
	b.Mode = path.Outcome
	b.Cursor, _ = grid.RefAt(0, 1)
	b.Steps = 1
	b.Running = true
	b.AddMessage("Walking from CELL{0:0}.")
	return b
}

func TestFrame_DrawsBoardAndStatus(t *testing.T) {
	r := newRenderer(t)
	frame := r.Frame(walkingBoard(t), 80, 24)
	lines := strings.Split(frame, "\r\n")

	if lines[0] != "Arrow Board" {
		t.Errorf("title = %q", lines[0])
	}
	if lines[2] != " → "+" "+IconChecker+" " {
		t.Errorf("row 0 = %q", lines[2])
	}
	if lines[3] != " ↑  ← " {
		t.Errorf("row 1 = %q", lines[3])
	}

	for _, want := range []string{"Board: 2x2", "Next size: 2", "Steps: 1", "Running", "Mode: On a cycle", "Walking from 0:0."} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame is missing %q:\n%s", want, frame)
		}
	}
}

func TestFrame_BoardTooLarge(t *testing.T) {
	r := newRenderer(t)
	b := walkingBoard(t)

	frame := r.Frame(b, 5, 24)
	if !strings.Contains(frame, "The 2x2 board does not fit in this terminal") {
		t.Errorf("frame should report the board does not fit:\n%s", frame)
	}
	if strings.Contains(frame, IconChecker) {
		t.Error("board drawn although it does not fit")
	}
}

func TestFrame_EmptyMessages(t *testing.T) {
	r := newRenderer(t)
	b := walkingBoard(t)
	b.ClearMessages()
	b.Running = false

	frame := r.Frame(b, 80, 24)
	if !strings.Contains(frame, "(no messages)") || !strings.Contains(frame, "Idle") {
		t.Errorf("frame = \n%s", frame)
	}
}

func TestFormatText(t *testing.T) {
	r := newRenderer(t)
	got := r.FormatText("Stopped at CELL{%s}: %s", "1:2", renderer.LabelMarkup(world.LeadsOffBoard))
	if got != "Stopped at 1:2: Leads off the board" {
		t.Errorf("FormatText = %q", got)
	}
}

func TestObserverRequestsRedraw(t *testing.T) {
	r := newRenderer(t)
	r.OnDisplayMode(world.OnCycle)
	r.OnCursorMoved(world.Cell{})

	select {
	case <-r.redraw:
	default:
		t.Fatal("no redraw requested")
	}
	select {
	case <-r.redraw:
		t.Fatal("redraw requests should coalesce")
	default:
	}
}
