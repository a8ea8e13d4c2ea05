package state

import (
	"fmt"
	"testing"

	"arrowboard/pkg/engine/world"
)

func TestClampSize(t *testing.T) {
	cases := map[int]int{-5: 1, 0: 1, 1: 1, 7: 7, 99: 99, 100: 99}
	for in, want := range cases {
		if got := ClampSize(in); got != want {
			t.Errorf("ClampSize(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestGrowShrinkSize(t *testing.T) {
	b := NewBoard(MaxSize)
	if got := b.GrowSize(); got != MaxSize {
		t.Errorf("GrowSize at max = %d, want %d", got, MaxSize)
	}
	b = NewBoard(MinSize)
	if got := b.ShrinkSize(); got != MinSize {
		t.Errorf("ShrinkSize at min = %d, want %d", got, MinSize)
	}
	if got := b.GrowSize(); got != MinSize+1 {
		t.Errorf("GrowSize = %d, want %d", got, MinSize+1)
	}
	if b.Size() != 0 {
		t.Errorf("Size() before any build = %d, want 0", b.Size())
	}
}

func TestCursor(t *testing.T) {
	b := NewBoard(2)
	if b.HasCursor() || b.CursorCell() != nil {
		t.Fatal("new board has a checker")
	}

	grid, err := world.NewGrid(2)
	if err != nil {
		t.Fatal(err)
	}
	b.Grid = grid
	b.Cursor, _ = grid.RefAt(1, 0)
	b.Mode = world.OnCycle
	b.Steps = 3

	if c := b.CursorCell(); c != grid.GetCell(1, 0) {
		t.Errorf("CursorCell() = %v, want (1,0)", c)
	}

	// A ref into a replaced grid resolves to nothing
	other, _ := world.NewGrid(2)
	b.Grid = other
	if b.CursorCell() != nil {
		t.Error("CursorCell() resolved a stale ref")
	}

	b.ClearCursor()
	if b.HasCursor() || b.Mode != world.Undetermined || b.Steps != 0 || b.Path != nil {
		t.Errorf("ClearCursor left %+v", b)
	}
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	b := NewBoard(3)
	for i := 0; i < 8; i++ {
		b.AddMessage(fmt.Sprintf("m%d", i))
	}
	if len(b.Messages) != 5 {
		t.Fatalf("len(Messages) = %d, want 5", len(b.Messages))
	}
	if b.Messages[0].Text != "m3" || b.Messages[4].Text != "m7" {
		t.Errorf("Messages = %v", b.Messages)
	}
	b.ClearMessages()
	if len(b.Messages) != 0 {
		t.Error("ClearMessages left messages")
	}
}
