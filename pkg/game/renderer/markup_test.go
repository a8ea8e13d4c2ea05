package renderer

import (
	"testing"

	"arrowboard/pkg/engine/world"
)

func TestParseMarkup(t *testing.T) {
	segs := ParseMarkup("Checker dropped on CELL{2:3}: " + LabelMarkup(world.OnCycle))

	if len(segs) != 4 {
		t.Fatalf("ParseMarkup returned %d segments, want 4: %+v", len(segs), segs)
	}
	if segs[0].Text != "Checker dropped on " || segs[0].Style != StyleNormal {
		t.Errorf("segment 0 = %+v", segs[0])
	}
	if segs[1].Text != "2:3" || segs[1].Style != StyleChecker {
		t.Errorf("segment 1 = %+v", segs[1])
	}
	// With no catalogue loaded, gotext returns the key itself
	if segs[3].Text != "LABEL_ON_CYCLE" || segs[3].Style != StyleOnCycle {
		t.Errorf("segment 3 = %+v", segs[3])
	}
}

func TestParseMarkup_UnknownFunctionKept(t *testing.T) {
	if got := PlainText("a FOO{bar} b"); got != "a FOO{bar} b" {
		t.Errorf("PlainText = %q", got)
	}
}

func TestPlainText(t *testing.T) {
	if got := PlainText("press ACTION{Play} SUBTLE{(p)}"); got != "press Play (p)" {
		t.Errorf("PlainText = %q", got)
	}
	if got := PlainText(""); got != "" {
		t.Errorf("PlainText(\"\") = %q", got)
	}
}

func TestLabelStyle(t *testing.T) {
	cases := map[world.Label]TextStyle{
		world.Undetermined:     StyleNormal,
		world.NotOnCurrentPath: StyleNotOnPath,
		world.LeadsOffBoard:    StyleLeadsOffBoard,
		world.OnCycle:          StyleOnCycle,
		world.LeadsIntoCycle:   StyleLeadsIntoCycle,
	}
	for l, want := range cases {
		if got := LabelStyle(l); got != want {
			t.Errorf("LabelStyle(%v) = %v, want %v", l, got, want)
		}
	}
}
