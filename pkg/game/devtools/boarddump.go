// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"arrowboard/pkg/engine/world"
	"arrowboard/pkg/game/state"
)

const boardDumpFilename = "board.txt"

// arrowLetter returns the layout letter for a direction, as read back by -layout
func arrowLetter(d world.Direction) byte {
	switch d {
	case world.Up:
		return 'U'
	case world.Right:
		return 'R'
	case world.Down:
		return 'D'
	case world.Left:
		return 'L'
	default:
		return '?'
	}
}

// labelSymbol returns the single-character symbol for a cell's displayed label
func labelSymbol(l world.Label) byte {
	switch l {
	case world.LeadsOffBoard:
		return 'X'
	case world.OnCycle:
		return 'O'
	case world.LeadsIntoCycle:
		return 'I'
	case world.NotOnCurrentPath:
		return '-'
	default:
		return '.'
	}
}

// Layout returns the board's arrows in the row-major format accepted by the
// layout setting: one word of U/R/D/L letters per row.
func Layout(g *world.Grid) string {
	rows := make([]string, 0, g.Size())
	var row strings.Builder
	g.ForEachCell(func(_, col int, cell *world.Cell) {
		row.WriteByte(arrowLetter(cell.Direction))
		if col == g.Size()-1 {
			rows = append(rows, row.String())
			row.Reset()
		}
	})
	return strings.Join(rows, " ")
}

// WriteBoard writes a debug dump of b: metadata, the arrow layout, the label
// map and the current path.
func WriteBoard(w io.Writer, b *state.Board) error {
	if b.Grid == nil {
		return fmt.Errorf("no grid")
	}
	g := b.Grid

	cursorRow, cursorCol := -1, -1
	if c := b.CursorCell(); c != nil {
		cursorRow, cursorCol = c.Row, c.Col
	}

	var sb strings.Builder

	// --- Metadata ---
	sb.WriteString("=== BOARD DUMP ===\n\n")
	sb.WriteString("--- Metadata ---\n")
	fmt.Fprintf(&sb, "grid_id: %s\n", g.ID())
	fmt.Fprintf(&sb, "size: %d\n", g.Size())
	fmt.Fprintf(&sb, "pending_size: %d\n", b.PendingSize)
	fmt.Fprintf(&sb, "running: %v\n", b.Running)
	fmt.Fprintf(&sb, "steps: %d\n", b.Steps)
	fmt.Fprintf(&sb, "checker_cell: %d,%d\n", cursorRow, cursorCol)
	fmt.Fprintf(&sb, "mode: %s\n", b.Mode)
	sb.WriteString("\n")

	// --- Layout ---
	sb.WriteString("--- Layout (U/R/D/L, one word per row) ---\n")
	fmt.Fprintf(&sb, "layout: %s\n\n", Layout(g))

	// --- Labels ---
	sb.WriteString("--- Labels ---\n")
	sb.WriteString("O = on cycle  X = leads off board  I = leads into cycle  - = not on current path  . = undetermined  @ = checker\n")
	g.ForEachCell(func(row, col int, cell *world.Cell) {
		if row == cursorRow && col == cursorCol {
			sb.WriteByte('@')
		} else {
			sb.WriteByte(labelSymbol(b.Path.DisplayLabel(cell)))
		}
		if col == g.Size()-1 {
			sb.WriteByte('\n')
		}
	})
	sb.WriteString("\n")

	// --- Path ---
	sb.WriteString("--- Path ---\n")
	if b.Path == nil {
		sb.WriteString("none\n")
	} else {
		names := make([]string, 0, b.Path.Len())
		for _, i := range b.Path.Cells {
			names = append(names, g.CellAt(i).Name())
		}
		fmt.Fprintf(&sb, "outcome: %s\n", b.Path.Outcome)
		fmt.Fprintf(&sb, "cells: %s\n", strings.Join(names, " "))
		fmt.Fprintf(&sb, "cycle_start: %d\n", b.Path.CycleStart)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// DumpBoardToFile writes the board dump to board.txt in the working directory
// and returns the absolute path of the file.
func DumpBoardToFile(b *state.Board) (string, error) {
	absPath, err := filepath.Abs(boardDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteBoard(f, b); err != nil {
		return "", err
	}
	return absPath, nil
}
