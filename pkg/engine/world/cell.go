// Package world provides the board primitives: cells, arrows and the grid that owns them.
// Cells link to each other by index into their grid, never by pointer.
package world

import (
	"fmt"

	"github.com/google/uuid"
)

// NoLink is the Outgoing value of a cell whose arrow points off the board
const NoLink = -1

// Cell represents a single square of the board
type Cell struct {
	// Grid position
	Row   int
	Col   int
	Index int // Row*size + Col

	// Arrow drawn on the cell
	Direction Direction

	// Index of the linked cell in the owning grid, or NoLink
	Outgoing int

	// Classification from the last path run that visited this cell
	Label Label
}

// HasOutgoing returns true if the cell links to another cell
func (c *Cell) HasOutgoing() bool {
	return c != nil && c.Outgoing != NoLink
}

// IsTerminal returns true if the cell's arrow leaves the board
func (c *Cell) IsTerminal() bool {
	return c != nil && c.Outgoing == NoLink
}

// Name returns the "row:col" name of the cell
func (c *Cell) Name() string {
	return fmt.Sprintf("%v:%v", c.Row, c.Col)
}

// CellRef identifies a cell within one grid generation
type CellRef struct {
	Grid  uuid.UUID
	Index int
}

// IsZero returns true if the ref was never assigned
func (r CellRef) IsZero() bool {
	return r.Grid == uuid.Nil
}

// String returns a short form of the ref for logs
func (r CellRef) String() string {
	if r.IsZero() {
		return "<none>"
	}
	return fmt.Sprintf("%s#%d", r.Grid.String()[:8], r.Index)
}
