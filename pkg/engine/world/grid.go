package world

import (
	"fmt"

	"github.com/google/uuid"
)

// Grid is a square board of cells stored in row-major order.
// A Grid is never resized; rebuilding the board means building a new Grid,
// which gets a new ID and invalidates every CellRef into the old one.
type Grid struct {
	id    uuid.UUID
	size  int
	cells []Cell
}

// NewGrid creates a size×size grid. Every cell starts pointing Up.
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("new grid of size %d: %w", size, ErrInvalidSize)
	}

	g := &Grid{
		id:    uuid.New(),
		size:  size,
		cells: make([]Cell, size*size),
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			i := row*size + col
			g.cells[i] = Cell{Row: row, Col: col, Index: i}
			g.Point(row, col, Up)
		}
	}

	return g, nil
}

// ID returns the generation identity of the grid
func (g *Grid) ID() uuid.UUID {
	return g.id
}

// Size returns the number of rows (and columns) in the grid
func (g *Grid) Size() int {
	return g.size
}

// Len returns the number of cells in the grid
func (g *Grid) Len() int {
	return len(g.cells)
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return &g.cells[row*g.size+col]
}

// CellAt returns the cell with the given flat index, or nil if out of range
func (g *Grid) CellAt(index int) *Cell {
	if index < 0 || index >= len(g.cells) {
		return nil
	}
	return &g.cells[index]
}

// Neighbor returns the index of the cell adjacent to (row, col) in dir.
// ok is false when that cell would be off the board.
func (g *Grid) Neighbor(row, col int, dir Direction) (index int, ok bool) {
	if !dir.IsValid() || !g.IsValidPosition(row, col) {
		return NoLink, false
	}
	rowRel, colRel := dir.Delta()
	nr, nc := row+rowRel, col+colRel
	if !g.IsValidPosition(nr, nc) {
		return NoLink, false
	}
	return nr*g.size + nc, true
}

// Point sets the arrow of the cell at (row, col) and links it to the neighbor
// it points at. Returns false if the arrow leaves the board (the cell is terminal)
// or the position is out of bounds.
func (g *Grid) Point(row, col int, dir Direction) bool {
	cell := g.GetCell(row, col)
	if cell == nil {
		return false
	}
	cell.Direction = dir
	next, ok := g.Neighbor(row, col, dir)
	cell.Outgoing = next
	return ok
}

// Next returns the cell c links to, or nil if c is terminal or not in this grid
func (g *Grid) Next(c *Cell) *Cell {
	if !g.Contains(c) || !c.HasOutgoing() {
		return nil
	}
	return g.CellAt(c.Outgoing)
}

// Contains returns true if c is one of this grid's cells
func (g *Grid) Contains(c *Cell) bool {
	if c == nil || c.Index < 0 || c.Index >= len(g.cells) {
		return false
	}
	return &g.cells[c.Index] == c
}

// Ref returns a generation-bound handle for c
func (g *Grid) Ref(c *Cell) CellRef {
	return CellRef{Grid: g.id, Index: c.Index}
}

// RefAt returns a generation-bound handle for the cell at (row, col)
func (g *Grid) RefAt(row, col int) (CellRef, bool) {
	c := g.GetCell(row, col)
	if c == nil {
		return CellRef{}, false
	}
	return g.Ref(c), true
}

// Resolve returns the cell a ref points at.
// Refs from another generation fail with ErrStaleRef.
func (g *Grid) Resolve(ref CellRef) (*Cell, error) {
	if ref.Grid != g.id {
		return nil, fmt.Errorf("resolve %v in grid %v: %w", ref, g.id, ErrStaleRef)
	}
	c := g.CellAt(ref.Index)
	if c == nil {
		return nil, fmt.Errorf("resolve %v: index out of range: %w", ref, ErrInconsistentState)
	}
	return c, nil
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for i := range g.cells {
		c := &g.cells[i]
		fn(c.Row, c.Col, c)
	}
}

// ResetLabels sets every cell back to Undetermined
func (g *Grid) ResetLabels() {
	for i := range g.cells {
		g.cells[i].Label = Undetermined
	}
}

// Validate checks the link invariants of every cell
func (g *Grid) Validate() error {
	if g.size <= 0 || len(g.cells) != g.size*g.size {
		return fmt.Errorf("grid has %d cells for size %d: %w", len(g.cells), g.size, ErrInconsistentState)
	}

	for i := range g.cells {
		c := &g.cells[i]
		if c.Index != i || c.Row*g.size+c.Col != i {
			return fmt.Errorf("cell %v stored at index %d: %w", c.Name(), i, ErrInconsistentState)
		}
		want, ok := g.Neighbor(c.Row, c.Col, c.Direction)
		if !ok {
			want = NoLink
		}
		if c.Outgoing != want {
			return fmt.Errorf("cell %v points %v but links to %d: %w", c.Name(), c.Direction, c.Outgoing, ErrInconsistentState)
		}
	}

	return nil
}
