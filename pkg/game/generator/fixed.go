package generator

import (
	"fmt"

	"arrowboard/pkg/engine/world"
)

// FixedGenerator builds boards from a fixed, row-major list of arrows.
// It is used for reproducible layouts in tests and demos.
type FixedGenerator struct {
	Directions []world.Direction
}

// Name returns the name of this generator
func (g *FixedGenerator) Name() string {
	return "Fixed"
}

// Generate creates a size×size board using the stored arrows.
// The number of stored arrows must be exactly size*size.
func (g *FixedGenerator) Generate(size int) (*world.Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("fixed board of size %d: %w", size, world.ErrInvalidSize)
	}
	if len(g.Directions) != size*size {
		return nil, fmt.Errorf("fixed board of size %d needs %d arrows, have %d: %w",
			size, size*size, len(g.Directions), world.ErrInvalidSize)
	}
	for i, d := range g.Directions {
		if !d.IsValid() {
			return nil, fmt.Errorf("fixed board arrow %d is %v: %w", i, d, world.ErrInconsistentState)
		}
	}

	grid, err := world.NewGrid(size)
	if err != nil {
		return nil, err
	}
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		grid.Point(row, col, g.Directions[cell.Index])
	})
	return grid, nil
}

// ParseArrows converts a string of U/R/D/L letters (whitespace ignored) into arrows
func ParseArrows(s string) ([]world.Direction, error) {
	var dirs []world.Direction
	for i, r := range s {
		switch r {
		case 'U', 'u', '^':
			dirs = append(dirs, world.Up)
		case 'R', 'r', '>':
			dirs = append(dirs, world.Right)
		case 'D', 'd', 'v':
			dirs = append(dirs, world.Down)
		case 'L', 'l', '<':
			dirs = append(dirs, world.Left)
		case ' ', '\t', '\n', '\r':
		default:
			return nil, fmt.Errorf("unknown arrow %q at offset %d", r, i)
		}
	}
	return dirs, nil
}
