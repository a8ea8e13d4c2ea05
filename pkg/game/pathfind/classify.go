// Package pathfind classifies the forward path of a starting cell on the board.
package pathfind

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"arrowboard/pkg/engine/world"
)

// NoCycle is the CycleStart of a path that ends at the board edge
const NoCycle = -1

// Path is the result of one classification run
type Path struct {
	// Start cell, bound to the grid generation the path was computed on
	Start world.CellRef

	// Visited cell indices, in walk order, starting with the start cell
	Cells []int

	// Position in Cells where the cycle begins, or NoCycle
	CycleStart int

	// Label of the start cell; this is what the board displays as its mode
	Outcome world.Label

	// Number of loop iterations the walk took
	Steps int

	onPath mapset.Set[int]
}

// Classify walks the links from start and labels every visited cell.
// A walk that reaches a terminal cell labels the whole path LeadsOffBoard.
// A walk that revisits a cell labels the loop OnCycle and the prefix before
// it LeadsIntoCycle. Cells off the path keep whatever label they had.
func Classify(grid *world.Grid, start world.CellRef) (*Path, error) {
	first, err := grid.Resolve(start)
	if err != nil {
		return nil, fmt.Errorf("classify from %v: %w", start, err)
	}

	visited := []int{first.Index}
	onPath := mapset.New[int]()
	onPath.Put(first.Index)

	p := &Path{
		Start:      start,
		CycleStart: NoCycle,
		onPath:     onPath,
	}

	for {
		p.Steps++
		if p.Steps > grid.Len()+1 {
			return nil, fmt.Errorf("classify from %v: walk exceeded %d steps: %w", start, grid.Len()+1, world.ErrInconsistentState)
		}

		current := grid.CellAt(visited[len(visited)-1])
		if !current.HasOutgoing() {
			label(grid, visited, world.LeadsOffBoard)
			break
		}

		next := current.Outgoing
		if !onPath.Has(next) {
			visited = append(visited, next)
			onPath.Put(next)
			continue
		}

		i := slices.Index(visited, next)
		label(grid, visited[:i], world.LeadsIntoCycle)
		label(grid, visited[i:], world.OnCycle)
		p.CycleStart = i
		break
	}

	p.Cells = visited
	p.Outcome = first.Label
	return p, nil
}

func label(grid *world.Grid, indices []int, l world.Label) {
	for _, i := range indices {
		grid.CellAt(i).Label = l
	}
}

// Len returns the number of cells on the path
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Cells)
}

// Contains returns true if the cell index is on the path
func (p *Path) Contains(index int) bool {
	return p != nil && p.onPath.Has(index)
}

// HasCycle returns true if the path ends in a cycle
func (p *Path) HasCycle() bool {
	return p != nil && p.CycleStart != NoCycle
}

// Cycle returns the indices of the cells on the cycle, in walk order
func (p *Path) Cycle() []int {
	if !p.HasCycle() {
		return nil
	}
	return p.Cells[p.CycleStart:]
}

// Transient returns the indices of the cells before the cycle (or the whole
// path if it leads off the board)
func (p *Path) Transient() []int {
	if p == nil {
		return nil
	}
	if !p.HasCycle() {
		return p.Cells
	}
	return p.Cells[:p.CycleStart]
}

// DisplayLabel returns the label a renderer should show for c.
// Labelled cells that are not on this path show as NotOnCurrentPath.
func (p *Path) DisplayLabel(c *world.Cell) world.Label {
	if c == nil {
		return world.Undetermined
	}
	if p != nil && p.Contains(c.Index) {
		return c.Label
	}
	if c.Label == world.Undetermined {
		return world.Undetermined
	}
	return world.NotOnCurrentPath
}
