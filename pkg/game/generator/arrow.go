package generator

import (
	"math/rand"
	"sync"

	"arrowboard/pkg/engine/world"
)

// ArrowGenerator gives every cell a uniformly random arrow.
// Arrows that point off the board leave the cell terminal; there is no redraw.
type ArrowGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewArrowGenerator creates a generator with its own random source
func NewArrowGenerator(seed int64) *ArrowGenerator {
	return &ArrowGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Name returns the name of this generator
func (g *ArrowGenerator) Name() string {
	return "Random Arrows"
}

// Generate creates a new size×size board.
// On error nothing is built and no state is touched.
func (g *ArrowGenerator) Generate(size int) (*world.Grid, error) {
	grid, err := world.NewGrid(size)
	if err != nil {
		return nil, err
	}

	dirs := world.AllDirections()

	g.mu.Lock()
	defer g.mu.Unlock()

	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		grid.Point(row, col, dirs[g.rng.Intn(len(dirs))])
	})

	return grid, nil
}
