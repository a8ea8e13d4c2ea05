package generator

import "arrowboard/pkg/engine/world"

// GridGenerator is an interface for board generation algorithms
type GridGenerator interface {
	Generate(size int) (*world.Grid, error)
	Name() string
}
