package manager

import (
	"errors"
	"snake-stones/game/types"

	"golang.org/x/exp/rand"
)

// ErrGridFull is returned when every cell of the grid is taken
var ErrGridFull = errors.New("no free cell left on the grid")

// Placer picks uniformly random free cells
type Placer struct {
	grid types.Grid
	rng  *rand.Rand
	// MaxAttempts bounds the rejection sampling before falling back to a scan of free cells
	MaxAttempts int
}

func NewPlacer(grid types.Grid, rng *rand.Rand) *Placer {
	return &Placer{
		grid:        grid,
		rng:         rng,
		MaxAttempts: 4 * grid.Cells(),
	}
}

// Place returns a random cell that is in none of the excluded sets
func (p *Placer) Place(excluded ...[]types.Point) (types.Point, error) {
	taken := make(map[types.Point]struct{})
	for _, set := range excluded {
		for _, c := range set {
			if p.grid.Contains(c) {
				taken[c] = struct{}{}
			}
		}
	}

	free := p.grid.Cells() - len(taken)
	if free <= 0 {
		return types.Point{}, ErrGridFull
	}

	for i := 0; i < p.MaxAttempts; i++ {
		c := types.Point{
			X: p.rng.Intn(p.grid.Width),
			Y: p.rng.Intn(p.grid.Height),
		}
		if _, ok := taken[c]; !ok {
			return c, nil
		}
	}

	// Crowded board: pick among the free cells directly
	cells := make([]types.Point, 0, free)
	for y := 0; y < p.grid.Height; y++ {
		for x := 0; x < p.grid.Width; x++ {
			c := types.Point{X: x, Y: y}
			if _, ok := taken[c]; !ok {
				cells = append(cells, c)
			}
		}
	}
	return cells[p.rng.Intn(len(cells))], nil
}
