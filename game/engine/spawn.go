package engine

import (
	"errors"
	"math/rand"
)

// ErrNoSpaceAvailable is returned when a spawn is attempted on a full grid.
// Callers are expected to check for empty cells first; the grid is returned
// unchanged in this case.
var ErrNoSpaceAvailable = errors.New("no space available for a new tile")

// Spawner places new tiles on the board after successful moves. The
// randomness source is injected so tests can supply deterministic sequences.
type Spawner struct {
	rng        *rand.Rand
	fourChance float64
}

// NewSpawner creates a spawner. fourChance is the probability in [0,1] that
// a spawned tile has value 4 instead of 2.
func NewSpawner(rng *rand.Rand, fourChance float64) *Spawner {
	return &Spawner{rng: rng, fourChance: fourChance}
}

// Spawn places one new tile on a uniformly chosen empty cell and returns the
// resulting grid. The input grid is not modified.
func (s *Spawner) Spawn(g *Grid) (*Grid, error) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return g, ErrNoSpaceAvailable
	}

	pos := empty[s.rng.Intn(len(empty))]
	value := 2
	if s.fourChance > 0 && s.rng.Float64() < s.fourChance {
		value = 4
	}

	next := g.Clone()
	next.Cells[pos.Y][pos.X] = NewTile(value, pos.X, pos.Y)
	return next, nil
}

// Seed places n starting tiles of value 2 on distinct empty cells. It is
// used when a fresh board is created.
func (s *Spawner) Seed(g *Grid, n int) *Grid {
	next := g.Clone()
	for i := 0; i < n; i++ {
		empty := next.EmptyCells()
		if len(empty) == 0 {
			break
		}
		pos := empty[s.rng.Intn(len(empty))]
		next.Cells[pos.Y][pos.X] = NewTile(2, pos.X, pos.Y)
	}
	return next
}
