package engine

// Slide computes the result of sliding every tile in the given direction.
// It is a pure transform: the input grid is never modified. It returns the
// new grid, the score delta contributed by merges, and whether any cell
// changed. A tile merges at most once per move.
func Slide(g *Grid, dir Direction) (*Grid, int, bool) {
	next := NewGrid(g.Width, g.Height)
	delta := 0

	switch dir {
	case Left, Right:
		for y := 0; y < g.Height; y++ {
			values := extractRow(g, y, dir == Right)
			merged, score := mergeValues(values)
			delta += score
			placeRow(next, y, merged, dir == Right)
		}
	case Up, Down:
		for x := 0; x < g.Width; x++ {
			values := extractColumn(g, x, dir == Down)
			merged, score := mergeValues(values)
			delta += score
			placeColumn(next, x, merged, dir == Down)
		}
	default:
		return g.Clone(), 0, false
	}

	return next, delta, !next.Equal(g)
}

// mergeValues merges a line of non-empty tile values already ordered towards
// the leading edge. Equal neighbours collapse into a doubled value exactly
// once; the doubled value is the score contribution of that merge.
func mergeValues(values []int) ([]int, int) {
	score := 0
	merged := make([]int, 0, len(values))
	for i := 0; i < len(values); i++ {
		if i+1 < len(values) && values[i] == values[i+1] {
			v := values[i] * 2
			merged = append(merged, v)
			score += v
			i++ // the partner tile is consumed
		} else {
			merged = append(merged, values[i])
		}
	}
	return merged, score
}

// extractRow returns the non-empty values of row y ordered towards the
// target edge. reverse is true when sliding right.
func extractRow(g *Grid, y int, reverse bool) []int {
	var values []int
	for x := 0; x < g.Width; x++ {
		if t := g.Cells[y][x]; t != nil {
			values = append(values, t.Value)
		}
	}
	if reverse {
		reverseValues(values)
	}
	return values
}

// extractColumn returns the non-empty values of column x ordered towards the
// target edge. reverse is true when sliding down.
func extractColumn(g *Grid, x int, reverse bool) []int {
	var values []int
	for y := 0; y < g.Height; y++ {
		if t := g.Cells[y][x]; t != nil {
			values = append(values, t.Value)
		}
	}
	if reverse {
		reverseValues(values)
	}
	return values
}

// placeRow writes merged values into row y of the target grid, compacted
// against the leading edge. Trailing cells stay empty.
func placeRow(g *Grid, y int, values []int, reverse bool) {
	for i, v := range values {
		x := i
		if reverse {
			x = g.Width - 1 - i
		}
		g.Cells[y][x] = NewTile(v, x, y)
	}
}

// placeColumn writes merged values into column x of the target grid,
// compacted against the leading edge.
func placeColumn(g *Grid, x int, values []int, reverse bool) {
	for i, v := range values {
		y := i
		if reverse {
			y = g.Height - 1 - i
		}
		g.Cells[y][x] = NewTile(v, x, y)
	}
}

func reverseValues(values []int) {
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
}

// MovesAvailable reports whether any direction would change the grid.
// It probes all four directions with Slide and commits nothing.
func MovesAvailable(g *Grid) bool {
	for _, dir := range Directions() {
		if _, _, changed := Slide(g, dir); changed {
			return true
		}
	}
	return false
}
