package engine

// HighestTile returns the largest tile value on the grid, or 0 for an empty
// grid.
func HighestTile(g *Grid) int {
	max := 0
	g.ForEach(func(x, y int, t *Tile) {
		if t != nil && t.Value > max {
			max = t.Value
		}
	})
	return max
}

// TileSum returns the sum of all tile values on the grid
func TileSum(g *Grid) int {
	sum := 0
	g.ForEach(func(x, y int, t *Tile) {
		if t != nil {
			sum += t.Value
		}
	})
	return sum
}

// TileValues returns all tile values in row-major order, useful for compact
// comparisons in tests and logs.
func TileValues(g *Grid) []int {
	values := make([]int, 0, g.Width*g.Height)
	g.ForEach(func(x, y int, t *Tile) {
		if t != nil {
			values = append(values, t.Value)
		} else {
			values = append(values, 0)
		}
	})
	return values
}
