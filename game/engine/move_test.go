package engine

import "testing"

// gridFromValues builds a grid from row-major values; 0 means empty.
func gridFromValues(rows [][]int) *Grid {
	height := len(rows)
	width := len(rows[0])
	g := NewGrid(width, height)
	for y, row := range rows {
		for x, v := range row {
			if v != 0 {
				g.Cells[y][x] = NewTile(v, x, y)
			}
		}
	}
	return g
}

func tileValueAt(t *testing.T, g *Grid, x, y int) int {
	t.Helper()
	tile, err := g.Get(x, y)
	if err != nil {
		t.Fatalf("Get(%d,%d) failed: %v", x, y, err)
	}
	if tile == nil {
		return 0
	}
	return tile.Value
}

func TestSlide_SingleTileDown(t *testing.T) {
	g := gridFromValues([][]int{
		{0, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	next, delta, changed := Slide(g, Down)
	if !changed {
		t.Fatal("Expected the tile to slide")
	}
	if delta != 0 {
		t.Errorf("Expected no score from a slide without merge, got %d", delta)
	}
	if v := tileValueAt(t, next, 1, 3); v != 2 {
		t.Errorf("Expected tile 2 at (1,3), got %d", v)
	}
	if next.CountTiles() != 1 {
		t.Errorf("Expected exactly 1 tile after slide, got %d", next.CountTiles())
	}
}

func TestSlide_MergeLeft(t *testing.T) {
	g := gridFromValues([][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{2, 0, 0, 2},
	})

	next, delta, changed := Slide(g, Left)
	if !changed {
		t.Fatal("Expected the tiles to merge")
	}
	if delta != 4 {
		t.Errorf("Expected score delta 4, got %d", delta)
	}
	if v := tileValueAt(t, next, 0, 3); v != 4 {
		t.Errorf("Expected merged tile 4 at (0,3), got %d", v)
	}
	if next.CountTiles() != 1 {
		t.Errorf("Expected all other cells empty, got %d tiles", next.CountTiles())
	}
}

func TestSlide_NoMergeDifferentValues(t *testing.T) {
	g := gridFromValues([][]int{
		{4, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{2, 0, 0, 0},
	})

	next, delta, changed := Slide(g, Up)
	if !changed {
		t.Fatal("Expected the lower tile to slide up")
	}
	if delta != 0 {
		t.Errorf("Expected no merge score, got %d", delta)
	}
	if v := tileValueAt(t, next, 0, 0); v != 4 {
		t.Errorf("Expected 4 at (0,0), got %d", v)
	}
	if v := tileValueAt(t, next, 0, 1); v != 2 {
		t.Errorf("Expected 2 at (0,1), got %d", v)
	}
}

func TestSlide_AtMostOneMergePerTile(t *testing.T) {
	// Three equal tiles produce exactly one merge and one leftover.
	g := gridFromValues([][]int{
		{2, 2, 2, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	next, delta, _ := Slide(g, Left)
	if delta != 4 {
		t.Errorf("Expected a single merge worth 4, got %d", delta)
	}
	if v := tileValueAt(t, next, 0, 0); v != 4 {
		t.Errorf("Expected 4 at (0,0), got %d", v)
	}
	if v := tileValueAt(t, next, 1, 0); v != 2 {
		t.Errorf("Expected leftover 2 at (1,0), got %d", v)
	}
	if next.CountTiles() != 2 {
		t.Errorf("Expected 2 tiles, got %d", next.CountTiles())
	}

	// Four equal tiles merge pairwise, never chaining into an 8.
	g = gridFromValues([][]int{
		{2, 2, 2, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	next, delta, _ = Slide(g, Left)
	if delta != 8 {
		t.Errorf("Expected two merges worth 8, got %d", delta)
	}
	if a, b := tileValueAt(t, next, 0, 0), tileValueAt(t, next, 1, 0); a != 4 || b != 4 {
		t.Errorf("Expected [4 4] at the leading edge, got [%d %d]", a, b)
	}
}

func TestSlide_MergeTowardsLeadingEdge(t *testing.T) {
	// Sliding right, the pair nearest the right edge merges first.
	g := gridFromValues([][]int{
		{0, 2, 2, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	next, delta, _ := Slide(g, Right)
	if delta != 4 {
		t.Errorf("Expected one merge worth 4, got %d", delta)
	}
	if v := tileValueAt(t, next, 3, 0); v != 4 {
		t.Errorf("Expected merged 4 at (3,0), got %d", v)
	}
	if v := tileValueAt(t, next, 2, 0); v != 2 {
		t.Errorf("Expected leftover 2 at (2,0), got %d", v)
	}
}

func TestSlide_NoChange(t *testing.T) {
	g := gridFromValues([][]int{
		{2, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	next, delta, changed := Slide(g, Left)
	if changed {
		t.Error("Expected compacted non-mergeable row to be a no-op")
	}
	if delta != 0 {
		t.Errorf("Expected zero delta, got %d", delta)
	}
	if !next.Equal(g) {
		t.Error("Expected result to equal input on a no-op")
	}
}

func TestSlide_EmptyGrid(t *testing.T) {
	g := NewGrid(4, 4)
	for _, dir := range Directions() {
		next, delta, changed := Slide(g, dir)
		if changed || delta != 0 {
			t.Errorf("Direction %s: expected no-op on empty grid", dir)
		}
		if next.CountTiles() != 0 {
			t.Errorf("Direction %s: expected empty result", dir)
		}
	}
}

func TestSlide_Deterministic(t *testing.T) {
	g := gridFromValues([][]int{
		{2, 2, 4, 8},
		{0, 2, 0, 2},
		{4, 0, 4, 0},
		{2, 8, 2, 8},
	})

	for _, dir := range Directions() {
		first, d1, c1 := Slide(g, dir)
		second, d2, c2 := Slide(g, dir)
		if !first.Equal(second) || d1 != d2 || c1 != c2 {
			t.Errorf("Direction %s: Slide is not deterministic", dir)
		}
	}
}

func TestSlide_InputUntouched(t *testing.T) {
	g := gridFromValues([][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	before := g.Clone()

	Slide(g, Left)
	if !g.Equal(before) {
		t.Error("Slide mutated its input grid")
	}
}

func TestSlide_Conservation(t *testing.T) {
	// The sum of tile values is invariant under a move; score increases by
	// exactly the merged value per merge.
	g := gridFromValues([][]int{
		{2, 2, 4, 4},
		{8, 8, 0, 0},
		{2, 0, 2, 0},
		{16, 0, 0, 16},
	})
	sumBefore := TileSum(g)

	for _, dir := range Directions() {
		next, delta, _ := Slide(g, dir)
		if TileSum(next) != sumBefore {
			t.Errorf("Direction %s: tile sum changed from %d to %d", dir, sumBefore, TileSum(next))
		}
		if delta < 0 {
			t.Errorf("Direction %s: negative score delta %d", dir, delta)
		}
	}

	// Left merges 2+2, 4+4, 8+8, 2+2 and 16+16: delta is the sum of the
	// doubled values.
	_, delta, _ := Slide(g, Left)
	if delta != 4+8+16+4+32 {
		t.Errorf("Expected delta %d, got %d", 4+8+16+4+32, delta)
	}
}

func TestMovesAvailable(t *testing.T) {
	if !MovesAvailable(gridFromValues([][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})) {
		t.Error("Expected moves on a nearly empty grid")
	}

	// Full grid with no adjacent equal values in any direction.
	if MovesAvailable(gridFromValues([][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})) {
		t.Error("Expected no moves on an alternating full grid")
	}

	// Full but mergeable.
	if !MovesAvailable(gridFromValues([][]int{
		{2, 2, 4, 8},
		{4, 8, 2, 4},
		{2, 4, 8, 2},
		{4, 2, 4, 8},
	})) {
		t.Error("Expected a move on a full grid with an adjacent pair")
	}
}
