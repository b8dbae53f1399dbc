package engine

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid(4, 4)

	if g.Width != 4 || g.Height != 4 {
		t.Errorf("Expected 4x4 grid, got %dx%d", g.Width, g.Height)
	}
	if g.CountTiles() != 0 {
		t.Errorf("Expected empty grid, got %d tiles", g.CountTiles())
	}
	if g.IsFull() {
		t.Error("Expected fresh grid not to be full")
	}
	if len(g.EmptyCells()) != 16 {
		t.Errorf("Expected 16 empty cells, got %d", len(g.EmptyCells()))
	}
}

func TestGenerateGrid_RowMajorInit(t *testing.T) {
	var visited []Position
	g := GenerateGrid(3, 2, func(x, y int) *Tile {
		visited = append(visited, Position{X: x, Y: y})
		if x == y {
			return NewTile(2, x, y)
		}
		return nil
	})

	expected := []Position{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	if len(visited) != len(expected) {
		t.Fatalf("Expected %d initializer calls, got %d", len(expected), len(visited))
	}
	for i, pos := range expected {
		if visited[i] != pos {
			t.Errorf("Call %d: expected %v, got %v", i, pos, visited[i])
		}
	}

	if g.CountTiles() != 2 {
		t.Errorf("Expected 2 tiles placed, got %d", g.CountTiles())
	}
}

func TestGrid_GetSet(t *testing.T) {
	g := NewGrid(4, 4)

	if err := g.Set(1, 2, NewTile(8, 1, 2)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	tile, err := g.Get(1, 2)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if tile == nil || tile.Value != 8 {
		t.Fatalf("Expected tile value 8 at (1,2), got %v", tile)
	}

	// Clearing a cell
	if err := g.Set(1, 2, nil); err != nil {
		t.Fatalf("Set(nil) failed: %v", err)
	}
	tile, _ = g.Get(1, 2)
	if tile != nil {
		t.Errorf("Expected empty cell after clearing, got %v", tile)
	}
}

func TestGrid_SetNormalizesCoordinates(t *testing.T) {
	g := NewGrid(4, 4)

	// Tile carries stale coordinates; the grid must store matching ones.
	if err := g.Set(3, 0, NewTile(4, 0, 0)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	tile, _ := g.Get(3, 0)
	if tile.X != 3 || tile.Y != 0 {
		t.Errorf("Expected stored tile at (3,0), got (%d,%d)", tile.X, tile.Y)
	}
}

func TestGrid_OutOfBounds(t *testing.T) {
	g := NewGrid(4, 4)

	cases := []struct{ x, y int }{
		{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100},
	}
	for _, c := range cases {
		if _, err := g.Get(c.x, c.y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%d,%d): expected ErrOutOfBounds, got %v", c.x, c.y, err)
		}
		if err := g.Set(c.x, c.y, NewTile(2, c.x, c.y)); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d,%d): expected ErrOutOfBounds, got %v", c.x, c.y, err)
		}
	}
}

func TestGrid_ForEachOrder(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, NewTile(2, 0, 0))
	g.Set(1, 1, NewTile(4, 1, 1))

	var order []Position
	g.ForEach(func(x, y int, tile *Tile) {
		order = append(order, Position{X: x, Y: y})
	})

	expected := []Position{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i, pos := range expected {
		if order[i] != pos {
			t.Errorf("Iteration %d: expected %v, got %v", i, pos, order[i])
		}
	}

	// Iteration is restartable and yields the same order.
	var second []Position
	g.ForEach(func(x, y int, tile *Tile) {
		second = append(second, Position{X: x, Y: y})
	})
	for i := range expected {
		if second[i] != order[i] {
			t.Errorf("Second iteration diverged at %d: %v vs %v", i, second[i], order[i])
		}
	}
}

func TestGrid_Equal(t *testing.T) {
	a := NewGrid(4, 4)
	b := NewGrid(4, 4)
	a.Set(0, 0, NewTile(2, 0, 0))
	b.Set(0, 0, NewTile(2, 0, 0))

	if !a.Equal(b) {
		t.Error("Expected grids with matching cells to be equal")
	}

	b.Set(0, 0, NewTile(4, 0, 0))
	if a.Equal(b) {
		t.Error("Expected grids with different values to differ")
	}

	b.Set(0, 0, nil)
	if a.Equal(b) {
		t.Error("Expected tile vs empty cell to differ")
	}

	if a.Equal(NewGrid(3, 4)) {
		t.Error("Expected grids with different dimensions to differ")
	}
	if a.Equal(nil) {
		t.Error("Expected comparison against nil to be false")
	}
}

func TestGrid_CloneIndependent(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(2, 2, NewTile(16, 2, 2))

	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("Expected clone to equal original")
	}

	c.Set(2, 2, NewTile(32, 2, 2))
	tile, _ := g.Get(2, 2)
	if tile.Value != 16 {
		t.Errorf("Mutating the clone changed the original: got %d", tile.Value)
	}
}

func TestGrid_JSONRoundTrip(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(0, 0, NewTile(2, 0, 0))
	g.Set(3, 3, NewTile(1024, 3, 3))

	data, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var restored Grid
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if !restored.Equal(g) {
		t.Errorf("Round trip lost board state:\n%s\nvs\n%s", g, &restored)
	}
}
