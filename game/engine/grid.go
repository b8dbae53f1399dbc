package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfBounds is returned when a cell outside the grid's declared
// dimensions is accessed. It signals a programming error in the caller,
// not a recoverable game condition.
var ErrOutOfBounds = errors.New("cell out of grid bounds")

// Grid is a fixed-size addressable collection of optional tiles.
// Cells[y][x] is nil for an empty cell. A tile stored at (x,y) always
// carries matching coordinates.
type Grid struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Cells  [][]*Tile `json:"cells"`
}

// NewGrid creates an empty width×height grid
func NewGrid(width, height int) *Grid {
	cells := make([][]*Tile, height)
	for y := range cells {
		cells[y] = make([]*Tile, width)
	}
	return &Grid{Width: width, Height: height, Cells: cells}
}

// GenerateGrid builds a grid of the given dimensions. If init is non-nil it
// is invoked once per cell in row-major order (y outer, x inner) to produce
// the initial tile; returning nil leaves the cell empty.
func GenerateGrid(width, height int, init func(x, y int) *Tile) *Grid {
	g := NewGrid(width, height)
	if init == nil {
		return g
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if t := init(x, y); t != nil {
				g.Cells[y][x] = NewTile(t.Value, x, y)
			}
		}
	}
	return g
}

// InBounds reports whether (x,y) is a valid cell address
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Get returns the tile at (x,y), or nil for an empty cell
func (g *Grid) Get(x, y int) (*Tile, error) {
	if !g.InBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, x, y, g.Width, g.Height)
	}
	return g.Cells[y][x], nil
}

// Set places a tile at (x,y), or clears the cell when t is nil. The stored
// tile is a copy with its coordinates normalized to (x,y).
func (g *Grid) Set(x, y int, t *Tile) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, x, y, g.Width, g.Height)
	}
	if t == nil {
		g.Cells[y][x] = nil
		return nil
	}
	g.Cells[y][x] = NewTile(t.Value, x, y)
	return nil
}

// ForEach invokes fn once per cell in row-major order (y outer, x inner).
// The tile argument is nil for empty cells.
func (g *Grid) ForEach(fn func(x, y int, t *Tile)) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			fn(x, y, g.Cells[y][x])
		}
	}
}

// Equal reports deep structural equality: every cell must match by
// emptiness and tile value.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			a, b := g.Cells[y][x], other.Cells[y][x]
			if (a == nil) != (b == nil) {
				return false
			}
			if a != nil && a.Value != b.Value {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.Width, g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if t := g.Cells[y][x]; t != nil {
				c.Cells[y][x] = NewTile(t.Value, x, y)
			}
		}
	}
	return c
}

// EmptyCells returns the positions of all empty cells in row-major order
func (g *Grid) EmptyCells() []Position {
	var empty []Position
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x] == nil {
				empty = append(empty, Position{X: x, Y: y})
			}
		}
	}
	return empty
}

// IsFull reports whether the grid has no empty cells
func (g *Grid) IsFull() bool {
	return len(g.EmptyCells()) == 0
}

// CountTiles returns the number of non-empty cells
func (g *Grid) CountTiles() int {
	return g.Width*g.Height - len(g.EmptyCells())
}

// String renders the grid as an ASCII table
func (g *Grid) String() string {
	var b strings.Builder
	line := "+" + strings.Repeat("------+", g.Width)
	b.WriteString(line + "\n")
	for y := 0; y < g.Height; y++ {
		b.WriteString("|")
		for x := 0; x < g.Width; x++ {
			if t := g.Cells[y][x]; t != nil {
				b.WriteString(fmt.Sprintf("%5d |", t.Value))
			} else {
				b.WriteString("      |")
			}
		}
		b.WriteString("\n" + line + "\n")
	}
	return b.String()
}
