package main

import (
	"log"
	"math"
)

// Directions in the strategy's default preference order. Keeping the big
// tiles anchored in the bottom-left corner means "up" is only played when
// everything else is blocked.
var directionOrder = []string{"left", "down", "right", "up"}

// CornerStrategy picks moves by simulating each direction one step ahead and
// scoring the resulting board. The evaluation rewards merge points, empty
// cells, and keeping the largest tile in the bottom-left corner.
type CornerStrategy struct {
	width  int
	height int

	// State tracking
	blockedStreak map[string]int
	lastScore     int
	stuckCount    int
}

func NewCornerStrategy(state *GameState) *CornerStrategy {
	s := &CornerStrategy{
		width:         state.Grid.Width,
		height:        state.Grid.Height,
		blockedStreak: make(map[string]int),
	}

	log.Printf("📊 Corner Strategy: %dx%d board, anchoring bottom-left", s.width, s.height)
	return s
}

// Reset clears per-attempt state
func (s *CornerStrategy) Reset() {
	s.blockedStreak = make(map[string]int)
	s.lastScore = 0
	s.stuckCount = 0
}

// RecordBlocked notes that the server rejected a direction as a no-op, so
// the simulation and the server disagreed (a tile spawned in between).
func (s *CornerStrategy) RecordBlocked(direction string) {
	s.blockedStreak[direction]++
}

// NextMove returns the best direction for the current state, or "" when no
// direction changes the board.
func (s *CornerStrategy) NextMove(state *GameState) string {
	board := toBoard(state.Grid)

	bestDir := ""
	bestValue := math.Inf(-1)

	for _, dir := range directionOrder {
		next, gained, changed := simulateMove(board, dir)
		if !changed {
			continue
		}

		value := evaluate(next, gained)

		// Playing "up" breaks the corner anchor. Keep it as a last resort.
		if dir == "up" {
			value -= 10000
		}

		// A direction the server keeps rejecting is likely misjudged by the
		// one-step simulation. Deprioritize it until it succeeds again.
		value -= float64(s.blockedStreak[dir]) * 50

		if value > bestValue {
			bestValue = value
			bestDir = dir
		}
	}

	if bestDir != "" {
		s.blockedStreak[bestDir] = 0
	}

	// Track score progress to detect stalls
	if state.Score == s.lastScore {
		s.stuckCount++
	} else {
		s.stuckCount = 0
		s.lastScore = state.Score
	}

	return bestDir
}

// evaluate scores a board. Higher is better.
func evaluate(board [][]int, gained int) float64 {
	height := len(board)
	width := len(board[0])

	empty := 0
	largest := 0
	largestX, largestY := 0, 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := board[y][x]
			if v == 0 {
				empty++
			} else if v > largest {
				largest = v
				largestX, largestY = x, y
			}
		}
	}

	value := float64(gained) + 8*float64(empty)

	// Reward keeping the largest tile in the bottom-left corner
	if largestX == 0 && largestY == height-1 {
		value += float64(largest)
	}

	// Reward monotone bottom row (descending left to right) so merges chain
	// into the corner
	monotone := true
	for x := 1; x < width; x++ {
		if board[height-1][x] > board[height-1][x-1] {
			monotone = false
			break
		}
	}
	if monotone {
		value += float64(largest) / 2
	}

	return value
}

// toBoard flattens the wire grid into a [y][x] value matrix
func toBoard(grid *Grid) [][]int {
	board := make([][]int, grid.Height)
	for y := range board {
		board[y] = make([]int, grid.Width)
		for x := 0; x < grid.Width; x++ {
			if tile := grid.Cells[y][x]; tile != nil {
				board[y][x] = tile.Value
			}
		}
	}
	return board
}

// simulateMove applies one move to a copy of the board without spawning a
// tile. It returns the resulting board, the points gained, and whether
// anything moved.
func simulateMove(board [][]int, direction string) ([][]int, int, bool) {
	height := len(board)
	width := len(board[0])

	next := make([][]int, height)
	for y := range next {
		next[y] = make([]int, width)
		copy(next[y], board[y])
	}

	gained := 0
	changed := false

	switch direction {
	case "left":
		for y := 0; y < height; y++ {
			merged, pts, moved := slideLine(next[y])
			next[y] = merged
			gained += pts
			changed = changed || moved
		}
	case "right":
		for y := 0; y < height; y++ {
			reversed := reverseLine(next[y])
			merged, pts, moved := slideLine(reversed)
			next[y] = reverseLine(merged)
			gained += pts
			changed = changed || moved
		}
	case "up":
		for x := 0; x < width; x++ {
			col := columnOf(next, x)
			merged, pts, moved := slideLine(col)
			setColumn(next, x, merged)
			gained += pts
			changed = changed || moved
		}
	case "down":
		for x := 0; x < width; x++ {
			col := reverseLine(columnOf(next, x))
			merged, pts, moved := slideLine(col)
			setColumn(next, x, reverseLine(merged))
			gained += pts
			changed = changed || moved
		}
	default:
		return next, 0, false
	}

	return next, gained, changed
}

// slideLine compacts a line toward index 0, merging equal neighbors once.
// Returns the new line, the points gained, and whether the line changed.
func slideLine(line []int) ([]int, int, bool) {
	compact := make([]int, 0, len(line))
	for _, v := range line {
		if v != 0 {
			compact = append(compact, v)
		}
	}

	merged := make([]int, 0, len(line))
	gained := 0
	for i := 0; i < len(compact); i++ {
		if i+1 < len(compact) && compact[i] == compact[i+1] {
			sum := compact[i] * 2
			merged = append(merged, sum)
			gained += sum
			i++
		} else {
			merged = append(merged, compact[i])
		}
	}

	result := make([]int, len(line))
	copy(result, merged)

	changed := false
	for i := range line {
		if line[i] != result[i] {
			changed = true
			break
		}
	}

	return result, gained, changed
}

func reverseLine(line []int) []int {
	out := make([]int, len(line))
	for i, v := range line {
		out[len(line)-1-i] = v
	}
	return out
}

func columnOf(board [][]int, x int) []int {
	col := make([]int, len(board))
	for y := range board {
		col[y] = board[y][x]
	}
	return col
}

func setColumn(board [][]int, x int, col []int) {
	for y := range board {
		board[y][x] = col[y]
	}
}
