package engine

import "fmt"

// Direction represents one of the four slide directions
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"

	// Validation constants
	MinGridSize     = 2
	MaxGridSize     = 16
	DefaultGridSize = 4
	MinStartTiles   = 1
	DefaultWinTile  = 2048
	MaxBulkMoves    = 50
)

// Directions lists the four slide directions in a fixed order, used by
// game-over probing and bulk operations.
func Directions() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// ParseDirection converts a wire-level direction string into a Direction
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Up, Down, Left, Right:
		return Direction(s), nil
	}
	return "", fmt.Errorf("invalid direction %q (want up, down, left or right)", s)
}

// Position represents x,y coordinates on the grid
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Tile is a single numbered game piece at a grid position. Tiles are never
// mutated in place; a merge allocates a new tile.
type Tile struct {
	Value int `json:"value"`
	X     int `json:"x"`
	Y     int `json:"y"`
}

// NewTile creates a tile with the given power-of-two value at (x,y)
func NewTile(value, x, y int) *Tile {
	return &Tile{Value: value, X: x, Y: y}
}

// GameConfig represents the game configuration from JSON
type GameConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	GridWidth   int    `json:"grid_width"`
	GridHeight  int    `json:"grid_height"`
	StartTiles  int    `json:"start_tiles"`
	// FourTileChance is the probability in [0,1] that a spawned tile is a 4
	// instead of a 2. Zero means every spawn is a 2.
	FourTileChance float64 `json:"four_tile_chance"`
	WinTile        int     `json:"win_tile"`
	Messages       struct {
		Welcome  string `json:"welcome"`
		Win      string `json:"win"`
		GameOver string `json:"game_over"`
		NoChange string `json:"no_change"`
	} `json:"messages"`
}

// GameState represents the complete game state
type GameState struct {
	Grid        *Grid              `json:"grid"`
	Score       int                `json:"score"`
	Highscore   int                `json:"highscore"`
	GameOver    bool               `json:"game_over"`
	WinReached  bool               `json:"win_reached"`
	Message     string             `json:"message"`
	ConfigName  string             `json:"config_name"`
	MoveHistory []MoveHistoryEntry `json:"move_history"`
	TotalMoves  int                `json:"total_moves"`

	// CurrentMoves tracks only the moves since the last reset. It mirrors
	// MoveHistory entries but gets cleared on reset while MoveHistory remains
	// cumulative.
	CurrentMoves      []MoveHistoryEntry `json:"current_moves"`
	CurrentMovesCount int                `json:"current_moves_count"`
}

// MoveHistoryEntry represents a single move in the game history
type MoveHistoryEntry struct {
	Action     string `json:"action"`
	ScoreDelta int    `json:"score_delta"`
	Score      int    `json:"score"`
	Timestamp  int64  `json:"timestamp"`
	Changed    bool   `json:"changed"`
	MoveNumber int    `json:"move_number"`
}
