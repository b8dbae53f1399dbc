package engine

import "fmt"

// DefaultConfig returns the classic 4x4 game: two starting tiles, every
// spawn is a 2, win at 2048.
func DefaultConfig() *GameConfig {
	config := &GameConfig{
		Name:           "classic",
		Description:    "Classic 4x4 board",
		GridWidth:      DefaultGridSize,
		GridHeight:     DefaultGridSize,
		StartTiles:     2,
		FourTileChance: 0,
		WinTile:        DefaultWinTile,
	}
	config.Messages.Welcome = "Join the numbers and get to the 2048 tile!"
	config.Messages.Win = "You reached 2048! Keep going for a higher score."
	config.Messages.GameOver = "Game over! No more moves available."
	config.Messages.NoChange = "Nothing moved. Try another direction."
	return config
}

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is required")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if config.GridWidth < MinGridSize || config.GridWidth > MaxGridSize {
		return fmt.Errorf("config validation: grid_width must be between %d and %d, got %d",
			MinGridSize, MaxGridSize, config.GridWidth)
	}
	if config.GridHeight < MinGridSize || config.GridHeight > MaxGridSize {
		return fmt.Errorf("config validation: grid_height must be between %d and %d, got %d",
			MinGridSize, MaxGridSize, config.GridHeight)
	}

	cells := config.GridWidth * config.GridHeight
	if config.StartTiles < MinStartTiles || config.StartTiles > cells {
		return fmt.Errorf("config validation: start_tiles must be between %d and the cell count (%d), got %d",
			MinStartTiles, cells, config.StartTiles)
	}

	if config.FourTileChance < 0 || config.FourTileChance > 1 {
		return fmt.Errorf("config validation: four_tile_chance must be in [0,1], got %v", config.FourTileChance)
	}

	if config.WinTile < 4 || !isPowerOfTwo(config.WinTile) {
		return fmt.Errorf("config validation: win_tile must be a power of two >= 4, got %d", config.WinTile)
	}

	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
