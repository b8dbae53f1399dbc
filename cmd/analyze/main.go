// Command analyze prints quick, human-readable heuristics about game
// configuration files in the project's configs directory. It summarizes grid
// dimensions, spawn settings, and highlights win tiles that cannot be built
// on the configured board.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AnalysisConfig is a light struct for reading config files used by analysis.
type AnalysisConfig struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	GridWidth      int               `json:"grid_width"`
	GridHeight     int               `json:"grid_height"`
	StartTiles     int               `json:"start_tiles"`
	FourTileChance float64           `json:"four_tile_chance"`
	WinTile        int               `json:"win_tile"`
	Messages       map[string]string `json:"messages"`
}

func main() {
	configs := []string{
		"big.json",
		"classic.json",
		"speedrun.json",
	}

	for _, configFile := range configs {
		fmt.Printf("\n=== Analyzing %s ===\n", configFile)
		analyzeConfig(filepath.Join("configs", configFile))
	}
}

func analyzeConfig(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var config AnalysisConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	cells := config.GridWidth * config.GridHeight

	fmt.Printf("Name: %s\n", config.Name)
	fmt.Printf("Grid: %d x %d (%d cells)\n", config.GridWidth, config.GridHeight, cells)
	fmt.Printf("Start Tiles: %d\n", config.StartTiles)
	fmt.Printf("Four-Tile Chance: %g\n", config.FourTileChance)
	fmt.Printf("Win Tile: %d\n", config.WinTile)

	// Expected value of a single spawn, useful for eyeballing score pacing.
	expectedSpawn := 2*(1-config.FourTileChance) + 4*config.FourTileChance
	fmt.Printf("Expected Spawn Value: %.2f\n", expectedSpawn)

	// Building tile 2^k requires 2^(k-1) tiles of value 2 worth of material on
	// the board at once, so an n-cell board caps out at 2^n when only 2s spawn
	// and 2^(n+1) when 4s can spawn.
	maxExponent := cells
	if config.FourTileChance > 0 {
		maxExponent = cells + 1
	}

	winExponent := tileExponent(config.WinTile)
	if winExponent < 0 {
		fmt.Printf("⚠️  WARNING: win_tile %d is not a power of two!\n", config.WinTile)
		return
	}

	if winExponent > maxExponent {
		fmt.Printf("⚠️  WARNING: win_tile %d can never be built on this board!\n", config.WinTile)
		fmt.Printf("   A %d-cell board tops out at 2^%d, but the win tile is 2^%d\n",
			cells, maxExponent, winExponent)
	} else {
		fmt.Printf("✅ Win tile is buildable (2^%d of a 2^%d ceiling)\n", winExponent, maxExponent)
		// Minimum merges assuming every spawn is a 2.
		fmt.Printf("   Minimum merges from 2s: %d\n", (1<<uint(winExponent))/2-1)
	}

	if config.StartTiles > cells {
		fmt.Printf("⚠️  WARNING: %d start tiles cannot fit on %d cells!\n", config.StartTiles, cells)
	}
}

// tileExponent returns k such that n == 2^k, or -1 when n is not a positive
// power of two.
func tileExponent(n int) int {
	if n <= 0 || n&(n-1) != 0 {
		return -1
	}
	k := 0
	for n > 1 {
		n >>= 1
		k++
	}
	return k
}
