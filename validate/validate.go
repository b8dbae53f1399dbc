// Command validate provides a small CLI that validates game configuration JSON
// files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Grid dimensions within supported bounds
//   - Start tile count fits on the board
//   - Four-tile spawn chance within [0, 1]
//   - Win tile is a power of two of at least 8
//   - Required message keys
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Grid dimension bounds mirror what the engine accepts.
const (
	minGridDimension = 2
	maxGridDimension = 16
)

// Config mirrors the JSON schema for a game configuration.
type Config struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	GridWidth      int               `json:"grid_width"`
	GridHeight     int               `json:"grid_height"`
	StartTiles     int               `json:"start_tiles"`
	FourTileChance float64           `json:"four_tile_chance"`
	WinTile        int               `json:"win_tile"`
	Messages       map[string]string `json:"messages"`
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single configuration JSON file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	// Validate identity fields
	if config.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: name")
	}
	if config.Description == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: description")
	}

	// Validate grid dimensions
	if config.GridWidth < minGridDimension || config.GridWidth > maxGridDimension {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("grid_width must be between %d and %d, got %d",
			minGridDimension, maxGridDimension, config.GridWidth))
	}
	if config.GridHeight < minGridDimension || config.GridHeight > maxGridDimension {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("grid_height must be between %d and %d, got %d",
			minGridDimension, maxGridDimension, config.GridHeight))
	}

	// Validate start tiles
	cells := config.GridWidth * config.GridHeight
	if config.StartTiles < 1 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("start_tiles must be positive, got %d", config.StartTiles))
	} else if cells > 0 && config.StartTiles > cells {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("start_tiles (%d) cannot exceed board capacity (%d)",
			config.StartTiles, cells))
	}

	// Validate four-tile chance
	if config.FourTileChance < 0 || config.FourTileChance > 1 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("four_tile_chance must be within [0, 1], got %g", config.FourTileChance))
	}

	// Validate win tile
	if !isPowerOfTwo(config.WinTile) || config.WinTile < 8 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("win_tile must be a power of two of at least 8, got %d", config.WinTile))
	}

	// Validate messages
	requiredMessages := []string{
		"welcome",
		"win",
		"game_over",
		"no_change",
	}
	for _, msg := range requiredMessages {
		if _, exists := config.Messages[msg]; !exists {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Missing required message: %s", msg))
		}
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Grid: %dx%d", config.GridWidth, config.GridHeight))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Start tiles: %d", config.StartTiles))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Four-tile chance: %g", config.FourTileChance))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Win tile: %d", config.WinTile))
	}

	return result
}

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
