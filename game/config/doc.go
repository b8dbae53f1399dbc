// Package config provides configuration management for the 2048 game server.
//
// The config package handles:
//   - Loading game configurations from JSON files
//   - Configuration validation and verification
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Game configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - Board dimensions (grid_width, grid_height)
//   - Number of starting tiles and the chance of spawning a 4
//   - The tile value that counts as a win
//   - Game messages for various events
//
// Available Configurations:
//
// The package ships with several board variants:
//   - classic: the standard 4x4 board playing to 2048
//   - big: a roomier 6x6 board for longer games
//   - speedrun: a 4x4 board playing to 256 with more 4-spawns
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	gameConfig, err := manager.LoadConfig("big")
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// Validation:
//
// All configurations are validated for:
//   - Board dimensions within supported bounds
//   - Starting tile count that fits on the board
//   - A four-tile chance between 0 and 1
//   - A win tile that is a power of two
package config
