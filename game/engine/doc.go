// Package engine provides the core game logic for the 2048 Game Server.
//
// The engine package implements the game mechanics including:
//   - Grid and tile data model with bounds-checked access
//   - Pure slide/merge transform for the four directions
//   - Random tile spawning with an injected randomness source
//   - Game lifecycle tracking and game-over detection
//   - Highscore updates through a pluggable store
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. GameState represents the current game state,
// while GameConfig defines the game rules loaded from JSON files.
//
// Usage:
//
//	gameEngine := engine.NewEngineWithDefaults()
//
//	// Slide the board
//	changed := gameEngine.Move(engine.Left)
//	state := gameEngine.GetState()
//
// Game Rules:
//
// A move slides every tile as far as it goes in the chosen direction. Two
// tiles of equal value that collide merge into one tile of double the value,
// and the merged value is added to the score. A tile merges at most once per
// move. Every move that changes the board spawns one new tile on a random
// empty cell. The game is over when the board is full and no direction
// would change it.
package engine
