// Package highscore stores the best score achieved across games.
//
// The package provides two implementations of the engine's HighscoreStore
// interface: FileStore keeps the score in a small JSON file so it survives
// restarts, and MemoryStore keeps it in memory for tests and ephemeral
// sessions. Both are safe for concurrent use.
package highscore
