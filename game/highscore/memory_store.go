package highscore

import "sync"

// MemoryStore implements engine.HighscoreStore with an in-memory value.
// Useful for tests and sessions that do not need persistence.
type MemoryStore struct {
	mu    sync.Mutex
	score int
}

// NewMemoryStore creates an in-memory highscore store starting at zero.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the currently held score.
func (ms *MemoryStore) Load() (int, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.score, nil
}

// Save replaces the held score.
func (ms *MemoryStore) Save(score int) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.score = score
	return nil
}
