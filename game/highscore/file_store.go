package highscore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// persistedHighscore is the JSON structure written to disk.
type persistedHighscore struct {
	Highscore int `json:"highscore"`
}

// FileStore implements engine.HighscoreStore using file system storage.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-based highscore store. The parent directory
// is created if it does not exist.
func NewFileStore(path string) (*FileStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create highscore directory: %w", err)
	}

	return &FileStore{path: path}, nil
}

// Load reads the persisted highscore. A missing file is not an error and
// yields zero.
func (fs *FileStore) Load() (int, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	jsonData, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read highscore file: %w", err)
	}

	var data persistedHighscore
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return 0, fmt.Errorf("failed to unmarshal highscore data: %w", err)
	}
	if data.Highscore < 0 {
		return 0, fmt.Errorf("invalid persisted highscore %d", data.Highscore)
	}

	return data.Highscore, nil
}

// Save writes the highscore to disk, replacing any previous value.
func (fs *FileStore) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("highscore cannot be negative, got %d", score)
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	jsonData, err := json.MarshalIndent(persistedHighscore{Highscore: score}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal highscore data: %w", err)
	}

	// Write to a temp file first so a crash mid-write never truncates the
	// previous score.
	tmpPath := fs.path + ".tmp"
	if err := os.WriteFile(tmpPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write highscore file: %w", err)
	}
	if err := os.Rename(tmpPath, fs.path); err != nil {
		return fmt.Errorf("failed to replace highscore file: %w", err)
	}

	return nil
}
