package engine

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"
)

// Phase names the game lifecycle states
type Phase string

const (
	PhaseInitial  Phase = "initial"
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

// HighscoreStore is the persistence boundary for the best score. Load
// failures are recovered with a zero highscore; Save failures are reported
// and never fail a move.
type HighscoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	CurrentBoard() *GameState
	Reset() *GameState
	IsGameOver() bool
	Phase() Phase
	GetScore() int
	Highscore() int

	// Board operations
	Move(dir Direction) bool
	CanMove(dir Direction) bool
	PossibleMoves() []Direction
	PreviousBoard() (*Grid, bool)

	// Configuration
	GetConfig() *GameConfig

	// History
	GetMoveHistory() []MoveHistoryEntry
	GetLastMove() *MoveHistoryEntry
}

// GameEngine implements the Engine interface. A single mutex serializes all
// state transitions so overlapping direction inputs never interleave a
// read-modify-write on the board.
type GameEngine struct {
	config  *GameConfig
	spawner *Spawner
	scores  HighscoreStore

	mu    sync.Mutex
	state *GameState
	prev  *Grid
	phase Phase

	// cumulative history survives resets
	carryHistory []MoveHistoryEntry
	carryTotal   int
}

// NewEngine creates a new game engine with the provided configuration,
// spawner and highscore store. A nil store disables highscore persistence.
func NewEngine(config *GameConfig, spawner *Spawner, scores HighscoreStore) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	if spawner == nil {
		return nil, fmt.Errorf("spawner cannot be nil")
	}

	return &GameEngine{
		config:  config,
		spawner: spawner,
		scores:  scores,
		phase:   PhaseInitial,
	}, nil
}

// NewEngineWithDefaults creates a game engine with the default 4x4
// configuration and a time-seeded spawner.
func NewEngineWithDefaults() *GameEngine {
	config := DefaultConfig()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	e, _ := NewEngine(config, NewSpawner(rng, config.FourTileChance), nil)
	return e
}

// GetState returns the current game state, initializing the board on first
// access.
func (e *GameEngine) GetState() *GameState {
	return e.CurrentBoard()
}

// SetState sets the game state (used for persistence loading)
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	if state.Grid == nil {
		return fmt.Errorf("state grid cannot be nil")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = state
	e.prev = nil
	if state.GameOver {
		e.phase = PhaseGameOver
	} else {
		e.phase = PhasePlaying
	}
	return nil
}

// CurrentBoard returns the live board, creating and seeding it on first
// call. Subsequent calls return the same state without mutation.
func (e *GameEngine) CurrentBoard() *GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ensureBoard()
}

// ensureBoard lazily initializes the board. Callers must hold e.mu.
func (e *GameEngine) ensureBoard() *GameState {
	if e.state != nil {
		return e.state
	}

	grid := e.spawner.Seed(NewGrid(e.config.GridWidth, e.config.GridHeight), e.config.StartTiles)

	e.state = &GameState{
		Grid:         grid,
		Score:        0,
		Highscore:    e.loadHighscore(),
		Message:      e.config.Messages.Welcome,
		ConfigName:   e.config.Name,
		MoveHistory:  e.carryHistory,
		TotalMoves:   e.carryTotal,
		CurrentMoves: []MoveHistoryEntry{},
	}
	e.phase = PhasePlaying
	return e.state
}

// loadHighscore reads the persisted highscore, falling back to 0 when the
// store is absent or unreachable.
func (e *GameEngine) loadHighscore() int {
	if e.scores == nil {
		return 0
	}
	score, err := e.scores.Load()
	if err != nil {
		log.Printf("Warning: failed to load highscore, starting from 0: %v", err)
		return 0
	}
	return score
}

// Reset discards current and previous board state. Cumulative move history
// and the highscore survive; the next board access seeds a fresh grid.
func (e *GameEngine) Reset() *GameState {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != nil {
		e.carryHistory = e.state.MoveHistory
		e.carryTotal = e.state.TotalMoves
	}
	e.state = nil
	e.prev = nil
	e.phase = PhaseInitial

	return e.ensureBoard()
}

// IsGameOver returns whether the game is over
func (e *GameEngine) IsGameOver() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase == PhaseGameOver
}

// Phase returns the current lifecycle phase
func (e *GameEngine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

// GetScore returns the current score
func (e *GameEngine) GetScore() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ensureBoard().Score
}

// Highscore returns the best score seen so far
func (e *GameEngine) Highscore() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ensureBoard().Highscore
}

// Move slides the board in the given direction. It returns true when the
// board changed. A changed board snapshots the pre-move grid, spawns one new
// tile, updates score and highscore, and may end the game.
func (e *GameEngine) Move(dir Direction) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.ensureBoard()
	if e.phase == PhaseGameOver {
		st.addMoveToHistory(string(dir), 0, false)
		return false
	}

	next, delta, changed := Slide(st.Grid, dir)
	if !changed {
		// No-op move: previous board and score stay untouched.
		st.Message = e.config.Messages.NoChange
		st.addMoveToHistory(string(dir), 0, false)
		return false
	}

	e.prev = st.Grid.Clone()

	spawned, err := e.spawner.Spawn(next)
	if err == nil {
		next = spawned
	} else if !errors.Is(err, ErrNoSpaceAvailable) {
		log.Printf("Warning: tile spawn failed: %v", err)
	}

	st.Grid = next
	st.Score += delta
	st.Message = ""

	if !st.WinReached && HighestTile(next) >= e.config.WinTile {
		st.WinReached = true
		st.Message = e.config.Messages.Win
	}

	if next.IsFull() && !MovesAvailable(next) {
		st.GameOver = true
		e.phase = PhaseGameOver
		st.Message = e.config.Messages.GameOver
	}

	st.addMoveToHistory(string(dir), delta, true)
	e.updateHighscore(st)

	return true
}

// updateHighscore raises the in-memory highscore and persists it. The board
// is already updated when the store is called, so a persistence failure
// never rolls back gameplay state.
func (e *GameEngine) updateHighscore(st *GameState) {
	if st.Score <= st.Highscore {
		return
	}
	st.Highscore = st.Score
	if e.scores == nil {
		return
	}
	if err := e.scores.Save(st.Score); err != nil {
		log.Printf("Warning: failed to persist highscore %d: %v", st.Score, err)
	}
}

// CanMove checks whether sliding in the given direction would change the
// board. It commits nothing.
func (e *GameEngine) CanMove(dir Direction) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.ensureBoard()
	if e.phase == PhaseGameOver {
		return false
	}
	_, _, changed := Slide(st.Grid, dir)
	return changed
}

// PossibleMoves returns all directions that would change the board
func (e *GameEngine) PossibleMoves() []Direction {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.ensureBoard()
	if e.phase == PhaseGameOver {
		return nil
	}

	var possible []Direction
	for _, dir := range Directions() {
		if _, _, changed := Slide(st.Grid, dir); changed {
			possible = append(possible, dir)
		}
	}
	return possible
}

// PreviousBoard returns the snapshot taken before the most recent
// successful move. The second return is false when no move has succeeded
// yet; the current grid is returned in that case.
func (e *GameEngine) PreviousBoard() (*Grid, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.prev == nil {
		return e.ensureBoard().Grid.Clone(), false
	}
	return e.prev.Clone(), true
}

// GetConfig returns the current game configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// GetMoveHistory returns the complete move history
func (e *GameEngine) GetMoveHistory() []MoveHistoryEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ensureBoard().MoveHistory
}

// GetLastMove returns the last move made, or nil if no moves
func (e *GameEngine) GetLastMove() *MoveHistoryEntry {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.ensureBoard()
	if len(st.MoveHistory) == 0 {
		return nil
	}
	return &st.MoveHistory[len(st.MoveHistory)-1]
}

// BulkMove executes multiple moves in sequence, returning the changed flag
// for each. It stops early when the game ends.
func (e *GameEngine) BulkMove(dirs []Direction) []bool {
	results := make([]bool, 0, len(dirs))
	for _, dir := range dirs {
		if e.IsGameOver() {
			break
		}
		results = append(results, e.Move(dir))
	}
	return results
}

// addMoveToHistory appends an entry to both the cumulative history and the
// current segment. Callers must hold e.mu via the engine.
func (st *GameState) addMoveToHistory(action string, delta int, changed bool) {
	entry := MoveHistoryEntry{
		Action:     action,
		ScoreDelta: delta,
		Score:      st.Score,
		Timestamp:  time.Now().Unix(),
		Changed:    changed,
		MoveNumber: st.TotalMoves + 1,
	}
	st.MoveHistory = append(st.MoveHistory, entry)
	st.TotalMoves++

	st.CurrentMoves = append(st.CurrentMoves, entry)
	st.CurrentMovesCount++
}
