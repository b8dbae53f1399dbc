package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/wricardo/mcp-training/game2048/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	// Fallback: return as-is or "default"
	if configName == "" {
		return "default"
	}
	return configName
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Load configuration
	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			// Provide helpful error message with available options
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	// Determine the config identifier to return - prefer the input configName if provided,
	// otherwise look up the config_id by display name
	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID, // Return the config_id, not the display name
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     s.getConfigID(session.Config.Name), // Return config_id consistently
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
	}, nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Config.Name), // Return config_id consistently
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			GameState:      sess.Engine.GetState(),
			GameConfig:     sess.Config,
		})
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Move executes a single move for a session
func (s *gameServiceImpl) Move(ctx context.Context, sessionID, direction string, reset bool) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Get session
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	// Update last accessed time
	s.sessions.UpdateLastAccessed(sessionID)

	dir, err := engine.ParseDirection(direction)
	if err != nil {
		return nil, err
	}

	// Collect events
	events := []GameEvent{}

	// Handle reset if requested
	if reset {
		sess.Engine.Reset()
		events = append(events, GameEvent{
			Type:      "reset",
			Message:   "Game reset to initial state",
			Timestamp: time.Now(),
		})
	}

	// Execute move
	prevState := sess.Engine.GetState()
	prevScore := prevState.Score
	prevWin := prevState.WinReached
	prevHighscore := prevState.Highscore
	changed := sess.Engine.Move(dir)
	state := sess.Engine.GetState()

	// Build result
	result := &MoveResult{
		Success:       changed,
		Direction:     string(dir),
		ScoreDelta:    state.Score - prevScore,
		GameState:     state,
		Message:       state.Message,
		GameOver:      state.GameOver,
		WinReached:    state.WinReached,
		PossibleMoves: directionsToStrings(sess.Engine.PossibleMoves()),
		Events:        events,
	}

	moveEvents := s.extractMoveEvents(sess, dir, changed, prevWin, prevHighscore)
	result.Events = append(result.Events, moveEvents...)

	// Auto-save session after move
	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after move: %v\n", sessionID, err)
	}

	return result, nil
}

// BulkMove executes multiple moves in sequence
func (s *gameServiceImpl) BulkMove(ctx context.Context, sessionID string, moves []string, reset bool) (*BulkMoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	// Update last accessed
	s.sessions.UpdateLastAccessed(sessionID)

	// Initialize result and capture start snapshot
	state := sess.Engine.GetState()
	startScore := state.Score
	startWin := state.WinReached
	startHighscore := state.Highscore
	_ = startHighscore

	result := &BulkMoveResult{
		RequestedMoves: len(moves),
		Events:         make([]GameEvent, 0),
		Success:        true,
		StartScore:     startScore,
		GameOver:       state.GameOver,
		Message:        state.Message,
	}

	// Handle reset
	if reset {
		sess.Engine.Reset()
		result.Events = append(result.Events, GameEvent{
			Type:      "reset",
			Message:   "Game reset to initial state",
			Timestamp: time.Now(),
		})
		startScore = 0
		result.StartScore = 0
	}

	// Limit moves to prevent abuse
	if len(moves) > engine.MaxBulkMoves {
		result.Truncated = true
		result.Limit = engine.MaxBulkMoves
		moves = moves[:engine.MaxBulkMoves]
	}

	// Execute moves
	for i, move := range moves {
		if sess.Engine.IsGameOver() {
			result.StoppedReason = "game over, remaining moves skipped"
			result.StopReasonCode = "game_over"
			result.StoppedOnMove = i + 1
			break
		}

		dir, err := engine.ParseDirection(move)
		if err != nil {
			result.Success = false
			result.StoppedReason = fmt.Sprintf("move %d invalid: %s", i+1, move)
			result.StopReasonCode = "invalid_direction"
			result.StoppedOnMove = i + 1
			break
		}

		prevScore := sess.Engine.GetScore()
		prevState := sess.Engine.GetState()
		prevWin := prevState.WinReached
		prevHighscore := prevState.Highscore
		changed := sess.Engine.Move(dir)
		currState := sess.Engine.GetState()

		result.MovesExecuted++
		if changed {
			result.ChangedMoves++
		}

		// Collect events for this move
		events := s.extractMoveEvents(sess, dir, changed, prevWin, prevHighscore)
		result.Events = append(result.Events, events...)

		// Build step info for this executed move
		result.Steps = append(result.Steps, StepInfo{
			Idx:         i + 1,
			Dir:         string(dir),
			Changed:     changed,
			ScoreDelta:  currState.Score - prevScore,
			ScoreAfter:  currState.Score,
			HighestTile: engine.HighestTile(currState.Grid),
			GameOver:    currState.GameOver,
			Win:         currState.WinReached && !prevWin,
		})
	}

	result.GameState = sess.Engine.GetState()

	// Finalize snapshots
	endState := result.GameState
	result.EndScore = endState.Score
	result.ScoreDelta = endState.Score - startScore
	result.GameOver = endState.GameOver
	result.WinReached = endState.WinReached || (startWin && !reset)
	result.Message = endState.Message
	result.HighestTile = engine.HighestTile(endState.Grid)
	result.PossibleMoves = directionsToStrings(sess.Engine.PossibleMoves())

	// If we ended due to game over without explicit stop reason code
	if result.GameOver && result.StopReasonCode == "" {
		result.StopReasonCode = "game_over"
	}

	// Auto-save session after bulk moves
	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after bulk moves: %v\n", sessionID, err)
	}

	return result, nil
}

// Reset resets a game session to initial state
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	state := sess.Engine.Reset()

	// Auto-save session after reset
	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after reset: %v\n", sessionID, err)
	}

	return state, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.GetState(), nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Engine.GetMoveHistory()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	// Calculate pagination
	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	// Get the slice of moves
	var moves []engine.MoveHistoryEntry
	if opts.Order == "desc" {
		// Reverse order (most recent first)
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			moves = append(moves, history[i])
		}
	} else {
		// Normal chronological order
		if start < total {
			moves = history[start:end]
		}
	}

	// Ensure moves is not nil
	if moves == nil {
		moves = []engine.MoveHistoryEntry{}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// GetHighscore returns the best score for a session
func (s *gameServiceImpl) GetHighscore(ctx context.Context, sessionID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return 0, fmt.Errorf("session not found: %w", err)
	}

	return sess.Engine.Highscore(), nil
}

// ListConfigs returns available game configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific game configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a game configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// extractMoveEvents generates events from a move
func (s *gameServiceImpl) extractMoveEvents(sess *Session, dir engine.Direction, changed, prevWin bool, prevHighscore int) []GameEvent {
	events := []GameEvent{}
	state := sess.Engine.GetState()

	if !changed {
		events = append(events, GameEvent{
			Type:      "no_change",
			Message:   fmt.Sprintf("Move %s did not change the board", dir),
			Timestamp: time.Now(),
		})
		return events
	}

	events = append(events, GameEvent{
		Type:      "move",
		Message:   fmt.Sprintf("Moved %s, score %d", dir, state.Score),
		Timestamp: time.Now(),
	})

	if state.Highscore > prevHighscore {
		events = append(events, GameEvent{
			Type:      "highscore",
			Message:   fmt.Sprintf("New highscore: %d", state.Highscore),
			Timestamp: time.Now(),
		})
	}

	if state.WinReached && !prevWin {
		events = append(events, GameEvent{
			Type:      "win",
			Message:   fmt.Sprintf("Reached the %d tile!", sess.Config.WinTile),
			Timestamp: time.Now(),
		})
	}

	if state.GameOver {
		events = append(events, GameEvent{
			Type:      "game_over",
			Message:   state.Message,
			Timestamp: time.Now(),
		})
	}

	return events
}

func directionsToStrings(dirs []engine.Direction) []string {
	if len(dirs) == 0 {
		return nil
	}
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, string(d))
	}
	return out
}
