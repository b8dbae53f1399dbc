package service

import (
	"time"

	"github.com/wricardo/mcp-training/game2048/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// MoveResult contains the result of a move operation
type MoveResult struct {
	Success       bool              `json:"success"` // true when the board changed
	Direction     string            `json:"direction"`
	ScoreDelta    int               `json:"score_delta"`
	GameState     *engine.GameState `json:"game_state"`
	Message       string            `json:"message"`
	GameOver      bool              `json:"game_over"`
	WinReached    bool              `json:"win_reached"`
	PossibleMoves []string          `json:"possible_moves,omitempty"`
	Events        []GameEvent       `json:"events,omitempty"`
}

// BulkMoveResult contains the result of multiple moves
type BulkMoveResult struct {
	// Summary
	MovesExecuted  int               `json:"moves_executed"`  // moves actually applied to the board
	ChangedMoves   int               `json:"changed_moves"`   // moves that changed the board
	RequestedMoves int               `json:"requested_moves"` // the number of moves requested in this call
	Success        bool              `json:"success"`
	GameState      *engine.GameState `json:"game_state"`
	Events         []GameEvent       `json:"events"`
	StoppedReason  string            `json:"stopped_reason,omitempty"`   // human-readable reason
	StopReasonCode string            `json:"stop_reason_code,omitempty"` // machine-friendly code: game_over|invalid_direction
	StoppedOnMove  int               `json:"stopped_on_move,omitempty"`  // 1-based index of the move that caused stop
	Truncated      bool              `json:"truncated,omitempty"`
	Limit          int               `json:"limit,omitempty"`

	// Start/end snapshot
	StartScore int `json:"start_score"`
	EndScore   int `json:"end_score"`
	ScoreDelta int `json:"score_delta"`

	// Per-step compact trace (only for this call)
	Steps []StepInfo `json:"steps,omitempty"`

	// Final status aids
	GameOver      bool     `json:"game_over"`
	WinReached    bool     `json:"win_reached"`
	Message       string   `json:"message,omitempty"`
	PossibleMoves []string `json:"possible_moves,omitempty"`
	HighestTile   int      `json:"highest_tile"`
}

// StepInfo is a compact record for each executed move in the bulk call
type StepInfo struct {
	Idx         int    `json:"idx"`
	Dir         string `json:"dir"`
	Changed     bool   `json:"changed"`
	ScoreDelta  int    `json:"score_delta"`
	ScoreAfter  int    `json:"score_after"`
	HighestTile int    `json:"highest_tile"`
	GameOver    bool   `json:"game_over,omitempty"`
	Win         bool   `json:"win,omitempty"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string    `json:"type"` // "move", "no_change", "win", "game_over", "highscore", "reset"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveHistoryEntry `json:"moves"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	GridWidth   int    `json:"grid_width"`
	GridHeight  int    `json:"grid_height"`
	WinTile     int    `json:"win_tile"`
}
