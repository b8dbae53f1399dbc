package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

type Tile struct {
	Value int `json:"value"`
	X     int `json:"x"`
	Y     int `json:"y"`
}

type Grid struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Cells  [][]*Tile `json:"cells"`
}

type GameState struct {
	Grid       *Grid  `json:"grid"`
	Score      int    `json:"score"`
	Highscore  int    `json:"highscore"`
	GameOver   bool   `json:"game_over"`
	WinReached bool   `json:"win_reached"`
	Message    string `json:"message"`
	ConfigName string `json:"config_name"`
}

type SessionResponse struct {
	ID         string     `json:"id"`
	ConfigName string     `json:"config_name"`
	GameState  *GameState `json:"game_state"`
}

type MoveRequest struct {
	Direction string `json:"direction,omitempty"`
	Reset     bool   `json:"reset,omitempty"`
}

type Client struct {
	baseURL   string
	sessionID string
	client    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) CreateSession(configName string) (*GameState, error) {
	var reqBody []byte
	var err error

	if configName != "" {
		reqBody, err = json.Marshal(map[string]string{"config_id": configName})
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
	}

	resp, err := c.client.Post(c.baseURL+"/api/sessions", "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create session failed: %s - %s", resp.Status, string(body))
	}

	var session SessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("parse session response: %w", err)
	}

	c.sessionID = session.ID
	return session.GameState, nil
}

func (c *Client) GetState() (*GameState, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/state", c.baseURL, c.sessionID)
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("get state: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get state failed: %s", resp.Status)
	}

	var state GameState
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return nil, fmt.Errorf("parse state: %w", err)
	}

	return &state, nil
}

type MoveResponse struct {
	Success   bool       `json:"success"`
	GameState *GameState `json:"game_state"`
	Message   string     `json:"message"`
}

func (c *Client) Move(direction string) (*GameState, bool, error) {
	body, err := json.Marshal(MoveRequest{Direction: direction})
	if err != nil {
		return nil, false, fmt.Errorf("marshal move: %w", err)
	}

	url := fmt.Sprintf("%s/api/sessions/%s/move", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, false, fmt.Errorf("execute move: %w", err)
	}
	defer resp.Body.Close()

	var moveResp MoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&moveResp); err != nil {
		return nil, false, fmt.Errorf("parse move response: %w", err)
	}

	// success=false just means the board did not change. That is a normal
	// outcome for a blocked direction, not an error.
	return moveResp.GameState, moveResp.Success, nil
}

type ResetResponse struct {
	Message string     `json:"message"`
	State   *GameState `json:"state"`
}

func (c *Client) Reset() (*GameState, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/reset", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}
	defer resp.Body.Close()

	var resetResp ResetResponse
	if err := json.NewDecoder(resp.Body).Decode(&resetResp); err != nil {
		return nil, fmt.Errorf("parse reset response: %w", err)
	}

	return resetResp.State, nil
}

func highestTile(state *GameState) int {
	highest := 0
	if state == nil || state.Grid == nil {
		return highest
	}
	for _, row := range state.Grid.Cells {
		for _, tile := range row {
			if tile != nil && tile.Value > highest {
				highest = tile.Value
			}
		}
	}
	return highest
}

func main() {
	serverURL := flag.String("url", "http://localhost:8080", "Game server URL")
	configName := flag.String("config", "", "Game configuration name (classic, big, speedrun)")
	continueSession := flag.String("continue", "", "Resume playing an existing session by ID")
	maxMoves := flag.Int("max-moves", 5000, "Maximum moves per attempt")
	maxAttempts := flag.Int("max-attempts", 100, "Maximum attempts before giving up")
	verbose := flag.Bool("v", false, "Verbose output")
	delayMs := flag.Int("delay", 0, "Delay between moves in milliseconds (0 = no delay)")
	flag.Parse()

	log.Printf("Connecting to game server at %s", *serverURL)
	client := NewClient(*serverURL)

	var state *GameState
	var err error

	// Check for saved session ID
	sessionFile := ".session"
	savedSessionID := ""

	if *continueSession != "" {
		// Use explicitly provided session
		savedSessionID = *continueSession
	} else {
		// Try to load saved session
		if data, err := os.ReadFile(sessionFile); err == nil {
			savedSessionID = string(bytes.TrimSpace(data))
		}
	}

	if savedSessionID != "" {
		// Resume existing session
		client.sessionID = savedSessionID
		log.Printf("🔄 Resuming session: %s", client.sessionID)
		state, err = client.GetState()
		if err != nil {
			log.Printf("⚠️  Failed to resume session (may be expired): %v", err)
			log.Printf("Creating new session...")
			savedSessionID = "" // Force create new
		} else {
			log.Printf("Session resumed - Grid: %dx%d, Score: %d, Highscore: %d",
				state.Grid.Width, state.Grid.Height, state.Score, state.Highscore)
		}
	}

	if savedSessionID == "" {
		// Create new session
		state, err = client.CreateSession(*configName)
		if err != nil {
			log.Fatalf("Failed to create session: %v", err)
		}
		log.Printf("✨ Session created: %s", client.sessionID)
		log.Printf("Grid size: %dx%d, Highscore: %d",
			state.Grid.Width, state.Grid.Height, state.Highscore)

		// Save session ID for next run
		if err := os.WriteFile(sessionFile, []byte(client.sessionID), 0644); err != nil {
			log.Printf("Warning: Failed to save session ID: %v", err)
		}
	}

	// RESET the game state at the beginning of each run
	log.Printf("🔄 Resetting game state...")
	state, err = client.Reset()
	if err != nil {
		log.Fatalf("Failed to reset game: %v", err)
	}
	log.Printf("Game reset - Grid: %dx%d, Score: %d",
		state.Grid.Width, state.Grid.Height, state.Score)

	// Initialize corner strategy
	strategy := NewCornerStrategy(state)

	// Keep trying until the win tile is reached or max attempts
	attemptNum := 0
	for attemptNum < *maxAttempts {
		attemptNum++

		// Reset the game for this attempt
		if attemptNum > 1 {
			state, err = client.Reset()
			if err != nil {
				log.Printf("Failed to reset: %v", err)
				break
			}
		}

		// Reset strategy for new attempt
		strategy.Reset()

		log.Printf("\n=== 🎮 Attempt %d/%d ===", attemptNum, *maxAttempts)

		moveCount := 0
		for !state.WinReached && !state.GameOver && moveCount < *maxMoves {
			if *verbose && moveCount%100 == 0 && moveCount > 0 {
				log.Printf("Moves: %d, Score: %d, Highest tile: %d",
					moveCount, state.Score, highestTile(state))
			}

			// Get next move from strategy
			direction := strategy.NextMove(state)
			if direction == "" {
				log.Printf("⚠️  No valid moves available")
				break
			}

			// Execute single move
			newState, changed, err := client.Move(direction)
			if err != nil {
				if *verbose {
					log.Printf("Move failed: %v", err)
				}
				if newState != nil {
					state = newState
				}
				continue
			}

			state = newState
			moveCount++

			if !changed {
				strategy.RecordBlocked(direction)
			}

			// Add delay if specified
			if *delayMs > 0 {
				time.Sleep(time.Duration(*delayMs) * time.Millisecond)
			}
		}

		log.Printf("Attempt %d: Moves=%d, Score=%d, Highest tile=%d",
			attemptNum, moveCount, state.Score, highestTile(state))

		// Check if we won
		if state.WinReached {
			log.Printf("\n🎉 WIN TILE REACHED! Score %d in attempt %d with %d moves!",
				state.Score, attemptNum, moveCount)
			log.Printf("Session: %s", client.sessionID)
			os.Exit(0)
		}
	}

	// Failed to win after all attempts
	log.Printf("\n❌ Failed to reach the win tile after %d attempts", attemptNum)
	log.Printf("Session: %s", client.sessionID)
	os.Exit(1)
}
