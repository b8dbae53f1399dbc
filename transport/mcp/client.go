package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/mcp-training/game2048/game/engine"
	"github.com/wricardo/mcp-training/game2048/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"2048 Game",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`2048 Game - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Slide tiles up, down, left or right. Equal tiles merge into their sum
and each merge adds to your score. Reach the win tile (2048 by default)
to win; the game ends when the board is full and no move changes it.

AVAILABLE TOOLS:
- game_state: Get current game state
- move: Single move (up/down/left/right) - requires intent explanation
- bulk_move: Multiple moves at once - requires intent explanation
- reset_game: Reset to a fresh board
- move_history: View past moves
- highscore: Get the persisted best score
- create_session: Create new game session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available configurations
- game_instructions: Get comprehensive game instructions and rules

NOTE: The 'intent' parameter on move/bulk_move tools serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the config to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Slide the board in a direction",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"up", "down", "left", "right"},
					"description": "Direction to slide",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this move (serves as a rubber duck to help explain your reasoning)",
				},
				"reset": map[string]interface{}{
					"type":        "boolean",
					"description": "Reset before moving",
				},
			},
			Required: []string{"session_id", "direction"},
		},
	}, c.handleMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "bulk_move",
		Description: "Execute multiple moves in sequence",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"moves": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
						"enum": []string{"up", "down", "left", "right"},
					},
					"description": "Array of moves",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this sequence of moves (serves as a rubber duck to help explain your reasoning)",
				},
				"reset": map[string]interface{}{
					"type":        "boolean",
					"description": "Reset before moving",
				},
			},
			Required: []string{"session_id", "moves"},
		},
	}, c.handleBulkMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the game to a fresh board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get move history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMoveHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "highscore",
		Description: "Get the persisted highscore for a session's board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleHighscore)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available game configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configName, _ := args["config_name"].(string)

	body := map[string]string{}
	if configName != "" {
		body["config_name"] = configName
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n", session.ID, session.ConfigName)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Config: %s, Created: %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	direction, _ := args["direction"].(string)
	intent, _ := args["intent"].(string)
	reset, _ := args["reset"].(bool)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"direction": direction,
		"reset":     reset,
	}

	var result service.MoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/move", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatMoveResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleBulkMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	movesRaw, _ := args["moves"].([]interface{})
	intent, _ := args["intent"].(string)
	reset, _ := args["reset"].(bool)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	// Convert moves to string array
	moves := make([]string, 0, len(movesRaw))
	for _, m := range movesRaw {
		if move, ok := m.(string); ok {
			moves = append(moves, move)
		}
	}

	body := map[string]interface{}{
		"moves": moves,
		"reset": reset,
	}

	var result service.BulkMoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/bulk-move", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatBulkMoveResult(sessionID, &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Also fetch current segment from live state
	var session service.SessionInfo
	if err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session); err != nil {
		// If fetching session fails, still return the history
		result := formatHistory(&history)
		return mcp.NewToolResultText(result), nil
	}

	result := formatHistory(&history)
	result += "\n" + formatCurrentSegment(session.GameState)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleHighscore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		SessionID string `json:"session_id"`
		Highscore int    `json:"highscore"`
	}

	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/highscore", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Highscore: %d\n", response.Highscore)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s\n  %s\n  Grid: %dx%d, Win tile: %d\n\n",
			config.Name, config.Description, config.GridWidth, config.GridHeight, config.WinTile)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🎮 2048 - Complete Instructions

GAME OBJECTIVE:
Combine equal tiles by sliding the whole board in one of four directions.
Build up to the win tile (2048 in the classic config) before the board
fills and no move changes it.

GAME MECHANICS:
• Sliding: Every tile moves as far as it can toward the chosen edge
• Merging: Two equal tiles that collide merge into one tile of their sum
• Merge once: A tile created by a merge never merges again in the same move
• Scoring: Each merge adds the value of the new tile to your score
• Spawning: After every move that changes the board, a new tile appears
  in a random empty cell (2 by default, 4 with configured probability)
• No-change moves: A slide that would not move or merge anything is
  rejected; it does not spawn a tile and does not count as a move
• Win: Reaching the win tile sets the win flag, but you may keep playing
• Game over: The board is full and no direction would change it

BOARD DISPLAY:
The board renders as a grid of numbers, "." for empty cells:

     2    .    .    4
     .    .    .    .
     .   16    8    .
     .    .    2    .

STRATEGY TIPS FOR AI AGENTS:

🎯 CORNER STRATEGY (most reliable):
- Pick one corner and keep your largest tile there
- Prefer two directions that push toward that corner
- Use the third direction only when the preferred two change nothing
- Avoid the fourth direction; it dislodges the big tile

🧱 ROW BUILDING:
- Fill the edge row next to your corner with descending values
- Merge chains cascade: 2+2 feeds 4+4 feeds 8+8
- A locked edge row acts as a wall for the rest of the board

⚠️ COMMON PITFALLS:
- ❌ Alternating all four directions randomly scatters large tiles
- ❌ Moving away from your corner when other moves were available
- ❌ Ignoring the no-change response and repeating the same move
- ❌ Letting small tiles get trapped between large ones

🎮 API USAGE BEST PRACTICES:
- Use bulk_move for efficiency rather than individual moves
- Check possible_moves in responses before choosing a direction
- Monitor the score delta per move to confirm merges happened
- Reset parameter available for fresh starts

MOVEMENT COMMANDS:
- up, down, left, right - Slide the whole board in that direction
- Bulk moves - Execute multiple moves in sequence for efficiency

HIGHSCORE:
- The best score ever reached is persisted across sessions and resets
- A new game starts at score 0 but keeps showing the highscore

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has unique 4-character ID
- Sessions maintain independent state and configuration
- Use session-specific tools for multi-game management

CONFIGURATION OPTIONS:
- classic: 4x4 grid, win at 2048
- big: 6x6 grid, win at 4096
- speedrun: 4x4 grid with more 4-spawns, win at 256

Good luck reaching 2048! 🔢`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	// Header (include cumulative total moves)
	result.WriteString(fmt.Sprintf("Score: %d | Highscore: %d | Moves: %d\n\n",
		state.Score, state.Highscore, state.TotalMoves))

	result.WriteString(formatBoard(state.Grid))

	// Status
	if state.GameOver {
		result.WriteString("\n💀 GAME OVER")
	} else if state.WinReached {
		result.WriteString("\n🎉 WIN TILE REACHED!")
	}

	if state.Message != "" {
		result.WriteString(fmt.Sprintf("\nMessage: %s", state.Message))
	}

	return result.String()
}

// formatBoard renders the grid as right-aligned numbers, "." for empty cells
func formatBoard(grid *engine.Grid) string {
	if grid == nil {
		return "(no board)\n"
	}

	// Column width follows the widest tile value
	width := 1
	grid.ForEach(func(x, y int, t *engine.Tile) {
		if t != nil {
			if w := len(fmt.Sprintf("%d", t.Value)); w > width {
				width = w
			}
		}
	})

	var b strings.Builder
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if x > 0 {
				b.WriteString(" ")
			}
			tile, _ := grid.Get(x, y)
			if tile == nil {
				b.WriteString(fmt.Sprintf("%*s", width, "."))
			} else {
				b.WriteString(fmt.Sprintf("%*d", width, tile.Value))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatMoveResult(result *service.MoveResult) string {
	response := ""
	if result.Success {
		response = fmt.Sprintf("✓ Moved %s (+%d points)\n", result.Direction, result.ScoreDelta)
	} else {
		response = fmt.Sprintf("✗ Move %s changed nothing\n", result.Direction)
	}

	if len(result.Events) > 0 {
		response += "Events:\n"
		for _, event := range result.Events {
			response += fmt.Sprintf("- %s: %s\n", event.Type, event.Message)
		}
	}

	if len(result.PossibleMoves) > 0 {
		response += "Possible moves: " + strings.Join(result.PossibleMoves, ",") + "\n"
	}

	response += "\n" + formatGameState(result.GameState)
	return response
}

func formatBulkMoveResult(sessionID string, result *service.BulkMoveResult) string {
	var b strings.Builder

	// Session header
	configName := ""
	gridW, gridH := 0, 0
	if result.GameState != nil {
		configName = result.GameState.ConfigName
		if result.GameState.Grid != nil {
			gridW = result.GameState.Grid.Width
			gridH = result.GameState.Grid.Height
		}
	}
	b.WriteString(fmt.Sprintf("Session: %s • Config: %s • Grid: %dx%d\n",
		sessionID, configName, gridW, gridH))

	// Bulk summary
	b.WriteString(fmt.Sprintf("Executed %d/%d moves (%d changed the board, score %d → %d)\n",
		result.MovesExecuted, result.RequestedMoves, result.ChangedMoves,
		result.StartScore, result.EndScore))
	if result.Truncated {
		b.WriteString(fmt.Sprintf("Truncated to the first %d moves\n", result.Limit))
	}
	if result.StoppedReason != "" {
		b.WriteString(fmt.Sprintf("Stopped: %s\n", result.StoppedReason))
	}

	// Events (keep as-is, concise)
	if len(result.Events) > 0 {
		b.WriteString("\nEvents:\n")
		for _, event := range result.Events {
			b.WriteString(fmt.Sprintf("- %s: %s\n", event.Type, event.Message))
		}
	}

	// Per-move steps for this call
	if len(result.Steps) > 0 {
		b.WriteString("\nSteps (this call):\n")
		for _, s := range result.Steps {
			b.WriteString(formatStepLine(s))
		}
	}

	// Possible moves from final state
	if len(result.PossibleMoves) > 0 {
		b.WriteString("\nPossible moves: ")
		b.WriteString(strings.Join(result.PossibleMoves, ","))
		b.WriteString("\n")
	}

	// Full state at the end (kept for compatibility)
	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

// formatStepLine renders a single compact step line
func formatStepLine(s service.StepInfo) string {
	status := "✗"
	if s.Changed {
		status = "✓"
	}
	line := fmt.Sprintf("%d. %s +%d score=%d best_tile=%d %s",
		s.Idx, s.Dir, s.ScoreDelta, s.ScoreAfter, s.HighestTile, status)
	if s.Win {
		line += " WIN"
	}
	if s.GameOver {
		line += " GAME OVER"
	}
	return line + "\n"
}

func formatHistory(history *service.HistoryResponse) string {
	result := fmt.Sprintf("Move History (Page %d/%d) — Total (cumulative): %d\n\n",
		history.Page, history.TotalPages, history.TotalMoves)

	for i, move := range history.Moves {
		num := (history.Page-1)*history.PageSize + i + 1
		status := "✓"
		if !move.Changed {
			status = "✗"
		}
		result += fmt.Sprintf("%d. %s %s [+%d, Score: %d]\n",
			num, move.Action, status, move.ScoreDelta, move.Score)
	}

	return result
}

func formatCurrentSegment(state *engine.GameState) string {
	if state == nil {
		return "Current Segment: unavailable"
	}
	moves := state.CurrentMoves
	total := state.CurrentMovesCount
	header := fmt.Sprintf("Current Move Segment — Moves: %d\n\n", total)
	if len(moves) == 0 {
		return header + "(no moves in current segment)"
	}
	var b strings.Builder
	b.WriteString(header)
	for i, move := range moves {
		status := "✓"
		if !move.Changed {
			status = "✗"
		}
		// i is zero-based within the segment
		b.WriteString(fmt.Sprintf("%d. %s %s [+%d, Score: %d]\n", i+1, move.Action, status, move.ScoreDelta, move.Score))
	}
	return b.String()
}
