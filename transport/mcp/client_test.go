package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/wricardo/mcp-training/game2048/game/engine"
	"github.com/wricardo/mcp-training/game2048/game/service"
)

// boardFromValues builds a grid from row-major values; 0 means empty.
func boardFromValues(rows [][]int) *engine.Grid {
	g := engine.NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, v := range row {
			if v != 0 {
				g.Set(x, y, &engine.Tile{Value: v, X: x, Y: y})
			}
		}
	}
	return g
}

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_Run(t *testing.T) {
	// Create a mock server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Mock response for API calls
		resp := map[string]interface{}{
			"id":        "test-session",
			"score":     0,
			"game_over": false,
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if client == nil {
		t.Fatal("Failed to create client")
	}

	// Test that Run doesn't panic (we can't easily test the actual MCP behavior without complex setup)
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Run() panicked: %v", r)
		}
	}()

	// We can't test Run() fully as it blocks, but we can test that the MCP server is properly initialized
	if client.mcpServer == nil {
		t.Error("MCP server should be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	// Create a test server that returns a known response
	expectedResponse := map[string]interface{}{
		"id":        "test-session",
		"score":     5,
		"game_over": false,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expectedResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var response map[string]interface{}
	err := client.apiCall("GET", "/api", nil, &response)
	if err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	// Check that we got the expected response
	if response["id"] != expectedResponse["id"] {
		t.Errorf("Expected id %v, got %v", expectedResponse["id"], response["id"])
	}
}

func TestClient_apiCall_Error(t *testing.T) {
	client := NewClient("http://invalid-url-that-does-not-exist:9999")

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for invalid URL")
	}
}

func TestClient_apiCall_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for HTTP 500 response")
	}

	if !strings.Contains(err.Error(), "API error") {
		t.Errorf("Expected 'API error' in error message, got: %v", err)
	}
}

func TestClient_createSession(t *testing.T) {
	// Mock server that responds to session creation
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions" {
			t.Errorf("Expected POST /api/sessions, got %s %s", r.Method, r.URL.Path)
		}

		resp := service.SessionInfo{
			ID:         "test-session-123",
			ConfigName: "classic",
			GameState: &engine.GameState{
				Score: 0,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	// Test create session without config
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "create_session",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleCreateSession(ctx, request)
	if err != nil {
		t.Fatalf("createSession failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	// Check that the result contains the session ID
	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	if !strings.Contains(resultStr.Text, "test-session-123") {
		t.Errorf("Expected session ID in result, got: %s", resultStr.Text)
	}
}

func TestFormatGameState(t *testing.T) {
	gameState := &engine.GameState{
		Grid: boardFromValues([][]int{
			{2, 0, 0, 4},
			{0, 0, 0, 0},
			{0, 16, 8, 0},
			{0, 0, 2, 0},
		}),
		Score:      10,
		Highscore:  256,
		TotalMoves: 3,
		GameOver:   false,
		WinReached: false,
		Message:    "Welcome to 2048!",
	}

	result := formatGameState(gameState)

	// Check that all important fields are included
	expectedFields := []string{
		"Score: 10",
		"Highscore: 256",
		"Moves: 3",
		"16",
		"Welcome to 2048!",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatGameState_GameOver(t *testing.T) {
	gameState := &engine.GameState{
		Grid: boardFromValues([][]int{
			{2, 4, 2, 4},
			{4, 2, 4, 2},
			{2, 4, 2, 4},
			{4, 2, 4, 2},
		}),
		Score:    5,
		GameOver: true,
		Message:  "Game over!",
	}

	result := formatGameState(gameState)

	if !strings.Contains(result, "💀 GAME OVER") {
		t.Errorf("Expected '💀 GAME OVER' in result, got: %s", result)
	}
}

func TestFormatGameState_Win(t *testing.T) {
	gameState := &engine.GameState{
		Grid: boardFromValues([][]int{
			{2048, 4, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 2},
		}),
		Score:      20000,
		GameOver:   false,
		WinReached: true,
		Message:    "Congratulations!",
	}

	result := formatGameState(gameState)

	if !strings.Contains(result, "🎉 WIN TILE REACHED!") {
		t.Errorf("Expected '🎉 WIN TILE REACHED!' in result, got: %s", result)
	}
}

func TestFormatBoard(t *testing.T) {
	grid := boardFromValues([][]int{
		{2, 0, 128, 0},
		{0, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 0, 2},
	})

	result := formatBoard(grid)

	lines := strings.Split(strings.TrimRight(result, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 board rows, got %d:\n%s", len(lines), result)
	}

	// Widest value is 128, so every cell pads to 3 characters
	if !strings.Contains(lines[0], "128") {
		t.Errorf("Expected 128 in first row, got: %s", lines[0])
	}
	if !strings.Contains(lines[2], "4") {
		t.Errorf("Expected 4 in third row, got: %s", lines[2])
	}
	if !strings.Contains(lines[1], ".") {
		t.Errorf("Expected empty cells rendered as '.', got: %s", lines[1])
	}
}

func TestFormatMoveResult(t *testing.T) {
	moveResult := &service.MoveResult{
		Success:    true,
		Direction:  "left",
		ScoreDelta: 8,
		GameState: &engine.GameState{
			Grid: boardFromValues([][]int{
				{4, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 2, 0},
			}),
			Score: 8,
		},
		PossibleMoves: []string{"up", "right", "down"},
	}

	result := formatMoveResult(moveResult)

	expectedFields := []string{
		"✓ Moved left (+8 points)",
		"Score: 8",
		"Possible moves: up,right,down",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatMoveResult_NoChange(t *testing.T) {
	moveResult := &service.MoveResult{
		Success:   false,
		Direction: "up",
		Message:   "That move doesn't change the board.",
		GameState: &engine.GameState{
			Grid: boardFromValues([][]int{
				{2, 4, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			}),
			Score: 3,
		},
	}

	result := formatMoveResult(moveResult)

	if !strings.Contains(result, "✗ Move up changed nothing") {
		t.Errorf("Expected '✗ Move up changed nothing' in result, got: %s", result)
	}
}

func TestFormatBulkMoveResult(t *testing.T) {
	bulkResult := &service.BulkMoveResult{
		Success:        true,
		MovesExecuted:  3,
		ChangedMoves:   2,
		RequestedMoves: 3,
		StartScore:     0,
		EndScore:       12,
		ScoreDelta:     12,
		Steps: []service.StepInfo{
			{Idx: 1, Dir: "left", Changed: true, ScoreDelta: 4, ScoreAfter: 4, HighestTile: 4},
			{Idx: 2, Dir: "left", Changed: false, ScoreDelta: 0, ScoreAfter: 4, HighestTile: 4},
			{Idx: 3, Dir: "up", Changed: true, ScoreDelta: 8, ScoreAfter: 12, HighestTile: 8},
		},
		PossibleMoves: []string{"down", "right"},
		GameState: &engine.GameState{
			ConfigName: "classic",
			Grid: boardFromValues([][]int{
				{8, 2, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 2},
			}),
			Score: 12,
		},
	}

	result := formatBulkMoveResult("abc1", bulkResult)

	expectedFields := []string{
		"Session: abc1 • Config: classic • Grid: 4x4",
		"Executed 3/3 moves (2 changed the board, score 0 → 12)",
		"1. left +4 score=4 best_tile=4 ✓",
		"2. left +0 score=4 best_tile=4 ✗",
		"3. up +8 score=12 best_tile=8 ✓",
		"Possible moves: down,right",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestClient_handleGameInstructions(t *testing.T) {
	client := NewClient("http://localhost:8080")
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "game_instructions",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleGameInstructions(ctx, request)
	if err != nil {
		t.Fatalf("handleGameInstructions failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	// Check that the result contains game instructions
	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	expectedContent := []string{
		"2048 - Complete Instructions",
		"GAME OBJECTIVE:",
		"GAME MECHANICS:",
		"BOARD DISPLAY:",
		"CORNER STRATEGY",
		"COMMON PITFALLS:",
		"MOVEMENT COMMANDS:",
		"HIGHSCORE:",
		"SESSION MANAGEMENT:",
		"Good luck reaching 2048!",
	}

	for _, content := range expectedContent {
		if !strings.Contains(resultStr.Text, content) {
			t.Errorf("Expected '%s' in instructions, got: %s", content, resultStr.Text)
		}
	}
}

func TestClient_Integration(t *testing.T) {
	// Integration test that verifies the client can be created and initialized without errors
	client := NewClient("http://localhost:8080")

	if client == nil {
		t.Fatal("Failed to create client")
	}

	// Test that the MCP server has been properly configured with tools
	if client.mcpServer == nil {
		t.Fatal("MCP server not initialized")
	}

	// We can't easily test the actual tool execution without setting up a real server,
	// but we can verify that the client structure is properly initialized
	if client.baseURL == "" {
		t.Error("Base URL not set")
	}

	if client.httpClient == nil {
		t.Error("HTTP client not initialized")
	}
}
