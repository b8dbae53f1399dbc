package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	cellGap       = 8
	headerHeight  = 80 // Taller header for multi-session stats
	screenWidth   = 800
	screenHeight  = 720
	baseURL       = "http://localhost:8080"
	spawnDuration = 150 * time.Millisecond // Tile pop-in animation duration
)

// ScreenType represents different screens in the app
type ScreenType int

const (
	ScreenWelcome ScreenType = iota
	ScreenGame
)

// Classic 2048 tile palette
var tileColors = map[int]color.RGBA{
	2:    {238, 228, 218, 255},
	4:    {237, 224, 200, 255},
	8:    {242, 177, 121, 255},
	16:   {245, 149, 99, 255},
	32:   {246, 124, 95, 255},
	64:   {246, 94, 59, 255},
	128:  {237, 207, 114, 255},
	256:  {237, 204, 97, 255},
	512:  {237, 200, 80, 255},
	1024: {237, 197, 63, 255},
	2048: {237, 194, 46, 255},
}

var emptyCellColor = color.RGBA{205, 193, 180, 255}
var boardColor = color.RGBA{187, 173, 160, 255}

// Tile represents a single tile on the board
type Tile struct {
	Value int `json:"value"`
	X     int `json:"x"`
	Y     int `json:"y"`
}

// Grid represents the board from the game server
type Grid struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Cells  [][]*Tile `json:"cells"`
}

// GameState represents the state from the 2048 game server
type GameState struct {
	Grid       *Grid  `json:"grid"`
	Score      int    `json:"score"`
	Highscore  int    `json:"highscore"`
	GameOver   bool   `json:"game_over"`
	WinReached bool   `json:"win_reached"`
	Message    string `json:"message"`
	ConfigName string `json:"config_name"`
	TotalMoves int    `json:"total_moves"`
}

// WSMessage represents WebSocket message wrapper
type WSMessage struct {
	SessionID string     `json:"session_id"`
	GameState *GameState `json:"game_state,omitempty"`
	Event     string     `json:"event,omitempty"`
}

// SessionData holds data for a single session
type SessionData struct {
	sessionID  string
	state      *GameState
	wsConn     *websocket.Conn
	lastUpdate time.Time
	spawnTime  time.Time      // When the last board change arrived
	spawned    map[[2]int]bool // Cells that appeared in the last update
}

// SessionListItem represents a session from the server
type SessionListItem struct {
	ID         string     `json:"id"`
	ConfigName string     `json:"config_name"`
	CreatedAt  string     `json:"created_at"`
	GameState  *GameState `json:"game_state"`
}

// ConfigListItem represents a game configuration
type ConfigListItem struct {
	ConfigID    string `json:"config_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Game represents the desktop game client
type Game struct {
	sessions         []*SessionData
	activeSession    int // index of currently active session
	stateMutex       sync.RWMutex
	currentScreen    ScreenType
	welcomeScreen    *WelcomeScreen
	selectedSessions map[string]bool // session IDs selected to play
}

// WelcomeScreen manages the welcome screen state
type WelcomeScreen struct {
	availableSessions []SessionListItem
	availableConfigs  []ConfigListItem
	cursorPos         int
	loading           bool
	errorMsg          string
	newSessionConfig  string // selected config for new session
}

// NewGame creates a new game instance with initial sessions
func NewGame(sessionIDs []string) *Game {
	g := &Game{
		sessions:         make([]*SessionData, 0),
		activeSession:    0,
		currentScreen:    ScreenWelcome,
		selectedSessions: make(map[string]bool),
		welcomeScreen: &WelcomeScreen{
			availableSessions: make([]SessionListItem, 0),
			availableConfigs:  make([]ConfigListItem, 0),
			cursorPos:         0,
		},
	}

	// If session IDs provided, skip welcome screen and go straight to game
	if len(sessionIDs) > 0 {
		for _, sid := range sessionIDs {
			g.addSession(sid)
		}
		g.currentScreen = ScreenGame
	} else {
		// Load available sessions and configs for welcome screen
		g.loadWelcomeData()
	}

	return g
}

// addSession adds a new session to the game with optional config
func (g *Game) addSession(sessionID string) {
	session := &SessionData{
		sessionID:  sessionID,
		lastUpdate: time.Now(),
		spawned:    make(map[[2]int]bool),
	}

	// If no session ID provided, create one with same config as first session
	if sessionID == "" {
		configName := ""
		if len(g.sessions) > 0 && g.sessions[0].state != nil {
			configName = g.sessions[0].state.ConfigName
		}
		if err := g.createSessionWithConfig(session, configName); err != nil {
			log.Printf("Failed to create session: %v", err)
			return
		}
	}

	g.sessions = append(g.sessions, session)

	// Connect to WebSocket
	if err := g.connectWebSocket(session); err != nil {
		log.Printf("Failed to connect WebSocket for %s: %v (falling back to polling)", session.sessionID, err)
	} else {
		// Start WebSocket listener
		go g.listenWebSocket(session)
	}

	// Initial state fetch
	g.fetchGameState(session)
}

// createSessionWithConfig creates a new game session with specific config
func (g *Game) createSessionWithConfig(session *SessionData, configName string) error {
	url := fmt.Sprintf("%s/api/sessions", baseURL)

	payload := "{}"
	if configName != "" {
		payload = fmt.Sprintf(`{"config_id":"%s"}`, configName)
	}

	resp, err := http.Post(url, "application/json", strings.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse session response: %v (body: %s)", err, string(body))
	}

	session.sessionID = result.ID
	log.Printf("Created new session: %s (config: %s)", session.sessionID, configName)
	return nil
}

// connectWebSocket establishes WebSocket connection
func (g *Game) connectWebSocket(session *SessionData) error {
	if session.sessionID == "" {
		return fmt.Errorf("no session ID set")
	}

	wsURL := url.URL{Scheme: "ws", Host: "localhost:8080", Path: "/ws"}
	q := wsURL.Query()
	q.Set("session", session.sessionID)
	wsURL.RawQuery = q.Encode()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL.String(), nil)
	if err != nil {
		return err
	}

	session.wsConn = conn
	log.Printf("WebSocket connected for session %s", session.sessionID)
	return nil
}

// listenWebSocket listens for WebSocket updates
func (g *Game) listenWebSocket(session *SessionData) {
	defer func() {
		if session.wsConn != nil {
			session.wsConn.Close()
		}
	}()

	for {
		_, message, err := session.wsConn.ReadMessage()
		if err != nil {
			log.Printf("WebSocket read error for %s: %v", session.sessionID, err)
			return
		}

		// WebSocket sends wrapped message
		var wsMsg WSMessage
		if err := json.Unmarshal(message, &wsMsg); err != nil {
			log.Printf("WebSocket JSON parse error: %v", err)
			continue
		}

		if wsMsg.GameState == nil {
			continue
		}

		g.stateMutex.Lock()
		g.applyState(session, wsMsg.GameState)
		g.stateMutex.Unlock()
	}
}

// applyState swaps in a new state and marks freshly occupied cells for the
// pop-in animation. Caller must hold stateMutex.
func (g *Game) applyState(session *SessionData, state *GameState) {
	spawned := make(map[[2]int]bool)
	if session.state != nil && session.state.Grid != nil && state.Grid != nil {
		old := session.state.Grid
		for y := 0; y < state.Grid.Height; y++ {
			for x := 0; x < state.Grid.Width; x++ {
				if state.Grid.Cells[y][x] == nil {
					continue
				}
				wasEmpty := y >= old.Height || x >= old.Width || old.Cells[y][x] == nil
				if wasEmpty {
					spawned[[2]int{x, y}] = true
				}
			}
		}
	}

	if len(spawned) > 0 {
		session.spawned = spawned
		session.spawnTime = time.Now()
	}

	session.state = state
	session.lastUpdate = time.Now()
}

// fetchGameState gets the current game state from the server
func (g *Game) fetchGameState(session *SessionData) error {
	if session.sessionID == "" {
		return fmt.Errorf("no session ID set")
	}

	url := fmt.Sprintf("%s/api/sessions/%s/state", baseURL, session.sessionID)
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var state GameState
	if err := json.Unmarshal(body, &state); err != nil {
		return fmt.Errorf("failed to parse JSON: %v (body: %s)", err, string(body))
	}

	g.stateMutex.Lock()
	g.applyState(session, &state)
	g.stateMutex.Unlock()

	return nil
}

// loadWelcomeData fetches available sessions and configs from server
func (g *Game) loadWelcomeData() {
	g.welcomeScreen.loading = true
	g.welcomeScreen.errorMsg = ""

	// Fetch available sessions
	resp, err := http.Get(fmt.Sprintf("%s/api/sessions", baseURL))
	if err != nil {
		g.welcomeScreen.errorMsg = fmt.Sprintf("Error loading sessions: %v", err)
		g.welcomeScreen.loading = false
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var sessionsResp struct {
		Sessions []SessionListItem `json:"sessions"`
	}
	if err := json.Unmarshal(body, &sessionsResp); err == nil {
		g.welcomeScreen.availableSessions = sessionsResp.Sessions
	}

	// Fetch available configs
	resp, err = http.Get(fmt.Sprintf("%s/api/configs", baseURL))
	if err != nil {
		g.welcomeScreen.errorMsg = fmt.Sprintf("Error loading configs: %v", err)
		g.welcomeScreen.loading = false
		return
	}
	defer resp.Body.Close()

	body, _ = io.ReadAll(resp.Body)
	var configs []ConfigListItem
	if err := json.Unmarshal(body, &configs); err == nil {
		g.welcomeScreen.availableConfigs = configs
	}

	g.welcomeScreen.loading = false
}

// createNewSessionFromWelcome creates a new session with selected config
func (g *Game) createNewSessionFromWelcome() error {
	configName := g.welcomeScreen.newSessionConfig
	url := fmt.Sprintf("%s/api/sessions", baseURL)

	payload := "{}"
	if configName != "" {
		payload = fmt.Sprintf(`{"config_id":"%s"}`, configName)
	}

	resp, err := http.Post(url, "application/json", strings.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse session response: %v", err)
	}

	// Add to selected sessions
	g.selectedSessions[result.ID] = true
	log.Printf("Created new session: %s (config: %s)", result.ID, configName)

	// Reload session list
	g.loadWelcomeData()
	return nil
}

// startGameWithSelectedSessions transitions to game screen with selected sessions
func (g *Game) startGameWithSelectedSessions() {
	if len(g.selectedSessions) == 0 {
		g.welcomeScreen.errorMsg = "Please select at least one session"
		return
	}

	// Create sessions for each selected ID
	for sessionID := range g.selectedSessions {
		g.addSession(sessionID)
	}

	// Switch to game screen
	g.currentScreen = ScreenGame
}

// sendAction sends a move action to the server for active session
func (g *Game) sendAction(action string) error {
	if len(g.sessions) == 0 {
		return fmt.Errorf("no sessions available")
	}

	session := g.sessions[g.activeSession]
	if session.sessionID == "" {
		return fmt.Errorf("no session ID set")
	}

	var url string
	var payload string

	if action == "reset" {
		url = fmt.Sprintf("%s/api/sessions/%s/reset", baseURL, session.sessionID)
		payload = "{}"
	} else {
		url = fmt.Sprintf("%s/api/sessions/%s/move", baseURL, session.sessionID)
		payload = fmt.Sprintf(`{"direction":"%s"}`, action)
	}

	resp, err := http.Post(url, "application/json", strings.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return g.fetchGameState(session)
}

// Update updates game logic
func (g *Game) Update() error {
	// Route to appropriate screen update
	switch g.currentScreen {
	case ScreenWelcome:
		return g.updateWelcomeScreen()
	case ScreenGame:
		return g.updateGameScreen()
	}
	return nil
}

// updateWelcomeScreen handles welcome screen input
func (g *Game) updateWelcomeScreen() error {
	ws := g.welcomeScreen

	// Refresh data with F5
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.loadWelcomeData()
	}

	// Navigate with arrow keys
	totalItems := len(ws.availableSessions)
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		ws.cursorPos++
		if ws.cursorPos >= totalItems {
			ws.cursorPos = totalItems - 1
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		ws.cursorPos--
		if ws.cursorPos < 0 {
			ws.cursorPos = 0
		}
	}

	// Toggle selection with Space
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if ws.cursorPos < len(ws.availableSessions) {
			sessionID := ws.availableSessions[ws.cursorPos].ID
			g.selectedSessions[sessionID] = !g.selectedSessions[sessionID]
			if !g.selectedSessions[sessionID] {
				delete(g.selectedSessions, sessionID)
			}
		}
	}

	// Cycle through configs with Tab
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if len(ws.availableConfigs) > 0 {
			// Find current config index
			currentIdx := -1
			for i, cfg := range ws.availableConfigs {
				if cfg.ConfigID == ws.newSessionConfig {
					currentIdx = i
					break
				}
			}
			// Move to next
			currentIdx++
			if currentIdx >= len(ws.availableConfigs) {
				ws.newSessionConfig = "" // No config (default)
			} else {
				ws.newSessionConfig = ws.availableConfigs[currentIdx].ConfigID
			}
		}
	}

	// Create new session with N
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := g.createNewSessionFromWelcome(); err != nil {
			ws.errorMsg = fmt.Sprintf("Failed to create session: %v", err)
		}
	}

	// Start game with Enter
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.startGameWithSelectedSessions()
	}

	// Back to game screen with Escape (if sessions exist)
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && len(g.sessions) > 0 {
		g.currentScreen = ScreenGame
	}

	return nil
}

// updateGameScreen handles game screen input
func (g *Game) updateGameScreen() error {
	if len(g.sessions) == 0 {
		return nil
	}

	// Poll all sessions if WebSocket is not connected
	for _, session := range g.sessions {
		if session.wsConn == nil {
			if session.state == nil || time.Since(session.lastUpdate) > 500*time.Millisecond {
				if err := g.fetchGameState(session); err != nil {
					log.Printf("Error fetching state for %s: %v", session.sessionID, err)
				}
			}
		}
	}

	// Session switching with number keys (1-9)
	for i := ebiten.Key1; i <= ebiten.Key9; i++ {
		if inpututil.IsKeyJustPressed(i) {
			sessionIdx := int(i - ebiten.Key1)
			if sessionIdx < len(g.sessions) {
				g.activeSession = sessionIdx
				log.Printf("Switched to session %d: %s", sessionIdx+1, g.sessions[sessionIdx].sessionID)
			}
		}
	}

	// Add new session with N key
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if len(g.sessions) < 9 {
			g.addSession("")
			log.Printf("Added new session (total: %d)", len(g.sessions))
		}
	}

	// Handle keyboard input for active session
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.sendAction("up")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.sendAction("down")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.sendAction("left")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.sendAction("right")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sendAction("reset")
	}

	// Return to welcome screen with Escape
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.currentScreen = ScreenWelcome
		g.loadWelcomeData()
	}

	return nil
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	// Route to appropriate screen renderer
	switch g.currentScreen {
	case ScreenWelcome:
		g.drawWelcomeScreen(screen)
	case ScreenGame:
		g.drawGameScreen(screen)
	}
}

// drawWelcomeScreen renders the welcome/session selection screen
func (g *Game) drawWelcomeScreen(screen *ebiten.Image) {
	ws := g.welcomeScreen

	// Clear screen
	screen.Fill(color.RGBA{20, 20, 30, 255})

	y := 20
	ebitenutil.DebugPrintAt(screen, "=== 2048 - SESSION SELECT ===", 280, y)
	y += 30

	if ws.loading {
		ebitenutil.DebugPrintAt(screen, "Loading sessions...", 20, y)
		return
	}

	if ws.errorMsg != "" {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("ERROR: %s", ws.errorMsg), 20, y)
		y += 20
	}

	// Session list
	ebitenutil.DebugPrintAt(screen, "Available Sessions:", 20, y)
	y += 20

	if len(ws.availableSessions) == 0 {
		ebitenutil.DebugPrintAt(screen, "  No sessions found. Press N to create one.", 20, y)
		y += 20
	} else {
		for i, session := range ws.availableSessions {
			cursor := "  "
			if i == ws.cursorPos {
				cursor = "> "
			}

			checkbox := "[ ]"
			if g.selectedSessions[session.ID] {
				checkbox = "[X]"
			}

			score := 0
			status := ""
			if session.GameState != nil {
				score = session.GameState.Score
				if session.GameState.WinReached {
					status = " WIN"
				} else if session.GameState.GameOver {
					status = " GAME OVER"
				}
			}

			line := fmt.Sprintf("%s%s %s | %s | Score:%d%s",
				cursor, checkbox, session.ID, session.ConfigName, score, status)

			ebitenutil.DebugPrintAt(screen, line, 20, y)
			y += 15
		}
	}

	y += 20
	ebitenutil.DebugPrintAt(screen, "─────────────────────────────────────────", 20, y)
	y += 20

	// New session creation
	ebitenutil.DebugPrintAt(screen, "Create New Session:", 20, y)
	y += 20

	configDisplay := "default"
	if ws.newSessionConfig != "" {
		configDisplay = ws.newSessionConfig
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("  Selected Config: %s", configDisplay), 20, y)
	y += 15

	ebitenutil.DebugPrintAt(screen, "  Available Configs:", 20, y)
	y += 15
	for _, cfg := range ws.availableConfigs {
		marker := "  "
		if cfg.ConfigID == ws.newSessionConfig {
			marker = "→ "
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("    %s%s - %s", marker, cfg.ConfigID, cfg.Description), 20, y)
		y += 15
	}

	y += 20
	ebitenutil.DebugPrintAt(screen, "─────────────────────────────────────────", 20, y)
	y += 20

	// Selected sessions summary
	selectedCount := len(g.selectedSessions)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Selected: %d session(s)", selectedCount), 20, y)
	y += 20

	// Controls
	y += 10
	ebitenutil.DebugPrintAt(screen, "CONTROLS:", 20, y)
	y += 20
	ebitenutil.DebugPrintAt(screen, "  ↑/↓      - Navigate sessions", 20, y)
	y += 15
	ebitenutil.DebugPrintAt(screen, "  SPACE    - Toggle session selection", 20, y)
	y += 15
	ebitenutil.DebugPrintAt(screen, "  TAB      - Cycle config for new session", 20, y)
	y += 15
	ebitenutil.DebugPrintAt(screen, "  N        - Create new session with selected config", 20, y)
	y += 15
	ebitenutil.DebugPrintAt(screen, "  ENTER    - Start game with selected sessions", 20, y)
	y += 15
	ebitenutil.DebugPrintAt(screen, "  F5       - Refresh session list", 20, y)
	y += 15
	if len(g.sessions) > 0 {
		ebitenutil.DebugPrintAt(screen, "  ESC      - Back to game", 20, y)
	}
}

// drawGameScreen renders the active session's board
func (g *Game) drawGameScreen(screen *ebiten.Image) {
	g.stateMutex.RLock()
	defer g.stateMutex.RUnlock()

	if len(g.sessions) == 0 {
		ebitenutil.DebugPrint(screen, "No sessions available. Press ESC to go to session select.")
		return
	}

	session := g.sessions[g.activeSession]
	if session.state == nil || session.state.Grid == nil {
		ebitenutil.DebugPrint(screen, "Loading...")
		return
	}

	screen.Fill(color.RGBA{250, 248, 239, 255})

	// Draw header with all session stats
	g.drawSessionStats(screen)

	grid := session.state.Grid

	// Fit the board to the window below the header
	boardSize := screenWidth
	if screenHeight-headerHeight-30 < boardSize {
		boardSize = screenHeight - headerHeight - 30
	}
	tilePx := (boardSize - cellGap*(grid.Width+1)) / grid.Width
	if h := (boardSize - cellGap*(grid.Height+1)) / grid.Height; h < tilePx {
		tilePx = h
	}

	boardW := tilePx*grid.Width + cellGap*(grid.Width+1)
	boardH := tilePx*grid.Height + cellGap*(grid.Height+1)
	offsetX := (screenWidth - boardW) / 2
	offsetY := headerHeight

	ebitenutil.DrawRect(screen, float64(offsetX), float64(offsetY), float64(boardW), float64(boardH), boardColor)

	// Pop-in animation progress for freshly spawned tiles
	spawnProgress := 1.0
	if !session.spawnTime.IsZero() {
		spawnProgress = time.Since(session.spawnTime).Seconds() / spawnDuration.Seconds()
		if spawnProgress > 1.0 {
			spawnProgress = 1.0
		}
	}

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			cellX := float64(offsetX + cellGap + x*(tilePx+cellGap))
			cellY := float64(offsetY + cellGap + y*(tilePx+cellGap))

			ebitenutil.DrawRect(screen, cellX, cellY, float64(tilePx), float64(tilePx), emptyCellColor)

			tile := grid.Cells[y][x]
			if tile == nil {
				continue
			}

			tileColor, ok := tileColors[tile.Value]
			if !ok {
				// Values past 2048 share the dark "super tile" color
				tileColor = color.RGBA{60, 58, 50, 255}
			}

			size := float64(tilePx)
			if session.spawned[[2]int{x, y}] && spawnProgress < 1.0 {
				// Grow from 40% to full size
				size = float64(tilePx) * (0.4 + 0.6*spawnProgress)
			}
			inset := (float64(tilePx) - size) / 2

			ebitenutil.DrawRect(screen, cellX+inset, cellY+inset, size, size, tileColor)
			ebitenutil.DebugPrintAt(screen,
				fmt.Sprintf("%d", tile.Value),
				int(cellX)+tilePx/2-4*len(fmt.Sprintf("%d", tile.Value))/2,
				int(cellY)+tilePx/2-6)
		}
	}

	// Status banner
	if session.state.WinReached {
		ebitenutil.DebugPrintAt(screen, ">>> WIN TILE REACHED - keep going or press R to reset <<<", offsetX, offsetY+boardH+5)
	} else if session.state.GameOver {
		ebitenutil.DebugPrintAt(screen, ">>> GAME OVER - press R to reset <<<", offsetX, offsetY+boardH+5)
	}

	// Footer controls
	ebitenutil.DebugPrintAt(screen, "1-9: Switch Board | N: New Session | Arrow/WASD: Move | R: Reset | ESC: Menu", 10, screenHeight-20)
}

// drawSessionStats draws stats for all sessions in header
func (g *Game) drawSessionStats(screen *ebiten.Image) {
	headerY := 5
	for idx, session := range g.sessions {
		if session.state == nil {
			continue
		}

		y := headerY + (idx * 15)

		// Session info
		activeMarker := ""
		if idx == g.activeSession {
			activeMarker = ">>>"
		}

		connStatus := "POLL"
		if session.wsConn != nil {
			connStatus = "WS"
		}

		info := fmt.Sprintf("%s [%d] %s [%s] MV:%d SC:%d HI:%d",
			activeMarker,
			idx+1,
			session.sessionID,
			connStatus,
			session.state.TotalMoves,
			session.state.Score,
			session.state.Highscore)

		if session.state.WinReached {
			info += " WIN!"
		} else if session.state.GameOver {
			info += " GAME OVER"
		}

		ebitenutil.DebugPrintAt(screen, info, 20, y)
	}
}

// Layout returns the game screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	// Accept multiple session IDs as arguments
	sessionIDs := []string{}
	if len(os.Args) > 1 {
		sessionIDs = os.Args[1:]
	}

	game := NewGame(sessionIDs)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("2048 - Multi-Session Desktop Client")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
