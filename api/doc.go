// Package api provides HTTP REST API handlers for the 2048 game server.
//
// The api package implements:
//   - RESTful endpoints for game operations
//   - Session management endpoints
//   - Configuration listing and creation
//   - Highscore retrieval
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session
//   - GET /api/sessions - List all sessions (sort, order, limit query params)
//   - GET /api/sessions/unified - Multi-session view grouped by config
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Get current game state
//   - POST /api/sessions/{id}/move - Execute a single move
//   - POST /api/sessions/{id}/bulk-move - Execute a sequence of moves
//   - POST /api/sessions/{id}/reset - Reset the game
//   - GET /api/sessions/{id}/history - Get move history with pagination
//   - GET /api/sessions/{id}/highscore - Get the persisted highscore
//
// Configuration:
//   - GET /api/configs - List available configurations
//   - POST /api/configs - Save a new configuration
//   - GET /api/configs/{name} - Get a specific configuration
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Moves are sent as POST with a
// JSON body:
//
//	{
//	  "direction": "up|down|left|right",
//	  "reset": true|false              // optional reset before move
//	}
//
// Bulk moves take a list of directions:
//
//	{
//	  "moves": ["up", "left", "left", "down"],
//	  "reset": true|false
//	}
//
// Move responses include the score delta of the move, the updated game
// state and the list of directions that would still change the board.
// Bulk move responses additionally report how many moves executed, how
// many changed the board, per-move steps, and a stop reason code
// (game_over or invalid_direction) when the sequence ended early.
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
