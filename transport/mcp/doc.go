// Package mcp provides Model Context Protocol server implementation for the 2048 game server.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for game operations
//   - Session-aware command execution
//   - Stdio and HTTP transport modes
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - game_state: Get current game state with board visualization
//   - move: Execute a single slide (up/down/left/right)
//   - bulk_move: Execute multiple moves in sequence
//   - reset_game: Reset game to a fresh board
//   - move_history: Retrieve move history with pagination
//   - highscore: Get the persisted best score
//   - create_session: Create new game session with config selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - list_configs: List available game configurations
//   - game_instructions: Comprehensive rules and strategy notes
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: HTTP endpoint for remote MCP integration
//
// Session Management:
//
// All game tools take a session_id parameter so AI agents can manage
// multiple concurrent boards independently.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Autonomously play 2048
//   - Develop and test merge strategies
//   - Analyze board states and make decisions
//   - Manage multiple game sessions
//   - Learn from move history
package mcp
