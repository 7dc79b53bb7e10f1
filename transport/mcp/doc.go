// Package mcp provides a Model Context Protocol surface for the tic-tac-toe service.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Read-only tool definitions over the REST API
//   - Stdio and HTTP transport modes
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - list_sessions: List all active sessions
//   - get_session: Get session details including the players
//   - game_state: Get a session's board, turn, and outcome
//   - game_instructions: Get the game rules and event protocol
//
// All tools are observers. Gameplay needs a stable per-connection
// identity, which only the WebSocket transport carries, so moves, chat,
// and rematches are not exposed here.
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: HTTP endpoint for remote MCP integration
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
