// Package service provides the business logic layer for the tic-tac-toe
// coordination service.
//
// The service package implements:
//   - Session creation and join admission
//   - Move validation and application
//   - Chat sanitization and timestamping
//   - Rematch resets
//   - Leave and disconnect cleanup
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game
// operations. SessionManager handles session storage, retrieval, and
// connection-to-session lookup.
//
// Architecture:
//
// The service layer sits between the transport layer (WebSocket/HTTP/MCP)
// and the game engine, providing session isolation and business logic
// orchestration. Every operation returns an explicit result struct or a
// sentinel error; a thin transport adapter maps those onto wire events,
// keeping this layer testable without a live connection.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	gameService := service.NewGameService(sessionMgr)
//
//	// Create a session seating the first player as X
//	created, err := gameService.CreateSession(ctx, "Alice", connID)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Apply a move
//	result, err := gameService.MakeMove(ctx, created.SessionID, 4, connID)
//
// Membership:
//
// A connection belongs to at most one session at a time; create and join
// both reject a requester who is already seated elsewhere. The first seat
// is always X, the second always O, and the session is destroyed when its
// last participant leaves or disconnects.
package service
