// Package session provides session storage for the tic-tac-toe service.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Connection-to-session lookup
//   - Concurrent access control
//   - Session cleanup and expiration
//
// Core Types:
//
// Manager is the main session store that handles all storage operations.
// It holds service.Session values keyed by lowercased session ID; the
// gameplay semantics (seating, moves, chat) live in the service layer.
//
// Session Identifiers:
//
// Sessions use 6-character hex IDs for easy sharing between players. The
// manager ensures IDs are unique and provides collision-resistant
// generation using cryptographic randomness. Lookups are case-insensitive
// so a hand-typed ID works regardless of casing.
//
// Concurrency:
//
// The session manager is thread-safe and supports concurrent operations.
// Multiple goroutines can safely create, retrieve, and delete different
// sessions simultaneously. Internal locking ensures data consistency.
//
// Usage:
//
//	manager := session.NewManager()
//
//	// Create a new session
//	sess, err := manager.Create("")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Retrieve existing session
//	sess, err = manager.Get(sessionID)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// List all active sessions
//	sessions := manager.List()
//
// Cleanup:
//
// Sessions can be explicitly deleted or may expire based on inactivity.
// CleanupExpiredSessions removes sessions idle past a cutoff and reports
// which IDs were removed so callers can notify connected clients.
package session
