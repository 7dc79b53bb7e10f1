// Package api provides the HTTP surface for the tic-tac-toe service.
//
// The api package implements:
//   - Read-only session inspection endpoints
//   - Session deletion for administration
//   - QR join-link rendering
//   - WebSocket upgrade handling
//   - Health and version endpoints
//   - Static file serving
//
// Endpoints:
//
// Session Inspection:
//   - GET /api/sessions - List all sessions (sort, order, limit query params)
//   - GET /api/sessions/{id} - Get a session with its players
//   - GET /api/sessions/{id}/state - Get the board, turn, status, and winner
//   - GET /api/sessions/{id}/qr - PNG QR code encoding a join link
//
// Administration:
//   - DELETE /api/sessions/{id} - Drop a session, notifying connected clients
//
// Operational:
//   - GET /healthz - Health status with session and client counts
//   - GET /version - Server version
//
// Gameplay is not exposed over REST: moves, chat, and rematches need the
// stable per-connection identity that only the WebSocket at /ws carries.
//
// Usage:
//
//	server := api.NewServer(gameService, hub, version)
//	http.ListenAndServe(":8080", server)
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
