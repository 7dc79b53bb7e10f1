// Package websocket provides the WebSocket transport for the tic-tac-toe
// coordination service.
//
// The websocket package implements:
//   - Real-time bidirectional communication
//   - Stable per-connection identities
//   - Session broadcast groups with optional sender exclusion
//   - Connection lifecycle management
//   - Event routing into the game service
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine pair for reading and writing; inbound frames funnel into the
// hub's single event loop, which hands them to a Dispatcher one at a
// time. The Dispatcher calls into the game service and maps each result
// onto private sends or group broadcasts.
//
// Message Protocol:
//
// Frames are JSON-encoded:
//   - Incoming: {type: "make_move", sessionId: "a1b2c3", cellIndex: 4}
//   - Outgoing: {event: "move_made", data: {board, winner, currentPlayer, sessionId}}
//
// Every failure is delivered to the originating connection only, as an
// error event with a machine-friendly code. The rematch flow uses a
// request/acknowledgment pattern: the requester receives a rematch_ack
// carrying its requestId before the group-wide game_restarted broadcast.
//
// Usage:
//
//	hub := websocket.NewHub()
//	dispatcher := websocket.NewDispatcher(gameService, hub)
//	hub.SetHandler(dispatcher)
//	go hub.Run()
//
//	http.HandleFunc("/ws", hub.ServeWS)
//
// Connection Lifecycle:
//
// 1. Client connects and is assigned a connection ID
// 2. Client creates or joins a session and enters its broadcast group
// 3. Client sends gameplay events, receives broadcasts
// 4. Disconnection removes the client from its session and notifies the peer
//
// Concurrency:
//
// Inbound events are handled to completion one at a time on the hub's
// event loop, so no two mutations to the same session interleave.
// Outbound delivery never blocks; a client whose buffer is full loses
// the frame.
package websocket
