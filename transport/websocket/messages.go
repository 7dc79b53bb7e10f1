package websocket

// ClientEvent is the inbound frame sent by a player. Type selects the
// operation; the remaining fields are populated per operation.
type ClientEvent struct {
	Type        string `json:"type" validate:"required"`
	RequestID   string `json:"requestId,omitempty"`
	SessionID   string `json:"sessionId,omitempty"`
	DisplayName string `json:"displayName,omitempty" validate:"max=32"`
	CellIndex   *int   `json:"cellIndex,omitempty"`
	Message     string `json:"message,omitempty" validate:"max=500"`
}

// Inbound event types.
const (
	EventCreateSession  = "create_session"
	EventJoinSession    = "join_session"
	EventMakeMove       = "make_move"
	EventChatMessage    = "chat_message"
	EventRequestRematch = "request_rematch"
	EventLeaveSession   = "leave_session"
)

// Outbound event names.
const (
	EventSessionCreated = "session_created"
	EventJoinSuccess    = "join_success"
	EventGameStarted    = "game_started"
	EventMoveMade       = "move_made"
	EventChatReceived   = "chat_message"
	EventRematchAck     = "rematch_ack"
	EventGameRestarted  = "game_restarted"
	EventPlayerLeft     = "player_left"
	EventSessionExpired = "session_expired"
	EventError          = "error"
)

// ServerEvent is the outbound frame.
type ServerEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// ErrorPayload is the data of an error event. Code is machine-friendly;
// Error is the human-readable message.
type ErrorPayload struct {
	Code      string `json:"code"`
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// AckPayload is the data of a request/acknowledgment response such as
// rematch_ack.
type AckPayload struct {
	Success   bool   `json:"success"`
	RequestID string `json:"requestId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// PlayerLeftPayload notifies remaining participants that their peer is
// gone.
type PlayerLeftPayload struct {
	SessionID   string `json:"sessionId"`
	DisplayName string `json:"displayName"`
}
