package service

import (
	"context"
	"time"

	"github.com/wisp-games/tictactoe/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Lifecycle
	CreateSession(ctx context.Context, displayName, connID string) (*CreateResult, error)
	JoinSession(ctx context.Context, sessionID, displayName, connID string) (*JoinResult, error)
	Leave(ctx context.Context, sessionID, connID string) (*LeaveResult, error)
	Disconnect(ctx context.Context, connID string) (*LeaveResult, error)
	RequestRematch(ctx context.Context, sessionID string) (*RematchResult, error)

	// Gameplay
	MakeMove(ctx context.Context, sessionID string, cell int, connID string) (*MoveResult, error)

	// Chat
	SendMessage(ctx context.Context, sessionID, message, senderName, senderID string) (*ChatResult, error)

	// Inspection
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	FindByConn(connID string) (*Session, error)
	UpdateLastAccessed(id string) error
}

// Session represents an active game session. The store owns the record;
// the service owns its gameplay semantics.
type Session struct {
	ID             string
	Players        []*Participant
	Game           *engine.Game
	CreatedAt      time.Time
	LastAccessedAt time.Time
}

// Participant is a connected player seated in a session. The first seat
// is always X, the second always O; symbols never change for the life of
// the session.
type Participant struct {
	ConnID       string
	DisplayName  string
	Symbol       engine.Symbol
	Disconnected bool
}
