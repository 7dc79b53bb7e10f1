package service

import (
	"time"

	"github.com/wisp-games/tictactoe/game/engine"
)

// PlayerInfo is the public view of a seated participant.
type PlayerInfo struct {
	DisplayName  string        `json:"displayName"`
	Symbol       engine.Symbol `json:"symbol"`
	Disconnected bool          `json:"disconnected,omitempty"`
}

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string        `json:"id"`
	Players        []PlayerInfo  `json:"players"`
	Board          engine.Board  `json:"board"`
	CurrentPlayer  engine.Symbol `json:"currentPlayer"`
	Status         engine.Status `json:"status"`
	Winner         engine.Winner `json:"winner"`
	CreatedAt      time.Time     `json:"created_at"`
	LastAccessedAt time.Time     `json:"last_accessed_at"`
}

// CreateResult contains the outcome of creating a session
type CreateResult struct {
	SessionID   string        `json:"sessionId"`
	DisplayName string        `json:"displayName"`
	Symbol      engine.Symbol `json:"symbol"`
	Board       engine.Board  `json:"board"`
}

// JoinResult contains the outcome of joining a session. The private
// acknowledgment for the joiner uses SessionID and Symbol; the broadcast
// to the whole session uses Players, Board, and CurrentPlayer.
type JoinResult struct {
	SessionID     string        `json:"sessionId"`
	DisplayName   string        `json:"displayName"`
	Symbol        engine.Symbol `json:"symbol"`
	Players       []PlayerInfo  `json:"players"`
	Board         engine.Board  `json:"board"`
	CurrentPlayer engine.Symbol `json:"currentPlayer"`
}

// MoveResult contains the result of an accepted move
type MoveResult struct {
	SessionID     string        `json:"sessionId"`
	Board         engine.Board  `json:"board"`
	Winner        engine.Winner `json:"winner"`
	CurrentPlayer engine.Symbol `json:"currentPlayer"`
	Status        engine.Status `json:"status"`
}

// ChatResult carries a sanitized chat message ready for relay. Delivered
// is false when the session does not exist and the message was dropped.
type ChatResult struct {
	Delivered  bool   `json:"-"`
	SessionID  string `json:"sessionId"`
	SenderName string `json:"sender"`
	SenderID   string `json:"senderId"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
}

// RematchResult contains the reset state after an accepted rematch
type RematchResult struct {
	SessionID     string        `json:"sessionId"`
	Board         engine.Board  `json:"board"`
	CurrentPlayer engine.Symbol `json:"currentPlayer"`
	Players       []PlayerInfo  `json:"players"`
}

// LeaveResult describes what a leave or disconnect did. Left is nil when
// the requester was not seated anywhere and the call degraded to a no-op.
type LeaveResult struct {
	SessionID string       `json:"sessionId"`
	Left      *PlayerInfo  `json:"left,omitempty"`
	Remaining []PlayerInfo `json:"remaining"`
	Destroyed bool         `json:"destroyed"`
}
