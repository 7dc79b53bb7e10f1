package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/wisp-games/tictactoe/game/engine"
)

var (
	ErrSessionFull      = errors.New("session is full")
	ErrAlreadyInSession = errors.New("already in a session")
)

// chatSanitizer escapes markup delimiters so relayed text renders inert.
var chatSanitizer = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
	}
}

// CreateSession creates a new session seating the requester as X. An empty
// display name gets a generated default.
func (s *gameServiceImpl) CreateSession(ctx context.Context, displayName, connID string) (*CreateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A connection belongs to at most one session at a time.
	if _, err := s.sessions.FindByConn(connID); err == nil {
		return nil, ErrAlreadyInSession
	}

	if displayName == "" {
		displayName = defaultDisplayName()
	}

	sess, err := s.sessions.Create("")
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	sess.Game = engine.NewGame()
	sess.Players = append(sess.Players, &Participant{
		ConnID:      connID,
		DisplayName: displayName,
		Symbol:      engine.SymbolX,
	})

	return &CreateResult{
		SessionID:   sess.ID,
		DisplayName: displayName,
		Symbol:      engine.SymbolX,
		Board:       sess.Game.Board,
	}, nil
}

// JoinSession seats the requester as O in an existing session and starts
// the game.
func (s *gameServiceImpl) JoinSession(ctx context.Context, sessionID, displayName, connID string) (*JoinResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("join session: %w", err)
	}

	if len(sess.Players) >= 2 {
		return nil, ErrSessionFull
	}

	if _, err := s.sessions.FindByConn(connID); err == nil {
		return nil, ErrAlreadyInSession
	}

	if displayName == "" {
		displayName = defaultDisplayName()
	}

	sess.Players = append(sess.Players, &Participant{
		ConnID:      connID,
		DisplayName: displayName,
		Symbol:      engine.SymbolO,
	})
	sess.Game.Start()

	s.sessions.UpdateLastAccessed(sessionID)

	return &JoinResult{
		SessionID:     sess.ID,
		DisplayName:   displayName,
		Symbol:        engine.SymbolO,
		Players:       playersSnapshot(sess),
		Board:         sess.Game.Board,
		CurrentPlayer: sess.Game.CurrentPlayer,
	}, nil
}

// MakeMove validates and applies a move for the given connection. An
// unrecognized requester carries no symbol and fails the turn check after
// the occupancy check.
func (s *gameServiceImpl) MakeMove(ctx context.Context, sessionID string, cell int, connID string) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("make move: %w", err)
	}

	symbol := engine.Empty
	for _, p := range sess.Players {
		if p.ConnID == connID {
			symbol = p.Symbol
			break
		}
	}

	if err := sess.Game.ApplyMove(symbol, cell); err != nil {
		return nil, err
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return &MoveResult{
		SessionID:     sess.ID,
		Board:         sess.Game.Board,
		Winner:        sess.Game.Winner,
		CurrentPlayer: sess.Game.CurrentPlayer,
		Status:        sess.Game.Status,
	}, nil
}

// SendMessage sanitizes and timestamps a chat message. A message to an
// unknown session is dropped without error; chat is best-effort.
func (s *gameServiceImpl) SendMessage(ctx context.Context, sessionID, message, senderName, senderID string) (*ChatResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return &ChatResult{Delivered: false}, nil
	}

	return &ChatResult{
		Delivered:  true,
		SessionID:  sess.ID,
		SenderName: senderName,
		SenderID:   senderID,
		Message:    chatSanitizer.Replace(message),
		Timestamp:  time.Now().Format("15:04:05"),
	}, nil
}

// RequestRematch resets the session's game to a fresh board with the same
// players and symbols. X opens the rematch.
func (s *gameServiceImpl) RequestRematch(ctx context.Context, sessionID string) (*RematchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("request rematch: %w", err)
	}

	sess.Game.Reset()
	s.sessions.UpdateLastAccessed(sessionID)

	return &RematchResult{
		SessionID:     sess.ID,
		Board:         sess.Game.Board,
		CurrentPlayer: sess.Game.CurrentPlayer,
		Players:       playersSnapshot(sess),
	}, nil
}

// Leave removes the requester from the session. The session is destroyed
// when its last participant is gone. Leave never fails visibly; a
// requester who is not seated gets a no-op result.
func (s *gameServiceImpl) Leave(ctx context.Context, sessionID, connID string) (*LeaveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.leaveLocked(sessionID, connID), nil
}

// Disconnect applies leave semantics for a dropped connection, scanning
// the store for the session it was seated in.
func (s *gameServiceImpl) Disconnect(ctx context.Context, connID string) (*LeaveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.FindByConn(connID)
	if err != nil {
		return &LeaveResult{}, nil
	}

	return s.leaveLocked(sess.ID, connID), nil
}

// leaveLocked does the removal. Callers must hold the write lock.
func (s *gameServiceImpl) leaveLocked(sessionID, connID string) *LeaveResult {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return &LeaveResult{}
	}

	var left *PlayerInfo
	remaining := sess.Players[:0]
	for _, p := range sess.Players {
		if p.ConnID == connID && left == nil {
			left = &PlayerInfo{
				DisplayName:  p.DisplayName,
				Symbol:       p.Symbol,
				Disconnected: p.Disconnected,
			}
			continue
		}
		remaining = append(remaining, p)
	}
	sess.Players = remaining

	result := &LeaveResult{
		SessionID: sess.ID,
		Left:      left,
		Remaining: playersSnapshot(sess),
	}

	if len(sess.Players) == 0 {
		s.sessions.Delete(sessionID)
		result.Destroyed = true
	}

	return result
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	return sessionSnapshot(sess), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, sessionSnapshot(sess))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

func defaultDisplayName() string {
	return fmt.Sprintf("Player_%d", rand.IntN(1000))
}

func playersSnapshot(sess *Session) []PlayerInfo {
	players := make([]PlayerInfo, 0, len(sess.Players))
	for _, p := range sess.Players {
		players = append(players, PlayerInfo{
			DisplayName:  p.DisplayName,
			Symbol:       p.Symbol,
			Disconnected: p.Disconnected,
		})
	}
	return players
}

func sessionSnapshot(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		Players:        playersSnapshot(sess),
		Board:          sess.Game.Board,
		CurrentPlayer:  sess.Game.CurrentPlayer,
		Status:         sess.Game.Status,
		Winner:         sess.Game.Winner,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
	}
}
