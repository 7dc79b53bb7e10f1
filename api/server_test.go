package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wisp-games/tictactoe/game/engine"
	"github.com/wisp-games/tictactoe/game/service"
	"github.com/wisp-games/tictactoe/transport/websocket"
)

// MockGameService implements service.GameService for testing
type MockGameService struct {
	CreateSessionFunc  func(ctx context.Context, displayName, connID string) (*service.CreateResult, error)
	JoinSessionFunc    func(ctx context.Context, sessionID, displayName, connID string) (*service.JoinResult, error)
	LeaveFunc          func(ctx context.Context, sessionID, connID string) (*service.LeaveResult, error)
	DisconnectFunc     func(ctx context.Context, connID string) (*service.LeaveResult, error)
	RequestRematchFunc func(ctx context.Context, sessionID string) (*service.RematchResult, error)
	MakeMoveFunc       func(ctx context.Context, sessionID string, cell int, connID string) (*service.MoveResult, error)
	SendMessageFunc    func(ctx context.Context, sessionID, message, senderName, senderID string) (*service.ChatResult, error)
	GetSessionFunc     func(ctx context.Context, sessionID string) (*service.SessionInfo, error)
	ListSessionsFunc   func(ctx context.Context) ([]*service.SessionInfo, error)
	DeleteSessionFunc  func(ctx context.Context, sessionID string) error
}

func (m *MockGameService) CreateSession(ctx context.Context, displayName, connID string) (*service.CreateResult, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, displayName, connID)
	}
	return &service.CreateResult{SessionID: "test01", DisplayName: displayName, Symbol: engine.SymbolX}, nil
}

func (m *MockGameService) JoinSession(ctx context.Context, sessionID, displayName, connID string) (*service.JoinResult, error) {
	if m.JoinSessionFunc != nil {
		return m.JoinSessionFunc(ctx, sessionID, displayName, connID)
	}
	return &service.JoinResult{SessionID: sessionID, Symbol: engine.SymbolO}, nil
}

func (m *MockGameService) Leave(ctx context.Context, sessionID, connID string) (*service.LeaveResult, error) {
	if m.LeaveFunc != nil {
		return m.LeaveFunc(ctx, sessionID, connID)
	}
	return &service.LeaveResult{SessionID: sessionID}, nil
}

func (m *MockGameService) Disconnect(ctx context.Context, connID string) (*service.LeaveResult, error) {
	if m.DisconnectFunc != nil {
		return m.DisconnectFunc(ctx, connID)
	}
	return &service.LeaveResult{}, nil
}

func (m *MockGameService) RequestRematch(ctx context.Context, sessionID string) (*service.RematchResult, error) {
	if m.RequestRematchFunc != nil {
		return m.RequestRematchFunc(ctx, sessionID)
	}
	return &service.RematchResult{SessionID: sessionID, CurrentPlayer: engine.SymbolX}, nil
}

func (m *MockGameService) MakeMove(ctx context.Context, sessionID string, cell int, connID string) (*service.MoveResult, error) {
	if m.MakeMoveFunc != nil {
		return m.MakeMoveFunc(ctx, sessionID, cell, connID)
	}
	return &service.MoveResult{SessionID: sessionID}, nil
}

func (m *MockGameService) SendMessage(ctx context.Context, sessionID, message, senderName, senderID string) (*service.ChatResult, error) {
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, sessionID, message, senderName, senderID)
	}
	return &service.ChatResult{Delivered: true}, nil
}

func (m *MockGameService) GetSession(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, sessionID)
	}
	return &service.SessionInfo{
		ID:            sessionID,
		Status:        engine.StatusWaiting,
		CurrentPlayer: engine.SymbolX,
		CreatedAt:     time.Now(),
	}, nil
}

func (m *MockGameService) ListSessions(ctx context.Context) ([]*service.SessionInfo, error) {
	if m.ListSessionsFunc != nil {
		return m.ListSessionsFunc(ctx)
	}
	return []*service.SessionInfo{}, nil
}

func (m *MockGameService) DeleteSession(ctx context.Context, sessionID string) error {
	if m.DeleteSessionFunc != nil {
		return m.DeleteSessionFunc(ctx, sessionID)
	}
	return nil
}

// Test helpers
func setupTestServer(mockService *MockGameService) *Server {
	hub := websocket.NewHub()
	go hub.Run()
	return NewServer(mockService, hub, "test")
}

func TestListSessions(t *testing.T) {
	now := time.Now()
	mock := &MockGameService{
		ListSessionsFunc: func(ctx context.Context) ([]*service.SessionInfo, error) {
			return []*service.SessionInfo{
				{ID: "old", CreatedAt: now.Add(-time.Hour), LastAccessedAt: now.Add(-time.Hour)},
				{ID: "new", CreatedAt: now, LastAccessedAt: now},
			}, nil
		},
	}
	server := setupTestServer(mock)

	t.Run("default order is most recent first", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/sessions", nil)
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}

		var resp struct {
			Count    int                    `json:"count"`
			Sessions []*service.SessionInfo `json:"sessions"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Count != 2 {
			t.Errorf("Expected 2 sessions, got %d", resp.Count)
		}
		if resp.Sessions[0].ID != "new" {
			t.Errorf("Expected most recent session first, got '%s'", resp.Sessions[0].ID)
		}
	})

	t.Run("limit", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/sessions?limit=1", nil)
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)

		var resp struct {
			Count int `json:"count"`
		}
		json.NewDecoder(rec.Body).Decode(&resp)
		if resp.Count != 1 {
			t.Errorf("Expected 1 session, got %d", resp.Count)
		}
	})
}

func TestGetSession(t *testing.T) {
	t.Run("existing session", func(t *testing.T) {
		server := setupTestServer(&MockGameService{})

		req := httptest.NewRequest("GET", "/api/sessions/abc123", nil)
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}

		var info service.SessionInfo
		if err := json.NewDecoder(rec.Body).Decode(&info); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if info.ID != "abc123" {
			t.Errorf("Expected session 'abc123', got '%s'", info.ID)
		}
	})

	t.Run("missing session", func(t *testing.T) {
		server := setupTestServer(&MockGameService{
			GetSessionFunc: func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
				return nil, errors.New("session not found")
			},
		})

		req := httptest.NewRequest("GET", "/api/sessions/missing", nil)
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", rec.Code)
		}
	})
}

func TestGetGameState(t *testing.T) {
	server := setupTestServer(&MockGameService{
		GetSessionFunc: func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
			return &service.SessionInfo{
				ID:            sessionID,
				Board:         engine.Board{engine.SymbolX, "", "", "", engine.SymbolO, "", "", "", ""},
				CurrentPlayer: engine.SymbolX,
				Status:        engine.StatusInProgress,
			}, nil
		},
	})

	req := httptest.NewRequest("GET", "/api/sessions/abc123/state", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var state struct {
		SessionID     string   `json:"sessionId"`
		Board         []string `json:"board"`
		CurrentPlayer string   `json:"currentPlayer"`
		Status        string   `json:"status"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&state); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if state.SessionID != "abc123" {
		t.Errorf("Expected sessionId 'abc123', got '%s'", state.SessionID)
	}
	if len(state.Board) != 9 {
		t.Errorf("Expected 9-cell board, got %d", len(state.Board))
	}
	if state.Board[0] != "X" || state.Board[4] != "O" {
		t.Error("Board not correctly transmitted")
	}
	if state.Status != "in-progress" {
		t.Errorf("Expected status in-progress, got '%s'", state.Status)
	}
}

func TestDeleteSession(t *testing.T) {
	t.Run("existing session", func(t *testing.T) {
		deleted := ""
		server := setupTestServer(&MockGameService{
			DeleteSessionFunc: func(ctx context.Context, sessionID string) error {
				deleted = sessionID
				return nil
			},
		})

		req := httptest.NewRequest("DELETE", "/api/sessions/abc123", nil)
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		if deleted != "abc123" {
			t.Errorf("Expected 'abc123' to be deleted, got '%s'", deleted)
		}
	})

	t.Run("missing session", func(t *testing.T) {
		server := setupTestServer(&MockGameService{
			DeleteSessionFunc: func(ctx context.Context, sessionID string) error {
				return errors.New("session not found")
			},
		})

		req := httptest.NewRequest("DELETE", "/api/sessions/missing", nil)
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", rec.Code)
		}
	})
}

func TestSessionQR(t *testing.T) {
	t.Run("renders a PNG", func(t *testing.T) {
		server := setupTestServer(&MockGameService{})

		req := httptest.NewRequest("GET", "/api/sessions/abc123/qr", nil)
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
			t.Errorf("Expected image/png, got '%s'", ct)
		}
		if rec.Body.Len() == 0 {
			t.Error("Expected PNG bytes in the body")
		}
	})

	t.Run("missing session", func(t *testing.T) {
		server := setupTestServer(&MockGameService{
			GetSessionFunc: func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
				return nil, errors.New("session not found")
			},
		})

		req := httptest.NewRequest("GET", "/api/sessions/missing/qr", nil)
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", rec.Code)
		}
	})
}

func TestHealth(t *testing.T) {
	server := setupTestServer(&MockGameService{})

	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("Expected status 'healthy', got '%s'", resp.Status)
	}
}

func TestVersion(t *testing.T) {
	server := setupTestServer(&MockGameService{})

	req := httptest.NewRequest("GET", "/version", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp struct {
		Version string `json:"version"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Version != "test" {
		t.Errorf("Expected version 'test', got '%s'", resp.Version)
	}
}
