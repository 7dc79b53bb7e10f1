package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wisp-games/tictactoe/game/engine"
	"github.com/wisp-games/tictactoe/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Tic-Tac-Toe Live",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Tic-Tac-Toe Live - MCP Interface

This is a thin observer client that proxies all requests to the REST API
server. Gameplay happens over WebSocket connections between two human
players; these tools inspect live sessions without participating.

AVAILABLE TOOLS:
- list_sessions: List all active game sessions
- get_session: Get session details including the players
- game_state: Get a session's board, turn, and outcome
- game_instructions: Get the game rules and event protocol`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session, including its players",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current board, turn, and outcome of a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the game rules and event protocol",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (%s, players: %d, created: %s)\n",
			s.ID, s.Status, len(s.Players), s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var sess service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &sess)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&sess)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state struct {
		SessionID     string        `json:"sessionId"`
		Board         engine.Board  `json:"board"`
		CurrentPlayer engine.Symbol `json:"currentPlayer"`
		Status        engine.Status `json:"status"`
		Winner        engine.Winner `json:"winner"`
	}
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(state.Board, state.CurrentPlayer, state.Status, state.Winner)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Tic-Tac-Toe Live - Rules and Protocol

GAME RULES:
- Two players share a 3x3 board. The session creator is X, the joiner is O.
- X always moves first. Players alternate claiming empty cells.
- Cells are addressed by index 0-8 in row-major order:
    0 | 1 | 2
    3 | 4 | 5
    6 | 7 | 8
- Three equal symbols across a row, column, or diagonal win.
- A full board with no winner is a tie.
- After a win or tie, no moves are accepted until a rematch resets the
  board with the same players and symbols.

SESSIONS:
- Sessions are identified by short shareable IDs and live in memory only.
- A session is created with one player and starts when a second joins.
- A connection belongs to at most one session at a time.
- The session is destroyed when its last player leaves or disconnects.

PROTOCOL (WebSocket at /ws):
- Inbound: create_session, join_session, make_move, chat_message,
  request_rematch, leave_session.
- Outbound: session_created, join_success, game_started, move_made,
  chat_message, rematch_ack, game_restarted, player_left, error.
- Errors carry a machine-friendly code: not_found, session_full,
  already_in_session, cell_taken, not_your_turn, invalid_input, internal.

These MCP tools observe sessions through the REST API and cannot play.`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(sess *service.SessionInfo) string {
	var players strings.Builder
	for _, p := range sess.Players {
		mark := ""
		if p.Disconnected {
			mark = " (disconnected)"
		}
		players.WriteString(fmt.Sprintf("- %s: %s%s\n", p.Symbol, p.DisplayName, mark))
	}
	if players.Len() == 0 {
		players.WriteString("(none)\n")
	}

	return fmt.Sprintf("Session: %s\nStatus: %s\nCreated: %s\n\nPlayers:\n%s\n%s",
		sess.ID, sess.Status,
		sess.CreatedAt.Format("2006-01-02 15:04:05"),
		players.String(),
		formatGameState(sess.Board, sess.CurrentPlayer, sess.Status, sess.Winner))
}

func formatGameState(board engine.Board, current engine.Symbol, status engine.Status, winner engine.Winner) string {
	var result strings.Builder

	cell := func(i int) string {
		if board[i] == engine.Empty {
			return " "
		}
		return string(board[i])
	}

	for row := 0; row < 3; row++ {
		i := row * 3
		result.WriteString(fmt.Sprintf(" %s | %s | %s \n", cell(i), cell(i+1), cell(i+2)))
		if row < 2 {
			result.WriteString("---+---+---\n")
		}
	}

	switch {
	case winner == engine.WinnerTie:
		result.WriteString("\nResult: tie")
	case winner != engine.WinnerNone:
		result.WriteString(fmt.Sprintf("\nWinner: %s", winner))
	case status == engine.StatusWaiting:
		result.WriteString("\nWaiting for a second player")
	default:
		result.WriteString(fmt.Sprintf("\nTurn: %s", current))
	}

	return result.String()
}
