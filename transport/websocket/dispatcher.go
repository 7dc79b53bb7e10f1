package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/wisp-games/tictactoe/game/engine"
	"github.com/wisp-games/tictactoe/game/service"
	"github.com/wisp-games/tictactoe/game/session"
)

// Error codes surfaced to clients.
const (
	codeNotFound         = "not_found"
	codeSessionFull      = "session_full"
	codeAlreadyInSession = "already_in_session"
	codeCellTaken        = "cell_taken"
	codeNotYourTurn      = "not_your_turn"
	codeInvalidInput     = "invalid_input"
	codeInternal         = "internal"
)

// Dispatcher routes inbound client events to the game service and maps
// the results onto wire events. It implements Handler.
type Dispatcher struct {
	service  service.GameService
	hub      *Hub
	validate *validator.Validate
}

// NewDispatcher creates a dispatcher bound to a hub and service.
func NewDispatcher(svc service.GameService, hub *Hub) *Dispatcher {
	return &Dispatcher{
		service:  svc,
		hub:      hub,
		validate: validator.New(),
	}
}

// HandleEvent parses and routes one inbound frame. Any failure is
// surfaced to the originating connection only; nothing propagates out of
// the handler.
func (d *Dispatcher) HandleEvent(client *Client, data []byte) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from handler panic: %v", r)
			d.sendError(client, "", codeInternal, "internal error")
		}
	}()

	var ev ClientEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		d.sendError(client, "", codeInvalidInput, "malformed event payload")
		return
	}

	if err := d.validate.Struct(&ev); err != nil {
		d.sendError(client, ev.RequestID, codeInvalidInput, fmt.Sprintf("invalid event payload: %v", err))
		return
	}

	ctx := context.Background()

	switch ev.Type {
	case EventCreateSession:
		d.handleCreate(ctx, client, &ev)
	case EventJoinSession:
		d.handleJoin(ctx, client, &ev)
	case EventMakeMove:
		d.handleMove(ctx, client, &ev)
	case EventChatMessage:
		d.handleChat(ctx, client, &ev)
	case EventRequestRematch:
		d.handleRematch(ctx, client, &ev)
	case EventLeaveSession:
		d.handleLeave(ctx, client, &ev)
	default:
		d.sendError(client, ev.RequestID, codeInvalidInput, fmt.Sprintf("unknown event type: %s", ev.Type))
	}
}

// HandleDisconnect cleans up session membership for a dropped connection.
func (d *Dispatcher) HandleDisconnect(client *Client) {
	result, err := d.service.Disconnect(context.Background(), client.ID())
	if err != nil || result.Left == nil {
		return
	}

	if result.Destroyed {
		d.hub.RemoveGroup(result.SessionID)
		return
	}

	d.hub.Broadcast(result.SessionID, EventPlayerLeft, &PlayerLeftPayload{
		SessionID:   result.SessionID,
		DisplayName: result.Left.DisplayName,
	})
}

func (d *Dispatcher) handleCreate(ctx context.Context, client *Client, ev *ClientEvent) {
	result, err := d.service.CreateSession(ctx, ev.DisplayName, client.ID())
	if err != nil {
		d.sendError(client, ev.RequestID, errorCode(err), err.Error())
		return
	}

	d.hub.JoinGroup(result.SessionID, client)

	d.hub.Send(client, EventSessionCreated, map[string]interface{}{
		"success":     true,
		"sessionId":   result.SessionID,
		"displayName": result.DisplayName,
		"board":       result.Board,
	})
}

func (d *Dispatcher) handleJoin(ctx context.Context, client *Client, ev *ClientEvent) {
	result, err := d.service.JoinSession(ctx, ev.SessionID, ev.DisplayName, client.ID())
	if err != nil {
		d.sendError(client, ev.RequestID, errorCode(err), err.Error())
		return
	}

	d.hub.JoinGroup(result.SessionID, client)

	// Private acknowledgment first, then the group-wide start event.
	d.hub.Send(client, EventJoinSuccess, map[string]interface{}{
		"symbol":    result.Symbol,
		"sessionId": result.SessionID,
	})

	d.hub.Broadcast(result.SessionID, EventGameStarted, map[string]interface{}{
		"players":       result.Players,
		"board":         result.Board,
		"currentPlayer": result.CurrentPlayer,
		"sessionId":     result.SessionID,
	})
}

func (d *Dispatcher) handleMove(ctx context.Context, client *Client, ev *ClientEvent) {
	if ev.CellIndex == nil {
		d.sendError(client, ev.RequestID, codeInvalidInput, "cellIndex is required")
		return
	}

	result, err := d.service.MakeMove(ctx, ev.SessionID, *ev.CellIndex, client.ID())
	if err != nil {
		d.sendError(client, ev.RequestID, errorCode(err), err.Error())
		return
	}

	d.hub.Broadcast(result.SessionID, EventMoveMade, result)
}

func (d *Dispatcher) handleChat(ctx context.Context, client *Client, ev *ClientEvent) {
	result, err := d.service.SendMessage(ctx, ev.SessionID, ev.Message, ev.DisplayName, client.ID())
	if err != nil || !result.Delivered {
		// Chat is best-effort; a missing session drops the message.
		return
	}

	d.hub.BroadcastExcept(result.SessionID, client, EventChatReceived, result)

	// The sender's echo is labeled as self.
	echo := *result
	echo.SenderName = "You"
	d.hub.Send(client, EventChatReceived, &echo)
}

func (d *Dispatcher) handleRematch(ctx context.Context, client *Client, ev *ClientEvent) {
	result, err := d.service.RequestRematch(ctx, ev.SessionID)
	if err != nil {
		d.hub.Send(client, EventRematchAck, &AckPayload{
			Success:   false,
			RequestID: ev.RequestID,
			Error:     err.Error(),
		})
		return
	}

	d.hub.Send(client, EventRematchAck, &AckPayload{
		Success:   true,
		RequestID: ev.RequestID,
	})

	d.hub.Broadcast(result.SessionID, EventGameRestarted, map[string]interface{}{
		"board":         result.Board,
		"currentPlayer": result.CurrentPlayer,
		"sessionId":     result.SessionID,
	})
}

func (d *Dispatcher) handleLeave(ctx context.Context, client *Client, ev *ClientEvent) {
	result, err := d.service.Leave(ctx, ev.SessionID, client.ID())
	if err != nil {
		return
	}

	d.hub.LeaveGroup(client)

	if result.Destroyed {
		d.hub.RemoveGroup(result.SessionID)
		return
	}

	if result.Left != nil {
		d.hub.Broadcast(result.SessionID, EventPlayerLeft, &PlayerLeftPayload{
			SessionID:   result.SessionID,
			DisplayName: result.Left.DisplayName,
		})
	}
}

func (d *Dispatcher) sendError(client *Client, requestID, code, message string) {
	d.hub.Send(client, EventError, &ErrorPayload{
		Code:      code,
		Error:     message,
		RequestID: requestID,
	})
}

// errorCode maps service and engine errors onto wire codes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return codeNotFound
	case errors.Is(err, service.ErrSessionFull):
		return codeSessionFull
	case errors.Is(err, service.ErrAlreadyInSession):
		return codeAlreadyInSession
	case errors.Is(err, engine.ErrCellTaken):
		return codeCellTaken
	case errors.Is(err, engine.ErrNotYourTurn):
		return codeNotYourTurn
	case errors.Is(err, engine.ErrInvalidCell):
		return codeInvalidInput
	default:
		return codeInternal
	}
}
