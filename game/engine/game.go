package engine

import "errors"

var (
	ErrInvalidCell = errors.New("cell index out of range")
	ErrCellTaken   = errors.New("cell already taken")
	ErrNotYourTurn = errors.New("not your turn")
)

// Status tracks where a match is in its lifecycle.
type Status string

const (
	StatusWaiting    Status = "waiting"
	StatusInProgress Status = "in-progress"
	StatusFinished   Status = "finished"
)

// Game is the state machine for a single match. It knows nothing about
// connections or sessions; the service layer maps participants onto symbols.
type Game struct {
	Board         Board  `json:"board"`
	CurrentPlayer Symbol `json:"currentPlayer"`
	Status        Status `json:"status"`
	Winner        Winner `json:"winner"`
}

// NewGame returns a match waiting for its second player. X always opens.
func NewGame() *Game {
	return &Game{
		CurrentPlayer: SymbolX,
		Status:        StatusWaiting,
	}
}

// Start marks the match in progress once both players are seated.
func (g *Game) Start() {
	g.Status = StatusInProgress
}

// IsFinished reports whether the match has been decided.
func (g *Game) IsFinished() bool {
	return g.Winner != WinnerNone
}

// ApplyMove writes symbol into the given cell after validating the move.
// Checks run in a fixed order and the first failure wins: bounds, cell
// occupancy, then turn ownership (a finished match accepts no move, and an
// unrecognized mover arrives here as Empty, which never matches the turn).
//
// On success the outcome is re-evaluated: a win records the winner and
// freezes the turn, a tie records WinnerTie, otherwise the turn flips.
func (g *Game) ApplyMove(symbol Symbol, cell int) error {
	if cell < 0 || cell >= BoardSize {
		return ErrInvalidCell
	}
	if g.Board[cell] != Empty {
		return ErrCellTaken
	}
	if g.IsFinished() || symbol == Empty || symbol != g.CurrentPlayer {
		return ErrNotYourTurn
	}

	g.Board[cell] = symbol

	switch outcome := Evaluate(g.Board); outcome {
	case WinnerNone:
		g.CurrentPlayer = g.CurrentPlayer.Other()
	default:
		g.Winner = outcome
		g.Status = StatusFinished
	}

	return nil
}

// Reset clears the match for a rematch: empty board, X to open, no winner,
// status in progress. Player seating is owned by the service layer and is
// untouched.
func (g *Game) Reset() {
	g.Board = Board{}
	g.CurrentPlayer = SymbolX
	g.Winner = WinnerNone
	g.Status = StatusInProgress
}
