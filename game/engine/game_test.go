package engine

import (
	"errors"
	"testing"
)

func TestNewGame(t *testing.T) {
	game := NewGame()

	if game.Status != StatusWaiting {
		t.Errorf("Expected status %q, got %q", StatusWaiting, game.Status)
	}
	if game.CurrentPlayer != SymbolX {
		t.Errorf("Expected X to open, got %q", game.CurrentPlayer)
	}
	if game.Winner != WinnerNone {
		t.Errorf("Expected no winner, got %q", game.Winner)
	}
	for i, cell := range game.Board {
		if cell != Empty {
			t.Errorf("Expected cell %d empty, got %q", i, cell)
		}
	}
}

func TestGameApplyMove_Validation(t *testing.T) {
	t.Run("out of range cell", func(t *testing.T) {
		game := NewGame()
		game.Start()

		if err := game.ApplyMove(SymbolX, 9); !errors.Is(err, ErrInvalidCell) {
			t.Errorf("Expected ErrInvalidCell, got %v", err)
		}
		if err := game.ApplyMove(SymbolX, -1); !errors.Is(err, ErrInvalidCell) {
			t.Errorf("Expected ErrInvalidCell, got %v", err)
		}
	})

	t.Run("occupied cell", func(t *testing.T) {
		game := NewGame()
		game.Start()

		if err := game.ApplyMove(SymbolX, 4); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if err := game.ApplyMove(SymbolO, 4); !errors.Is(err, ErrCellTaken) {
			t.Errorf("Expected ErrCellTaken, got %v", err)
		}
		if game.Board[4] != SymbolX {
			t.Errorf("Board changed on rejected move: %q", game.Board[4])
		}
	})

	t.Run("occupied cell checked before turn", func(t *testing.T) {
		game := NewGame()
		game.Start()
		game.ApplyMove(SymbolX, 0)

		// X is out of turn AND the cell is taken; occupancy wins.
		if err := game.ApplyMove(SymbolX, 0); !errors.Is(err, ErrCellTaken) {
			t.Errorf("Expected ErrCellTaken, got %v", err)
		}
	})

	t.Run("wrong turn", func(t *testing.T) {
		game := NewGame()
		game.Start()

		if err := game.ApplyMove(SymbolO, 0); !errors.Is(err, ErrNotYourTurn) {
			t.Errorf("Expected ErrNotYourTurn, got %v", err)
		}
	})

	t.Run("unrecognized mover", func(t *testing.T) {
		game := NewGame()
		game.Start()

		if err := game.ApplyMove(Empty, 0); !errors.Is(err, ErrNotYourTurn) {
			t.Errorf("Expected ErrNotYourTurn, got %v", err)
		}
	})
}

func TestGameApplyMove_TurnAlternation(t *testing.T) {
	game := NewGame()
	game.Start()

	moves := []struct {
		symbol Symbol
		cell   int
	}{
		{SymbolX, 0},
		{SymbolO, 4},
		{SymbolX, 1},
		{SymbolO, 8},
	}

	for _, m := range moves {
		if game.CurrentPlayer != m.symbol {
			t.Fatalf("Expected %q to move, current player is %q", m.symbol, game.CurrentPlayer)
		}
		if err := game.ApplyMove(m.symbol, m.cell); err != nil {
			t.Fatalf("Unexpected error on move %v: %v", m, err)
		}
	}

	if game.CurrentPlayer != SymbolX {
		t.Errorf("Expected X after four moves, got %q", game.CurrentPlayer)
	}
}

func TestGameApplyMove_Win(t *testing.T) {
	game := NewGame()
	game.Start()

	// X completes the top row.
	game.ApplyMove(SymbolX, 0)
	game.ApplyMove(SymbolO, 4)
	game.ApplyMove(SymbolX, 1)
	game.ApplyMove(SymbolO, 5)
	if err := game.ApplyMove(SymbolX, 2); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if game.Winner != WinnerX {
		t.Errorf("Expected winner X, got %q", game.Winner)
	}
	if game.Status != StatusFinished {
		t.Errorf("Expected status finished, got %q", game.Status)
	}
	if game.CurrentPlayer != SymbolX {
		t.Errorf("Turn should not flip after a win, got %q", game.CurrentPlayer)
	}

	// No further moves once decided.
	if err := game.ApplyMove(SymbolO, 6); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("Expected ErrNotYourTurn after win, got %v", err)
	}
	if err := game.ApplyMove(SymbolX, 6); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("Expected ErrNotYourTurn after win, got %v", err)
	}
}

func TestGameApplyMove_Tie(t *testing.T) {
	game := NewGame()
	game.Start()

	// Fill the board with no triple:
	//  X O X
	//  X O O
	//  O X X
	moves := []struct {
		symbol Symbol
		cell   int
	}{
		{SymbolX, 0},
		{SymbolO, 1},
		{SymbolX, 2},
		{SymbolO, 4},
		{SymbolX, 3},
		{SymbolO, 5},
		{SymbolX, 7},
		{SymbolO, 6},
		{SymbolX, 8},
	}

	for _, m := range moves {
		if err := game.ApplyMove(m.symbol, m.cell); err != nil {
			t.Fatalf("Unexpected error on move %v: %v", m, err)
		}
	}

	if game.Winner != WinnerTie {
		t.Errorf("Expected tie, got %q", game.Winner)
	}
	if game.Status != StatusFinished {
		t.Errorf("Expected status finished, got %q", game.Status)
	}
}

func TestGameReset(t *testing.T) {
	game := NewGame()
	game.Start()

	game.ApplyMove(SymbolX, 0)
	game.ApplyMove(SymbolO, 4)
	game.ApplyMove(SymbolX, 1)
	game.ApplyMove(SymbolO, 5)
	game.ApplyMove(SymbolX, 2) // X wins

	game.Reset()

	if game.Winner != WinnerNone {
		t.Errorf("Expected no winner after reset, got %q", game.Winner)
	}
	if game.CurrentPlayer != SymbolX {
		t.Errorf("Expected X to open after reset, got %q", game.CurrentPlayer)
	}
	if game.Status != StatusInProgress {
		t.Errorf("Expected status in-progress after reset, got %q", game.Status)
	}
	for i, cell := range game.Board {
		if cell != Empty {
			t.Errorf("Expected cell %d empty after reset, got %q", i, cell)
		}
	}

	// The rematch is playable.
	if err := game.ApplyMove(SymbolX, 8); err != nil {
		t.Errorf("Rematch move failed: %v", err)
	}
}
