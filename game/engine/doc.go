// Package engine provides the core game logic for two-player tic-tac-toe.
//
// The engine package implements the game mechanics including:
//   - Board representation and cell ownership
//   - Win and tie detection over rows, columns, and diagonals
//   - Move validation and turn alternation
//   - Game status transitions and rematch resets
//
// Core Types:
//
// Board is a 9-cell grid in row-major order. Game is the per-match state
// machine holding the board, the symbol whose turn it is, the match status,
// and the winner once the match is decided. Evaluate is the pure outcome
// function over a board.
//
// Usage:
//
//	game := engine.NewGame()
//	game.Start()
//
//	if err := game.ApplyMove(engine.SymbolX, 4); err != nil {
//		log.Fatal(err)
//	}
//
//	if game.Winner != engine.WinnerNone {
//		// match decided
//	}
//
// Game Rules:
//
// The first player is always X and X always moves first. A move claims an
// empty cell for the mover's symbol; cells never change owner within a game.
// Three equal symbols across a row, column, or diagonal win the match; a
// full board with no winner is a tie. Once a winner (or tie) is recorded no
// further moves are accepted until Reset starts a rematch with the same
// players.
package engine
