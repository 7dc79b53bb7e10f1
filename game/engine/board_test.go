package engine

import "testing"

func TestEvaluate_Wins(t *testing.T) {
	x := SymbolX
	o := SymbolO

	tests := []struct {
		name  string
		board Board
		want  Winner
	}{
		{"top row X", Board{x, x, x, Empty, o, o, Empty, Empty, Empty}, WinnerX},
		{"middle row O", Board{x, x, Empty, o, o, o, x, Empty, Empty}, WinnerO},
		{"bottom row X", Board{Empty, o, o, Empty, Empty, Empty, x, x, x}, WinnerX},
		{"left column X", Board{x, o, Empty, x, o, Empty, x, Empty, Empty}, WinnerX},
		{"middle column O", Board{x, o, Empty, x, o, Empty, Empty, o, x}, WinnerO},
		{"right column X", Board{o, Empty, x, o, Empty, x, Empty, Empty, x}, WinnerX},
		{"main diagonal X", Board{x, o, Empty, o, x, Empty, Empty, Empty, x}, WinnerX},
		{"anti diagonal O", Board{x, x, o, x, o, Empty, o, Empty, Empty}, WinnerO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.board); got != tt.want {
				t.Errorf("Evaluate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvaluate_Tie(t *testing.T) {
	x := SymbolX
	o := SymbolO

	// Full board, no uniform triple.
	board := Board{x, o, x, x, o, o, o, x, x}

	if got := Evaluate(board); got != WinnerTie {
		t.Errorf("Evaluate() = %q, want %q", got, WinnerTie)
	}
}

func TestEvaluate_None(t *testing.T) {
	x := SymbolX
	o := SymbolO

	tests := []struct {
		name  string
		board Board
	}{
		{"empty board", Board{}},
		{"open midgame", Board{x, o, Empty, Empty, x, Empty, Empty, Empty, o}},
		{"one move", Board{Empty, Empty, Empty, Empty, x, Empty, Empty, Empty, Empty}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.board); got != WinnerNone {
				t.Errorf("Evaluate() = %q, want %q", got, WinnerNone)
			}
		})
	}
}

func TestBoardIsFull(t *testing.T) {
	x := SymbolX
	o := SymbolO

	if (Board{}).IsFull() {
		t.Error("empty board reported full")
	}

	full := Board{x, o, x, x, o, o, o, x, x}
	if !full.IsFull() {
		t.Error("full board not reported full")
	}

	almost := full
	almost[8] = Empty
	if almost.IsFull() {
		t.Error("board with one empty cell reported full")
	}
}

func TestSymbolOther(t *testing.T) {
	if SymbolX.Other() != SymbolO {
		t.Error("X.Other() should be O")
	}
	if SymbolO.Other() != SymbolX {
		t.Error("O.Other() should be X")
	}
	if Empty.Other() != Empty {
		t.Error("Empty.Other() should stay Empty")
	}
}
