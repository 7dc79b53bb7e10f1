package engine

// Symbol identifies which player owns a cell. The zero value is an
// unclaimed cell.
type Symbol string

const (
	Empty   Symbol = ""
	SymbolX Symbol = "X"
	SymbolO Symbol = "O"
)

// Other returns the opposing symbol. Empty maps to itself.
func (s Symbol) Other() Symbol {
	switch s {
	case SymbolX:
		return SymbolO
	case SymbolO:
		return SymbolX
	default:
		return Empty
	}
}

// BoardSize is the number of cells on the grid.
const BoardSize = 9

// Board is a 3x3 grid in row-major order: index = row*3 + column.
type Board [BoardSize]Symbol

// IsFull reports whether no empty cell remains.
func (b Board) IsFull() bool {
	for _, cell := range b {
		if cell == Empty {
			return false
		}
	}
	return true
}

// Winner is the decided outcome of a board. WinnerNone means the match is
// still open.
type Winner string

const (
	WinnerNone Winner = ""
	WinnerX    Winner = "X"
	WinnerO    Winner = "O"
	WinnerTie  Winner = "Tie"
)

// winningLines lists the 8 cell triples checked for a win, in the fixed
// order rows, columns, diagonals.
var winningLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluate returns the outcome of a board: the winning symbol if any triple
// is uniformly claimed, WinnerTie if the board is full with no winner, and
// WinnerNone otherwise. Pure function, no side effects.
func Evaluate(b Board) Winner {
	for _, line := range winningLines {
		first := b[line[0]]
		if first != Empty && first == b[line[1]] && first == b[line[2]] {
			return Winner(first)
		}
	}

	if b.IsFull() {
		return WinnerTie
	}

	return WinnerNone
}
