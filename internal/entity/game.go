package entity

// Mark is what occupies a cell: a player's symbol or nothing.
type Mark string

const (
	MarkX     Mark = "X"
	MarkO     Mark = "O"
	MarkEmpty Mark = ""
)

// Other returns the opponent's mark.
func (that Mark) Other() Mark {
	if that == MarkX {
		return MarkO
	}
	return MarkX
}

// Outcome is derived from the board after every accepted move.
type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeXWins      Outcome = "x_wins"
	OutcomeOWins      Outcome = "o_wins"
	OutcomeDraw       Outcome = "draw"
)

// BoardSize is the number of cells on the 3x3 grid.
const BoardSize = 9

// Board is laid out row-major: index = row*3 + col.
type Board [BoardSize]Mark

// IsFull reports whether no empty cell is left.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == MarkEmpty {
			return false
		}
	}

	return true
}

// Game is the whole state of one session's match.
type Game struct {
	Board   Board   `json:"board"`
	Turn    Mark    `json:"turn"`
	Outcome Outcome `json:"outcome"`
}

func NewGame() Game {
	return Game{
		Turn:    MarkX,
		Outcome: OutcomeInProgress,
	}
}

func (that Game) IsFinished() bool {
	return that.Outcome != OutcomeInProgress
}

// Winner returns the winning mark, or MarkEmpty while in progress or on a draw.
func (that Game) Winner() Mark {
	switch that.Outcome {
	case OutcomeXWins:
		return MarkX
	case OutcomeOWins:
		return MarkO
	default:
		return MarkEmpty
	}
}

// WinOutcome maps a line-completing mark to its outcome.
func WinOutcome(mark Mark) Outcome {
	if mark == MarkX {
		return OutcomeXWins
	}
	return OutcomeOWins
}
