// Package render turns a game state into text for status lines and terminals.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// Status returns the line shown above the board.
func Status(game entity.Game) string {
	switch game.Outcome {
	case entity.OutcomeDraw:
		return "It's a tie!"
	case entity.OutcomeXWins, entity.OutcomeOWins:
		return fmt.Sprintf("Player %s wins!", game.Winner())
	default:
		return fmt.Sprintf("Player %s's turn", game.Turn)
	}
}

// Board draws the grid. Empty cells show their index so they can be typed in.
func Board(game entity.Game) string {
	var sb strings.Builder

	for row := range 3 {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}

		for col := range 3 {
			if col > 0 {
				sb.WriteString("|")
			}

			cell := row*3 + col
			symbol := string(game.Board[cell])
			if game.Board[cell] == entity.MarkEmpty {
				symbol = strconv.Itoa(cell)
			}

			sb.WriteString(" " + symbol + " ")
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

// Screen is the board followed by the status line.
func Screen(game entity.Game) string {
	return Board(game) + "\n" + Status(game) + "\n"
}

// View is the state snapshot sent to browser and websocket clients.
type View struct {
	Game    entity.Game `json:"game"`
	Status  string      `json:"status"`
	Ignored string      `json:"ignored,omitempty"`
}

// NewView describes game. ignored is the reason the last move had no effect, if any.
func NewView(game entity.Game, ignored error) View {
	return View{
		Game:    game,
		Status:  Status(game),
		Ignored: apperror.Reason(ignored),
	}
}
