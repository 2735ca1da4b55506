package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// WinCombos lists every line that wins the game when filled with one mark.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// MakeTurn places the current player's mark on cell and returns the next state.
// A rejected move returns the input unchanged together with the reason.
func MakeTurn(game entity.Game, cell int) (entity.Game, error) {
	if err := validateMove(game, cell); err != nil {
		return game, fmt.Errorf("move ignored: %w", err)
	}

	next := game
	next.Board[cell] = game.Turn
	next.Turn = game.Turn.Other()
	next.Outcome = ComputeOutcome(next.Board)

	return next, nil
}

// validateMove - checks if the move is valid.
func validateMove(game entity.Game, cell int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if game.Board[cell] != entity.MarkEmpty {
		return apperror.ErrCellOccupied
	}

	return nil
}

// ComputeOutcome evaluates a board snapshot. A completed line wins even on a full board.
func ComputeOutcome(board entity.Board) entity.Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.MarkEmpty && a == b && b == c {
			return entity.WinOutcome(a)
		}
	}

	// the game will continue until all the squares are full
	if board.IsFull() {
		return entity.OutcomeDraw
	}

	return entity.OutcomeInProgress
}
