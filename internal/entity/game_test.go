package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame()

	// Then: the board is empty, X moves first and the game is in progress
	expectedGame := Game{
		Board:   Board{MarkEmpty, MarkEmpty, MarkEmpty, MarkEmpty, MarkEmpty, MarkEmpty, MarkEmpty, MarkEmpty, MarkEmpty},
		Turn:    MarkX,
		Outcome: OutcomeInProgress,
	}

	require.Equal(t, expectedGame, game)
	assert.False(t, game.IsFinished())
}

func TestMark_Other(t *testing.T) {
	assert.Equal(t, MarkO, MarkX.Other())
	assert.Equal(t, MarkX, MarkO.Other())
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Empty board is not full", func(t *testing.T) {
		assert.False(t, Board{}.IsFull())
	})

	t.Run("Board with one empty cell is not full", func(t *testing.T) {
		board := Board{MarkX, MarkO, MarkX, MarkO, MarkX, MarkO, MarkO, MarkX, MarkEmpty}
		assert.False(t, board.IsFull())
	})

	t.Run("Board with every cell filled is full", func(t *testing.T) {
		board := Board{MarkX, MarkO, MarkX, MarkO, MarkX, MarkO, MarkO, MarkX, MarkO}
		assert.True(t, board.IsFull())
	})
}

func TestGame_Winner(t *testing.T) {
	t.Run("X wins", func(t *testing.T) {
		assert.Equal(t, MarkX, Game{Outcome: OutcomeXWins}.Winner())
	})

	t.Run("O wins", func(t *testing.T) {
		assert.Equal(t, MarkO, Game{Outcome: OutcomeOWins}.Winner())
	})

	t.Run("Draw has no winner", func(t *testing.T) {
		game := Game{Outcome: OutcomeDraw}

		assert.Equal(t, MarkEmpty, game.Winner())
		assert.True(t, game.IsFinished())
	})

	t.Run("In progress has no winner", func(t *testing.T) {
		assert.Equal(t, MarkEmpty, NewGame().Winner())
	})
}

func TestGame_JSON(t *testing.T) {
	// Given: a game after X played the center
	game := NewGame()
	game.Board[4] = MarkX
	game.Turn = MarkO

	// When: it is encoded for the transports
	data, err := json.Marshal(game)
	require.NoError(t, err)

	// Then: empty cells are empty strings and the field names are stable
	assert.JSONEq(t, `{"board":["","","","","X","","","",""],"turn":"O","outcome":"in_progress"}`, string(data))
}
