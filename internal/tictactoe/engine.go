package tictactoe

import "github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"

// Engine owns the live state of a single match. Callers must not share one
// Engine between goroutines without their own serialization.
type Engine struct {
	game entity.Game
}

func NewEngine() *Engine {
	return &Engine{game: entity.NewGame()}
}

// NewEngineFrom resumes a match from a previously saved state.
func NewEngineFrom(game entity.Game) *Engine {
	return &Engine{game: game}
}

// State returns a copy of the current state.
func (that *Engine) State() entity.Game {
	return that.game
}

// ApplyMove plays cell for the player whose turn it is.
// Clicking an occupied cell or playing after the game is decided has no effect.
func (that *Engine) ApplyMove(cell int) entity.Game {
	game, _ := that.TryMove(cell)
	return game
}

// TryMove behaves like ApplyMove but also reports why a move was ignored.
func (that *Engine) TryMove(cell int) (entity.Game, error) {
	next, err := MakeTurn(that.game, cell)
	if err != nil {
		return that.game, err
	}

	that.game = next

	return that.game, nil
}

// Reset starts a new match.
func (that *Engine) Reset() entity.Game {
	that.game = entity.NewGame()
	return that.game
}
