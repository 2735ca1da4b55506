package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, sessionID string, game entity.Game) error
	GetByID(ctx context.Context, sessionID string) (entity.Game, error)
	DeleteByID(ctx context.Context, sessionID string) error
}

type gameObserver interface {
	ObserveMove(game entity.Game, ignored error)
	ObserveReset()
}

// TurnResult is the state after a move. Ignored is set when the move had no effect.
type TurnResult struct {
	Game    entity.Game
	Ignored error
}

// GameUseCase hosts one game per session and runs the engine on its behalf.
type GameUseCase struct {
	logger   *slog.Logger
	gameRepo gameRepo
	observer gameObserver
	locks    *sessionLocks
}

func NewGameUseCase(logger *slog.Logger, gameRepo gameRepo, observer gameObserver) *GameUseCase {
	return &GameUseCase{
		logger:   logger.With("component", "game"),
		gameRepo: gameRepo,
		observer: observer,
		locks:    newSessionLocks(),
	}
}

// GetGame returns the session's game, starting one if the session has none.
func (that *GameUseCase) GetGame(ctx context.Context, sessionID string) (entity.Game, error) {
	unlock := that.locks.lock(sessionID)
	defer unlock()

	return that.getOrCreateGame(ctx, sessionID)
}

func (that *GameUseCase) MakeTurn(ctx context.Context, sessionID string, cell int) (TurnResult, error) {
	log := that.logger.With("method", "MakeTurn", "sessionID", sessionID, "cell", cell)

	unlock := that.locks.lock(sessionID)
	defer unlock()

	game, err := that.getOrCreateGame(ctx, sessionID)
	if err != nil {
		return TurnResult{}, err
	}

	engine := tictactoe.NewEngineFrom(game)

	game, ignored := engine.TryMove(cell)
	if ignored != nil {
		that.observer.ObserveMove(game, ignored)
		log.Debug("move ignored", "reason", ignored)

		return TurnResult{Game: game, Ignored: ignored}, nil
	}

	if err = that.updateGame(ctx, sessionID, game); err != nil {
		return TurnResult{}, err
	}

	// only stored moves are counted
	that.observer.ObserveMove(game, nil)

	if game.IsFinished() {
		log.Info("game finished", "outcome", game.Outcome)
	}

	return TurnResult{Game: game}, nil
}

// ResetGame replaces the session's game with a new one.
func (that *GameUseCase) ResetGame(ctx context.Context, sessionID string) (entity.Game, error) {
	log := that.logger.With("method", "ResetGame", "sessionID", sessionID)

	unlock := that.locks.lock(sessionID)
	defer unlock()

	game := tictactoe.NewEngine().Reset()
	if err := that.updateGame(ctx, sessionID, game); err != nil {
		return entity.Game{}, err
	}

	that.observer.ObserveReset()
	log.Debug("game reset")

	return game, nil
}

// EndSession drops the session's game.
func (that *GameUseCase) EndSession(ctx context.Context, sessionID string) error {
	unlock := that.locks.lock(sessionID)
	defer unlock()

	err := that.gameRepo.DeleteByID(ctx, sessionID)
	if errors.Is(err, repository.ErrGameNotFound) {
		return fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, sessionID)
	}

	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

func (that *GameUseCase) getOrCreateGame(ctx context.Context, sessionID string) (entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, sessionID)
	if err == nil {
		return game, nil
	}

	if !errors.Is(err, repository.ErrGameNotFound) {
		return entity.Game{}, fmt.Errorf("failed to get game: %w", err)
	}

	game = tictactoe.NewEngine().State()
	if err = that.updateGame(ctx, sessionID, game); err != nil {
		return entity.Game{}, err
	}

	that.logger.Debug("game created", "sessionID", sessionID)

	return game, nil
}

func (that *GameUseCase) updateGame(ctx context.Context, sessionID string, game entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, sessionID, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
