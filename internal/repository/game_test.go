package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/testing/suite"
)

const sessionTTL = time.Hour

type repoFactory func(t *testing.T) (context.Context, GameRepository)

func redisRepo(t *testing.T) (context.Context, GameRepository) {
	ctx, st := suite.New(t)
	return ctx, NewGameRepository(st.Storage, sessionTTL)
}

func memoryRepo(t *testing.T) (context.Context, GameRepository) {
	gameRepo := NewMemoryGameRepository(sessionTTL)
	t.Cleanup(func() { _ = gameRepo.Close() })

	return context.Background(), gameRepo
}

func TestGameRepository(t *testing.T) {
	for name, factory := range map[string]repoFactory{
		"redis":  redisRepo,
		"memory": memoryRepo,
	} {
		t.Run(name, func(t *testing.T) {
			testGameRepository(t, factory)
		})
	}
}

func testGameRepository(t *testing.T, newRepo repoFactory) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// Given: a game saved after X took the center
		game := entity.NewGame()
		game.Board[4] = entity.MarkX
		game.Turn = entity.MarkO

		err := gameRepo.CreateOrUpdate(ctx, "session-1", game)
		require.NoError(t, err)

		// When: GetByID is called with the session id
		retrievedGame, err := gameRepo.GetByID(ctx, "session-1")

		// Then: the stored game comes back as saved
		require.NoError(t, err)
		assert.Equal(t, game, retrievedGame)
	})

	t.Run("CreateOrUpdate_Overwrites", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// Given: a finished game saved for a session
		finished := entity.Game{
			Board:   entity.Board{entity.MarkX, entity.MarkX, entity.MarkX},
			Turn:    entity.MarkO,
			Outcome: entity.OutcomeXWins,
		}
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, "session-1", finished))

		// When: the session is reset and saved again
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, "session-1", entity.NewGame()))

		// Then: only the fresh game is kept
		retrievedGame, err := gameRepo.GetByID(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, entity.NewGame(), retrievedGame)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// When: GetByID is called with an unknown session
		retrievedGame, err := gameRepo.GetByID(ctx, "9999999")

		// Then: ErrGameNotFound is returned
		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Equal(t, entity.Game{}, retrievedGame)
	})

	t.Run("Sessions are isolated", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		game := entity.NewGame()
		game.Board[0] = entity.MarkX
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, "a", game))
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, "b", entity.NewGame()))

		retrieved, err := gameRepo.GetByID(ctx, "b")
		require.NoError(t, err)
		assert.Equal(t, entity.NewGame(), retrieved)
	})

	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// Given: a stored game
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, "session-1", entity.NewGame()))

		// When: DeleteByID is called
		err := gameRepo.DeleteByID(ctx, "session-1")

		// Then: the game is gone
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, "session-1")
		require.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// When: DeleteByID is called with an unknown session
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: ErrGameNotFound is returned
		require.ErrorIs(t, err, ErrGameNotFound)
	})
}

func TestGameRepository_RedisExpiresWithSession(t *testing.T) {
	ctx, st := suite.New(t)
	gameRepo := NewGameRepository(st.Storage, sessionTTL)

	// Given: a stored game
	require.NoError(t, gameRepo.CreateOrUpdate(ctx, "session-1", entity.NewGame()))

	// When: the session lifetime passes
	st.FastForward(sessionTTL + time.Second)

	// Then: the game is no longer there
	_, err := gameRepo.GetByID(ctx, "session-1")
	require.ErrorIs(t, err, ErrGameNotFound)
}

func TestMemoryGameRepository_ExpiresWithSession(t *testing.T) {
	ctx := context.Background()

	const shortTTL = 50 * time.Millisecond

	gameRepo := NewMemoryGameRepository(shortTTL)
	t.Cleanup(func() { _ = gameRepo.Close() })

	// Given: a stored game
	require.NoError(t, gameRepo.CreateOrUpdate(ctx, "session-1", entity.NewGame()))

	// When: the session lifetime passes
	// Then: the game is no longer there
	require.Eventually(t, func() bool {
		_, err := gameRepo.GetByID(ctx, "session-1")
		return errors.Is(err, ErrGameNotFound)
	}, time.Second, 10*time.Millisecond)

	// Then: deleting it reports it as missing
	require.ErrorIs(t, gameRepo.DeleteByID(ctx, "session-1"), ErrGameNotFound)
}

func TestMemoryGameRepository_SweepsExpiredGames(t *testing.T) {
	ctx := context.Background()

	const shortTTL = 50 * time.Millisecond

	gameRepo := NewMemoryGameRepository(shortTTL)
	t.Cleanup(func() { _ = gameRepo.Close() })

	// Given: many sessions that are never read again
	for i := range 1000 {
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, fmt.Sprintf("session-%d", i), entity.NewGame()))
	}

	require.Equal(t, 1000, gameRepo.Len())

	// Then: they are all released once their lifetime passes
	require.Eventually(t, func() bool {
		return gameRepo.Len() == 0
	}, 2*time.Second, 20*time.Millisecond)
}

func TestMemoryGameRepository_SaveExtendsLifetime(t *testing.T) {
	ctx := context.Background()

	const shortTTL = 400 * time.Millisecond

	gameRepo := NewMemoryGameRepository(shortTTL)
	t.Cleanup(func() { _ = gameRepo.Close() })

	// Given: a game saved and saved again before it expires
	require.NoError(t, gameRepo.CreateOrUpdate(ctx, "session-1", entity.NewGame()))
	time.Sleep(shortTTL / 2)
	require.NoError(t, gameRepo.CreateOrUpdate(ctx, "session-1", entity.NewGame()))
	time.Sleep(shortTTL * 3 / 4)

	// Then: it is still there after the first save's lifetime has passed
	_, err := gameRepo.GetByID(ctx, "session-1")
	require.NoError(t, err)
}
