package repository

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// MemoryGameRepository keeps games in process memory. State is lost on restart.
type MemoryGameRepository struct {
	games *ttlcache.Cache[string, entity.Game]
}

// NewMemoryGameRepository expires a game ttl after its last save, like the redis store does.
// Expired games are swept in the background until Close is called.
func NewMemoryGameRepository(ttl time.Duration) *MemoryGameRepository {
	games := ttlcache.New[string, entity.Game](
		ttlcache.WithTTL[string, entity.Game](ttl),
		ttlcache.WithDisableTouchOnHit[string, entity.Game](),
	)

	go games.Start()

	return &MemoryGameRepository{games: games}
}

func (that *MemoryGameRepository) CreateOrUpdate(_ context.Context, sessionID string, game entity.Game) error {
	that.games.Set(sessionID, game, ttlcache.DefaultTTL)

	return nil
}

func (that *MemoryGameRepository) GetByID(_ context.Context, sessionID string) (entity.Game, error) {
	item := that.games.Get(sessionID)
	if item == nil {
		return entity.Game{}, ErrGameNotFound
	}

	return item.Value(), nil
}

func (that *MemoryGameRepository) DeleteByID(_ context.Context, sessionID string) error {
	if that.games.Get(sessionID) == nil {
		return ErrGameNotFound
	}

	that.games.Delete(sessionID)

	return nil
}

// Len reports how many games are held, expired ones included until the sweep removes them.
func (that *MemoryGameRepository) Len() int {
	return that.games.Len()
}

// Close stops the background sweep.
func (that *MemoryGameRepository) Close() error {
	that.games.Stop()

	return nil
}
