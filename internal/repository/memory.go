package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/clueless-backend/internal/apperror"
	"github.com/rocketscienceinc/clueless-backend/internal/entity"
)

// memoryGame - process local storage for a single server and for tests. Stored games are
// copies, so callers can never mutate what is saved.
type memoryGame struct {
	mu        sync.RWMutex
	games     map[string]*entity.Game
	joinCodes map[string]string
}

func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games:     make(map[string]*entity.Game),
		joinCodes: make(map[string]string),
	}
}

func (that *memoryGame) Create(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[game.ID]; ok {
		return fmt.Errorf("%w: %s", apperror.ErrGameExists, game.ID)
	}

	game.Version = 1
	that.games[game.ID] = game.Clone()

	if game.JoinCode != "" {
		that.joinCodes[game.JoinCode] = game.ID
	}

	return nil
}

func (that *memoryGame) Save(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	current, ok := that.games[game.ID]
	if !ok {
		return apperror.ErrGameNotFound
	}

	if current.Version != game.Version {
		return fmt.Errorf("%w: stored %d, saving %d", apperror.ErrVersionConflict, current.Version, game.Version)
	}

	game.Version++
	that.games[game.ID] = game.Clone()

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	return game.Clone(), nil
}

func (that *memoryGame) GetByJoinCode(ctx context.Context, code string) (*entity.Game, error) {
	that.mu.RLock()
	id, ok := that.joinCodes[code]
	that.mu.RUnlock()

	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	return that.GetByID(ctx, id)
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if game, ok := that.games[id]; ok {
		delete(that.joinCodes, game.JoinCode)
	}

	delete(that.games, id)

	return nil
}

type memoryPlayer struct {
	mu       sync.RWMutex
	sessions map[string]entity.PlayerSession
}

func NewMemoryPlayerRepository() PlayerRepository {
	return &memoryPlayer{
		sessions: make(map[string]entity.PlayerSession),
	}
}

func (that *memoryPlayer) CreateOrUpdate(_ context.Context, session *entity.PlayerSession) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[session.ID] = *session

	return nil
}

func (that *memoryPlayer) GetByID(_ context.Context, id string) (*entity.PlayerSession, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	session, ok := that.sessions[id]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	return &session, nil
}
