package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/clueless-backend/internal/apperror"
	"github.com/rocketscienceinc/clueless-backend/internal/entity"
	"github.com/rocketscienceinc/clueless-backend/internal/repository/storage"
	"github.com/rocketscienceinc/clueless-backend/testing/suite"
)

type gameRepoFactory func(t *testing.T) (context.Context, GameRepository)

func newSQLiteStorage(t *testing.T) *storage.Storage {
	t.Helper()

	st, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "clueless.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})

	require.NoError(t, st.Init(context.Background()))

	return st
}

func gameRepositories() map[string]gameRepoFactory {
	return map[string]gameRepoFactory{
		"memory": func(_ *testing.T) (context.Context, GameRepository) {
			return context.Background(), NewMemoryGameRepository()
		},
		"sqlite": func(t *testing.T) (context.Context, GameRepository) {
			return context.Background(), NewSQLiteGameRepository(newSQLiteStorage(t).Connection)
		},
		"redis": func(t *testing.T) (context.Context, GameRepository) {
			ctx, st := suite.New(t)
			return ctx, NewGameRepository(st.Storage)
		},
	}
}

func sampleGame(id string) *entity.Game {
	now := time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC)

	game := entity.NewGame(id, entity.GameConfig{Name: "library", MaxPlayers: 6, MinPlayers: 3}, now)
	game.JoinCode = "ABC123"
	game.Players = append(game.Players,
		entity.NewPlayer("p1", "Ann", entity.ColonelMustard),
		entity.NewPlayer("p2", "Bob", entity.MissScarlet),
	)
	game.Players[0].Hand = []entity.Card{entity.Rope, entity.Study}

	return game
}

func TestGameRepository_CreateAndGet(t *testing.T) {
	for name, factory := range gameRepositories() {
		t.Run(name, func(t *testing.T) {
			ctx, repo := factory(t)

			// Given: a new game
			game := sampleGame("123")

			// When: it is created
			err := repo.Create(ctx, game)

			// Then: it is stored at version 1
			require.NoError(t, err)
			assert.Equal(t, uint64(1), game.Version)

			retrievedGame, err := repo.GetByID(ctx, game.ID)
			require.NoError(t, err)
			assert.Equal(t, game, retrievedGame)

			byCode, err := repo.GetByJoinCode(ctx, "ABC123")
			require.NoError(t, err)
			assert.Equal(t, game.ID, byCode.ID)

			// When: the same id is created again
			err = repo.Create(ctx, sampleGame("123"))

			// Then: the first game is kept
			require.ErrorIs(t, err, apperror.ErrGameExists)
		})
	}
}

func TestGameRepository_Save(t *testing.T) {
	for name, factory := range gameRepositories() {
		t.Run(name, func(t *testing.T) {
			ctx, repo := factory(t)

			game := sampleGame("123")
			require.NoError(t, repo.Create(ctx, game))

			// Given: two copies loaded at the same version
			first, err := repo.GetByID(ctx, game.ID)
			require.NoError(t, err)
			second, err := repo.GetByID(ctx, game.ID)
			require.NoError(t, err)

			// When: the first copy is saved
			first.Status = entity.StatusPlaying
			require.NoError(t, repo.Save(ctx, first))

			// Then: the version moves on
			assert.Equal(t, uint64(2), first.Version)

			stored, err := repo.GetByID(ctx, game.ID)
			require.NoError(t, err)
			assert.Equal(t, entity.StatusPlaying, stored.Status)
			assert.Equal(t, uint64(2), stored.Version)

			// When: the stale copy is saved
			second.Name = "stale"
			err = repo.Save(ctx, second)

			// Then: it is rejected and nothing changes
			require.ErrorIs(t, err, apperror.ErrVersionConflict)
			assert.Equal(t, uint64(1), second.Version)

			stored, err = repo.GetByID(ctx, game.ID)
			require.NoError(t, err)
			assert.Equal(t, "library", stored.Name)
		})
	}
}

func TestGameRepository_NotFound(t *testing.T) {
	for name, factory := range gameRepositories() {
		t.Run(name, func(t *testing.T) {
			ctx, repo := factory(t)

			// When: a missing game is read or saved
			retrievedGame, err := repo.GetByID(ctx, "9999999")

			// Then: ErrGameNotFound is returned
			require.ErrorIs(t, err, apperror.ErrGameNotFound)
			assert.Nil(t, retrievedGame)

			err = repo.Save(ctx, sampleGame("9999999"))
			require.ErrorIs(t, err, apperror.ErrGameNotFound)
		})
	}
}

func TestGameRepository_DeleteByID(t *testing.T) {
	for name, factory := range gameRepositories() {
		t.Run(name, func(t *testing.T) {
			ctx, repo := factory(t)

			// Given: a stored game
			game := sampleGame("123")
			require.NoError(t, repo.Create(ctx, game))

			// When: it is deleted
			require.NoError(t, repo.DeleteByID(ctx, game.ID))

			// Then: it can not be found anymore
			_, err := repo.GetByID(ctx, game.ID)
			require.ErrorIs(t, err, apperror.ErrGameNotFound)

			_, err = repo.GetByJoinCode(ctx, game.JoinCode)
			require.ErrorIs(t, err, apperror.ErrGameNotFound)
		})
	}
}

func TestMemoryGameRepository_StoresCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryGameRepository()

	game := sampleGame("123")
	require.NoError(t, repo.Create(ctx, game))

	game.Players[0].Hand[0] = entity.Knife

	stored, err := repo.GetByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.Rope, stored.Players[0].Hand[0])
}
