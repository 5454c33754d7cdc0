package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/clueless-backend/internal/apperror"
	"github.com/rocketscienceinc/clueless-backend/internal/clueless"
	"github.com/rocketscienceinc/clueless-backend/internal/entity"
	"github.com/rocketscienceinc/clueless-backend/internal/repository"
)

func newGameService() GameService {
	return NewGameService(repository.NewMemoryGameRepository(), clueless.NewGameController())
}

func TestGameService_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("public game", func(t *testing.T) {
		gameService := newGameService()

		// When: a public game is created
		game, err := gameService.CreateGame(ctx, "user-1", entity.GameConfig{Name: "friday"})
		require.NoError(t, err)

		// Then: it is stored with an id, a join code and no passphrase
		assert.NotEmpty(t, game.ID)
		assert.Len(t, game.JoinCode, 6)
		assert.Equal(t, "user-1", game.CreatedBy)
		assert.Empty(t, game.PassphraseHash)
		assert.Equal(t, uint64(1), game.Version)

		stored, err := gameService.GetGameByJoinCode(ctx, game.JoinCode)
		require.NoError(t, err)
		assert.Equal(t, game.ID, stored.ID)
		require.NoError(t, gameService.CheckPassphrase(stored, ""))
	})

	t.Run("private game", func(t *testing.T) {
		gameService := newGameService()

		// When: a private game is created with a passphrase
		game, err := gameService.CreateGame(ctx, "user-1", entity.GameConfig{
			Name:       "friends",
			Visibility: entity.PrivateType,
			Passphrase: "colonel",
		})
		require.NoError(t, err)

		// Then: only the hash is kept and the passphrase is checked
		assert.NotEmpty(t, game.PassphraseHash)
		assert.NotEqual(t, "colonel", game.PassphraseHash)

		require.NoError(t, gameService.CheckPassphrase(game, "colonel"))
		require.ErrorIs(t, gameService.CheckPassphrase(game, "mustard"), apperror.ErrInvalidPassphrase)
		require.ErrorIs(t, gameService.CheckPassphrase(game, ""), apperror.ErrPassphraseRequired)
	})

	t.Run("private game without passphrase", func(t *testing.T) {
		_, err := newGameService().CreateGame(ctx, "user-1", entity.GameConfig{Name: "a", Visibility: entity.PrivateType})
		require.ErrorIs(t, err, apperror.ErrPassphraseRequired)
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := newGameService().CreateGame(ctx, "user-1", entity.GameConfig{Name: "a", MaxPlayers: 9})
		require.ErrorIs(t, err, apperror.ErrInvalidConfig)
	})
}

func TestGameService_SaveGame(t *testing.T) {
	ctx := context.Background()
	gameService := newGameService()

	// Given: a stored game and a stale copy of it
	game, err := gameService.CreateGame(ctx, "user-1", entity.GameConfig{Name: "friday"})
	require.NoError(t, err)

	stale, err := gameService.GetGameByID(ctx, game.ID)
	require.NoError(t, err)

	// When: the fresh copy is saved first
	require.NoError(t, gameService.SaveGame(ctx, game))

	// Then: the stale copy conflicts
	require.ErrorIs(t, gameService.SaveGame(ctx, stale), apperror.ErrVersionConflict)

	// When: the game is deleted
	require.NoError(t, gameService.DeleteGame(ctx, game.ID))

	// Then: it is gone
	_, err = gameService.GetGameByID(ctx, game.ID)
	require.ErrorIs(t, err, apperror.ErrGameNotFound)
}

func TestPlayerService(t *testing.T) {
	ctx := context.Background()
	playerService := NewPlayerService(repository.NewMemoryPlayerRepository())

	_, err := playerService.GetByID(ctx, "user-1")
	require.ErrorIs(t, err, repository.ErrPlayerNotFound)

	require.NoError(t, playerService.AttachToGame(ctx, "user-1", "game-1"))

	session, err := playerService.GetByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "game-1", session.GameID)
}
