package usecase

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/clueless-backend/internal/apperror"
	"github.com/rocketscienceinc/clueless-backend/internal/clueless"
	"github.com/rocketscienceinc/clueless-backend/internal/entity"
	"github.com/rocketscienceinc/clueless-backend/internal/repository"
	"github.com/rocketscienceinc/clueless-backend/internal/service"
	mockedUseCase "github.com/rocketscienceinc/clueless-backend/mocks/usecase"
	"github.com/rocketscienceinc/clueless-backend/testing/suite"
)

type recorder struct {
	mu       sync.Mutex
	toGame   []entity.Event
	toPlayer map[string][]entity.Event
}

func newRecorder() *recorder {
	return &recorder{toPlayer: make(map[string][]entity.Event)}
}

func (that *recorder) SendToGame(_ string, event entity.Event) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.toGame = append(that.toGame, event)
}

func (that *recorder) SendToPlayer(playerID string, event entity.Event) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.toPlayer[playerID] = append(that.toPlayer[playerID], event)
}

func (that *recorder) lastState(playerID string) *entity.PlayerView {
	that.mu.Lock()
	defer that.mu.Unlock()

	events := that.toPlayer[playerID]
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type == entity.EventStateChanged {
			return events[i].View
		}
	}

	return nil
}

type fixture struct {
	manager   *GameManager
	games     service.GameService
	gameRepo  repository.GameRepository
	broadcast *recorder
}

func newFixture(t *testing.T, conf SessionConfig) *fixture {
	t.Helper()

	controller := clueless.NewGameController(clueless.WithRand(func() entity.Rand {
		return rand.New(rand.NewPCG(3, 4)) //nolint: gosec
	}))

	gameRepo := repository.NewMemoryGameRepository()
	games := service.NewGameService(gameRepo, controller)
	players := service.NewPlayerService(repository.NewMemoryPlayerRepository())

	manager := NewGameManager(suite.NewLogger(), games, players, controller, conf)
	broadcast := newRecorder()
	manager.SetBroadcaster(broadcast)

	return &fixture{
		manager:   manager,
		games:     games,
		gameRepo:  gameRepo,
		broadcast: broadcast,
	}
}

// startGame - creates a game that starts once every id has joined.
func (that *fixture) startGame(t *testing.T, ids ...string) string {
	t.Helper()

	ctx := context.Background()

	game, err := that.manager.CreateGame(ctx, ids[0], entity.GameConfig{Name: "test", MinPlayers: len(ids)})
	require.NoError(t, err)

	for _, id := range ids {
		_, _, err = that.manager.JoinGame(ctx, JoinRequest{PlayerID: id, Name: "name-" + id, GameID: game.ID})
		require.NoError(t, err)
	}

	return game.ID
}

func TestGameManager_JoinAndStart(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, SessionConfig{})

	// Given: a new game
	game, err := f.manager.CreateGame(ctx, "p1", entity.GameConfig{Name: "friday"})
	require.NoError(t, err)

	// When: two players join
	view, character, err := f.manager.JoinGame(ctx, JoinRequest{PlayerID: "p1", Name: "Ann", GameID: game.ID})
	require.NoError(t, err)
	assert.Equal(t, entity.ColonelMustard, character)
	assert.Equal(t, entity.StatusWaiting, view.Status)

	_, _, err = f.manager.JoinGame(ctx, JoinRequest{PlayerID: "p2", Name: "Bob", JoinCode: game.JoinCode})
	require.NoError(t, err)

	// Then: nothing can be played yet
	_, err = f.manager.Apply(ctx, "p1", entity.Action{Type: entity.ActionEndTurn})
	require.ErrorIs(t, err, apperror.ErrGameNotInProgress)

	// When: the third player joins
	view, character, err = f.manager.JoinGame(ctx, JoinRequest{PlayerID: "p3", Name: "Cid", GameID: game.ID})
	require.NoError(t, err)

	// Then: the game starts with p1 on turn
	assert.Equal(t, entity.ProfessorPlum, character)
	assert.Equal(t, entity.StatusPlaying, view.Status)
	assert.Equal(t, "p1", view.CurrentTurn)
	assert.Len(t, view.MyCards, 6)

	// Then: every player got a personalized state with only their own hand
	for _, id := range []string{"p1", "p2", "p3"} {
		state := f.broadcast.lastState(id)
		require.NotNil(t, state, id)
		assert.Equal(t, entity.StatusPlaying, state.Status)
		assert.Len(t, state.MyCards, 6)
		assert.Nil(t, state.Solution)
	}
	assert.NotEqual(t, f.broadcast.lastState("p1").MyCards, f.broadcast.lastState("p2").MyCards)

	// Then: the player index points at the game
	gameID, err := f.manager.GetGameIDByPlayerID(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, game.ID, gameID)

	// When: a fourth user tries to join
	_, _, err = f.manager.JoinGame(ctx, JoinRequest{PlayerID: "p4", Name: "Dan", GameID: game.ID})

	// Then: the game is closed
	require.ErrorIs(t, err, apperror.ErrGameAlreadyStarted)
}

func TestGameManager_PrivateGame(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, SessionConfig{})

	game, err := f.manager.CreateGame(ctx, "p1", entity.GameConfig{
		Name:       "friends",
		Visibility: entity.PrivateType,
		Passphrase: "candlestick",
	})
	require.NoError(t, err)

	_, _, err = f.manager.JoinGame(ctx, JoinRequest{PlayerID: "p1", GameID: game.ID})
	require.ErrorIs(t, err, apperror.ErrPassphraseRequired)

	_, _, err = f.manager.JoinGame(ctx, JoinRequest{PlayerID: "p1", GameID: game.ID, Passphrase: "rope"})
	require.ErrorIs(t, err, apperror.ErrInvalidPassphrase)

	_, _, err = f.manager.JoinGame(ctx, JoinRequest{PlayerID: "p1", GameID: game.ID, Passphrase: "candlestick"})
	require.NoError(t, err)

	// seated players reconnect without the passphrase
	_, _, err = f.manager.JoinGame(ctx, JoinRequest{PlayerID: "p1", GameID: game.ID})
	require.NoError(t, err)
}

func TestGameManager_Apply(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, SessionConfig{})
	gameID := f.startGame(t, "p1", "p2", "p3")

	// When: the wrong player ends the turn
	_, err := f.manager.Apply(ctx, "p2", entity.Action{Type: entity.ActionEndTurn})

	// Then: it is a validation error and nothing is saved
	require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	assert.True(t, apperror.IsValidation(err))

	stored, err := f.games.GetGameByID(ctx, gameID)
	require.NoError(t, err)
	version := stored.Version

	// When: the right player ends the turn
	view, err := f.manager.Apply(ctx, "p1", entity.Action{Type: entity.ActionEndTurn})
	require.NoError(t, err)

	// Then: the turn passes and the version moves on
	assert.Equal(t, "p2", view.CurrentTurn)
	assert.Equal(t, version+1, view.Version)

	f.broadcast.mu.Lock()
	assert.Equal(t, entity.EventTurnChanged, f.broadcast.toGame[len(f.broadcast.toGame)-1].Type)
	f.broadcast.mu.Unlock()

	// When: a stranger acts
	_, err = f.manager.Apply(ctx, "zz", entity.Action{Type: entity.ActionEndTurn})

	// Then: they are not in a game
	require.ErrorIs(t, err, apperror.ErrPlayerNotInGame)
}

func TestGameManager_Disconnect(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, SessionConfig{})
	f.startGame(t, "p1", "p2", "p3")

	// When: the turn owner drops
	require.NoError(t, f.manager.Disconnect(ctx, "p1"))

	// Then: the turn moves on and the others see p1 offline
	view, err := f.manager.View(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, "p2", view.CurrentTurn)
	assert.False(t, view.Players[0].Connected)
	assert.Equal(t, []entity.ActionType{entity.ActionMove, entity.ActionAccuse, entity.ActionEndTurn}, view.AvailableActions)

	// When: p1 comes back
	_, _, err = f.manager.JoinGame(ctx, JoinRequest{PlayerID: "p1"})
	require.ErrorIs(t, err, apperror.ErrGameNotFound)

	gameID, err := f.manager.GetGameIDByPlayerID(ctx, "p1")
	require.NoError(t, err)
	view, character, err := f.manager.JoinGame(ctx, JoinRequest{PlayerID: "p1", GameID: gameID})
	require.NoError(t, err)

	// Then: same seat, connected again
	assert.Equal(t, entity.ColonelMustard, character)
	assert.True(t, view.Players[0].Connected)

	// Then: users without a game are ignored
	require.NoError(t, f.manager.Disconnect(ctx, "nobody"))
}

func TestGameManager_ConcurrentActions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, SessionConfig{})

	gameIDs := []string{
		f.startGame(t, "a1", "a2", "a3"),
		f.startGame(t, "b1", "b2", "b3", "b4"),
	}
	players := [][]string{{"a1", "a2", "a3"}, {"b1", "b2", "b3", "b4"}}

	before := make([]uint64, len(gameIDs))
	for i, gameID := range gameIDs {
		game, err := f.games.GetGameByID(ctx, gameID)
		require.NoError(t, err)
		before[i] = game.Version
	}

	// When: every player of both games hammers END_TURN at the same time
	successes := make([]atomic.Int64, len(gameIDs))
	var wg sync.WaitGroup
	for i := range gameIDs {
		for _, playerID := range players[i] {
			wg.Add(1)
			go func() {
				defer wg.Done()

				for range 25 {
					_, err := f.manager.Apply(ctx, playerID, entity.Action{Type: entity.ActionEndTurn})
					if err == nil {
						successes[i].Add(1)
						continue
					}

					assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
				}
			}()
		}
	}
	wg.Wait()

	// Then: every accepted action was saved exactly once and the games are intact
	for i, gameID := range gameIDs {
		game, err := f.games.GetGameByID(ctx, gameID)
		require.NoError(t, err)

		assert.Positive(t, successes[i].Load())
		assert.Equal(t, before[i]+uint64(successes[i].Load()), game.Version)
		require.NoError(t, game.Validate(entity.ClassicBoard))
	}
}

func TestGameManager_UnusableGame(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, SessionConfig{})
	gameID := f.startGame(t, "p1", "p2", "p3")

	// Given: a stored game with a player off the board
	game, err := f.gameRepo.GetByID(ctx, gameID)
	require.NoError(t, err)
	game.Players[1].Position = entity.RoomPosition("Attic")
	require.NoError(t, f.gameRepo.Save(ctx, game))

	// When: anyone acts on it
	_, err = f.manager.Apply(ctx, "p1", entity.Action{Type: entity.ActionEndTurn})

	// Then: the game is unusable
	require.ErrorIs(t, err, apperror.ErrGameUnusable)
	require.ErrorIs(t, err, apperror.ErrUnknownPosition)

	// When: the stored game is repaired while the session is alive
	game.Players[1].Position = entity.StartPosition(game.Players[1].Character)
	require.NoError(t, f.gameRepo.Save(ctx, game))

	// Then: the session keeps refusing it
	_, err = f.manager.Apply(ctx, "p1", entity.Action{Type: entity.ActionEndTurn})
	require.ErrorIs(t, err, apperror.ErrGameUnusable)
}

func TestGameManager_IdleEviction(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, SessionConfig{IdleTimeout: 20 * time.Millisecond})
	f.startGame(t, "p1", "p2", "p3")

	// Then: the idle session goes away
	require.Eventually(t, func() bool {
		return f.manager.sessionCount() == 0
	}, time.Second, 10*time.Millisecond)

	// Then: a new command brings it back with the stored state
	view, err := f.manager.Apply(ctx, "p1", entity.Action{Type: entity.ActionEndTurn})
	require.NoError(t, err)
	assert.Equal(t, "p2", view.CurrentTurn)
}

func TestGameManager_VersionConflict(t *testing.T) {
	ctx := context.Background()

	controller := clueless.NewGameController(clueless.WithRand(func() entity.Rand {
		return rand.New(rand.NewPCG(1, 2)) //nolint: gosec
	}))

	stored := entity.NewGame("g-1", entity.GameConfig{Name: "a", MaxPlayers: 6, MinPlayers: 3}, time.Now().UTC())
	for _, id := range []string{"p1", "p2", "p3"} {
		var err error
		stored, _, _, err = controller.JoinGame(stored, id, id)
		require.NoError(t, err)
	}

	t.Run("one conflict is retried", func(t *testing.T) {
		// Given: storage that loses the first save to a concurrent writer
		mockGames := mockedUseCase.NewMockgameService(t)
		mockPlayers := mockedUseCase.NewMockplayerService(t)
		manager := NewGameManager(suite.NewLogger(), mockGames, mockPlayers, controller, SessionConfig{})

		mockPlayers.EXPECT().
			GetByID(mock.Anything, "p1").
			Return(&entity.PlayerSession{ID: "p1", GameID: "g-1"}, nil).
			Once()

		mockGames.EXPECT().
			GetGameByID(mock.Anything, "g-1").
			RunAndReturn(func(context.Context, string) (*entity.Game, error) {
				return stored.Clone(), nil
			}).
			Twice()

		mockGames.EXPECT().
			SaveGame(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(apperror.ErrVersionConflict).
			Once()

		mockGames.EXPECT().
			SaveGame(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Once()

		// When: p1 ends the turn
		view, err := manager.Apply(ctx, "p1", entity.Action{Type: entity.ActionEndTurn})

		// Then: the reloaded game is saved on the second try
		require.NoError(t, err)
		assert.Equal(t, "p2", view.CurrentTurn)
	})

	t.Run("second conflict is transient", func(t *testing.T) {
		mockGames := mockedUseCase.NewMockgameService(t)
		mockPlayers := mockedUseCase.NewMockplayerService(t)
		manager := NewGameManager(suite.NewLogger(), mockGames, mockPlayers, controller, SessionConfig{})

		mockPlayers.EXPECT().
			GetByID(mock.Anything, "p1").
			Return(&entity.PlayerSession{ID: "p1", GameID: "g-1"}, nil).
			Once()

		mockGames.EXPECT().
			GetGameByID(mock.Anything, "g-1").
			RunAndReturn(func(context.Context, string) (*entity.Game, error) {
				return stored.Clone(), nil
			}).
			Twice()

		mockGames.EXPECT().
			SaveGame(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(apperror.ErrVersionConflict).
			Twice()

		_, err := manager.Apply(ctx, "p1", entity.Action{Type: entity.ActionEndTurn})

		require.ErrorIs(t, err, apperror.ErrTransient)
	})

	t.Run("validation errors are not retried", func(t *testing.T) {
		mockGames := mockedUseCase.NewMockgameService(t)
		mockPlayers := mockedUseCase.NewMockplayerService(t)
		manager := NewGameManager(suite.NewLogger(), mockGames, mockPlayers, controller, SessionConfig{})

		mockPlayers.EXPECT().
			GetByID(mock.Anything, "p2").
			Return(&entity.PlayerSession{ID: "p2", GameID: "g-1"}, nil).
			Once()

		mockGames.EXPECT().
			GetGameByID(mock.Anything, "g-1").
			Return(stored.Clone(), nil).
			Once()

		_, err := manager.Apply(ctx, "p2", entity.Action{Type: entity.ActionEndTurn})

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})
}

func TestGameManager_PlayerLookupFails(t *testing.T) {
	ctx := context.Background()

	mockGames := mockedUseCase.NewMockgameService(t)
	mockPlayers := mockedUseCase.NewMockplayerService(t)
	manager := NewGameManager(suite.NewLogger(), mockGames, mockPlayers, clueless.NewGameController(), SessionConfig{})

	storeDown := errors.New("store down")

	mockPlayers.EXPECT().
		GetByID(mock.Anything, "p1").
		Return(nil, storeDown).
		Twice()

	// When: the player index can not be read
	_, err := manager.Apply(ctx, "p1", entity.Action{Type: entity.ActionEndTurn})

	// Then: the failure is reported as is, not as a missing game
	require.ErrorIs(t, err, storeDown)
	require.NotErrorIs(t, err, apperror.ErrPlayerNotInGame)

	// Then: a disconnect can not be swallowed either
	require.ErrorIs(t, manager.Disconnect(ctx, "p1"), storeDown)
	assert.Zero(t, manager.sessionCount())
}
