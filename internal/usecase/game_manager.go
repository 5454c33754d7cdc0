package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/clueless-backend/internal/apperror"
	"github.com/rocketscienceinc/clueless-backend/internal/entity"
)

type gameService interface {
	CreateGame(ctx context.Context, creatorID string, conf entity.GameConfig) (*entity.Game, error)
	SaveGame(ctx context.Context, game *entity.Game) error
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	GetGameByJoinCode(ctx context.Context, code string) (*entity.Game, error)
	CheckPassphrase(game *entity.Game, passphrase string) error
}

type playerService interface {
	AttachToGame(ctx context.Context, playerID, gameID string) error
	GetByID(ctx context.Context, id string) (*entity.PlayerSession, error)
}

type gameEngine interface {
	JoinGame(game *entity.Game, userID, displayName string) (*entity.Game, entity.Card, []entity.Event, error)
	Apply(game *entity.Game, playerID string, action entity.Action) (*entity.Game, []entity.Event, error)
	HandleDisconnect(game *entity.Game, playerID string) (*entity.Game, []entity.Event, error)
	ViewFor(game *entity.Game, requesterID string) entity.PlayerView
	Board() *entity.Board
}

// broadcaster - delivers events to connected clients. Calls must not block.
type broadcaster interface {
	SendToGame(gameID string, event entity.Event)
	SendToPlayer(playerID string, event entity.Event)
}

type SessionConfig struct {
	IdleTimeout time.Duration
	QueueSize   int
}

// JoinRequest - GameID wins over JoinCode when both are set.
type JoinRequest struct {
	PlayerID   string
	Name       string
	GameID     string
	JoinCode   string
	Passphrase string
}

// GameManager - the session coordinator. Every change to a game runs in that game's own session,
// one at a time; different games never wait on each other.
type GameManager struct {
	logger        *slog.Logger
	gameService   gameService
	playerService playerService
	engine        gameEngine
	broadcaster   broadcaster

	idleTimeout time.Duration
	queueSize   int

	mu       sync.Mutex
	sessions map[string]*session
}

func NewGameManager(logger *slog.Logger, gameService gameService, playerService playerService, engine gameEngine, conf SessionConfig) *GameManager {
	if conf.IdleTimeout <= 0 {
		conf.IdleTimeout = defaultIdleTimeout
	}

	if conf.QueueSize <= 0 {
		conf.QueueSize = defaultQueueSize
	}

	return &GameManager{
		logger:        logger.With("component", "game_manager"),
		gameService:   gameService,
		playerService: playerService,
		engine:        engine,
		broadcaster:   nopBroadcaster{},
		idleTimeout:   conf.IdleTimeout,
		queueSize:     conf.QueueSize,
		sessions:      make(map[string]*session),
	}
}

// SetBroadcaster - plugs in the transport once it exists.
func (that *GameManager) SetBroadcaster(b broadcaster) {
	that.broadcaster = b
}

// CreateGame - stores a new waiting game. The creator still has to join it.
func (that *GameManager) CreateGame(ctx context.Context, creatorID string, conf entity.GameConfig) (*entity.Game, error) {
	game, err := that.gameService.CreateGame(ctx, creatorID, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "playerID", creatorID, "visibility", game.Visibility)

	return game, nil
}

// JoinGame - seats the player, or reconnects them if they are already seated.
func (that *GameManager) JoinGame(ctx context.Context, req JoinRequest) (entity.PlayerView, entity.Card, error) {
	gameID, err := that.resolveGameID(ctx, req)
	if err != nil {
		return entity.PlayerView{}, "", err
	}

	var character entity.Card

	game, err := that.submit(ctx, gameID, func(game *entity.Game) (*entity.Game, []entity.Event, error) {
		if _, seated := game.PlayerByID(req.PlayerID); !seated {
			if err := that.gameService.CheckPassphrase(game, req.Passphrase); err != nil {
				return nil, nil, err
			}
		}

		next, seat, events, err := that.engine.JoinGame(game, req.PlayerID, req.Name)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to join game: %w", err)
		}

		character = seat

		return next, events, nil
	})
	if err != nil {
		return entity.PlayerView{}, "", err
	}

	if err = that.playerService.AttachToGame(ctx, req.PlayerID, gameID); err != nil {
		return entity.PlayerView{}, "", fmt.Errorf("failed to remember game of player: %w", err)
	}

	that.logger.Info("player joined", "gameID", gameID, "playerID", req.PlayerID, "character", character)

	return that.engine.ViewFor(game, req.PlayerID), character, nil
}

// Apply - runs one action of playerID in the game they are seated in.
func (that *GameManager) Apply(ctx context.Context, playerID string, action entity.Action) (entity.PlayerView, error) {
	gameID, err := that.GetGameIDByPlayerID(ctx, playerID)
	if err != nil {
		return entity.PlayerView{}, err
	}

	game, err := that.submit(ctx, gameID, func(game *entity.Game) (*entity.Game, []entity.Event, error) {
		return that.engine.Apply(game, playerID, action)
	})
	if err != nil {
		return entity.PlayerView{}, fmt.Errorf("failed to apply %s: %w", action.Type, err)
	}

	return that.engine.ViewFor(game, playerID), nil
}

// Disconnect - lets the game react to a player dropping. Users without a game are ignored.
func (that *GameManager) Disconnect(ctx context.Context, playerID string) error {
	gameID, err := that.GetGameIDByPlayerID(ctx, playerID)
	if errors.Is(err, apperror.ErrPlayerNotInGame) {
		return nil
	}

	if err != nil {
		return err
	}

	_, err = that.submit(ctx, gameID, func(game *entity.Game) (*entity.Game, []entity.Event, error) {
		if _, seated := game.PlayerByID(playerID); !seated || game.IsCompleted() {
			return nil, nil, nil
		}

		return that.engine.HandleDisconnect(game, playerID)
	})
	if err != nil {
		return fmt.Errorf("failed to disconnect player: %w", err)
	}

	that.logger.Info("player disconnected", "gameID", gameID, "playerID", playerID)

	return nil
}

// View - the current game of playerID as they may see it.
func (that *GameManager) View(ctx context.Context, playerID string) (entity.PlayerView, error) {
	gameID, err := that.GetGameIDByPlayerID(ctx, playerID)
	if err != nil {
		return entity.PlayerView{}, err
	}

	game, err := that.submit(ctx, gameID, func(*entity.Game) (*entity.Game, []entity.Event, error) {
		return nil, nil, nil
	})
	if err != nil {
		return entity.PlayerView{}, fmt.Errorf("failed to load game: %w", err)
	}

	return that.engine.ViewFor(game, playerID), nil
}

// GetGameIDByPlayerID - the game the player last joined, or apperror.ErrPlayerNotInGame.
func (that *GameManager) GetGameIDByPlayerID(ctx context.Context, playerID string) (string, error) {
	session, err := that.playerService.GetByID(ctx, playerID)
	if errors.Is(err, apperror.ErrNotFound) {
		return "", apperror.ErrPlayerNotInGame
	}

	if err != nil {
		return "", fmt.Errorf("failed to get player: %w", err)
	}

	if session.GameID == "" {
		return "", apperror.ErrPlayerNotInGame
	}

	return session.GameID, nil
}

func (that *GameManager) resolveGameID(ctx context.Context, req JoinRequest) (string, error) {
	if req.GameID != "" {
		return req.GameID, nil
	}

	if req.JoinCode == "" {
		return "", fmt.Errorf("%w: game id or join code is required", apperror.ErrGameNotFound)
	}

	game, err := that.gameService.GetGameByJoinCode(ctx, req.JoinCode)
	if err != nil {
		return "", fmt.Errorf("failed to find game: %w", err)
	}

	return game.ID, nil
}

func (that *GameManager) sessionCount() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.sessions)
}

type nopBroadcaster struct{}

func (nopBroadcaster) SendToGame(string, entity.Event) {}

func (nopBroadcaster) SendToPlayer(string, entity.Event) {}
