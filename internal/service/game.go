package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/rocketscienceinc/clueless-backend/internal/apperror"
	"github.com/rocketscienceinc/clueless-backend/internal/entity"
	"github.com/rocketscienceinc/clueless-backend/internal/pkg"
)

type GameService interface {
	CreateGame(ctx context.Context, creatorID string, conf entity.GameConfig) (*entity.Game, error)
	SaveGame(ctx context.Context, game *entity.Game) error
	DeleteGame(ctx context.Context, gameID string) error

	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	GetGameByJoinCode(ctx context.Context, code string) (*entity.Game, error)

	CheckPassphrase(game *entity.Game, passphrase string) error
}

type gameRepo interface {
	Create(ctx context.Context, game *entity.Game) error
	Save(ctx context.Context, game *entity.Game) error

	GetByID(ctx context.Context, id string) (*entity.Game, error)
	GetByJoinCode(ctx context.Context, code string) (*entity.Game, error)

	DeleteByID(ctx context.Context, id string) error
}

// gameFactory - validates a config and builds the empty game.
type gameFactory interface {
	CreateGame(id string, conf entity.GameConfig) (*entity.Game, error)
}

type gameService struct {
	gameRepo    gameRepo
	gameFactory gameFactory
}

func NewGameService(gameRepo gameRepo, gameFactory gameFactory) GameService {
	return &gameService{
		gameRepo:    gameRepo,
		gameFactory: gameFactory,
	}
}

// CreateGame - builds and stores a new game. Private games keep only a bcrypt hash of the passphrase.
func (that *gameService) CreateGame(ctx context.Context, creatorID string, conf entity.GameConfig) (*entity.Game, error) {
	game, err := that.gameFactory.CreateGame(pkg.GenerateGameID(), conf)
	if err != nil {
		return nil, fmt.Errorf("failed to build game: %w", err)
	}

	game.CreatedBy = creatorID
	game.JoinCode = pkg.GenerateJoinCode()

	if game.IsPrivate() {
		if conf.Passphrase == "" {
			return nil, apperror.ErrPassphraseRequired
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(conf.Passphrase), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash passphrase: %w", err)
		}

		game.PassphraseHash = string(hash)
	}

	if err = that.gameRepo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game in storage: %w", err)
	}

	return game, nil
}

func (that *gameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

func (that *gameService) GetGameByJoinCode(ctx context.Context, code string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByJoinCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game by join code: %w", err)
	}

	return game, nil
}

// SaveGame - stores the game if nobody saved it since it was loaded, see GameRepository.Save.
func (that *gameService) SaveGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.Save(ctx, game); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

func (that *gameService) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// CheckPassphrase - public games accept anything.
func (that *gameService) CheckPassphrase(game *entity.Game, passphrase string) error {
	if !game.IsPrivate() {
		return nil
	}

	if passphrase == "" {
		return apperror.ErrPassphraseRequired
	}

	err := bcrypt.CompareHashAndPassword([]byte(game.PassphraseHash), []byte(passphrase))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return apperror.ErrInvalidPassphrase
	}

	if err != nil {
		return fmt.Errorf("failed to check passphrase: %w", err)
	}

	return nil
}
