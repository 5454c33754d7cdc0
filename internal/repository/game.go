package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/clueless-backend/internal/apperror"
	"github.com/rocketscienceinc/clueless-backend/internal/entity"
)

// GameRepository - stores whole game snapshots. Save is a compare-and-set on Game.Version:
// it fails with apperror.ErrVersionConflict when someone else saved first, and bumps Version on success.
type GameRepository interface {
	Create(ctx context.Context, game *entity.Game) error
	Save(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	GetByJoinCode(ctx context.Context, code string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func gameKey(id string) string {
	return "game:" + id
}

func joinCodeKey(code string) string {
	return "joincode:" + code
}

func (that *dbGame) Create(ctx context.Context, game *entity.Game) error {
	stored := *game
	stored.Version = 1

	gameJSON, err := json.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	created, err := that.client.SetNX(ctx, gameKey(game.ID), gameJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	if !created {
		return fmt.Errorf("%w: %s", apperror.ErrGameExists, game.ID)
	}

	if game.JoinCode != "" {
		if err = that.client.Set(ctx, joinCodeKey(game.JoinCode), game.ID, 0).Err(); err != nil {
			return fmt.Errorf("failed to index join code: %w", err)
		}
	}

	game.Version = stored.Version

	return nil
}

func (that *dbGame) Save(ctx context.Context, game *entity.Game) error {
	key := gameKey(game.ID)

	stored := *game
	stored.Version++

	gameJSON, err := json.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	err = that.client.Watch(ctx, func(tx *redis.Tx) error {
		response, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return apperror.ErrGameNotFound
		}

		if err != nil {
			return fmt.Errorf("failed to get game: %w", err)
		}

		var current struct {
			Version uint64 `json:"version"`
		}
		if err = json.Unmarshal(response, &current); err != nil {
			return fmt.Errorf("failed to unmarshal game version: %w", err)
		}

		if current.Version != game.Version {
			return fmt.Errorf("%w: stored %d, saving %d", apperror.ErrVersionConflict, current.Version, game.Version)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, gameJSON, 0)
			return nil
		})

		return err
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		return fmt.Errorf("%w: %s changed while saving", apperror.ErrVersionConflict, game.ID)
	}

	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	game.Version = stored.Version

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Bytes()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return unmarshalGame(response)
}

func (that *dbGame) GetByJoinCode(ctx context.Context, code string) (*entity.Game, error) {
	id, err := that.client.Get(ctx, joinCodeKey(code)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by join code: %w", err)
	}

	return that.GetByID(ctx, id)
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	keys := []string{gameKey(id)}

	game, err := that.GetByID(ctx, id)
	if err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	if game != nil && game.JoinCode != "" {
		keys = append(keys, joinCodeKey(game.JoinCode))
	}

	if err = that.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	return nil
}

func unmarshalGame(data []byte) (*entity.Game, error) {
	var existingGame entity.Game
	if err := json.Unmarshal(data, &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	if existingGame.Hallways == nil {
		existingGame.Hallways = map[entity.HallwayID]entity.Card{}
	}

	return &existingGame, nil
}
