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

var ErrPlayerNotFound = fmt.Errorf("player %w", apperror.ErrNotFound)

// PlayerRepository - remembers which game each user sits in, so a reconnecting client finds its way back.
type PlayerRepository interface {
	CreateOrUpdate(ctx context.Context, session *entity.PlayerSession) error
	GetByID(ctx context.Context, id string) (*entity.PlayerSession, error)
}

type dbPlayer struct {
	client *redis.Client
}

func NewPlayerRepository(client *redis.Client) PlayerRepository {
	return &dbPlayer{
		client: client,
	}
}

func playerKey(id string) string {
	return "player:" + id
}

func (that *dbPlayer) CreateOrUpdate(ctx context.Context, session *entity.PlayerSession) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	if err = that.client.Set(ctx, playerKey(session.ID), sessionJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set player: %w", err)
	}

	return nil
}

func (that *dbPlayer) GetByID(ctx context.Context, id string) (*entity.PlayerSession, error) {
	response, err := that.client.Get(ctx, playerKey(id)).Bytes()

	if errors.Is(err, redis.Nil) {
		return nil, ErrPlayerNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player by ID: %w", err)
	}

	var session entity.PlayerSession
	if err = json.Unmarshal(response, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &session, nil
}
