package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/clueless-backend/internal/entity"
)

// PlayerService - tracks the game each user is seated in.
type PlayerService interface {
	AttachToGame(ctx context.Context, playerID, gameID string) error
	GetByID(ctx context.Context, id string) (*entity.PlayerSession, error)
}

type playerService struct {
	playerRepo playerRepo
}

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.PlayerSession) error
	GetByID(ctx context.Context, id string) (*entity.PlayerSession, error)
}

func NewPlayerService(playerRepo playerRepo) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
	}
}

func (that *playerService) AttachToGame(ctx context.Context, playerID, gameID string) error {
	session := &entity.PlayerSession{ID: playerID, GameID: gameID}

	if err := that.playerRepo.CreateOrUpdate(ctx, session); err != nil {
		return fmt.Errorf("attach player to game %w", err)
	}

	return nil
}

func (that *playerService) GetByID(ctx context.Context, id string) (*entity.PlayerSession, error) {
	session, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get player by id %w", err)
	}

	return session, nil
}
