package clueless

import (
	"fmt"

	"github.com/rocketscienceinc/clueless-backend/internal/apperror"
	"github.com/rocketscienceinc/clueless-backend/internal/entity"
)

func (that *GameController) move(game *entity.Game, player *entity.Player, destination entity.Position) ([]entity.Event, error) {
	if game.Turn.Moved {
		return nil, apperror.ErrAlreadyMoved
	}

	ok, err := that.board.CanMoveTo(player.Position, destination, game.Hallways)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve moves of %s: %w", player.ID, err)
	}

	if !ok {
		return nil, fmt.Errorf("%w: %s -> %s", apperror.ErrIllegalDestination, player.Position, destination)
	}

	relocate(game, player, destination)
	game.Turn.Moved = true

	return nil, nil
}

// relocate - moves a player and keeps hallway occupancy in sync with it.
func relocate(game *entity.Game, player *entity.Player, destination entity.Position) {
	if player.Position.IsHallway() {
		delete(game.Hallways, player.Position.Hallway())
	}

	player.Position = destination

	if destination.IsHallway() {
		game.Hallways[destination.Hallway()] = player.Character
	}
}
