package clueless

import (
	"github.com/rocketscienceinc/clueless-backend/internal/apperror"
	"github.com/rocketscienceinc/clueless-backend/internal/entity"
)

// accuse - a correct accusation wins the game; a wrong one eliminates the accuser, who still
// has to disprove suggestions, and passes the turn on.
func (that *GameController) accuse(game *entity.Game, player *entity.Player, suspect, weapon, room entity.Card) ([]entity.Event, error) {
	if err := confirmCategory(suspect, entity.CategorySuspect); err != nil {
		return nil, err
	}

	if err := confirmCategory(weapon, entity.CategoryWeapon); err != nil {
		return nil, err
	}

	if err := confirmCategory(room, entity.CategoryRoom); err != nil {
		return nil, err
	}

	if game.Solution == nil {
		return nil, apperror.ErrMissingSolution
	}

	accusation := entity.Accusation{
		AccuserID: player.ID,
		Suspect:   suspect,
		Weapon:    weapon,
		Room:      room,
		Correct:   game.Solution.Matches(suspect, weapon, room),
		Timestamp: that.now(),
	}
	game.Accusations = append(game.Accusations, accusation)

	events := []entity.Event{{
		Type:       entity.EventAccusationResolved,
		GameID:     game.ID,
		PlayerID:   player.ID,
		Accusation: &accusation,
	}}

	if accusation.Correct {
		return append(events, complete(game, player.ID)), nil
	}

	player.Active = false
	events = append(events, entity.Event{
		Type:     entity.EventPlayerEliminated,
		GameID:   game.ID,
		PlayerID: player.ID,
	})

	return append(events, that.endTurn(game)...), nil
}
