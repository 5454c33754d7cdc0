package clueless

import (
	"maps"
	"slices"

	"github.com/rocketscienceinc/clueless-backend/internal/entity"
)

// ViewFor - the game as requesterID may see it. Hands of other players, the solution before the game is
// over and revealed cards of suggestions the requester took no part in are all withheld.
// Unknown requesters get the spectator view.
func (that *GameController) ViewFor(game *entity.Game, requesterID string) entity.PlayerView {
	view := entity.PlayerView{
		ID:               game.ID,
		Name:             game.Name,
		JoinCode:         game.JoinCode,
		Status:           game.Status,
		Version:          game.Version,
		Players:          make([]entity.PlayerSummary, 0, len(game.Players)),
		CurrentTurn:      game.CurrentTurn,
		Hallways:         make(map[entity.HallwayID]entity.Card, len(game.Hallways)),
		MyCards:          []entity.Card{},
		AvailableActions: that.AvailableActions(game, requesterID),
		Suggestions:      make([]entity.SuggestionView, 0, len(game.Suggestions)),
		Accusations:      make([]entity.Accusation, 0, len(game.Accusations)),
		Winner:           game.Winner,
	}

	maps.Copy(view.Hallways, game.Hallways)

	for _, player := range game.Players {
		view.Players = append(view.Players, entity.PlayerSummary{
			ID:        player.ID,
			Name:      player.Name,
			Character: player.Character,
			Position:  player.Position,
			Active:    player.Active,
			Connected: player.Connected,
			CardCount: len(player.Hand),
		})

		if player.ID == requesterID {
			view.MyCards = append(view.MyCards, player.Hand...)
		}
	}

	if pending := game.Pending; pending != nil {
		view.Pending = &entity.PendingDisproveView{
			SuggesterID: pending.SuggesterID,
			ResponderID: pending.ResponderID,
		}

		if requesterID != "" && pending.ResponderID == requesterID {
			view.Pending.Options = slices.Clone(pending.Options)
		}
	}

	for _, suggestion := range game.Suggestions {
		entry := entity.SuggestionView{
			SuggesterID: suggestion.SuggesterID,
			Suspect:     suggestion.Suspect,
			Weapon:      suggestion.Weapon,
			Room:        suggestion.Room,
			DisproverID: suggestion.DisproverID,
			Disproven:   suggestion.Disproven(),
			Cancelled:   suggestion.Cancelled,
			Timestamp:   suggestion.Timestamp.UnixMilli(),
		}

		if requesterID != "" && (requesterID == suggestion.SuggesterID || requesterID == suggestion.DisproverID) {
			entry.CardRevealed = suggestion.CardRevealed
		}

		view.Suggestions = append(view.Suggestions, entry)
	}

	view.Accusations = append(view.Accusations, game.Accusations...)

	if game.IsCompleted() && game.Solution != nil {
		solution := *game.Solution
		view.Solution = &solution
	}

	return view
}

// AvailableActions - the actions playerID may take right now, in a fixed order.
func (that *GameController) AvailableActions(game *entity.Game, playerID string) []entity.ActionType {
	actions := []entity.ActionType{}

	if !game.IsPlaying() {
		return actions
	}

	if game.Pending != nil {
		if game.Pending.ResponderID == playerID {
			actions = append(actions, entity.ActionDisprove)
		}

		return actions
	}

	player, ok := game.PlayerByID(playerID)
	if !ok || !player.Active || game.CurrentTurn != playerID {
		return actions
	}

	if !game.Turn.Moved {
		if destinations, err := that.board.Adjacents(player.Position, game.Hallways); err == nil && len(destinations) > 0 {
			actions = append(actions, entity.ActionMove)
		}
	}

	if player.Position.IsRoom() && !game.Turn.Suggested {
		actions = append(actions, entity.ActionSuggest)
	}

	return append(actions, entity.ActionAccuse, entity.ActionEndTurn)
}

// Board - the board the controller plays on.
func (that *GameController) Board() *entity.Board {
	return that.board
}
