package clueless

import "github.com/rocketscienceinc/clueless-backend/internal/entity"

// endTurn - hands the turn to the next active player in join order.
// When only one active player is left the game completes in their favour.
func (that *GameController) endTurn(game *entity.Game) []entity.Event {
	active := game.ActivePlayers()

	switch len(active) {
	case 0:
		return []entity.Event{complete(game, "")}
	case 1:
		return []entity.Event{complete(game, active[0].ID)}
	}

	next := game.NextActiveAfter(game.CurrentTurn)
	if next == nil {
		next = active[0]
	}

	game.CurrentTurn = next.ID
	game.Turn = entity.TurnState{}

	return []entity.Event{turnChanged(game)}
}

func complete(game *entity.Game, winnerID string) entity.Event {
	game.Status = entity.StatusCompleted
	game.Winner = winnerID
	game.CurrentTurn = ""
	game.Pending = nil
	game.Turn = entity.TurnState{}

	var solution *entity.Solution
	if game.Solution != nil {
		revealed := *game.Solution
		solution = &revealed
	}

	return entity.Event{
		Type:     entity.EventGameCompleted,
		GameID:   game.ID,
		Winner:   winnerID,
		Solution: solution,
	}
}

func turnChanged(game *entity.Game) entity.Event {
	return entity.Event{
		Type:     entity.EventTurnChanged,
		GameID:   game.ID,
		PlayerID: game.CurrentTurn,
	}
}
