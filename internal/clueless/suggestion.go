package clueless

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/clueless-backend/internal/apperror"
	"github.com/rocketscienceinc/clueless-backend/internal/entity"
)

func (that *GameController) suggest(game *entity.Game, player *entity.Player, suspect, weapon entity.Card) ([]entity.Event, error) {
	if !player.Position.IsRoom() {
		return nil, apperror.ErrNotInRoom
	}

	if game.Turn.Suggested {
		return nil, apperror.ErrAlreadySuggested
	}

	if err := confirmCategory(suspect, entity.CategorySuspect); err != nil {
		return nil, err
	}

	if err := confirmCategory(weapon, entity.CategoryWeapon); err != nil {
		return nil, err
	}

	room := player.Position.Room()

	// the named suspect is pulled into the room, even out of a hallway
	if target, ok := game.PlayerByCharacter(suspect); ok && target.Position != entity.RoomPosition(room) {
		relocate(game, target, entity.RoomPosition(room))
	}

	game.Suggestions = append(game.Suggestions, entity.Suggestion{
		SuggesterID: player.ID,
		Suspect:     suspect,
		Weapon:      weapon,
		Room:        room,
		Timestamp:   that.now(),
	})
	game.Turn.Suggested = true

	index := len(game.Suggestions) - 1
	suggestion := &game.Suggestions[index]

	responder, options := FindResponder(game, player.ID, suggestion.Cards()...)
	if responder == nil {
		return []entity.Event{{
			Type:        entity.EventSuggestionResolved,
			GameID:      game.ID,
			SuggesterID: player.ID,
			Suspect:     suspect,
			Weapon:      weapon,
			Room:        room,
		}}, nil
	}

	suggestion.DisproverID = responder.ID
	game.Pending = &entity.PendingDisprove{
		SuggestionIndex: index,
		SuggesterID:     player.ID,
		ResponderID:     responder.ID,
		Options:         options,
	}

	announce := entity.Event{
		Type:        entity.EventSuggestionPendingDisprove,
		GameID:      game.ID,
		SuggesterID: player.ID,
		ResponderID: responder.ID,
		Suspect:     suspect,
		Weapon:      weapon,
		Room:        room,
	}

	// an offline responder answers with their first matching card
	if !responder.Connected {
		return append([]entity.Event{announce}, revealCard(game, options[0])...), nil
	}

	prompt := announce
	prompt.To = responder.ID
	prompt.Options = slices.Clone(options)

	return []entity.Event{announce, prompt}, nil
}

// FindResponder - walks the seats clockwise from the suggester and returns the first player holding
// any of cards, together with every matching card in hand order. Eliminated players still answer.
func FindResponder(game *entity.Game, suggesterID string, cards ...entity.Card) (*entity.Player, []entity.Card) {
	for _, candidate := range game.SeatsAfter(suggesterID) {
		if matching := candidate.MatchingCards(cards...); len(matching) > 0 {
			return candidate, matching
		}
	}

	return nil, nil
}

func (that *GameController) disprove(game *entity.Game, player *entity.Player, card entity.Card) ([]entity.Event, error) {
	pending := game.Pending
	if pending == nil || pending.ResponderID != player.ID {
		return nil, apperror.ErrNotResponder
	}

	if !player.Holds(card) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrCardNotHeld, card)
	}

	suggestion := game.Suggestions[pending.SuggestionIndex]
	if !slices.Contains(suggestion.Cards(), card) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrCardNotInSuggestion, card)
	}

	return revealCard(game, card), nil
}

// revealCard - closes the pending disprove. Everyone learns that a card was shown,
// only the suggester learns which one.
func revealCard(game *entity.Game, card entity.Card) []entity.Event {
	pending := game.Pending
	suggestion := &game.Suggestions[pending.SuggestionIndex]
	suggestion.CardRevealed = card
	game.Pending = nil

	announce := entity.Event{
		Type:        entity.EventSuggestionResolved,
		GameID:      game.ID,
		SuggesterID: pending.SuggesterID,
		ResponderID: pending.ResponderID,
		Suspect:     suggestion.Suspect,
		Weapon:      suggestion.Weapon,
		Room:        suggestion.Room,
		Disproven:   true,
	}

	reveal := announce
	reveal.To = pending.SuggesterID
	reveal.Card = card

	return []entity.Event{announce, reveal}
}

func confirmCategory(card entity.Card, category entity.CardCategory) error {
	if !card.Is(category) {
		return fmt.Errorf("%w: %q is not a %s", apperror.ErrInvalidCard, card, category)
	}

	return nil
}
