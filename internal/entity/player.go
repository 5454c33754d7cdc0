package entity

import "slices"

// Player - a seat in one game. Players are never removed, only marked inactive or disconnected.
type Player struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Character Card     `json:"character"`
	Position  Position `json:"position"`
	Hand      []Card   `json:"hand,omitempty"`
	Active    bool     `json:"active"`
	Connected bool     `json:"connected"`
}

func NewPlayer(id, name string, character Card) *Player {
	return &Player{
		ID:        id,
		Name:      name,
		Character: character,
		Position:  StartPosition(character),
		Active:    true,
		Connected: true,
	}
}

func (that *Player) Holds(card Card) bool {
	return slices.Contains(that.Hand, card)
}

// MatchingCards - the cards in hand that appear in cards, in hand order.
func (that *Player) MatchingCards(cards ...Card) []Card {
	var matching []Card
	for _, card := range that.Hand {
		if slices.Contains(cards, card) {
			matching = append(matching, card)
		}
	}

	return matching
}

// PlayerSession - which game a user is currently seated in.
type PlayerSession struct {
	ID     string `json:"id"`
	GameID string `json:"game_id,omitempty"`
}
