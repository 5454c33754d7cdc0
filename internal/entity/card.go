package entity

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/clueless-backend/internal/apperror"
)

// Card - a suspect, weapon or room name. The three sets are disjoint, so the name alone identifies the card.
type Card string

type CardCategory string

const (
	CategorySuspect CardCategory = "suspect"
	CategoryWeapon  CardCategory = "weapon"
	CategoryRoom    CardCategory = "room"
)

// Suspects double as the playable characters, in the order they are handed out on join.
const (
	ColonelMustard Card = "Colonel Mustard"
	MissScarlet    Card = "Miss Scarlet"
	ProfessorPlum  Card = "Professor Plum"
	MrGreen        Card = "Mr. Green"
	MrsWhite       Card = "Mrs. White"
	MrsPeacock     Card = "Mrs. Peacock"
)

const (
	Knife       Card = "Knife"
	Candlestick Card = "Candlestick"
	Revolver    Card = "Revolver"
	Rope        Card = "Rope"
	LeadPipe    Card = "Lead Pipe"
	Wrench      Card = "Wrench"
)

const (
	Kitchen      Card = "Kitchen"
	Ballroom     Card = "Ballroom"
	Conservatory Card = "Conservatory"
	BilliardRoom Card = "Billiard Room"
	Library      Card = "Library"
	Study        Card = "Study"
	Hall         Card = "Hall"
	Lounge       Card = "Lounge"
	DiningRoom   Card = "Dining Room"
)

var (
	Suspects = []Card{ColonelMustard, MissScarlet, ProfessorPlum, MrGreen, MrsWhite, MrsPeacock}
	Weapons  = []Card{Knife, Candlestick, Revolver, Rope, LeadPipe, Wrench}
	Rooms    = []Card{Kitchen, Ballroom, Conservatory, BilliardRoom, Library, Study, Hall, Lounge, DiningRoom}
)

// Category - returns the set the card belongs to, or "" for an unknown card.
func (that Card) Category() CardCategory {
	switch {
	case slices.Contains(Suspects, that):
		return CategorySuspect
	case slices.Contains(Weapons, that):
		return CategoryWeapon
	case slices.Contains(Rooms, that):
		return CategoryRoom
	default:
		return ""
	}
}

// Is - checks the card belongs to the given category.
func (that Card) Is(category CardCategory) bool {
	return that.Category() == category
}

// FullDeck - every card of the game, solution included.
func FullDeck() []Card {
	deck := make([]Card, 0, len(Suspects)+len(Weapons)+len(Rooms))
	deck = append(deck, Suspects...)
	deck = append(deck, Weapons...)
	deck = append(deck, Rooms...)

	return deck
}

type Solution struct {
	Suspect Card `json:"suspect"`
	Weapon  Card `json:"weapon"`
	Room    Card `json:"room"`
}

// Matches - exact comparison of all three fields.
func (that *Solution) Matches(suspect, weapon, room Card) bool {
	return that.Suspect == suspect && that.Weapon == weapon && that.Room == room
}

func (that *Solution) Cards() []Card {
	return []Card{that.Suspect, that.Weapon, that.Room}
}

// Rand - the randomness DealNewGame needs. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// DealNewGame - withholds one card of each category as the solution, shuffles the rest and deals
// them round robin, so hand sizes differ by at most one.
func DealNewGame(rnd Rand, playerCount int) (Solution, [][]Card, error) {
	if playerCount <= 0 {
		return Solution{}, nil, fmt.Errorf("%w: %d players", apperror.ErrInvalidConfig, playerCount)
	}

	suspects := slices.Clone(Suspects)
	weapons := slices.Clone(Weapons)
	rooms := slices.Clone(Rooms)

	solution := Solution{
		Suspect: pick(rnd, &suspects),
		Weapon:  pick(rnd, &weapons),
		Room:    pick(rnd, &rooms),
	}

	deck := make([]Card, 0, len(suspects)+len(weapons)+len(rooms))
	deck = append(deck, suspects...)
	deck = append(deck, weapons...)
	deck = append(deck, rooms...)

	rnd.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	hands := make([][]Card, playerCount)
	for i, card := range deck {
		hands[i%playerCount] = append(hands[i%playerCount], card)
	}

	return solution, hands, nil
}

// pick - removes a uniformly chosen card from pool and returns it.
func pick(rnd Rand, pool *[]Card) Card {
	idx := rnd.IntN(len(*pool))
	card := (*pool)[idx]
	*pool = slices.Delete(*pool, idx, idx+1)

	return card
}
