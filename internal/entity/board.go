package entity

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/clueless-backend/internal/apperror"
)

type roomInfo struct {
	hallways      []HallwayID
	secretPassage Card
}

// Board - the fixed 3x3 mansion: 9 rooms, 12 hallways, 2 secret passages and 6 starting cells.
// It holds no runtime state; hallway occupancy lives on the Game.
type Board struct {
	rooms    map[Card]roomInfo
	hallways map[HallwayID][2]Card
	starts   map[Card]HallwayID
}

// ClassicBoard - the only board the game is played on.
var ClassicBoard = newClassicBoard()

func newClassicBoard() *Board {
	hallways := map[HallwayID][2]Card{
		"kitchen-ballroom":          {Kitchen, Ballroom},
		"ballroom-conservatory":     {Ballroom, Conservatory},
		"kitchen-diningroom":        {Kitchen, DiningRoom},
		"ballroom-billiardroom":     {Ballroom, BilliardRoom},
		"conservatory-billiardroom": {Conservatory, BilliardRoom},
		"diningroom-billiardroom":   {DiningRoom, BilliardRoom},
		"billiardroom-library":      {BilliardRoom, Library},
		"diningroom-lounge":         {DiningRoom, Lounge},
		"library-study":             {Library, Study},
		"lounge-hall":               {Lounge, Hall},
		"library-hall":              {Library, Hall},
		"hall-study":                {Hall, Study},
	}

	rooms := make(map[Card]roomInfo, len(Rooms))
	for _, room := range Rooms {
		rooms[room] = roomInfo{}
	}

	for id, ends := range hallways {
		for _, room := range ends {
			info := rooms[room]
			info.hallways = append(info.hallways, id)
			rooms[room] = info
		}
	}

	for room, info := range rooms {
		slices.Sort(info.hallways)
		rooms[room] = info
	}

	passages := map[Card]Card{
		Kitchen:      Study,
		Study:        Kitchen,
		Lounge:       Conservatory,
		Conservatory: Lounge,
	}
	for from, to := range passages {
		info := rooms[from]
		info.secretPassage = to
		rooms[from] = info
	}

	return &Board{
		rooms:    rooms,
		hallways: hallways,
		starts: map[Card]HallwayID{
			ColonelMustard: "lounge-hall",
			MissScarlet:    "hall-study",
			ProfessorPlum:  "library-study",
			MrGreen:        "conservatory-billiardroom",
			MrsWhite:       "ballroom-billiardroom",
			MrsPeacock:     "kitchen-ballroom",
		},
	}
}

// Hallways - every hallway id, sorted.
func (that *Board) Hallways() []HallwayID {
	ids := make([]HallwayID, 0, len(that.hallways))
	for id := range that.hallways {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// HallwayRooms - the two rooms a hallway connects.
func (that *Board) HallwayRooms(id HallwayID) ([2]Card, bool) {
	ends, ok := that.hallways[id]
	return ends, ok
}

// StartHallway - the single hallway next to a character's starting cell.
func (that *Board) StartHallway(character Card) (HallwayID, bool) {
	id, ok := that.starts[character]
	return id, ok
}

// SecretPassage - the room reachable by secret passage, or "" if there is none.
func (that *Board) SecretPassage(room Card) Card {
	return that.rooms[room].secretPassage
}

// Contains - reports whether the position exists on this board.
func (that *Board) Contains(pos Position) bool {
	switch pos.Kind {
	case PositionStart:
		_, ok := that.starts[Card(pos.ID)]
		return ok
	case PositionHallway:
		_, ok := that.hallways[pos.Hallway()]
		return ok
	case PositionRoom:
		_, ok := that.rooms[pos.Room()]
		return ok
	default:
		return false
	}
}

// Adjacents - legal destinations from pos given which hallways are currently occupied.
// An unknown position is an integrity error, never a user error.
func (that *Board) Adjacents(pos Position, occupied map[HallwayID]Card) ([]Position, error) {
	isFree := func(id HallwayID) bool {
		_, taken := occupied[id]
		return !taken
	}

	switch pos.Kind {
	case PositionStart:
		hallway, ok := that.starts[Card(pos.ID)]
		if !ok {
			return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownPosition, pos)
		}

		if !isFree(hallway) {
			return []Position{}, nil
		}

		return []Position{HallwayPosition(hallway)}, nil

	case PositionHallway:
		ends, ok := that.hallways[pos.Hallway()]
		if !ok {
			return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownPosition, pos)
		}

		return []Position{RoomPosition(ends[0]), RoomPosition(ends[1])}, nil

	case PositionRoom:
		info, ok := that.rooms[pos.Room()]
		if !ok {
			return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownPosition, pos)
		}

		destinations := make([]Position, 0, len(info.hallways)+1)
		for _, hallway := range info.hallways {
			if isFree(hallway) {
				destinations = append(destinations, HallwayPosition(hallway))
			}
		}

		if info.secretPassage != "" {
			destinations = append(destinations, RoomPosition(info.secretPassage))
		}

		return destinations, nil

	default:
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownPosition, pos)
	}
}

// CanMoveTo - checks a single destination against Adjacents.
func (that *Board) CanMoveTo(from, to Position, occupied map[HallwayID]Card) (bool, error) {
	destinations, err := that.Adjacents(from, occupied)
	if err != nil {
		return false, err
	}

	return slices.Contains(destinations, to), nil
}
