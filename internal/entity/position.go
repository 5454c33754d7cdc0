package entity

import "fmt"

type PositionKind string

const (
	PositionStart   PositionKind = "start"
	PositionHallway PositionKind = "hallway"
	PositionRoom    PositionKind = "room"
)

// HallwayID - names a hallway by the two rooms it joins, e.g. "hall-study".
type HallwayID string

// Position - where a character stands. ID is a character card for a starting cell,
// a HallwayID for a hallway and a room card for a room.
type Position struct {
	Kind PositionKind `json:"kind"`
	ID   string       `json:"id"`
}

func StartPosition(character Card) Position {
	return Position{Kind: PositionStart, ID: string(character)}
}

func HallwayPosition(id HallwayID) Position {
	return Position{Kind: PositionHallway, ID: string(id)}
}

func RoomPosition(room Card) Position {
	return Position{Kind: PositionRoom, ID: string(room)}
}

func (that Position) IsStart() bool {
	return that.Kind == PositionStart
}

func (that Position) IsHallway() bool {
	return that.Kind == PositionHallway
}

func (that Position) IsRoom() bool {
	return that.Kind == PositionRoom
}

// Hallway - the hallway id, only meaningful when IsHallway.
func (that Position) Hallway() HallwayID {
	return HallwayID(that.ID)
}

// Room - the room card, only meaningful when IsRoom.
func (that Position) Room() Card {
	return Card(that.ID)
}

func (that Position) String() string {
	return fmt.Sprintf("%s:%s", that.Kind, that.ID)
}
