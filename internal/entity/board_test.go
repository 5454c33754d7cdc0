package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/clueless-backend/internal/apperror"
)

func TestBoard_Layout(t *testing.T) {
	assert.Len(t, ClassicBoard.Hallways(), 12)

	for _, character := range Suspects {
		hallway, ok := ClassicBoard.StartHallway(character)
		require.True(t, ok)
		assert.True(t, ClassicBoard.Contains(HallwayPosition(hallway)))
		assert.True(t, ClassicBoard.Contains(StartPosition(character)))
	}

	assert.Equal(t, Study, ClassicBoard.SecretPassage(Kitchen))
	assert.Equal(t, Kitchen, ClassicBoard.SecretPassage(Study))
	assert.Equal(t, Conservatory, ClassicBoard.SecretPassage(Lounge))
	assert.Equal(t, Lounge, ClassicBoard.SecretPassage(Conservatory))
	assert.Empty(t, ClassicBoard.SecretPassage(Hall))
}

func TestBoard_Adjacents(t *testing.T) {
	free := map[HallwayID]Card{}

	t.Run("start leads only to its hallway", func(t *testing.T) {
		destinations, err := ClassicBoard.Adjacents(StartPosition(MissScarlet), free)
		require.NoError(t, err)
		assert.Equal(t, []Position{HallwayPosition("hall-study")}, destinations)

		destinations, err = ClassicBoard.Adjacents(StartPosition(MissScarlet), map[HallwayID]Card{"hall-study": MrGreen})
		require.NoError(t, err)
		assert.Empty(t, destinations)
	})

	t.Run("hallway leads to both rooms", func(t *testing.T) {
		destinations, err := ClassicBoard.Adjacents(HallwayPosition("library-study"), free)
		require.NoError(t, err)
		assert.ElementsMatch(t, []Position{RoomPosition(Library), RoomPosition(Study)}, destinations)
	})

	t.Run("room skips occupied hallways and keeps the passage", func(t *testing.T) {
		destinations, err := ClassicBoard.Adjacents(RoomPosition(Study), map[HallwayID]Card{"hall-study": MrGreen})
		require.NoError(t, err)
		assert.ElementsMatch(t, []Position{HallwayPosition("library-study"), RoomPosition(Kitchen)}, destinations)
	})

	t.Run("unknown positions", func(t *testing.T) {
		for _, pos := range []Position{
			StartPosition(Rope),
			HallwayPosition("attic-cellar"),
			RoomPosition("Attic"),
			{Kind: "roof", ID: "x"},
		} {
			_, err := ClassicBoard.Adjacents(pos, free)
			require.ErrorIs(t, err, apperror.ErrUnknownPosition, pos.String())
			assert.False(t, ClassicBoard.Contains(pos))
		}
	})
}

// every hallway can be walked both ways between its two rooms
func TestBoard_HallwayRoundTrip(t *testing.T) {
	free := map[HallwayID]Card{}

	for _, hallway := range ClassicBoard.Hallways() {
		ends, ok := ClassicBoard.HallwayRooms(hallway)
		require.True(t, ok)

		for _, room := range ends {
			ok, err := ClassicBoard.CanMoveTo(RoomPosition(room), HallwayPosition(hallway), free)
			require.NoError(t, err)
			assert.True(t, ok, "%s -> %s", room, hallway)

			ok, err = ClassicBoard.CanMoveTo(HallwayPosition(hallway), RoomPosition(room), free)
			require.NoError(t, err)
			assert.True(t, ok, "%s -> %s", hallway, room)
		}
	}
}

func TestBoard_RoomDegrees(t *testing.T) {
	free := map[HallwayID]Card{}
	expected := map[Card]int{
		Kitchen: 3, Ballroom: 3, Conservatory: 3,
		BilliardRoom: 4, Library: 3, Study: 3,
		Hall: 3, Lounge: 3, DiningRoom: 3,
	}

	for room, degree := range expected {
		destinations, err := ClassicBoard.Adjacents(RoomPosition(room), free)
		require.NoError(t, err)
		assert.Len(t, destinations, degree, room)
	}
}
