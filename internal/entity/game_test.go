package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/clueless-backend/internal/apperror"
)

func playingGame() *Game {
	game := NewGame("g-1", GameConfig{Name: "test", MaxPlayers: 6, MinPlayers: 3}, time.Unix(0, 0).UTC())
	game.Players = []*Player{
		NewPlayer("p1", "Ann", ColonelMustard),
		NewPlayer("p2", "Bob", MissScarlet),
		NewPlayer("p3", "Cid", ProfessorPlum),
		NewPlayer("p4", "Dan", MrGreen),
	}
	game.Status = StatusPlaying
	game.CurrentTurn = "p1"
	game.Solution = &Solution{Suspect: MrsWhite, Weapon: Rope, Room: Hall}

	return game
}

func TestNewGame(t *testing.T) {
	// Given: a config without visibility
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	// When: the game is created
	game := NewGame("123", GameConfig{Name: "friday", MaxPlayers: 4, MinPlayers: 3}, now)

	// Then: it is an empty public waiting room
	expected := &Game{
		ID:          "123",
		Name:        "friday",
		Visibility:  PublicType,
		MaxPlayers:  4,
		MinPlayers:  3,
		Status:      StatusWaiting,
		Players:     []*Player{},
		Hallways:    map[HallwayID]Card{},
		Suggestions: []Suggestion{},
		Accusations: []Accusation{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	require.Equal(t, expected, game)
}

func TestGame_ConfirmPlayingState(t *testing.T) {
	game := playingGame()
	require.NoError(t, game.ConfirmPlayingState())

	game.Status = StatusWaiting
	require.ErrorIs(t, game.ConfirmPlayingState(), apperror.ErrGameNotInProgress)

	game.Status = StatusCompleted
	require.ErrorIs(t, game.ConfirmPlayingState(), apperror.ErrGameNotInProgress)

	game.Status = "PAUSED"
	require.ErrorIs(t, game.ConfirmPlayingState(), ErrUnknownGameStatus)
}

func TestGame_Seats(t *testing.T) {
	game := playingGame()

	t.Run("SeatsAfter wraps in join order", func(t *testing.T) {
		ids := func(players []*Player) []string {
			var out []string
			for _, player := range players {
				out = append(out, player.ID)
			}
			return out
		}

		assert.Equal(t, []string{"p4", "p1", "p2"}, ids(game.SeatsAfter("p3")))
		assert.Equal(t, []string{"p2", "p3", "p4"}, ids(game.SeatsAfter("p1")))
		assert.Nil(t, game.SeatsAfter("zz"))
	})

	t.Run("NextActiveAfter skips eliminated players", func(t *testing.T) {
		game.Players[0].Active = false
		game.Players[1].Active = false

		assert.Equal(t, "p3", game.NextActiveAfter("p4").ID)
		assert.Equal(t, "p4", game.NextActiveAfter("p3").ID)

		game.Players[3].Active = false
		assert.Nil(t, game.NextActiveAfter("p3"))
	})

	t.Run("AvailableCharacters keeps hand-out order", func(t *testing.T) {
		assert.Equal(t, []Card{MrsWhite, MrsPeacock}, game.AvailableCharacters())
	})
}

func TestGame_Clone(t *testing.T) {
	// Given: a game with state in every nested collection
	game := playingGame()
	game.Players[0].Hand = []Card{Knife, Kitchen}
	game.Players[0].Position = HallwayPosition("lounge-hall")
	game.Hallways["lounge-hall"] = ColonelMustard
	game.Suggestions = append(game.Suggestions, Suggestion{SuggesterID: "p1", Suspect: MrGreen, Weapon: Knife, Room: Study})

	// When: the clone is modified
	clone := game.Clone()
	clone.Players[0].Hand[0] = Wrench
	clone.Hallways["hall-study"] = MissScarlet
	clone.Suggestions[0].CardRevealed = Knife
	clone.Solution.Room = Kitchen

	// Then: the original does not change
	assert.Equal(t, Knife, game.Players[0].Hand[0])
	assert.NotContains(t, game.Hallways, HallwayID("hall-study"))
	assert.Empty(t, game.Suggestions[0].CardRevealed)
	assert.Equal(t, Hall, game.Solution.Room)
}

func TestGame_Validate(t *testing.T) {
	require.NoError(t, playingGame().Validate(ClassicBoard))

	tests := []struct {
		name     string
		corrupt  func(game *Game)
		expected error
	}{
		{
			name:     "unknown status",
			corrupt:  func(game *Game) { game.Status = "PAUSED" },
			expected: apperror.ErrCorruptedState,
		},
		{
			name:     "unknown position",
			corrupt:  func(game *Game) { game.Players[1].Position = RoomPosition("Attic") },
			expected: apperror.ErrUnknownPosition,
		},
		{
			name:     "character seated twice",
			corrupt:  func(game *Game) { game.Players[1].Character = ColonelMustard },
			expected: apperror.ErrCorruptedState,
		},
		{
			name:     "hallway marked without occupant",
			corrupt:  func(game *Game) { game.Hallways["hall-study"] = MissScarlet },
			expected: apperror.ErrCorruptedState,
		},
		{
			name:     "occupant without hallway mark",
			corrupt:  func(game *Game) { game.Players[2].Position = HallwayPosition("library-study") },
			expected: apperror.ErrCorruptedState,
		},
		{
			name:     "missing solution",
			corrupt:  func(game *Game) { game.Solution = nil },
			expected: apperror.ErrMissingSolution,
		},
		{
			name:     "turn held by an eliminated player",
			corrupt:  func(game *Game) { game.Players[0].Active = false },
			expected: apperror.ErrCorruptedState,
		},
		{
			name: "pending suggestion out of range",
			corrupt: func(game *Game) {
				game.Pending = &PendingDisprove{SuggestionIndex: 2, SuggesterID: "p1", ResponderID: "p2"}
			},
			expected: apperror.ErrCorruptedState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := playingGame()
			tt.corrupt(game)

			err := game.Validate(ClassicBoard)

			require.ErrorIs(t, err, tt.expected)
			assert.True(t, apperror.IsIntegrity(err))
		})
	}
}
