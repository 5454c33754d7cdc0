package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/clueless-backend/internal/apperror"
)

type Status string

const (
	StatusWaiting   Status = "WAITING"
	StatusPlaying   Status = "PLAYING"
	StatusCompleted Status = "COMPLETED"
)

const (
	PublicType  = "public"
	PrivateType = "private"
)

const (
	MinPlayers = 3
	MaxPlayers = 6
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// GameConfig - what a client supplies when creating a game.
type GameConfig struct {
	Name       string `json:"name"`
	MaxPlayers int    `json:"max_players"`
	MinPlayers int    `json:"min_players,omitempty"`
	Visibility string `json:"visibility,omitempty"`
	Passphrase string `json:"passphrase,omitempty"`
}

// Game - the aggregate root every engine operation reads and mutates.
type Game struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	JoinCode   string `json:"join_code"`
	CreatedBy  string `json:"created_by,omitempty"`
	Visibility string `json:"visibility"`
	// PassphraseHash is a bcrypt hash, empty for public games.
	PassphraseHash string `json:"passphrase_hash,omitempty"`
	MaxPlayers     int    `json:"max_players"`
	MinPlayers     int    `json:"min_players"`

	Status      Status               `json:"status"`
	Players     []*Player            `json:"players"`
	CurrentTurn string               `json:"current_turn,omitempty"`
	Turn        TurnState            `json:"turn"`
	Hallways    map[HallwayID]Card   `json:"hallways"`
	Solution    *Solution            `json:"solution,omitempty"`
	Pending     *PendingDisprove     `json:"pending,omitempty"`
	Suggestions []Suggestion         `json:"suggestions"`
	Accusations []Accusation         `json:"accusations"`
	Winner      string               `json:"winner,omitempty"`

	// Version is bumped by every successful save and guards against lost updates.
	Version   uint64    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewGame(id string, conf GameConfig, now time.Time) *Game {
	visibility := conf.Visibility
	if visibility == "" {
		visibility = PublicType
	}

	return &Game{
		ID:          id,
		Name:        conf.Name,
		Visibility:  visibility,
		MaxPlayers:  conf.MaxPlayers,
		MinPlayers:  conf.MinPlayers,
		Status:      StatusWaiting,
		Players:     []*Player{},
		Hallways:    map[HallwayID]Card{},
		Suggestions: []Suggestion{},
		Accusations: []Accusation{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) IsPlaying() bool {
	return that.Status == StatusPlaying
}

func (that *Game) IsCompleted() bool {
	return that.Status == StatusCompleted
}

func (that *Game) IsPrivate() bool {
	return that.Visibility == PrivateType
}

// ConfirmPlayingState - returns nil only while turn based actions are allowed.
func (that *Game) ConfirmPlayingState() error {
	switch that.Status {
	case StatusPlaying:
		return nil
	case StatusWaiting, StatusCompleted:
		return fmt.Errorf("%w: status %s", apperror.ErrGameNotInProgress, that.Status)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) PlayerByID(id string) (*Player, bool) {
	for _, player := range that.Players {
		if player.ID == id {
			return player, true
		}
	}

	return nil, false
}

func (that *Game) PlayerByCharacter(character Card) (*Player, bool) {
	for _, player := range that.Players {
		if player.Character == character {
			return player, true
		}
	}

	return nil, false
}

func (that *Game) seatOf(id string) int {
	for i, player := range that.Players {
		if player.ID == id {
			return i
		}
	}

	return -1
}

func (that *Game) ActivePlayers() []*Player {
	var active []*Player
	for _, player := range that.Players {
		if player.Active {
			active = append(active, player)
		}
	}

	return active
}

// SeatsAfter - every other player in join order, starting with the seat right after id and wrapping.
func (that *Game) SeatsAfter(id string) []*Player {
	seat := that.seatOf(id)
	if seat < 0 {
		return nil
	}

	seats := make([]*Player, 0, len(that.Players)-1)
	for i := 1; i < len(that.Players); i++ {
		seats = append(seats, that.Players[(seat+i)%len(that.Players)])
	}

	return seats
}

// NextActiveAfter - the next active player in join order after id, or nil if none is left.
func (that *Game) NextActiveAfter(id string) *Player {
	for _, player := range that.SeatsAfter(id) {
		if player.Active {
			return player
		}
	}

	return nil
}

// AvailableCharacters - characters not taken yet, in hand-out order.
func (that *Game) AvailableCharacters() []Card {
	var free []Card
	for _, character := range Suspects {
		if _, taken := that.PlayerByCharacter(character); !taken {
			free = append(free, character)
		}
	}

	return free
}

// Clone - a deep copy, so a rejected action never leaks into the caller's value.
func (that *Game) Clone() *Game {
	data, err := json.Marshal(that)
	if err != nil {
		panic(fmt.Errorf("failed to clone game %s: %w", that.ID, err))
	}

	var clone Game
	if err = json.Unmarshal(data, &clone); err != nil {
		panic(fmt.Errorf("failed to clone game %s: %w", that.ID, err))
	}

	if clone.Hallways == nil {
		clone.Hallways = map[HallwayID]Card{}
	}

	return &clone
}

// Validate - checks the invariants a loaded or freshly mutated game must hold.
func (that *Game) Validate(board *Board) error {
	switch that.Status {
	case StatusWaiting, StatusPlaying, StatusCompleted:
	default:
		return fmt.Errorf("%w: %w: %s", apperror.ErrCorruptedState, ErrUnknownGameStatus, that.Status)
	}

	characters := make(map[Card]bool, len(that.Players))
	for _, player := range that.Players {
		if characters[player.Character] {
			return fmt.Errorf("%w: character %s seated twice", apperror.ErrCorruptedState, player.Character)
		}
		characters[player.Character] = true

		if !board.Contains(player.Position) {
			return fmt.Errorf("%w: player %s at %s", apperror.ErrUnknownPosition, player.ID, player.Position)
		}
	}

	for hallway, character := range that.Hallways {
		player, ok := that.PlayerByCharacter(character)
		if !ok || player.Position != HallwayPosition(hallway) {
			return fmt.Errorf("%w: hallway %s occupancy out of sync", apperror.ErrCorruptedState, hallway)
		}
	}

	for _, player := range that.Players {
		if player.Position.IsHallway() && that.Hallways[player.Position.Hallway()] != player.Character {
			return fmt.Errorf("%w: player %s in unmarked hallway", apperror.ErrCorruptedState, player.ID)
		}
	}

	if !that.IsPlaying() {
		return nil
	}

	if that.Solution == nil {
		return apperror.ErrMissingSolution
	}

	current, ok := that.PlayerByID(that.CurrentTurn)
	if !ok || !current.Active {
		return fmt.Errorf("%w: turn pointer %q is not an active player", apperror.ErrCorruptedState, that.CurrentTurn)
	}

	if that.Pending != nil {
		if that.Pending.SuggestionIndex < 0 || that.Pending.SuggestionIndex >= len(that.Suggestions) {
			return fmt.Errorf("%w: pending suggestion out of range", apperror.ErrCorruptedState)
		}

		if _, ok = that.PlayerByID(that.Pending.ResponderID); !ok {
			return fmt.Errorf("%w: unknown responder %q", apperror.ErrCorruptedState, that.Pending.ResponderID)
		}
	}

	return nil
}
