package clueless

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/rocketscienceinc/clueless-backend/internal/apperror"
	"github.com/rocketscienceinc/clueless-backend/internal/entity"
)

// GameController - the rules engine. It never touches storage or transport: every call takes a game,
// returns an updated copy plus the events to emit, and leaves the input untouched on error.
type GameController struct {
	board      *entity.Board
	newRand    func() entity.Rand
	now        func() time.Time
	minPlayers int
}

type Option func(*GameController)

// WithRand - overrides the randomness used to pick the solution and shuffle the deck.
func WithRand(newRand func() entity.Rand) Option {
	return func(that *GameController) {
		that.newRand = newRand
	}
}

func WithClock(now func() time.Time) Option {
	return func(that *GameController) {
		that.now = now
	}
}

// WithMinPlayers - the minimum used for games that do not set their own.
func WithMinPlayers(n int) Option {
	return func(that *GameController) {
		that.minPlayers = n
	}
}

func NewGameController(opts ...Option) *GameController {
	controller := &GameController{
		board:      entity.ClassicBoard,
		minPlayers: entity.MinPlayers,
		newRand: func() entity.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec // not a security boundary
		},
		now: func() time.Time {
			return time.Now().UTC()
		},
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// CreateGame - validates the config and returns a WAITING game with no players.
func (that *GameController) CreateGame(id string, conf entity.GameConfig) (*entity.Game, error) {
	conf.Name = strings.TrimSpace(conf.Name)
	if conf.Name == "" {
		return nil, fmt.Errorf("%w: name is required", apperror.ErrInvalidConfig)
	}

	if conf.MaxPlayers == 0 {
		conf.MaxPlayers = entity.MaxPlayers
	}

	if conf.MaxPlayers < entity.MinPlayers || conf.MaxPlayers > entity.MaxPlayers {
		return nil, fmt.Errorf("%w: max players must be between %d and %d", apperror.ErrInvalidConfig, entity.MinPlayers, entity.MaxPlayers)
	}

	if conf.MinPlayers == 0 {
		conf.MinPlayers = min(that.minPlayers, conf.MaxPlayers)
	}

	if conf.MinPlayers < entity.MinPlayers || conf.MinPlayers > conf.MaxPlayers {
		return nil, fmt.Errorf("%w: min players must be between %d and %d", apperror.ErrInvalidConfig, entity.MinPlayers, conf.MaxPlayers)
	}

	switch conf.Visibility {
	case "", entity.PublicType, entity.PrivateType:
	default:
		return nil, fmt.Errorf("%w: unknown visibility %q", apperror.ErrInvalidConfig, conf.Visibility)
	}

	return entity.NewGame(id, conf, that.now()), nil
}

// JoinGame - seats userID with the first free character. Re-joining is idempotent and marks the
// player connected again. Reaching the minimum player count deals the cards and starts the game.
func (that *GameController) JoinGame(game *entity.Game, userID, displayName string) (*entity.Game, entity.Card, []entity.Event, error) {
	if game.IsCompleted() {
		return nil, "", nil, apperror.ErrGameAlreadyCompleted
	}

	next := game.Clone()

	if player, ok := next.PlayerByID(userID); ok {
		player.Connected = true
		next.UpdatedAt = that.now()

		return next, player.Character, []entity.Event{stateChanged(next)}, nil
	}

	if next.IsPlaying() {
		return nil, "", nil, apperror.ErrGameAlreadyStarted
	}

	free := next.AvailableCharacters()
	if len(next.Players) >= next.MaxPlayers || len(free) == 0 {
		return nil, "", nil, fmt.Errorf("%w: %d/%d players", apperror.ErrGameFull, len(next.Players), next.MaxPlayers)
	}

	player := entity.NewPlayer(userID, displayName, free[0])
	next.Players = append(next.Players, player)

	events := []entity.Event{{
		Type:     entity.EventPlayerJoined,
		GameID:   next.ID,
		PlayerID: player.ID,
	}}

	if len(next.Players) >= minPlayers(next) {
		started, err := that.start(next)
		if err != nil {
			return nil, "", nil, fmt.Errorf("failed to start game: %w", err)
		}
		events = append(events, started...)
	}

	next.UpdatedAt = that.now()
	events = append(events, stateChanged(next))

	return next, player.Character, events, nil
}

// Apply - validates one action of playerID against the game and applies it.
func (that *GameController) Apply(game *entity.Game, playerID string, action entity.Action) (*entity.Game, []entity.Event, error) {
	if err := game.ConfirmPlayingState(); err != nil {
		return nil, nil, err
	}

	next := game.Clone()

	player, ok := next.PlayerByID(playerID)
	if !ok {
		return nil, nil, apperror.ErrPlayerNotInGame
	}

	var (
		events []entity.Event
		err    error
	)

	switch action.Type {
	case entity.ActionDisprove:
		events, err = that.disprove(next, player, action.Card)
	case entity.ActionMove, entity.ActionSuggest, entity.ActionAccuse, entity.ActionEndTurn:
		if err = confirmTurn(next, player); err != nil {
			return nil, nil, err
		}
		events, err = that.applyTurnAction(next, player, action)
	default:
		err = fmt.Errorf("%w: %q", apperror.ErrUnknownAction, action.Type)
	}

	if err != nil {
		return nil, nil, err
	}

	next.UpdatedAt = that.now()
	events = append(events, stateChanged(next))

	return next, events, nil
}

func (that *GameController) applyTurnAction(game *entity.Game, player *entity.Player, action entity.Action) ([]entity.Event, error) {
	switch action.Type {
	case entity.ActionMove:
		return that.move(game, player, action.Destination)
	case entity.ActionSuggest:
		return that.suggest(game, player, action.Suspect, action.Weapon)
	case entity.ActionAccuse:
		return that.accuse(game, player, action.Suspect, action.Weapon, action.Room)
	default:
		return that.endTurn(game), nil
	}
}

// HandleDisconnect - marks the player offline. A pending disprove owed by them is answered with their
// first matching card; if they held the turn, any pending disprove is dropped and the turn passes on.
func (that *GameController) HandleDisconnect(game *entity.Game, playerID string) (*entity.Game, []entity.Event, error) {
	next := game.Clone()

	player, ok := next.PlayerByID(playerID)
	if !ok {
		return nil, nil, apperror.ErrPlayerNotInGame
	}

	player.Connected = false
	events := []entity.Event{{
		Type:     entity.EventPlayerDisconnected,
		GameID:   next.ID,
		PlayerID: player.ID,
	}}

	if next.IsPlaying() {
		if pending := next.Pending; pending != nil && pending.ResponderID == playerID && len(pending.Options) > 0 {
			events = append(events, revealCard(next, pending.Options[0])...)
		}

		if next.CurrentTurn == playerID {
			if pending := next.Pending; pending != nil {
				next.Suggestions[pending.SuggestionIndex].Cancelled = true
				next.Pending = nil
			}
			events = append(events, that.endTurn(next)...)
		}
	}

	next.UpdatedAt = that.now()
	events = append(events, stateChanged(next))

	return next, events, nil
}

func (that *GameController) start(game *entity.Game) ([]entity.Event, error) {
	solution, hands, err := entity.DealNewGame(that.newRand(), len(game.Players))
	if err != nil {
		return nil, fmt.Errorf("failed to deal cards: %w", err)
	}

	for i, player := range game.Players {
		player.Hand = hands[i]
	}

	game.Solution = &solution
	game.Status = entity.StatusPlaying
	game.CurrentTurn = firstConnected(game).ID
	game.Turn = entity.TurnState{}
	game.Hallways = map[entity.HallwayID]entity.Card{}

	return []entity.Event{turnChanged(game)}, nil
}

// confirmTurn - the checks shared by every action only the turn owner may take.
func confirmTurn(game *entity.Game, player *entity.Player) error {
	if game.CurrentTurn != player.ID {
		return apperror.ErrNotYourTurn
	}

	if !player.Active {
		return apperror.ErrPlayerEliminated
	}

	if game.Pending != nil {
		return fmt.Errorf("%w: waiting on %s", apperror.ErrSuggestionPending, game.Pending.ResponderID)
	}

	return nil
}

// firstConnected - the opening seat. Players who left while the game was waiting are skipped,
// unless nobody is connected at all.
func firstConnected(game *entity.Game) *entity.Player {
	for _, player := range game.Players {
		if player.Connected {
			return player
		}
	}

	return game.Players[0]
}

func minPlayers(game *entity.Game) int {
	return min(max(game.MinPlayers, entity.MinPlayers), game.MaxPlayers)
}

func stateChanged(game *entity.Game) entity.Event {
	return entity.Event{Type: entity.EventStateChanged, GameID: game.ID}
}
