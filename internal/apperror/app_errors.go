package apperror

import "errors"

// validation errors: recoverable, reported to the acting client, state is left untouched.
var (
	ErrGameNotInProgress    = errors.New("game is not in progress")
	ErrGameFull             = errors.New("game is full")
	ErrGameAlreadyCompleted = errors.New("game is already completed")
	ErrGameAlreadyStarted   = errors.New("game has already started")
	ErrNotYourTurn          = errors.New("it's not your turn")
	ErrPlayerNotInGame      = errors.New("player is not in this game")
	ErrPlayerEliminated     = errors.New("player has been eliminated")
	ErrIllegalDestination   = errors.New("illegal move destination")
	ErrAlreadyMoved         = errors.New("already moved this turn")
	ErrNotInRoom            = errors.New("you must be in a room to make a suggestion")
	ErrAlreadySuggested     = errors.New("already made a suggestion this turn")
	ErrSuggestionPending    = errors.New("a suggestion is waiting to be disproved")
	ErrNotResponder         = errors.New("you are not the player who should disprove this suggestion")
	ErrCardNotHeld          = errors.New("you do not have this card")
	ErrCardNotInSuggestion  = errors.New("card does not match the suggestion")
	ErrInvalidCard          = errors.New("invalid card")
	ErrUnknownAction        = errors.New("unknown action")
	ErrInvalidConfig        = errors.New("invalid game config")
	ErrPassphraseRequired   = errors.New("passphrase required")
	ErrInvalidPassphrase    = errors.New("invalid passphrase")
)

// integrity errors: the game instance can not be trusted anymore.
var (
	ErrUnknownPosition = errors.New("unknown position")
	ErrCorruptedState  = errors.New("corrupted game state")
	ErrMissingSolution = errors.New("solution is missing")
	ErrGameUnusable    = errors.New("game is unusable")
)

// concurrency and storage errors.
var (
	ErrNotFound        = errors.New("not found")
	ErrGameNotFound    = errors.New("game not found")
	ErrGameExists      = errors.New("game already exists")
	ErrVersionConflict = errors.New("game version conflict")
	ErrTransient       = errors.New("temporary failure, try again")
)

var validationErrors = []error{
	ErrGameNotInProgress, ErrGameFull, ErrGameAlreadyCompleted, ErrGameAlreadyStarted,
	ErrNotYourTurn, ErrPlayerNotInGame, ErrPlayerEliminated, ErrIllegalDestination,
	ErrAlreadyMoved, ErrNotInRoom, ErrAlreadySuggested, ErrSuggestionPending,
	ErrNotResponder, ErrCardNotHeld, ErrCardNotInSuggestion, ErrInvalidCard,
	ErrUnknownAction, ErrInvalidConfig, ErrPassphraseRequired, ErrInvalidPassphrase,
}

var integrityErrors = []error{
	ErrUnknownPosition, ErrCorruptedState, ErrMissingSolution,
}

// IsValidation - reports whether err is a user-facing rule violation.
func IsValidation(err error) bool {
	return matchesAny(err, validationErrors)
}

// IsIntegrity - reports whether err means the game state itself is broken.
func IsIntegrity(err error) bool {
	return matchesAny(err, integrityErrors)
}

func matchesAny(err error, targets []error) bool {
	if err == nil {
		return false
	}

	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// exposed - the errors whose text may be shown to a client. ErrGameUnusable comes first
// because it wraps the integrity error that caused it.
var exposed = append([]error{ErrGameUnusable, ErrTransient, ErrGameNotFound}, validationErrors...)

// UserFacing - the sentinel a client should see for err, or nil if err is internal.
func UserFacing(err error) error {
	for _, target := range exposed {
		if errors.Is(err, target) {
			return target
		}
	}

	return nil
}
