package entity

import "time"

// Suggestion - one entry of the append-only suggestion log.
// CardRevealed is private to the suggester and the disprover. Cancelled marks a disprove
// dropped because the suggester left before it was answered.
type Suggestion struct {
	SuggesterID  string    `json:"suggester_id"`
	Suspect      Card      `json:"suspect"`
	Weapon       Card      `json:"weapon"`
	Room         Card      `json:"room"`
	DisproverID  string    `json:"disprover_id,omitempty"`
	CardRevealed Card      `json:"card_revealed,omitempty"`
	Cancelled    bool      `json:"cancelled,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

func (that *Suggestion) Cards() []Card {
	return []Card{that.Suspect, that.Weapon, that.Room}
}

func (that *Suggestion) Disproven() bool {
	return that.CardRevealed != ""
}

// Accusation - one entry of the accusation log, public once resolved.
type Accusation struct {
	AccuserID string    `json:"accuser_id"`
	Suspect   Card      `json:"suspect"`
	Weapon    Card      `json:"weapon"`
	Room      Card      `json:"room"`
	Correct   bool      `json:"correct"`
	Timestamp time.Time `json:"timestamp"`
}

// PendingDisprove - the single outstanding suggestion waiting on ResponderID.
type PendingDisprove struct {
	SuggestionIndex int    `json:"suggestion_index"`
	SuggesterID     string `json:"suggester_id"`
	ResponderID     string `json:"responder_id"`
	Options         []Card `json:"options"`
}

// TurnState - what the current player has already done this turn.
type TurnState struct {
	Moved     bool `json:"moved"`
	Suggested bool `json:"suggested"`
}
