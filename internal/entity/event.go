package entity

type EventType string

const (
	EventStateChanged              EventType = "game:state"
	EventPlayerJoined              EventType = "game:player_joined"
	EventSuggestionPendingDisprove EventType = "suggestion:pending_disprove"
	EventSuggestionResolved        EventType = "suggestion:resolved"
	EventAccusationResolved        EventType = "accusation:resolved"
	EventPlayerEliminated          EventType = "player:eliminated"
	EventGameCompleted             EventType = "game:completed"
	EventTurnChanged               EventType = "turn:changed"
	EventPlayerDisconnected        EventType = "player:disconnected"
)

// Event - an effect produced by the engine. An empty To means the whole game group,
// otherwise only that player may see it.
type Event struct {
	Type   EventType `json:"type"`
	GameID string    `json:"game_id"`
	To     string    `json:"-"`

	PlayerID    string      `json:"player_id,omitempty"`
	SuggesterID string      `json:"suggester_id,omitempty"`
	ResponderID string      `json:"responder_id,omitempty"`
	Suspect     Card        `json:"suspect,omitempty"`
	Weapon      Card        `json:"weapon,omitempty"`
	Room        Card        `json:"room,omitempty"`
	Disproven   bool        `json:"disproven,omitempty"`
	Options     []Card      `json:"options,omitempty"`
	Card        Card        `json:"card,omitempty"`
	Accusation  *Accusation `json:"accusation,omitempty"`
	Solution    *Solution   `json:"solution,omitempty"`
	Winner      string      `json:"winner,omitempty"`
	View        *PlayerView `json:"view,omitempty"`
}

// IsPrivate - true when the event must only reach Event.To.
func (that *Event) IsPrivate() bool {
	return that.To != ""
}
