package entity

type ActionType string

const (
	ActionMove     ActionType = "MOVE"
	ActionSuggest  ActionType = "SUGGEST"
	ActionDisprove ActionType = "DISPROVE"
	ActionAccuse   ActionType = "ACCUSE"
	ActionEndTurn  ActionType = "END_TURN"
)

// Action - one of the five turn actions. Only the fields of the given Type are read.
type Action struct {
	Type        ActionType `json:"type"`
	Destination Position   `json:"destination,omitempty"`
	Suspect     Card       `json:"suspect,omitempty"`
	Weapon      Card       `json:"weapon,omitempty"`
	Room        Card       `json:"room,omitempty"`
	Card        Card       `json:"card,omitempty"`
}

// PlayerView - what one requester is allowed to see of a game.
type PlayerView struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	JoinCode         string               `json:"join_code"`
	Status           Status               `json:"status"`
	Version          uint64               `json:"version"`
	Players          []PlayerSummary      `json:"players"`
	CurrentTurn      string               `json:"current_turn,omitempty"`
	Hallways         map[HallwayID]Card   `json:"hallways"`
	MyCards          []Card               `json:"my_cards"`
	AvailableActions []ActionType         `json:"available_actions"`
	Pending          *PendingDisproveView `json:"pending,omitempty"`
	Suggestions      []SuggestionView     `json:"suggestions"`
	Accusations      []Accusation         `json:"accusations"`
	Solution         *Solution            `json:"solution,omitempty"`
	Winner           string               `json:"winner,omitempty"`
}

type PlayerSummary struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Character Card     `json:"character"`
	Position  Position `json:"position"`
	Active    bool     `json:"active"`
	Connected bool     `json:"connected"`
	CardCount int      `json:"card_count"`
}

type PendingDisproveView struct {
	SuggesterID string `json:"suggester_id"`
	ResponderID string `json:"responder_id"`
	Options     []Card `json:"options,omitempty"`
}

type SuggestionView struct {
	SuggesterID  string `json:"suggester_id"`
	Suspect      Card   `json:"suspect"`
	Weapon       Card   `json:"weapon"`
	Room         Card   `json:"room"`
	DisproverID  string `json:"disprover_id,omitempty"`
	Disproven    bool   `json:"disproven"`
	CardRevealed Card   `json:"card_revealed,omitempty"`
	Cancelled    bool   `json:"cancelled,omitempty"`
	Timestamp    int64  `json:"timestamp"`
}
