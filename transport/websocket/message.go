package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/clueless-backend/internal/entity"
)

// Message - the envelope of every frame in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type PlayerPayload struct {
	ID        string      `json:"id"`
	Name      string      `json:"name,omitempty"`
	Character entity.Card `json:"character,omitempty"`
}

// GamePayload - game:new reads the config fields, game:join reads ID or JoinCode.
type GamePayload struct {
	ID         string `json:"id,omitempty"`
	JoinCode   string `json:"join_code,omitempty"`
	Name       string `json:"name,omitempty"`
	MaxPlayers int    `json:"max_players,omitempty"`
	MinPlayers int    `json:"min_players,omitempty"`
	Visibility string `json:"visibility,omitempty"`
	Passphrase string `json:"passphrase,omitempty"`
}

type Payload struct {
	Player *PlayerPayload `json:"player,omitempty"`
	Game   *GamePayload   `json:"game,omitempty"`

	Destination *entity.Position `json:"destination,omitempty"`
	Suspect     entity.Card      `json:"suspect,omitempty"`
	Weapon      entity.Card      `json:"weapon,omitempty"`
	Room        entity.Card      `json:"room,omitempty"`
	Card        entity.Card      `json:"card,omitempty"`
}

type ResponsePayload struct {
	Player *PlayerPayload     `json:"player,omitempty"`
	Game   *entity.PlayerView `json:"game,omitempty"`
	Event  *entity.Event      `json:"event,omitempty"`
	Error  string             `json:"error,omitempty"`
}

func encode(action string, payload ResponsePayload) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Message{Action: action, Payload: body})
}

// eventMessage - a pushed engine event. State changes carry the personalized view as the game.
func eventMessage(event entity.Event) ([]byte, error) {
	if event.Type == entity.EventStateChanged {
		return encode(string(event.Type), ResponsePayload{Game: event.View})
	}

	return encode(string(event.Type), ResponsePayload{Event: &event})
}
