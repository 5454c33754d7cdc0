package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/clueless-backend/internal/apperror"
	"github.com/rocketscienceinc/clueless-backend/internal/entity"
	"github.com/rocketscienceinc/clueless-backend/internal/usecase"
)

var errMissingField = errors.New("missing field")

// handleConnect - binds the connection to a player and resumes their game, if any.
func (that *Server) handleConnect(ctx context.Context, c *client, action string, _ *Payload) error {
	log := that.logger.With("method", "handleConnect", "playerID", c.PlayerID())

	playerID := c.PlayerID()

	view, err := that.manager.View(ctx, playerID)
	if errors.Is(err, apperror.ErrPlayerNotInGame) {
		that.reply(c, action, ResponsePayload{Player: &PlayerPayload{ID: playerID}})
		return nil
	}

	if err != nil {
		return that.replyError(c, action, err)
	}

	var character entity.Card
	if view.Status != entity.StatusCompleted {
		view, character, err = that.manager.JoinGame(ctx, usecase.JoinRequest{PlayerID: playerID, GameID: view.ID})
		if err != nil {
			return that.replyError(c, action, err)
		}
	}

	that.joinGroup(view.ID, playerID)

	that.reply(c, action, ResponsePayload{
		Player: &PlayerPayload{ID: playerID, Character: character},
		Game:   &view,
	})

	log.Info("player resumed game", "gameID", view.ID)

	return nil
}

// handleNewGame - creates a game and seats its creator.
func (that *Server) handleNewGame(ctx context.Context, c *client, action string, payload *Payload) error {
	if payload.Game == nil {
		return that.replyError(c, action, fmt.Errorf("%w: game", errMissingField))
	}

	playerID := c.PlayerID()

	game, err := that.manager.CreateGame(ctx, playerID, entity.GameConfig{
		Name:       payload.Game.Name,
		MaxPlayers: payload.Game.MaxPlayers,
		MinPlayers: payload.Game.MinPlayers,
		Visibility: payload.Game.Visibility,
		Passphrase: payload.Game.Passphrase,
	})
	if err != nil {
		return that.replyError(c, action, err)
	}

	return that.join(ctx, c, action, usecase.JoinRequest{
		PlayerID:   playerID,
		Name:       playerName(payload),
		GameID:     game.ID,
		Passphrase: payload.Game.Passphrase,
	})
}

func (that *Server) handleJoinGame(ctx context.Context, c *client, action string, payload *Payload) error {
	if payload.Game == nil {
		return that.replyError(c, action, fmt.Errorf("%w: game", errMissingField))
	}

	return that.join(ctx, c, action, usecase.JoinRequest{
		PlayerID:   c.PlayerID(),
		Name:       playerName(payload),
		GameID:     payload.Game.ID,
		JoinCode:   payload.Game.JoinCode,
		Passphrase: payload.Game.Passphrase,
	})
}

func (that *Server) join(ctx context.Context, c *client, action string, req usecase.JoinRequest) error {
	view, character, err := that.manager.JoinGame(ctx, req)
	if err != nil {
		return that.replyError(c, action, err)
	}

	that.joinGroup(view.ID, req.PlayerID)

	that.reply(c, action, ResponsePayload{
		Player: &PlayerPayload{ID: req.PlayerID, Name: req.Name, Character: character},
		Game:   &view,
	})

	that.logger.Info("player joined game", "method", "join", "playerID", req.PlayerID, "gameID", view.ID)

	return nil
}

func (that *Server) handleGameState(ctx context.Context, c *client, action string, _ *Payload) error {
	view, err := that.manager.View(ctx, c.PlayerID())
	if err != nil {
		return that.replyError(c, action, err)
	}

	that.reply(c, action, ResponsePayload{Game: &view})

	return nil
}

// handleGameAction - the five in-game actions share one handler, only the action type differs.
func (that *Server) handleGameAction(actionType entity.ActionType) handlerFunc {
	return func(ctx context.Context, c *client, action string, payload *Payload) error {
		gameAction := entity.Action{
			Type:    actionType,
			Suspect: payload.Suspect,
			Weapon:  payload.Weapon,
			Room:    payload.Room,
			Card:    payload.Card,
		}

		if actionType == entity.ActionMove {
			if payload.Destination == nil {
				return that.replyError(c, action, fmt.Errorf("%w: destination", errMissingField))
			}
			gameAction.Destination = *payload.Destination
		}

		view, err := that.manager.Apply(ctx, c.PlayerID(), gameAction)
		if err != nil {
			return that.replyError(c, action, err)
		}

		that.reply(c, action, ResponsePayload{Game: &view})

		return nil
	}
}

func playerName(payload *Payload) string {
	if payload.Player == nil {
		return ""
	}

	return payload.Player.Name
}

func (that *Server) reply(c *client, action string, payload ResponsePayload) {
	data, err := encode(action, payload)
	if err != nil {
		that.logger.Error("failed to encode response", "method", "reply", "action", action, "error", err)
		return
	}

	if !c.enqueue(data) {
		that.logger.Warn("client send buffer full, response dropped", "method", "reply", "playerID", c.PlayerID())
	}
}

func (that *Server) sendError(c *client, action, message string) {
	that.reply(c, action, ResponsePayload{Error: message})
}

// replyError - tells the client what went wrong. Internal failures are logged and returned,
// the client only learns that something failed.
func (that *Server) replyError(c *client, action string, err error) error {
	if errors.Is(err, errMissingField) {
		that.sendError(c, action, err.Error())
		return nil
	}

	if public := apperror.UserFacing(err); public != nil {
		that.sendError(c, action, public.Error())

		if apperror.IsValidation(err) {
			return nil
		}

		return err
	}

	that.sendError(c, action, "internal error")

	return err
}
