package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/clueless-backend/internal/apperror"
	"github.com/rocketscienceinc/clueless-backend/internal/entity"
)

const (
	defaultIdleTimeout = 5 * time.Minute
	defaultQueueSize   = 64
	saveAttempts       = 2
)

// mutation - one step run inside a game's session. Returning a nil game means nothing changed
// and nothing has to be saved.
type mutation func(game *entity.Game) (*entity.Game, []entity.Event, error)

type result struct {
	game *entity.Game
	err  error
}

type command struct {
	ctx    context.Context
	mutate mutation
	done   chan result
}

// session - the single goroutine allowed to change one game. Commands are drained strictly in arrival order.
type session struct {
	gameID   string
	commands chan command

	// guarded by GameManager.mu
	queued int

	// only touched by the session goroutine
	unusable error
}

// submit - queues mutate on the game's session and waits for its result.
func (that *GameManager) submit(ctx context.Context, gameID string, mutate mutation) (*entity.Game, error) {
	s := that.acquire(gameID)

	cmd := command{
		ctx:    ctx,
		mutate: mutate,
		done:   make(chan result, 1),
	}

	select {
	case s.commands <- cmd:
	case <-ctx.Done():
		that.release(s)
		return nil, fmt.Errorf("failed to queue command: %w", ctx.Err())
	}

	select {
	case res := <-cmd.done:
		return res.game, res.err
	case <-ctx.Done():
		return nil, fmt.Errorf("failed to wait for command: %w", ctx.Err())
	}
}

// acquire - returns the live session of gameID, starting one if needed, and counts the caller
// as queued so the session can not be evicted under it.
func (that *GameManager) acquire(gameID string) *session {
	that.mu.Lock()
	defer that.mu.Unlock()

	s, ok := that.sessions[gameID]
	if !ok {
		s = &session{
			gameID:   gameID,
			commands: make(chan command, that.queueSize),
		}
		that.sessions[gameID] = s

		go that.run(s)
	}

	s.queued++

	return s
}

func (that *GameManager) release(s *session) {
	that.mu.Lock()
	defer that.mu.Unlock()

	s.queued--
}

// evict - drops an idle session. It refuses while any command is queued.
func (that *GameManager) evict(s *session) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if s.queued > 0 {
		return false
	}

	delete(that.sessions, s.gameID)

	return true
}

func (that *GameManager) run(s *session) {
	log := that.logger.With("method", "session", "gameID", s.gameID)
	log.Debug("session started")

	idle := time.NewTimer(that.idleTimeout)
	defer idle.Stop()

	for {
		select {
		case cmd := <-s.commands:
			cmd.done <- that.execute(s, cmd)
			that.release(s)

			idle.Reset(that.idleTimeout)
		case <-idle.C:
			if that.evict(s) {
				log.Debug("session evicted")
				return
			}

			idle.Reset(that.idleTimeout)
		}
	}
}

// execute - load, check, apply, save. A version conflict reloads and applies once more.
func (that *GameManager) execute(s *session, cmd command) result {
	log := that.logger.With("method", "execute", "gameID", s.gameID)

	if s.unusable != nil {
		return result{err: fmt.Errorf("%w: %w", apperror.ErrGameUnusable, s.unusable)}
	}

	board := that.engine.Board()

	for attempt := 1; attempt <= saveAttempts; attempt++ {
		game, err := that.gameService.GetGameByID(cmd.ctx, s.gameID)
		if err != nil {
			return result{err: fmt.Errorf("failed to load game: %w", err)}
		}

		if err = game.Validate(board); err != nil {
			return that.markUnusable(s, err)
		}

		next, events, err := cmd.mutate(game)
		if err != nil {
			if apperror.IsIntegrity(err) {
				return that.markUnusable(s, err)
			}

			return result{err: err}
		}

		if next == nil {
			return result{game: game}
		}

		if err = next.Validate(board); err != nil {
			return that.markUnusable(s, err)
		}

		err = that.gameService.SaveGame(cmd.ctx, next)
		if errors.Is(err, apperror.ErrVersionConflict) {
			log.Warn("version conflict, reloading", "attempt", attempt, "error", err)
			continue
		}

		if err != nil {
			return result{err: fmt.Errorf("failed to save game: %w", err)}
		}

		that.dispatch(next, events)

		return result{game: next}
	}

	return result{err: fmt.Errorf("%w: %w", apperror.ErrTransient, apperror.ErrVersionConflict)}
}

func (that *GameManager) markUnusable(s *session, err error) result {
	that.logger.Error("game integrity violated", "method", "markUnusable", "gameID", s.gameID, "error", err)

	s.unusable = err

	return result{err: fmt.Errorf("%w: %w", apperror.ErrGameUnusable, err)}
}

// dispatch - routes events in the order the engine produced them. StateChanged becomes
// one personalized view per seated player.
func (that *GameManager) dispatch(game *entity.Game, events []entity.Event) {
	for _, event := range events {
		switch {
		case event.Type == entity.EventStateChanged:
			for _, player := range game.Players {
				view := that.engine.ViewFor(game, player.ID)

				personal := event
				personal.To = player.ID
				personal.View = &view

				that.broadcaster.SendToPlayer(player.ID, personal)
			}
		case event.IsPrivate():
			that.broadcaster.SendToPlayer(event.To, event)
		default:
			that.broadcaster.SendToGame(game.ID, event)
		}
	}
}
