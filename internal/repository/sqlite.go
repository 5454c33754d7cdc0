package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/clueless-backend/internal/apperror"
	"github.com/rocketscienceinc/clueless-backend/internal/entity"
)

// sqliteGame - keeps the snapshot as a JSON document next to the columns Save compares on.
type sqliteGame struct {
	db *sql.DB
}

func NewSQLiteGameRepository(db *sql.DB) GameRepository {
	return &sqliteGame{
		db: db,
	}
}

func (that *sqliteGame) Create(ctx context.Context, game *entity.Game) error {
	stored := *game
	stored.Version = 1

	data, err := json.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	result, err := that.db.ExecContext(ctx,
		`INSERT INTO games (id, join_code, version, status, data, updated_at) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		stored.ID, stored.JoinCode, stored.Version, stored.Status, string(data), stored.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("%w: %s", apperror.ErrGameExists, game.ID)
	}

	game.Version = stored.Version

	return nil
}

func (that *sqliteGame) Save(ctx context.Context, game *entity.Game) error {
	stored := *game
	stored.Version++

	data, err := json.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	result, err := that.db.ExecContext(ctx,
		`UPDATE games SET version = ?, status = ?, data = ?, updated_at = ? WHERE id = ? AND version = ?`,
		stored.Version, stored.Status, string(data), stored.UpdatedAt, game.ID, game.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	if rows == 0 {
		var exists int
		err = that.db.QueryRowContext(ctx, `SELECT 1 FROM games WHERE id = ?`, game.ID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.ErrGameNotFound
		}

		if err != nil {
			return fmt.Errorf("failed to save game: %w", err)
		}

		return fmt.Errorf("%w: %s at version %d", apperror.ErrVersionConflict, game.ID, game.Version)
	}

	game.Version = stored.Version

	return nil
}

func (that *sqliteGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	var data string

	err := that.db.QueryRowContext(ctx, `SELECT data FROM games WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return unmarshalGame([]byte(data))
}

func (that *sqliteGame) GetByJoinCode(ctx context.Context, code string) (*entity.Game, error) {
	var data string

	err := that.db.QueryRowContext(ctx, `SELECT data FROM games WHERE join_code = ?`, code).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by join code: %w", err)
	}

	return unmarshalGame([]byte(data))
}

func (that *sqliteGame) DeleteByID(ctx context.Context, id string) error {
	if _, err := that.db.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	return nil
}

type sqlitePlayer struct {
	db *sql.DB
}

func NewSQLitePlayerRepository(db *sql.DB) PlayerRepository {
	return &sqlitePlayer{
		db: db,
	}
}

func (that *sqlitePlayer) CreateOrUpdate(ctx context.Context, session *entity.PlayerSession) error {
	_, err := that.db.ExecContext(ctx,
		`INSERT INTO players (id, game_id) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET game_id = excluded.game_id`,
		session.ID, session.GameID,
	)
	if err != nil {
		return fmt.Errorf("failed to set player: %w", err)
	}

	return nil
}

func (that *sqlitePlayer) GetByID(ctx context.Context, id string) (*entity.PlayerSession, error) {
	session := entity.PlayerSession{ID: id}

	err := that.db.QueryRowContext(ctx, `SELECT game_id FROM players WHERE id = ?`, id).Scan(&session.GameID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlayerNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player by ID: %w", err)
	}

	return &session, nil
}
