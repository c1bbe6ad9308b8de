package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"psynara/internal/modules/catalog/domain"
	catalogout "psynara/internal/modules/catalog/port/out"
	apperrors "psynara/internal/platform/errors"
	"psynara/internal/platform/storage"
	"psynara/internal/platform/tx"
)

type SQLiteGameStore struct {
	db *sql.DB
}

func NewSQLiteGameStore(db *sql.DB) catalogout.GameStore {
	return &SQLiteGameStore{db: db}
}

const gameColumns = `id, name, description, category, instructions, difficulty, kind, created_at`

func (s *SQLiteGameStore) List(ctx context.Context) ([]domain.Game, error) {
	rows, err := tx.From(ctx, s.db).QueryContext(ctx, `SELECT `+gameColumns+` FROM psychology_games ORDER BY created_at, name`)
	if err != nil {
		return nil, apperrors.Persistence("list games", err)
	}
	defer func() { _ = rows.Close() }()

	var games []domain.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, apperrors.Persistence("scan game", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Persistence("list games", err)
	}
	return games, nil
}

func (s *SQLiteGameStore) FindByID(ctx context.Context, id string) (domain.Game, error) {
	row := tx.From(ctx, s.db).QueryRowContext(ctx, `SELECT `+gameColumns+` FROM psychology_games WHERE id = ?`, id)
	g, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Game{}, fmt.Errorf("%w: game %s", apperrors.ErrNotFound, id)
	}
	if err != nil {
		return domain.Game{}, apperrors.Persistence("find game", err)
	}
	return g, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(row scanner) (domain.Game, error) {
	var g domain.Game
	var category, difficulty, createdAt string
	if err := row.Scan(&g.ID, &g.Name, &g.Description, &category, &g.Instructions, &difficulty, &g.Kind, &createdAt); err != nil {
		return domain.Game{}, err
	}
	g.Category = domain.Category(category)
	g.Difficulty = domain.Difficulty(difficulty)
	at, err := storage.ParseTime(createdAt)
	if err != nil {
		return domain.Game{}, fmt.Errorf("parse created_at: %w", err)
	}
	g.CreatedAt = at
	return g, nil
}
