package out

import (
	"context"
	"database/sql"

	"psynara/internal/modules/catalog/domain"
	catalogout "psynara/internal/modules/catalog/port/out"
	apperrors "psynara/internal/platform/errors"
	"psynara/internal/platform/storage"
	"psynara/internal/platform/tx"
)

type SQLiteProgressStore struct {
	db *sql.DB
}

func NewSQLiteProgressStore(db *sql.DB) catalogout.ProgressStore {
	return &SQLiteProgressStore{db: db}
}

func (s *SQLiteProgressStore) Insert(ctx context.Context, p domain.Progress) error {
	const stmt = `
INSERT INTO user_progress (id, user_id, game_id, completed, score, completed_at, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?);
`
	var completedAt any
	if !p.CompletedAt.IsZero() {
		completedAt = storage.FormatTime(p.CompletedAt)
	}
	_, err := tx.From(ctx, s.db).ExecContext(ctx, stmt,
		p.ID,
		p.UserID,
		p.GameID,
		p.Completed,
		p.Score,
		completedAt,
		storage.FormatTime(p.CreatedAt),
	)
	if err != nil {
		return apperrors.Persistence("insert progress", err)
	}
	return nil
}

func (s *SQLiteProgressStore) ListByUser(ctx context.Context, userID string) ([]domain.Progress, error) {
	rows, err := tx.From(ctx, s.db).QueryContext(ctx, `
SELECT id, user_id, game_id, completed, score, COALESCE(completed_at, ''), created_at
FROM user_progress WHERE user_id = ? ORDER BY created_at`, userID)
	if err != nil {
		return nil, apperrors.Persistence("list progress", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Progress
	for rows.Next() {
		var p domain.Progress
		var completedAt, createdAt string
		if err := rows.Scan(&p.ID, &p.UserID, &p.GameID, &p.Completed, &p.Score, &completedAt, &createdAt); err != nil {
			return nil, apperrors.Persistence("scan progress", err)
		}
		if p.CompletedAt, err = storage.ParseTime(completedAt); err != nil {
			return nil, apperrors.Persistence("parse completed_at", err)
		}
		if p.CreatedAt, err = storage.ParseTime(createdAt); err != nil {
			return nil, apperrors.Persistence("parse created_at", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Persistence("list progress", err)
	}
	return out, nil
}
