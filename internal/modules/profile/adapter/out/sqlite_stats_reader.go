package out

import (
	"context"
	"database/sql"

	profileout "psynara/internal/modules/profile/port/out"
	apperrors "psynara/internal/platform/errors"
	"psynara/internal/platform/tx"
)

type SQLiteStatsReader struct {
	db *sql.DB
}

func NewSQLiteStatsReader(db *sql.DB) profileout.StatsReader {
	return &SQLiteStatsReader{db: db}
}

func (r *SQLiteStatsReader) CompletedGames(ctx context.Context, userID string) (int, error) {
	return r.count(ctx, "count completed games",
		`SELECT COUNT(*) FROM user_progress WHERE user_id = ? AND completed = 1`, userID)
}

func (r *SQLiteStatsReader) AnsweredQuestions(ctx context.Context, userID string) (int, error) {
	return r.count(ctx, "count answers",
		`SELECT COUNT(*) FROM user_answers WHERE user_id = ?`, userID)
}

func (r *SQLiteStatsReader) count(ctx context.Context, op, query string, args ...any) (int, error) {
	var n int
	if err := tx.From(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, apperrors.Persistence(op, err)
	}
	return n, nil
}
