package out

import (
	"context"
	"database/sql"

	"psynara/internal/modules/assessment/domain"
	assessmentout "psynara/internal/modules/assessment/port/out"
	apperrors "psynara/internal/platform/errors"
	"psynara/internal/platform/storage"
	"psynara/internal/platform/tx"
)

type SQLiteAnswerStore struct {
	db *sql.DB
}

func NewSQLiteAnswerStore(db *sql.DB) assessmentout.AnswerStore {
	return &SQLiteAnswerStore{db: db}
}

// InsertBatch writes every answer through the executor bound to ctx. Callers
// run it under tx.Manager so a submission lands all rows or none.
func (s *SQLiteAnswerStore) InsertBatch(ctx context.Context, answers []domain.Answer) error {
	const stmt = `
INSERT INTO user_answers (id, user_id, question_id, answer, score, created_at)
VALUES (?, ?, ?, ?, ?, ?);
`
	exec := tx.From(ctx, s.db)
	for _, a := range answers {
		if _, err := exec.ExecContext(ctx, stmt,
			a.ID, a.UserID, a.QuestionID, a.Answer, a.Score, storage.FormatTime(a.CreatedAt),
		); err != nil {
			return apperrors.Persistence("insert answer", err)
		}
	}
	return nil
}
