package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"psynara/internal/modules/assessment/domain"
	assessmentout "psynara/internal/modules/assessment/port/out"
	apperrors "psynara/internal/platform/errors"
	"psynara/internal/platform/storage"
	"psynara/internal/platform/tx"
)

type SQLiteQuestionStore struct {
	db *sql.DB
}

func NewSQLiteQuestionStore(db *sql.DB) assessmentout.QuestionStore {
	return &SQLiteQuestionStore{db: db}
}

func (s *SQLiteQuestionStore) List(ctx context.Context) ([]domain.Question, error) {
	rows, err := tx.From(ctx, s.db).QueryContext(ctx, `
SELECT id, category, question, type, options, order_num, created_at
FROM psychology_questions ORDER BY order_num, created_at`)
	if err != nil {
		return nil, apperrors.Persistence("list questions", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Question
	for rows.Next() {
		var q domain.Question
		var options, createdAt string
		if err := rows.Scan(&q.ID, &q.Category, &q.Prompt, &q.Type, &options, &q.Order, &createdAt); err != nil {
			return nil, apperrors.Persistence("scan question", err)
		}
		if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
			return nil, apperrors.Persistence("decode options", fmt.Errorf("question %s: %w", q.ID, err))
		}
		if q.CreatedAt, err = storage.ParseTime(createdAt); err != nil {
			return nil, apperrors.Persistence("parse created_at", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Persistence("list questions", err)
	}
	return out, nil
}
