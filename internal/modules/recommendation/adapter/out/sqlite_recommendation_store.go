package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"psynara/internal/modules/recommendation/domain"
	recommendationout "psynara/internal/modules/recommendation/port/out"
	apperrors "psynara/internal/platform/errors"
	"psynara/internal/platform/storage"
	"psynara/internal/platform/tx"
)

const recommendationColumns = `id, category, title, description, content, icon, created_at`

type SQLiteRecommendationStore struct {
	db *sql.DB
}

func NewSQLiteRecommendationStore(db *sql.DB) recommendationout.RecommendationStore {
	return &SQLiteRecommendationStore{db: db}
}

func (s *SQLiteRecommendationStore) List(ctx context.Context) ([]domain.Recommendation, error) {
	rows, err := tx.From(ctx, s.db).QueryContext(ctx,
		`SELECT `+recommendationColumns+` FROM recommendations ORDER BY created_at DESC, title`)
	if err != nil {
		return nil, apperrors.Persistence("list recommendations", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Recommendation
	for rows.Next() {
		r, err := scanRecommendation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Persistence("list recommendations", err)
	}
	return out, nil
}

func (s *SQLiteRecommendationStore) FindByID(ctx context.Context, id string) (domain.Recommendation, error) {
	row := tx.From(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+recommendationColumns+` FROM recommendations WHERE id = ?`, id)
	r, err := scanRecommendation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Recommendation{}, fmt.Errorf("recommendation %s: %w", id, apperrors.ErrNotFound)
	}
	return r, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecommendation(row scanner) (domain.Recommendation, error) {
	var r domain.Recommendation
	var createdAt string
	if err := row.Scan(&r.ID, &r.Category, &r.Title, &r.Description, &r.Content, &r.Icon, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Recommendation{}, err
		}
		return domain.Recommendation{}, apperrors.Persistence("scan recommendation", err)
	}
	at, err := storage.ParseTime(createdAt)
	if err != nil {
		return domain.Recommendation{}, apperrors.Persistence("parse created_at", err)
	}
	r.CreatedAt = at
	return r, nil
}
