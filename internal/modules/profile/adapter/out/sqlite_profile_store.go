package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"psynara/internal/modules/profile/domain"
	profileout "psynara/internal/modules/profile/port/out"
	apperrors "psynara/internal/platform/errors"
	"psynara/internal/platform/storage"
	"psynara/internal/platform/tx"
)

type SQLiteProfileStore struct {
	db *sql.DB
}

func NewSQLiteProfileStore(db *sql.DB) profileout.ProfileStore {
	return &SQLiteProfileStore{db: db}
}

func (s *SQLiteProfileStore) Find(ctx context.Context, id string) (domain.Profile, error) {
	var p domain.Profile
	var mood, createdAt, updatedAt string
	err := tx.From(ctx, s.db).QueryRowContext(ctx,
		`SELECT id, full_name, mood, created_at, updated_at FROM profiles WHERE id = ?`, id,
	).Scan(&p.ID, &p.FullName, &mood, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Profile{}, fmt.Errorf("profile %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return domain.Profile{}, apperrors.Persistence("find profile", err)
	}
	p.Mood = domain.Mood(mood)
	if p.CreatedAt, err = storage.ParseTime(createdAt); err != nil {
		return domain.Profile{}, apperrors.Persistence("parse created_at", err)
	}
	if p.UpdatedAt, err = storage.ParseTime(updatedAt); err != nil {
		return domain.Profile{}, apperrors.Persistence("parse updated_at", err)
	}
	return p, nil
}

func (s *SQLiteProfileStore) Save(ctx context.Context, p domain.Profile) error {
	const stmt = `
INSERT INTO profiles (id, full_name, mood, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  full_name = excluded.full_name,
  mood = excluded.mood,
  updated_at = excluded.updated_at;
`
	_, err := tx.From(ctx, s.db).ExecContext(ctx, stmt,
		p.ID, p.FullName, string(p.Mood), storage.FormatTime(p.CreatedAt), storage.FormatTime(p.UpdatedAt),
	)
	if err != nil {
		return apperrors.Persistence("save profile", err)
	}
	return nil
}
