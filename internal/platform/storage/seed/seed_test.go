package seed_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"psynara/internal/platform/storage"
	"psynara/internal/platform/storage/seed"
)

func TestLoadParsesEmbeddedData(t *testing.T) {
	t.Parallel()
	data, err := seed.Load()
	require.NoError(t, err)
	require.NotEmpty(t, data.Questions)
	require.NotEmpty(t, data.Games)
	require.NotEmpty(t, data.Recommendations)

	for _, g := range data.Games {
		require.NotEmpty(t, g.Kind, g.Name)
	}
	for _, r := range data.Recommendations {
		require.NotEmpty(t, r.Title)
		require.NotEmpty(t, r.Content, r.Key)
		require.NotContains(t, r.Content, "---\n", r.Key)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	t.Parallel()
	db, err := storage.Open(filepath.Join(t.TempDir(), "psynara.db"))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	first, err := seed.Apply(context.Background(), db)
	require.NoError(t, err)
	second, err := seed.Apply(context.Background(), db)
	require.NoError(t, err)
	require.Equal(t, first, second)

	var games, questions, recs int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM psychology_games`).Scan(&games))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM psychology_questions`).Scan(&questions))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM recommendations`).Scan(&recs))
	require.Equal(t, first.Games, games)
	require.Equal(t, first.Questions, questions)
	require.Equal(t, first.Recommendations, recs)

	var options string
	require.NoError(t, db.QueryRow(`SELECT options FROM psychology_questions ORDER BY order_num LIMIT 1`).Scan(&options))
	require.JSONEq(t, `{"min":1,"max":5,"labels":["Nunca","Rara vez","A veces","A menudo","Siempre"]}`, options)
}
