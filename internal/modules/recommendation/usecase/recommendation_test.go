package usecase_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	recommendationin "psynara/internal/modules/recommendation/adapter/in"
	recommendationout "psynara/internal/modules/recommendation/adapter/out"
	"psynara/internal/modules/recommendation/service"
	"psynara/internal/modules/recommendation/usecase"
	apperrors "psynara/internal/platform/errors"
	"psynara/internal/platform/storage"
	"psynara/internal/platform/storage/seed"
)

func newHandler(t *testing.T) recommendationin.CLIHandler {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "psynara.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = seed.Apply(context.Background(), db)
	require.NoError(t, err)
	uc := usecase.NewInteractor(service.NewRecommendationService(recommendationout.NewSQLiteRecommendationStore(db)))
	return recommendationin.NewCLIHandler(uc)
}

func TestListNewestFirstWithFilter(t *testing.T) {
	t.Parallel()
	h := newHandler(t)
	ctx := context.Background()

	all, err := h.List(ctx, "all")
	require.NoError(t, err)
	require.Len(t, all, 8)
	assert.Equal(t, "Respiración 4-4-4", all[0].Title)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].CreatedAt.After(all[i-1].CreatedAt), "must be ordered newest first")
	}

	stress, err := h.List(ctx, "Estrés")
	require.NoError(t, err)
	require.Len(t, stress, 2)
	for _, r := range stress {
		assert.Equal(t, "estres", r.Category)
		assert.Equal(t, "Estrés", r.CategoryLabel)
	}

	_, err = h.List(ctx, "deporte")
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestShowReturnsMarkdownContent(t *testing.T) {
	t.Parallel()
	h := newHandler(t)
	ctx := context.Background()

	list, err := h.List(ctx, "ansiedad")
	require.NoError(t, err)
	require.NotEmpty(t, list)

	detail, err := h.Show(ctx, list[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Anclaje 5-4-3-2-1", detail.Title)
	assert.Equal(t, "anchor", detail.Icon)
	assert.True(t, strings.HasPrefix(detail.Content, "# Anclaje"))

	_, err = h.Show(ctx, "missing")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCategoriesInDisplayOrder(t *testing.T) {
	t.Parallel()
	h := newHandler(t)
	cats, err := h.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 6)
	assert.Equal(t, "all", cats[0].ID)
	assert.Equal(t, "Todas", cats[0].Label)
}
