package usecase_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	assessmentin "psynara/internal/modules/assessment/adapter/in"
	assessmentout "psynara/internal/modules/assessment/adapter/out"
	"psynara/internal/modules/assessment/domain"
	"psynara/internal/modules/assessment/dto"
	"psynara/internal/modules/assessment/service"
	"psynara/internal/modules/assessment/usecase"
	apperrors "psynara/internal/platform/errors"
	"psynara/internal/platform/id"
	"psynara/internal/platform/storage"
	"psynara/internal/platform/storage/seed"
	"psynara/internal/platform/tx"
)

type fixedClock struct{ at time.Time }

func (f fixedClock) Now() time.Time { return f.at }

type staticQuestions []domain.Question

func (s staticQuestions) List(context.Context) ([]domain.Question, error) { return s, nil }

type flakyAnswers struct {
	fail  int
	saved [][]domain.Answer
}

func (f *flakyAnswers) InsertBatch(_ context.Context, answers []domain.Answer) error {
	if f.fail > 0 {
		f.fail--
		return apperrors.Persistence("insert answer", errors.New("disk I/O error"))
	}
	f.saved = append(f.saved, answers)
	return nil
}

func twoAnxietyQuestions() staticQuestions {
	return staticQuestions{
		{ID: "q1", Category: "ansiedad", Prompt: "¿Te sientes nervioso?", Options: domain.Options{Min: 1, Max: 5}, Order: 1},
		{ID: "q2", Category: "ansiedad", Prompt: "¿Te cuesta relajarte?", Options: domain.Options{Min: 1, Max: 5}, Order: 2},
	}
}

func openSeeded(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "psynara.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = seed.Apply(context.Background(), db)
	require.NoError(t, err)
	return db
}

func TestStepThroughAndSubmit(t *testing.T) {
	t.Parallel()
	answers := &flakyAnswers{}
	uc := usecase.NewInteractor(service.NewAssessmentService(
		fixedClock{at: time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)}, id.UUID{},
		twoAnxietyQuestions(), answers, nil, nil, "local",
	))
	ctx := context.Background()

	_, err := uc.State(ctx)
	require.ErrorIs(t, err, apperrors.ErrNoActiveSession)

	state, err := uc.Begin(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, state.Total)
	assert.False(t, state.CanNext)

	state, err = uc.Answer(ctx, dto.AnswerInput{QuestionID: "q1", Value: 4})
	require.NoError(t, err)
	assert.True(t, state.CanNext)

	state, err = uc.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Index)
	assert.True(t, state.CanPrevious)

	_, err = uc.Submit(ctx)
	require.ErrorIs(t, err, apperrors.ErrIncompleteAssessment)

	state, err = uc.Answer(ctx, dto.AnswerInput{QuestionID: "q2", Value: 3})
	require.NoError(t, err)
	assert.True(t, state.CanSubmit)

	result, err := uc.Submit(ctx)
	require.NoError(t, err)
	require.Len(t, result.Scores, 1)
	assert.InDelta(t, 70.0, result.Scores[0].Percent, 1e-9)
	assert.Equal(t, "Good", result.Scores[0].Band)
	require.Len(t, answers.saved, 1)
	assert.Equal(t, "4", answers.saved[0][0].Answer)
	assert.Equal(t, 3, answers.saved[0][1].Score)

	_, err = uc.State(ctx)
	require.ErrorIs(t, err, apperrors.ErrNoActiveSession)
}

func TestRejectedAnswerReturnsUnchangedState(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewAssessmentService(
		fixedClock{}, id.UUID{}, twoAnxietyQuestions(), &flakyAnswers{}, nil, nil, "local",
	))
	ctx := context.Background()
	_, err := uc.Begin(ctx)
	require.NoError(t, err)

	state, err := uc.Answer(ctx, dto.AnswerInput{QuestionID: "q1", Value: 9})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.False(t, state.HasAnswer)
	assert.Equal(t, 0, state.Answered)
}

func TestSubmitKeepsRunWhenSaveFails(t *testing.T) {
	t.Parallel()
	answers := &flakyAnswers{fail: 1}
	uc := usecase.NewInteractor(service.NewAssessmentService(
		fixedClock{}, id.UUID{}, twoAnxietyQuestions(), answers, nil, nil, "local",
	))
	ctx := context.Background()
	_, err := uc.Begin(ctx)
	require.NoError(t, err)
	_, err = uc.Answer(ctx, dto.AnswerInput{QuestionID: "q1", Value: 5})
	require.NoError(t, err)
	_, err = uc.Next(ctx)
	require.NoError(t, err)
	_, err = uc.Answer(ctx, dto.AnswerInput{QuestionID: "q2", Value: 5})
	require.NoError(t, err)

	_, err = uc.Submit(ctx)
	require.ErrorIs(t, err, apperrors.ErrPersistence)

	state, err := uc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, state.Answered)

	result, err := uc.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Excellent", result.Scores[0].Band)
}

func TestSubmitAllPersistsInOneTransaction(t *testing.T) {
	t.Parallel()
	db := openSeeded(t)
	uc := usecase.NewInteractor(service.NewAssessmentService(
		fixedClock{at: time.Now().UTC()}, id.UUID{},
		assessmentout.NewSQLiteQuestionStore(db), assessmentout.NewSQLiteAnswerStore(db),
		tx.SQLManager{DB: db}, nil, "local",
	))
	ctx := context.Background()

	questions, err := uc.ListQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, questions, 8)
	assert.Equal(t, 1, questions[0].Order)
	assert.Equal(t, 5, questions[0].Max)
	assert.Len(t, questions[0].Labels, 5)

	handler := assessmentin.NewCLIHandler(uc)
	pairs := []string{"1=4", "2=3", "3=5", "4=5", "5=2", "6=2", "7=3"}
	_, err = handler.Submit(ctx, pairs)
	require.ErrorIs(t, err, apperrors.ErrIncompleteAssessment)

	var stored int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM user_answers`).Scan(&stored))
	assert.Zero(t, stored)

	result, err := handler.Submit(ctx, append(pairs, questions[7].ID+"=3"))
	require.NoError(t, err)
	assert.Equal(t, 8, result.Answered)
	require.Len(t, result.Scores, 4)
	assert.Equal(t, questions[0].Category, result.Scores[0].Category)
	assert.InDelta(t, 70.0, result.Scores[0].Percent, 1e-9)

	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM user_answers WHERE user_id = 'local'`).Scan(&stored))
	assert.Equal(t, 8, stored)
}

func TestCLISubmitRejectsMalformedPairs(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewAssessmentService(
		fixedClock{}, id.UUID{}, twoAnxietyQuestions(), &flakyAnswers{}, nil, nil, "local",
	))
	handler := assessmentin.NewCLIHandler(uc)
	for _, bad := range [][]string{{"q1"}, {"=3"}, {"q1=high"}} {
		_, err := handler.Submit(context.Background(), bad)
		require.ErrorIs(t, err, apperrors.ErrInvalidInput, "%v", bad)
	}
	_, err := handler.Submit(context.Background(), []string{"q9=1"})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}
