package out

import (
	"context"

	"psynara/internal/modules/assessment/domain"
)

type QuestionStore interface {
	List(ctx context.Context) ([]domain.Question, error)
}

type AnswerStore interface {
	InsertBatch(ctx context.Context, answers []domain.Answer) error
}
