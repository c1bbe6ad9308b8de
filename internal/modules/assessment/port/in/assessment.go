package in

import (
	"context"

	"psynara/internal/modules/assessment/dto"
)

type Usecase interface {
	ListQuestions(ctx context.Context) ([]dto.QuestionOutput, error)
	Begin(ctx context.Context) (dto.StateOutput, error)
	State(ctx context.Context) (dto.StateOutput, error)
	Answer(ctx context.Context, input dto.AnswerInput) (dto.StateOutput, error)
	Next(ctx context.Context) (dto.StateOutput, error)
	Previous(ctx context.Context) (dto.StateOutput, error)
	Submit(ctx context.Context) (dto.ResultOutput, error)
	SubmitAll(ctx context.Context, input dto.SubmitAllInput) (dto.ResultOutput, error)
}
