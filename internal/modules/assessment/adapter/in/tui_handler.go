package in

import (
	"context"

	"psynara/internal/modules/assessment/dto"
	assessmentin "psynara/internal/modules/assessment/port/in"
)

type TUIHandler struct {
	usecase assessmentin.Usecase
}

func NewTUIHandler(usecase assessmentin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Begin(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.Begin(ctx)
}

func (h TUIHandler) Answer(ctx context.Context, questionID string, value int) (dto.StateOutput, error) {
	return h.usecase.Answer(ctx, dto.AnswerInput{QuestionID: questionID, Value: value})
}

func (h TUIHandler) Next(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.Next(ctx)
}

func (h TUIHandler) Previous(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.Previous(ctx)
}

func (h TUIHandler) Submit(ctx context.Context) (dto.ResultOutput, error) {
	return h.usecase.Submit(ctx)
}
