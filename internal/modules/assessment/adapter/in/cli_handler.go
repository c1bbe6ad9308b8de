package in

import (
	"context"
	"strconv"
	"strings"

	"psynara/internal/modules/assessment/dto"
	assessmentin "psynara/internal/modules/assessment/port/in"
	apperrors "psynara/internal/platform/errors"
)

type CLIHandler struct {
	usecase assessmentin.Usecase
}

func NewCLIHandler(usecase assessmentin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListQuestions(ctx context.Context) ([]dto.QuestionOutput, error) {
	return h.usecase.ListQuestions(ctx)
}

// Submit takes "key=value" pairs where key is a question id or its order number.
func (h CLIHandler) Submit(ctx context.Context, pairs []string) (dto.ResultOutput, error) {
	answers := make(map[string]int, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return dto.ResultOutput{}, apperrors.Invalid("answer %q must look like <question>=<value>", pair)
		}
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return dto.ResultOutput{}, apperrors.Invalid("answer %q: value must be a number", pair)
		}
		answers[key] = v
	}
	return h.usecase.SubmitAll(ctx, dto.SubmitAllInput{Answers: answers})
}
