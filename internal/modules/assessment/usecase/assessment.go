package usecase

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"psynara/internal/modules/assessment/domain"
	"psynara/internal/modules/assessment/dto"
	assessmentin "psynara/internal/modules/assessment/port/in"
	"psynara/internal/modules/assessment/service"
	apperrors "psynara/internal/platform/errors"
)

var errNoAssessment = fmt.Errorf("assessment: %w", apperrors.ErrNoActiveSession)

// Interactor keeps the in-progress questionnaire between calls.
type Interactor struct {
	mu     sync.Mutex
	svc    *service.AssessmentService
	active *domain.Assessment
}

func NewInteractor(svc *service.AssessmentService) assessmentin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListQuestions(ctx context.Context) ([]dto.QuestionOutput, error) {
	questions, err := i.svc.Questions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuestionOutput, 0, len(questions))
	for _, q := range questions {
		out = append(out, toQuestionOutput(q))
	}
	return out, nil
}

// Begin starts a fresh run, dropping any unfinished one.
func (i *Interactor) Begin(ctx context.Context) (dto.StateOutput, error) {
	a, err := i.svc.Begin(ctx)
	if err != nil {
		return dto.StateOutput{}, err
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.active = a
	return toStateOutput(a), nil
}

func (i *Interactor) State(_ context.Context) (dto.StateOutput, error) {
	return i.with(func(*domain.Assessment) error { return nil })
}

func (i *Interactor) Answer(_ context.Context, input dto.AnswerInput) (dto.StateOutput, error) {
	return i.with(func(a *domain.Assessment) error {
		return a.RecordAnswer(input.QuestionID, input.Value)
	})
}

func (i *Interactor) Next(_ context.Context) (dto.StateOutput, error) {
	return i.with(func(a *domain.Assessment) error { return a.Next() })
}

func (i *Interactor) Previous(_ context.Context) (dto.StateOutput, error) {
	return i.with(func(a *domain.Assessment) error {
		a.Previous()
		return nil
	})
}

// Submit stores the active run. It stays active when saving fails so the user
// can retry without answering again.
func (i *Interactor) Submit(ctx context.Context) (dto.ResultOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.active == nil {
		return dto.ResultOutput{}, errNoAssessment
	}
	result, err := i.submit(ctx, i.active)
	if err != nil {
		return dto.ResultOutput{}, err
	}
	i.active = nil
	return result, nil
}

func (i *Interactor) SubmitAll(ctx context.Context, input dto.SubmitAllInput) (dto.ResultOutput, error) {
	a, err := i.svc.Begin(ctx)
	if err != nil {
		return dto.ResultOutput{}, err
	}
	byKey := map[string]string{}
	for _, q := range a.Questions() {
		byKey[q.ID] = q.ID
		byKey[strconv.Itoa(q.Order)] = q.ID
	}
	resolved := make(map[string]int, len(input.Answers))
	for key, v := range input.Answers {
		qid, ok := byKey[key]
		if !ok {
			return dto.ResultOutput{}, fmt.Errorf("question %q: %w", key, apperrors.ErrNotFound)
		}
		resolved[qid] = v
	}
	for n := 0; n < a.Len(); n++ {
		v, ok := resolved[a.Current().ID]
		if !ok {
			break
		}
		if err := a.RecordAnswer(a.Current().ID, v); err != nil {
			return dto.ResultOutput{}, fmt.Errorf("question %d: %w", a.Cursor()+1, err)
		}
		if err := a.Next(); err != nil {
			return dto.ResultOutput{}, err
		}
	}
	return i.submit(ctx, a)
}

func (i *Interactor) submit(ctx context.Context, a *domain.Assessment) (dto.ResultOutput, error) {
	scores, at, err := i.svc.Submit(ctx, a)
	if err != nil {
		return dto.ResultOutput{}, err
	}
	out := dto.ResultOutput{Overall: domain.Overall(scores), Answered: a.Answered(), SubmittedAt: at}
	for _, s := range scores {
		out.Scores = append(out.Scores, dto.CategoryScoreOutput{
			Category: s.Category,
			Sum:      s.Sum,
			Max:      s.Max,
			Percent:  s.Percent,
			Band:     string(s.Band),
		})
	}
	return out, nil
}

// with applies fn to the active run and reports the resulting state even when
// fn rejects the input.
func (i *Interactor) with(fn func(*domain.Assessment) error) (dto.StateOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.active == nil {
		return dto.StateOutput{}, errNoAssessment
	}
	err := fn(i.active)
	return toStateOutput(i.active), err
}

func toQuestionOutput(q domain.Question) dto.QuestionOutput {
	return dto.QuestionOutput{
		ID:       q.ID,
		Category: q.Category,
		Prompt:   q.Prompt,
		Type:     q.Type,
		Min:      q.Options.Min,
		Max:      q.Options.Max,
		Labels:   append([]string(nil), q.Options.Labels...),
		Order:    q.Order,
	}
}

func toStateOutput(a *domain.Assessment) dto.StateOutput {
	q := a.Current()
	v, ok := a.Answer(q.ID)
	return dto.StateOutput{
		Question:    toQuestionOutput(q),
		Index:       a.Cursor(),
		Total:       a.Len(),
		Answer:      v,
		HasAnswer:   ok,
		Answered:    a.Answered(),
		CanNext:     a.CanNext(),
		CanPrevious: a.CanPrevious(),
		CanSubmit:   a.Complete(),
	}
}
