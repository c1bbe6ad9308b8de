package service

import (
	"context"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"

	"psynara/internal/modules/assessment/domain"
	assessmentout "psynara/internal/modules/assessment/port/out"
	"psynara/internal/platform/clock"
	"psynara/internal/platform/id"
	"psynara/internal/platform/tx"
)

type AssessmentService struct {
	clock     clock.Clock
	idGen     id.Generator
	questions assessmentout.QuestionStore
	answers   assessmentout.AnswerStore
	txm       tx.Manager
	logger    hclog.Logger
	userID    string
}

func NewAssessmentService(
	clock clock.Clock,
	idGen id.Generator,
	questions assessmentout.QuestionStore,
	answers assessmentout.AnswerStore,
	txm tx.Manager,
	logger hclog.Logger,
	userID string,
) *AssessmentService {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &AssessmentService{
		clock:     clock,
		idGen:     idGen,
		questions: questions,
		answers:   answers,
		txm:       txm,
		logger:    logger.Named("assessment"),
		userID:    userID,
	}
}

func (s *AssessmentService) Questions(ctx context.Context) ([]domain.Question, error) {
	return s.questions.List(ctx)
}

func (s *AssessmentService) Begin(ctx context.Context) (*domain.Assessment, error) {
	questions, err := s.questions.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewAssessment(questions)
}

// Submit scores a finished run and stores one answer row per question in a
// single transaction.
func (s *AssessmentService) Submit(ctx context.Context, a *domain.Assessment) ([]domain.CategoryScore, time.Time, error) {
	scores, err := a.Submit()
	if err != nil {
		return nil, time.Time{}, err
	}
	now := s.clock.Now()
	rows := make([]domain.Answer, 0, a.Len())
	for _, q := range a.Questions() {
		v, _ := a.Answer(q.ID)
		rows = append(rows, domain.Answer{
			ID:         s.idGen.New(),
			UserID:     s.userID,
			QuestionID: q.ID,
			Answer:     strconv.Itoa(v),
			Score:      v,
			CreatedAt:  now,
		})
	}
	if err := s.txm.Within(ctx, func(txCtx context.Context) error {
		return s.answers.InsertBatch(txCtx, rows)
	}); err != nil {
		s.logger.Warn("assessment not saved", "answers", len(rows), "error", err)
		return nil, time.Time{}, err
	}
	s.logger.Info("assessment submitted", "answers", len(rows), "overall", domain.Overall(scores))
	return scores, now, nil
}
