package domain

import (
	"fmt"
	"maps"

	apperrors "psynara/internal/platform/errors"
)

// Assessment is one run of the questionnaire. The cursor walks the questions in
// order; visited is the furthest question reached so far.
type Assessment struct {
	questions []Question
	answers   map[string]int
	cursor    int
	visited   int
}

func NewAssessment(questions []Question) (*Assessment, error) {
	if len(questions) == 0 {
		return nil, apperrors.Invalid("assessment has no questions")
	}
	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
		}
		if seen[q.ID] {
			return nil, apperrors.Invalid("duplicate question %s", q.ID)
		}
		seen[q.ID] = true
	}
	return &Assessment{
		questions: append([]Question(nil), questions...),
		answers:   map[string]int{},
	}, nil
}

func (a *Assessment) Questions() []Question   { return append([]Question(nil), a.questions...) }
func (a *Assessment) Len() int                { return len(a.questions) }
func (a *Assessment) Cursor() int             { return a.cursor }
func (a *Assessment) Current() Question       { return a.questions[a.cursor] }
func (a *Assessment) Answers() map[string]int { return maps.Clone(a.answers) }
func (a *Assessment) Answered() int           { return len(a.answers) }
func (a *Assessment) Complete() bool          { return len(a.answers) == len(a.questions) }
func (a *Assessment) CanPrevious() bool       { return a.cursor > 0 }

func (a *Assessment) Answer(questionID string) (int, bool) {
	v, ok := a.answers[questionID]
	return v, ok
}

func (a *Assessment) CanNext() bool {
	_, ok := a.answers[a.Current().ID]
	return ok && a.cursor < len(a.questions)-1
}

func (a *Assessment) index(questionID string) int {
	for i, q := range a.questions {
		if q.ID == questionID {
			return i
		}
	}
	return -1
}

// RecordAnswer stores value for a question at or before the visited mark,
// replacing any earlier answer.
func (a *Assessment) RecordAnswer(questionID string, value int) error {
	i := a.index(questionID)
	if i < 0 {
		return fmt.Errorf("question %s: %w", questionID, apperrors.ErrNotFound)
	}
	if i > a.visited {
		return apperrors.Invalid("question %d has not been reached yet", i+1)
	}
	q := a.questions[i]
	if !q.Options.Contains(value) {
		return apperrors.Invalid("answer %d is outside [%d,%d]", value, q.Options.Min, q.Options.Max)
	}
	a.answers[questionID] = value
	return nil
}

// Next moves forward once the current question is answered. On the last
// question it does nothing.
func (a *Assessment) Next() error {
	if _, ok := a.answers[a.Current().ID]; !ok {
		return apperrors.Invalid("answer the current question first")
	}
	if a.cursor == len(a.questions)-1 {
		return nil
	}
	a.cursor++
	a.visited = max(a.visited, a.cursor)
	return nil
}

func (a *Assessment) Previous() {
	if a.cursor > 0 {
		a.cursor--
	}
}

// Submit scores the run. It refuses while any question is unanswered.
func (a *Assessment) Submit() ([]CategoryScore, error) {
	if missing := len(a.questions) - len(a.answers); missing > 0 {
		return nil, fmt.Errorf("%w: %d question(s) unanswered", apperrors.ErrIncompleteAssessment, missing)
	}
	return Score(a.questions, a.answers), nil
}
