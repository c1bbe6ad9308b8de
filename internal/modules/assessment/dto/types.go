package dto

import "time"

type QuestionOutput struct {
	ID       string
	Category string
	Prompt   string
	Type     string
	Min      int
	Max      int
	Labels   []string
	Order    int
}

// StateOutput describes the questionnaire at its current cursor.
type StateOutput struct {
	Question    QuestionOutput
	Index       int
	Total       int
	Answer      int
	HasAnswer   bool
	Answered    int
	CanNext     bool
	CanPrevious bool
	CanSubmit   bool
}

type AnswerInput struct {
	QuestionID string
	Value      int
}

// SubmitAllInput answers a whole questionnaire at once. Keys are question ids
// or one-based order numbers.
type SubmitAllInput struct {
	Answers map[string]int
}

type CategoryScoreOutput struct {
	Category string
	Sum      int
	Max      int
	Percent  float64
	Band     string
}

type ResultOutput struct {
	Scores      []CategoryScoreOutput
	Overall     float64
	Answered    int
	SubmittedAt time.Time
}
