package domain

import (
	"fmt"
	"strings"
	"time"
)

// Options is the answer scale declared by a question.
type Options struct {
	Min    int      `json:"min"`
	Max    int      `json:"max"`
	Labels []string `json:"labels,omitempty"`
}

func (o Options) Contains(v int) bool { return v >= o.Min && v <= o.Max }

// Label returns the caption for v, or the number itself when none is declared.
func (o Options) Label(v int) string {
	i := v - o.Min
	if i >= 0 && i < len(o.Labels) {
		return o.Labels[i]
	}
	return fmt.Sprintf("%d", v)
}

type Question struct {
	ID        string
	Category  string
	Prompt    string
	Type      string
	Options   Options
	Order     int
	CreatedAt time.Time
}

func (q Question) Validate() error {
	if strings.TrimSpace(q.ID) == "" {
		return fmt.Errorf("question id is required")
	}
	if strings.TrimSpace(q.Category) == "" {
		return fmt.Errorf("question %s: category is required", q.ID)
	}
	if q.Options.Max <= 0 || q.Options.Min > q.Options.Max {
		return fmt.Errorf("question %s: invalid scale [%d,%d]", q.ID, q.Options.Min, q.Options.Max)
	}
	return nil
}

// Answer is one stored user_answers row.
type Answer struct {
	ID         string
	UserID     string
	QuestionID string
	Answer     string
	Score      int
	CreatedAt  time.Time
}
