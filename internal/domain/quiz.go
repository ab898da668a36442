package domain

import "errors"

// QuizQuestion is a single multiple-choice question generated for a video.
// It exists only for the lifetime of one assist session.
type QuizQuestion struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
}

// Validate checks that the question is answerable: at least one option and a
// correct index that points into the options.
func (q *QuizQuestion) Validate() error {
	if q.Question == "" {
		return errors.New("question is required")
	}
	if len(q.Options) == 0 {
		return errors.New("options must be non-empty")
	}
	if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
		return errors.New("correctAnswerIndex out of range")
	}
	return nil
}
