package model

import (
	"encoding/json"
	"fmt"
)

// QuizType enumerates the supported quiz configurations.
type QuizType string

const (
	QuizTypeComplete QuizType = "complete"
	QuizTypeCustom   QuizType = "custom"
)

// Difficulty levels assigned to generated questions.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// QuizSource tells which path produced a quiz payload.
type QuizSource string

const (
	QuizSourceGenerated QuizSource = "generated"
	QuizSourceFallback  QuizSource = "fallback"
)

// GenerateQuizRequest is the payload for requesting a new quiz.
type GenerateQuizRequest struct {
	ExamName       string   `json:"examName" binding:"required,min=2,max=255"`
	ExamLevel      string   `json:"examLevel" binding:"required,min=2,max=100"`
	QuizType       QuizType `json:"quizType" binding:"required,oneof=complete custom"`
	SelectedTopics []string `json:"selectedTopics" binding:"required,min=1,dive,min=1"`
	QuestionCount  int      `json:"questionCount" binding:"required,min=1,max=100"`
}

// AnswerKey holds a question's answer selection: a single option index for
// ordinary questions or a set of indices for multi-answer questions. It
// marshals back to the same JSON shape it was parsed from (bare integer vs
// integer array).
type AnswerKey struct {
	Indices []int
	Multi   bool
}

// SingleAnswer builds an AnswerKey for a single-choice answer.
func SingleAnswer(idx int) AnswerKey {
	return AnswerKey{Indices: []int{idx}}
}

// MultiAnswer builds an AnswerKey for a multi-choice answer set.
func MultiAnswer(indices ...int) AnswerKey {
	return AnswerKey{Indices: indices, Multi: true}
}

// UnmarshalJSON accepts either a bare integer or an integer array.
func (k *AnswerKey) UnmarshalJSON(b []byte) error {
	var single int
	if err := json.Unmarshal(b, &single); err == nil {
		k.Indices = []int{single}
		k.Multi = false
		return nil
	}

	var multi []int
	if err := json.Unmarshal(b, &multi); err == nil {
		k.Indices = multi
		k.Multi = true
		return nil
	}

	return fmt.Errorf("answer key must be an integer or integer array, got %s", string(b))
}

// MarshalJSON emits a bare integer for single answers and an array otherwise.
func (k AnswerKey) MarshalJSON() ([]byte, error) {
	if !k.Multi {
		if len(k.Indices) == 0 {
			return json.Marshal(0)
		}
		return json.Marshal(k.Indices[0])
	}
	if k.Indices == nil {
		return json.Marshal([]int{})
	}
	return json.Marshal(k.Indices)
}

// Matches reports whether a user's selection is exactly the correct answer.
// Multi-answer questions require set equality (order-independent); there is
// no partial credit.
func (k AnswerKey) Matches(selected AnswerKey) bool {
	want := toSet(k.Indices)
	got := toSet(selected.Indices)
	if len(want) != len(got) {
		return false
	}
	for idx := range want {
		if !got[idx] {
			return false
		}
	}
	return true
}

// InRange reports whether every index in the key addresses a valid option.
func (k AnswerKey) InRange(optionCount int) bool {
	if len(k.Indices) == 0 {
		return false
	}
	for _, idx := range k.Indices {
		if idx < 0 || idx >= optionCount {
			return false
		}
	}
	return true
}

func toSet(indices []int) map[int]bool {
	set := make(map[int]bool, len(indices))
	for _, idx := range indices {
		set[idx] = true
	}
	return set
}

// QuizQuestion is a single multiple-choice question in a quiz payload.
// ID is the 1-based position of the question in its quiz.
type QuizQuestion struct {
	ID            int       `json:"id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer AnswerKey `json:"correctAnswer"`
	Explanation   string    `json:"explanation"`
	Difficulty    string    `json:"difficulty"`
	Topic         string    `json:"topic"`
}

// ExamInfo describes the quiz a question set belongs to.
type ExamInfo struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	TotalQuestions int    `json:"totalQuestions"`
}

// QuizData is the full quiz payload returned to the client. The Source field
// is additive: responses from the AI path and the fallback path share the
// exact same schema.
type QuizData struct {
	Questions []QuizQuestion `json:"questions"`
	ExamInfo  ExamInfo       `json:"examInfo"`
	Source    QuizSource     `json:"source"`
}
