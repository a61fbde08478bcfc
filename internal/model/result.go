package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// QuestionResult captures how one question was answered.
type QuestionResult struct {
	QuestionID    int       `json:"questionId"`
	QuestionText  string    `json:"questionText"`
	UserAnswer    AnswerKey `json:"userAnswer"`
	CorrectAnswer AnswerKey `json:"correctAnswer"`
	IsCorrect     bool      `json:"isCorrect"`
	Explanation   string    `json:"explanation,omitempty"`
	Options       []string  `json:"options"`
	TimeSpent     *int      `json:"timeSpent,omitempty"` // Seconds, optional
}

// QuizSettings records the configuration the quiz was generated with.
type QuizSettings struct {
	QuizType       QuizType `json:"quizType"`
	SelectedTopics []string `json:"selectedTopics"`
	QuestionCount  int      `json:"questionCount"`
}

// QuizResult is the submission payload for one completed quiz attempt.
// The client builds it while taking the quiz; it is submitted exactly once.
// Score and Percentage are recomputed server-side and never trusted as sent.
type QuizResult struct {
	TestID              string           `json:"testId" binding:"required,min=1,max=100"`
	CertificateName     string           `json:"certificateName" binding:"required,min=2,max=255"`
	CertificateProvider string           `json:"certificateProvider" binding:"omitempty,max=100"`
	CertificateCode     string           `json:"certificateCode" binding:"omitempty,max=50"`
	EmailID             string           `json:"emailId" binding:"omitempty,email"`
	Score               int              `json:"score" binding:"min=0"`
	TotalQuestions      int              `json:"totalQuestions" binding:"required,min=1"`
	Percentage          int              `json:"percentage" binding:"min=0,max=100"`
	TimeSpent           int              `json:"timeSpent" binding:"min=0"` // Seconds
	Questions           []QuestionResult `json:"questions" binding:"required,min=1"`
	StartTime           time.Time        `json:"startTime" binding:"required"`
	EndTime             time.Time        `json:"endTime" binding:"required"`
	QuizSettings        *QuizSettings    `json:"quizSettings,omitempty"`
}

// Timing is the timing block of a persisted result summary.
type Timing struct {
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	TotalSeconds int       `json:"totalSeconds"`
}

// Performance is the derived performance block of a result summary.
// CorrectAnswers + IncorrectAnswers always equals TotalQuestions.
type Performance struct {
	Score            int `json:"score"`
	TotalQuestions   int `json:"totalQuestions"`
	Percentage       int `json:"percentage"`
	CorrectAnswers   int `json:"correctAnswers"`
	IncorrectAnswers int `json:"incorrectAnswers"`
}

// ResultSummary is the write-once JSON document persisted with each attempt.
// It is never edited after creation, only deleted together with its row.
type ResultSummary struct {
	Questions   []QuestionResult `json:"questions"`
	Settings    *QuizSettings    `json:"settings,omitempty"`
	Timing      Timing           `json:"timing"`
	Performance Performance      `json:"performance"`
	SubmittedAt time.Time        `json:"submittedAt"`
	UserEmail   string           `json:"userEmail"`
}

// ExamHistory is one persisted quiz attempt, owned by a user.
// Rows are immutable: inserted once, deleted only by explicit user action.
type ExamHistory struct {
	ID                  uuid.UUID       `json:"id"`
	UserID              int             `json:"user_id"`
	TestID              string          `json:"test_id"`
	CertificateName     string          `json:"certificate_name"`
	CertificateProvider string          `json:"certificate_provider"`
	CertificateCode     string          `json:"certificate_code"`
	Score               int             `json:"score"`
	TotalQuestions      int             `json:"total_questions"`
	Percentage          int             `json:"percentage"`
	TimeSpentSeconds    int             `json:"time_spent_seconds"`
	ResultSummary       json.RawMessage `json:"result_summary"`
	CreatedAt           time.Time       `json:"created_at"`
}

// UserStats aggregates a user's exam history for the statistics view.
type UserStats struct {
	TotalAttempts  int                      `json:"total_attempts"`
	AvgPercentage  float64                  `json:"avg_percentage"`
	BestPercentage int                      `json:"best_percentage"`
	TotalQuestions int                      `json:"total_questions"`
	TotalCorrect   int                      `json:"total_correct"`
	ByProvider     map[string]ProviderStats `json:"by_provider"`
	ComputedAt     time.Time                `json:"computed_at"`
}

// ProviderStats is the per-provider slice of UserStats.
type ProviderStats struct {
	Attempts      int     `json:"attempts"`
	AvgPercentage float64 `json:"avg_percentage"`
}
