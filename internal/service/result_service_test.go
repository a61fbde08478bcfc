package service

import (
	"testing"
	"time"

	"github.com/certlab/certquiz-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultWith(correct, total int) model.QuizResult {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	questions := make([]model.QuestionResult, total)
	for i := range questions {
		questions[i] = model.QuestionResult{
			QuestionID:    i + 1,
			QuestionText:  "Q?",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: model.SingleAnswer(0),
			UserAnswer:    model.SingleAnswer(0),
		}
		if i >= correct {
			questions[i].UserAnswer = model.SingleAnswer(1)
		}
	}
	return model.QuizResult{
		TestID:          "test-123",
		CertificateName: "AWS Certified Cloud Practitioner",
		TotalQuestions:  total,
		TimeSpent:       600,
		Questions:       questions,
		StartTime:       start,
		EndTime:         start.Add(10 * time.Minute),
	}
}

func TestBuildSummaryScoring(t *testing.T) {
	submittedAt := time.Date(2026, 3, 1, 10, 15, 0, 0, time.UTC)

	summary, err := BuildSummary(resultWith(7, 10), "user@example.com", submittedAt)
	require.NoError(t, err)

	assert.Equal(t, 7, summary.Performance.Score)
	assert.Equal(t, 10, summary.Performance.TotalQuestions)
	assert.Equal(t, 70, summary.Performance.Percentage)
	assert.Equal(t, 7, summary.Performance.CorrectAnswers)
	assert.Equal(t, 3, summary.Performance.IncorrectAnswers)
	assert.Equal(t, summary.Performance.TotalQuestions,
		summary.Performance.CorrectAnswers+summary.Performance.IncorrectAnswers)

	assert.Equal(t, 600, summary.Timing.TotalSeconds)
	assert.Equal(t, "user@example.com", summary.UserEmail)
	assert.Equal(t, submittedAt, summary.SubmittedAt)
}

func TestBuildSummaryIgnoresClientScore(t *testing.T) {
	res := resultWith(2, 4)
	res.Score = 4
	res.Percentage = 100

	summary, err := BuildSummary(res, "user@example.com", time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Performance.Score)
	assert.Equal(t, 50, summary.Performance.Percentage)
}

func TestBuildSummaryRounding(t *testing.T) {
	cases := []struct {
		correct, total, want int
	}{
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 rounds half away from zero
		{0, 5, 0},
		{5, 5, 100},
	}

	for _, tc := range cases {
		summary, err := BuildSummary(resultWith(tc.correct, tc.total), "u@e.com", time.Now().UTC())
		require.NoError(t, err)
		assert.Equal(t, tc.want, summary.Performance.Percentage,
			"%d/%d", tc.correct, tc.total)
	}
}

func TestBuildSummaryMultiAnswerSetEquality(t *testing.T) {
	res := resultWith(0, 3)
	correct := model.MultiAnswer(0, 2)
	for i := range res.Questions {
		res.Questions[i].CorrectAnswer = correct
	}
	res.Questions[0].UserAnswer = model.MultiAnswer(2, 0)    // Order-independent match
	res.Questions[1].UserAnswer = model.MultiAnswer(0)       // Subset — no partial credit
	res.Questions[2].UserAnswer = model.MultiAnswer(0, 1, 2) // Superset

	summary, err := BuildSummary(res, "u@e.com", time.Now().UTC())
	require.NoError(t, err)

	assert.True(t, summary.Questions[0].IsCorrect)
	assert.False(t, summary.Questions[1].IsCorrect)
	assert.False(t, summary.Questions[2].IsCorrect)
	assert.Equal(t, 1, summary.Performance.Score)
}

func TestBuildSummaryIsDeterministic(t *testing.T) {
	submittedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	res := resultWith(3, 5)

	first, err := BuildSummary(res, "u@e.com", submittedAt)
	require.NoError(t, err)
	second, err := BuildSummary(res, "u@e.com", submittedAt)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildSummaryQuestionCountMismatch(t *testing.T) {
	res := resultWith(2, 5)
	res.TotalQuestions = 6

	_, err := BuildSummary(res, "u@e.com", time.Now().UTC())
	assert.ErrorIs(t, err, ErrQuestionCountMismatch)
}

func TestBuildSummaryInvalidTiming(t *testing.T) {
	res := resultWith(2, 5)
	res.EndTime = res.StartTime.Add(-time.Minute)

	_, err := BuildSummary(res, "u@e.com", time.Now().UTC())
	assert.ErrorIs(t, err, ErrInvalidTiming)
}

func TestBuildSummaryDerivesTimeFromTimestamps(t *testing.T) {
	res := resultWith(2, 5)
	res.TimeSpent = 0 // Not reported by the client

	summary, err := BuildSummary(res, "u@e.com", time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 600, summary.Timing.TotalSeconds)
}
