package service

import (
	"context"
	"testing"
	"time"

	"github.com/certlab/certquiz-backend/internal/config"
	"github.com/certlab/certquiz-backend/internal/llm"
	"github.com/certlab/certquiz-backend/internal/model"
	"github.com/certlab/certquiz-backend/internal/quizgen"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuizService(provider llm.Provider) *QuizService {
	cfg := &config.Config{
		GenerationTimeout: time.Second,
		QuizCacheTTL:      time.Minute,
	}
	return NewQuizService(provider, nil, cfg, zerolog.Nop())
}

func quizRequest(n int, topics ...string) model.GenerateQuizRequest {
	return model.GenerateQuizRequest{
		ExamName:       "AWS Certified Cloud Practitioner",
		ExamLevel:      "Foundational",
		QuizType:       model.QuizTypeCustom,
		SelectedTopics: topics,
		QuestionCount:  n,
	}
}

func TestGenerateFromProvider(t *testing.T) {
	canned := `[
		{"question": "Q1?", "options": ["a", "b", "c", "d"], "correctAnswer": 2,
		 "explanation": "because", "difficulty": "Easy", "topic": "Compute"},
		{"question": "Q2?", "options": ["a", "b", "c", "d"], "correctAnswer": [0, 3],
		 "explanation": "because", "difficulty": "Hard", "topic": "Storage"}
	]`
	mock := llm.NewMockProvider(llm.MockResponse{Content: canned})
	svc := newTestQuizService(mock)

	data := svc.Generate(context.Background(), 1, quizRequest(2, "Compute", "Storage"))

	require.NotNil(t, data)
	assert.Equal(t, model.QuizSourceGenerated, data.Source)
	require.Len(t, data.Questions, 2)
	assert.Equal(t, 1, data.Questions[0].ID)
	assert.Equal(t, model.SingleAnswer(2), data.Questions[0].CorrectAnswer)
	assert.Equal(t, model.MultiAnswer(0, 3), data.Questions[1].CorrectAnswer)

	assert.Equal(t, "AWS Certified Cloud Practitioner", data.ExamInfo.Name)
	assert.Equal(t, "Custom Quiz", data.ExamInfo.Type)
	assert.Equal(t, 2, data.ExamInfo.TotalQuestions)

	// The provider received the system role and the built instruction.
	require.Equal(t, 1, mock.CallCount())
	assert.Equal(t, quizgen.SystemPrompt, mock.Calls[0].System)
	assert.Contains(t, mock.Calls[0].Prompt, "exactly 2 multiple-choice questions")
}

func TestGenerateFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrServiceStatus{StatusCode: 500}})
	svc := newTestQuizService(mock)

	data := svc.Generate(context.Background(), 1, quizRequest(5, "Storage Services"))

	require.NotNil(t, data)
	assert.Equal(t, model.QuizSourceFallback, data.Source)
	require.Len(t, data.Questions, 5)
	for i, q := range data.Questions {
		assert.Equal(t, i+1, q.ID)
		assert.Equal(t, "Storage Services", q.Topic)
	}
	assert.Equal(t, 5, data.ExamInfo.TotalQuestions)
}

func TestGenerateFallsBackOnUnparseableOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "I'm sorry, I can't do that."})
	svc := newTestQuizService(mock)

	data := svc.Generate(context.Background(), 1, quizRequest(3, "Networking"))

	assert.Equal(t, model.QuizSourceFallback, data.Source)
	assert.Len(t, data.Questions, 3)
}

func TestGenerateWithoutProvider(t *testing.T) {
	svc := newTestQuizService(nil)

	data := svc.Generate(context.Background(), 1, quizRequest(4, "Security"))

	require.NotNil(t, data)
	assert.Equal(t, model.QuizSourceFallback, data.Source)
	assert.Len(t, data.Questions, 4)
}

func TestGeneratedAndFallbackShareSchema(t *testing.T) {
	// Both paths fill the same payload struct completely; only Source
	// tells them apart.
	canned := `[{"question": "Q?", "options": ["a", "b", "c", "d"], "correctAnswer": 1}]`
	generated := newTestQuizService(llm.NewMockProvider(llm.MockResponse{Content: canned})).
		Generate(context.Background(), 1, quizRequest(1, "Compute"))
	fallback := newTestQuizService(nil).
		Generate(context.Background(), 1, quizRequest(1, "Compute"))

	for _, data := range []*model.QuizData{generated, fallback} {
		require.Len(t, data.Questions, 1)
		q := data.Questions[0]
		assert.NotEmpty(t, q.Question)
		assert.NotEmpty(t, q.Options)
		assert.NotEmpty(t, q.Explanation)
		assert.NotEmpty(t, q.Difficulty)
		assert.NotEmpty(t, q.Topic)
		assert.True(t, q.CorrectAnswer.InRange(len(q.Options)))
		assert.Equal(t, data.ExamInfo.TotalQuestions, len(data.Questions))
	}
	assert.Equal(t, model.QuizSourceGenerated, generated.Source)
	assert.Equal(t, model.QuizSourceFallback, fallback.Source)
}

func TestEmergencyQuizShape(t *testing.T) {
	svc := newTestQuizService(nil)
	data := svc.emergencyQuiz()

	require.Len(t, data.Questions, quizgen.EmergencyQuestionCount)
	assert.Equal(t, quizgen.EmergencyExamName, data.ExamInfo.Name)
	assert.Equal(t, model.QuizSourceFallback, data.Source)
	for _, q := range data.Questions {
		assert.Equal(t, quizgen.EmergencyTopic, q.Topic)
	}
}
