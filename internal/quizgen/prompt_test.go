package quizgen

import (
	"strings"
	"testing"

	"github.com/certlab/certquiz-backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	req := model.GenerateQuizRequest{
		ExamName:       "AWS Certified Solutions Architect",
		ExamLevel:      "Associate",
		QuizType:       model.QuizTypeCustom,
		SelectedTopics: []string{"Storage Services", "Networking"},
		QuestionCount:  15,
	}

	prompt := BuildPrompt(req)

	assert.Contains(t, prompt, "exactly 15 multiple-choice questions")
	assert.Contains(t, prompt, `"AWS Certified Solutions Architect"`)
	assert.Contains(t, prompt, "Associate level")
	assert.Contains(t, prompt, "Storage Services, Networking")
	assert.Contains(t, prompt, `"correctAnswer": 0`)
	assert.Contains(t, prompt, "JSON array")
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	req := model.GenerateQuizRequest{
		ExamName:       "Azure Fundamentals",
		ExamLevel:      "Beginner",
		QuizType:       model.QuizTypeComplete,
		SelectedTopics: []string{"Core Services"},
		QuestionCount:  5,
	}

	assert.Equal(t, BuildPrompt(req), BuildPrompt(req))
}

func TestSystemPromptForbidsMarkdown(t *testing.T) {
	// The extractor depends on raw JSON output, so the system prompt has
	// to discourage fenced responses.
	assert.True(t, strings.Contains(SystemPrompt, "raw JSON"))
}
