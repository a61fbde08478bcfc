package quizgen

import (
	"testing"

	"github.com/certlab/certquiz-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTopics = []string{"Compute", "Storage"}

func TestExtractQuestionsFromCleanResponse(t *testing.T) {
	raw := `[
		{
			"id": 1,
			"question": "Which service runs containers without managing servers?",
			"options": ["Fargate", "EC2", "Lightsail", "Outposts"],
			"correctAnswer": 0,
			"explanation": "Fargate runs containers serverlessly.",
			"difficulty": "Easy",
			"topic": "Compute"
		},
		{
			"id": 2,
			"question": "Which two options improve availability?",
			"options": ["Multi-AZ", "Single instance", "Load balancing", "Manual failover"],
			"correctAnswer": [0, 2],
			"explanation": "Multi-AZ and load balancing both remove single points of failure.",
			"difficulty": "Hard",
			"topic": "Storage"
		}
	]`

	questions, err := ExtractQuestions(raw, testTopics)
	require.NoError(t, err)
	require.Len(t, questions, 2)

	assert.Equal(t, 1, questions[0].ID)
	assert.Equal(t, model.SingleAnswer(0), questions[0].CorrectAnswer)
	assert.Equal(t, "Easy", questions[0].Difficulty)

	assert.Equal(t, 2, questions[1].ID)
	assert.Equal(t, model.MultiAnswer(0, 2), questions[1].CorrectAnswer)
}

func TestExtractQuestionsStripsSurroundingProse(t *testing.T) {
	raw := "Sure, here are your questions:\n```json\n" +
		`[{"question": "Q?", "options": ["a", "b", "c", "d"], "correctAnswer": 1}]` +
		"\n```\nLet me know if you need more."

	questions, err := ExtractQuestions(raw, testTopics)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, model.SingleAnswer(1), questions[0].CorrectAnswer)
}

func TestExtractQuestionsNoArrayFails(t *testing.T) {
	for _, raw := range []string{
		"I cannot generate questions right now.",
		"",
		`{"question": "not an array"}`,
		"] backwards [",
	} {
		_, err := ExtractQuestions(raw, testTopics)
		assert.ErrorIs(t, err, ErrNoJSONArray, "input: %q", raw)
	}
}

func TestExtractQuestionsEmptyArrayFails(t *testing.T) {
	_, err := ExtractQuestions("[]", testTopics)
	assert.ErrorIs(t, err, ErrNoJSONArray)
}

func TestExtractQuestionsNonObjectItemsFail(t *testing.T) {
	_, err := ExtractQuestions(`[1, 2, 3]`, testTopics)
	assert.ErrorIs(t, err, ErrNoJSONArray)
}

func TestNormalizeDefaults(t *testing.T) {
	// A bare object is still a question: every field degrades to a default.
	questions, err := ExtractQuestions(`[{}]`, testTopics)
	require.NoError(t, err)
	require.Len(t, questions, 1)

	q := questions[0]
	assert.Equal(t, 1, q.ID)
	assert.Equal(t, "Question 1", q.Question)
	assert.Equal(t, []string{"Option A", "Option B", "Option C", "Option D"}, q.Options)
	assert.Equal(t, model.SingleAnswer(0), q.CorrectAnswer)
	assert.Equal(t, "No explanation provided", q.Explanation)
	assert.Equal(t, model.DifficultyMedium, q.Difficulty)
	assert.Equal(t, "Compute", q.Topic)
}

func TestNormalizePreservesLiteralZeroAnswer(t *testing.T) {
	// correctAnswer 0 is a real answer, not a missing field.
	questions, err := ExtractQuestions(
		`[{"question": "Q?", "options": ["a", "b"], "correctAnswer": 0}]`, testTopics)
	require.NoError(t, err)
	assert.Equal(t, model.SingleAnswer(0), questions[0].CorrectAnswer)
}

func TestNormalizeRejectsBadAnswers(t *testing.T) {
	cases := map[string]string{
		"out of range":     `[{"options": ["a", "b"], "correctAnswer": 5}]`,
		"negative":         `[{"options": ["a", "b"], "correctAnswer": -1}]`,
		"fractional":       `[{"options": ["a", "b"], "correctAnswer": 1.5}]`,
		"string":           `[{"options": ["a", "b"], "correctAnswer": "b"}]`,
		"empty array":      `[{"options": ["a", "b"], "correctAnswer": []}]`,
		"array with float": `[{"options": ["a", "b"], "correctAnswer": [0, 1.5]}]`,
	}

	for name, raw := range cases {
		questions, err := ExtractQuestions(raw, testTopics)
		require.NoError(t, err, name)
		assert.Equal(t, model.SingleAnswer(0), questions[0].CorrectAnswer, name)
	}
}

func TestNormalizeOverridesModelIDs(t *testing.T) {
	raw := `[
		{"id": 42, "question": "first"},
		{"id": 7, "question": "second"}
	]`

	questions, err := ExtractQuestions(raw, testTopics)
	require.NoError(t, err)
	assert.Equal(t, 1, questions[0].ID)
	assert.Equal(t, 2, questions[1].ID)
}

func TestNormalizeInvalidDifficulty(t *testing.T) {
	questions, err := ExtractQuestions(
		`[{"question": "Q?", "difficulty": "impossible"}]`, testTopics)
	require.NoError(t, err)
	assert.Equal(t, model.DifficultyMedium, questions[0].Difficulty)
}

func TestNormalizeTopicFallbackWithoutTopics(t *testing.T) {
	questions, err := ExtractQuestions(`[{"question": "Q?"}]`, nil)
	require.NoError(t, err)
	assert.Equal(t, "General", questions[0].Topic)
}
