package quizgen

import (
	"testing"

	"github.com/certlab/certquiz-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBankExactCountAndIDs(t *testing.T) {
	questions := FromBank("AWS Cloud Practitioner", []string{"Storage Services"}, 5)
	require.Len(t, questions, 5)

	for i, q := range questions {
		assert.Equal(t, i+1, q.ID)
		assert.Equal(t, "Storage Services", q.Topic)
		assert.NotEmpty(t, q.Question)
		assert.Len(t, q.Options, 4)
		assert.True(t, q.CorrectAnswer.InRange(len(q.Options)))
	}
}

func TestFromBankTopicRotation(t *testing.T) {
	topics := []string{"Compute", "Networking", "Security"}
	questions := FromBank("AWS", topics, 7)
	require.Len(t, questions, 7)

	for i, q := range questions {
		assert.Equal(t, topics[i%len(topics)], q.Topic)
	}
}

func TestFromBankCyclesPastBankSize(t *testing.T) {
	// Requests larger than the bank reuse questions; the count and the
	// 1-based ids still hold exactly.
	questions := FromBank("GCP Associate Cloud Engineer", nil, 40)
	require.Len(t, questions, 40)

	assert.Equal(t, 1, questions[0].ID)
	assert.Equal(t, 40, questions[39].ID)

	// Cyclic reuse means some question text repeats.
	texts := map[string]int{}
	for _, q := range questions {
		texts[q.Question]++
	}
	assert.Less(t, len(texts), 40)
}

func TestFromBankDoesNotMutateBank(t *testing.T) {
	before := awsBank[0].Topic
	_ = FromBank("aws", []string{"Overridden"}, 3)
	assert.Equal(t, before, awsBank[0].Topic)
}

func TestFromBankZeroOrNegativeCount(t *testing.T) {
	assert.Nil(t, FromBank("AWS", nil, 0))
	assert.Nil(t, FromBank("AWS", nil, -3))
}

func TestBankForKeywordMatch(t *testing.T) {
	cases := []struct {
		examName string
		want     []model.QuizQuestion
	}{
		{"AWS Certified Developer", awsBank},
		{"Amazon Web Services Basics", awsBank},
		{"Microsoft Azure Administrator", azureBank},
		{"azure fundamentals", azureBank},
		{"Google Cloud Digital Leader", gcpBank},
		{"GCP Professional Architect", gcpBank},
		{"Kubernetes Administrator", genericBank},
		{"", genericBank},
	}

	for _, tc := range cases {
		got := bankFor(tc.examName)
		assert.Equal(t, tc.want[0].Question, got[0].Question, tc.examName)
	}
}
