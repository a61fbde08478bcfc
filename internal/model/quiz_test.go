package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerKeyUnmarshal(t *testing.T) {
	var single AnswerKey
	require.NoError(t, json.Unmarshal([]byte(`2`), &single))
	assert.Equal(t, SingleAnswer(2), single)

	var multi AnswerKey
	require.NoError(t, json.Unmarshal([]byte(`[0, 2]`), &multi))
	assert.Equal(t, MultiAnswer(0, 2), multi)

	var bad AnswerKey
	assert.Error(t, json.Unmarshal([]byte(`"first"`), &bad))
}

func TestAnswerKeyMarshalRoundTrip(t *testing.T) {
	// Single answers marshal back to a bare integer, multi answers to an
	// array, mirroring the wire shape they were parsed from.
	out, err := json.Marshal(SingleAnswer(3))
	require.NoError(t, err)
	assert.JSONEq(t, `3`, string(out))

	out, err = json.Marshal(MultiAnswer(1, 3))
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 3]`, string(out))
}

func TestAnswerKeyMatches(t *testing.T) {
	assert.True(t, SingleAnswer(1).Matches(SingleAnswer(1)))
	assert.False(t, SingleAnswer(1).Matches(SingleAnswer(0)))

	key := MultiAnswer(0, 2)
	assert.True(t, key.Matches(MultiAnswer(2, 0)))
	assert.False(t, key.Matches(MultiAnswer(0)))
	assert.False(t, key.Matches(MultiAnswer(0, 1, 2)))
	assert.False(t, key.Matches(SingleAnswer(0)))
}

func TestAnswerKeyInRange(t *testing.T) {
	assert.True(t, SingleAnswer(0).InRange(4))
	assert.True(t, SingleAnswer(3).InRange(4))
	assert.False(t, SingleAnswer(4).InRange(4))
	assert.False(t, SingleAnswer(-1).InRange(4))
	assert.True(t, MultiAnswer(0, 3).InRange(4))
	assert.False(t, MultiAnswer(0, 4).InRange(4))
	assert.False(t, AnswerKey{}.InRange(4))
}
