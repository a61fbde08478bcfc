package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIProviderRequiresAPIKey(t *testing.T) {
	_, err := NewOpenAIProvider(OpenAIConfig{})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNewOpenAIProviderDefaultsModel(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "sk-test"})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ModelID())
}

func TestMockProviderFIFO(t *testing.T) {
	boom := errors.New("boom")
	m := NewMockProvider(
		MockResponse{Content: "first"},
		MockResponse{Err: boom},
	)

	resp, err := m.Generate(context.Background(), Request{Prompt: "a"})
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Content)

	_, err = m.Generate(context.Background(), Request{Prompt: "b"})
	assert.ErrorIs(t, err, boom)

	// Exhausted queue behaves like an unavailable service.
	_, err = m.Generate(context.Background(), Request{Prompt: "c"})
	var unavailable *ErrServiceUnavailable
	assert.ErrorAs(t, err, &unavailable)

	assert.Equal(t, 3, m.CallCount())
	assert.Equal(t, "a", m.Calls[0].Prompt)
}
