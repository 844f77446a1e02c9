package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ChatMessages(t *testing.T) {
	ClearCache()

	tests := []struct {
		key      string
		contains string
	}{
		{KeyMissingAPIKey, "GEMINI_API_KEY=your_actual_api_key_here"},
		{KeyEmptyResponse, "couldn't generate a response"},
		{KeyTechnicalDifficulties, "Error: {{.Error}}."},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			msg, err := Get(ChatFile, tt.key)
			require.NoError(t, err)
			assert.Contains(t, msg, tt.contains)
		})
	}
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read message file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get(ChatFile, "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestMustGet_ValidMessage(t *testing.T) {
	ClearCache()

	assert.NotPanics(t, func() {
		assert.NotEmpty(t, MustGet(ChatFile, KeyEmptyResponse))
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		want     string
	}{
		{"substitutes", "Error: {{.Error}}.", map[string]string{"Error": "quota exceeded"}, "Error: quota exceeded."},
		{"no placeholders", "No placeholders here", map[string]string{"Key": "Value"}, "No placeholders here"},
		{"missing data keeps placeholder", "Hello {{.Name}}", map[string]string{}, "Hello {{.Name}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.template, tt.data))
		})
	}
}

func TestList(t *testing.T) {
	ClearCache()

	keys, err := List(ChatFile)
	require.NoError(t, err)
	assert.Equal(t, []string{KeyEmptyResponse, KeyMissingAPIKey, KeyTechnicalDifficulties}, keys)
}

func TestCaching(t *testing.T) {
	ClearCache()

	first, err := Get(ChatFile, KeyEmptyResponse)
	require.NoError(t, err)

	second, err := Get(ChatFile, KeyEmptyResponse)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
