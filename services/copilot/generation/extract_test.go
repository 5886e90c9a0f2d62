// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// Tests for JSON extraction from LLM output

package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_PlainObject(t *testing.T) {
	got, err := ExtractJSON(`{"solutions": []}`)
	require.NoError(t, err)
	assert.Equal(t, `{"solutions": []}`, got)
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	text := "Sure! Here are the solutions:\n\n{\"a\": 1}\n\nLet me know if you need more."
	got, err := ExtractJSON(text)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, got)
}

func TestExtractJSON_NestedObjects(t *testing.T) {
	text := `prefix {"outer": {"inner": {"deep": 2}}} suffix {"second": true}`
	got, err := ExtractJSON(text)
	require.NoError(t, err)
	assert.Equal(t, `{"outer": {"inner": {"deep": 2}}}`, got)
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	text := `{"note": "use {id} as a placeholder", "n": 1}`
	got, err := ExtractJSON(text)
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestExtractJSON_EscapedQuotes(t *testing.T) {
	text := `{"quote": "he said \"{\" and left", "ok": true}`
	got, err := ExtractJSON(text)
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON("no json here at all")
	assert.Error(t, err)
}

func TestExtractJSON_Unterminated(t *testing.T) {
	_, err := ExtractJSON(`{"solutions": [{"id": 1}`)
	assert.Error(t, err)
}

func TestExtractJSON_MarkdownFence(t *testing.T) {
	text := "```json\n{\"solutions\": [1, 2]}\n```"
	got, err := ExtractJSON(text)
	require.NoError(t, err)
	assert.Equal(t, `{"solutions": [1, 2]}`, got)
}
