package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/charsgen/core"
)

func TestJSONEmitterRoundTrip(t *testing.T) {
	groups := sampleGroups()

	data, err := NewJSONEmitter().Emit(groups)
	require.NoError(t, err)

	var decoded []core.EntityGroup
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, groups, decoded)
}

func TestJSONEmitterFieldNames(t *testing.T) {
	data, err := NewJSONEmitter().Emit([]core.EntityGroup{nbspGroup()})
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)

	keys := make([]string, 0, len(decoded[0]))
	for k := range decoded[0] {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"title", "codepoint", "block", "category", "sets", "entities"}, keys)

	// Declared field order is kept in the document.
	text := string(data)
	order := []string{`"title"`, `"codepoint"`, `"block"`, `"category"`, `"sets"`, `"entities"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(text, key)
		require.Greater(t, idx, last, key)
		last = idx
	}
}

func TestJSONEmitterKeepsEntitiesReadable(t *testing.T) {
	data, err := NewJSONEmitter().Emit([]core.EntityGroup{nbspGroup()})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"&nbsp;"`)
	assert.NotContains(t, string(data), `\u0026`)
	assert.True(t, strings.HasSuffix(string(data), "]\n"))
}

func TestJSONEmitterEmpty(t *testing.T) {
	data, err := NewJSONEmitter().Emit(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestJSONEmitterDoesNotReorder(t *testing.T) {
	groups := sampleGroups()
	groups[0], groups[3] = groups[3], groups[0]

	data, err := NewJSONEmitter().Emit(groups)
	require.NoError(t, err)

	var decoded []core.EntityGroup
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, len(groups))
	for i := range groups {
		assert.Equal(t, groups[i].Codepoint, decoded[i].Codepoint)
	}
}
