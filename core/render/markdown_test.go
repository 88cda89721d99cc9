package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/charsgen/core"
)

func TestMarkdownEmitterSections(t *testing.T) {
	data, err := NewMarkdownEmitter().Emit(sampleGroups())
	require.NoError(t, err)
	md := string(data)

	assert.True(t, strings.HasPrefix(md, "# "+sheetTitle))
	assert.Contains(t, md, "## Latin-1 Supplement")
	assert.Contains(t, md, "## Basic Latin")
	assert.Contains(t, md, "## Mathematical Alphanumeric Symbols")

	// Blocks appear in first-seen order.
	latin1 := strings.Index(md, "## Latin-1 Supplement")
	basic := strings.Index(md, "## Basic Latin")
	math := strings.Index(md, "## Mathematical Alphanumeric Symbols")
	assert.Less(t, latin1, basic)
	assert.Less(t, basic, math)

	assert.Contains(t, md, "U+000A0")
	assert.Contains(t, md, "NO-BREAK SPACE")
	assert.Contains(t, md, "nbsp")
	assert.Contains(t, md, "NonBreakingSpace")
	assert.True(t, strings.HasSuffix(md, "\n"))
}

func TestMarkdownEmitterUnassignedBlock(t *testing.T) {
	data, err := NewMarkdownEmitter().Emit([]core.EntityGroup{{Codepoint: "00041", Entities: []string{"&A;"}}})
	require.NoError(t, err)
	assert.Contains(t, string(data), "## Unassigned block")
}

func TestGroupByBlock(t *testing.T) {
	sections := groupByBlock(sampleGroups())
	require.Len(t, sections, 3)
	assert.Equal(t, "Latin-1 Supplement", sections[0].name)
	assert.Len(t, sections[0].groups, 3)
	assert.Equal(t, "Basic Latin", sections[1].name)
	assert.Equal(t, "Mathematical Alphanumeric Symbols", sections[2].name)
}
