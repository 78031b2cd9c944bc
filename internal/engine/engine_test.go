package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/brutalist-filter/internal/record"
)

func TestCompile_EndToEndShorthandComparison(t *testing.T) {
	e := New()
	c, err := e.Compile(`price > 10 AND status: "active"`)
	require.NoError(t, err)

	ok, err := c.Predicate(record.Native(map[string]any{"price": 25.0, "status": "active"}))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Predicate(record.Native(map[string]any{"price": 5.0, "status": "active"}))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompile_SingleArgumentTextCallNeedsTargets(t *testing.T) {
	e := New()
	_, err := e.Compile(`contains("widget")`)
	require.Error(t, err)
}

func TestCompile_SingleArgumentTextCallExpandsAcrossTargets(t *testing.T) {
	e := New(WithTextSearchTargets(
		[]string{"name"},
		[]string{"description"},
	))
	c, err := e.Compile(`contains("widget")`)
	require.NoError(t, err)

	ok, err := c.Predicate(record.Native(map[string]any{"name": "blue widget", "description": ""}))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCompile_ParseErrorPropagates(t *testing.T) {
	e := New()
	_, err := e.Compile(`price >`)
	require.Error(t, err)
}
