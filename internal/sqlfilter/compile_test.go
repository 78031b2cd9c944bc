package sqlfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/brutalist-filter/internal/ast"
	"github.com/roach88/brutalist-filter/internal/cir"
	"github.com/roach88/brutalist-filter/internal/filterr"
)

func TestCompile_ComparisonParameterized(t *testing.T) {
	c := NewCompiler()
	sql, params, err := c.Compile(cir.Comparison{Field: "price", Op: ast.CompGt, Lit: ast.LitNum(10)})
	require.NoError(t, err)
	assert.Equal(t, `"price" > ?`, sql)
	assert.Equal(t, []any{10.0}, params)
}

func TestCompile_TextContainsEscapesLikeMetachars(t *testing.T) {
	c := NewCompiler()
	sql, params, err := c.Compile(cir.Text{Field: "name", Op: cir.TextContains, Needle: "100%_off"})
	require.NoError(t, err)
	assert.Equal(t, `"name" LIKE ? ESCAPE '\'`, sql)
	assert.Equal(t, []any{`%100\%\_off%`}, params)
}

func TestCompile_AndJoinsWithParams(t *testing.T) {
	c := NewCompiler()
	tree := cir.And{Children: []cir.Node{
		cir.Comparison{Field: "price", Op: ast.CompGte, Lit: ast.LitNum(5)},
		cir.Comparison{Field: "name", Op: ast.CompEq, Lit: ast.LitStr("widget")},
	}}
	sql, params, err := c.Compile(tree)
	require.NoError(t, err)
	assert.Equal(t, `("price" >= ?) AND ("name" = ?)`, sql)
	assert.Equal(t, []any{5.0, "widget"}, params)
}

func TestCompile_EqNullRendersIsNull(t *testing.T) {
	c := NewCompiler()
	sql, params, err := c.Compile(cir.Comparison{Field: "deletedAt", Op: ast.CompEq, Lit: ast.LitNull{}})
	require.NoError(t, err)
	assert.Equal(t, `"deletedAt" IS NULL`, sql)
	assert.Empty(t, params)
}

func TestCompile_QuantifiedUnsupported(t *testing.T) {
	c := NewCompiler()
	_, _, err := c.Compile(cir.Quantified{
		Quantifier: cir.QuantifierAny,
		Field:      "tags",
		Pred:       cir.Text{Field: "value", Op: cir.TextContains, Needle: "x"},
	})
	require.Error(t, err)
	assert.True(t, filterr.IsCode(err, filterr.CodeAdapterUnsupportedFeature))
}

func TestCompile_NotWrapsFragment(t *testing.T) {
	c := NewCompiler()
	sql, _, err := c.Compile(cir.Not{Child: cir.Comparison{Field: "price", Op: ast.CompEq, Lit: ast.LitNum(0)}})
	require.NoError(t, err)
	assert.Equal(t, `NOT ("price" = ?)`, sql)
}
