package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/brutalist-filter/internal/ast"
	"github.com/roach88/brutalist-filter/internal/cir"
	"github.com/roach88/brutalist-filter/internal/filterr"
)

func TestNormalize_ComparisonSingleSegment(t *testing.T) {
	n, err := Normalize(ast.ComparisonNode{Op: ast.CompGt, Path: ast.Path{"price"}, Lit: ast.LitNum(10)}, Options{})
	require.NoError(t, err)
	cmp, ok := n.(cir.Comparison)
	require.True(t, ok)
	assert.Equal(t, "price", cmp.Field)
	assert.Equal(t, ast.CompGt, cmp.Op)
}

func TestNormalize_ComparisonMultiSegmentLiftsToQuantifiedAny(t *testing.T) {
	n, err := Normalize(ast.ComparisonNode{Op: ast.CompEq, Path: ast.Path{"items", "price"}, Lit: ast.LitNum(10)}, Options{})
	require.NoError(t, err)
	q, ok := n.(cir.Quantified)
	require.True(t, ok)
	assert.Equal(t, cir.QuantifierAny, q.Quantifier)
	assert.Equal(t, "items", q.Field)
	inner, ok := q.Pred.(cir.Comparison)
	require.True(t, ok)
	assert.Equal(t, "price", inner.Field)
}

func TestNormalize_BarePathIsNotNullComparison(t *testing.T) {
	n, err := Normalize(ast.PathNode{Segments: ast.Path{"active"}}, Options{})
	require.NoError(t, err)
	cmp, ok := n.(cir.Comparison)
	require.True(t, ok)
	assert.Equal(t, ast.CompNeq, cmp.Op)
	_, isNull := cmp.Lit.(ast.LitNull)
	assert.True(t, isNull)
}

func TestNormalize_BareLiteralInBooleanPositionIsError(t *testing.T) {
	_, err := Normalize(ast.LiteralNode{Lit: ast.LitBool(true)}, Options{})
	require.Error(t, err)
	assert.True(t, filterr.IsCode(err, filterr.CodeNormalizeGeneric))
}

func TestNormalize_NotComparisonInverts(t *testing.T) {
	n, err := Normalize(ast.UnaryNode{Arg: ast.ComparisonNode{Op: ast.CompGt, Path: ast.Path{"price"}, Lit: ast.LitNum(10)}}, Options{})
	require.NoError(t, err)
	cmp, ok := n.(cir.Comparison)
	require.True(t, ok)
	assert.Equal(t, ast.CompLte, cmp.Op)
}

func TestNormalize_NotAndAppliesDeMorgan(t *testing.T) {
	n, err := Normalize(ast.UnaryNode{Arg: ast.LogicalNode{
		Op:    ast.LogicalAnd,
		Left:  ast.ComparisonNode{Op: ast.CompGt, Path: ast.Path{"a"}, Lit: ast.LitNum(1)},
		Right: ast.ComparisonNode{Op: ast.CompGt, Path: ast.Path{"b"}, Lit: ast.LitNum(2)},
	}}, Options{})
	require.NoError(t, err)
	or, ok := n.(cir.Or)
	require.True(t, ok)
	assert.Len(t, or.Children, 2)
}

func TestNormalize_GroupIsTransparent(t *testing.T) {
	withGroup, err := Normalize(ast.GroupNode{Expr: ast.ComparisonNode{Op: ast.CompGt, Path: ast.Path{"a"}, Lit: ast.LitNum(1)}}, Options{})
	require.NoError(t, err)
	withoutGroup, err := Normalize(ast.ComparisonNode{Op: ast.CompGt, Path: ast.Path{"a"}, Lit: ast.LitNum(1)}, Options{})
	require.NoError(t, err)
	assert.True(t, cir.Equal(withGroup, withoutGroup))
}

func TestNormalize_AndOrBuildsLogicalTree(t *testing.T) {
	n, err := Normalize(ast.LogicalNode{
		Op:    ast.LogicalOr,
		Left:  ast.ComparisonNode{Op: ast.CompEq, Path: ast.Path{"a"}, Lit: ast.LitNum(1)},
		Right: ast.ComparisonNode{Op: ast.CompEq, Path: ast.Path{"b"}, Lit: ast.LitNum(2)},
	}, Options{})
	require.NoError(t, err)
	_, ok := n.(cir.Or)
	assert.True(t, ok)
}

func TestNormalize_ShorthandStringLiteralBecomesTextContains(t *testing.T) {
	n, err := Normalize(ast.ShorthandNode{Path: ast.Path{"status"}, RHS: ast.LiteralNode{Lit: ast.LitStr("active")}}, Options{})
	require.NoError(t, err)
	txt, ok := n.(cir.Text)
	require.True(t, ok)
	assert.Equal(t, cir.TextContains, txt.Op)
	assert.Equal(t, "active", txt.Needle)
}

func TestNormalize_ShorthandNumberLiteralBecomesEqComparison(t *testing.T) {
	n, err := Normalize(ast.ShorthandNode{Path: ast.Path{"age"}, RHS: ast.LiteralNode{Lit: ast.LitNum(21)}}, Options{})
	require.NoError(t, err)
	cmp, ok := n.(cir.Comparison)
	require.True(t, ok)
	assert.Equal(t, ast.CompEq, cmp.Op)
}

func TestNormalize_ShorthandBoolLiteralIsUnsupported(t *testing.T) {
	_, err := Normalize(ast.ShorthandNode{Path: ast.Path{"flag"}, RHS: ast.LiteralNode{Lit: ast.LitBool(true)}}, Options{})
	require.Error(t, err)
	assert.True(t, filterr.IsCode(err, filterr.CodeNormalizeUnsupportedNode))
}

func TestNormalize_ShorthandCompShorthandLiftsComparison(t *testing.T) {
	n, err := Normalize(ast.ShorthandNode{Path: ast.Path{"age"}, RHS: ast.CompShorthandNode{Op: ast.CompGte, Lit: ast.LitNum(21)}}, Options{})
	require.NoError(t, err)
	cmp, ok := n.(cir.Comparison)
	require.True(t, ok)
	assert.Equal(t, ast.CompGte, cmp.Op)
}

func TestNormalize_ValueListStringDefaultsToOr(t *testing.T) {
	vl := ast.ValueListNode{Items: []ast.Node{
		ast.LiteralNode{Lit: ast.LitStr("a")},
		ast.LiteralNode{Lit: ast.LitStr("b")},
	}}
	n, err := Normalize(ast.ShorthandNode{Path: ast.Path{"tag"}, RHS: vl}, Options{})
	require.NoError(t, err)
	_, ok := n.(cir.Or)
	assert.True(t, ok)
}

func TestNormalize_ValueListStringExplicitAndOverridesDefault(t *testing.T) {
	and := ast.LogicalAnd
	vl := ast.ValueListNode{Items: []ast.Node{
		ast.LiteralNode{Lit: ast.LitStr("a")},
		ast.LiteralNode{Lit: ast.LitStr("b")},
	}, ExplicitOp: &and}
	n, err := Normalize(ast.ShorthandNode{Path: ast.Path{"tag"}, RHS: vl}, Options{})
	require.NoError(t, err)
	_, ok := n.(cir.And)
	assert.True(t, ok)
}

func TestNormalize_ValueListCompDefaultsToAnd(t *testing.T) {
	vl := ast.ValueListNode{Items: []ast.Node{
		ast.CompShorthandNode{Op: ast.CompGt, Lit: ast.LitNum(5)},
		ast.CompShorthandNode{Op: ast.CompLte, Lit: ast.LitNum(13)},
	}}
	n, err := Normalize(ast.ShorthandNode{Path: ast.Path{"age"}, RHS: vl}, Options{})
	require.NoError(t, err)
	_, ok := n.(cir.And)
	assert.True(t, ok)
}

func TestNormalize_ValueListCompExplicitOrOverridesDefault(t *testing.T) {
	or := ast.LogicalOr
	vl := ast.ValueListNode{Items: []ast.Node{
		ast.CompShorthandNode{Op: ast.CompLt, Lit: ast.LitNum(5)},
		ast.CompShorthandNode{Op: ast.CompGt, Lit: ast.LitNum(13)},
	}, ExplicitOp: &or}
	n, err := Normalize(ast.ShorthandNode{Path: ast.Path{"age"}, RHS: vl}, Options{})
	require.NoError(t, err)
	_, ok := n.(cir.Or)
	assert.True(t, ok)
}

func TestNormalize_ValueListMixedLiteralAndCompIsError(t *testing.T) {
	vl := ast.ValueListNode{Items: []ast.Node{
		ast.LiteralNode{Lit: ast.LitStr("a")},
		ast.CompShorthandNode{Op: ast.CompGt, Lit: ast.LitNum(5)},
	}}
	_, err := Normalize(ast.ShorthandNode{Path: ast.Path{"x"}, RHS: vl}, Options{})
	require.Error(t, err)
}

func TestNormalize_TextCallTwoArgs(t *testing.T) {
	n, err := Normalize(ast.CallNode{
		Name: ast.CallStartsWith,
		Args: []ast.Node{ast.PathNode{Segments: ast.Path{"name"}}, ast.LiteralNode{Lit: ast.LitStr("Jo")}},
	}, Options{})
	require.NoError(t, err)
	txt, ok := n.(cir.Text)
	require.True(t, ok)
	assert.Equal(t, cir.TextStartsWith, txt.Op)
	assert.Equal(t, "name", txt.Field)
}

func TestNormalize_TextCallSingleArgExpandsAcrossTargets(t *testing.T) {
	n, err := Normalize(ast.CallNode{
		Name: ast.CallContains,
		Args: []ast.Node{ast.LiteralNode{Lit: ast.LitStr("x")}},
	}, Options{TextSearchTargets: []ast.Path{{"name"}, {"description"}}})
	require.NoError(t, err)
	or, ok := n.(cir.Or)
	require.True(t, ok)
	assert.Len(t, or.Children, 2)
}

func TestNormalize_TextCallSingleArgWithoutTargetsIsError(t *testing.T) {
	_, err := Normalize(ast.CallNode{
		Name: ast.CallContains,
		Args: []ast.Node{ast.LiteralNode{Lit: ast.LitStr("x")}},
	}, Options{})
	require.Error(t, err)
	assert.True(t, filterr.IsCode(err, filterr.CodeNormalizeGeneric))
}

func TestNormalize_QuantifierCallBuildsQuantified(t *testing.T) {
	n, err := Normalize(ast.CallNode{
		Name: ast.CallAny,
		Args: []ast.Node{
			ast.PathNode{Segments: ast.Path{"tags"}},
			ast.CallNode{Name: ast.CallContains, Args: []ast.Node{ast.PathNode{Segments: ast.Path{"value"}}, ast.LiteralNode{Lit: ast.LitStr("x")}}},
		},
	}, Options{})
	require.NoError(t, err)
	q, ok := n.(cir.Quantified)
	require.True(t, ok)
	assert.Equal(t, cir.QuantifierAny, q.Quantifier)
	assert.Equal(t, "tags", q.Field)
}

func TestNormalize_QuantifierCallMultiSegmentPathLiftsOuterLayers(t *testing.T) {
	n, err := Normalize(ast.CallNode{
		Name: ast.CallAll,
		Args: []ast.Node{
			ast.PathNode{Segments: ast.Path{"a", "b"}},
			ast.ComparisonNode{Op: ast.CompGt, Path: ast.Path{"value"}, Lit: ast.LitNum(1)},
		},
	}, Options{})
	require.NoError(t, err)
	outer, ok := n.(cir.Quantified)
	require.True(t, ok)
	assert.Equal(t, cir.QuantifierAny, outer.Quantifier)
	assert.Equal(t, "a", outer.Field)
	inner, ok := outer.Pred.(cir.Quantified)
	require.True(t, ok)
	assert.Equal(t, cir.QuantifierAll, inner.Quantifier)
	assert.Equal(t, "b", inner.Field)
}
