// Package normalize implements C3: the surface tree to canonical tree
// transform, applying the rewrite rules in §4.2 bottom-up, then in the
// fixed global order R-A, R-B, R-C, R-D, R-E.
//
// Normalize is a pure, total function over its input surface tree: it
// never mutates the tree it is given, and two surface trees that denote
// the same boolean function (up to §4.2's rules) always normalize to
// structurally equal canonical trees (verifiable with cir.Equal).
package normalize

import (
	"github.com/roach88/brutalist-filter/internal/ast"
	"github.com/roach88/brutalist-filter/internal/cir"
	"github.com/roach88/brutalist-filter/internal/filterr"
)

// Options configures normalization. TextSearchTargets supplies the paths a
// single-argument text-function call expands across (§6.1's
// textSearchTargets); it is optional and, when absent, a single-argument
// call raises E_NORMALIZE_GENERIC.
type Options struct {
	TextSearchTargets []ast.Path
}

// Normalize transforms a surface tree into a canonical tree.
func Normalize(n ast.Node, opts Options) (cir.Node, error) {
	return normalizeBool(n, opts)
}

// normalizeBool normalizes n as it appears in boolean position: every
// recursive call in this package passes through here, since the grammar
// only allows a value-typed node (Literal, CompShorthand, ValueList) to
// appear inside a shorthand RHS or a value-list item, both handled by
// their own dedicated helpers rather than by recursing back into this
// function.
func normalizeBool(n ast.Node, opts Options) (cir.Node, error) {
	switch t := n.(type) {
	case ast.GroupNode:
		return normalizeBool(t.Expr, opts)

	case ast.LogicalNode:
		left, err := normalizeBool(t.Left, opts)
		if err != nil {
			return nil, err
		}
		right, err := normalizeBool(t.Right, opts)
		if err != nil {
			return nil, err
		}
		if t.Op == ast.LogicalOr {
			return cir.NewOr(left, right), nil
		}
		return cir.NewAnd(left, right), nil

	case ast.UnaryNode:
		child, err := normalizeBool(t.Arg, opts)
		if err != nil {
			return nil, err
		}
		return cir.Negate(child), nil

	case ast.PathNode:
		// R-F: a bare path in boolean position is truthiness, i.e. "not
		// null/absent".
		return liftComparison(t.Segments, ast.CompNeq, ast.LitNull{}), nil

	case ast.LiteralNode:
		// R-F: a bare literal in boolean position is undefined.
		return nil, filterr.NewNormalizeGeneric("literal truthiness not defined")

	case ast.ComparisonNode:
		return liftComparison(t.Path, t.Op, t.Lit), nil

	case ast.ShorthandNode:
		return normalizeShorthand(t)

	case ast.CallNode:
		return normalizeCall(t, opts)

	default:
		return nil, filterr.NewUnsupportedNode(nodeKindName(n), "node cannot appear in boolean position")
	}
}

// liftComparison applies R-C to a Comparison: for a path of length > 1,
// wraps the comparison (over the remaining segments) in a
// Quantified(any, ...) for each leading segment. This is the "common
// exit" every Comparison-producing rule funnels through, per §9's
// wrapArrayShorthandIfLeaf.
func liftComparison(path ast.Path, op ast.CompOp, lit ast.Literal) cir.Node {
	if len(path) == 1 {
		return cir.Comparison{Field: path[0], Op: op, Lit: lit}
	}
	return cir.Quantified{
		Quantifier: cir.QuantifierAny,
		Field:      path[0],
		Pred:       liftComparison(path[1:], op, lit),
	}
}

// liftText is liftComparison's counterpart for Text nodes.
func liftText(path ast.Path, op cir.TextOp, needle string) cir.Node {
	if len(path) == 1 {
		return cir.Text{Field: path[0], Op: op, Needle: needle}
	}
	return cir.Quantified{
		Quantifier: cir.QuantifierAny,
		Field:      path[0],
		Pred:       liftText(path[1:], op, needle),
	}
}

// liftQuantified wraps pred in nested Quantified(any, ...) layers for
// every leading segment of an explicit any/all/none call's path argument,
// applying the call's own quantifier only at the path's final segment.
func liftQuantified(path ast.Path, quant cir.Quantifier, pred cir.Node) cir.Node {
	if len(path) == 1 {
		return cir.Quantified{Quantifier: quant, Field: path[0], Pred: pred}
	}
	return cir.Quantified{
		Quantifier: cir.QuantifierAny,
		Field:      path[0],
		Pred:       liftQuantified(path[1:], quant, pred),
	}
}

func nodeKindName(n ast.Node) string {
	switch n.(type) {
	case ast.PathNode:
		return "Path"
	case ast.LiteralNode:
		return "Literal"
	case ast.LogicalNode:
		return "Logical"
	case ast.UnaryNode:
		return "Unary"
	case ast.ComparisonNode:
		return "Comparison"
	case ast.ShorthandNode:
		return "Shorthand"
	case ast.CompShorthandNode:
		return "CompShorthand"
	case ast.ValueListNode:
		return "ValueList"
	case ast.CallNode:
		return "Call"
	case ast.GroupNode:
		return "Group"
	default:
		return "?"
	}
}
