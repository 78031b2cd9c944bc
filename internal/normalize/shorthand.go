package normalize

import (
	"github.com/roach88/brutalist-filter/internal/ast"
	"github.com/roach88/brutalist-filter/internal/cir"
	"github.com/roach88/brutalist-filter/internal/filterr"
)

// compShorthandToCompOp maps a colon-shorthand comparison operator to its
// canonical counterpart, per R-A.
func compShorthandToCompOp(op ast.CompOp) ast.CompOp {
	return op // ast.CompOp already shares the gt/gte/lt/lte values used canonically.
}

// normalizeShorthand applies R-A (and, for a ValueList RHS, R-B) to a
// `path : rhs` surface node.
func normalizeShorthand(t ast.ShorthandNode) (cir.Node, error) {
	switch rhs := t.RHS.(type) {
	case ast.LiteralNode:
		switch lit := rhs.Lit.(type) {
		case ast.LitStr:
			return liftText(t.Path, cir.TextContains, string(lit)), nil
		case ast.LitNum:
			return liftComparison(t.Path, ast.CompEq, lit), nil
		default:
			return nil, filterr.NewUnsupportedNode("Shorthand", "boolean/null shorthand value is not supported")
		}

	case ast.CompShorthandNode:
		return liftComparison(t.Path, compShorthandToCompOp(rhs.Op), rhs.Lit), nil

	case ast.ValueListNode:
		return normalizeValueList(t.Path, rhs)

	default:
		return nil, filterr.NewUnsupportedNode("Shorthand", "unrecognized shorthand RHS")
	}
}

// normalizeValueList applies R-B to a value list appearing as a colon
// shorthand's RHS.
func normalizeValueList(path ast.Path, vl ast.ValueListNode) (cir.Node, error) {
	if len(vl.Items) == 0 {
		return nil, filterr.NewNormalizeGeneric("value list must be non-empty")
	}

	kind := "" // "str" or "comp"
	for _, item := range vl.Items {
		switch it := item.(type) {
		case ast.LiteralNode:
			if _, ok := it.Lit.(ast.LitStr); !ok {
				return nil, filterr.NewUnsupportedNode("ValueList", "value list literal items must be strings")
			}
			if kind == "" {
				kind = "str"
			} else if kind != "str" {
				return nil, filterr.NewUnsupportedNode("ValueList", "mixed types")
			}
		case ast.CompShorthandNode:
			if kind == "" {
				kind = "comp"
			} else if kind != "comp" {
				return nil, filterr.NewUnsupportedNode("ValueList", "mixed types")
			}
		default:
			return nil, filterr.NewUnsupportedNode("ValueList", "unrecognized value list item")
		}
	}

	children := make([]cir.Node, len(vl.Items))
	if kind == "str" {
		for i, item := range vl.Items {
			s := string(item.(ast.LiteralNode).Lit.(ast.LitStr))
			children[i] = liftText(path, cir.TextContains, s)
		}
		if vl.ExplicitOp != nil && *vl.ExplicitOp == ast.LogicalAnd {
			return cir.NewAnd(children...), nil
		}
		return cir.NewOr(children...), nil
	}

	// kind == "comp"
	for i, item := range vl.Items {
		cs := item.(ast.CompShorthandNode)
		children[i] = liftComparison(path, compShorthandToCompOp(cs.Op), cs.Lit)
	}
	if vl.ExplicitOp != nil && *vl.ExplicitOp == ast.LogicalOr {
		return cir.NewOr(children...), nil
	}
	return cir.NewAnd(children...), nil
}
