package cli

import (
	"github.com/roach88/brutalist-filter/internal/ast"
	"github.com/roach88/brutalist-filter/internal/cir"
)

// dumpLiteral renders an ast.Literal as a plain Go value suitable for
// both JSON encoding and text-mode %v formatting.
func dumpLiteral(lit ast.Literal) any {
	switch l := lit.(type) {
	case ast.LitStr:
		return string(l)
	case ast.LitNum:
		return float64(l)
	case ast.LitBool:
		return bool(l)
	case ast.LitNull:
		return nil
	default:
		return nil
	}
}

// dumpSurface renders a surface tree as nested maps, for --format=json
// output and for the trace command's "surface" field.
func dumpSurface(n ast.Node) any {
	switch t := n.(type) {
	case ast.PathNode:
		return map[string]any{"node": "path", "path": []string(t.Segments)}
	case ast.LiteralNode:
		return map[string]any{"node": "literal", "value": dumpLiteral(t.Lit)}
	case ast.LogicalNode:
		return map[string]any{"node": "logical", "op": t.Op.String(), "left": dumpSurface(t.Left), "right": dumpSurface(t.Right)}
	case ast.UnaryNode:
		return map[string]any{"node": "not", "arg": dumpSurface(t.Arg)}
	case ast.ComparisonNode:
		return map[string]any{"node": "comparison", "path": []string(t.Path), "op": t.Op.String(), "value": dumpLiteral(t.Lit)}
	case ast.ShorthandNode:
		return map[string]any{"node": "shorthand", "path": []string(t.Path), "rhs": dumpSurface(t.RHS)}
	case ast.CompShorthandNode:
		return map[string]any{"node": "compShorthand", "op": t.Op.String(), "value": dumpLiteral(t.Lit)}
	case ast.ValueListNode:
		items := make([]any, len(t.Items))
		for i, item := range t.Items {
			items[i] = dumpSurface(item)
		}
		return map[string]any{"node": "valueList", "items": items}
	case ast.CallNode:
		args := make([]any, len(t.Args))
		for i, a := range t.Args {
			args[i] = dumpSurface(a)
		}
		return map[string]any{"node": "call", "name": string(t.Name), "args": args}
	case ast.GroupNode:
		return map[string]any{"node": "group", "expr": dumpSurface(t.Expr)}
	default:
		return map[string]any{"node": "?"}
	}
}

// dumpCanonical renders a canonical tree as nested maps.
func dumpCanonical(n cir.Node) any {
	switch t := n.(type) {
	case cir.And:
		children := make([]any, len(t.Children))
		for i, c := range t.Children {
			children[i] = dumpCanonical(c)
		}
		return map[string]any{"node": "and", "children": children}
	case cir.Or:
		children := make([]any, len(t.Children))
		for i, c := range t.Children {
			children[i] = dumpCanonical(c)
		}
		return map[string]any{"node": "or", "children": children}
	case cir.Not:
		return map[string]any{"node": "not", "child": dumpCanonical(t.Child)}
	case cir.Comparison:
		return map[string]any{"node": "comparison", "field": t.Field, "op": t.Op.String(), "value": dumpLiteral(t.Lit)}
	case cir.Text:
		return map[string]any{"node": "text", "field": t.Field, "op": t.Op.String(), "needle": t.Needle}
	case cir.Quantified:
		return map[string]any{"node": "quantified", "quantifier": t.Quantifier.String(), "field": t.Field, "pred": dumpCanonical(t.Pred)}
	default:
		return map[string]any{"node": "?"}
	}
}
