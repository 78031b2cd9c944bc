package normalize

import (
	"github.com/roach88/brutalist-filter/internal/ast"
	"github.com/roach88/brutalist-filter/internal/cir"
	"github.com/roach88/brutalist-filter/internal/filterr"
)

// normalizeCall applies the function-call normalization combining R-A/R-B
// semantics for contains/startsWith/endsWith/any/all/none.
func normalizeCall(t ast.CallNode, opts Options) (cir.Node, error) {
	switch t.Name {
	case ast.CallContains, ast.CallStartsWith, ast.CallEndsWith:
		return normalizeTextCall(t, opts)
	case ast.CallAny, ast.CallAll, ast.CallNone:
		return normalizeQuantifierCall(t, opts)
	default:
		return nil, filterr.NewUnsupportedNode("Call", "unrecognized function "+string(t.Name))
	}
}

func textOpFor(name ast.CallName) cir.TextOp {
	switch name {
	case ast.CallStartsWith:
		return cir.TextStartsWith
	case ast.CallEndsWith:
		return cir.TextEndsWith
	default:
		return cir.TextContains
	}
}

func normalizeTextCall(t ast.CallNode, opts Options) (cir.Node, error) {
	op := textOpFor(t.Name)

	switch len(t.Args) {
	case 2:
		pathArg, ok := t.Args[0].(ast.PathNode)
		if !ok {
			return nil, filterr.NewUnsupportedNode(nodeKindName(t.Args[0]), "text functions require a path as the first argument")
		}
		needle, ok := stringLiteralArg(t.Args[1])
		if !ok {
			return nil, filterr.NewNormalizeGeneric("text functions require a string literal as the second argument")
		}
		return liftText(pathArg.Segments, op, needle), nil

	case 1:
		needle, ok := stringLiteralArg(t.Args[0])
		if !ok {
			return nil, filterr.NewNormalizeGeneric("text functions require a string literal as the argument")
		}
		if len(opts.TextSearchTargets) == 0 {
			return nil, filterr.NewNormalizeGeneric("full-text search targets not configured")
		}
		leaves := make([]cir.Node, len(opts.TextSearchTargets))
		for i, target := range opts.TextSearchTargets {
			leaves[i] = liftText(target, op, needle)
		}
		return cir.NewOr(leaves...), nil

	default:
		return nil, filterr.NewNormalizeGeneric("text functions take 1 or 2 arguments")
	}
}

func stringLiteralArg(n ast.Node) (string, bool) {
	lit, ok := n.(ast.LiteralNode)
	if !ok {
		return "", false
	}
	s, ok := lit.Lit.(ast.LitStr)
	if !ok {
		return "", false
	}
	return string(s), true
}

func quantifierFor(name ast.CallName) cir.Quantifier {
	switch name {
	case ast.CallAll:
		return cir.QuantifierAll
	case ast.CallNone:
		return cir.QuantifierNone
	default:
		return cir.QuantifierAny
	}
}

func normalizeQuantifierCall(t ast.CallNode, opts Options) (cir.Node, error) {
	if len(t.Args) != 2 {
		return nil, filterr.NewNormalizeGeneric(string(t.Name) + " takes exactly 2 arguments")
	}

	pathArg, ok := t.Args[0].(ast.PathNode)
	if !ok {
		return nil, filterr.NewUnsupportedNode(nodeKindName(t.Args[0]), "first argument to "+string(t.Name)+" must be a path")
	}

	pred, err := normalizeBool(t.Args[1], opts)
	if err != nil {
		return nil, err
	}

	return liftQuantified(pathArg.Segments, quantifierFor(t.Name), pred), nil
}
