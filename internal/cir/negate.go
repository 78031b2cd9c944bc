package cir

import "github.com/roach88/brutalist-filter/internal/ast"

// Negate builds the canonical negation of an already-normalized child,
// applying R-D's push-down rules greedily: double negation cancels, De
// Morgan distributes over And/Or, comparison negation inverts the operator
// instead of wrapping in Not, and quantifier negation swaps any/none or
// pushes through all. Because inversion and quantifier-swap never produce
// an intermediate Not node, there is nothing left for De Morgan to
// re-visit — the ordering constraint in §9 DESIGN NOTES (invert before
// distributing on the same node) falls out of the recursion structure
// rather than needing an explicit pass ordering.
//
// Text nodes are the one canonical shape with no negated counterpart
// (§3.3: "no negated text operator is introduced"); Negate preserves Not
// around them, and around any node shape it does not otherwise recognize,
// as a conservative fallback.
func Negate(child Node) Node {
	switch c := child.(type) {
	case Not:
		return c.Child
	case And:
		negated := make([]Node, len(c.Children))
		for i, ch := range c.Children {
			negated[i] = Negate(ch)
		}
		return NewOr(negated...)
	case Or:
		negated := make([]Node, len(c.Children))
		for i, ch := range c.Children {
			negated[i] = Negate(ch)
		}
		return NewAnd(negated...)
	case Comparison:
		return Comparison{Field: c.Field, Op: InvertCompOp(c.Op), Lit: c.Lit}
	case Quantified:
		switch c.Quantifier {
		case QuantifierAny:
			return Quantified{Quantifier: QuantifierNone, Field: c.Field, Pred: c.Pred}
		case QuantifierNone:
			return Quantified{Quantifier: QuantifierAny, Field: c.Field, Pred: c.Pred}
		case QuantifierAll:
			return Quantified{Quantifier: QuantifierAny, Field: c.Field, Pred: Negate(c.Pred)}
		}
		return Not{Child: child}
	default:
		return Not{Child: child}
	}
}

// InvertCompOp applies the involution from §4.2 R-D: eq↔neq, gt↔lte,
// gte↔lt. Applying it twice is the identity.
func InvertCompOp(op ast.CompOp) ast.CompOp {
	switch op {
	case ast.CompEq:
		return ast.CompNeq
	case ast.CompNeq:
		return ast.CompEq
	case ast.CompGt:
		return ast.CompLte
	case ast.CompLte:
		return ast.CompGt
	case ast.CompGte:
		return ast.CompLt
	case ast.CompLt:
		return ast.CompGte
	default:
		return op
	}
}
