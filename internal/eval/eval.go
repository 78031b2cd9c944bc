package eval

import (
	"github.com/roach88/brutalist-filter/internal/cir"
	"github.com/roach88/brutalist-filter/internal/record"
)

// Predicate is the closure produced by BuildPredicate: it never mutates
// the record it is given and is safe to call concurrently from multiple
// goroutines, since it only reads its captured canonical tree and the
// per-call record (§5).
type Predicate func(r record.Value) (bool, error)

// BuildPredicate compiles a canonical tree into a Predicate closed over
// opts. Building never fails — §6.1 marks its error channel "-" — only
// evaluating a built predicate can raise an EvaluationError.
func BuildPredicate(tree cir.Node, opts Options) Predicate {
	return func(r record.Value) (bool, error) {
		return evalNode(r, tree, opts, false)
	}
}

// Evaluate is sugar over BuildPredicate for a single one-off call.
func Evaluate(tree cir.Node, r record.Value, opts Options) (bool, error) {
	return evalNode(r, tree, opts, false)
}

// evalNode dispatches over the canonical tree. inQuantifier reports
// whether ctx is the sequence element of an enclosing Quantified
// predicate, which is the only place a leading "value" path segment is
// reserved (spec.md:177,337) — it threads unchanged through the boolean
// connectives and flips to true only for a Quantified node's predicate.
func evalNode(ctx record.Value, n cir.Node, opts Options, inQuantifier bool) (bool, error) {
	switch t := n.(type) {
	case cir.And:
		for _, c := range t.Children {
			ok, err := evalNode(ctx, c, opts, inQuantifier)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil

	case cir.Or:
		for _, c := range t.Children {
			ok, err := evalNode(ctx, c, opts, inQuantifier)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil

	case cir.Not:
		ok, err := evalNode(ctx, t.Child, opts, inQuantifier)
		if err != nil {
			return false, err
		}
		return !ok, nil

	case cir.Comparison:
		return evalComparison(ctx, t.Field, t.Op, t.Lit, inQuantifier)

	case cir.Text:
		return evalText(ctx, t.Field, t.Op, t.Needle, opts, inQuantifier), nil

	case cir.Quantified:
		return evalQuantified(ctx, t.Quantifier, t.Field, t.Pred, opts, inQuantifier)

	default:
		return false, nil
	}
}
