package eval

import (
	"github.com/roach88/brutalist-filter/internal/cir"
	"github.com/roach88/brutalist-filter/internal/record"
)

// elements returns the sequence evalQuantified iterates over, per §4.3
// step 1: a sequence iterates as itself, a single non-null/absent value
// iterates as a one-element sequence, and null/absent iterates as empty.
func elements(v record.Value) []record.Value {
	switch {
	case isNullish(v):
		return nil
	case v.Kind() == record.KindSequence:
		out := make([]record.Value, v.Len())
		for i := range out {
			out[i] = v.Index(i)
		}
		return out
	default:
		return []record.Value{v}
	}
}

func evalQuantified(ctx record.Value, q cir.Quantifier, field string, pred cir.Node, opts Options, inQuantifier bool) (bool, error) {
	v := lookup(ctx, []string{field}, inQuantifier)
	elems := elements(v)

	switch q {
	case cir.QuantifierAll:
		if len(elems) == 0 {
			return false, nil
		}
		for _, e := range elems {
			ok, err := evalNode(e, pred, opts, true)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil

	case cir.QuantifierNone:
		any, err := evalAny(elems, pred, opts)
		if err != nil {
			return false, err
		}
		return !any, nil

	default: // QuantifierAny
		return evalAny(elems, pred, opts)
	}
}

// evalAny tests pred against elems, each evaluated with "value" reserved
// per §4.3 — every caller of evalAny is already inside a Quantified
// predicate (QuantifierAny directly, or QuantifierNone via its negation).
func evalAny(elems []record.Value, pred cir.Node, opts Options) (bool, error) {
	for _, e := range elems {
		ok, err := evalNode(e, pred, opts, true)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
