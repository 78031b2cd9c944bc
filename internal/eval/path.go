package eval

import "github.com/roach88/brutalist-filter/internal/record"

// lookup resolves a dotted path against the current record context,
// per §4.3's path resolution rule: traverse fields in order, short-
// circuiting to Absent the moment the current value is null or absent.
//
// inQuantifier reports whether this lookup is happening inside a
// Quantified predicate, where ctx is the sequence element currently
// being tested. Only there does the leading segment "value" denote the
// context record itself rather than a field of it; outside a quantifier
// "value" is an ordinary field name (spec.md:177,337).
func lookup(ctx record.Value, path []string, inQuantifier bool) record.Value {
	if len(path) == 0 {
		return ctx
	}

	cur := ctx
	rest := path
	if inQuantifier && path[0] == "value" {
		rest = path[1:]
	} else {
		cur = step(ctx, path[0])
		rest = path[1:]
	}

	for _, seg := range rest {
		cur = step(cur, seg)
	}
	return cur
}

// step looks up a single field, returning Absent for any non-mapping
// receiver (covers null, absent, scalar, and sequence uniformly).
func step(v record.Value, seg string) record.Value {
	if v == nil || v.Kind() != record.KindMapping {
		return record.Absent
	}
	return v.Field(seg)
}
