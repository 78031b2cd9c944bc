package cir

// NewAnd builds an And node from children, applying R-E: nested Ands are
// flattened into one, and a single remaining child collapses to itself
// rather than staying wrapped. Children must be non-empty; callers never
// invoke this with zero children because every syntactic source of an And
// (value-list expansion, R-D's De Morgan step) always has at least one.
func NewAnd(children ...Node) Node {
	flat := flattenAnd(children)
	if len(flat) == 1 {
		return flat[0]
	}
	return And{Children: flat}
}

// NewOr is NewAnd's counterpart for Or.
func NewOr(children ...Node) Node {
	flat := flattenOr(children)
	if len(flat) == 1 {
		return flat[0]
	}
	return Or{Children: flat}
}

func flattenAnd(children []Node) []Node {
	var out []Node
	for _, c := range children {
		if inner, ok := c.(And); ok {
			out = append(out, flattenAnd(inner.Children)...)
		} else {
			out = append(out, c)
		}
	}
	return out
}

func flattenOr(children []Node) []Node {
	var out []Node
	for _, c := range children {
		if inner, ok := c.(Or); ok {
			out = append(out, flattenOr(inner.Children)...)
		} else {
			out = append(out, c)
		}
	}
	return out
}
