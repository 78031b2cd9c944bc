// Package cir defines the canonical tree (CIR, §3.3): the normalized,
// equivalence-closed representation consumed by the evaluator and by
// external translators. Canonical trees are built only by the normalizer
// and are immutable once constructed (§3.4) — nothing in this package
// mutates a Node in place.
package cir

import "github.com/roach88/brutalist-filter/internal/ast"

// Node is a sealed interface over the canonical tree's tagged node
// variants. Sealing it to this package lets every consumer (evaluator,
// translators, the hashing/validation helpers below) use an exhaustive
// type switch with no default case, per §9 DESIGN NOTES.
type Node interface {
	canonicalNode()
}

// TextOp is one of the three text-matching operators.
type TextOp int

const (
	TextContains TextOp = iota
	TextStartsWith
	TextEndsWith
)

func (op TextOp) String() string {
	switch op {
	case TextContains:
		return "contains"
	case TextStartsWith:
		return "startsWith"
	case TextEndsWith:
		return "endsWith"
	default:
		return "?"
	}
}

// Quantifier is one of any/all/none.
type Quantifier int

const (
	QuantifierAny Quantifier = iota
	QuantifierAll
	QuantifierNone
)

func (q Quantifier) String() string {
	switch q {
	case QuantifierAny:
		return "any"
	case QuantifierAll:
		return "all"
	case QuantifierNone:
		return "none"
	default:
		return "?"
	}
}

// And is an n-ary conjunction. A well-formed And always has at least two
// children (degenerate single-child Ands collapse to the child via New;
// see flatten.go) and never directly contains another And (flattened).
type And struct {
	Children []Node
}

func (And) canonicalNode() {}

// Or is an n-ary disjunction, under the same invariants as And.
type Or struct {
	Children []Node
}

func (Or) canonicalNode() {}

// Not negates its child. A well-formed Not never wraps another Not
// (double negation eliminated), never wraps And/Or (De Morgan applied),
// and never wraps a Comparison (inversion applied instead). It may wrap a
// Text, a Quantified, or — when the normalizer cannot simplify further —
// some other canonical structure as a conservative fallback.
type Not struct {
	Child Node
}

func (Not) canonicalNode() {}

// Comparison is a single-segment-path comparison against a literal.
type Comparison struct {
	Field string
	Op    ast.CompOp // one of eq, neq, gt, gte, lt, lte
	Lit   ast.Literal
}

func (Comparison) canonicalNode() {}

// Text is a single-segment-path text match against a literal string.
type Text struct {
	Field  string
	Op     TextOp
	Needle string
}

func (Text) canonicalNode() {}

// Quantified applies a quantifier to a predicate evaluated once per element
// of the sequence at Field.
type Quantified struct {
	Quantifier Quantifier
	Field      string
	Pred       Node
}

func (Quantified) canonicalNode() {}
