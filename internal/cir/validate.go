package cir

import "fmt"

// ValidationResult reports whether a canonical tree satisfies the §3.3
// structural invariants, and lists any violation found.
//
// This is not part of the pipeline — the normalizer is specified to always
// produce a well-formed tree — but it is a useful property check: tests
// run Validate over every tree Normalize produces to catch a normalizer
// bug before it reaches the evaluator, the same way the teacher's
// queryir.Validate walks a Query/Predicate tree checking its own
// portability invariants.
type ValidationResult struct {
	Valid      bool
	Violations []string
}

// Validate walks a canonical tree and checks the §3.3 invariants:
//   - And never directly contains And; Or never directly contains Or.
//   - And/Or always have at least two children.
//   - Not never wraps Not, And, Or, or Comparison.
//   - Comparison and Text always have a non-empty Field (paths are lifted
//     to length exactly 1 before reaching these node kinds).
func Validate(n Node) ValidationResult {
	v := &validator{}
	v.walk(n)
	return ValidationResult{Valid: len(v.violations) == 0, Violations: v.violations}
}

type validator struct {
	violations []string
}

func (v *validator) fail(format string, args ...any) {
	v.violations = append(v.violations, fmt.Sprintf(format, args...))
}

func (v *validator) walk(n Node) {
	if n == nil {
		v.fail("nil node")
		return
	}
	switch node := n.(type) {
	case And:
		if len(node.Children) < 2 {
			v.fail("And has %d children, want >= 2", len(node.Children))
		}
		for _, c := range node.Children {
			if _, ok := c.(And); ok {
				v.fail("And directly contains And")
			}
			v.walk(c)
		}
	case Or:
		if len(node.Children) < 2 {
			v.fail("Or has %d children, want >= 2", len(node.Children))
		}
		for _, c := range node.Children {
			if _, ok := c.(Or); ok {
				v.fail("Or directly contains Or")
			}
			v.walk(c)
		}
	case Not:
		switch node.Child.(type) {
		case Not:
			v.fail("Not wraps Not")
		case And:
			v.fail("Not wraps And")
		case Or:
			v.fail("Not wraps Or")
		case Comparison:
			v.fail("Not wraps Comparison")
		}
		v.walk(node.Child)
	case Comparison:
		if node.Field == "" {
			v.fail("Comparison has empty Field")
		}
	case Text:
		if node.Field == "" {
			v.fail("Text has empty Field")
		}
	case Quantified:
		if node.Field == "" {
			v.fail("Quantified has empty Field")
		}
		v.walk(node.Pred)
	default:
		v.fail("unrecognized node type %T", n)
	}
}
