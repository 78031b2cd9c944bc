// Package ast defines the surface tree (§3.2): the tree the parser produces,
// preserving the author's syntactic choices (shorthands, groups, the exact
// literal that was written).
package ast

import "fmt"

// Literal is a sealed interface over the tagged literal variants in §3.1.
// Only LitStr, LitNum, LitBool, and LitNull implement it; an exhaustive type
// switch on Literal never needs a default case to stay correct.
type Literal interface {
	literal()
}

// LitStr is a string literal.
type LitStr string

func (LitStr) literal() {}

// LitNum is a numeric literal. Numbers are IEEE-754 doubles; NaN never
// compares equal to anything, including itself.
type LitNum float64

func (LitNum) literal() {}

// LitBool is a boolean literal.
type LitBool bool

func (LitBool) literal() {}

// LitNull is the null literal. It is a distinct type (not a nil interface)
// so a Literal holding "null" is never confused with an absent Literal.
type LitNull struct{}

func (LitNull) literal() {}

// String renders a literal the way it would appear in surface syntax,
// useful for error messages and debug output.
func (l LitStr) String() string  { return fmt.Sprintf("%q", string(l)) }
func (l LitNum) String() string  { return fmt.Sprintf("%v", float64(l)) }
func (l LitBool) String() string { return fmt.Sprintf("%v", bool(l)) }
func (LitNull) String() string   { return "null" }
