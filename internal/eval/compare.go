package eval

import (
	"math"

	"github.com/roach88/brutalist-filter/internal/ast"
	"github.com/roach88/brutalist-filter/internal/filterr"
	"github.com/roach88/brutalist-filter/internal/record"
)

// isNullish groups null and absent together, matching how §4.3 treats
// them identically for path resolution and quantifier iteration.
func isNullish(v record.Value) bool {
	return v == nil || v.Kind() == record.KindNull || v.Kind() == record.KindAbsent
}

func literalKind(lit ast.Literal) string {
	switch lit.(type) {
	case ast.LitStr:
		return "string"
	case ast.LitNum:
		return "number"
	case ast.LitBool:
		return "bool"
	case ast.LitNull:
		return "null"
	default:
		return "?"
	}
}

func valueKind(v record.Value) string {
	if isNullish(v) {
		return "null"
	}
	return v.Kind().String()
}

// evalComparison implements Comparison(field, op, lit) against ctx.
func evalComparison(ctx record.Value, field string, op ast.CompOp, lit ast.Literal, inQuantifier bool) (bool, error) {
	l := lookup(ctx, []string{field}, inQuantifier)

	switch op {
	case ast.CompEq:
		return compareEq(l, lit), nil
	case ast.CompNeq:
		return !compareEq(l, lit), nil
	default:
		return compareOrdered(l, field, op, lit)
	}
}

func compareEq(l record.Value, lit ast.Literal) bool {
	_, litIsNull := lit.(ast.LitNull)
	if isNullish(l) || litIsNull {
		return isNullish(l) && litIsNull
	}

	switch r := lit.(type) {
	case ast.LitStr:
		s, ok := l.AsString()
		return ok && s == string(r)
	case ast.LitNum:
		n, ok := l.AsNumber()
		return ok && !math.IsNaN(n) && !math.IsNaN(float64(r)) && n == float64(r)
	case ast.LitBool:
		b, ok := l.AsBool()
		return ok && b == bool(r)
	default:
		return false
	}
}

func compareOrdered(l record.Value, field string, op ast.CompOp, lit ast.Literal) (bool, error) {
	lNum, lIsNum := l.AsNumber()
	rNum, rIsNum := litAsNumber(lit)
	if lIsNum && rIsNum {
		return orderNumbers(lNum, rNum, op), nil
	}

	lStr, lIsStr := l.AsString()
	rStr, rIsStr := litAsString(lit)
	if lIsStr && rIsStr {
		return orderStrings(lStr, rStr, op), nil
	}

	return false, filterr.NewTypeMismatch(op.String(), valueKind(l), literalKind(lit))
}

func litAsNumber(lit ast.Literal) (float64, bool) {
	n, ok := lit.(ast.LitNum)
	return float64(n), ok
}

func litAsString(lit ast.Literal) (string, bool) {
	s, ok := lit.(ast.LitStr)
	return string(s), ok
}

func orderNumbers(l, r float64, op ast.CompOp) bool {
	switch op {
	case ast.CompGt:
		return l > r
	case ast.CompGte:
		return l >= r
	case ast.CompLt:
		return l < r
	case ast.CompLte:
		return l <= r
	default:
		return false
	}
}

func orderStrings(l, r string, op ast.CompOp) bool {
	switch op {
	case ast.CompGt:
		return l > r
	case ast.CompGte:
		return l >= r
	case ast.CompLt:
		return l < r
	case ast.CompLte:
		return l <= r
	default:
		return false
	}
}
