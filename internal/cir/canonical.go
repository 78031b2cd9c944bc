package cir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/roach88/brutalist-filter/internal/ast"
)

// Serialize renders a canonical tree into a deterministic, field-ordered
// text form. Two canonical trees are structurally equal iff their
// Serialize output is byte-identical — this is the substrate §8's
// idempotence and inversion-identity properties are tested against,
// grounded on the teacher's MarshalCanonical (ir/canonical.go), which
// plays the same "serialize to compare/hash, not reflect.DeepEqual on an
// interface tree" role for its own IR.
func Serialize(n Node) string {
	var b []byte
	b = appendNode(b, n)
	return string(b)
}

// Hash returns a SHA-256 digest of Serialize(n), following the same
// domain-separated hashing shape as the teacher's ir.hashWithDomain: a
// fixed domain tag, a null-byte separator, then the canonical bytes.
func Hash(n Node) string {
	h := sha256.New()
	h.Write([]byte("brutalist-filter/cir/v1"))
	h.Write([]byte{0x00})
	h.Write([]byte(Serialize(n)))
	return hex.EncodeToString(h.Sum(nil))
}

// Equal reports whether two canonical trees are structurally identical.
func Equal(a, b Node) bool {
	return Serialize(a) == Serialize(b)
}

func appendNode(b []byte, n Node) []byte {
	switch node := n.(type) {
	case And:
		b = append(b, "And["...)
		for i, c := range node.Children {
			if i > 0 {
				b = append(b, ',')
			}
			b = appendNode(b, c)
		}
		return append(b, ']')
	case Or:
		b = append(b, "Or["...)
		for i, c := range node.Children {
			if i > 0 {
				b = append(b, ',')
			}
			b = appendNode(b, c)
		}
		return append(b, ']')
	case Not:
		b = append(b, "Not("...)
		b = appendNode(b, node.Child)
		return append(b, ')')
	case Comparison:
		b = append(b, "Cmp("...)
		b = append(b, node.Field...)
		b = append(b, ',')
		b = append(b, node.Op.String()...)
		b = append(b, ',')
		b = appendLiteral(b, node.Lit)
		return append(b, ')')
	case Text:
		b = append(b, "Text("...)
		b = append(b, node.Field...)
		b = append(b, ',')
		b = append(b, node.Op.String()...)
		b = append(b, ',')
		b = append(b, strconv.Quote(node.Needle)...)
		return append(b, ')')
	case Quantified:
		b = append(b, "Quant("...)
		b = append(b, node.Quantifier.String()...)
		b = append(b, ',')
		b = append(b, node.Field...)
		b = append(b, ',')
		b = appendNode(b, node.Pred)
		return append(b, ')')
	default:
		return append(b, fmt.Sprintf("?(%T)", n)...)
	}
}

func appendLiteral(b []byte, lit ast.Literal) []byte {
	switch l := lit.(type) {
	case ast.LitStr:
		return append(b, strconv.Quote(string(l))...)
	case ast.LitNum:
		return append(b, strconv.FormatFloat(float64(l), 'g', -1, 64)...)
	case ast.LitBool:
		return append(b, strconv.FormatBool(bool(l))...)
	case ast.LitNull:
		return append(b, "null"...)
	default:
		return append(b, fmt.Sprintf("?(%T)", lit)...)
	}
}
