// Package sqlfilter is the sample external translator referenced by §6.4:
// a canonical tree compiles to a parameterized SQL WHERE fragment.
// Grounded on the teacher's SQLCompiler (internal/querysql/compile.go),
// which plays the identical "IR tree in, SQL string + param slice out,
// never interpolate a value" role for its own query IR.
package sqlfilter

import (
	"fmt"
	"strings"

	"github.com/roach88/brutalist-filter/internal/ast"
	"github.com/roach88/brutalist-filter/internal/cir"
	"github.com/roach88/brutalist-filter/internal/filterr"
)

// Compiler compiles canonical trees to SQL. It holds no state across
// calls; a single Compiler is safe to reuse or share.
type Compiler struct {
	// Target names the backend in raised AdapterErrors, defaulting to
	// "sql" when unset.
	Target string
}

// NewCompiler returns a ready-to-use Compiler.
func NewCompiler() *Compiler {
	return &Compiler{Target: "sql"}
}

func (c *Compiler) target() string {
	if c.Target == "" {
		return "sql"
	}
	return c.Target
}

// Compile renders tree as a WHERE-clause fragment with `?` placeholders,
// in the same left-to-right parameter order the fragment's operators
// appear in. Quantified nodes have no SQL-row-predicate rendering in this
// sample translator and raise E_ADAPTER_UNSUPPORTED_FEATURE — CRITICAL:
// callers must never interpolate a literal directly; params always
// travels with sql.
func (c *Compiler) Compile(tree cir.Node) (sql string, params []any, err error) {
	return c.compileNode(tree)
}

func (c *Compiler) compileNode(n cir.Node) (string, []any, error) {
	switch t := n.(type) {
	case cir.And:
		return c.compileConjunction(t.Children, "AND")
	case cir.Or:
		return c.compileConjunction(t.Children, "OR")
	case cir.Not:
		sql, params, err := c.compileNode(t.Child)
		if err != nil {
			return "", nil, err
		}
		return "NOT (" + sql + ")", params, nil
	case cir.Comparison:
		return c.compileComparison(t)
	case cir.Text:
		return c.compileText(t)
	case cir.Quantified:
		return "", nil, filterr.NewUnsupportedFeature(c.target(), "quantifier ("+t.Quantifier.String()+")")
	default:
		return "", nil, filterr.NewAdapterGeneric(c.target(), fmt.Sprintf("unrecognized canonical node %T", n))
	}
}

func (c *Compiler) compileConjunction(children []cir.Node, joiner string) (string, []any, error) {
	parts := make([]string, len(children))
	var params []any
	for i, child := range children {
		sql, p, err := c.compileNode(child)
		if err != nil {
			return "", nil, err
		}
		parts[i] = "(" + sql + ")"
		params = append(params, p...)
	}
	return strings.Join(parts, " "+joiner+" "), params, nil
}

func (c *Compiler) compileComparison(cmp cir.Comparison) (string, []any, error) {
	op, err := sqlCompOp(cmp.Op)
	if err != nil {
		return "", nil, err
	}

	if _, isNull := cmp.Lit.(ast.LitNull); isNull {
		switch cmp.Op {
		case ast.CompEq:
			return quoteIdent(cmp.Field) + " IS NULL", nil, nil
		case ast.CompNeq:
			return quoteIdent(cmp.Field) + " IS NOT NULL", nil, nil
		default:
			return "", nil, filterr.NewUnsupportedFeature(c.target(), "ordered comparison against null")
		}
	}

	param, err := literalParam(cmp.Lit)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("%s %s ?", quoteIdent(cmp.Field), op), []any{param}, nil
}

func (c *Compiler) compileText(t cir.Text) (string, []any, error) {
	pattern := likePattern(t.Op, t.Needle)
	return quoteIdent(t.Field) + " LIKE ? ESCAPE '\\'", []any{pattern}, nil
}

// likePattern renders needle as a SQL LIKE pattern, escaping LIKE's own
// metacharacters (% _ \) in the needle before adding the op's wildcards.
func likePattern(op cir.TextOp, needle string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(needle)
	switch op {
	case cir.TextStartsWith:
		return escaped + "%"
	case cir.TextEndsWith:
		return "%" + escaped
	default:
		return "%" + escaped + "%"
	}
}

func sqlCompOp(op ast.CompOp) (string, error) {
	switch op {
	case ast.CompEq:
		return "=", nil
	case ast.CompNeq:
		return "!=", nil
	case ast.CompGt:
		return ">", nil
	case ast.CompGte:
		return ">=", nil
	case ast.CompLt:
		return "<", nil
	case ast.CompLte:
		return "<=", nil
	default:
		return "", filterr.NewAdapterGeneric("sql", "unrecognized comparison operator")
	}
}

func literalParam(lit ast.Literal) (any, error) {
	switch l := lit.(type) {
	case ast.LitStr:
		return string(l), nil
	case ast.LitNum:
		return float64(l), nil
	case ast.LitBool:
		return bool(l), nil
	default:
		return nil, filterr.NewAdapterGeneric("sql", "unsupported literal kind")
	}
}

// quoteIdent double-quotes a field name for use as a SQL identifier,
// doubling any embedded quote per standard SQL identifier escaping.
func quoteIdent(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
