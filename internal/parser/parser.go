// Package parser implements C2: turning a token stream into the surface
// tree (ast.Node), resolving precedence and the shared prefixes between a
// comparison, a colon shorthand, and a bare truthy path (§4.1, §9 DESIGN
// NOTES).
package parser

import (
	"github.com/roach88/brutalist-filter/internal/ast"
	"github.com/roach88/brutalist-filter/internal/filterr"
	"github.com/roach88/brutalist-filter/internal/lexer"
)

// Parse scans and parses text in one call, per §6.1's `parse(text) →
// (surfaceTree, tokens) | ParseError`.
func Parse(text string) (ast.Node, []lexer.Token, error) {
	toks, err := lexer.Lex(text)
	if err != nil {
		return nil, nil, err
	}
	p := &Parser{toks: toks}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, toks, err
	}
	if cur := p.peek(); cur.Kind != lexer.EOF {
		return nil, toks, p.errorHere("unexpected trailing input")
	}
	return expr, toks, nil
}

// Parser holds token-stream parse state. A Parser is single-use: construct
// one per call to Parse so a partial/failed parse never leaks into the next
// (§9 DESIGN NOTES).
type Parser struct {
	toks []lexer.Token
	pos  int
}

func (p *Parser) peek() lexer.Token {
	if p.pos >= len(p.toks) {
		return lexer.Token{Kind: lexer.EOF}
	}
	return p.toks[p.pos]
}

func (p *Parser) peekAt(offset int) lexer.Token {
	idx := p.pos + offset
	if idx >= len(p.toks) {
		return lexer.Token{Kind: lexer.EOF}
	}
	return p.toks[idx]
}

func (p *Parser) advance() lexer.Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *Parser) errorHere(reason string) error {
	t := p.peek()
	lexeme := t.Text
	if t.Kind == lexer.EOF {
		lexeme = ""
	}
	return filterr.NewParseGeneric(t.Line, t.Column, lexeme, reason)
}

func (p *Parser) expect(k lexer.Kind) (lexer.Token, error) {
	t := p.peek()
	if t.Kind != k {
		return t, p.errorHere("expected " + k.String())
	}
	return p.advance(), nil
}

// parseExpression = orExpr
func (p *Parser) parseExpression() (ast.Node, error) {
	return p.parseOr()
}

// orExpr = andExpr (OR andExpr)*  -- left-associative
func (p *Parser) parseOr() (ast.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().Kind == lexer.KwOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ast.LogicalNode{Op: ast.LogicalOr, Left: left, Right: right}
	}
	return left, nil
}

// andExpr = notExpr (AND notExpr)*  -- left-associative
func (p *Parser) parseAnd() (ast.Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.peek().Kind == lexer.KwAnd {
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = ast.LogicalNode{Op: ast.LogicalAnd, Left: left, Right: right}
	}
	return left, nil
}

// notExpr = NOT notExpr | atomic
func (p *Parser) parseNot() (ast.Node, error) {
	if p.peek().Kind == lexer.KwNot {
		p.advance()
		arg, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return ast.UnaryNode{Arg: arg}, nil
	}
	return p.parseAtomic()
}

// atomic = group | call | literal | pathBased
func (p *Parser) parseAtomic() (ast.Node, error) {
	t := p.peek()
	switch t.Kind {
	case lexer.LParen:
		return p.parseGroup()
	case lexer.KwContains, lexer.KwStartsWith, lexer.KwEndsWith, lexer.KwAny, lexer.KwAll, lexer.KwNone:
		if p.peekAt(1).Kind == lexer.LParen {
			return p.parseCall()
		}
		return nil, p.errorHere("expected '(' after function name")
	case lexer.String, lexer.Number, lexer.KwTrue, lexer.KwFalse, lexer.KwNull:
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		return ast.LiteralNode{Lit: lit}, nil
	case lexer.Ident:
		return p.parsePathBased()
	default:
		return nil, p.errorHere("expected an expression")
	}
}

func (p *Parser) parseGroup() (ast.Node, error) {
	p.advance() // '('
	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}
	return ast.GroupNode{Expr: inner}, nil
}

// call = funcName '(' callArgs ')'
func (p *Parser) parseCall() (ast.Node, error) {
	nameTok := p.advance()
	name := ast.CallName(canonicalCallName(nameTok.Kind))
	if _, err := p.expect(lexer.LParen); err != nil {
		return nil, err
	}

	var args []ast.Node
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	args = append(args, first)

	for p.peek().Kind == lexer.Comma {
		p.advance()
		next, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, next)
	}

	if _, err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}

	switch name {
	case ast.CallContains, ast.CallStartsWith, ast.CallEndsWith:
		if len(args) < 1 || len(args) > 2 {
			return nil, p.errorHere(string(name) + " takes 1 or 2 arguments")
		}
	case ast.CallAny, ast.CallAll, ast.CallNone:
		if len(args) != 2 {
			return nil, p.errorHere(string(name) + " takes exactly 2 arguments")
		}
	}

	return ast.CallNode{Name: name, Args: args}, nil
}

func canonicalCallName(k lexer.Kind) string {
	switch k {
	case lexer.KwContains:
		return string(ast.CallContains)
	case lexer.KwStartsWith:
		return string(ast.CallStartsWith)
	case lexer.KwEndsWith:
		return string(ast.CallEndsWith)
	case lexer.KwAny:
		return string(ast.CallAny)
	case lexer.KwAll:
		return string(ast.CallAll)
	case lexer.KwNone:
		return string(ast.CallNone)
	}
	return ""
}

// pathBased = fieldPath ( cmpOp literal | ':' shortRHS )?
func (p *Parser) parsePathBased() (ast.Node, error) {
	path, err := p.parseFieldPath()
	if err != nil {
		return nil, err
	}

	switch p.peek().Kind {
	case lexer.OpEq, lexer.OpNeq, lexer.OpGt, lexer.OpGte, lexer.OpLt, lexer.OpLte:
		op := compOpFromToken(p.advance().Kind)
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		return ast.ComparisonNode{Op: op, Path: path, Lit: lit}, nil
	case lexer.Colon:
		p.advance()
		rhs, err := p.parseShortRHS()
		if err != nil {
			return nil, err
		}
		return ast.ShorthandNode{Path: path, RHS: rhs}, nil
	default:
		return ast.PathNode{Segments: path}, nil
	}
}

// fieldPath = Identifier ( '.' ( Identifier | String ) )*
func (p *Parser) parseFieldPath() (ast.Path, error) {
	head, err := p.expect(lexer.Ident)
	if err != nil {
		return nil, err
	}
	path := ast.Path{head.Text}

	for p.peek().Kind == lexer.Dot {
		p.advance()
		t := p.peek()
		switch t.Kind {
		case lexer.Ident:
			p.advance()
			path = append(path, t.Text)
		case lexer.String:
			p.advance()
			path = append(path, t.Value)
		default:
			return nil, p.errorHere("expected identifier or quoted segment after '.'")
		}
	}
	return path, nil
}

// shortRHS = literal | valueList | compShorthand
func (p *Parser) parseShortRHS() (ast.ShorthandRHS, error) {
	t := p.peek()
	switch t.Kind {
	case lexer.LParen:
		return p.parseValueList()
	case lexer.OpGt, lexer.OpGte, lexer.OpLt, lexer.OpLte:
		return p.parseCompShorthand()
	case lexer.String, lexer.Number, lexer.KwTrue, lexer.KwFalse, lexer.KwNull:
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		return ast.LiteralNode{Lit: lit}, nil
	default:
		return nil, p.errorHere("expected a literal, comparison, or value list after ':'")
	}
}

// compShorthand = cmpOp literal  -- cmpOp ∈ {>,>=,<,<=}
func (p *Parser) parseCompShorthand() (ast.CompShorthandNode, error) {
	t := p.peek()
	if t.Kind != lexer.OpGt && t.Kind != lexer.OpGte && t.Kind != lexer.OpLt && t.Kind != lexer.OpLte {
		return ast.CompShorthandNode{}, p.errorHere("expected one of > >= < <=")
	}
	p.advance()
	lit, err := p.parseLiteral()
	if err != nil {
		return ast.CompShorthandNode{}, err
	}
	return ast.CompShorthandNode{Op: compOpFromToken(t.Kind), Lit: lit}, nil
}

// valueList = '(' (literal|compShorthand) ( ',' (literal|compShorthand) )* ')'
func (p *Parser) parseValueList() (ast.ValueListNode, error) {
	p.advance() // '('

	var items []ast.Node
	var explicitOp *ast.LogicalOp

	for {
		item, err := p.parseValueListItem()
		if err != nil {
			return ast.ValueListNode{}, err
		}
		items = append(items, item)

		switch p.peek().Kind {
		case lexer.Comma:
			p.advance()
			continue
		case lexer.KwAnd, lexer.KwOr:
			op := ast.LogicalAnd
			if p.peek().Kind == lexer.KwOr {
				op = ast.LogicalOr
			}
			if explicitOp != nil && *explicitOp != op {
				return ast.ValueListNode{}, p.errorHere("value list cannot mix AND and OR")
			}
			explicitOp = &op
			p.advance()
			continue
		case lexer.RParen:
			p.advance()
			if len(items) == 0 {
				return ast.ValueListNode{}, p.errorHere("value list must be non-empty")
			}
			return ast.ValueListNode{Items: items, ExplicitOp: explicitOp}, nil
		default:
			return ast.ValueListNode{}, p.errorHere("expected ',', AND, OR, or ')' in value list")
		}
	}
}

func (p *Parser) parseValueListItem() (ast.Node, error) {
	t := p.peek()
	switch t.Kind {
	case lexer.OpGt, lexer.OpGte, lexer.OpLt, lexer.OpLte:
		return p.parseCompShorthand()
	case lexer.String, lexer.Number, lexer.KwTrue, lexer.KwFalse, lexer.KwNull:
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		return ast.LiteralNode{Lit: lit}, nil
	default:
		return nil, p.errorHere("expected a literal or comparison shorthand in value list")
	}
}

// literal = String | Number | true | false | null
func (p *Parser) parseLiteral() (ast.Literal, error) {
	t := p.peek()
	switch t.Kind {
	case lexer.String:
		p.advance()
		return ast.LitStr(t.Value), nil
	case lexer.Number:
		p.advance()
		return ast.LitNum(t.Num), nil
	case lexer.KwTrue:
		p.advance()
		return ast.LitBool(true), nil
	case lexer.KwFalse:
		p.advance()
		return ast.LitBool(false), nil
	case lexer.KwNull:
		p.advance()
		return ast.LitNull{}, nil
	default:
		return nil, p.errorHere("expected a literal")
	}
}

func compOpFromToken(k lexer.Kind) ast.CompOp {
	switch k {
	case lexer.OpEq:
		return ast.CompEq
	case lexer.OpNeq:
		return ast.CompNeq
	case lexer.OpGt:
		return ast.CompGt
	case lexer.OpGte:
		return ast.CompGte
	case lexer.OpLt:
		return ast.CompLt
	case lexer.OpLte:
		return ast.CompLte
	}
	return ast.CompEq
}
