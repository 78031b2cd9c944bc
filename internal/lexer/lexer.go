// Package lexer implements C1: surface text to a token stream with source
// locations, rejecting any character that begins no token.
package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/roach88/brutalist-filter/internal/filterr"
)

// Lexer scans one input string into a Token stream. A Lexer is cheap to
// construct and holds no state beyond the current scan position, so a
// failed scan never leaks into a later one (§9 DESIGN NOTES: no global
// state, reset at each entry point).
type Lexer struct {
	src  string
	pos  int // byte offset
	line int
	col  int // rune column within the current line
}

// New creates a Lexer over src.
func New(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Lex scans src in full and returns its tokens (including a trailing EOF
// token), or the first lexical error encountered.
func Lex(src string) ([]Token, error) {
	l := New(src)
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

func (l *Lexer) peekRune() (rune, int) {
	if l.pos >= len(l.src) {
		return 0, 0
	}
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	return r, size
}

func (l *Lexer) advance() rune {
	r, size := l.peekRune()
	l.pos += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) skipWhitespace() {
	for {
		r, size := l.peekRune()
		if size == 0 || !unicode.IsSpace(r) {
			return
		}
		l.advance()
	}
}

// Next scans and returns the next token.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()

	startLine, startCol := l.line, l.col
	r, size := l.peekRune()
	if size == 0 {
		return Token{Kind: EOF, Line: startLine, Column: startCol}, nil
	}

	switch {
	case r == '(':
		l.advance()
		return Token{Kind: LParen, Text: "(", Line: startLine, Column: startCol}, nil
	case r == ')':
		l.advance()
		return Token{Kind: RParen, Text: ")", Line: startLine, Column: startCol}, nil
	case r == ',':
		l.advance()
		return Token{Kind: Comma, Text: ",", Line: startLine, Column: startCol}, nil
	case r == '.':
		l.advance()
		return Token{Kind: Dot, Text: ".", Line: startLine, Column: startCol}, nil
	case r == ':':
		l.advance()
		return Token{Kind: Colon, Text: ":", Line: startLine, Column: startCol}, nil
	case r == '"':
		return l.lexString(startLine, startCol)
	case r == '>' || r == '<' || r == '!' || r == '=':
		return l.lexOperator(startLine, startCol)
	case r == '+' || r == '-' || unicode.IsDigit(r):
		if tok, ok, err := l.tryLexNumber(startLine, startCol); ok || err != nil {
			return tok, err
		}
		// A lone '+' or '-' not followed by a digit begins no token.
		l.advance()
		return Token{}, filterr.NewUnexpectedToken(startLine, startCol, string(r))
	case isIdentStart(r):
		return l.lexIdentOrKeyword(startLine, startCol)
	default:
		l.advance()
		return Token{}, filterr.NewUnexpectedToken(startLine, startCol, string(r))
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentCont(r rune) bool {
	return r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (l *Lexer) lexOperator(line, col int) (Token, error) {
	r := l.advance()
	switch r {
	case '=':
		return Token{Kind: OpEq, Text: "=", Line: line, Column: col}, nil
	case '!':
		if nr, size := l.peekRune(); size > 0 && nr == '=' {
			l.advance()
			return Token{Kind: OpNeq, Text: "!=", Line: line, Column: col}, nil
		}
		return Token{}, filterr.NewUnexpectedToken(line, col, "!")
	case '>':
		if nr, size := l.peekRune(); size > 0 && nr == '=' {
			l.advance()
			return Token{Kind: OpGte, Text: ">=", Line: line, Column: col}, nil
		}
		return Token{Kind: OpGt, Text: ">", Line: line, Column: col}, nil
	case '<':
		if nr, size := l.peekRune(); size > 0 && nr == '=' {
			l.advance()
			return Token{Kind: OpLte, Text: "<=", Line: line, Column: col}, nil
		}
		return Token{Kind: OpLt, Text: "<", Line: line, Column: col}, nil
	}
	return Token{}, filterr.NewUnexpectedToken(line, col, string(r))
}

func (l *Lexer) lexIdentOrKeyword(line, col int) (Token, error) {
	start := l.pos
	for {
		r, size := l.peekRune()
		if size == 0 || !isIdentCont(r) {
			break
		}
		l.advance()
	}
	text := l.src[start:l.pos]
	if kind, ok := keywords[strings.ToLower(text)]; ok {
		return Token{Kind: kind, Text: text, Line: line, Column: col}, nil
	}
	return Token{Kind: Ident, Text: text, Line: line, Column: col}, nil
}

// tryLexNumber attempts to scan a numeric literal starting at the current
// position. ok is false (with no position change reflected in the
// returned token) when the lookahead does not actually form a number, e.g.
// a bare '+' or '-' with no following digit.
func (l *Lexer) tryLexNumber(line, col int) (Token, bool, error) {
	save := *l
	start := l.pos

	if r, size := l.peekRune(); size > 0 && (r == '+' || r == '-') {
		l.advance()
	}

	digits := 0
	for {
		r, size := l.peekRune()
		if size == 0 || !unicode.IsDigit(r) {
			break
		}
		l.advance()
		digits++
	}
	if digits == 0 {
		*l = save
		return Token{}, false, nil
	}

	if r, size := l.peekRune(); size > 0 && r == '.' {
		// Lookahead past the dot: only consume it as a decimal point if a
		// digit follows, so `field.sub` (path traversal) never gets eaten
		// by a number scan started on a leading digit-like identifier --
		// numbers never start mid-identifier in this grammar anyway, but
		// this keeps `1.5` working while leaving a trailing bare dot alone.
		peek := l.pos + size
		if peek < len(l.src) {
			nr, nsize := utf8.DecodeRuneInString(l.src[peek:])
			if nsize > 0 && unicode.IsDigit(nr) {
				l.advance() // consume '.'
				for {
					r, size := l.peekRune()
					if size == 0 || !unicode.IsDigit(r) {
						break
					}
					l.advance()
				}
			}
		}
	}

	if r, size := l.peekRune(); size > 0 && (r == 'e' || r == 'E') {
		save2 := *l
		l.advance()
		if r2, size2 := l.peekRune(); size2 > 0 && (r2 == '+' || r2 == '-') {
			l.advance()
		}
		expDigits := 0
		for {
			r, size := l.peekRune()
			if size == 0 || !unicode.IsDigit(r) {
				break
			}
			l.advance()
			expDigits++
		}
		if expDigits == 0 {
			*l = save2
		}
	}

	text := l.src[start:l.pos]
	num, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, false, filterr.NewUnexpectedToken(line, col, text)
	}
	return Token{Kind: Number, Text: text, Num: num, Line: line, Column: col}, true, nil
}

func (l *Lexer) lexString(line, col int) (Token, error) {
	l.advance() // opening quote
	var b strings.Builder
	for {
		r, size := l.peekRune()
		if size == 0 {
			return Token{}, filterr.NewParseGeneric(line, col, `"`, "unterminated string literal")
		}
		if r == '"' {
			l.advance()
			break
		}
		if r == '\\' {
			l.advance()
			esc, size := l.peekRune()
			if size == 0 {
				return Token{}, filterr.NewParseGeneric(line, col, `\`, "unterminated escape sequence")
			}
			switch esc {
			case '"':
				b.WriteRune('"')
				l.advance()
			case '\\':
				b.WriteRune('\\')
				l.advance()
			case '/':
				b.WriteRune('/')
				l.advance()
			case 'b':
				b.WriteRune('\b')
				l.advance()
			case 'f':
				b.WriteRune('\f')
				l.advance()
			case 'n':
				b.WriteRune('\n')
				l.advance()
			case 'r':
				b.WriteRune('\r')
				l.advance()
			case 't':
				b.WriteRune('\t')
				l.advance()
			case 'v':
				b.WriteRune('\v')
				l.advance()
			case 'u':
				l.advance()
				code := 0
				for i := 0; i < 4; i++ {
					hr, hsize := l.peekRune()
					if hsize == 0 || !isHexDigit(hr) {
						return Token{}, filterr.NewParseGeneric(line, col, string(hr), "invalid \\u escape")
					}
					code = code*16 + hexVal(hr)
					l.advance()
				}
				b.WriteRune(rune(code))
			default:
				return Token{}, filterr.NewParseGeneric(line, col, string(esc), "unknown escape sequence")
			}
			continue
		}
		b.WriteRune(r)
		l.advance()
	}
	return Token{Kind: String, Text: b.String(), Value: b.String(), Line: line, Column: col}, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexVal(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}
