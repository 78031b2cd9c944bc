package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/brutalist-filter/internal/filterr"
)

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLex_KeywordsAreCaseInsensitive(t *testing.T) {
	toks, err := Lex(`AND and And OR not CONTAINS startsWith ENDSWITH any ALL none true FALSE null`)
	require.NoError(t, err)
	assert.Equal(t, []Kind{
		KwAnd, KwAnd, KwAnd, KwOr, KwNot, KwContains, KwStartsWith, KwEndsWith,
		KwAny, KwAll, KwNone, KwTrue, KwFalse, KwNull, EOF,
	}, kinds(toks))
}

func TestLex_KeywordNeverLexesAsIdent(t *testing.T) {
	toks, err := Lex(`any`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, KwAny, toks[0].Kind)
}

func TestLex_IdentAllowsUnderscoreAndHyphen(t *testing.T) {
	toks, err := Lex(`_field-name`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, Ident, toks[0].Kind)
	assert.Equal(t, "_field-name", toks[0].Text)
}

func TestLex_Operators(t *testing.T) {
	toks, err := Lex(`= != > >= < <=`)
	require.NoError(t, err)
	assert.Equal(t, []Kind{OpEq, OpNeq, OpGt, OpGte, OpLt, OpLte, EOF}, kinds(toks))
}

func TestLex_BareBangIsUnexpectedToken(t *testing.T) {
	_, err := Lex(`!`)
	require.Error(t, err)
	assert.True(t, filterr.IsCode(err, filterr.CodeParseUnexpectedToken))
}

func TestLex_Punctuation(t *testing.T) {
	toks, err := Lex(`(a, b.c): `)
	require.NoError(t, err)
	assert.Equal(t, []Kind{LParen, Ident, Comma, Ident, Dot, Ident, RParen, Colon, EOF}, kinds(toks))
}

func TestLex_NumberIntegerDecimalAndExponent(t *testing.T) {
	toks, err := Lex(`10 -3.5 +2 1.5e10 2E-3`)
	require.NoError(t, err)
	require.Len(t, toks, 6)
	want := []float64{10, -3.5, 2, 1.5e10, 2e-3}
	for i, w := range want {
		assert.Equal(t, Number, toks[i].Kind)
		assert.InDelta(t, w, toks[i].Num, 1e-9)
	}
}

func TestLex_TrailingDotNotConsumedByNumber(t *testing.T) {
	toks, err := Lex(`field.sub`)
	require.NoError(t, err)
	assert.Equal(t, []Kind{Ident, Dot, Ident, EOF}, kinds(toks))
}

func TestLex_DotNotFollowedByDigitLeftForCaller(t *testing.T) {
	toks, err := Lex(`1.`)
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, Number, toks[0].Kind)
	assert.Equal(t, float64(1), toks[0].Num)
	assert.Equal(t, Dot, toks[1].Kind)
}

func TestLex_ExponentWithoutDigitsLeavesTrailerAlone(t *testing.T) {
	toks, err := Lex(`1e`)
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, Number, toks[0].Kind)
	assert.Equal(t, float64(1), toks[0].Num)
	assert.Equal(t, Ident, toks[1].Kind)
	assert.Equal(t, "e", toks[1].Text)
}

func TestLex_LoneMinusIsUnexpectedToken(t *testing.T) {
	_, err := Lex(`- `)
	require.Error(t, err)
	assert.True(t, filterr.IsCode(err, filterr.CodeParseUnexpectedToken))
}

func TestLex_StringDecodesStandardEscapes(t *testing.T) {
	toks, err := Lex(`"a\"b\\c\/d\n\tA"`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, String, toks[0].Kind)
	assert.Equal(t, "a\"b\\c/d\n\tA", toks[0].Value)
}

func TestLex_UnterminatedStringIsError(t *testing.T) {
	_, err := Lex(`"abc`)
	require.Error(t, err)
}

func TestLex_UnknownEscapeIsError(t *testing.T) {
	_, err := Lex(`"\q"`)
	require.Error(t, err)
}

func TestLex_InvalidUnicodeEscapeIsError(t *testing.T) {
	_, err := Lex(`"\u12"`)
	require.Error(t, err)
}

func TestLex_LineAndColumnTracking(t *testing.T) {
	toks, err := Lex("a\nbb")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 1, toks[0].Column)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 1, toks[1].Column)
}

func TestLex_UnexpectedCharacter(t *testing.T) {
	_, err := Lex(`@`)
	require.Error(t, err)
	assert.True(t, filterr.IsCode(err, filterr.CodeParseUnexpectedToken))
}

func TestLex_EmptyInputYieldsOnlyEOF(t *testing.T) {
	toks, err := Lex(``)
	require.NoError(t, err)
	assert.Equal(t, []Kind{EOF}, kinds(toks))
}
