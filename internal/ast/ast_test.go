package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath_StringQuotesNonBareLaterSegments(t *testing.T) {
	p := Path{"a", "b.c", "d"}
	assert.Equal(t, `a."b.c".d`, p.String())
}

func TestPath_StringLeavesBareIdentifiersUnquoted(t *testing.T) {
	p := Path{"a", "b_c", "d-e"}
	assert.Equal(t, "a.b_c.d-e", p.String())
}

func TestLiteral_StringRendersEachVariant(t *testing.T) {
	assert.Equal(t, `"hi"`, LitStr("hi").String())
	assert.Equal(t, "10", LitNum(10).String())
	assert.Equal(t, "true", LitBool(true).String())
	assert.Equal(t, "null", LitNull{}.String())
}
