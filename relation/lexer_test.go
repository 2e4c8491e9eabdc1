package relation

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestLexerNumber(t *testing.T) {
	assert := assert.New(t)
	{
		l := newLexer(1, "  1.5\t-2e3  ")
		assert.Equal(TkNumber, l.Next())
		assert.Equal(1.5, l.Lexeme.Real)
		assert.Equal(TkNumber, l.Next())
		assert.Equal(-2000.0, l.Lexeme.Real)
		assert.Equal("-2e3", l.Lexeme.Text)
		assert.Equal(TkEof, l.Next())
		assert.Equal(TkEof, l.Next())
	}
	{
		l := newLexer(1, "inf NaN")
		assert.Equal(TkNumber, l.Next())
		assert.True(math.IsInf(l.Lexeme.Real, 1))
		assert.Equal(TkNumber, l.Next())
		assert.True(math.IsNaN(l.Lexeme.Real))
	}
	{
		l := newLexer(3, "1 abc")
		assert.Equal(TkNumber, l.Next())
		assert.Equal(TkError, l.Next())
		assert.Contains(l.Lexeme.Text, "position(3: 3)")
		assert.Equal(TkError, l.Next())
	}
}

func TestLexPair(t *testing.T) {
	assert := assert.New(t)

	ok := func(src string, k, v float64) {
		p, has, e := lexPair(1, src)
		assert.NoError(e, src)
		assert.True(has, src)
		assert.Equal(Pair{Key: k, Value: v}, p, src)
	}
	ok("1 2", 1, 2)
	ok("  -3.25   4e-2\r", -3.25, 0.04)
	ok("0x1p3 10", 8, 10)

	blank := func(src string) {
		_, has, e := lexPair(1, src)
		assert.NoError(e)
		assert.False(has)
	}
	blank("")
	blank("   \t \r")

	bad := func(src string) {
		_, has, e := lexPair(7, src)
		assert.Error(e, src)
		assert.False(has)
		assert.True(errors.Is(e, ErrMalformedRow), src)
	}
	bad("1")
	bad("1 2 3")
	bad("1,2")
	bad("a b")
	bad("1 2x")
}
