package output

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/dianpeng/topjoin/engine"
	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0.000000", Number(0))
	assert.Equal("0.000000", Number(math.Copysign(0, -1)))
	assert.Equal("20.000000", Number(20))
	assert.Equal("-3.500000", Number(-3.5))
	assert.Equal("0.000001", Number(0.0000005))
	assert.Equal("-0.000001", Number(-0.0000005))
	assert.Equal("0.000000", Number(0.0000004999))
	assert.Equal("1.234568", Number(1.2345675))
	assert.Equal("123456789012.000000", Number(123456789012))
	assert.Equal("NaN", Number(math.NaN()))
	assert.Equal("+Inf", Number(math.Inf(1)))
	assert.Equal("-Inf", Number(math.Inf(-1)))
}

func TestNumberRoundTrip(t *testing.T) {
	assert := assert.New(t)
	for _, v := range []float64{1.0 / 3, -2.0 / 7, 12345.6789012345, 1e-7, -987654.3210987} {
		s := Number(v)
		dot := strings.IndexByte(s, '.')
		assert.Equal(6, len(s)-dot-1, s)

		back, e := strconv.ParseFloat(s, 64)
		assert.NoError(e)
		assert.InDelta(v, back, 5e-7+1e-9, s)
	}
}

func TestFormat(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0\n", string(Format(nil)))
	assert.Equal(
		"2\n3.000000 20.000000\n1.000000 10.000000\n",
		string(Format([]engine.ScoredGroup{
			{A: 3, S: 20, Rank: 1},
			{A: 1, S: 10, Rank: 0},
		})),
	)
	assert.Equal(
		"1\n100.000000 0.000000\n",
		string(Format([]engine.ScoredGroup{{A: 100, S: 0}})),
	)
}
