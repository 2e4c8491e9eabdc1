package engine

import (
	"math"
	"testing"

	"github.com/dianpeng/topjoin/relation"
	"github.com/stretchr/testify/assert"
)

func TestSuffixTableEmpty(t *testing.T) {
	assert := assert.New(t)
	tbl := NewSuffixTable(nil)
	assert.Equal(0, tbl.Len())
	assert.Equal(1, len(tbl.suffix))
	assert.Equal(0.0, tbl.SumZAbove(-1e300))
	assert.Equal(0.0, tbl.SumZAbove(0))
	assert.Equal(0.0, tbl.SumZAbove(math.Inf(-1)))
}

func TestSuffixTable(t *testing.T) {
	assert := assert.New(t)
	tbl := NewSuffixTable(relation.Relation{
		{Key: 3, Value: 1},
		{Key: 1, Value: 10},
		{Key: 2, Value: 100},
		{Key: 2, Value: 1000},
		{Key: 5, Value: -4},
	})
	assert.Equal(5, tbl.Len())
	assert.Equal([]float64{1, 2, 2, 3, 5}, tbl.c)

	assert.Equal(1107.0, tbl.SumZAbove(0))
	assert.Equal(1097.0, tbl.SumZAbove(1))
	assert.Equal(1097.0, tbl.SumZAbove(1.5))

	// every c == 2 is excluded, not just one of them
	assert.Equal(-3.0, tbl.SumZAbove(2))
	assert.Equal(-4.0, tbl.SumZAbove(3))
	assert.Equal(-4.0, tbl.SumZAbove(4.999))
	assert.Equal(0.0, tbl.SumZAbove(5))
	assert.Equal(0.0, tbl.SumZAbove(100))
	assert.Equal(1107.0, tbl.SumZAbove(math.Inf(-1)))
	assert.Equal(0.0, tbl.SumZAbove(math.NaN()))
}

func TestSuffixTableNaNKey(t *testing.T) {
	assert := assert.New(t)
	tbl := NewSuffixTable(relation.Relation{
		{Key: math.NaN(), Value: 7},
		{Key: 1, Value: 2},
	})
	assert.Equal(1, tbl.Len())
	assert.Equal(2.0, tbl.SumZAbove(0))
}

func TestSuffixTableInputUntouched(t *testing.T) {
	assert := assert.New(t)
	t3 := relation.Relation{{Key: 3, Value: 1}, {Key: 1, Value: 2}}
	NewSuffixTable(t3)
	assert.Equal(relation.Relation{{Key: 3, Value: 1}, {Key: 1, Value: 2}}, t3)
}

func TestSuffixTableBrute(t *testing.T) {
	assert := assert.New(t)
	t3 := randRelation(newRand(7), 200, 20)
	tbl := NewSuffixTable(t3)

	for th := -25.0; th <= 25.0; th += 0.5 {
		want := 0.0
		for _, p := range t3 {
			if p.Key > th {
				want += p.Value
			}
		}
		assert.InDelta(want, tbl.SumZAbove(th), tolerance(want), "threshold %v", th)
	}
}
