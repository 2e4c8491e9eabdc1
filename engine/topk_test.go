package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ranks(x []ScoredGroup) []int {
	out := []int{}
	for _, v := range x {
		out = append(out, v.Rank)
	}
	return out
}

func TestTopKOrder(t *testing.T) {
	assert := assert.New(t)

	in := []ScoredGroup{
		{A: 1, S: 10, Rank: 0},
		{A: 3, S: 20, Rank: 1},
		{A: 2, S: -5, Rank: 2},
		{A: 9, S: 0, Rank: 3},
	}
	out := TopK(in, Limit)
	assert.Equal([]int{1, 0, 3, 2}, ranks(out))

	// input untouched
	assert.Equal([]int{0, 1, 2, 3}, ranks(in))
}

func TestTopKStable(t *testing.T) {
	assert := assert.New(t)

	// scores tie, first seen wins, regardless of slot order
	in := []ScoredGroup{
		{A: 5, S: 1, Rank: 4},
		{A: 7, S: 2, Rank: 3},
		{A: 1, S: 1, Rank: 0},
		{A: 4, S: 2, Rank: 1},
		{A: 6, S: 1, Rank: 2},
	}
	assert.Equal([]int{1, 3, 0, 2, 4}, ranks(TopK(in, Limit)))
}

func TestTopKLimit(t *testing.T) {
	assert := assert.New(t)

	in := []ScoredGroup{}
	for i := 0; i < 25; i++ {
		in = append(in, ScoredGroup{A: float64(i), S: float64(i % 7), Rank: i})
	}
	out := TopK(in, Limit)
	assert.Equal(Limit, len(out))
	assert.Equal([]int{6, 13, 20, 5, 12, 19, 4, 11, 18, 3}, ranks(out))

	assert.Equal(3, len(TopK(in[:3], Limit)))
	assert.Equal(0, len(TopK(nil, Limit)))
	assert.Equal(0, len(TopK(in, 0)))
}

func TestTopKNaN(t *testing.T) {
	assert := assert.New(t)

	in := []ScoredGroup{
		{S: math.NaN(), Rank: 0},
		{S: -1, Rank: 1},
		{S: math.NaN(), Rank: 2},
		{S: math.Inf(1), Rank: 3},
	}
	assert.Equal([]int{3, 1, 0, 2}, ranks(TopK(in, Limit)))
}
