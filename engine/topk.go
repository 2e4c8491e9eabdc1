package engine

import (
	"math"
	"sort"
)

// TopK orders the scored groups by s descending and returns the first k. Equal
// scores keep first-seen order of a in T1, which is the STABLE part of the
// ORDER BY. NaN scores are placed after every other score. The input is left
// untouched.
func TopK(
	scored []ScoredGroup,
	k int,
) []ScoredGroup {
	if k <= 0 {
		return []ScoredGroup{}
	}

	out := make([]ScoredGroup, len(scored))
	copy(out, scored)

	sort.SliceStable(out, func(i, j int) bool {
		return rankBefore(out[i], out[j])
	})

	if len(out) > k {
		out = out[:k]
	}
	return out
}

func rankBefore(l, r ScoredGroup) bool {
	ln, rn := math.IsNaN(l.S), math.IsNaN(r.S)
	switch {
	case ln && rn:
		return l.Rank < r.Rank
	case ln:
		return false
	case rn:
		return true
	case l.S != r.S:
		return l.S > r.S
	default:
		return l.Rank < r.Rank
	}
}
