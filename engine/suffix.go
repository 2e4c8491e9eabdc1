package engine

import (
	"math"
	"sort"

	"github.com/dianpeng/topjoin/relation"
)

// SuffixTable answers "sum of z over every T3 row with c > threshold" in
// O(log N3). It is built once and only read afterwards, so it is safe to share
// between workers without synchronization.
type SuffixTable struct {
	c      []float64 // T3 keys, ascending
	suffix []float64 // suffix[i] = z[i] + z[i+1] + ..., suffix[len(c)] = 0
}

func NewSuffixTable(t3 relation.Relation) *SuffixTable {
	sorted := make(relation.Relation, 0, len(t3))
	for _, p := range t3 {
		// c > threshold never holds for a NaN c, and NaN breaks the ordering
		if !math.IsNaN(p.Key) {
			sorted = append(sorted, p)
		}
	}

	// stable, so duplicated c keep file order and the summation order is
	// deterministic from run to run
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})

	out := &SuffixTable{
		c:      make([]float64, len(sorted)),
		suffix: make([]float64, len(sorted)+1),
	}
	for i, p := range sorted {
		out.c[i] = p.Key
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		out.suffix[i] = out.suffix[i+1] + sorted[i].Value
	}
	return out
}

func (self *SuffixTable) Len() int { return len(self.c) }

// index of the first entry whose c is strictly greater than threshold, every
// entry equal to threshold is skipped
func (self *SuffixTable) upperBound(threshold float64) int {
	return sort.Search(len(self.c), func(i int) bool {
		return self.c[i] > threshold
	})
}

func (self *SuffixTable) SumZAbove(threshold float64) float64 {
	return self.suffix[self.upperBound(threshold)]
}
