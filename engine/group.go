package engine

import (
	"github.com/dianpeng/topjoin/relation"
)

// GroupBy performs the hash based group by of T1 in a single pass. The key is
// the raw float64 a, no epsilon is applied: two rows belong to the same group
// iff their a compare equal. The returned groups are in first-seen order, ie
// groups[i].Rank == i.
func GroupBy(t1 relation.Relation) []Group {
	index := make(map[float64]int)
	out := []Group{}

	for _, row := range t1 {
		if idx, ok := index[row.Key]; ok {
			out[idx].XSum += row.Value
			continue
		}
		rank := len(out)
		index[row.Key] = rank
		out = append(out, Group{
			A:    row.Key,
			XSum: row.Value,
			Rank: rank,
		})
	}
	return out
}
