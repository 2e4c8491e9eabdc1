package engine

import (
	"math"
	"math/rand"

	"github.com/dianpeng/topjoin/relation"
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// keys are small integers so the relation carries plenty of duplicates and
// exact ties on the join predicate
func randRelation(
	r *rand.Rand,
	n int,
	span int,
) relation.Relation {
	out := make(relation.Relation, n)
	for i := range out {
		out[i] = relation.Pair{
			Key:   float64(r.Intn(2*span+1) - span),
			Value: math.Round((r.Float64()*20-10)*100) / 100,
		}
	}
	return out
}

func tolerance(v float64) float64 {
	return 1e-9 * math.Max(1, math.Abs(v))
}

func bruteCrossSum(
	a float64,
	t2 relation.Relation,
	t3 relation.Relation,
) float64 {
	sum := 0.0
	for _, l := range t2 {
		for _, r := range t3 {
			if a < l.Key+r.Key {
				sum += l.Value * r.Value
			}
		}
	}
	return sum
}

func bruteScore(
	t1 relation.Relation,
	t2 relation.Relation,
	t3 relation.Relation,
) map[float64]float64 {
	out := map[float64]float64{}
	for _, row := range t1 {
		out[row.Key] += row.Value * bruteCrossSum(row.Key, t2, t3)
	}
	return out
}
