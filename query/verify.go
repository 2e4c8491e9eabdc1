package query

import (
	"math"

	"github.com/dianpeng/topjoin/cg"
)

func (self *Executor) pairs(x *execution) int64 {
	n := [3]int64{int64(len(x.t1)), int64(len(x.t2)), int64(len(x.t3))}
	limit := self.Config.VerifyMaxPairs
	total := int64(1)
	for _, v := range n {
		if v == 0 {
			return 0
		}
		if total > limit/v {
			return limit + 1
		}
		total *= v
	}
	return total
}

func (self *Executor) close(l, r float64) bool {
	if l == r {
		return true
	}
	if math.IsNaN(l) || math.IsNaN(r) {
		return math.IsNaN(l) && math.IsNaN(r)
	}
	tol := self.Config.VerifyTolerance * math.Max(1, math.Max(math.Abs(l), math.Abs(r)))
	return math.Abs(l-r) <= tol
}

// verify recomputes every group with the nested loop reference evaluator and
// compares it with the engine's scores. Returns false if the input is too
// large to be checked.
func (self *Executor) verify(
	in Input,
	x *execution,
) (bool, error) {
	if n := self.pairs(x); n > self.Config.VerifyMaxPairs {
		self.Log.Info(
			"verification skipped, input too large",
			"limit", self.Config.VerifyMaxPairs,
		)
		return false, nil
	}

	rows, e := cg.Run(in.paths())
	if e != nil {
		return false, err(ErrVerification, "verify", "%s", e)
	}
	if len(rows) != len(x.scored) {
		return false, err(
			ErrVerification,
			"verify",
			"group count mismatch, engine %d, reference %d",
			len(x.scored),
			len(rows),
		)
	}
	for i, r := range rows {
		sg := x.scored[i]
		if !self.close(sg.A, r.A) || !self.close(sg.S, r.S) {
			return false, err(
				ErrVerification,
				"verify",
				"group %d mismatch, engine (%v, %v), reference (%v, %v)",
				i,
				sg.A,
				sg.S,
				r.A,
				r.S,
			)
		}
	}
	return true, nil
}
