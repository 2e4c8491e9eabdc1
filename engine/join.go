package engine

import (
	"context"
	"runtime"

	"github.com/dianpeng/topjoin/relation"
	"golang.org/x/sync/errgroup"
)

const (
	defChunkSize = 64
)

type JoinOptions struct {
	Workers   int // size of the worker pool, <= 0 means GOMAXPROCS
	ChunkSize int // number of groups per task, <= 0 means a default
}

func (self JoinOptions) workers() int {
	if self.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return self.Workers
}

func (self JoinOptions) chunkSize() int {
	if self.ChunkSize <= 0 {
		return defChunkSize
	}
	return self.ChunkSize
}

// CrossSum of a single a value:
//
//	sum over (b, y) in T2 of y * (sum of z in T3 where c > a - b)
//
// which equals the sum of y*z over every (b, c) pair with a < b + c.
func CrossSum(
	a float64,
	t2 relation.Relation,
	table *SuffixTable,
) float64 {
	sum := 0.0
	for _, row := range t2 {
		sum += row.Value * table.SumZAbove(a-row.Key)
	}
	return sum
}

func score(
	g Group,
	t2 relation.Relation,
	table *SuffixTable,
) ScoredGroup {
	return ScoredGroup{
		A:    g.A,
		S:    g.XSum * CrossSum(g.A, t2, table),
		Rank: g.Rank,
	}
}

// Join scores every group. The work is a pure map over the groups, T2 and the
// suffix table are read only, and each group writes to its own slot of the
// output, indexed by its position in groups. If any worker fails the rest of
// the phase is cancelled and the partial output is dropped.
func Join(
	ctx context.Context,
	groups []Group,
	t2 relation.Relation,
	table *SuffixTable,
	opt JoinOptions,
) ([]ScoredGroup, error) {
	out := make([]ScoredGroup, len(groups))
	chunk := opt.chunkSize()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opt.workers())

	for start := 0; start < len(groups); start += chunk {
		end := start + chunk
		if end > len(groups) {
			end = len(groups)
		}
		lo, hi := start, end

		// stop scheduling once a worker has failed
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			return joinChunk(gctx, groups, t2, table, out, lo, hi)
		})
	}

	if e := g.Wait(); e != nil {
		return nil, e
	}
	if e := ctx.Err(); e != nil {
		return nil, e
	}
	return out, nil
}

func joinChunk(
	ctx context.Context,
	groups []Group,
	t2 relation.Relation,
	table *SuffixTable,
	out []ScoredGroup,
	lo int,
	hi int,
) (e error) {
	defer func() {
		if r := recover(); r != nil {
			e = err(ErrComputation, "join", "groups [%d, %d): %v", lo, hi, r)
		}
	}()

	for i := lo; i < hi; i++ {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		out[i] = score(groups[i], t2, table)
	}
	return nil
}
