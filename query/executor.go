package query

import (
	"context"
	"time"

	"github.com/dianpeng/topjoin/engine"
	"github.com/dianpeng/topjoin/output"
	"github.com/dianpeng/topjoin/relation"
	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"
)

// Input names the 3 relation files of the query.
type Input struct {
	T1 string // (a, x)
	T2 string // (b, y)
	T3 string // (c, z)
}

func (self Input) paths() [3]string {
	return [3]string{self.T1, self.T2, self.T3}
}

type Result struct {
	Rows     []engine.ScoredGroup // at most engine.Limit rows, ranked
	Groups   int                  // number of distinct a
	Size     [3]int               // row count of T1, T2, T3
	Verified bool                 // checked against the reference evaluator
}

type Executor struct {
	Config Config
	Log    logr.Logger
}

func NewExecutor(
	config Config,
	log logr.Logger,
) *Executor {
	return &Executor{
		Config: config,
		Log:    log,
	}
}

// state shared by the phases of one execution
type execution struct {
	t1     relation.Relation
	t2     relation.Relation
	t3     relation.Relation
	table  *engine.SuffixTable
	groups []engine.Group
	scored []engine.ScoredGroup
}

// run a phase body and turn a panic into a computation failure of that phase
func guard(
	stage string,
	fn func() error,
) (e error) {
	defer func() {
		if r := recover(); r != nil {
			e = err(ErrComputation, stage, "%v", r)
		}
	}()
	return fn()
}

// load phase: T3 is turned into the suffix table and T1 into groups as soon
// as each of them is parsed, T2 is only loaded. The 3 branches share nothing.
func (self *Executor) load(
	ctx context.Context,
	in Input,
	x *execution,
) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return guard("load-t3", func() error {
			t3, e := relation.Load(in.T3)
			if e != nil {
				return e
			}
			x.t3 = t3
			x.table = engine.NewSuffixTable(t3)
			return ctx.Err()
		})
	})

	g.Go(func() error {
		return guard("load-t1", func() error {
			t1, e := relation.Load(in.T1)
			if e != nil {
				return e
			}
			x.t1 = t1
			x.groups = engine.GroupBy(t1)
			return ctx.Err()
		})
	})

	g.Go(func() error {
		return guard("load-t2", func() error {
			t2, e := relation.Load(in.T2)
			if e != nil {
				return e
			}
			x.t2 = t2
			return ctx.Err()
		})
	})

	return g.Wait()
}

// Run evaluates the query and returns the ranked rows without writing them.
func (self *Executor) Run(
	ctx context.Context,
	in Input,
) (*Result, error) {
	if e := self.Config.Validate(); e != nil {
		return nil, e
	}
	log := self.Log.WithValues("t1", in.T1, "t2", in.T2, "t3", in.T3)
	x := &execution{}

	start := time.Now()
	if e := self.load(ctx, in, x); e != nil {
		return nil, e
	}
	log.V(1).Info(
		"phase done",
		"phase", "load",
		"rows", []int{len(x.t1), len(x.t2), len(x.t3)},
		"groups", len(x.groups),
		"elapsed", time.Since(start),
	)

	start = time.Now()
	scored, e := engine.Join(ctx, x.groups, x.t2, x.table, self.Config.joinOptions())
	if e != nil {
		return nil, e
	}
	x.scored = scored
	log.V(1).Info(
		"phase done",
		"phase", "join",
		"groups", len(scored),
		"elapsed", time.Since(start),
	)

	out := &Result{
		Rows:   engine.TopK(x.scored, engine.Limit),
		Groups: len(x.groups),
		Size:   [3]int{len(x.t1), len(x.t2), len(x.t3)},
	}

	if self.Config.Verify {
		start = time.Now()
		ok, e := self.verify(in, x)
		if e != nil {
			return nil, e
		}
		out.Verified = ok
		log.V(1).Info(
			"phase done",
			"phase", "verify",
			"verified", ok,
			"elapsed", time.Since(start),
		)
	}
	return out, nil
}

// Select evaluates the query and writes the result file. Nothing is written
// unless every phase succeeded.
func (self *Executor) Select(
	ctx context.Context,
	in Input,
	path string,
) (*Result, error) {
	res, e := self.Run(ctx, in)
	if e != nil {
		self.Log.Error(e, "query failed", "stage", Stage(e))
		return nil, e
	}

	start := time.Now()
	if e := output.WriteFile(path, res.Rows); e != nil {
		self.Log.Error(e, "query failed", "stage", Stage(e))
		return nil, e
	}
	self.Log.V(1).Info("phase done", "phase", "write", "elapsed", time.Since(start))
	self.Log.Info("query done", "output", path, "rows", len(res.Rows), "groups", res.Groups)
	return res, nil
}

// Select runs the query with the default config and no logging.
func Select(
	ctx context.Context,
	t1 string,
	t2 string,
	t3 string,
	path string,
) error {
	_, e := NewExecutor(DefaultConfig(), logr.Discard()).Select(
		ctx,
		Input{T1: t1, T2: t2, T3: t3},
		path,
	)
	return e
}
