package cg

import (
	"fmt"
)

// ----------------------------------------------------------------------------
// Join function body's code generation. The outer loop walks T1 and performs
// the group by on the fly, the 2 inner loops enumerate T2 x T3 and apply the
// join filter. A group is registered before the inner loops run, so a group
// without a single matching (b, c) still shows up with a zero aggregate,
// which is the LEFT JOIN semantic.

type joinCodeGen struct {
	cg *queryCodeGen
}

func (self *joinCodeGen) ref(idx int) *tableScanGenRef {
	return &self.cg.tsRef[idx]
}

func (self *joinCodeGen) genGroupBy(
	writer *awkWriter,
) {
	ctx := awkWriterCtx{
		"key": writer.Local("key"),
		"a":   fmt.Sprintf("%s[%s]", self.ref(0).Key, self.cg.varRID(0)),
	}
	writer.Line(`%[key] = sprintf("%.17g", %[a]);`, ctx)
	writer.If(`!(%[key] in group_rank)`, ctx)
	writer.Chunk(
		`
group_rank[%[key]] = group_size;
group_key[group_size] = %[a];
%[agg][group_size] = 0;
group_size++;
`,
		awkWriterCtx{
			"key": ctx["key"],
			"a":   ctx["a"],
			"agg": self.cg.varAggTable(),
		},
	)
	writer.IfEnd()
}

func (self *joinCodeGen) genLoop(
	idx int,
	writer *awkWriter,
) {
	writer.For(
		"%[rid] = 0; %[rid] < %[size]; %[rid]++",
		awkWriterCtx{
			"rid":  writer.Local(self.cg.varRID(idx)),
			"size": self.ref(idx).Size,
		},
	)
}

func (self *joinCodeGen) col(
	idx int,
	key bool,
) string {
	arr := self.ref(idx).Val
	if key {
		arr = self.ref(idx).Key
	}
	return fmt.Sprintf("%s[%s]", arr, self.cg.varRID(idx))
}

func (self *joinCodeGen) genInnerJoin(
	writer *awkWriter,
) {
	// a < b + c
	writer.Line(
		"if (!(%[a] < %[b] + %[c])) continue;",
		awkWriterCtx{
			"a": self.col(0, true),
			"b": self.col(1, true),
			"c": self.col(2, true),
		},
	)
	// SUM(x * y * z)
	writer.Line(
		"%[agg][group_rank[key]] += %[x] * %[y] * %[z];",
		awkWriterCtx{
			"agg": self.cg.varAggTable(),
			"x":   self.col(0, false),
			"y":   self.col(1, false),
			"z":   self.col(2, false),
		},
	)
}

func (self *joinCodeGen) genJoin(writer *awkWriter) {
	self.genLoop(0, writer)
	self.genGroupBy(writer)

	for idx := 1; idx < self.cg.tsSize(); idx++ {
		self.genLoop(idx, writer)
	}

	self.genInnerJoin(writer)

	for idx := 0; idx < self.cg.tsSize(); idx++ {
		writer.ForEnd()
	}
}
