package cg

type outputCodeGen struct {
	cg *queryCodeGen
}

func (self *outputCodeGen) genOutput(writer *awkWriter) {
	writer.For(
		"%[i] = 0; %[i] < group_size; %[i]++",
		awkWriterCtx{
			"i": writer.Local("i"),
		},
	)
	writer.Line(
		`printf("%.17g %.17g\n", group_key[%[i]], %[agg][%[i]]);`,
		awkWriterCtx{
			"i":   "i",
			"agg": self.cg.varAggTable(),
		},
	)
	writer.ForEnd()
}
