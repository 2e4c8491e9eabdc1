package cg

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Reference evaluator. The query is compiled into a plain nested loop AWK
// program, one loop per relation with the join filter a < b + c placed in the
// innermost loop, exactly as a naive planner would do it, and executed with
// goawk. It enumerates the full T2 x T3 product, O(N1 * N2 * N3), so it is
// only meant to cross check the engine on small inputs.
//
// The generated program has the following phases
//
// 1) TableScan
//    Each input file is scanned into 2 arrays, tbl_key_N and tbl_val_N, with
//    tblsize_N holding the row count. Blank lines are skipped.
//
// 2) Join
//    for (rid_0 = 0; rid_0 < tblsize_0; rid_0++) {
//      group by tbl_key_0[rid_0], assign rank on first sight
//      for (rid_1 = 0; rid_1 < tblsize_1; rid_1++) {
//        for (rid_2 = 0; rid_2 < tblsize_2; rid_2++) {
//          if (!(a < b + c)) continue;
//          agg[rank] += x * y * z;
//        }
//      }
//    }
//
// 3) Output
//    One "a s" line per group in first seen order, printed with %.17g so the
//    values round trip.

const (
	tableSize = 3 // T1, T2, T3
)

var ErrReference = errors.New("reference evaluation failure")

func err(stage string, f string, args ...interface{}) error {
	msg := fmt.Sprintf(f, args...)
	return errors.Wrapf(ErrReference, "stage(%s): %s", stage, msg)
}

type queryCodeGen struct {
	tsRef []tableScanGenRef
}

func (self *queryCodeGen) tsSize() int { return tableSize }

func (self *queryCodeGen) varTableKey(x int) string {
	return fmt.Sprintf("tbl_key_%d", x)
}

func (self *queryCodeGen) varTableVal(x int) string {
	return fmt.Sprintf("tbl_val_%d", x)
}

func (self *queryCodeGen) varTableSize(x int) string {
	return fmt.Sprintf("tblsize_%d", x)
}

func (self *queryCodeGen) varRID(x int) string {
	return fmt.Sprintf("rid_%d", x)
}

func (self *queryCodeGen) varAggTable() string {
	return "agg"
}

func (self *queryCodeGen) genTableScan() (string, error) {
	gen := &tableScanGen{
		cg: self,
	}
	code, e := gen.gen()
	if e != nil {
		return "", e
	}
	self.tsRef = gen.Ref
	return code, nil
}

func (self *queryCodeGen) genJoin() string {
	writer := newAwkWriter("join")
	gen := joinCodeGen{
		cg: self,
	}
	gen.genJoin(writer)
	return writer.Flush()
}

func (self *queryCodeGen) genOutput() string {
	writer := newAwkWriter("output")
	gen := outputCodeGen{
		cg: self,
	}
	gen.genOutput(writer)
	return writer.Flush()
}

func (self *queryCodeGen) Gen() (string, error) {
	buf := strings.Builder{}

	scan, e := self.genTableScan()
	if e != nil {
		return "", e
	}
	buf.WriteString(scan)
	buf.WriteString("\n")

	buf.WriteString(self.genJoin())
	buf.WriteString("\n")
	buf.WriteString(self.genOutput())
	return buf.String(), nil
}

// Generate returns the AWK source of the reference program.
func Generate() (string, error) {
	g := &queryCodeGen{}
	return g.Gen()
}
