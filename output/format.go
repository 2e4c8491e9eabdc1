package output

import (
	"math"
	"strconv"
	"strings"

	"github.com/dianpeng/topjoin/engine"
	"github.com/shopspring/decimal"
)

// number of digits after the decimal point of every emitted number
const Places = 6

// Number rounds v half away from zero to 6 places and prints exactly 6
// fractional digits. The decimal is built from the shortest representation
// that round trips v, so 0.0000005 rounds up to 0.000001 as written.
func Number(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return decimal.NewFromFloat(v).StringFixed(Places)
}

// Format renders the result file: the row count on the first line, then one
// "a s" line per row.
func Format(rows []engine.ScoredGroup) []byte {
	buf := strings.Builder{}
	buf.WriteString(strconv.Itoa(len(rows)))
	buf.WriteString("\n")
	for _, r := range rows {
		buf.WriteString(Number(r.A))
		buf.WriteString(" ")
		buf.WriteString(Number(r.S))
		buf.WriteString("\n")
	}
	return []byte(buf.String())
}
