package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dianpeng/topjoin/engine"
	"github.com/fatih/color"
)

const outputAlign = 16

type printer struct {
	title  *color.Color
	border *color.Color
	rank   *color.Color
	pos    *color.Color
	neg    *color.Color
}

func newPrinter(colored bool) *printer {
	p := &printer{
		title:  color.New(color.Bold, color.Underline),
		border: color.New(color.FgWhite),
		rank:   color.New(color.FgCyan),
		pos:    color.New(color.FgGreen),
		neg:    color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.title, p.border, p.rank, p.pos, p.neg} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat(" ", n-len(s)) + s
}

func (self *printer) score(v float64, s string) string {
	switch {
	case v > 0:
		return self.pos.Sprint(s)
	case v < 0:
		return self.neg.Sprint(s)
	default:
		return s
	}
}

// Print writes a human readable table of the result rows. Numbers use the same
// rounding as the result file. The column is widened when a number does not
// fit the default alignment.
func Print(
	w io.Writer,
	rows []engine.ScoredGroup,
	colored bool,
) error {
	p := newPrinter(colored)

	width := outputAlign
	cells := make([][2]string, len(rows))
	for i, r := range rows {
		cells[i] = [2]string{Number(r.A), Number(r.S)}
		for _, c := range cells[i] {
			if len(c)+1 > width {
				width = len(c) + 1
			}
		}
	}

	sep := p.border.Sprint(" | ")
	if _, e := fmt.Fprintf(
		w,
		"%s%s%s%s%s\n",
		p.title.Sprint(pad("#", 4)),
		sep,
		p.title.Sprint(pad("a", width)),
		sep,
		p.title.Sprint(pad("s", width)),
	); e != nil {
		return e
	}

	for i, r := range rows {
		if _, e := fmt.Fprintf(
			w,
			"%s%s%s%s%s\n",
			p.rank.Sprint(pad(fmt.Sprintf("%d", i+1), 4)),
			sep,
			pad(cells[i][0], width),
			sep,
			p.score(r.S, pad(cells[i][1], width)),
		); e != nil {
			return e
		}
	}

	_, e := fmt.Fprintf(w, "(%d rows)\n", len(rows))
	return e
}
