package cg

import (
	"fmt"
	"strings"
)

// A small template writer used for *AWK* source code dump. Every line goes
// through a substitution pass where %[name] is replaced by ctx[name], and the
// writer keeps track of the indent level so the generated code stays readable
// when it is dumped for debugging.

type awkWriterCtx map[string]interface{}

type awkWriter struct {
	indent   int              // current indent level for formatting
	buf      *strings.Builder // function body
	local    []string         // locals, emitted as extra parameters
	localIdx map[string]bool  // used to dedup
	param    []string         // real parameters
	funcName string           // if this field is "", we are in global scope
}

func newAwkWriter(
	funcName string,
	param ...string,
) *awkWriter {
	return &awkWriter{
		indent:   1,
		buf:      &strings.Builder{},
		localIdx: make(map[string]bool),
		param:    param,
		funcName: funcName,
	}
}

func (self *awkWriter) Local(
	n string,
) string {
	if !self.localIdx[n] {
		self.localIdx[n] = true
		self.local = append(self.local, n)
	}
	return n
}

func (self *awkWriter) LocalN(
	prefix string,
	idx int,
) string {
	return self.Local(fmt.Sprintf("%s_%d", prefix, idx))
}

func (self *awkWriter) sub(
	l string,
	ctx awkWriterCtx,
) string {
	if ctx == nil {
		return l
	}
	buf := strings.Builder{}
	for {
		start := strings.Index(l, "%[")
		if start < 0 {
			buf.WriteString(l)
			break
		}
		end := strings.IndexByte(l[start:], ']')
		if end < 0 {
			panic(fmt.Sprintf("awk writer: unclosed substitution in %q", l))
		}
		name := l[start+2 : start+end]
		v, ok := ctx[name]
		if !ok {
			panic(fmt.Sprintf("awk writer: variable(%s) is not found", name))
		}
		buf.WriteString(l[:start])
		buf.WriteString(fmt.Sprintf("%v", v))
		l = l[start+end+1:]
	}
	return buf.String()
}

func (self *awkWriter) Line(
	l string,
	ctx awkWriterCtx,
) {
	self.buf.WriteString(strings.Repeat("  ", self.indent))
	self.buf.WriteString(self.sub(l, ctx))
	self.buf.WriteString("\n")
}

func (self *awkWriter) Chunk(
	c string,
	ctx awkWriterCtx,
) {
	for _, l := range strings.Split(strings.TrimSpace(c), "\n") {
		self.Line(strings.TrimRight(l, " \t"), ctx)
	}
}

func (self *awkWriter) For(
	l string,
	ctx awkWriterCtx,
) {
	self.Line(fmt.Sprintf("for (%s) {", l), ctx)
	self.indent++
}

func (self *awkWriter) ForEnd() {
	self.indent--
	self.Line("}", nil)
}

func (self *awkWriter) If(
	l string,
	ctx awkWriterCtx,
) {
	self.Line(fmt.Sprintf("if (%s) {", l), ctx)
	self.indent++
}

func (self *awkWriter) IfEnd() {
	self.indent--
	self.Line("}", nil)
}

func (self *awkWriter) Call(
	name string,
	arg []string,
) {
	self.Line(fmt.Sprintf("%s(%s);", name, strings.Join(arg, ", ")), nil)
}

// Flush generates the function, AWK has no local variable declaration, so
// locals are appended to the parameter list after a visual gap.
func (self *awkWriter) Flush() string {
	out := strings.Builder{}
	if self.funcName == "" {
		out.WriteString(self.buf.String())
		return out.String()
	}

	out.WriteString(fmt.Sprintf("function %s(", self.funcName))
	out.WriteString(strings.Join(self.param, ", "))
	if len(self.local) > 0 {
		if len(self.param) > 0 {
			out.WriteString(",")
		}
		out.WriteString("    ")
		out.WriteString(strings.Join(self.local, ", "))
	}
	out.WriteString(") {\n")
	out.WriteString(self.buf.String())
	out.WriteString("}\n")
	return out.String()
}
