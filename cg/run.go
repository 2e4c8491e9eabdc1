package cg

import (
	"bufio"
	"path/filepath"
	"strconv"
	"strings"

	gawki "github.com/benhoyt/goawk/interp"
	gawkp "github.com/benhoyt/goawk/parser"
)

// Row is one group produced by the reference program, in first seen order.
type Row struct {
	A float64
	S float64
}

// awk treats an argument shaped like name=value as a variable assignment
// rather than a file, a relative path is anchored with ./ to avoid that
func argPath(p string) string {
	if filepath.IsAbs(p) || strings.HasPrefix(p, ".") {
		return p
	}
	return "." + string(filepath.Separator) + p
}

// Run executes the reference program against the 3 relation files, in T1, T2,
// T3 order, and returns one row per distinct a.
func Run(paths [3]string) ([]Row, error) {
	code, e := Generate()
	if e != nil {
		return nil, e
	}

	prog, e := gawkp.ParseProgram(
		[]byte(code),
		nil,
	)
	if e != nil {
		return nil, err("parse", "%s", e)
	}

	interp, e := gawki.New(prog)
	if e != nil {
		return nil, err("interp", "%s", e)
	}

	args := make([]string, 0, len(paths))
	for _, p := range paths {
		args = append(args, argPath(p))
	}

	buf := strings.Builder{}
	config := &gawki.Config{
		Output: &buf,
		Args:   args,
	}
	status, e := interp.Execute(config)
	if e != nil {
		return nil, err("execute", "%s", e)
	}
	if status != 0 {
		return nil, err("execute", "exit status %d", status)
	}
	return parseRows(buf.String())
}

func parseRows(data string) ([]Row, error) {
	out := []Row{}
	scanner := bufio.NewScanner(strings.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		f := strings.Fields(scanner.Text())
		if len(f) != 2 {
			return nil, err("output", "line %d: expect 2 fields, got %d", line, len(f))
		}
		a, e := strconv.ParseFloat(f[0], 64)
		if e != nil {
			return nil, err("output", "line %d: %s", line, e)
		}
		s, e := strconv.ParseFloat(f[1], 64)
		if e != nil {
			return nil, err("output", "line %d: %s", line, e)
		}
		out = append(out, Row{A: a, S: s})
	}
	return out, nil
}
