package cg

import (
	"strings"
	"text/template"
)

type tableScanGenRef struct {
	Arg  int // ARGV index of the file
	Key  string
	Val  string
	Size string
}

type tableScanGen struct {
	cg  *queryCodeGen
	Ref []tableScanGenRef
}

// FILENAME alone cannot tell 2 tables apart when the same path is passed
// twice, so the scan walks ARGV forward on every new file instead. An empty
// file never hits FNR == 1, the walk skips it by name.
const tableScanTemplate = `
BEGIN {
  # an uninitialized variable used as a subscript is "", not 0
  group_size = 0;
  tbl_arg = 0;
{{- range .}}
  {{.Size}} = 0;
{{- end}}
}

{
  sub(/\r$/, "");
}

FNR == 1 {
  for (tbl_arg++; tbl_arg < ARGC; tbl_arg++) {
    if (ARGV[tbl_arg] == FILENAME) break;
  }
}

NF > 0 {
{{- range .}}
  if (tbl_arg == {{.Arg}}) {
    {{.Key}}[{{.Size}}] = $1 + 0;
    {{.Val}}[{{.Size}}] = $2 + 0;
    {{.Size}}++;
    next;
  }
{{- end}}
}

END {
  join();
  output();
}
`

func newtemplate(
	xx string,
) (*template.Template, error) {
	return template.New("[template]").Parse(xx)
}

func (self *tableScanGen) gen() (string, error) {
	for i := 0; i < self.cg.tsSize(); i++ {
		self.Ref = append(self.Ref, tableScanGenRef{
			Arg:  i + 1,
			Key:  self.cg.varTableKey(i),
			Val:  self.cg.varTableVal(i),
			Size: self.cg.varTableSize(i),
		})
	}

	tmpl, e := newtemplate(tableScanTemplate)
	if e != nil {
		return "", err("tablescan", "%s", e)
	}
	buf := strings.Builder{}
	if e := tmpl.Execute(&buf, self.Ref); e != nil {
		return "", err("tablescan", "%s", e)
	}
	return strings.TrimSpace(buf.String()) + "\n", nil
}
