package relation

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
)

const (
	defInitRowCap = 1024
	maxLineSize   = 1 << 20
)

// Load a relation file. Every non blank line must contain exactly two numbers,
// otherwise the whole file is rejected, dropping a row silently would corrupt
// the aggregate.
func Load(path string) (Relation, error) {
	f, e := os.Open(path)
	if e != nil {
		if os.IsNotExist(e) {
			return nil, err(ErrInputNotFound, "load", "%s: %s", path, e)
		}
		return nil, err(ErrInputUnreadable, "load", "%s: %s", path, e)
	}
	defer f.Close()

	out := make(Relation, 0, defInitRowCap)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		p, ok, e := lexPair(line, scanner.Text())
		if e != nil {
			return nil, errors.Wrap(e, path)
		}
		if ok {
			out = append(out, p)
		}
	}
	if e := scanner.Err(); e != nil {
		return nil, err(ErrInputUnreadable, "load", "%s: %s", path, e)
	}
	return out, nil
}
