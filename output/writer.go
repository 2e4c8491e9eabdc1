package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dianpeng/topjoin/engine"
	"github.com/pkg/errors"
)

var ErrOutputWrite = errors.New("output write failure")

func err(stage string, f string, args ...interface{}) error {
	msg := fmt.Sprintf(f, args...)
	return errors.Wrapf(ErrOutputWrite, "stage(%s): %s", stage, msg)
}

// WriteFile stores the formatted rows at path. The data goes to a temporary
// file next to path which is renamed over it once fully synced, a failed write
// never leaves a readable partial result behind.
func WriteFile(
	path string,
	rows []engine.ScoredGroup,
) error {
	return writeAtomic(path, Format(rows))
}

func writeAtomic(
	path string,
	data []byte,
) (e error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, e := os.CreateTemp(dir, "."+base+".tmp-*")
	if e != nil {
		return err("create", "%s: %s", path, e)
	}
	tmp := f.Name()

	defer func() {
		if e != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if _, e := f.Write(data); e != nil {
		return err("write", "%s: %s", tmp, e)
	}
	if e := f.Sync(); e != nil {
		return err("sync", "%s: %s", tmp, e)
	}
	if e := f.Chmod(0644); e != nil {
		return err("chmod", "%s: %s", tmp, e)
	}
	if e := f.Close(); e != nil {
		return err("close", "%s: %s", tmp, e)
	}
	if e := os.Rename(tmp, path); e != nil {
		return err("rename", "%s -> %s: %s", tmp, path, e)
	}
	return nil
}
