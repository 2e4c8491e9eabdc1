package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dianpeng/topjoin/engine"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestWriteFile(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	p := filepath.Join(dir, "result")

	assert.NoError(WriteFile(p, []engine.ScoredGroup{{A: 1, S: 2}}))
	data, e := os.ReadFile(p)
	assert.NoError(e)
	assert.Equal("1\n1.000000 2.000000\n", string(data))

	// overwrite
	assert.NoError(WriteFile(p, nil))
	data, e = os.ReadFile(p)
	assert.NoError(e)
	assert.Equal("0\n", string(data))

	// no temporary file left over
	entries, e := os.ReadDir(dir)
	assert.NoError(e)
	assert.Equal(1, len(entries))
}

func TestWriteFileError(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	p := filepath.Join(dir, "missing", "result")
	e := WriteFile(p, nil)
	assert.True(errors.Is(e, ErrOutputWrite))
	_, se := os.Stat(p)
	assert.True(os.IsNotExist(se))

	// target is a directory, rename fails and the temp file is cleaned up
	target := filepath.Join(dir, "isdir")
	assert.NoError(os.Mkdir(target, 0755))
	assert.NoError(os.WriteFile(filepath.Join(target, "x"), nil, 0644))
	e = WriteFile(target, nil)
	assert.True(errors.Is(e, ErrOutputWrite))

	entries, _ := os.ReadDir(dir)
	assert.Equal(1, len(entries))
}
