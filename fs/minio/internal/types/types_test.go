package types

import (
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileInfo(t *testing.T) {
	now := time.Now()

	f := NewFile("a.txt", 12, now)
	assert.Equal(t, "a.txt", f.Name())
	assert.Equal(t, int64(12), f.Size())
	assert.False(t, f.IsDir())
	assert.True(t, f.Mode().IsRegular())
	assert.Equal(t, now, f.ModTime())
	assert.Nil(t, f.Sys())

	d := NewDir("dir", now)
	assert.True(t, d.IsDir())
	assert.Equal(t, fs.ModeDir, d.Mode().Type())
}

func TestDirEntry(t *testing.T) {
	e := NewDirEntry(NewDir("sub", time.Time{}))
	assert.Equal(t, "sub", e.Name())
	assert.True(t, e.IsDir())
	assert.Equal(t, fs.ModeDir, e.Type())

	info, err := e.Info()
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	f := NewDirEntry(NewFile("f", 1, time.Time{}))
	assert.False(t, f.IsDir())
	assert.Equal(t, fs.FileMode(0), f.Type())
}
