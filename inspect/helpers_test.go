package inspect

import (
	"testing"

	"github.com/jmgilman/go/fsinspect/fs/billy"
	"github.com/jmgilman/go/fsinspect/fs/core"
	"github.com/stretchr/testify/require"
)

// plainFS hides the optional capabilities of the wrapped provider.
type plainFS struct {
	core.FS
}

func newMemory(t *testing.T) (*Inspector, *billy.MemoryFS) {
	t.Helper()
	fsys := billy.NewMemory()
	return New(fsys), fsys
}

func newLocal(t *testing.T) (*Inspector, string) {
	t.Helper()
	dir := t.TempDir()
	return New(billy.NewLocal(), WithWorkDir(dir)), dir
}

func writeFile(t *testing.T, fsys core.FS, name, content string) {
	t.Helper()
	require.NoError(t, fsys.WriteFile(name, []byte(content), 0o644))
}

func symlink(t *testing.T, fsys core.FS, target, link string) {
	t.Helper()
	sfs, ok := fsys.(core.SymlinkFS)
	require.True(t, ok)
	require.NoError(t, sfs.Symlink(target, link))
}
