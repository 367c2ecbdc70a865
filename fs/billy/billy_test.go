package billy

import (
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strconv"
	"syscall"
	"testing"

	"github.com/jmgilman/go/fsinspect/fs/core"
	"github.com/jmgilman/go/fsinspect/fs/fstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFS_Conformance(t *testing.T) {
	fstest.TestSuite(t, func() core.FS {
		return NewMemory()
	})
}

func TestLocalFS_Conformance(t *testing.T) {
	fstest.TestSuite(t, func() core.FS {
		return NewLocal(WithRoot(t.TempDir()))
	})
}

func TestType(t *testing.T) {
	assert.Equal(t, core.FSTypeLocal, NewLocal().Type())
	assert.Equal(t, core.FSTypeMemory, NewMemory().Type())
}

func TestUnwrap(t *testing.T) {
	fs := NewMemory()
	bfs := fs.Unwrap()
	require.NotNil(t, bfs)

	f, err := bfs.Create("/direct.txt")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	ok, err := fs.Exists("/direct.txt")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLocalFS_WithRoot(t *testing.T) {
	dir := t.TempDir()
	fs := NewLocal(WithRoot(dir))

	require.NoError(t, fs.WriteFile("/inside.txt", []byte("data"), 0o644))

	data, err := os.ReadFile(filepath.Join(dir, "inside.txt"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}

func TestMemoryFS_ErrorsArePathErrors(t *testing.T) {
	fs := NewMemory()

	_, err := fs.Stat("/missing")
	var pe *iofs.PathError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "stat", pe.Op)
	assert.Equal(t, "/missing", pe.Path)
	assert.ErrorIs(t, err, iofs.ErrNotExist)

	_, err = fs.Readlink("/missing")
	require.ErrorAs(t, err, &pe)
	assert.ErrorIs(t, err, iofs.ErrNotExist)
}

func TestMemoryFS_LstatSymlink(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.WriteFile("/target", []byte("x"), 0o644))
	require.NoError(t, fs.Symlink("/target", "/link"))

	info, err := fs.Lstat("/link")
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&iofs.ModeSymlink)

	info, err = fs.Stat("/link")
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
}

func TestMemoryFS_SymlinkLoop(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.Symlink("/b", "/a"))
	require.NoError(t, fs.Symlink("/a", "/b"))

	_, err := fs.Stat("/a")
	var pe *iofs.PathError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "/a", pe.Path)
	assert.ErrorIs(t, err, syscall.ELOOP)

	_, err = fs.Open("/a")
	assert.ErrorIs(t, err, syscall.ELOOP)
	_, err = fs.OpenFile("/b", os.O_WRONLY|os.O_CREATE, 0o644)
	assert.ErrorIs(t, err, syscall.ELOOP)
	_, err = fs.ReadDir("/a")
	assert.ErrorIs(t, err, syscall.ELOOP)

	ok, err := fs.Exists("/a")
	assert.False(t, ok)
	assert.ErrorIs(t, err, syscall.ELOOP)
}

func TestMemoryFS_SymlinkChainLimit(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.WriteFile("/l0", []byte("end"), 0o644))
	for i := 1; i <= maxSymlinks+1; i++ {
		require.NoError(t, fs.Symlink("/l"+strconv.Itoa(i-1), "/l"+strconv.Itoa(i)))
	}

	data, err := fs.ReadFile("/l" + strconv.Itoa(maxSymlinks))
	require.NoError(t, err)
	assert.Equal(t, "end", string(data))

	_, err = fs.Stat("/l" + strconv.Itoa(maxSymlinks+1))
	assert.ErrorIs(t, err, syscall.ELOOP)
}

func TestMemoryFS_CreateThroughDanglingLink(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.MkdirAll("/dir", 0o755))
	require.NoError(t, fs.Symlink("dir/target", "/link"))

	require.NoError(t, fs.WriteFile("/link", []byte("via link"), 0o644))

	data, err := fs.ReadFile("/dir/target")
	require.NoError(t, err)
	assert.Equal(t, "via link", string(data))
}

func TestFile_SeekAndStat(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.WriteFile("/seek.txt", []byte("0123456789"), 0o644))

	f, err := fs.Open("/seek.txt")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	bf, ok := f.(*File)
	require.True(t, ok)
	assert.Equal(t, "/seek.txt", bf.Name())

	pos, err := bf.Seek(5, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(5), pos)

	rest, err := io.ReadAll(bf)
	require.NoError(t, err)
	assert.Equal(t, "56789", string(rest))

	info, err := bf.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(10), info.Size())
}
