package inspect

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/fsinspect/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical_Memory(t *testing.T) {
	in, fsys := newMemory(t)
	require.NoError(t, fsys.MkdirAll("/real/dir", 0o755))
	writeFile(t, fsys, "/real/dir/file.txt", "x")
	symlink(t, fsys, "/real", "/abs-link")
	symlink(t, fsys, "dir", "/real/rel-link")
	symlink(t, fsys, "../real/dir/file.txt", "/real/up-link")
	symlink(t, fsys, "/abs-link/rel-link", "/chain")

	tests := map[string]string{
		"/real/dir/file.txt":    "/real/dir/file.txt",
		"/abs-link/dir":         "/real/dir",
		"/real/rel-link":        "/real/dir",
		"/real/up-link":         "/real/dir/file.txt",
		"/chain/file.txt":       "/real/dir/file.txt",
		"/real/./dir/../dir":    "/real/dir",
		"real/dir":              "/real/dir",
		"/abs-link/rel-link/..": "/real",
	}
	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			got, err := in.Canonical(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestCanonical_DotDotAfterLink(t *testing.T) {
	in, fsys := newMemory(t)
	require.NoError(t, fsys.MkdirAll("/other/real", 0o755))
	require.NoError(t, fsys.MkdirAll("/t/sub", 0o755))
	symlink(t, fsys, "/other/real", "/t/sub/ld")
	symlink(t, fsys, "../../other/real", "/t/sub/rel")

	tests := map[string]string{
		"/t/sub/ld/..":        "/other",
		"/t/sub/rel/..":       "/other",
		"/t/sub/ld/../real":   "/other/real",
		"t/sub/ld/..":         "/other",
		"/t/sub/../sub/ld/..": "/other",
	}
	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			got, err := in.Canonical(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	scoped := New(fsys, WithWorkDir("/t/sub"))
	got, err := scoped.Canonical("ld/..")
	require.NoError(t, err)
	assert.Equal(t, "/other", got)
}

func TestCanonical_Missing(t *testing.T) {
	in, fsys := newMemory(t)
	writeFile(t, fsys, "/file", "x")
	symlink(t, fsys, "/nowhere", "/dangling")

	for _, p := range []string{"/missing", "/missing/below", "/dangling", "/file/below"} {
		_, err := in.Canonical(p)
		require.Error(t, err, p)
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err), p)
	}
}

func TestCanonical_TooManyLinks(t *testing.T) {
	in, fsys := newMemory(t)
	symlink(t, fsys, "/b", "/a")
	symlink(t, fsys, "/a", "/b")

	_, err := in.Canonical("/a")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))
	assert.Contains(t, err.Error(), "too many levels of symbolic links")
	assert.Equal(t, "/a", errors.GetPath(err))
}

func TestCanonical_LongChainWithinLimit(t *testing.T) {
	in, fsys := newMemory(t)
	require.NoError(t, fsys.MkdirAll("/end", 0o755))

	prev := "/end"
	for n := 0; n < maxSymlinks; n++ {
		link := fmt.Sprintf("/l%d", n)
		symlink(t, fsys, prev, link)
		prev = link
	}

	got, err := in.Canonical(prev)
	require.NoError(t, err)
	assert.Equal(t, "/end", got)

	symlink(t, fsys, prev, "/over")
	_, err = in.Canonical("/over")
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))
}

func TestCanonical_WithoutSymlinkSupport(t *testing.T) {
	_, mem := newMemory(t)
	require.NoError(t, mem.MkdirAll("/a/b", 0o755))
	in := New(plainFS{mem})

	got, err := in.Canonical("/a/./b/")
	require.NoError(t, err)
	assert.Equal(t, "/a/b", got)

	_, err = in.Canonical("/a/c")
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestCanonical_Local(t *testing.T) {
	in, dir := newLocal(t)
	realDir := filepath.Join(dir, "real")
	require.NoError(t, os.MkdirAll(realDir, 0o755))
	require.NoError(t, os.Symlink("real", filepath.Join(dir, "alias")))

	want, err := filepath.EvalSymlinks(realDir)
	require.NoError(t, err)

	got, err := in.Canonical("alias")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCanonical_LocalDotDotAfterLink(t *testing.T) {
	in, dir := newLocal(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "other", "real"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "t", "sub"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(dir, "other", "real"), filepath.Join(dir, "t", "sub", "ld")))

	want, err := filepath.EvalSymlinks(filepath.Join(dir, "t", "sub", "ld", ".."))
	require.NoError(t, err)

	got, err := in.Canonical("t/sub/ld/..")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	otherDir, err := filepath.EvalSymlinks(filepath.Join(dir, "other"))
	require.NoError(t, err)
	assert.Equal(t, otherDir, got)
}
