package inspect

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/jmgilman/go/fsinspect/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(results []Descriptor) []string {
	out := make([]string, 0, len(results))
	for _, d := range results {
		out = append(out, d.Name())
	}
	return out
}

func TestWalkTree_FileAndEmptyDir(t *testing.T) {
	in, fsys := newMemory(t)
	require.NoError(t, fsys.MkdirAll("/root/b", 0o755))
	writeFile(t, fsys, "/root/a.txt", "a")

	report, err := in.WalkTree("/root")
	require.NoError(t, err)
	assert.Equal(t, "/root", report.Path())
	assert.True(t, report.Exists())
	assert.True(t, report.IsDirectory())

	results := report.Results()
	require.Len(t, results, 2)

	byName := map[string]Descriptor{}
	for _, d := range results {
		byName[d.Name()] = d
	}
	assert.True(t, byName["a.txt"].IsFile())
	assert.True(t, byName["b"].IsDirectory())
}

func TestWalkTree_Nested(t *testing.T) {
	in, fsys := newMemory(t)
	require.NoError(t, fsys.MkdirAll("/tree/x/y", 0o755))
	writeFile(t, fsys, "/tree/x/y/deep.md", "#")
	writeFile(t, fsys, "/tree/top.go", "package top")

	report, err := in.WalkTree("/tree")
	require.NoError(t, err)

	var paths []string
	for _, d := range report.Results() {
		paths = append(paths, d.Path())
	}
	sort.Strings(paths)
	assert.Equal(t, []string{"/tree/top.go", "/tree/x", "/tree/x/y", "/tree/x/y/deep.md"}, paths)
}

func TestWalkTree_MissingRoot(t *testing.T) {
	in, fsys := newMemory(t)
	writeFile(t, fsys, "/file.txt", "x")

	for _, root := range []string{"/missing", "/file.txt"} {
		report, err := in.WalkTree(root)
		require.Error(t, err, root)
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
		assert.Equal(t, root, errors.GetPath(err))
		assert.Empty(t, report.Results())
		assert.False(t, report.Exists())
		assert.Empty(t, report.Path())
	}
}

func TestWalkTree_DoesNotFollowDirectoryLinks(t *testing.T) {
	in, fsys := newMemory(t)
	require.NoError(t, fsys.MkdirAll("/outside/inner", 0o755))
	writeFile(t, fsys, "/outside/inner/secret.txt", "s")
	require.NoError(t, fsys.MkdirAll("/root", 0o755))
	symlink(t, fsys, "/outside", "/root/link")

	report, err := in.WalkTree("/root")
	require.NoError(t, err)

	results := report.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "link", results[0].Name())
	assert.True(t, results[0].IsSymlink())
	assert.True(t, results[0].IsDirectory())
}

func TestWalkTree_CanonicalRoot(t *testing.T) {
	in, fsys := newMemory(t)
	require.NoError(t, fsys.MkdirAll("/real/sub", 0o755))
	symlink(t, fsys, "/real", "/alias")

	report, err := in.WalkTree("/alias")
	require.NoError(t, err)
	assert.Equal(t, "/real", report.Path())
	require.Len(t, report.Results(), 1)
	assert.Equal(t, "/real/sub", report.Results()[0].Path())
}

func TestWalkTree_DotDotAfterLink(t *testing.T) {
	in, fsys := newMemory(t)
	require.NoError(t, fsys.MkdirAll("/other/real", 0o755))
	writeFile(t, fsys, "/other/real/r.txt", "r")
	require.NoError(t, fsys.MkdirAll("/t/sub", 0o755))
	writeFile(t, fsys, "/t/sub/s.txt", "s")
	symlink(t, fsys, "/other/real", "/t/sub/ld")

	report, err := in.WalkTree("/t/sub/ld/..")
	require.NoError(t, err)
	assert.Equal(t, "/other", report.Path())

	var paths []string
	for _, d := range report.Results() {
		paths = append(paths, d.Path())
	}
	sort.Strings(paths)
	assert.Equal(t, []string{"/other/real", "/other/real/r.txt"}, paths)
}

func TestWalkTree_PlainProviderSkipsDirectoryLinks(t *testing.T) {
	_, mem := newMemory(t)
	require.NoError(t, mem.MkdirAll("/outside", 0o755))
	writeFile(t, mem, "/outside/secret.txt", "s")
	require.NoError(t, mem.MkdirAll("/root", 0o755))
	symlink(t, mem, "/outside", "/root/link")
	in := New(plainFS{mem})

	report, err := in.WalkTree("/root")
	require.NoError(t, err)
	assert.Equal(t, []string{"link"}, names(report.Results()))
}

func TestWalkTree_ResultsIsCopy(t *testing.T) {
	in, fsys := newMemory(t)
	writeFile(t, fsys, "/r/a", "a")

	report, err := in.WalkTree("/r")
	require.NoError(t, err)

	first := report.Results()
	first[0] = Descriptor{}
	assert.Equal(t, "a", report.Results()[0].Name())
}

func TestWalkTreeFunc_Skip(t *testing.T) {
	in, fsys := newMemory(t)
	require.NoError(t, fsys.MkdirAll("/w/skip/inner", 0o755))
	require.NoError(t, fsys.MkdirAll("/w/keep", 0o755))
	writeFile(t, fsys, "/w/keep/k.txt", "k")
	writeFile(t, fsys, "/w/skip/s.txt", "s")

	var seen []string
	err := in.WalkTreeFunc("/w", func(d Descriptor) error {
		seen = append(seen, d.Path())
		if d.Name() == "skip" {
			return SkipDir
		}
		return nil
	})
	require.NoError(t, err)
	assert.Contains(t, seen, "/w/skip")
	assert.Contains(t, seen, "/w/keep/k.txt")
	assert.NotContains(t, seen, "/w/skip/s.txt")
	assert.NotContains(t, seen, "/w/skip/inner")

	count := 0
	err = in.WalkTreeFunc("/w", func(Descriptor) error {
		count++
		return SkipAll
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestWalkTreeFunc_CallbackError(t *testing.T) {
	in, fsys := newMemory(t)
	writeFile(t, fsys, "/w/a", "a")

	boom := errors.New(errors.CodeInternal, "boom")
	err := in.WalkTreeFunc("/w", func(Descriptor) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestWalkTree_Local(t *testing.T) {
	in, dir := newLocal(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "tree", "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tree", "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.Symlink(dir, filepath.Join(dir, "tree", "loop")))

	report, err := in.WalkTree("tree")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tree"), report.Path())
	assert.ElementsMatch(t, []string{"a.txt", "b", "loop"}, names(report.Results()))
}

func TestWalkTree_Concurrent(t *testing.T) {
	in, dir := newLocal(t)
	for _, sub := range []string{"one", "two", "three"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, sub, "nested"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, sub, "nested", sub+".txt"), nil, 0o644))
	}

	var wg sync.WaitGroup
	for _, sub := range []string{"one", "two", "three"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			report, err := in.WalkTree(sub)
			if !assert.NoError(t, err) {
				return
			}
			assert.ElementsMatch(t, []string{"nested", sub + ".txt"}, names(report.Results()))
			for _, d := range report.Results() {
				assert.True(t, strings.HasPrefix(d.Path(), filepath.Join(dir, sub)+string(filepath.Separator)), d.Path())
			}
		}()
	}
	wg.Wait()
}

func TestTreeReport_MarshalJSON(t *testing.T) {
	in, fsys := newMemory(t)
	require.NoError(t, fsys.MkdirAll("/empty", 0o755))

	report, err := in.WalkTree("/empty")
	require.NoError(t, err)

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.JSONEq(t, `{"path":"/empty","exists":true,"is_directory":true,"results":[]}`, string(data))
}
