package fstest

import (
	"errors"
	"io/fs"
	"path"
	"slices"
	"strings"
	"testing"

	"github.com/jmgilman/go/fsinspect/fs/core"
)

// TestWalkFS tests Walk, including SkipDir handling.
func TestWalkFS(t *testing.T, filesystem core.FS) {
	TestWalkFSWithConfig(t, filesystem, POSIXTestConfig())
}

// TestWalkFSWithConfig tests Walk with behavior configuration.
func TestWalkFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	if err := filesystem.MkdirAll("walk/a/b", 0o755); err != nil {
		t.Fatalf("MkdirAll(walk/a/b): setup failed: %v", err)
	}
	if err := filesystem.MkdirAll("walk/skip", 0o755); err != nil {
		t.Fatalf("MkdirAll(walk/skip): setup failed: %v", err)
	}
	for _, name := range []string{"walk/root.txt", "walk/a/one.txt", "walk/a/b/two.txt", "walk/skip/hidden.txt"} {
		if err := filesystem.WriteFile(name, []byte(name), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
		}
	}

	collect := func(t *testing.T, skip string) []string {
		t.Helper()
		var seen []string
		err := filesystem.Walk("walk", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			rel := relTo("walk", p)
			if d.IsDir() && rel == skip {
				return fs.SkipDir
			}
			seen = append(seen, rel)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk(walk): got error %v, want nil", err)
		}
		slices.Sort(seen)
		return seen
	}

	run(t, config, "WalkFS", "VisitsAll", func(t *testing.T) {
		got := collect(t, "")
		want := []string{".", "a", "a/b", "a/b/two.txt", "a/one.txt", "root.txt", "skip", "skip/hidden.txt"}
		if !slices.Equal(got, want) {
			t.Errorf("Walk(walk): got %v, want %v", got, want)
		}
	})

	run(t, config, "WalkFS", "SkipDir", func(t *testing.T) {
		got := collect(t, "skip")
		if slices.Contains(got, "skip/hidden.txt") {
			t.Errorf("Walk(walk) with SkipDir: visited skip/hidden.txt: %v", got)
		}
		if !slices.Contains(got, "a/b/two.txt") {
			t.Errorf("Walk(walk) with SkipDir: missed a/b/two.txt: %v", got)
		}
	})

	run(t, config, "WalkFS", "CallbackError", func(t *testing.T) {
		stop := errors.New("stop")
		err := filesystem.Walk("walk", func(string, fs.DirEntry, error) error {
			return stop
		})
		if !errors.Is(err, stop) {
			t.Errorf("Walk(walk): got error %v, want callback error", err)
		}
	})

	run(t, config, "WalkFS", "MissingRoot", func(t *testing.T) {
		var called bool
		err := filesystem.Walk("no-such-root", func(_ string, _ fs.DirEntry, err error) error {
			called = true
			return err
		})
		if !called {
			t.Errorf("Walk(no-such-root): callback not invoked")
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Walk(no-such-root): got error %v, want fs.ErrNotExist", err)
		}
	})
}

// relTo returns p relative to root, tolerating providers that report
// absolute or relative paths.
func relTo(root, p string) string {
	p = strings.TrimPrefix(path.Clean(p), "/")
	root = strings.TrimPrefix(path.Clean(root), "/")
	if p == root {
		return "."
	}
	return strings.TrimPrefix(p, root+"/")
}
