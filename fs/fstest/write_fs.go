package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/jmgilman/go/fsinspect/fs/core"
)

// TestWriteFS tests Create, OpenFile, WriteFile, Mkdir and MkdirAll.
func TestWriteFS(t *testing.T, filesystem core.FS) {
	TestWriteFSWithConfig(t, filesystem, POSIXTestConfig())
}

// TestWriteFSWithConfig tests write operations with behavior configuration.
func TestWriteFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	run(t, config, "WriteFS", "Create", func(t *testing.T) {
		f, err := filesystem.Create("created.txt")
		if err != nil {
			t.Fatalf("Create(created.txt): got error %v, want nil", err)
		}
		if _, err := f.Write([]byte("hello")); err != nil {
			t.Fatalf("Write(): got error %v", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close(): got error %v", err)
		}
		assertContent(t, filesystem, "created.txt", []byte("hello"))
	})

	run(t, config, "WriteFS", "WriteFileOverwrite", func(t *testing.T) {
		if err := filesystem.WriteFile("over.txt", []byte("first version"), 0o644); err != nil {
			t.Fatalf("WriteFile(over.txt): got error %v", err)
		}
		if err := filesystem.WriteFile("over.txt", []byte("second"), 0o644); err != nil {
			t.Fatalf("WriteFile(over.txt): got error %v", err)
		}
		assertContent(t, filesystem, "over.txt", []byte("second"))
	})

	run(t, config, "WriteFS", "OpenFileExclusive", func(t *testing.T) {
		flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
		f, err := filesystem.OpenFile("excl.txt", flags, 0o644)
		if err != nil {
			t.Fatalf("OpenFile(excl.txt, O_EXCL): got error %v, want nil", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close(): got error %v", err)
		}

		_, err = filesystem.OpenFile("excl.txt", flags, 0o644)
		if !errors.Is(err, fs.ErrExist) {
			t.Errorf("OpenFile(excl.txt, O_EXCL) again: got error %v, want fs.ErrExist", err)
		}
		assertContent(t, filesystem, "excl.txt", nil)
	})

	run(t, config, "WriteFS", "Mkdir", func(t *testing.T) {
		if err := filesystem.Mkdir("single", 0o755); err != nil {
			t.Fatalf("Mkdir(single): got error %v, want nil", err)
		}
		assertDir(t, filesystem, "single")

		err := filesystem.Mkdir("single", 0o755)
		if !errors.Is(err, fs.ErrExist) {
			t.Errorf("Mkdir(single) again: got error %v, want fs.ErrExist", err)
		}
	})

	run(t, config, "WriteFS", "MkdirNoParent", func(t *testing.T) {
		if config.ImplicitParentDirs {
			t.Skip("provider creates parents implicitly")
		}
		err := filesystem.Mkdir("no-parent/child", 0o755)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Mkdir(no-parent/child): got error %v, want fs.ErrNotExist", err)
		}
	})

	run(t, config, "WriteFS", "MkdirAll", func(t *testing.T) {
		if err := filesystem.MkdirAll("a/b/c", 0o755); err != nil {
			t.Fatalf("MkdirAll(a/b/c): got error %v, want nil", err)
		}
		for _, dir := range []string{"a", "a/b", "a/b/c"} {
			assertDir(t, filesystem, dir)
		}
		if err := filesystem.MkdirAll("a/b/c", 0o755); err != nil {
			t.Errorf("MkdirAll(a/b/c) again: got error %v, want nil", err)
		}
	})
}

func assertContent(t *testing.T, filesystem core.FS, name string, want []byte) {
	t.Helper()
	got, err := filesystem.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", name, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("ReadFile(%q): got %q, want %q", name, got, want)
	}
}

func assertDir(t *testing.T, filesystem core.FS, name string) {
	t.Helper()
	info, err := filesystem.Stat(name)
	if err != nil {
		t.Fatalf("Stat(%q): got error %v, want nil", name, err)
	}
	if !info.IsDir() {
		t.Errorf("Stat(%q): IsDir() = false, want true", name)
	}
}

func assertNotExist(t *testing.T, filesystem core.FS, name string) {
	t.Helper()
	ok, err := filesystem.Exists(name)
	if err != nil {
		t.Fatalf("Exists(%q): got error %v", name, err)
	}
	if ok {
		t.Errorf("Exists(%q) = true, want false", name)
	}
}
