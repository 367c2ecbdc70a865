package fstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/fsinspect/fs/core"
)

// TestReadFS tests Open, Stat, ReadDir, ReadFile and Exists.
func TestReadFS(t *testing.T, filesystem core.FS) {
	TestReadFSWithConfig(t, filesystem, POSIXTestConfig())
}

// TestReadFSWithConfig tests read operations with behavior configuration.
func TestReadFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	content := []byte("test file content")
	if err := filesystem.MkdirAll("testdir/sub", 0o755); err != nil {
		t.Fatalf("MkdirAll(testdir/sub): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("testdir/testfile.txt", content, 0o644); err != nil {
		t.Fatalf("WriteFile(testdir/testfile.txt): setup failed: %v", err)
	}

	run(t, config, "ReadFS", "Open", func(t *testing.T) {
		f, err := filesystem.Open("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("Open(testdir/testfile.txt): got error %v, want nil", err)
		}
		defer func() { _ = f.Close() }()

		data, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("ReadAll(): got error %v", err)
		}
		if !bytes.Equal(data, content) {
			t.Errorf("Read(): got %q, want %q", data, content)
		}
	})

	run(t, config, "ReadFS", "StatFile", func(t *testing.T) {
		info, err := filesystem.Stat("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("Stat(testdir/testfile.txt): got error %v, want nil", err)
		}
		if info.IsDir() {
			t.Errorf("Stat(testdir/testfile.txt): IsDir() = true, want false")
		}
		if !info.Mode().IsRegular() {
			t.Errorf("Stat(testdir/testfile.txt): Mode() = %v, want regular", info.Mode())
		}
		if info.Size() != int64(len(content)) {
			t.Errorf("Stat(testdir/testfile.txt): Size() = %d, want %d", info.Size(), len(content))
		}
	})

	run(t, config, "ReadFS", "StatDir", func(t *testing.T) {
		info, err := filesystem.Stat("testdir")
		if err != nil {
			t.Fatalf("Stat(testdir): got error %v, want nil", err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(testdir): IsDir() = false, want true")
		}
	})

	run(t, config, "ReadFS", "StatNotExist", func(t *testing.T) {
		_, err := filesystem.Stat("testdir/missing.txt")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(testdir/missing.txt): got error %v, want fs.ErrNotExist", err)
		}
	})

	run(t, config, "ReadFS", "ReadDir", func(t *testing.T) {
		entries, err := filesystem.ReadDir("testdir")
		if err != nil {
			t.Fatalf("ReadDir(testdir): got error %v, want nil", err)
		}
		got := map[string]bool{}
		for _, e := range entries {
			got[e.Name()] = e.IsDir()
		}
		if isDir, ok := got["testfile.txt"]; !ok || isDir {
			t.Errorf("ReadDir(testdir): testfile.txt missing or reported as dir: %v", got)
		}
		if isDir, ok := got["sub"]; !ok || !isDir {
			t.Errorf("ReadDir(testdir): sub missing or not reported as dir: %v", got)
		}
		if len(got) != 2 {
			t.Errorf("ReadDir(testdir): got %d entries, want 2", len(got))
		}
	})

	run(t, config, "ReadFS", "ReadFile", func(t *testing.T) {
		data, err := filesystem.ReadFile("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("ReadFile(testdir/testfile.txt): got error %v, want nil", err)
		}
		if !bytes.Equal(data, content) {
			t.Errorf("ReadFile(testdir/testfile.txt): got %q, want %q", data, content)
		}
	})

	run(t, config, "ReadFS", "OpenNotExist", func(t *testing.T) {
		_, err := filesystem.Open("does-not-exist.txt")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Open(does-not-exist.txt): got error %v, want fs.ErrNotExist", err)
		}
	})

	run(t, config, "ReadFS", "Exists", func(t *testing.T) {
		for name, want := range map[string]bool{
			"testdir":              true,
			"testdir/testfile.txt": true,
			"testdir/missing.txt":  false,
		} {
			got, err := filesystem.Exists(name)
			if err != nil {
				t.Errorf("Exists(%q): got error %v, want nil", name, err)
				continue
			}
			if got != want {
				t.Errorf("Exists(%q) = %v, want %v", name, got, want)
			}
		}
	})
}
