package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"slices"
	"testing"

	"github.com/jmgilman/go/fsinspect/fs/core"
)

// TestMetadataFS tests Lstat. It skips if the provider does not implement
// core.MetadataFS.
func TestMetadataFS(t *testing.T, filesystem core.FS) {
	TestMetadataFSWithConfig(t, filesystem, POSIXTestConfig())
}

// TestMetadataFSWithConfig tests Lstat with behavior configuration.
func TestMetadataFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	mfs, ok := filesystem.(core.MetadataFS)
	if !ok {
		t.Skip("MetadataFS not supported")
		return
	}

	if err := filesystem.WriteFile("lstat.txt", []byte("lstat"), 0o644); err != nil {
		t.Fatalf("WriteFile(lstat.txt): setup failed: %v", err)
	}
	if err := filesystem.Mkdir("lstat-dir", 0o755); err != nil {
		t.Fatalf("Mkdir(lstat-dir): setup failed: %v", err)
	}

	run(t, config, "MetadataFS", "LstatFile", func(t *testing.T) {
		info, err := mfs.Lstat("lstat.txt")
		if err != nil {
			t.Fatalf("Lstat(lstat.txt): got error %v, want nil", err)
		}
		if info.IsDir() || info.Mode()&fs.ModeSymlink != 0 {
			t.Errorf("Lstat(lstat.txt): Mode() = %v, want regular file", info.Mode())
		}
		if info.Name() != "lstat.txt" {
			t.Errorf("Lstat(lstat.txt): Name() = %q, want %q", info.Name(), "lstat.txt")
		}
	})

	run(t, config, "MetadataFS", "LstatDir", func(t *testing.T) {
		info, err := mfs.Lstat("lstat-dir")
		if err != nil {
			t.Fatalf("Lstat(lstat-dir): got error %v, want nil", err)
		}
		if !info.IsDir() {
			t.Errorf("Lstat(lstat-dir): IsDir() = false, want true")
		}
	})

	run(t, config, "MetadataFS", "LstatNotExist", func(t *testing.T) {
		_, err := mfs.Lstat("lstat-missing")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Lstat(lstat-missing): got error %v, want fs.ErrNotExist", err)
		}
	})
}

// TestSymlinkFS tests Symlink and Readlink together with how the rest of the
// provider treats links. It skips if the provider does not implement
// core.SymlinkFS.
func TestSymlinkFS(t *testing.T, filesystem core.FS) {
	TestSymlinkFSWithConfig(t, filesystem, POSIXTestConfig())
}

// TestSymlinkFSWithConfig tests symlink operations with behavior configuration.
func TestSymlinkFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	sfs, ok := filesystem.(core.SymlinkFS)
	if !ok {
		t.Skip("SymlinkFS not supported")
		return
	}
	mfs, _ := filesystem.(core.MetadataFS)

	content := []byte("target file content")
	if err := filesystem.WriteFile("target.txt", content, 0o644); err != nil {
		t.Fatalf("WriteFile(target.txt): setup failed: %v", err)
	}
	if err := filesystem.MkdirAll("target-dir", 0o755); err != nil {
		t.Fatalf("MkdirAll(target-dir): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("target-dir/inside.txt", []byte("inside"), 0o644); err != nil {
		t.Fatalf("WriteFile(target-dir/inside.txt): setup failed: %v", err)
	}

	run(t, config, "SymlinkFS", "CreateAndRead", func(t *testing.T) {
		if err := sfs.Symlink("target.txt", "link.txt"); err != nil {
			t.Fatalf("Symlink(target.txt, link.txt): got error %v, want nil", err)
		}
		target, err := sfs.Readlink("link.txt")
		if err != nil {
			t.Fatalf("Readlink(link.txt): got error %v, want nil", err)
		}
		if target != "target.txt" {
			t.Errorf("Readlink(link.txt): got %q, want %q", target, "target.txt")
		}
		data, err := filesystem.ReadFile("link.txt")
		if err != nil {
			t.Fatalf("ReadFile(link.txt): got error %v, want nil", err)
		}
		if !bytes.Equal(data, content) {
			t.Errorf("ReadFile(link.txt): got %q, want %q", data, content)
		}
	})

	run(t, config, "SymlinkFS", "LinkExists", func(t *testing.T) {
		if err := sfs.Symlink("target.txt", "dup-link"); err != nil {
			t.Fatalf("Symlink(target.txt, dup-link): setup failed: %v", err)
		}
		err := sfs.Symlink("target.txt", "dup-link")
		if !errors.Is(err, fs.ErrExist) {
			t.Errorf("Symlink(target.txt, dup-link) again: got error %v, want fs.ErrExist", err)
		}
	})

	run(t, config, "SymlinkFS", "Broken", func(t *testing.T) {
		if err := sfs.Symlink("nowhere.txt", "broken"); err != nil {
			t.Fatalf("Symlink(nowhere.txt, broken): got error %v, want nil", err)
		}
		if _, err := filesystem.Stat("broken"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(broken): got error %v, want fs.ErrNotExist", err)
		}
		if mfs == nil {
			return
		}
		info, err := mfs.Lstat("broken")
		if err != nil {
			t.Fatalf("Lstat(broken): got error %v, want nil", err)
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			t.Errorf("Lstat(broken): Mode() = %v, want symlink", info.Mode())
		}
	})

	run(t, config, "SymlinkFS", "Loop", func(t *testing.T) {
		if err := sfs.Symlink("loop-b", "loop-a"); err != nil {
			t.Fatalf("Symlink(loop-b, loop-a): setup failed: %v", err)
		}
		if err := sfs.Symlink("loop-a", "loop-b"); err != nil {
			t.Fatalf("Symlink(loop-a, loop-b): setup failed: %v", err)
		}
		if _, err := filesystem.Stat("loop-a"); err == nil {
			t.Errorf("Stat(loop-a): got nil error, want a symlink loop error")
		}
		if _, err := filesystem.ReadFile("loop-a"); err == nil {
			t.Errorf("ReadFile(loop-a): got nil error, want a symlink loop error")
		}
		if _, err := filesystem.ReadDir("loop-a"); err == nil {
			t.Errorf("ReadDir(loop-a): got nil error, want a symlink loop error")
		}
		if mfs == nil {
			return
		}
		info, err := mfs.Lstat("loop-a")
		if err != nil {
			t.Fatalf("Lstat(loop-a): got error %v, want nil", err)
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			t.Errorf("Lstat(loop-a): Mode() = %v, want symlink", info.Mode())
		}
	})

	run(t, config, "SymlinkFS", "ReadDirReportsLink", func(t *testing.T) {
		if err := filesystem.Mkdir("listing", 0o755); err != nil {
			t.Fatalf("Mkdir(listing): setup failed: %v", err)
		}
		if err := sfs.Symlink("../target-dir", "listing/dirlink"); err != nil {
			t.Fatalf("Symlink(../target-dir, listing/dirlink): setup failed: %v", err)
		}
		entries, err := filesystem.ReadDir("listing")
		if err != nil {
			t.Fatalf("ReadDir(listing): got error %v, want nil", err)
		}
		if len(entries) != 1 {
			t.Fatalf("ReadDir(listing): got %d entries, want 1", len(entries))
		}
		if entries[0].IsDir() || entries[0].Type()&fs.ModeSymlink == 0 {
			t.Errorf("ReadDir(listing): dirlink type = %v, want symlink", entries[0].Type())
		}
	})

	run(t, config, "SymlinkFS", "WalkDoesNotFollow", func(t *testing.T) {
		if err := filesystem.Mkdir("walk-links", 0o755); err != nil {
			t.Fatalf("Mkdir(walk-links): setup failed: %v", err)
		}
		if err := sfs.Symlink("../target-dir", "walk-links/dirlink"); err != nil {
			t.Fatalf("Symlink(../target-dir, walk-links/dirlink): setup failed: %v", err)
		}
		var seen []string
		err := filesystem.Walk("walk-links", func(p string, _ fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			seen = append(seen, relTo("walk-links", p))
			return nil
		})
		if err != nil {
			t.Fatalf("Walk(walk-links): got error %v, want nil", err)
		}
		if slices.Contains(seen, "dirlink/inside.txt") {
			t.Errorf("Walk(walk-links): descended into symlinked directory: %v", seen)
		}
		if !slices.Contains(seen, "dirlink") {
			t.Errorf("Walk(walk-links): link itself not reported: %v", seen)
		}
	})

	run(t, config, "SymlinkFS", "RemoveAllKeepsTarget", func(t *testing.T) {
		if err := filesystem.Mkdir("doomed", 0o755); err != nil {
			t.Fatalf("Mkdir(doomed): setup failed: %v", err)
		}
		if err := sfs.Symlink("../target-dir", "doomed/dirlink"); err != nil {
			t.Fatalf("Symlink(../target-dir, doomed/dirlink): setup failed: %v", err)
		}
		if err := filesystem.RemoveAll("doomed"); err != nil {
			t.Fatalf("RemoveAll(doomed): got error %v, want nil", err)
		}
		assertNotExist(t, filesystem, "doomed")
		assertContent(t, filesystem, "target-dir/inside.txt", []byte("inside"))
	})
}
