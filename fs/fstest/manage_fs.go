package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/fsinspect/fs/core"
)

// TestManageFS tests Remove, RemoveAll and Rename.
func TestManageFS(t *testing.T, filesystem core.FS) {
	TestManageFSWithConfig(t, filesystem, POSIXTestConfig())
}

// TestManageFSWithConfig tests management operations with behavior configuration.
func TestManageFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	run(t, config, "ManageFS", "RemoveFile", func(t *testing.T) {
		if err := filesystem.WriteFile("remove-me.txt", []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(remove-me.txt): setup failed: %v", err)
		}
		if err := filesystem.Remove("remove-me.txt"); err != nil {
			t.Fatalf("Remove(remove-me.txt): got error %v, want nil", err)
		}
		assertNotExist(t, filesystem, "remove-me.txt")
	})

	run(t, config, "ManageFS", "RemoveEmptyDir", func(t *testing.T) {
		if err := filesystem.Mkdir("empty-dir", 0o755); err != nil {
			t.Fatalf("Mkdir(empty-dir): setup failed: %v", err)
		}
		if err := filesystem.Remove("empty-dir"); err != nil {
			t.Fatalf("Remove(empty-dir): got error %v, want nil", err)
		}
		assertNotExist(t, filesystem, "empty-dir")
	})

	run(t, config, "ManageFS", "RemoveNotExist", func(t *testing.T) {
		err := filesystem.Remove("never-existed.txt")
		if config.IdempotentDelete {
			if err != nil {
				t.Errorf("Remove(never-existed.txt): got error %v, want nil", err)
			}
			return
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Remove(never-existed.txt): got error %v, want fs.ErrNotExist", err)
		}
	})

	run(t, config, "ManageFS", "RemoveAll", func(t *testing.T) {
		if err := filesystem.MkdirAll("tree/nested/deep", 0o755); err != nil {
			t.Fatalf("MkdirAll(tree/nested/deep): setup failed: %v", err)
		}
		for _, name := range []string{"tree/a.txt", "tree/nested/b.txt", "tree/nested/deep/c.txt"} {
			if err := filesystem.WriteFile(name, []byte(name), 0o644); err != nil {
				t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
			}
		}
		if err := filesystem.RemoveAll("tree"); err != nil {
			t.Fatalf("RemoveAll(tree): got error %v, want nil", err)
		}
		assertNotExist(t, filesystem, "tree")
		assertNotExist(t, filesystem, "tree/nested/deep/c.txt")

		if err := filesystem.RemoveAll("tree"); err != nil {
			t.Errorf("RemoveAll(tree) again: got error %v, want nil", err)
		}
	})

	run(t, config, "ManageFS", "RenameFile", func(t *testing.T) {
		if err := filesystem.WriteFile("old.txt", []byte("payload"), 0o644); err != nil {
			t.Fatalf("WriteFile(old.txt): setup failed: %v", err)
		}
		if err := filesystem.Rename("old.txt", "new.txt"); err != nil {
			t.Fatalf("Rename(old.txt, new.txt): got error %v, want nil", err)
		}
		assertNotExist(t, filesystem, "old.txt")
		assertContent(t, filesystem, "new.txt", []byte("payload"))
	})

	run(t, config, "ManageFS", "RenameDir", func(t *testing.T) {
		if err := filesystem.MkdirAll("src-dir/inner", 0o755); err != nil {
			t.Fatalf("MkdirAll(src-dir/inner): setup failed: %v", err)
		}
		if err := filesystem.WriteFile("src-dir/inner/f.txt", []byte("moved"), 0o644); err != nil {
			t.Fatalf("WriteFile(src-dir/inner/f.txt): setup failed: %v", err)
		}
		if err := filesystem.Rename("src-dir", "dst-dir"); err != nil {
			t.Fatalf("Rename(src-dir, dst-dir): got error %v, want nil", err)
		}
		assertNotExist(t, filesystem, "src-dir")
		assertDir(t, filesystem, "dst-dir/inner")
		assertContent(t, filesystem, "dst-dir/inner/f.txt", []byte("moved"))
	})
}
