package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/jmgilman/go/fsinspect/fs/core"
)

// LocalFS wraps billy's osfs for local filesystem access.
type LocalFS struct {
	adapter
}

// MemoryFS wraps billy's memfs for in-memory filesystem access.
type MemoryFS struct {
	adapter
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	root string
}

// WithRoot confines a LocalFS to dir; every path, absolute or not, is
// interpreted below it. The default root is "/".
func WithRoot(dir string) Option {
	return func(c *config) {
		c.root = dir
	}
}

// NewLocal creates a go-billy-backed local filesystem.
func NewLocal(opts ...Option) *LocalFS {
	cfg := config{root: "/"}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &LocalFS{adapter{bfs: osfs.New(cfg.root)}}
}

// NewMemory creates an empty go-billy-backed in-memory filesystem.
func NewMemory(_ ...Option) *MemoryFS {
	return &MemoryFS{adapter{bfs: memfs.New(), followLinks: true}}
}

// Type returns FSTypeLocal.
func (lfs *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// Type returns FSTypeMemory.
func (mfs *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

// adapter implements every core.FS operation on top of a billy.Filesystem.
// LocalFS and MemoryFS embed it and add only Type.
type adapter struct {
	bfs billy.Filesystem

	// followLinks makes the adapter resolve symbolic links itself before
	// calls that follow them. memfs follows links recursively with no limit,
	// so a cycle overflows the stack.
	followLinks bool
}

// maxSymlinks bounds the links followed in one lookup, as Linux does.
const maxSymlinks = 255

// follow returns the path name resolves to through symbolic links. It is the
// identity unless followLinks is set. A dangling target is returned as is so
// the caller's operation reports or creates it. More than maxSymlinks links
// fail with ELOOP, like the operating system.
func (a *adapter) follow(op, name string) (string, error) {
	if !a.followLinks {
		return name, nil
	}

	cur := name
	for hops := 0; ; hops++ {
		info, err := a.bfs.Lstat(cur)
		if err != nil || info.Mode()&fs.ModeSymlink == 0 {
			return cur, nil
		}
		if hops == maxSymlinks {
			return "", &fs.PathError{Op: op, Path: name, Err: syscall.ELOOP}
		}
		target, err := a.bfs.Readlink(cur)
		if err != nil {
			return "", pathErr(op, name, err)
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(cur), target)
		}
		cur = normalize(target)
	}
}

// Unwrap returns the underlying billy.Filesystem.
func (a *adapter) Unwrap() billy.Filesystem {
	return a.bfs
}

// normalize converts paths to use forward slashes consistently.
// Billy handles confinement to its root.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// pathErr makes sure err is an *fs.PathError; memfs returns bare sentinels.
func pathErr(op, name string, err error) error {
	if err == nil {
		return nil
	}
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return err
	}
	return &fs.PathError{Op: op, Path: name, Err: err}
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// ReadFS

// Open opens the named file for reading.
func (a *adapter) Open(name string) (fs.File, error) {
	name = normalize(name)
	target, err := a.follow("open", name)
	if err != nil {
		return nil, err
	}
	f, err := a.bfs.Open(target)
	if err != nil {
		return nil, pathErr("open", name, err)
	}
	return &File{file: f, fs: a, name: name}, nil
}

// Stat returns file metadata for the named file, following symbolic links.
func (a *adapter) Stat(name string) (fs.FileInfo, error) {
	name = normalize(name)
	target, err := a.follow("stat", name)
	if err != nil {
		return nil, err
	}
	info, err := a.bfs.Stat(target)
	return info, pathErr("stat", name, err)
}

// ReadDir returns the entries of a directory sorted by filename.
func (a *adapter) ReadDir(name string) ([]fs.DirEntry, error) {
	name = normalize(name)
	target, err := a.follow("readdir", name)
	if err != nil {
		return nil, err
	}
	infos, err := a.bfs.ReadDir(target)
	if err != nil {
		return nil, pathErr("readdir", name, err)
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (a *adapter) ReadFile(name string) ([]byte, error) {
	f, err := a.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Exists reports whether the named file or directory exists.
func (a *adapter) Exists(name string) (bool, error) {
	_, err := a.Stat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// WriteFS

// Create creates or truncates the named file for writing.
func (a *adapter) Create(name string) (core.File, error) {
	name = normalize(name)
	target, err := a.follow("create", name)
	if err != nil {
		return nil, err
	}
	f, err := a.bfs.Create(target)
	if err != nil {
		return nil, pathErr("create", name, err)
	}
	return &File{file: f, fs: a, name: name}, nil
}

// OpenFile opens a file with the specified flags and permissions.
func (a *adapter) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	name = normalize(name)
	target, err := a.follow("open", name)
	if err != nil {
		return nil, err
	}
	f, err := a.bfs.OpenFile(target, flag, perm)
	if err != nil {
		return nil, pathErr("open", name, err)
	}
	return &File{file: f, fs: a, name: name}, nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (a *adapter) WriteFile(name string, data []byte, perm fs.FileMode) error {
	name = normalize(name)
	f, err := a.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return pathErr("write", name, err)
	}
	return pathErr("close", name, f.Close())
}

// Mkdir creates a single directory.
// Unlike MkdirAll, this fails if the parent directory does not exist.
func (a *adapter) Mkdir(name string, perm fs.FileMode) error {
	name = normalize(name)
	if _, err := a.bfs.Lstat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	parent := filepath.Dir(name)
	if parent != "." && parent != "/" {
		if _, err := a.Stat(parent); err != nil {
			return err
		}
	}
	// The parent is known to exist, so MkdirAll creates exactly one level.
	return pathErr("mkdir", name, a.bfs.MkdirAll(name, perm))
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (a *adapter) MkdirAll(path string, perm fs.FileMode) error {
	path = normalize(path)
	return pathErr("mkdir", path, a.bfs.MkdirAll(path, perm))
}

// ManageFS

// Remove removes the named file, symbolic link or empty directory.
func (a *adapter) Remove(name string) error {
	name = normalize(name)
	return pathErr("remove", name, a.bfs.Remove(name))
}

// RemoveAll removes path and any children it contains.
// Symbolic links are removed without touching their targets.
func (a *adapter) RemoveAll(path string) error {
	path = normalize(path)
	info, err := a.bfs.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return pathErr("removeall", path, err)
	}

	if !info.IsDir() {
		return pathErr("remove", path, a.bfs.Remove(path))
	}

	entries, err := a.bfs.ReadDir(path)
	if err != nil {
		return pathErr("readdir", path, err)
	}
	for _, entry := range entries {
		if err := a.RemoveAll(filepath.Join(path, entry.Name())); err != nil {
			return err
		}
	}

	return pathErr("remove", path, a.bfs.Remove(path))
}

// Rename renames (moves) oldpath to newpath.
func (a *adapter) Rename(oldpath, newpath string) error {
	oldpath, newpath = normalize(oldpath), normalize(newpath)
	if err := a.bfs.Rename(oldpath, newpath); err != nil {
		var le *os.LinkError
		if errors.As(err, &le) {
			return err
		}
		return pathErr("rename", oldpath, err)
	}
	return nil
}

// WalkFS

// Walk walks the file tree rooted at root, calling walkFn for each file or
// directory in the tree, including root. Directory symlinks below root are
// reported but not descended into.
func (a *adapter) Walk(root string, walkFn fs.WalkDirFunc) error {
	root = normalize(root)
	info, err := a.Stat(root)
	if err != nil {
		err = walkFn(root, nil, err)
	} else {
		err = a.walk(root, &dirEntry{info: info}, walkFn)
	}
	if errors.Is(err, fs.SkipDir) || errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}

func (a *adapter) walk(path string, d fs.DirEntry, walkFn fs.WalkDirFunc) error {
	if err := walkFn(path, d, nil); err != nil || !d.IsDir() {
		if errors.Is(err, fs.SkipDir) && d.IsDir() {
			err = nil
		}
		return err
	}

	infos, err := a.bfs.ReadDir(path)
	if err != nil {
		if err = walkFn(path, d, pathErr("readdir", path, err)); err != nil {
			return err
		}
	}

	for _, info := range infos {
		child := normalize(filepath.Join(path, info.Name()))
		if err := a.walk(child, &dirEntry{info: info}, walkFn); err != nil {
			if errors.Is(err, fs.SkipDir) {
				continue
			}
			return err
		}
	}
	return nil
}

// MetadataFS

// Lstat returns file info without following a final symbolic link.
func (a *adapter) Lstat(name string) (fs.FileInfo, error) {
	name = normalize(name)
	info, err := a.bfs.Lstat(name)
	return info, pathErr("lstat", name, err)
}

// SymlinkFS

// Symlink creates newname as a symbolic link to oldname.
// oldname is stored verbatim apart from slash conversion.
func (a *adapter) Symlink(oldname, newname string) error {
	newname = normalize(newname)
	if _, err := a.bfs.Lstat(newname); err == nil {
		return &fs.PathError{Op: "symlink", Path: newname, Err: fs.ErrExist}
	}
	return pathErr("symlink", newname, a.bfs.Symlink(oldname, newname))
}

// Readlink returns the destination of the named symbolic link.
func (a *adapter) Readlink(name string) (string, error) {
	name = normalize(name)
	target, err := a.bfs.Readlink(name)
	if err != nil {
		return "", pathErr("readlink", name, err)
	}
	return target, nil
}

// Compile-time interface checks.
var (
	_ core.FS         = (*LocalFS)(nil)
	_ core.FS         = (*MemoryFS)(nil)
	_ core.MetadataFS = (*LocalFS)(nil)
	_ core.MetadataFS = (*MemoryFS)(nil)
	_ core.SymlinkFS  = (*LocalFS)(nil)
	_ core.SymlinkFS  = (*MemoryFS)(nil)
)
