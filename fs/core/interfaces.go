package core

import (
	"io"
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
	// FSTypeRemote indicates remote object storage (S3, MinIO).
	FSTypeRemote
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	case FSTypeRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// FS is the filesystem-access interface every provider implements.
type FS interface {
	fs.FS
	ReadFS
	WriteFS
	ManageFS
	WalkFS

	// Type returns the underlying filesystem type.
	Type() FSType
}

// ReadFS defines read-only filesystem operations.
type ReadFS interface {
	// Open opens the named file for reading.
	Open(name string) (fs.File, error)

	// Stat returns file metadata, following symbolic links.
	// If there is an error, it should be an *fs.PathError or wrap one of the
	// fs sentinel errors.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir returns the entries of a directory sorted by filename.
	// Entries describe the children themselves: a symbolic link to a
	// directory is reported with fs.ModeSymlink and IsDir() == false.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether Stat on name succeeds.
	// A false result with a nil error means the path does not exist.
	// A false result with a non-nil error means existence could not be
	// determined (for example, permission denied).
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
//
// Not all providers support all OpenFile flags; unsupported combinations
// fail with ErrUnsupported.
type WriteFS interface {
	// Create creates or truncates the named file for writing.
	Create(name string) (File, error)

	// OpenFile opens a file with the given flags (os.O_*) and permissions.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// WriteFile writes data to the named file, creating or truncating it.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Mkdir creates a single directory. It fails with ErrExist if the path
	// exists and with ErrNotExist if the parent does not.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory and any missing parents.
	// It does nothing if the directory already exists.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines file and directory management operations.
type ManageFS interface {
	// Remove removes the named file or empty directory.
	Remove(name string) error

	// RemoveAll removes path and any children it contains. Symbolic links
	// are removed, never followed. A missing path is not an error.
	RemoveAll(path string) error

	// Rename renames (moves) oldpath to newpath.
	// Local providers use an atomic rename; object storage copies and deletes.
	Rename(oldpath, newpath string) error
}

// WalkFS defines directory tree traversal.
type WalkFS interface {
	// Walk walks the tree rooted at root in lexical order, calling walkFn for
	// each file or directory, including root. Symbolic links are reported
	// but never followed.
	Walk(root string, walkFn fs.WalkDirFunc) error
}

// File represents an open file handle.
// File extends fs.File with io.Writer.
type File interface {
	fs.File
	io.Writer

	// Name returns the name of the file as provided to Open or Create.
	Name() string
}

// MetadataFS is implemented by providers that can stat a path without
// following a final symbolic link.
type MetadataFS interface {
	// Lstat returns file info without following symbolic links.
	Lstat(name string) (fs.FileInfo, error)
}

// SymlinkFS is implemented by providers that support symbolic links.
type SymlinkFS interface {
	// Symlink creates newname as a symbolic link to oldname.
	// oldname is stored as given and need not exist.
	// If newname already exists, Symlink fails with ErrExist.
	Symlink(oldname, newname string) error

	// Readlink returns the destination of the named symbolic link.
	Readlink(name string) (string, error)
}
