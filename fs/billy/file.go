package billy

import (
	"io"
	"io/fs"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/fsinspect/fs/core"
)

// File wraps billy.File to implement core.File.
// It keeps the name it was opened with, since billy.File.Name() differs
// between backends, and a handle on the filesystem for Stat.
type File struct {
	file billy.File
	fs   *adapter
	name string
}

// Read delegates to the underlying billy.File.
func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// Write delegates to the underlying billy.File.
func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Close delegates to the underlying billy.File.
func (f *File) Close() error {
	return f.file.Close()
}

// Stat implements fs.File.Stat through the filesystem, since billy.File has
// no Stat of its own.
func (f *File) Stat() (fs.FileInfo, error) {
	return f.fs.Stat(f.name)
}

// Name returns the name provided to Open or Create.
func (f *File) Name() string {
	return f.name
}

// Seek delegates to the underlying billy.File.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Compile-time interface checks.
var (
	_ core.File = (*File)(nil)
	_ fs.File   = (*File)(nil)
	_ io.Seeker = (*File)(nil)
)
