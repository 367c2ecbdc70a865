// Package types provides fs.FileInfo and fs.DirEntry implementations for
// objects and directory prefixes.
package types // nolint:revive // Internal package with clear purpose

import (
	"io/fs"
	"time"
)

const (
	// FileMode is reported for every object.
	FileMode fs.FileMode = 0o644
	// DirMode is reported for directory markers and prefixes.
	DirMode = fs.ModeDir | 0o755
)

// FileInfo implements fs.FileInfo for objects and directories.
type FileInfo struct {
	FileName    string
	FileSize    int64
	FileModTime time.Time
	FileMode    fs.FileMode
}

// Name returns the base name.
func (fi *FileInfo) Name() string { return fi.FileName }

// Size returns the object size in bytes.
func (fi *FileInfo) Size() int64 { return fi.FileSize }

// Mode returns the file mode bits.
func (fi *FileInfo) Mode() fs.FileMode { return fi.FileMode }

// ModTime returns the last modified time.
func (fi *FileInfo) ModTime() time.Time { return fi.FileModTime }

// IsDir reports whether the info describes a directory.
func (fi *FileInfo) IsDir() bool { return fi.FileMode.IsDir() }

// Sys always returns nil.
func (fi *FileInfo) Sys() any { return nil }

// NewFile returns info for an object.
func NewFile(name string, size int64, modTime time.Time) *FileInfo {
	return &FileInfo{FileName: name, FileSize: size, FileModTime: modTime, FileMode: FileMode}
}

// NewDir returns info for a directory.
func NewDir(name string, modTime time.Time) *FileInfo {
	return &FileInfo{FileName: name, FileModTime: modTime, FileMode: DirMode}
}

// DirEntry implements fs.DirEntry on top of a FileInfo.
type DirEntry struct {
	info *FileInfo
}

// NewDirEntry wraps info as a directory entry.
func NewDirEntry(info *FileInfo) *DirEntry {
	return &DirEntry{info: info}
}

// Name returns the entry name.
func (e *DirEntry) Name() string { return e.info.Name() }

// IsDir reports whether the entry is a directory.
func (e *DirEntry) IsDir() bool { return e.info.IsDir() }

// Type returns the type bits of the entry.
func (e *DirEntry) Type() fs.FileMode { return e.info.Mode().Type() }

// Info returns the FileInfo for the entry.
func (e *DirEntry) Info() (fs.FileInfo, error) { return e.info, nil }

// Compile-time interface checks.
var (
	_ fs.FileInfo = (*FileInfo)(nil)
	_ fs.DirEntry = (*DirEntry)(nil)
)
