// Package core defines the filesystem-access interface the inspect package
// is written against.
//
// Providers (fs/billy for local and in-memory trees, fs/minio for S3-style
// object storage) implement FS. Capabilities that only some backends have are
// split into optional interfaces discovered by type assertion:
//
//   - MetadataFS: Lstat, which reports a symbolic link itself
//   - SymlinkFS: Symlink and Readlink
//
// # Interface Hierarchy
//
// FS is composed of:
//
//   - ReadFS: Open, Stat, ReadDir, ReadFile, Exists
//   - WriteFS: Create, OpenFile, WriteFile, Mkdir, MkdirAll
//   - ManageFS: Remove, RemoveAll, Rename
//   - WalkFS: Walk
//
// FS embeds fs.FS, so providers also work with fs.WalkDir, fs.ReadFile and
// the rest of io/fs.
//
// # Checking Optional Capabilities
//
//	if sfs, ok := filesystem.(core.SymlinkFS); ok {
//	    target, err := sfs.Readlink("link")
//	}
//
// Operations a provider cannot perform fail with ErrUnsupported.
//
// # Copy helpers
//
// CopyFile, CopyTree and CopyFromFS are written purely against these
// interfaces so they behave the same on every provider.
package core
