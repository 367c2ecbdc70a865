// Package billy provides go-billy backed implementations of core.FS.
//
// LocalFS wraps billy's osfs and MemoryFS wraps memfs. Both implement the
// optional core.MetadataFS and core.SymlinkFS capabilities, so the inspect
// package can tell symbolic links apart from their targets on either
// backend.
//
// Usage:
//
//	// Local disk, paths interpreted from "/"
//	fs := billy.NewLocal()
//
//	// Local disk confined to a directory
//	fs := billy.NewLocal(billy.WithRoot("/srv/data"))
//
//	// In memory, for tests
//	fs := billy.NewMemory()
//	err := fs.WriteFile("/a.txt", []byte("data"), 0o644)
//
// The underlying billy.Filesystem is available through Unwrap.
//
// # Thread Safety
//
// LocalFS is safe for concurrent use. MemoryFS inherits memfs's lack of
// internal locking and must not be mutated concurrently. File handles are not
// safe for concurrent use.
package billy
