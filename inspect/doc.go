// Package inspect describes filesystem paths and directory trees on top of a
// core.FS provider, and offers a few thin mutating operations.
//
// An Inspector answers four kinds of questions:
//
//   - Describe reports whether a path exists, what kind of object it is and
//     its name parts (name, stem, suffix).
//   - WalkTree flattens a directory tree into a TreeReport of Descriptors.
//   - Canonical resolves a path to its absolute, symlink-free form.
//   - Hash computes a content digest of a regular file.
//
// The mutating operations (Copy, Move, Mkdir, Mklink, Touch) each wrap a
// single provider primitive and confirm the result with an existence check.
//
// Usage:
//
//	in := inspect.New(billy.NewLocal())
//	d, err := in.Describe("go.mod")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(d.Name(), d.IsFile())
//
// # Symbolic links
//
// A symbolic link exists as soon as the link itself does, whether or not its
// target resolves. A dangling link is therefore Exists and IsSymlink but
// neither IsFile nor IsDirectory. A link to a directory is both IsDirectory
// and IsSymlink, and WalkTree reports it without descending into it.
//
// # Errors
//
// Failures are errors.PlatformError values. Predicates (Exists, IsFile, ...)
// never fail and answer false instead. Describe only fails when the provider
// denies access to the path.
//
// # Thread Safety
//
// An Inspector holds only immutable configuration and never changes the
// process working directory. It is safe for concurrent use whenever its
// provider is.
package inspect
