package inspect

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/jmgilman/go/fsinspect/errors"
	"github.com/jmgilman/go/fsinspect/fs/core"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// Copy copies src to dst and reports whether the target exists afterwards.
//
// A symbolic link is recreated at dst with the same target. A directory is
// copied recursively, keeping links as links, and dst must not exist. A file
// keeps its permission bits; if dst is a directory the copy lands at
// dst/<base of src>.
func (i *Inspector) Copy(src, dst string) (bool, error) {
	sd, err := i.Describe(src)
	if err != nil {
		return false, err
	}
	if !sd.Exists() {
		return false, errors.NewPath(errors.CodeNotFound, "copy", src)
	}

	target, err := i.copyTarget(sd, dst)
	if err != nil {
		return false, err
	}
	if err := i.checkNotInside("copy", sd, target); err != nil {
		return false, err
	}
	if err := i.copyEntry(sd, target); err != nil {
		return false, err
	}

	i.logger.Verbose("copied %s to %s", sd.AbsPath(), target)
	return i.Exists(target), nil
}

// checkNotInside rejects a target at or below the directory sd, which would
// copy or move a tree into itself. Both paths are compared after symlinks
// are resolved.
func (i *Inspector) checkNotInside(op string, sd Descriptor, target string) error {
	if !sd.IsDirectory() || sd.IsSymlink() {
		return nil
	}

	src, err := i.Canonical(sd.AbsPath())
	if err != nil {
		return err
	}
	dst := target
	if parent, err := i.Canonical(filepath.Dir(target)); err == nil {
		dst = filepath.Join(parent, filepath.Base(target))
	}

	if within(src, dst) || within(sd.AbsPath(), target) {
		return errors.WithContext(
			errors.NewPath(errors.CodeInvalidArgument, op, target), "source", sd.Path())
	}
	return nil
}

// within reports whether p is dir or lies below it.
func within(dir, p string) bool {
	rel, err := filepath.Rel(dir, p)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// copyTarget picks where a copy of sd ends up for the requested dst.
func (i *Inspector) copyTarget(sd Descriptor, dst string) (string, error) {
	target := i.abs(dst)

	switch {
	case sd.IsSymlink(), sd.IsDirectory():
		dd, err := i.Describe(dst)
		if err != nil {
			return "", err
		}
		if dd.Exists() {
			return "", errors.NewPath(errors.CodeAlreadyExists, "copy", dst)
		}
	case i.IsDirectory(dst):
		target = filepath.Join(target, filepath.Base(sd.AbsPath()))
	}
	return target, nil
}

// copyEntry copies the object described by sd to target.
func (i *Inspector) copyEntry(sd Descriptor, target string) error {
	src := sd.AbsPath()

	switch {
	case sd.IsSymlink():
		if i.links == nil {
			return errors.NewPath(errors.CodeUnsupported, "copy", sd.Path())
		}
		link, err := i.links.Readlink(src)
		if err != nil {
			return errors.FromFS(err, "copy", sd.Path())
		}
		return errors.FromFS(i.links.Symlink(link, target), "copy", target)
	case sd.IsDirectory():
		return errors.FromFS(core.CopyTree(i.fsys, src, target), "copy", sd.Path())
	default:
		return errors.FromFS(core.CopyFile(i.fsys, src, target), "copy", sd.Path())
	}
}

// Move renames src to dst and reports whether the target exists afterwards.
//
// If dst is a directory the entry moves to dst/<base of src>, which must not
// exist. When the provider reports a cross-device rename the entry is
// copied to a staging name next to the target, renamed into place and the
// source is removed.
func (i *Inspector) Move(src, dst string) (bool, error) {
	sd, err := i.Describe(src)
	if err != nil {
		return false, err
	}
	if !sd.Exists() {
		return false, errors.NewPath(errors.CodeNotFound, "move", src)
	}

	target := i.abs(dst)
	if i.IsDirectory(dst) {
		target = filepath.Join(target, filepath.Base(sd.AbsPath()))
		if i.Exists(target) {
			return false, errors.NewPath(errors.CodeAlreadyExists, "move", target)
		}
	}
	if err := i.checkNotInside("move", sd, target); err != nil {
		return false, err
	}

	err = i.fsys.Rename(sd.AbsPath(), target)
	switch {
	case errors.Is(err, syscall.EXDEV):
		i.logger.Verbose("rename %s crosses devices, copying", sd.AbsPath())
		if err := i.moveAcross(sd, target); err != nil {
			return false, err
		}
	case err != nil:
		return false, errors.FromFS(err, "move", src)
	}

	i.logger.Verbose("moved %s to %s", sd.AbsPath(), target)
	return i.Exists(target), nil
}

// moveAcross copies sd to a uuid-named sibling of target, renames it into
// place and removes the source. The staging copy is removed on failure.
func (i *Inspector) moveAcross(sd Descriptor, target string) error {
	staging := filepath.Join(filepath.Dir(target), "."+filepath.Base(target)+"."+uuid.NewString())

	if err := i.copyEntry(sd, staging); err != nil {
		_ = i.fsys.RemoveAll(staging)
		return err
	}
	if err := i.fsys.Rename(staging, target); err != nil {
		_ = i.fsys.RemoveAll(staging)
		return errors.FromFS(err, "move", target)
	}
	return errors.FromFS(i.fsys.RemoveAll(sd.AbsPath()), "move", sd.Path())
}

// Mkdir creates p and any missing parents. An existing directory is not an
// error.
func (i *Inspector) Mkdir(p string) error {
	abs := i.abs(p)
	if err := i.fsys.MkdirAll(abs, dirPerm); err != nil {
		return errors.FromFS(err, "mkdir", p)
	}
	i.logger.Verbose("created directory %s", abs)
	return nil
}

// Mklink creates link as a symbolic link to source and reports whether the
// link exists afterwards. source is stored as given, relative or not.
func (i *Inspector) Mklink(link, source string) (bool, error) {
	if i.links == nil {
		return false, errors.WithContext(
			errors.NewPath(errors.CodeUnsupported, "mklink", link), "backend", i.fsys.Type().String())
	}

	ld, err := i.Describe(link)
	if err != nil {
		return false, err
	}
	if ld.Exists() {
		return false, errors.NewPath(errors.CodeAlreadyExists, "mklink", link)
	}

	if err := i.links.Symlink(source, ld.AbsPath()); err != nil {
		return false, errors.FromFS(err, "mklink", link)
	}

	i.logger.Verbose("linked %s -> %s", ld.AbsPath(), source)
	return i.Exists(link), nil
}

// Touch creates an empty file at p. It returns false, leaving any content
// untouched, when p already exists, and fails with CodeNotFound when the
// parent directory is missing.
func (i *Inspector) Touch(p string) (bool, error) {
	d, err := i.Describe(p)
	if err != nil {
		return false, err
	}
	if d.Exists() {
		return false, nil
	}

	if !i.IsDirectory(filepath.Dir(d.AbsPath())) {
		return false, errors.WithContext(
			errors.NewPath(errors.CodeNotFound, "touch", p), "parent", filepath.Dir(d.AbsPath()))
	}

	f, err := i.fsys.OpenFile(d.AbsPath(), os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, errors.FromFS(err, "touch", p)
	}
	if err := f.Close(); err != nil {
		return false, errors.FromFS(err, "touch", p)
	}

	i.logger.Verbose("touched %s", d.AbsPath())
	return true, nil
}
