package core

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// CopyFile copies the content and permission bits of the regular file src
// to dst within fsys. An existing dst is truncated.
func CopyFile(fsys FS, src, dst string) (err error) {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}

// CopyTree recursively copies the directory src to dst within fsys.
//
// dst must not exist (ErrExist otherwise). Symbolic links below src are
// recreated with the same target instead of being followed; on providers
// without SymlinkFS a link fails the copy with ErrUnsupported.
func CopyTree(fsys FS, src, dst string) error {
	occupied, err := lexists(fsys, dst)
	if err != nil {
		return err
	}
	if occupied {
		return &fs.PathError{Op: "copytree", Path: dst, Err: ErrExist}
	}

	sfs, _ := fsys.(SymlinkFS)
	return fsys.Walk(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(filepath.Clean(src), filepath.Clean(p))
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.Type()&fs.ModeSymlink != 0:
			if sfs == nil {
				return &fs.PathError{Op: "copytree", Path: p, Err: ErrUnsupported}
			}
			link, err := sfs.Readlink(p)
			if err != nil {
				return err
			}
			return sfs.Symlink(link, target)
		case d.IsDir():
			perm := fs.FileMode(0o755)
			if info, err := d.Info(); err == nil {
				perm = info.Mode().Perm()
			}
			return fsys.MkdirAll(target, perm)
		default:
			return CopyFile(fsys, p, target)
		}
	})
}

// CopyFromFS copies the tree below srcRoot in a read-only filesystem (an
// embed.FS or a testing/fstest.MapFS) into dst below dstRoot, preserving
// directory structure and permission bits.
//
// Use "." as srcRoot to copy the whole source filesystem.
func CopyFromFS(src fs.FS, dst FS, srcRoot, dstRoot string) error {
	return fs.WalkDir(src, srcRoot, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := filePath
		if srcRoot != "." && srcRoot != "" {
			rel = strings.TrimPrefix(strings.TrimPrefix(filePath, srcRoot), "/")
		}
		target := path.Join(filepath.ToSlash(dstRoot), rel)

		info, err := d.Info()
		if err != nil {
			return err
		}

		if d.IsDir() {
			return dst.MkdirAll(target, info.Mode().Perm()|0o700)
		}

		data, err := fs.ReadFile(src, filePath)
		if err != nil {
			return err
		}
		if dir := path.Dir(target); dir != "." && dir != "" {
			if err := dst.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		return dst.WriteFile(target, data, info.Mode().Perm())
	})
}

// lexists reports whether name is occupied, counting a dangling symbolic
// link as occupied when the provider can tell.
func lexists(fsys FS, name string) (bool, error) {
	if mfs, ok := fsys.(MetadataFS); ok {
		_, err := mfs.Lstat(name)
		if err == nil {
			return true, nil
		}
		if isNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return fsys.Exists(name)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
