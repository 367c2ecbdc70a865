package inspect

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/fsinspect/errors"
)

// maxSymlinks bounds link resolution, matching the Linux ELOOP limit.
const maxSymlinks = 255

// Canonical returns the absolute, clean, symlink-free form of p.
//
// Components are resolved left to right and ".." is applied to the resolved
// prefix, so "link/.." is the parent of the link's target, not the directory
// holding the link. A missing component gives
// CodeNotFound and more than 255 links give CodeInvalidArgument. Providers
// without symlink support only get the existence check.
func (i *Inspector) Canonical(p string) (string, error) {
	if i.meta == nil || i.links == nil {
		abs := i.abs(p)
		ok, err := i.fsys.Exists(abs)
		if err != nil {
			return "", errors.FromFS(err, "canonical", p)
		}
		if !ok {
			return "", errors.NewPath(errors.CodeNotFound, "canonical", p)
		}
		return abs, nil
	}

	raw := p
	if !filepath.IsAbs(p) {
		raw = i.workDir + string(filepath.Separator) + p
	}
	return i.resolve(p, raw)
}

// resolve walks the uncleaned path raw one component at a time.
func (i *Inspector) resolve(p, raw string) (string, error) {
	sep := string(filepath.Separator)
	dest := sep
	pending := splitPath(raw)
	links := 0

	for len(pending) > 0 {
		comp := pending[0]
		pending = pending[1:]

		switch comp {
		case "", ".":
			continue
		case "..":
			dest = filepath.Dir(dest)
			continue
		}

		next := filepath.Join(dest, comp)
		info, err := i.meta.Lstat(next)
		if err != nil {
			return "", errors.FromFS(err, "canonical", p)
		}

		if info.Mode()&fs.ModeSymlink == 0 {
			if !info.IsDir() && hasMore(pending) {
				return "", errors.WithContext(
					errors.NewPath(errors.CodeNotFound, "canonical", p), "not_a_directory", next)
			}
			dest = next
			continue
		}

		links++
		if links > maxSymlinks {
			return "", errors.WithContextMap(
				errors.New(errors.CodeInvalidArgument, "too many levels of symbolic links"),
				map[string]interface{}{errors.ContextOp: "canonical", errors.ContextPath: p},
			)
		}

		target, err := i.links.Readlink(next)
		if err != nil {
			return "", errors.FromFS(err, "canonical", p)
		}
		if filepath.IsAbs(target) {
			dest = sep
		}
		pending = append(splitPath(target), pending...)
	}

	return dest, nil
}

func splitPath(p string) []string {
	return strings.Split(filepath.ToSlash(p), "/")
}

// hasMore reports whether any real component is left to resolve.
func hasMore(pending []string) bool {
	for _, c := range pending {
		if c != "" && c != "." {
			return true
		}
	}
	return false
}
