package inspect

import (
	"encoding/json"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/fsinspect/errors"
)

// Descriptor reports the kind and name parts of one path.
// It is an immutable value; a missing path never carries a kind flag.
type Descriptor struct {
	path        string
	absPath     string
	exists      bool
	isDirectory bool
	isFile      bool
	isSymlink   bool
	name        string
	stem        string
	suffix      string
	hasSuffix   bool
}

func newDescriptor(path, absPath string, exists, isDir, isFile, isLink bool) Descriptor {
	if !exists {
		isDir, isFile, isLink = false, false, false
	}

	d := Descriptor{
		path:        path,
		absPath:     absPath,
		exists:      exists,
		isDirectory: isDir,
		isFile:      isFile,
		isSymlink:   isLink,
	}
	d.name, d.stem, d.suffix, d.hasSuffix = splitName(path)
	return d
}

// splitName returns the final component of p with its stem and suffix.
// A suffix needs a dot that is neither the first nor the last character.
func splitName(p string) (name, stem, suffix string, ok bool) {
	name = filepath.Base(filepath.Clean(p))
	if name == "." || name == string(filepath.Separator) {
		return "", "", "", false
	}

	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return name, name, "", false
	}
	return name, name[:i], name[i+1:], true
}

// Path returns the path as it was queried.
func (d Descriptor) Path() string { return d.path }

// AbsPath returns the queried path made absolute and cleaned, without
// resolving symbolic links.
func (d Descriptor) AbsPath() string { return d.absPath }

// Exists reports whether the path names any object, including a dangling
// symbolic link.
func (d Descriptor) Exists() bool { return d.exists }

// IsDirectory reports whether the path resolves to a directory.
func (d Descriptor) IsDirectory() bool { return d.isDirectory }

// IsFile reports whether the path resolves to a regular file.
func (d Descriptor) IsFile() bool { return d.isFile }

// IsSymlink reports whether the path itself is a symbolic link.
func (d Descriptor) IsSymlink() bool { return d.isSymlink }

// Name returns the final path component including any suffix.
func (d Descriptor) Name() string { return d.name }

// Stem returns Name without its last suffix.
func (d Descriptor) Stem() string { return d.stem }

// Suffix returns the last extension without the leading dot.
func (d Descriptor) Suffix() (string, bool) { return d.suffix, d.hasSuffix }

type descriptorDoc struct {
	Path        string  `json:"path" yaml:"path"`
	AbsPath     string  `json:"abspath" yaml:"abspath"`
	Exists      bool    `json:"exists" yaml:"exists"`
	IsDirectory bool    `json:"is_directory" yaml:"is_directory"`
	IsFile      bool    `json:"is_file" yaml:"is_file"`
	IsSymlink   bool    `json:"is_symlink" yaml:"is_symlink"`
	Name        string  `json:"name" yaml:"name"`
	Stem        string  `json:"stem" yaml:"stem"`
	Suffix      *string `json:"suffix" yaml:"suffix"`
}

func (d Descriptor) doc() descriptorDoc {
	doc := descriptorDoc{
		Path:        d.path,
		AbsPath:     d.absPath,
		Exists:      d.exists,
		IsDirectory: d.isDirectory,
		IsFile:      d.isFile,
		IsSymlink:   d.isSymlink,
		Name:        d.name,
		Stem:        d.stem,
	}
	if d.hasSuffix {
		s := d.suffix
		doc.Suffix = &s
	}
	return doc
}

// MarshalJSON implements json.Marshaler. An absent suffix is null.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.doc())
}

// MarshalYAML implements yaml.Marshaler. An absent suffix is null.
func (d Descriptor) MarshalYAML() (interface{}, error) {
	return d.doc(), nil
}

// Describe reports what p is.
//
// Relative paths resolve against the working directory. A missing path, a
// path through a non-directory and a symlink loop all produce a Descriptor
// with Exists false. The only error is CodeAccessDenied when the provider
// refuses to inspect p.
func (i *Inspector) Describe(p string) (Descriptor, error) {
	abs := i.abs(p)

	var isLink bool
	if i.meta != nil {
		info, err := i.meta.Lstat(abs)
		if err == nil {
			isLink = info.Mode()&fs.ModeSymlink != 0
		} else if errors.Is(err, fs.ErrPermission) {
			return Descriptor{}, errors.FromFS(err, "describe", p)
		}
	}

	var resolved, isDir, isFile bool
	info, err := i.fsys.Stat(abs)
	switch {
	case err == nil:
		resolved = true
		isDir = info.IsDir()
		isFile = info.Mode().IsRegular()
	case errors.Is(err, fs.ErrPermission):
		return Descriptor{}, errors.FromFS(err, "describe", p)
	}

	return newDescriptor(p, abs, isLink || resolved, isDir, isFile, isLink), nil
}

// Exists reports whether p names any object. Dangling symbolic links exist.
func (i *Inspector) Exists(p string) bool {
	d, err := i.Describe(p)
	return err == nil && d.Exists()
}

// IsDirectory reports whether p resolves to a directory.
func (i *Inspector) IsDirectory(p string) bool {
	d, err := i.Describe(p)
	return err == nil && d.IsDirectory()
}

// IsFile reports whether p resolves to a regular file.
func (i *Inspector) IsFile(p string) bool {
	d, err := i.Describe(p)
	return err == nil && d.IsFile()
}

// IsSymlink reports whether p is itself a symbolic link.
func (i *Inspector) IsSymlink(p string) bool {
	d, err := i.Describe(p)
	return err == nil && d.IsSymlink()
}
