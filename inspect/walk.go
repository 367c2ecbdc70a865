package inspect

import (
	"encoding/json"
	"io/fs"
	"path/filepath"

	"github.com/jmgilman/go/fsinspect/errors"
)

// SkipDir and SkipAll may be returned from a WalkFunc with the same meaning
// as in io/fs.
var (
	SkipDir = fs.SkipDir
	SkipAll = fs.SkipAll
)

// WalkFunc is called once per descendant of the walked root.
//
// Returning SkipDir from a directory prunes it. Returning SkipDir from any
// other entry skips the remaining entries of its parent. SkipAll stops the
// walk without error. Any other error aborts the walk and is returned.
type WalkFunc func(d Descriptor) error

// TreeReport describes a directory and every entry below it.
type TreeReport struct {
	path    string
	results []Descriptor
	ok      bool
}

// Path returns the canonical root of the walk.
func (t TreeReport) Path() string { return t.path }

// Exists is true for every report returned by WalkTree.
func (t TreeReport) Exists() bool { return t.ok }

// IsDirectory is true for every report returned by WalkTree.
func (t TreeReport) IsDirectory() bool { return t.ok }

// Results returns a copy of the descendant descriptors in visit order.
func (t TreeReport) Results() []Descriptor {
	out := make([]Descriptor, len(t.results))
	copy(out, t.results)
	return out
}

type treeDoc struct {
	Path        string       `json:"path" yaml:"path"`
	Exists      bool         `json:"exists" yaml:"exists"`
	IsDirectory bool         `json:"is_directory" yaml:"is_directory"`
	Results     []Descriptor `json:"results" yaml:"results"`
}

func (t TreeReport) doc() treeDoc {
	results := t.results
	if results == nil {
		results = []Descriptor{}
	}
	return treeDoc{Path: t.path, Exists: t.ok, IsDirectory: t.ok, Results: results}
}

// MarshalJSON implements json.Marshaler.
func (t TreeReport) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.doc())
}

// MarshalYAML implements yaml.Marshaler.
func (t TreeReport) MarshalYAML() (interface{}, error) {
	return t.doc(), nil
}

// WalkTree describes every entry below root, depth first in provider
// directory order. The root itself is not part of the results.
//
// root must be an existing directory, otherwise the error is CodeNotFound
// and no report is produced. Symbolic links to directories are reported but
// not followed.
func (i *Inspector) WalkTree(root string) (TreeReport, error) {
	var results []Descriptor
	canon, err := i.walk(root, func(d Descriptor) error {
		results = append(results, d)
		return nil
	})
	if err != nil {
		return TreeReport{}, err
	}

	i.logger.Verbose("walked %s: %d entries", canon, len(results))
	return TreeReport{path: canon, results: results, ok: true}, nil
}

// WalkTreeFunc calls fn for every entry below root instead of collecting
// them. Preconditions and ordering are those of WalkTree.
func (i *Inspector) WalkTreeFunc(root string, fn WalkFunc) error {
	_, err := i.walk(root, fn)
	return err
}

// walk resolves root first and checks the resolved path, so the directory
// described is the one walked.
func (i *Inspector) walk(root string, fn WalkFunc) (string, error) {
	canon, err := i.Canonical(root)
	switch {
	case errors.HasCode(err, errors.CodeNotFound), errors.HasCode(err, errors.CodeInvalidArgument):
		return "", errors.NewPath(errors.CodeNotFound, "walk", root)
	case err != nil:
		return "", err
	}

	d, err := i.Describe(canon)
	if err != nil {
		return "", err
	}
	if !d.IsDirectory() {
		return "", errors.NewPath(errors.CodeNotFound, "walk", root)
	}

	i.logger.Verbose("walking %s", canon)
	err = i.walkDir(canon, "", fn)
	if errors.Is(err, SkipAll) {
		err = nil
	}
	return canon, err
}

// walkDir visits the children of root/rel. rel is carried explicitly so no
// working directory state is involved.
func (i *Inspector) walkDir(root, rel string, fn WalkFunc) error {
	dir := filepath.Join(root, rel)
	entries, err := i.fsys.ReadDir(dir)
	if err != nil {
		return errors.FromFS(err, "walk", dir)
	}

	for _, entry := range entries {
		childRel := filepath.Join(rel, entry.Name())
		d, err := i.Describe(filepath.Join(root, childRel))
		if err != nil {
			return err
		}

		descend := d.IsDirectory() && !d.IsSymlink()
		if i.meta == nil {
			// Without Lstat, Describe cannot see links; fall back to the entry type.
			descend = descend && entry.Type()&fs.ModeSymlink == 0
		}

		if err := fn(d); err != nil {
			if errors.Is(err, SkipDir) {
				if descend {
					continue
				}
				return nil
			}
			return err
		}

		if descend {
			if err := i.walkDir(root, childRel, fn); err != nil {
				return err
			}
		}
	}
	return nil
}
