// Package pathutil maps filesystem paths onto object keys.
package pathutil

import (
	"path"
	"strings"
)

// Normalize cleans a path as if rooted, so ".." cannot climb above the
// root, and trims surrounding slashes. The empty result is returned as ".".
func Normalize(p string) string {
	p = clean(p)
	if p == "" {
		return "."
	}
	return p
}

// NormalizePrefix normalizes a key prefix; "." and "" become "".
func NormalizePrefix(prefix string) string {
	if prefix == "." {
		return ""
	}
	return clean(prefix)
}

func clean(p string) string {
	if p == "" {
		return ""
	}
	p = path.Clean("/" + strings.ReplaceAll(p, "\\", "/"))
	return strings.Trim(p, "/")
}

// JoinPath joins a prefix with a name to create a full object key.
// The root of the filesystem maps to the prefix itself.
func JoinPath(prefix, name string) string {
	name = Normalize(name)
	switch {
	case name == ".":
		return prefix
	case prefix == "":
		return name
	default:
		return prefix + "/" + name
	}
}

// DirKey returns the marker key for the directory at key. The root ("")
// has no marker and lists with an empty prefix.
func DirKey(key string) string {
	if key == "" || strings.HasSuffix(key, "/") {
		return key
	}
	return key + "/"
}

// Parent returns the key of the directory containing key, or "" at the top.
func Parent(key string) string {
	i := strings.LastIndex(key, "/")
	if i < 0 {
		return ""
	}
	return key[:i]
}
