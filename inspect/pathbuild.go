package inspect

import (
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/fsinspect/errors"
)

// PathMode selects how BuildPath joins its segments.
type PathMode int

const (
	// PathAbsolute joins the cleaned segments onto root.
	PathAbsolute PathMode = iota + 1
	// PathRelative cleans the joined segments and ignores root.
	PathRelative
)

// String returns "absolute", "relative" or "unknown".
func (m PathMode) String() string {
	switch m {
	case PathAbsolute:
		return "absolute"
	case PathRelative:
		return "relative"
	default:
		return "unknown"
	}
}

// ParsePathMode converts "absolute" or "relative" (also "abs" and "rel",
// case-insensitive) to a PathMode.
func ParsePathMode(s string) (PathMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "absolute", "abs":
		return PathAbsolute, nil
	case "relative", "rel":
		return PathRelative, nil
	default:
		return 0, errors.Newf(errors.CodeInvalidArgument, "unknown path mode %q", s)
	}
}

// BuildPath joins segments lexically. Nothing on disk is consulted.
//
//	BuildPath(PathRelative, "/ignored", "a", "..", "b") // "b"
//	BuildPath(PathAbsolute, "/root", "a", "b")          // "/root/a/b"
func BuildPath(mode PathMode, root string, segments ...string) (string, error) {
	rel := filepath.Clean(filepath.Join(segments...))

	switch mode {
	case PathAbsolute:
		return filepath.Join(root, rel), nil
	case PathRelative:
		return rel, nil
	default:
		return "", errors.Newf(errors.CodeInvalidArgument, "unknown path mode %d", int(mode))
	}
}
