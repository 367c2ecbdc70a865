package core

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	ErrExist = fs.ErrExist

	// ErrPermission is returned when permission is denied.
	ErrPermission = fs.ErrPermission

	// ErrUnsupported is returned when a provider cannot perform an operation,
	// such as creating a symlink in object storage. It is the standard
	// library's errors.ErrUnsupported so callers need not import this package
	// to test for it.
	ErrUnsupported = errors.ErrUnsupported
)
