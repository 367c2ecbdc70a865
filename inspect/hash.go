package inspect

import (
	"crypto/md5"  //nolint:gosec // content fingerprint, not a security boundary
	"crypto/sha1" //nolint:gosec // content fingerprint, not a security boundary
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"strings"

	"github.com/jmgilman/go/fsinspect/errors"
)

const hashBlockSize = 4096

// Algorithm is a content hash algorithm.
type Algorithm int

const (
	// MD5 is the default algorithm.
	MD5 Algorithm = iota
	// SHA1 selects SHA-1.
	SHA1
	// SHA256 selects SHA-256.
	SHA256
)

// String returns the lowercase algorithm name.
func (a Algorithm) String() string {
	switch a {
	case MD5:
		return "md5"
	case SHA1:
		return "sha1"
	case SHA256:
		return "sha256"
	default:
		return "unknown"
	}
}

// ParseAlgorithm converts an algorithm name such as "sha256" or "SHA-256".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "") {
	case "md5":
		return MD5, nil
	case "sha1":
		return SHA1, nil
	case "sha256":
		return SHA256, nil
	default:
		return 0, errors.Newf(errors.CodeInvalidArgument, "unknown hash algorithm %q", s)
	}
}

func (a Algorithm) new() (hash.Hash, error) {
	switch a {
	case MD5:
		return md5.New(), nil //nolint:gosec // see import
	case SHA1:
		return sha1.New(), nil //nolint:gosec // see import
	case SHA256:
		return sha256.New(), nil
	default:
		return nil, errors.Newf(errors.CodeInvalidArgument, "unknown hash algorithm %d", int(a))
	}
}

// Hash returns the MD5 digest of p as lowercase hex.
// ok is false, with no error, when p is not an existing regular file.
func (i *Inspector) Hash(p string) (digest string, ok bool, err error) {
	return i.HashWith(p, MD5)
}

// HashWith is Hash with a chosen algorithm.
func (i *Inspector) HashWith(p string, alg Algorithm) (string, bool, error) {
	h, err := alg.new()
	if err != nil {
		return "", false, err
	}

	d, err := i.Describe(p)
	if err != nil {
		return "", false, err
	}
	if !d.IsFile() {
		return "", false, nil
	}

	f, err := i.fsys.Open(d.AbsPath())
	if err != nil {
		return "", false, errors.FromFS(err, "hash", p)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, hashBlockSize)
	for {
		n, rerr := f.Read(buf)
		h.Write(buf[:n])
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return "", false, errors.FromFS(rerr, "hash", p)
		}
	}

	i.logger.Verbose("hashed %s with %s", d.AbsPath(), alg)
	return hex.EncodeToString(h.Sum(nil)), true, nil
}
