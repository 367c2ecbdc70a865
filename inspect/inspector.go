package inspect

import (
	"os"
	"path/filepath"

	"github.com/jmgilman/go/fsinspect/fs/core"
)

// Logger receives diagnostic output from an Inspector.
// internal/logging provides console and null implementations.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	Verbose(format string, args ...interface{})
	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})
	// Error logs error messages.
	Error(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Verbose(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})    {}
func (nopLogger) Error(string, ...interface{})   {}

// Inspector answers questions about paths on a single provider.
type Inspector struct {
	fsys    core.FS
	meta    core.MetadataFS
	links   core.SymlinkFS
	workDir string
	logger  Logger
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithWorkDir sets the directory relative paths are resolved against.
// The default is the process working directory for local providers and "/"
// for every other provider.
func WithWorkDir(dir string) Option {
	return func(i *Inspector) {
		i.workDir = dir
	}
}

// WithLogger sets the logger used for verbose traces. The default discards
// everything.
func WithLogger(l Logger) Option {
	return func(i *Inspector) {
		if l != nil {
			i.logger = l
		}
	}
}

// New creates an Inspector for fsys.
// Symlink awareness is enabled when fsys implements core.MetadataFS and
// core.SymlinkFS.
func New(fsys core.FS, opts ...Option) *Inspector {
	i := &Inspector{
		fsys:   fsys,
		logger: nopLogger{},
	}
	i.meta, _ = fsys.(core.MetadataFS)
	i.links, _ = fsys.(core.SymlinkFS)

	for _, opt := range opts {
		opt(i)
	}

	i.workDir = i.resolveWorkDir()
	return i
}

// FS returns the provider the Inspector operates on.
func (i *Inspector) FS() core.FS {
	return i.fsys
}

// WorkDir returns the absolute directory relative paths resolve against.
func (i *Inspector) WorkDir() string {
	return i.workDir
}

func (i *Inspector) resolveWorkDir() string {
	local := i.fsys.Type() == core.FSTypeLocal

	dir := i.workDir
	if dir == "" {
		if !local {
			return string(filepath.Separator)
		}
		wd, err := os.Getwd()
		if err != nil {
			return string(filepath.Separator)
		}
		return wd
	}

	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	if local {
		if abs, err := filepath.Abs(dir); err == nil {
			return abs
		}
	}
	return filepath.Join(string(filepath.Separator), dir)
}

// abs makes p absolute against the working directory and cleans it.
func (i *Inspector) abs(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(i.workDir, p)
}
