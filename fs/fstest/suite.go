// Package fstest provides a conformance test suite for core.FS providers.
//
// The suite checks the contracts the inspect package relies on: reads and
// stats, writes and directory creation, removal and rename, walking, and the
// optional MetadataFS and SymlinkFS capabilities. Providers that cannot
// express a behavior describe that through FSTestConfig instead of skipping
// whole groups.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FS {
//	        return myprovider.New()
//	    })
//	}
package fstest

import (
	"slices"
	"testing"

	"github.com/jmgilman/go/fsinspect/fs/core"
)

// FSTestConfig configures the suite to match provider behavior.
type FSTestConfig struct {
	// IdempotentDelete indicates Remove on a missing path returns nil.
	IdempotentDelete bool

	// ImplicitParentDirs indicates files can be created without parent
	// directories, as with object stores.
	ImplicitParentDirs bool

	// SkipTests lists test names to skip, e.g. "WriteFS/MkdirNoParent".
	SkipTests []string
}

// POSIXTestConfig returns configuration for POSIX-like filesystems.
func POSIXTestConfig() FSTestConfig {
	return FSTestConfig{}
}

// S3TestConfig returns configuration for object-store backed filesystems.
func S3TestConfig() FSTestConfig {
	return FSTestConfig{
		IdempotentDelete:   true,
		ImplicitParentDirs: true,
	}
}

func (c FSTestConfig) skip(t *testing.T, name string) bool {
	t.Helper()
	if slices.Contains(c.SkipTests, name) {
		t.Skip("Skipped by provider configuration")
		return true
	}
	return false
}

// TestSuite runs all conformance tests using POSIXTestConfig.
// newFS must return a fresh, empty filesystem on every call.
func TestSuite(t *testing.T, newFS func() core.FS) {
	TestSuiteWithConfig(t, newFS, POSIXTestConfig())
}

// TestSuiteWithConfig runs all conformance tests with the given config.
func TestSuiteWithConfig(t *testing.T, newFS func() core.FS, config FSTestConfig) {
	groups := []struct {
		name string
		run  func(*testing.T, core.FS, FSTestConfig)
	}{
		{"ReadFS", TestReadFSWithConfig},
		{"WriteFS", TestWriteFSWithConfig},
		{"ManageFS", TestManageFSWithConfig},
		{"WalkFS", TestWalkFSWithConfig},
		{"MetadataFS", TestMetadataFSWithConfig},
		{"SymlinkFS", TestSymlinkFSWithConfig},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if config.skip(t, g.name) {
				return
			}
			g.run(t, newFS(), config)
		})
	}
}

// run starts a named subtest unless the config skips it.
func run(t *testing.T, config FSTestConfig, group, name string, fn func(t *testing.T)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if config.skip(t, group+"/"+name) {
			return
		}
		fn(t)
	})
}
