// Package fstest provides a conformance test suite for validating filesystem
// provider implementations against the core.FS interface contracts.
//
// Provider packages call TestSuite from their own tests:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FS {
//	        return myprovider.New()
//	    })
//	}
//
// Optional capabilities (core.Locker, core.MetadataFS) are probed with type
// assertions and skipped when absent.
package fstest

import (
	"testing"

	"github.com/jmgilman/scriptfile/fs/core"
)

// FSTestConfig configures the test suite to match filesystem behavior characteristics.
type FSTestConfig struct {
	// SkipTests lists specific test names to skip (for edge cases).
	// Format: "TestGroup/SubTest" (e.g., "Locker/RangeOverlap").
	SkipTests []string
}

// TestSuite runs all applicable conformance tests against a filesystem.
// The newFS function should return a fresh, empty filesystem for each test.
func TestSuite(t *testing.T, newFS func() core.FS) {
	TestSuiteWithConfig(t, newFS, FSTestConfig{})
}

// TestSuiteWithConfig runs conformance tests with behavior configuration.
func TestSuiteWithConfig(t *testing.T, newFS func() core.FS, config FSTestConfig) {
	groups := []struct {
		name string
		run  func(*testing.T, core.FS, FSTestConfig)
	}{
		{"ReadFS", TestReadFS},
		{"WriteFS", TestWriteFS},
		{"ManageFS", TestManageFS},
		{"FileCapabilities", TestFileCapabilities},
		{"Locker", TestLocker},
		{"MetadataFS", TestMetadataFS},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if config.skip(g.name) {
				t.Skip("Skipped by provider configuration")
			}
			g.run(t, newFS(), config)
		})
	}
}

// skip reports whether name is listed in SkipTests.
func (c FSTestConfig) skip(name string) bool {
	for _, s := range c.SkipTests {
		if s == name {
			return true
		}
	}
	return false
}

// run executes a named subtest unless it is skipped.
func (c FSTestConfig) run(t *testing.T, group, name string, fn func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		if c.skip(group + "/" + name) {
			t.Skip("Skipped by provider configuration")
		}
		fn(t)
	})
}

// mustWrite seeds a file or fails the test.
func mustWrite(t *testing.T, filesystem core.FS, name string, data []byte) {
	t.Helper()
	if err := filesystem.WriteFile(name, data, 0o644); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
	}
}

// closeFile closes f and reports a failure without stopping the test.
func closeFile(t *testing.T, f core.File) {
	t.Helper()
	if err := f.Close(); err != nil {
		t.Errorf("Close(%s): got error %v", f.Name(), err)
	}
}
