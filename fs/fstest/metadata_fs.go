package fstest

import (
	"testing"
	"time"

	"github.com/jmgilman/scriptfile/fs/core"
)

// TestMetadataFS tests Chmod and Chtimes.
// Skips if the filesystem doesn't implement core.MetadataFS.
func TestMetadataFS(t *testing.T, filesystem core.FS, config FSTestConfig) {
	mfs, ok := filesystem.(core.MetadataFS)
	if !ok {
		t.Skip("MetadataFS not supported")
	}
	mustWrite(t, filesystem, "meta.txt", []byte("metadata"))

	config.run(t, "MetadataFS", "Chmod", func(t *testing.T) {
		if err := mfs.Chmod("meta.txt", 0o600); err != nil {
			t.Fatalf("Chmod(meta.txt, 0600): got error %v, want nil", err)
		}
		info, err := filesystem.Stat("meta.txt")
		if err != nil {
			t.Fatalf("Stat(meta.txt): got error %v", err)
		}
		if got := info.Mode().Perm(); got != 0o600 {
			t.Errorf("Mode().Perm(): got %o, want 600", got)
		}
	})

	config.run(t, "MetadataFS", "Chtimes", func(t *testing.T) {
		mtime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
		if err := mfs.Chtimes("meta.txt", time.Time{}, mtime); err != nil {
			t.Fatalf("Chtimes(meta.txt): got error %v, want nil", err)
		}
		info, err := filesystem.Stat("meta.txt")
		if err != nil {
			t.Fatalf("Stat(meta.txt): got error %v", err)
		}
		if !info.ModTime().Equal(mtime) {
			t.Errorf("ModTime(): got %v, want %v", info.ModTime(), mtime)
		}
	})
}
