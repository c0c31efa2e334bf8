package billy

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
)

// hostPath resolves name to the path on the host filesystem.
func (lfs *LocalFS) hostPath(name string) string {
	return filepath.Join(lfs.root, filepath.FromSlash(lfs.normalize(name)))
}

// Chmod changes the permission bits of the named file.
func (lfs *LocalFS) Chmod(name string, mode fs.FileMode) error {
	if ch, ok := lfs.bfs.(billy.Change); ok {
		return ch.Chmod(lfs.normalize(name), mode)
	}
	return os.Chmod(lfs.hostPath(name), mode)
}

// Chtimes changes the access and modification times of the named file.
// A zero atime keeps the access time at the new modification time.
func (lfs *LocalFS) Chtimes(name string, atime, mtime time.Time) error {
	if atime.IsZero() {
		atime = mtime
	}
	if ch, ok := lfs.bfs.(billy.Change); ok {
		return ch.Chtimes(lfs.normalize(name), atime, mtime)
	}
	return os.Chtimes(lfs.hostPath(name), atime, mtime)
}
