package billy

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/jmgilman/scriptfile/fs/core"
)

// LocalFS wraps billy's osfs for local filesystem access.
type LocalFS struct {
	provider
}

// MemoryFS wraps billy's memfs for in-memory filesystem access.
type MemoryFS struct {
	provider
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	root string
}

// WithRoot roots a local filesystem at dir instead of "/".
// Relative names passed to the filesystem are resolved against dir.
func WithRoot(dir string) Option {
	return func(c *config) {
		c.root = dir
	}
}

// NewLocal creates a go-billy-backed local filesystem.
//
// Without options the filesystem is rooted at "/" and relative names are
// resolved against the working directory, like the os package. WithRoot
// confines the filesystem to a directory and resolves relative names
// against it.
func NewLocal(opts ...Option) *LocalFS {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	root, cwdRelative := cfg.root, false
	if root == "" {
		root, cwdRelative = string(filepath.Separator), true
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	return &LocalFS{provider{
		bfs:         osfs.New(root, osfs.WithBoundOS()),
		root:        root,
		cwdRelative: cwdRelative,
		id:          "local:" + root,
	}}
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty. Options are accepted for symmetry with
// NewLocal; WithRoot has no effect.
func NewMemory(_ ...Option) *MemoryFS {
	bfs := memfs.New()
	return &MemoryFS{provider{
		bfs: bfs,
		id:  fmt.Sprintf("memory:%p", bfs),
	}}
}

// Type returns FSTypeLocal for local filesystem implementations.
func (lfs *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// Type returns FSTypeMemory for in-memory filesystem implementations.
func (mfs *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

// provider holds the operations shared by both billy backends.
type provider struct {
	bfs billy.Filesystem

	// root is the host directory backing a local filesystem; empty for memory.
	root        string
	cwdRelative bool

	// id distinguishes lock table entries of separate filesystems.
	id string
}

// Unwrap returns the underlying billy.Filesystem.
func (p *provider) Unwrap() billy.Filesystem {
	return p.bfs
}

// normalize converts paths to use forward slashes consistently.
// Absolute names under a local root are made relative to it.
func (p *provider) normalize(name string) string {
	if p.cwdRelative && !filepath.IsAbs(name) {
		if abs, err := filepath.Abs(name); err == nil {
			name = abs
		}
	}
	if p.root != "" && filepath.IsAbs(name) {
		if rel, err := filepath.Rel(p.root, name); err == nil {
			name = rel
		}
	}
	return filepath.ToSlash(filepath.Clean(name))
}

// lockKey identifies a file across every handle opened on it.
func (p *provider) lockKey(name string) string {
	return p.id + ":" + name
}

// Stat returns file metadata for the named file.
func (p *provider) Stat(name string) (fs.FileInfo, error) {
	return p.bfs.Stat(p.normalize(name))
}

// ReadFile reads the named file and returns its contents.
func (p *provider) ReadFile(name string) ([]byte, error) {
	f, err := p.bfs.Open(p.normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Exists reports whether the named file exists.
func (p *provider) Exists(name string) (bool, error) {
	_, err := p.bfs.Stat(p.normalize(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// OpenFile opens a file with the specified flags and permissions.
func (p *provider) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	name = p.normalize(name)
	f, err := p.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: p.bfs, name: name, key: p.lockKey(name)}, nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (p *provider) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return util.WriteFile(p.bfs, p.normalize(name), data, perm)
}

// Remove removes the named file.
func (p *provider) Remove(name string) error {
	return p.bfs.Remove(p.normalize(name))
}

// Rename renames (moves) oldpath to newpath.
func (p *provider) Rename(oldpath, newpath string) error {
	return p.bfs.Rename(p.normalize(oldpath), p.normalize(newpath))
}

// Compile-time interface checks.
var (
	_ core.FS         = (*LocalFS)(nil)
	_ core.FS         = (*MemoryFS)(nil)
	_ core.MetadataFS = (*LocalFS)(nil)
)
