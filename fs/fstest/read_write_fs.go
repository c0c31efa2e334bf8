package fstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"testing"

	"github.com/jmgilman/scriptfile/fs/core"
)

// TestReadFS tests Stat, ReadFile and Exists.
func TestReadFS(t *testing.T, filesystem core.FS, config FSTestConfig) {
	content := []byte("test file content")
	mustWrite(t, filesystem, "read.txt", content)

	config.run(t, "ReadFS", "Stat", func(t *testing.T) {
		info, err := filesystem.Stat("read.txt")
		if err != nil {
			t.Fatalf("Stat(read.txt): got error %v, want nil", err)
		}
		if info.IsDir() {
			t.Errorf("Stat(read.txt): IsDir() = true, want false")
		}
		if info.Size() != int64(len(content)) {
			t.Errorf("Stat(read.txt): Size() = %d, want %d", info.Size(), len(content))
		}
	})

	config.run(t, "ReadFS", "StatNotExist", func(t *testing.T) {
		_, err := filesystem.Stat("missing.txt")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(missing.txt): got error %v, want fs.ErrNotExist", err)
		}
	})

	config.run(t, "ReadFS", "ReadFile", func(t *testing.T) {
		data, err := filesystem.ReadFile("read.txt")
		if err != nil {
			t.Fatalf("ReadFile(read.txt): got error %v, want nil", err)
		}
		if !bytes.Equal(data, content) {
			t.Errorf("ReadFile(read.txt): got %q, want %q", data, content)
		}
	})

	config.run(t, "ReadFS", "Exists", func(t *testing.T) {
		ok, err := filesystem.Exists("read.txt")
		if err != nil || !ok {
			t.Errorf("Exists(read.txt): got (%v, %v), want (true, nil)", ok, err)
		}
		ok, err = filesystem.Exists("missing.txt")
		if err != nil || ok {
			t.Errorf("Exists(missing.txt): got (%v, %v), want (false, nil)", ok, err)
		}
	})
}

// TestWriteFS tests OpenFile flag handling and WriteFile.
func TestWriteFS(t *testing.T, filesystem core.FS, config FSTestConfig) {
	config.run(t, "WriteFS", "CreateTruncate", func(t *testing.T) {
		mustWrite(t, filesystem, "trunc.txt", []byte("old content"))

		f, err := filesystem.OpenFile("trunc.txt", os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			t.Fatalf("OpenFile(trunc.txt): got error %v, want nil", err)
		}
		if _, err := f.Write([]byte("new")); err != nil {
			t.Errorf("Write(): got error %v", err)
		}
		closeFile(t, f)

		data, _ := filesystem.ReadFile("trunc.txt")
		if string(data) != "new" {
			t.Errorf("ReadFile(trunc.txt): got %q, want %q", data, "new")
		}
	})

	config.run(t, "WriteFS", "Append", func(t *testing.T) {
		mustWrite(t, filesystem, "append.txt", []byte("one\n"))

		f, err := filesystem.OpenFile("append.txt", os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			t.Fatalf("OpenFile(append.txt): got error %v, want nil", err)
		}
		if _, err := f.Write([]byte("two\n")); err != nil {
			t.Errorf("Write(): got error %v", err)
		}
		closeFile(t, f)

		data, _ := filesystem.ReadFile("append.txt")
		if string(data) != "one\ntwo\n" {
			t.Errorf("ReadFile(append.txt): got %q, want %q", data, "one\ntwo\n")
		}
	})

	config.run(t, "WriteFS", "Exclusive", func(t *testing.T) {
		mustWrite(t, filesystem, "excl.txt", nil)

		_, err := filesystem.OpenFile("excl.txt", os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
		if !errors.Is(err, fs.ErrExist) {
			t.Errorf("OpenFile(excl.txt, O_EXCL): got error %v, want fs.ErrExist", err)
		}
	})

	config.run(t, "WriteFS", "OpenNotExist", func(t *testing.T) {
		_, err := filesystem.OpenFile("nope.txt", os.O_RDONLY, 0)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("OpenFile(nope.txt): got error %v, want fs.ErrNotExist", err)
		}
	})

	config.run(t, "WriteFS", "ReadBack", func(t *testing.T) {
		f, err := filesystem.OpenFile("rw.txt", os.O_RDWR|os.O_CREATE, 0o644)
		if err != nil {
			t.Fatalf("OpenFile(rw.txt): got error %v, want nil", err)
		}
		defer closeFile(t, f)

		if _, err := f.Write([]byte("hello")); err != nil {
			t.Fatalf("Write(): got error %v", err)
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			t.Fatalf("Seek(0): got error %v", err)
		}
		data, err := io.ReadAll(f)
		if err != nil || string(data) != "hello" {
			t.Errorf("ReadAll(): got (%q, %v), want (%q, nil)", data, err, "hello")
		}
	})
}

// TestManageFS tests Remove and Rename.
func TestManageFS(t *testing.T, filesystem core.FS, config FSTestConfig) {
	config.run(t, "ManageFS", "Remove", func(t *testing.T) {
		mustWrite(t, filesystem, "remove.txt", []byte("x"))
		if err := filesystem.Remove("remove.txt"); err != nil {
			t.Fatalf("Remove(remove.txt): got error %v, want nil", err)
		}
		if ok, _ := filesystem.Exists("remove.txt"); ok {
			t.Errorf("Exists(remove.txt) after Remove: got true, want false")
		}
	})

	config.run(t, "ManageFS", "RemoveNotExist", func(t *testing.T) {
		if err := filesystem.Remove("never.txt"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Remove(never.txt): got error %v, want fs.ErrNotExist", err)
		}
	})

	config.run(t, "ManageFS", "Rename", func(t *testing.T) {
		mustWrite(t, filesystem, "from.txt", []byte("moved"))
		if err := filesystem.Rename("from.txt", "to.txt"); err != nil {
			t.Fatalf("Rename(from.txt, to.txt): got error %v, want nil", err)
		}
		data, err := filesystem.ReadFile("to.txt")
		if err != nil || string(data) != "moved" {
			t.Errorf("ReadFile(to.txt): got (%q, %v), want (%q, nil)", data, err, "moved")
		}
	})
}
