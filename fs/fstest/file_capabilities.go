package fstest

import (
	"io"
	"os"
	"testing"

	"github.com/jmgilman/scriptfile/fs/core"
)

// TestFileCapabilities tests Seek plus the optional Truncater, Syncer and
// Descriptor capabilities of files returned by OpenFile.
func TestFileCapabilities(t *testing.T, filesystem core.FS, config FSTestConfig) {
	open := func(t *testing.T, name string) core.File {
		t.Helper()
		mustWrite(t, filesystem, name, []byte("0123456789"))
		f, err := filesystem.OpenFile(name, os.O_RDWR, 0o644)
		if err != nil {
			t.Fatalf("OpenFile(%s): got error %v, want nil", name, err)
		}
		t.Cleanup(func() { _ = f.Close() })
		return f
	}

	config.run(t, "FileCapabilities", "Seeker", func(t *testing.T) {
		f := open(t, "seek.txt")

		pos, err := f.Seek(-3, io.SeekEnd)
		if err != nil || pos != 7 {
			t.Fatalf("Seek(-3, SeekEnd): got (%d, %v), want (7, nil)", pos, err)
		}
		buf := make([]byte, 3)
		if _, err := io.ReadFull(f, buf); err != nil || string(buf) != "789" {
			t.Errorf("ReadFull(): got (%q, %v), want (%q, nil)", buf, err, "789")
		}
		pos, _ = f.Seek(0, io.SeekCurrent)
		if pos != 10 {
			t.Errorf("Seek(0, SeekCurrent): got %d, want 10", pos)
		}
	})

	config.run(t, "FileCapabilities", "Truncater", func(t *testing.T) {
		f := open(t, "truncate.txt")
		tr, ok := f.(core.Truncater)
		if !ok {
			t.Skip("Truncater not supported")
		}

		if err := tr.Truncate(4); err != nil {
			t.Fatalf("Truncate(4): got error %v, want nil", err)
		}
		info, err := f.Stat()
		if err != nil || info.Size() != 4 {
			t.Errorf("Stat() after Truncate(4): got size %d (err %v), want 4", sizeOf(info), err)
		}

		if err := tr.Truncate(6); err != nil {
			t.Fatalf("Truncate(6): got error %v, want nil", err)
		}
		data, _ := filesystem.ReadFile("truncate.txt")
		if string(data) != "0123\x00\x00" {
			t.Errorf("ReadFile() after extend: got %q, want %q", data, "0123\x00\x00")
		}
	})

	config.run(t, "FileCapabilities", "Syncer", func(t *testing.T) {
		f := open(t, "sync.txt")
		if s, ok := f.(core.Syncer); ok {
			if err := s.Sync(); err != nil {
				t.Errorf("Sync(): got error %v, want nil", err)
			}
		}
	})

	config.run(t, "FileCapabilities", "Descriptor", func(t *testing.T) {
		f := open(t, "fd.txt")
		d, ok := f.(core.Descriptor)
		if !ok {
			t.Skip("Descriptor not supported")
		}
		if fd := d.Descriptor(); fd < -1 {
			t.Errorf("Descriptor(): got %d, want >= -1", fd)
		}
	})
}

func sizeOf(info os.FileInfo) int64 {
	if info == nil {
		return -1
	}
	return info.Size()
}
