package file

import (
	"os"

	"github.com/jmgilman/scriptfile/errors"
	"github.com/jmgilman/scriptfile/exec"
)

// openMode is a parsed mode string.
type openMode struct {
	text     string
	flag     int
	read     bool
	write    bool
	truncate bool
}

// parseMode parses a mode made of the letters r, w, a, +, b and e. Exactly
// one of r, w and a must be present.
func parseMode(mode string) (openMode, error) {
	m := openMode{text: mode}
	var primary byte
	var plus, excl bool

	for i := 0; i < len(mode); i++ {
		switch c := mode[i]; c {
		case 'r', 'w', 'a':
			if primary != 0 {
				return m, errors.Newf(errors.CodeInvalidInput, "invalid mode %q: more than one of r, w, a", mode)
			}
			primary = c
		case '+':
			plus = true
		case 'e':
			excl = true
		case 'b':
		default:
			return m, errors.Newf(errors.CodeInvalidInput, "invalid mode %q: unknown letter %q", mode, c)
		}
	}

	switch primary {
	case 'r':
		m.read = true
	case 'w':
		m.write, m.truncate = true, true
		m.flag = os.O_CREATE
	case 'a':
		m.write = true
		m.flag = os.O_CREATE | os.O_APPEND
	default:
		return m, errors.Newf(errors.CodeInvalidInput, "invalid mode %q: one of r, w, a is required", mode)
	}

	if plus {
		m.read, m.write = true, true
	}
	if excl {
		m.flag |= os.O_CREATE | os.O_EXCL
		m.truncate = false
	}

	switch {
	case m.read && m.write:
		m.flag |= os.O_RDWR
	case m.write:
		m.flag |= os.O_WRONLY
	default:
		m.flag |= os.O_RDONLY
	}
	return m, nil
}

// pipeMode maps a parsed mode onto pipe directions.
func (m openMode) pipeMode() exec.PipeMode {
	var pm exec.PipeMode
	if m.read {
		pm |= exec.PipeRead
	}
	if m.write {
		pm |= exec.PipeWrite
	}
	return pm
}

// appends reports whether every write lands at the end of the file.
func (m openMode) appends() bool {
	return m.flag&os.O_APPEND != 0
}
