package ini

import (
	"bytes"
	"slices"
	"strings"

	"github.com/jmgilman/scriptfile/errors"
)

// RootSection addresses the keys before the first section header.
const RootSection = ""

// Pair is one key line of a section.
type Pair struct {
	Key   string
	Value string
}

// Document is an ordered list of raw INI lines.
type Document struct {
	lines []string
	crlf  bool
}

type lineKind int

const (
	lineOther lineKind = iota
	lineHeader
	lineKey
)

type line struct {
	kind  lineKind
	name  string
	value string
}

func classify(raw string) line {
	s := strings.TrimSpace(raw)
	if s == "" || s[0] == ';' || s[0] == '#' {
		return line{}
	}
	if s[0] == '[' {
		if end := strings.IndexByte(s, ']'); end > 0 {
			return line{kind: lineHeader, name: strings.TrimSpace(s[1:end])}
		}
		return line{}
	}
	key, val, ok := strings.Cut(s, "=")
	if !ok {
		return line{}
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return line{}
	}
	return line{kind: lineKey, name: key, value: strings.TrimSpace(val)}
}

// Parse splits data into lines. LF and CRLF endings are both accepted; the
// ending of the first line is used when the document is written back.
func Parse(data []byte) *Document {
	d := &Document{}
	if len(data) == 0 {
		return d
	}
	text := string(data)
	if i := strings.IndexByte(text, '\n'); i > 0 && text[i-1] == '\r' {
		d.crlf = true
	}
	text = strings.TrimSuffix(text, "\n")
	for _, l := range strings.Split(text, "\n") {
		d.lines = append(d.lines, strings.TrimSuffix(l, "\r"))
	}
	return d
}

// Bytes renders the document with every line terminated.
func (d *Document) Bytes() []byte {
	eol := "\n"
	if d.crlf {
		eol = "\r\n"
	}
	var b bytes.Buffer
	for _, l := range d.lines {
		b.WriteString(l)
		b.WriteString(eol)
	}
	return b.Bytes()
}

// Lines returns a copy of the raw lines.
func (d *Document) Lines() []string {
	return append([]string(nil), d.lines...)
}

// bounds locates a section. start and end delimit its body; header is the
// header line index, or -1 for the root section, which always exists.
func (d *Document) bounds(section string) (header, start, end int, ok bool) {
	header = -1
	for i, l := range d.lines {
		c := classify(l)
		if c.kind != lineHeader {
			continue
		}
		if header >= 0 || section == RootSection {
			return header, start, i, true
		}
		if strings.EqualFold(c.name, section) {
			header, start = i, i+1
		}
	}
	if section != RootSection && header < 0 {
		return -1, 0, 0, false
	}
	return header, start, len(d.lines), true
}

func (d *Document) findKey(start, end int, key string) (int, line) {
	for i := start; i < end; i++ {
		if c := classify(d.lines[i]); c.kind == lineKey && strings.EqualFold(c.name, key) {
			return i, c
		}
	}
	return -1, line{}
}

// HasSection reports whether a section header exists. The root section
// always exists.
func (d *Document) HasSection(section string) bool {
	_, _, _, ok := d.bounds(section)
	return ok
}

// Get returns the trimmed value of the first matching key.
func (d *Document) Get(section, key string) (string, bool) {
	_, start, end, ok := d.bounds(section)
	if !ok {
		return "", false
	}
	i, c := d.findKey(start, end, key)
	if i < 0 {
		return "", false
	}
	return c.value, true
}

func validate(section, key, val string) error {
	switch {
	case strings.ContainsAny(section, "]\r\n"):
		return errors.Newf(errors.CodeInvalidInput, "invalid section name %q", section)
	case strings.TrimSpace(key) == "":
		return errors.New(errors.CodeInvalidInput, "key must not be empty")
	case strings.ContainsAny(key, "=\r\n") || strings.ContainsAny(strings.TrimSpace(key)[:1], "[;#"):
		return errors.Newf(errors.CodeInvalidInput, "invalid key name %q", key)
	case strings.ContainsAny(val, "\r\n"):
		return errors.Newf(errors.CodeInvalidInput, "value for %q contains a line break", key)
	}
	return nil
}

// Set writes "key = value" into section. An existing key is rewritten in
// place keeping its spelling; a new key goes after the last key line of the
// section; a missing section is appended to the end of the document.
func (d *Document) Set(section, key, val string) error {
	if err := validate(section, key, val); err != nil {
		return err
	}
	key = strings.TrimSpace(key)
	val = strings.TrimSpace(val)

	_, start, end, ok := d.bounds(section)
	if !ok {
		if n := len(d.lines); n > 0 && strings.TrimSpace(d.lines[n-1]) != "" {
			d.lines = append(d.lines, "")
		}
		d.lines = append(d.lines, "["+section+"]", key+" = "+val)
		return nil
	}

	if i, c := d.findKey(start, end, key); i >= 0 {
		d.lines[i] = c.name + " = " + val
		return nil
	}

	at := start
	for i := start; i < end; i++ {
		if classify(d.lines[i]).kind == lineKey {
			at = i + 1
		}
	}
	d.lines = slices.Insert(d.lines, at, key+" = "+val)
	return nil
}

// RemoveKey deletes the first matching key line and reports whether one
// was found.
func (d *Document) RemoveKey(section, key string) bool {
	_, start, end, ok := d.bounds(section)
	if !ok {
		return false
	}
	i, _ := d.findKey(start, end, key)
	if i < 0 {
		return false
	}
	d.lines = slices.Delete(d.lines, i, i+1)
	return true
}

// RemoveSection deletes a section header and its body up to the next
// header. For the root section only key lines are removed.
func (d *Document) RemoveSection(section string) bool {
	header, start, end, ok := d.bounds(section)
	if !ok {
		return false
	}
	if header >= 0 {
		d.lines = slices.Delete(d.lines, header, end)
		return true
	}

	kept := make([]string, 0, len(d.lines))
	removed := false
	for i, l := range d.lines {
		if i >= start && i < end && classify(l).kind == lineKey {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	d.lines = kept
	return removed
}

// Sections returns section names that start with prefix, compared without
// case, in document order. Repeated headers are listed once.
func (d *Document) Sections(prefix string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, l := range d.lines {
		c := classify(l)
		if c.kind != lineHeader || c.name == "" {
			continue
		}
		if len(c.name) < len(prefix) || !strings.EqualFold(c.name[:len(prefix)], prefix) {
			continue
		}
		if k := strings.ToLower(c.name); !seen[k] {
			seen[k] = true
			out = append(out, c.name)
		}
	}
	return out
}

// Keys returns the key names of a section in order.
func (d *Document) Keys(section string) []string {
	pairs, _ := d.Values(section)
	keys := make([]string, 0, len(pairs))
	for _, p := range pairs {
		keys = append(keys, p.Key)
	}
	return keys
}

// Values returns the key/value pairs of a section in order. ok is false
// when the section does not exist, which is distinct from an empty one.
func (d *Document) Values(section string) (pairs []Pair, ok bool) {
	_, start, end, ok := d.bounds(section)
	if !ok {
		return nil, false
	}
	pairs = []Pair{}
	for i := start; i < end; i++ {
		if c := classify(d.lines[i]); c.kind == lineKey {
			pairs = append(pairs, Pair{Key: c.name, Value: c.value})
		}
	}
	return pairs, true
}
