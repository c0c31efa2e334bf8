package file

import (
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/jmgilman/scriptfile/errors"
	"github.com/jmgilman/scriptfile/ini"
	"github.com/jmgilman/scriptfile/value"
)

// DefaultNameProperty is the map key IniGetAllObjects and IniSetAllObjects
// use for section names.
const DefaultNameProperty = "name"

// sectionName maps a nil section to the root section.
func sectionName(section *string) string {
	if section == nil {
		return ini.RootSection
	}
	return *section
}

func checkKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New(errors.CodeInvalidInput, "key must not be empty")
	}
	return nil
}

// iniLoad reads the whole stream from offset zero.
func (h *Handle) iniLoad(op string) (*ini.Document, bool) {
	f, ok := h.seekable(op)
	if !ok {
		return nil, false
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		h.fail(op, errors.WithOp(err, op, h.name))
		return nil, false
	}
	data, err := io.ReadAll(f)
	if err != nil {
		h.fail(op, errors.WithOp(err, op, h.name))
		return nil, false
	}
	h.eof = true
	return ini.Parse(data), true
}

// iniStore replaces the stream's contents with doc.
func (h *Handle) iniStore(op string, doc *ini.Document) bool {
	data := doc.Bytes()
	if _, err := h.file.Seek(0, io.SeekStart); err != nil {
		h.fail(op, errors.WithOp(err, op, h.name))
		return false
	}
	if !h.write(op, data) {
		return false
	}
	if err := truncate(h.file, int64(len(data))); err != nil {
		h.fail(op, errors.WithOp(err, op, h.name))
		return false
	}
	h.eof = false
	return h.Flush()
}

// iniUpdate runs one read-modify-write transaction. mutate reports whether
// it changed the document; an unchanged document is not written back. On a
// mutate error nothing is written. Handles opened for append are refused
// since their writes cannot land at offset zero.
func (h *Handle) iniUpdate(op string, mutate func(*ini.Document) (bool, error)) (bool, error) {
	if h == nil {
		return false, errNilHandle
	}
	if h.appends {
		h.fail(op, errors.WithOp(errors.New(errors.CodeUnsupported, "cannot rewrite a file opened for append"), op, h.name))
		return false, nil
	}
	doc, ok := h.iniLoad(op)
	if !ok {
		return false, nil
	}
	changed, err := mutate(doc)
	if err != nil {
		h.fail(op, err)
		return false, err
	}
	if !changed {
		h.debugf(op, "document unchanged")
		return false, nil
	}
	return h.iniStore(op, doc), nil
}

// IniGetValue reads key from section (nil for the root section). The kind
// of dflt selects how the text is decoded and is returned when the key is
// missing or the file cannot be read; an Undefined default infers the kind
// from the text.
func (h *Handle) IniGetValue(section *string, key string, dflt value.Value) (value.Value, error) {
	if h == nil {
		return dflt, errNilHandle
	}
	if err := checkKey(key); err != nil {
		return dflt, err
	}
	doc, ok := h.iniLoad("iniGetValue")
	if !ok {
		return dflt, nil
	}
	return doc.Read(sectionName(section), key, dflt), nil
}

// IniSetValue writes key into section, creating the section if needed.
func (h *Handle) IniSetValue(section *string, key string, v value.Value) (bool, error) {
	if err := checkKey(key); err != nil {
		return false, err
	}
	return h.iniUpdate("iniSetValue", func(doc *ini.Document) (bool, error) {
		return true, doc.SetValue(sectionName(section), key, v)
	})
}

// IniRemoveKey removes key from section. The file is only rewritten when
// the key existed.
func (h *Handle) IniRemoveKey(section *string, key string) (bool, error) {
	if err := checkKey(key); err != nil {
		return false, err
	}
	return h.iniUpdate("iniRemoveKey", func(doc *ini.Document) (bool, error) {
		return doc.RemoveKey(sectionName(section), key), nil
	})
}

// IniRemoveSection removes a section and its keys. The file is only
// rewritten when the section existed.
func (h *Handle) IniRemoveSection(section *string) (bool, error) {
	return h.iniUpdate("iniRemoveSection", func(doc *ini.Document) (bool, error) {
		return doc.RemoveSection(sectionName(section)), nil
	})
}

// IniGetSections lists section names starting with prefix.
func (h *Handle) IniGetSections(prefix string) ([]string, error) {
	if h == nil {
		return nil, errNilHandle
	}
	doc, ok := h.iniLoad("iniGetSections")
	if !ok {
		return nil, nil
	}
	return doc.Sections(prefix), nil
}

// IniGetKeys lists the keys of a section.
func (h *Handle) IniGetKeys(section *string) ([]string, error) {
	if h == nil {
		return nil, errNilHandle
	}
	doc, ok := h.iniLoad("iniGetKeys")
	if !ok {
		return nil, nil
	}
	return doc.Keys(sectionName(section)), nil
}

func objectOf(pairs []ini.Pair) map[string]value.Value {
	obj := make(map[string]value.Value, len(pairs))
	for _, p := range pairs {
		obj[p.Key] = value.Infer(p.Value)
	}
	return obj
}

// IniGetObject returns a section as a map of inferred values. ok is false
// when the section does not exist, which differs from an empty map for an
// empty section.
func (h *Handle) IniGetObject(section *string) (obj map[string]value.Value, ok bool, err error) {
	if h == nil {
		return nil, false, errNilHandle
	}
	doc, loaded := h.iniLoad("iniGetObject")
	if !loaded {
		return nil, false, nil
	}
	pairs, ok := doc.Values(sectionName(section))
	if !ok {
		return nil, false, nil
	}
	return objectOf(pairs), true, nil
}

// setObject writes obj's entries in key order.
func setObject(doc *ini.Document, section string, obj map[string]value.Value, skip string) error {
	for _, key := range slices.Sorted(maps.Keys(obj)) {
		if key == skip {
			continue
		}
		if err := doc.SetValue(section, key, obj[key]); err != nil {
			return err
		}
	}
	return nil
}

// IniSetObject writes every entry of obj into section in one transaction.
func (h *Handle) IniSetObject(section *string, obj map[string]value.Value) (bool, error) {
	return h.iniUpdate("iniSetObject", func(doc *ini.Document) (bool, error) {
		return true, setObject(doc, sectionName(section), obj, "")
	})
}

// IniGetAllObjects returns one map per section whose name starts with
// prefix. Each map holds the section name, with prefix removed, under
// nameProp ("" selects DefaultNameProperty).
func (h *Handle) IniGetAllObjects(nameProp, prefix string) ([]map[string]value.Value, error) {
	if h == nil {
		return nil, errNilHandle
	}
	if nameProp == "" {
		nameProp = DefaultNameProperty
	}
	doc, ok := h.iniLoad("iniGetAllObjects")
	if !ok {
		return nil, nil
	}

	out := []map[string]value.Value{}
	for _, name := range doc.Sections(prefix) {
		pairs, _ := doc.Values(name)
		obj := objectOf(pairs)
		obj[nameProp] = value.String(name[len(prefix):])
		out = append(out, obj)
	}
	return out, nil
}

// IniSetAllObjects writes each map into the section named by its nameProp
// entry ("" selects DefaultNameProperty), all in one transaction. Maps
// without a name are skipped.
func (h *Handle) IniSetAllObjects(list []map[string]value.Value, nameProp string) (bool, error) {
	if nameProp == "" {
		nameProp = DefaultNameProperty
	}
	return h.iniUpdate("iniSetAllObjects", func(doc *ini.Document) (bool, error) {
		changed := false
		for _, obj := range list {
			name, ok := obj[nameProp]
			if !ok || name.IsUndefined() {
				continue
			}
			if err := setObject(doc, name.String(), obj, nameProp); err != nil {
				return false, err
			}
			changed = true
		}
		return changed, nil
	})
}
