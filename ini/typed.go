package ini

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/jmgilman/scriptfile/value"
)

// ListSeparator joins and splits list values.
const ListSeparator = ","

// SetValue writes v in its text form. Undefined writes an empty value.
func (d *Document) SetValue(section, key string, v value.Value) error {
	return d.Set(section, key, v.String())
}

// SetString writes s verbatim after trimming.
func (d *Document) SetString(section, key, s string) error {
	return d.Set(section, key, s)
}

// SetInt writes i in decimal.
func (d *Document) SetInt(section, key string, i int64) error {
	return d.SetValue(section, key, value.Int(i))
}

// SetFloat writes f in shortest positional form.
func (d *Document) SetFloat(section, key string, f float64) error {
	return d.SetValue(section, key, value.Float(f))
}

// SetBool writes "true" or "false".
func (d *Document) SetBool(section, key string, b bool) error {
	return d.SetValue(section, key, value.Bool(b))
}

// SetTime writes t in RFC 1123 with a numeric zone.
func (d *Document) SetTime(section, key string, t time.Time) error {
	return d.SetValue(section, key, value.Time(t))
}

// SetList writes items joined by ListSeparator.
func (d *Document) SetList(section, key string, items []string) error {
	return d.SetValue(section, key, value.List(items...))
}

// ReadString returns the value of key, or dflt when the key is missing.
func (d *Document) ReadString(section, key, dflt string) string {
	if s, ok := d.Get(section, key); ok {
		return s
	}
	return dflt
}

// present returns the value only when the key exists and is non-empty.
func (d *Document) present(section, key string) (string, bool) {
	s, ok := d.Get(section, key)
	return s, ok && s != ""
}

// ReadInt parses decimal, "0x" hexadecimal and "0"-prefixed octal
// integers. A fractional value is truncated. Missing, empty or
// unparseable values yield dflt.
func (d *Document) ReadInt(section, key string, dflt int64) int64 {
	s, ok := d.present(section, key)
	if !ok {
		return dflt
	}
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return dflt
}

// ReadFloat returns key parsed as a float, or dflt when missing or malformed.
func (d *Document) ReadFloat(section, key string, dflt float64) float64 {
	s, ok := d.present(section, key)
	if !ok {
		return dflt
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return dflt
}

// ReadBool treats "true", "yes" and "on" (any case) and non-zero integers
// as true. Any other present value is false.
func (d *Document) ReadBool(section, key string, dflt bool) bool {
	s, ok := d.present(section, key)
	if !ok {
		return dflt
	}
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	}
	i, err := strconv.ParseInt(s, 0, 64)
	return err == nil && i != 0
}

// ReadTime accepts epoch seconds or any date layout cast understands
// (RFC 1123, RFC 3339, ANSI C and friends). Zone-less layouts are read in
// local time.
func (d *Document) ReadTime(section, key string, dflt time.Time) time.Time {
	s, ok := d.present(section, key)
	if !ok {
		return dflt
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0)
	}
	t, err := cast.ToTimeInDefaultLocationE(s, time.Local)
	if err != nil {
		return dflt
	}
	return t
}

// ReadList splits a comma-separated value into trimmed, non-empty items.
func (d *Document) ReadList(section, key string, dflt []string) []string {
	s, ok := d.Get(section, key)
	if !ok {
		return dflt
	}
	return SplitList(s)
}

// SplitList splits s on ListSeparator, trimming items and dropping empty
// ones.
func SplitList(s string) []string {
	out := []string{}
	for _, item := range strings.Split(s, ListSeparator) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Read looks up a key using dflt to pick the decoding. An Undefined default
// infers the type from the text (see value.Infer); any other default fixes
// the result's kind and is returned when the key is missing.
func (d *Document) Read(section, key string, dflt value.Value) value.Value {
	switch dflt.Kind() {
	case value.KindBool:
		return value.Bool(d.ReadBool(section, key, dflt.Bool()))
	case value.KindFloat:
		return value.Float(d.ReadFloat(section, key, dflt.Float()))
	case value.KindInt:
		return value.Int(d.ReadInt(section, key, dflt.Int()))
	case value.KindTime:
		return value.Time(d.ReadTime(section, key, dflt.Time()))
	case value.KindList:
		return value.List(d.ReadList(section, key, dflt.List())...)
	case value.KindIntList:
		return value.IntList(value.List(d.ReadList(section, key, dflt.List())...).Ints()...)
	case value.KindString:
		return value.String(d.ReadString(section, key, dflt.String()))
	default:
		s, _ := d.Get(section, key)
		return value.Infer(s)
	}
}
