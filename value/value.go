package value

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/jmgilman/scriptfile/errors"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindUndefined Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindTime
	KindIntList
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindTime:
		return "time"
	case KindIntList:
		return "intlist"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is an immutable tagged union. The zero Value is Undefined.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	l    []string
	n    []int64
	t    time.Time
}

// Undefined is the absent value.
var Undefined Value

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Time returns a time value.
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }

// List returns a list value holding a copy of items.
func List(items ...string) Value {
	if items == nil {
		items = []string{}
	}
	return Value{kind: KindList, l: slices.Clone(items)}
}

// IntList returns a list of integers, as produced by binary record reads.
func IntList(items ...int64) Value {
	if items == nil {
		items = []int64{}
	}
	return Value{kind: KindIntList, n: slices.Clone(items)}
}

// Of converts a Go value to a Value. Signed and unsigned integers become
// Int, floats become Float, string slices and []any become List. A nil
// interface yields Undefined. Types cast cannot turn into a string are
// rejected with INVALID_INPUT.
func Of(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Undefined, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		i, err := cast.ToInt64E(x)
		if err != nil {
			return Undefined, errors.Wrap(err, errors.CodeInvalidInput, "integer out of range")
		}
		return Int(i), nil
	case float32, float64:
		return Float(cast.ToFloat64(x)), nil
	case string:
		return String(x), nil
	case time.Time:
		return Time(x), nil
	case []string:
		return List(x...), nil
	case []int64:
		return IntList(x...), nil
	case []int:
		n := make([]int64, len(x))
		for i, v := range x {
			n[i] = int64(v)
		}
		return IntList(n...), nil
	case []any:
		l, err := cast.ToStringSliceE(x)
		if err != nil {
			return Undefined, errors.Wrap(err, errors.CodeInvalidInput, "list elements must be scalars")
		}
		return List(l...), nil
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return Undefined, errors.Newf(errors.CodeInvalidInput, "unsupported value type %T", v)
	}
	return String(s), nil
}

// Infer classifies text read from a file:
//
//   - "" is Undefined
//   - digits with at most one '.' are Int, or Float when a '.' is present
//   - "0x" followed only by hex digits is Int
//   - "true" or "false" in any case is Bool
//   - anything else is String
func Infer(s string) Value {
	if s == "" {
		return Undefined
	}

	if numeric, dotted := scanDecimal(s); numeric {
		if dotted {
			f, _ := strconv.ParseFloat(s, 64)
			return Float(f)
		}
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(i)
		}
		f, _ := strconv.ParseFloat(s, 64)
		return Float(f)
	}

	if hex, ok := strings.CutPrefix(s, "0x"); ok && isHex(hex) {
		if hex == "" {
			return Int(0)
		}
		u, err := strconv.ParseUint(hex, 16, 64)
		if err == nil {
			return Int(int64(u))
		}
	}

	switch strings.ToLower(s) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	return String(s)
}

func scanDecimal(s string) (numeric, dotted bool) {
	for _, c := range []byte(s) {
		switch {
		case c == '.' && !dotted:
			dotted = true
		case c >= '0' && c <= '9':
		default:
			return false, false
		}
	}
	return true, dotted
}

func isHex(s string) bool {
	for _, c := range []byte(s) {
		if !strings.ContainsRune("0123456789abcdefABCDEF", rune(c)) {
			return false
		}
	}
	return true
}

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// IsUndefined reports whether v is the absent value.
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// Is reports whether v has the given kind.
func (v Value) Is(kind Kind) bool { return v.kind == kind }

// Interface returns the held value as a plain Go value: nil, bool, int64,
// float64, string, []string, []int64 or time.Time.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindList:
		return slices.Clone(v.l)
	case KindIntList:
		return slices.Clone(v.n)
	case KindTime:
		return v.t
	default:
		return nil
	}
}

// Bool coerces the value to a boolean. Non-zero numbers are true, strings
// follow strconv.ParseBool, and anything unparseable is false.
func (v Value) Bool() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindTime:
		return !v.t.IsZero()
	case KindList:
		return len(v.l) > 0
	case KindIntList:
		return len(v.n) > 0
	default:
		return cast.ToBool(v.Interface())
	}
}

// Int coerces the value to an integer. Times convert to epoch seconds and
// floats truncate toward zero.
func (v Value) Int() int64 {
	switch v.kind {
	case KindInt:
		return v.i
	case KindTime:
		return v.t.Unix()
	case KindString:
		if i, err := strconv.ParseInt(strings.TrimSpace(v.s), 0, 64); err == nil {
			return i
		}
		return int64(cast.ToFloat64(strings.TrimSpace(v.s)))
	default:
		return cast.ToInt64(v.Interface())
	}
}

// Float coerces the value to a float64.
func (v Value) Float() float64 {
	switch v.kind {
	case KindFloat:
		return v.f
	case KindTime:
		return float64(v.t.Unix())
	default:
		return cast.ToFloat64(v.Interface())
	}
}

// List returns list elements, or a one-element list for any other defined
// value.
func (v Value) List() []string {
	switch v.kind {
	case KindList:
		return slices.Clone(v.l)
	case KindIntList:
		out := make([]string, len(v.n))
		for i, n := range v.n {
			out[i] = strconv.FormatInt(n, 10)
		}
		return out
	case KindUndefined:
		return nil
	default:
		return []string{v.String()}
	}
}

// Ints returns integer list elements. A string list is converted element
// by element; any other defined value becomes a one-element list.
func (v Value) Ints() []int64 {
	switch v.kind {
	case KindIntList:
		return slices.Clone(v.n)
	case KindList:
		out := make([]int64, len(v.l))
		for i, s := range v.l {
			out[i] = String(s).Int()
		}
		return out
	case KindUndefined:
		return nil
	default:
		return []int64{v.Int()}
	}
}

// Time coerces the value to a time. Integers and floats are epoch seconds;
// strings are parsed with cast's date layouts.
func (v Value) Time() time.Time {
	switch v.kind {
	case KindTime:
		return v.t
	case KindInt:
		return time.Unix(v.i, 0)
	case KindFloat:
		return time.Unix(int64(v.f), 0)
	case KindString:
		return cast.ToTime(v.s)
	default:
		return time.Time{}
	}
}

// String renders the value as it is stored in text: booleans as
// "true"/"false", floats in shortest positional form, lists comma-joined and times in
// RFC 1123 with a numeric zone. Undefined renders as "".
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindString:
		return v.s
	case KindList:
		return strings.Join(v.l, ",")
	case KindIntList:
		return strings.Join(v.List(), ",")
	case KindTime:
		return v.t.Format(time.RFC1123Z)
	default:
		return ""
	}
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindList:
		return slices.Equal(v.l, o.l)
	case KindIntList:
		return slices.Equal(v.n, o.n)
	case KindTime:
		return v.t.Equal(o.t)
	default:
		return v.Interface() == o.Interface()
	}
}
