package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/scriptfile/errors"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{"", Undefined},
		{"8080", Int(8080)},
		{"3.25", Float(3.25)},
		{"1.", Float(1)},
		{"1.2.3", String("1.2.3")},
		{"0x1F", Int(31)},
		{"0x", Int(0)},
		{"0xZZ", String("0xZZ")},
		{"0X1F", String("0X1F")},
		{"TRUE", Bool(true)},
		{"False", Bool(false)},
		{"-5", String("-5")},
		{"hello world", String("hello world")},
		{"99999999999999999999", Float(1e20)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Infer(tt.in)
			assert.Truef(t, tt.want.Equal(got), "Infer(%q) = %v (%s), want %v (%s)",
				tt.in, got, got.Kind(), tt.want, tt.want.Kind())
		})
	}
}

func TestOf(t *testing.T) {
	now := time.Unix(1700000000, 0)
	tests := []struct {
		in   any
		want Value
	}{
		{nil, Undefined},
		{true, Bool(true)},
		{8080, Int(8080)},
		{uint32(4294967295), Int(4294967295)},
		{2.5, Float(2.5)},
		{float32(0.5), Float(0.5)},
		{"x", String("x")},
		{[]string{"a", "b"}, List("a", "b")},
		{[]any{"a", 1}, List("a", "1")},
		{now, Time(now)},
		{Int(3), Int(3)},
		{[]byte("raw"), String("raw")},
	}
	for _, tt := range tests {
		got, err := Of(tt.in)
		require.NoError(t, err, "%#v", tt.in)
		assert.Truef(t, tt.want.Equal(got), "Of(%#v) = %v", tt.in, got)
	}

	_, err := Of(struct{}{})
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestCoercion(t *testing.T) {
	assert.True(t, Int(2).Bool())
	assert.False(t, String("nope").Bool())
	assert.Equal(t, int64(255), String("0xff").Int())
	assert.Equal(t, int64(3), Float(3.9).Int())
	assert.Equal(t, int64(1), Bool(true).Int())
	assert.Equal(t, 8080.0, String("8080").Float())
	assert.Equal(t, []string{"7"}, Int(7).List())
	assert.Nil(t, Undefined.List())

	ts := time.Unix(1700000000, 0)
	assert.Equal(t, ts.Unix(), Time(ts).Int())
	assert.True(t, ts.Equal(Int(1700000000).Time()))
	assert.True(t, ts.Equal(String(ts.Format(time.RFC1123Z)).Time()))
}

func TestString(t *testing.T) {
	assert.Equal(t, "", Undefined.String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "0.1", Float(0.1).String())
	assert.Equal(t, "0.0000001", Float(1e-7).String())
	assert.Equal(t, "a,b", List("a", "b").String())
	assert.Equal(t, "Tue, 14 Nov 2023 22:13:20 +0000", Time(time.Unix(1700000000, 0).UTC()).String())
}

func TestFloatTextStaysNumeric(t *testing.T) {
	for _, f := range []float64{1e-7, 2.5e-12, 1e21, 123456.789} {
		got := Infer(Float(f).String())
		assert.Equal(t, KindFloat, got.Kind(), "%g", f)
		assert.Equal(t, f, got.Float(), "%g", f)
	}
}

func TestListIsCopied(t *testing.T) {
	items := []string{"a"}
	v := List(items...)
	items[0] = "b"
	assert.Equal(t, []string{"a"}, v.List())

	out := v.List()
	out[0] = "c"
	assert.Equal(t, []string{"a"}, v.List())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "float", KindFloat.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
	assert.True(t, List().Is(KindList))
}

func TestIntList(t *testing.T) {
	v := IntList(1, 2, 3)
	assert.Equal(t, KindIntList, v.Kind())
	assert.Equal(t, []int64{1, 2, 3}, v.Ints())
	assert.Equal(t, []string{"1", "2", "3"}, v.List())
	assert.Equal(t, "1,2,3", v.String())
	assert.True(t, v.Equal(IntList(1, 2, 3)))
	assert.False(t, v.Equal(List("1", "2", "3")))

	assert.Equal(t, []int64{7, 16}, List("7", "0x10").Ints())
	assert.Equal(t, []int64{5}, Int(5).Ints())
	assert.Nil(t, Undefined.Ints())

	got, err := Of([]int{4, 5})
	require.NoError(t, err)
	assert.True(t, IntList(4, 5).Equal(got))
}
