package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "message only",
			err:  New(CodeNotOpen, "file is not open"),
			want: "[NOT_OPEN] file is not open",
		},
		{
			name: "with op and path",
			err:  WithOp(New(CodeLocked, "file is locked"), "open", "data.ini"),
			want: "[LOCKED] open data.ini: file is locked",
		},
		{
			name: "op without path",
			err:  WithOp(New(CodeInvalidInput, "bad size"), "readBin", ""),
			want: "[INVALID_INPUT] readBin: bad size",
		},
		{
			name: "with cause",
			err:  Wrap(stderrors.New("disk full"), CodeIO, "short write"),
			want: "[IO_ERROR] short write: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestNew_DefaultClassification(t *testing.T) {
	require.True(t, New(CodeLocked, "locked").Classification().IsRetryable())
	require.False(t, New(CodeNotFound, "missing").Classification().IsRetryable())
	require.Equal(t, ClassificationPermanent, getDefaultClassification(ErrorCode("SOMETHING_ELSE")))
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidInput, "unsupported record size %d", 3)
	require.Equal(t, "unsupported record size 3", err.Message())
	require.Equal(t, CodeInvalidInput, err.Code())
	require.Nil(t, err.Unwrap())
	require.Nil(t, err.Context())
}

func TestWrap(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		require.Nil(t, Wrap(nil, CodeIO, "ignored"))
		require.Nil(t, Wrapf(nil, CodeIO, "ignored %d", 1))
		require.Nil(t, WrapWithContext(nil, CodeIO, "ignored", nil))
	})

	t.Run("preserves classification and op", func(t *testing.T) {
		inner := WithOp(New(CodeLocked, "locked"), "lock", "a.txt")
		outer := Wrap(inner, CodeIO, "lock failed")

		require.Equal(t, CodeIO, outer.Code())
		require.True(t, outer.Classification().IsRetryable())
		require.Equal(t, "lock", outer.Op())
		require.Equal(t, "a.txt", outer.Path())
		require.True(t, stderrors.Is(outer, inner))
	})

	t.Run("context copied", func(t *testing.T) {
		ctx := map[string]interface{}{"want": 10}
		err := WrapWithContext(stderrors.New("eof"), CodeIO, "short read", ctx)
		ctx["want"] = 20

		require.Equal(t, 10, err.Context()["want"])
	})
}

func TestWithContext(t *testing.T) {
	base := New(CodeInvalidInput, "bad mode")
	err := WithContext(base, "mode", "rx")
	err = WithContext(err, "name", "a.txt")

	require.Nil(t, base.Context())
	require.Equal(t, map[string]interface{}{"mode": "rx", "name": "a.txt"}, err.Context())

	// Mutating the returned map must not leak back into the error.
	err.Context()["mode"] = "w"
	require.Equal(t, "rx", err.Context()["mode"])
}

func TestWithContext_StandardError(t *testing.T) {
	std := stderrors.New("boom")
	err := WithContextMap(std, map[string]interface{}{"k": "v"})

	require.Equal(t, CodeUnknown, err.Code())
	require.Equal(t, "boom", err.Message())
	require.True(t, stderrors.Is(err, std))
	require.Nil(t, WithContext(nil, "k", "v"))
}

func TestWithClassification(t *testing.T) {
	locked := New(CodeLocked, "locked")
	final := WithClassification(locked, ClassificationPermanent)

	require.True(t, IsRetryable(locked))
	require.False(t, IsRetryable(final))
	require.Equal(t, CodeLocked, final.Code())
}
