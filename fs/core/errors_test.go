package core_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "github.com/jmgilman/scriptfile/errors"
	"github.com/jmgilman/scriptfile/fs/core"
)

// TestReexportedErrorsMatchStdlib verifies re-exported errors match stdlib.
func TestReexportedErrorsMatchStdlib(t *testing.T) {
	tests := []struct {
		name      string
		coreErr   error
		stdlibErr error
	}{
		{"ErrNotExist", core.ErrNotExist, fs.ErrNotExist},
		{"ErrExist", core.ErrExist, fs.ErrExist},
		{"ErrPermission", core.ErrPermission, fs.ErrPermission},
		{"ErrClosed", core.ErrClosed, fs.ErrClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.coreErr, tt.stdlibErr)
			require.ErrorIs(t, fmt.Errorf("open: %w", tt.coreErr), tt.stdlibErr)
		})
	}
}

// TestProviderErrorsCarryCodes verifies provider-level sentinels are coded.
func TestProviderErrorsCarryCodes(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		code      ferrors.ErrorCode
		retryable bool
	}{
		{"ErrUnsupported", core.ErrUnsupported, ferrors.CodeUnsupported, false},
		{"ErrLocked", core.ErrLocked, ferrors.CodeLocked, true},
		{"ErrNotLocked", core.ErrNotLocked, ferrors.CodeInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("flock: %w", tt.err)

			require.Equal(t, tt.code, ferrors.GetCode(wrapped))
			require.Equal(t, tt.retryable, ferrors.IsRetryable(wrapped))
			require.True(t, errors.Is(wrapped, tt.err))
		})
	}

	require.False(t, errors.Is(core.ErrLocked, core.ErrUnsupported))
}

// TestFSType_String verifies FSType.String() returns correct string representations.
func TestFSType_String(t *testing.T) {
	require.Equal(t, "unknown", core.FSTypeUnknown.String())
	require.Equal(t, "local", core.FSTypeLocal.String())
	require.Equal(t, "memory", core.FSTypeMemory.String())
	require.Equal(t, "unknown", core.FSType(999).String())
}

// TestLockMode_String verifies LockMode.String() returns correct string representations.
func TestLockMode_String(t *testing.T) {
	require.Equal(t, "shared", core.LockShared.String())
	require.Equal(t, "exclusive", core.LockExclusive.String())
}
