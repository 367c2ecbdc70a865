package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeInvalidArgument, "unknown path mode")

	require.Equal(t, CodeInvalidArgument, err.Code())
	require.Equal(t, "unknown path mode", err.Message())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
	require.Equal(t, "[INVALID_ARGUMENT] unknown path mode", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidArgument, "unknown hash algorithm %q", "crc32")
	require.Equal(t, `unknown hash algorithm "crc32"`, err.Message())
}

func TestNewPath(t *testing.T) {
	err := NewPath(CodeNotFound, "walk", "/missing")

	require.Equal(t, CodeNotFound, err.Code())
	require.Equal(t, "walk /missing", err.Message())
	require.Equal(t, "/missing", err.Context()[ContextPath])
	require.Equal(t, "walk", err.Context()[ContextOp])
	require.Equal(t, "/missing", GetPath(err))
}

func TestDefaultClassification(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want ErrorClassification
	}{
		{CodeNotFound, ClassificationPermanent},
		{CodeAlreadyExists, ClassificationPermanent},
		{CodeAccessDenied, ClassificationPermanent},
		{CodeInvalidArgument, ClassificationPermanent},
		{CodeUnsupported, ClassificationPermanent},
		{CodeIO, ClassificationRetryable},
		{ErrorCode("SOMETHING_NEW"), ClassificationPermanent},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			require.Equal(t, tt.want, New(tt.code, "x").Classification())
		})
	}
}
