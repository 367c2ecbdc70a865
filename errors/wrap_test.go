package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(cause, CodeIO, "write file")

	require.NotNil(t, err)
	require.Equal(t, CodeIO, err.Code())
	require.Equal(t, "write file", err.Message())
	require.Equal(t, cause, err.Unwrap())
	require.Equal(t, "[IO_ERROR] write file: disk full", err.Error())
}

func TestWrap_NilError(t *testing.T) {
	require.Nil(t, Wrap(nil, CodeNotFound, "test"))
	require.Nil(t, Wrapf(nil, CodeNotFound, "test %s", "arg"))
}

func TestWrap_PreservesClassificationAndContext(t *testing.T) {
	original := NewPath(CodeIO, "read", "/data/a.txt")
	require.True(t, original.Classification().IsRetryable())

	wrapped := Wrap(original, CodeInternal, "hash failed")

	require.True(t, wrapped.Classification().IsRetryable())
	require.Equal(t, "/data/a.txt", GetPath(wrapped))
}

func TestWrapf(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrapf(cause, CodeIO, "copy %s to %s", "a", "b")

	require.Equal(t, "copy a to b", err.Message())
	require.True(t, stderrors.Is(err, cause))
}
