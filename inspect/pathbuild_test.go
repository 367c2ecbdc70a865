package inspect

import (
	"testing"

	"github.com/jmgilman/go/fsinspect/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPath(t *testing.T) {
	tests := []struct {
		name     string
		mode     PathMode
		root     string
		segments []string
		want     string
	}{
		{"relative ignores root", PathRelative, "/ignored", []string{"a", "..", "b"}, "b"},
		{"absolute joins root", PathAbsolute, "/root", []string{"a", "b"}, "/root/a/b"},
		{"absolute cleans segments", PathAbsolute, "/root", []string{"a", "./b", "../c"}, "/root/a/c"},
		{"relative keeps leading parent", PathRelative, "", []string{"..", "x"}, "../x"},
		{"no segments relative", PathRelative, "/r", nil, "."},
		{"no segments absolute", PathAbsolute, "/r", nil, "/r"},
		{"relative root", PathAbsolute, "base", []string{"x"}, "base/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildPath(tt.mode, tt.root, tt.segments...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildPath_InvalidMode(t *testing.T) {
	_, err := BuildPath(PathMode(42), "/", "a")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))

	_, err = BuildPath(0, "/", "a")
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))
}

func TestParsePathMode(t *testing.T) {
	for in, want := range map[string]PathMode{
		"absolute": PathAbsolute,
		"ABS":      PathAbsolute,
		"relative": PathRelative,
		" rel ":    PathRelative,
	} {
		got, err := ParsePathMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePathMode("sideways")
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))

	assert.Equal(t, "absolute", PathAbsolute.String())
	assert.Equal(t, "relative", PathRelative.String())
	assert.Equal(t, "unknown", PathMode(0).String())
}
