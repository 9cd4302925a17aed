package ucl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseReadsFromReader(t *testing.T) {
	t.Parallel()

	got, err := Parse(strings.NewReader(`name = "ada"`))
	require.NoError(t, err)
	s, err := got.Key("name").AsString()
	require.NoError(t, err)
	require.Equal(t, "ada", s)
}

func TestParseBytes(t *testing.T) {
	t.Parallel()

	got, err := ParseBytes([]byte(`count = 3`))
	require.NoError(t, err)
	i, err := got.Key("count").AsInt()
	require.NoError(t, err)
	require.Equal(t, int64(3), i)
}

func TestParseFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ParseFile("/nonexistent/path/does/not/exist.conf")
	require.Error(t, err)
}
