package ucldec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type serverConfig struct {
	Name   string   `json:"name"`
	Port   int      `json:"port"`
	Debug  bool     `json:"debug"`
	Tags   []string `json:"tags"`
	Nested struct {
		Timeout float64 `json:"timeout"`
	} `json:"nested"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	src := `
name = "edge-1"
port = 8080
debug = true
tags [a, b, c]
nested {
  timeout = 30s
}
`
	var cfg serverConfig
	err := UnmarshalString(src, &cfg)
	require.NoError(t, err)
	require.Equal(t, "edge-1", cfg.Name)
	require.Equal(t, 8080, cfg.Port)
	require.True(t, cfg.Debug)
	require.Equal(t, []string{"a", "b", "c"}, cfg.Tags)
	require.Equal(t, 30.0, cfg.Nested.Timeout)
}

func TestUnmarshalKeepsUnresolvedVariable(t *testing.T) {
	t.Parallel()

	var got struct {
		Greeting string `json:"greeting"`
	}
	err := UnmarshalString(`greeting = "hi, ${name}"`, &got)
	require.NoError(t, err)
	require.Equal(t, "hi, ${name}", got.Greeting)
}
