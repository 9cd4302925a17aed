package ucl

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// ParseString parses src with no variable resolver: $VAR forms with no
// default are left untouched in the resulting strings.
func ParseString(src string, opts ...ParserOption) (*Value, error) {
	return NewParser(src, opts...).Parse()
}

// ParseBytes is ParseString over a []byte, avoiding a caller-side copy when
// the bytes are already known to be UTF-8 text.
func ParseBytes(src []byte, opts ...ParserOption) (*Value, error) {
	return ParseString(string(src), opts...)
}

// ParseWithVariables parses src, resolving $VAR / ${VAR} / ${VAR:-default}
// against vars.
func ParseWithVariables(src string, vars map[string]string, opts ...ParserOption) (*Value, error) {
	return ParseString(src, append(opts, WithVariables(vars))...)
}

// Parse reads all of r and parses it.
func Parse(r io.Reader, opts ...ParserOption) (*Value, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("ucl: read input: %w", err)
	}
	return ParseString(buf.String(), opts...)
}

// ParseFile reads and parses the named file.
func ParseFile(path string, opts ...ParserOption) (*Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ucl: read %s: %w", path, err)
	}
	return ParseBytes(data, opts...)
}
