// Package ucldec adapts a parsed UCL document onto a Go struct, using
// encoding/json as the reflection layer: the Value tree is converted to
// plain map[string]any/[]any/etc., marshaled to JSON, and unmarshaled into
// the caller's type. That means ordinary `json:"..."` struct tags, and
// types implementing json.Unmarshaler, work unmodified on UCL input.
package ucldec

import (
	"encoding/json"
	"fmt"

	"github.com/gocfg/ucl"
)

// Unmarshal parses data as UCL and decodes the result into v, which must be
// a pointer. opts are forwarded to the underlying ucl.Parser, so callers
// can supply WithVariables/WithResolver/WithValidationHooks etc. the same
// way they would calling ucl.ParseBytes directly.
func Unmarshal(data []byte, v any, opts ...ucl.ParserOption) error {
	root, err := ucl.ParseBytes(data, opts...)
	if err != nil {
		return err
	}
	jsonBytes, err := json.Marshal(toAny(root))
	if err != nil {
		return fmt.Errorf("ucldec: re-marshal intermediate form: %w", err)
	}
	if err := json.Unmarshal(jsonBytes, v); err != nil {
		return fmt.Errorf("ucldec: %w", err)
	}
	return nil
}

// UnmarshalString is Unmarshal over a string.
func UnmarshalString(src string, v any, opts ...ucl.ParserOption) error {
	return Unmarshal([]byte(src), v, opts...)
}

// toAny flattens a *ucl.Value into the plain Go values encoding/json
// already knows how to marshal. A Time value degrades to its duration in
// seconds, as float64, since UCL has no wire representation of its own
// (spec explicitly excludes serialization).
func toAny(v *ucl.Value) any {
	switch v.Kind {
	case ucl.KindNull:
		return nil
	case ucl.KindBoolean:
		b, _ := v.AsBool()
		return b
	case ucl.KindInteger:
		i, _ := v.AsInt()
		return i
	case ucl.KindFloat, ucl.KindTime:
		f, _ := v.AsFloat()
		return f
	case ucl.KindString:
		s, _ := v.AsString()
		return s
	case ucl.KindArray:
		arr, _ := v.AsArray()
		out := make([]any, len(arr))
		for i, e := range arr {
			out[i] = toAny(e)
		}
		return out
	case ucl.KindObject:
		obj, _ := v.AsObject()
		out := make(map[string]any, obj.Len())
		obj.Range(func(key string, val *ucl.Value) bool {
			out[key] = toAny(val)
			return true
		})
		return out
	default:
		return nil
	}
}
