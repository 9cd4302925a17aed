package ucl

import (
	"fmt"
	"math"
	"strconv"
)

// ValueKind is the tag of a Value's active variant.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBoolean
	KindInteger
	KindFloat
	KindTime
	KindString
	KindArray
	KindObject
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindTime:
		return "time"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// entry is one key/value pair of an Object, kept in a slice so that
// iteration order equals first-insertion order (spec §3, §4.5).
type entry struct {
	key string
	val *Value
}

// Object is an insertion-ordered string-keyed map. The zero Object is empty
// and ready to use.
type Object struct {
	entries []entry
	index   map[string]int
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (*Value, bool) {
	if o == nil || o.index == nil {
		return nil, false
	}
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.entries[i].val, true
}

// Set inserts key with val, or replaces the value in place (without
// disturbing order) if key is already present.
func (o *Object) Set(key string, val *Value) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.entries[i].val = val
		return
	}
	o.index[key] = len(o.entries)
	o.entries = append(o.entries, entry{key: key, val: val})
}

// Coalesce implements the duplicate-key rule (spec §4.4): assigning key a
// second time combines the existing and new values into an Array, in
// insertion order; an existing Array absorbs further assignments as
// additional elements. When the incoming assignment is itself an array
// (e.g. a second `key [a, b]` or `key: [a, b]`), its elements are spread
// into the coalesced array rather than nested as a single element.
func (o *Object) Coalesce(key string, val *Value) {
	existing, ok := o.Get(key)
	if !ok {
		o.Set(key, val)
		return
	}
	incoming := []*Value{val}
	if val.Kind == KindArray {
		incoming = val.Array
	}
	if existing.Kind == KindArray {
		existing.Array = append(existing.Array, incoming...)
		return
	}
	o.Set(key, &Value{Kind: KindArray, Array: append([]*Value{existing}, incoming...)})
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.entries)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.entries))
	for i, e := range o.entries {
		keys[i] = e.key
	}
	return keys
}

// Range calls f for every entry in insertion order, stopping early if f
// returns false.
func (o *Object) Range(f func(key string, val *Value) bool) {
	if o == nil {
		return
	}
	for _, e := range o.entries {
		if !f(e.key, e.val) {
			return
		}
	}
}

// Value is the tagged-variant tree node described in spec §3.
type Value struct {
	Kind ValueKind

	Bool   bool
	Int    int64
	Flt    float64 // used for both KindFloat and KindTime (seconds)
	Str    string
	Array  []*Value
	Object *Object
}

func NullValue() *Value             { return &Value{Kind: KindNull} }
func BoolValue(b bool) *Value       { return &Value{Kind: KindBoolean, Bool: b} }
func IntValue(i int64) *Value       { return &Value{Kind: KindInteger, Int: i} }
func FloatValue(f float64) *Value   { return &Value{Kind: KindFloat, Flt: f} }
func TimeValue(secs float64) *Value { return &Value{Kind: KindTime, Flt: secs} }
func StringValue(s string) *Value   { return &Value{Kind: KindString, Str: s} }
func ArrayValue(a []*Value) *Value  { return &Value{Kind: KindArray, Array: a} }
func ObjectValue(o *Object) *Value  { return &Value{Kind: KindObject, Object: o} }
func NewObjectValue() *Value        { return &Value{Kind: KindObject, Object: &Object{}} }

// AsBool returns the boolean value, or an error if the Value is not a bool.
func (v *Value) AsBool() (bool, error) {
	if v.Kind != KindBoolean {
		return false, fmt.Errorf("ucl: value is %s, not boolean", v.Kind)
	}
	return v.Bool, nil
}

// AsInt returns the integer value, or an error if the Value is not an
// integer (no narrowing from Float/Time is performed).
func (v *Value) AsInt() (int64, error) {
	if v.Kind != KindInteger {
		return 0, fmt.Errorf("ucl: value is %s, not integer", v.Kind)
	}
	return v.Int, nil
}

// AsFloat returns the numeric value as a float64, accepting Integer, Float
// or Time so callers don't need to special-case widening.
func (v *Value) AsFloat() (float64, error) {
	switch v.Kind {
	case KindInteger:
		return float64(v.Int), nil
	case KindFloat, KindTime:
		return v.Flt, nil
	default:
		return 0, fmt.Errorf("ucl: value is %s, not numeric", v.Kind)
	}
}

// AsTime returns the duration in seconds, or an error if the Value is not a
// Time.
func (v *Value) AsTime() (float64, error) {
	if v.Kind != KindTime {
		return 0, fmt.Errorf("ucl: value is %s, not time", v.Kind)
	}
	return v.Flt, nil
}

// AsString returns the string value, or an error if the Value is not a
// string.
func (v *Value) AsString() (string, error) {
	if v.Kind != KindString {
		return "", fmt.Errorf("ucl: value is %s, not string", v.Kind)
	}
	return v.Str, nil
}

// AsArray returns the element slice, or an error if the Value is not an
// array.
func (v *Value) AsArray() ([]*Value, error) {
	if v.Kind != KindArray {
		return nil, fmt.Errorf("ucl: value is %s, not array", v.Kind)
	}
	return v.Array, nil
}

// AsObject returns the Object, or an error if the Value is not an object.
func (v *Value) AsObject() (*Object, error) {
	if v.Kind != KindObject {
		return nil, fmt.Errorf("ucl: value is %s, not object", v.Kind)
	}
	return v.Object, nil
}

// Index is a fluent accessor returning the i'th array element, or a Null
// Value (never nil) if v is not an array or i is out of range.
func (v *Value) Index(i int) *Value {
	if v.Kind != KindArray || i < 0 || i >= len(v.Array) {
		return NullValue()
	}
	return v.Array[i]
}

// Key is a fluent accessor returning the value at key, or a Null Value
// (never nil) if v is not an object or key is absent.
func (v *Value) Key(key string) *Value {
	if v.Kind != KindObject {
		return NullValue()
	}
	if val, ok := v.Object.Get(key); ok {
		return val
	}
	return NullValue()
}

// String renders a debugging representation. It is NOT valid UCL or JSON
// output (spec explicitly excludes serialization, §1 Non-goals).
func (v *Value) String() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindBoolean:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return formatFloat(v.Flt)
	case KindTime:
		return formatFloat(v.Flt) + "s"
	case KindString:
		return strconv.Quote(v.Str)
	case KindArray:
		s := "["
		for i, e := range v.Array {
			if i > 0 {
				s += ", "
			}
			s += e.String()
		}
		return s + "]"
	case KindObject:
		s := "{"
		first := true
		v.Object.Range(func(key string, val *Value) bool {
			if !first {
				s += ", "
			}
			first = false
			s += strconv.Quote(key) + ": " + val.String()
			return true
		})
		return s + "}"
	default:
		return "<unknown>"
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "+inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}
