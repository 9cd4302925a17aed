package ucl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectCoalesce(t *testing.T) {
	t.Parallel()

	o := &Object{}
	o.Coalesce("a", IntValue(1))
	v, ok := o.Get("a")
	require.True(t, ok)
	require.Equal(t, int64(1), v.Int)

	o.Coalesce("a", IntValue(2))
	v, ok = o.Get("a")
	require.True(t, ok)
	require.Equal(t, KindArray, v.Kind)
	require.Len(t, v.Array, 2)

	o.Coalesce("a", IntValue(3))
	v, _ = o.Get("a")
	require.Len(t, v.Array, 3)
}

func TestObjectPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	o := &Object{}
	o.Set("z", IntValue(1))
	o.Set("a", IntValue(2))
	o.Set("m", IntValue(3))
	require.Equal(t, []string{"z", "a", "m"}, o.Keys())
}

func TestObjectSetReplacesInPlace(t *testing.T) {
	t.Parallel()

	o := &Object{}
	o.Set("a", IntValue(1))
	o.Set("b", IntValue(2))
	o.Set("a", IntValue(99))
	require.Equal(t, []string{"a", "b"}, o.Keys())
	v, _ := o.Get("a")
	require.Equal(t, int64(99), v.Int)
}

func TestValueFluentAccessorsNeverReturnNil(t *testing.T) {
	t.Parallel()

	v := IntValue(5)
	require.NotNil(t, v.Index(3))
	require.Equal(t, KindNull, v.Index(3).Kind)
	require.NotNil(t, v.Key("missing"))
	require.Equal(t, KindNull, v.Key("missing").Kind)
}

func TestObjectValueWrapsExistingObject(t *testing.T) {
	t.Parallel()

	o := &Object{}
	o.Set("a", IntValue(1))
	v := ObjectValue(o)
	require.Equal(t, KindObject, v.Kind)
	got, err := v.Key("a").AsInt()
	require.NoError(t, err)
	require.Equal(t, int64(1), got)
}

func TestValueAsAccessorsTypeCheck(t *testing.T) {
	t.Parallel()

	_, err := IntValue(1).AsString()
	require.Error(t, err)
	_, err = StringValue("x").AsInt()
	require.Error(t, err)

	f, err := IntValue(7).AsFloat()
	require.NoError(t, err)
	require.Equal(t, 7.0, f)
}
