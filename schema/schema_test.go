package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScalarWidensNumbers(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected any
	}{
		{"int", 3, 3.0},
		{"int64", int64(-4), -4.0},
		{"uint8", uint8(7), 7.0},
		{"float32", float32(0.5), 0.5},
		{"string", "lasso", "lasso"},
		{"bool", true, true},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewScalar(tt.value)
			assert.True(t, r.IsScalar())
			assert.Equal(t, tt.expected, r.Scalar())
		})
	}
}

func TestNewScalarPanicsOnContainer(t *testing.T) {
	assert.Panics(t, func() { NewScalar([]int{1}) })
}

func TestZeroRecordIsNullScalar(t *testing.T) {
	var r Record
	assert.Equal(t, ScalarKind, r.Kind())
	assert.Nil(t, r.Scalar())
	assert.Equal(t, 0, r.Len())
}

func TestRecordAccessors(t *testing.T) {
	inner := NewObject(Field{Key: "R2", Value: NewScalar(0.9)})
	r := NewObject(
		Field{Key: "name", Value: NewScalar("lasso")},
		Field{Key: "train", Value: inner},
		Field{Key: "folds", Value: NewArray(NewScalar(1), NewScalar(2))},
	)

	assert.Equal(t, ObjectKind, r.Kind())
	assert.Equal(t, 3, r.Len())
	assert.Nil(t, r.Scalar())
	assert.Equal(t, "lasso", r.Text("name"))
	assert.Equal(t, "", r.Text("train"))
	assert.Equal(t, "", r.Text("missing"))

	leaf, ok := r.Lookup("train", "R2")
	require.True(t, ok)
	assert.Equal(t, 0.9, leaf.Scalar())

	_, ok = r.Lookup("train", "mae")
	assert.False(t, ok)

	folds, ok := r.Get("folds")
	require.True(t, ok)
	assert.Equal(t, ArrayKind, folds.Kind())
	assert.Equal(t, "1", folds.Fields()[1].Key)
}

func TestRecordIsImmutable(t *testing.T) {
	fields := []Field{{Key: "a", Value: NewScalar(1)}}
	r := NewObject(fields...)
	fields[0].Key = "changed"

	got := r.Fields()
	got[0].Key = "also changed"

	assert.Equal(t, "a", r.Fields()[0].Key)
}

func TestFromValue(t *testing.T) {
	r, err := FromValue(map[string]any{
		"b": []any{1, "x"},
		"a": map[string]float64{"z": 1, "y": 2},
	})
	require.NoError(t, err)

	fields := r.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "a", fields[0].Key)
	assert.Equal(t, "y", fields[0].Value.Fields()[0].Key)
	assert.Equal(t, ArrayKind, fields[1].Value.Kind())
	assert.Equal(t, 1.0, fields[1].Value.Fields()[0].Value.Scalar())

	same, err := FromValue(r)
	require.NoError(t, err)
	assert.Equal(t, r, same)
}

func TestFromValueRejectsOpaqueValues(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"func", func() {}},
		{"channel", make(chan int)},
		{"struct", struct{ A int }{1}},
		{"nested func", map[string]any{"a": []any{func() {}}}},
		{"int keys", map[int]string{1: "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromValue(tt.value)
			assert.ErrorIs(t, err, ErrUnsupportedValue)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "scalar", ScalarKind.String())
	assert.Equal(t, "object", ObjectKind.String())
	assert.Equal(t, "array", ArrayKind.String())
}
