// Package schema has the models and constants shared by all parts of scorecard.
package schema

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// ErrUnsupportedValue is returned when a host value cannot be represented as a Record.
var ErrUnsupportedValue = errors.New("unsupported record value")

// Kind tells which variant of the Record union is populated.
type Kind int

// Record kinds.
const (
	ScalarKind Kind = iota
	ObjectKind
	ArrayKind
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case ObjectKind:
		return "object"
	case ArrayKind:
		return "array"
	default:
		return "scalar"
	}
}

// Field is a named child of a container Record.
// Array elements use their stringified index as Key.
type Field struct {
	Key   string
	Value Record
}

// Record is a tree of named or indexed fields ending in scalar leaves.
// The zero value is a null scalar.
//
// Records are immutable: constructors copy their children, so a Record
// can never contain itself.
type Record struct {
	kind   Kind
	scalar any // nil, bool, float64 or string
	fields []Field
}

// NewScalar returns a scalar Record. Numeric kinds are widened to float64.
// It panics on a value that is not a scalar; use FromValue for untrusted input.
func NewScalar(v any) Record {
	s, ok := normalizeScalar(v)
	if !ok {
		panic(fmt.Sprintf("%v: %T is not a scalar", ErrUnsupportedValue, v))
	}
	return Record{kind: ScalarKind, scalar: s}
}

// NewObject returns an object Record with the given fields in order.
func NewObject(fields ...Field) Record {
	return Record{kind: ObjectKind, fields: slices.Clone(fields)}
}

// NewArray returns an array Record; each element is keyed by its index.
func NewArray(elems ...Record) Record {
	fields := make([]Field, len(elems))
	for i, e := range elems {
		fields[i] = Field{Key: strconv.Itoa(i), Value: e}
	}
	return Record{kind: ArrayKind, fields: fields}
}

// Kind returns the union variant.
func (r Record) Kind() Kind { return r.kind }

// IsScalar reports whether r is a leaf.
func (r Record) IsScalar() bool { return r.kind == ScalarKind }

// Scalar returns the leaf value, or nil for containers.
func (r Record) Scalar() any {
	if r.kind != ScalarKind {
		return nil
	}
	return r.scalar
}

// Len returns the number of direct children (0 for scalars).
func (r Record) Len() int { return len(r.fields) }

// Fields returns a copy of the children in declaration order.
func (r Record) Fields() []Field { return slices.Clone(r.fields) }

// Get returns the child with the given key.
func (r Record) Get(key string) (Record, bool) {
	for _, f := range r.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Record{}, false
}

// Lookup follows a path of keys from r.
func (r Record) Lookup(keys ...string) (Record, bool) {
	cur := r
	for _, k := range keys {
		next, ok := cur.Get(k)
		if !ok {
			return Record{}, false
		}
		cur = next
	}
	return cur, true
}

// Text returns the scalar under key when it is a string, or "".
func (r Record) Text(key string) string {
	child, ok := r.Get(key)
	if !ok {
		return ""
	}
	s, _ := child.Scalar().(string)
	return s
}

// FromValue converts a host value into a Record.
// Maps with string keys are ordered by key since Go maps carry no order.
// Functions, channels, structs and other opaque values fail with ErrUnsupportedValue.
func FromValue(v any) (Record, error) {
	switch t := v.(type) {
	case Record:
		return t, nil
	case []Field:
		return NewObject(t...), nil
	}
	if s, ok := normalizeScalar(v); ok {
		return Record{kind: ScalarKind, scalar: s}, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]Record, rv.Len())
		for i := range rv.Len() {
			child, err := FromValue(rv.Index(i).Interface())
			if err != nil {
				return Record{}, fmt.Errorf("index %d: %w", i, err)
			}
			elems[i] = child
		}
		return NewArray(elems...), nil

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Record{}, fmt.Errorf("%w: map key type %s", ErrUnsupportedValue, rv.Type().Key())
		}
		fields := make([]Field, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			child, err := FromValue(iter.Value().Interface())
			if err != nil {
				return Record{}, fmt.Errorf("key %q: %w", k, err)
			}
			fields = append(fields, Field{Key: k, Value: child})
		}
		slices.SortFunc(fields, func(a, b Field) int { return strings.Compare(a.Key, b.Key) })
		return Record{kind: ObjectKind, fields: fields}, nil
	}

	return Record{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

// normalizeScalar widens numeric values to float64 and reports whether v is a scalar.
func normalizeScalar(v any) (any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, true
	case bool, string, float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	}
	return nil, false
}
