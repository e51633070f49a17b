package schema

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// FlatMap maps rendered paths to scalar leaf values in traversal order.
type FlatMap struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewFlatMap returns an empty FlatMap.
func NewFlatMap() *FlatMap {
	return &FlatMap{m: orderedmap.New[string, any]()}
}

// Set stores value under key. An existing key keeps its position.
func (f *FlatMap) Set(key string, value any) {
	f.m.Set(key, value)
}

// Get returns the value under key and whether it is present.
func (f *FlatMap) Get(key string) (any, bool) {
	if f == nil {
		return nil, false
	}
	return f.m.Get(key)
}

// Has reports whether key is present.
func (f *FlatMap) Has(key string) bool {
	_, ok := f.Get(key)
	return ok
}

// Len returns the number of entries.
func (f *FlatMap) Len() int {
	if f == nil {
		return 0
	}
	return f.m.Len()
}

// Keys returns the keys in insertion order.
func (f *FlatMap) Keys() []string {
	if f == nil {
		return nil
	}
	keys := make([]string, 0, f.m.Len())
	for pair := f.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Each calls fn for every entry in insertion order.
func (f *FlatMap) Each(fn func(key string, value any)) {
	if f == nil {
		return
	}
	for pair := f.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// MarshalJSON encodes the entries as a JSON object, preserving order.
func (f *FlatMap) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("null"), nil
	}
	return json.Marshal(f.m)
}

// MarshalYAML encodes the entries as a YAML mapping, preserving order.
func (f *FlatMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	var encErr error
	f.Each(func(key string, value any) {
		if encErr != nil {
			return
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(value); err != nil {
			encErr = err
			return
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, valueNode)
	})
	if encErr != nil {
		return nil, encErr
	}
	return node, nil
}
