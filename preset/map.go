package preset

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Pair is one entry of a Map.
type Pair[V any] struct {
	Key   string
	Value V
}

// Map is an insertion-ordered string map. It encodes as a JSON object and a
// YAML mapping with keys in insertion order.
type Map[V any] []Pair[V]

// Set replaces the value of key, or appends it.
func (m *Map[V]) Set(key string, value V) {
	for i := range *m {
		if (*m)[i].Key == key {
			(*m)[i].Value = value
			return
		}
	}
	*m = append(*m, Pair[V]{Key: key, Value: value})
}

// Get returns the value of key.
func (m Map[V]) Get(key string) (V, bool) {
	for _, p := range m {
		if p.Key == key {
			return p.Value, true
		}
	}
	var zero V
	return zero, false
}

// Keys returns the keys in order.
func (m Map[V]) Keys() []string {
	keys := make([]string, len(m))
	for i, p := range m {
		keys[i] = p.Key
	}
	return keys
}

func (m Map[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m Map[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range m {
		var key, val yaml.Node
		key.SetString(p.Key)
		if err := val.Encode(p.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &val)
	}
	return node, nil
}

type fontSizeOptions struct {
	LineHeight    string `json:"lineHeight" yaml:"lineHeight"`
	LetterSpacing string `json:"letterSpacing,omitempty" yaml:"letterSpacing,omitempty"`
	FontWeight    string `json:"fontWeight" yaml:"fontWeight"`
}

func (f FontSize) tuple() []any {
	return []any{f.Size, fontSizeOptions{
		LineHeight:    f.LineHeight,
		LetterSpacing: f.LetterSpacing,
		FontWeight:    f.FontWeight,
	}}
}

func (f FontSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.tuple())
}

func (f FontSize) MarshalYAML() (any, error) {
	return f.tuple(), nil
}
