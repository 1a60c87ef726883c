package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// StreakMap maps activity name to its consecutive-day count, preserving
// insertion order. The zero value is ready to use.
type StreakMap struct {
	keys   []string
	counts map[string]int
}

// NewStreakMap builds a StreakMap from ordered pairs.
func NewStreakMap(pairs ...StreakEntry) StreakMap {
	var m StreakMap
	for _, p := range pairs {
		m.Set(p.Activity, p.Count)
	}
	return m
}

// StreakEntry is one (activity, count) pair.
type StreakEntry struct {
	Activity string `json:"activity" yaml:"activity"`
	Count    int    `json:"count" yaml:"count"`
}

// Len returns the number of tracked activities.
func (m *StreakMap) Len() int { return len(m.keys) }

// Has reports whether activity has a streak entry.
func (m *StreakMap) Has(activity string) bool {
	_, ok := m.counts[activity]
	return ok
}

// Get returns the count for activity (0 when absent).
func (m *StreakMap) Get(activity string) int {
	return m.counts[activity]
}

// Set assigns count, appending activity if it is new. Negative counts clamp to 0.
func (m *StreakMap) Set(activity string, count int) {
	if count < 0 {
		count = 0
	}
	if m.counts == nil {
		m.counts = make(map[string]int)
	}
	if _, ok := m.counts[activity]; !ok {
		m.keys = append(m.keys, activity)
	}
	m.counts[activity] = count
}

// Increment bumps the count for activity by one and returns the new value.
func (m *StreakMap) Increment(activity string) int {
	m.Set(activity, m.Get(activity)+1)
	return m.counts[activity]
}

// Delete removes activity. Reports whether it was present.
func (m *StreakMap) Delete(activity string) bool {
	if _, ok := m.counts[activity]; !ok {
		return false
	}
	delete(m.counts, activity)
	for i, k := range m.keys {
		if k == activity {
			m.keys = append(m.keys[:i:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Rename moves the count from oldName to newName keeping its position.
// If newName already exists the counts are kept separate and false is returned.
func (m *StreakMap) Rename(oldName, newName string) bool {
	count, ok := m.counts[oldName]
	if !ok {
		return false
	}
	if _, taken := m.counts[newName]; taken {
		return false
	}
	delete(m.counts, oldName)
	m.counts[newName] = count
	for i, k := range m.keys {
		if k == oldName {
			m.keys[i] = newName
			break
		}
	}
	return true
}

// Keys returns activity names in insertion order.
func (m *StreakMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Entries returns ordered pairs.
func (m *StreakMap) Entries() []StreakEntry {
	out := make([]StreakEntry, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, StreakEntry{Activity: k, Count: m.counts[k]})
	}
	return out
}

// Max returns the highest count, or 0 for an empty map.
func (m *StreakMap) Max() int {
	best := 0
	for _, c := range m.counts {
		if c > best {
			best = c
		}
	}
	return best
}

// Clone returns an independent copy.
func (m *StreakMap) Clone() StreakMap {
	return NewStreakMap(m.Entries()...)
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m StreakMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", m.counts[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping key order.
func (m *StreakMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = StreakMap{}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("streak map: expected object, got %v", tok)
	}
	var out StreakMap
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("streak map: expected string key, got %v", keyTok)
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("streak map: decoding %q: %w", key, err)
		}
		out.Set(key, count)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = out
	return nil
}

// MarshalYAML encodes the map as an ordered YAML mapping.
func (m StreakMap) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(m.counts[k])},
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping, keeping key order. A null node
// yields an empty map.
func (m *StreakMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*m = StreakMap{}
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("streak map: expected mapping at line %d", value.Line)
	}
	var out StreakMap
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i].Value
		var count int
		if err := value.Content[i+1].Decode(&count); err != nil {
			return fmt.Errorf("streak map: decoding %q: %w", key, err)
		}
		out.Set(key, count)
	}
	*m = out
	return nil
}
