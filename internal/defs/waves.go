// internal/defs/waves.go
package defs

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// CompositionEntry — сколько лодок одного типа в волне.
type CompositionEntry struct {
	EnemyType string
	Count     int
}

// Composition is an ordered enemy type -> count list. Order is the order in
// which the types appear in the content file, and it decides spawn order.
type Composition []CompositionEntry

// Total returns the number of boats the composition spawns.
func (c Composition) Total() int {
	total := 0
	for _, entry := range c {
		total += entry.Count
	}
	return total
}

// UnmarshalJSON decodes a JSON object while keeping key order.
func (c *Composition) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("composition: expected object, got %v", tok)
	}

	out := Composition{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("composition: unexpected key %v", keyTok)
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("composition %q: %w", key, err)
		}
		out = append(out, CompositionEntry{EnemyType: key, Count: count})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*c = out
	return nil
}

// UnmarshalYAML decodes a YAML mapping while keeping key order.
func (c *Composition) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("composition: expected mapping at line %d", node.Line)
	}
	out := make(Composition, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var count int
		if err := node.Content[i+1].Decode(&count); err != nil {
			return fmt.Errorf("composition %q: %w", key, err)
		}
		out = append(out, CompositionEntry{EnemyType: key, Count: count})
	}
	*c = out
	return nil
}

// WaveDefinition описывает параметры для одной волны лодок.
type WaveDefinition struct {
	ID            int         `json:"wave_id" yaml:"wave_id"`
	SpawnInterval float64     `json:"spawn_interval" yaml:"spawn_interval"` // секунды
	Composition   Composition `json:"composition" yaml:"composition"`
}
