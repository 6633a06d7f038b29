// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// definitionExts — поддерживаемые форматы, в порядке приоритета.
var definitionExts = []string{".json", ".yaml", ".yml"}

// LoadContent reads, normalizes and validates the content of one map from dir:
//
//	maps/<mapID>, towers/towers, enemies/boat_types,
//	waves/<mapID>_waves, progression/progression
//
// Each file may be JSON or YAML.
func LoadContent(dir, mapID string) (*Content, error) {
	content := &Content{}

	if _, err := readDefinition(filepath.Join(dir, "maps", mapID), &content.Map); err != nil {
		return nil, err
	}

	var towers []TowerDefinition
	if _, err := readDefinition(filepath.Join(dir, "towers", "towers"), &towers); err != nil {
		return nil, err
	}
	content.Towers = make(map[string]TowerDefinition, len(towers))
	for _, def := range towers {
		if _, dup := content.Towers[def.ID]; dup {
			return nil, invalid("duplicate tower_id %s", def.ID)
		}
		content.Towers[def.ID] = def
	}

	var enemies []EnemyDefinition
	if _, err := readDefinition(filepath.Join(dir, "enemies", "boat_types"), &enemies); err != nil {
		return nil, err
	}
	content.Enemies = make(map[string]EnemyDefinition, len(enemies))
	for _, def := range enemies {
		if _, dup := content.Enemies[def.Type]; dup {
			return nil, invalid("duplicate enemy_type %s", def.Type)
		}
		content.Enemies[def.Type] = def
	}

	if _, err := readDefinition(filepath.Join(dir, "waves", mapID+"_waves"), &content.Waves); err != nil {
		return nil, err
	}
	if _, err := readDefinition(filepath.Join(dir, "progression", "progression"), &content.Progression); err != nil {
		return nil, err
	}

	content.Normalize()
	if err := content.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("content loaded",
		"map_id", content.Map.ID,
		"towers", len(content.Towers),
		"enemies", len(content.Enemies),
		"waves", len(content.Waves))
	return content, nil
}

// readDefinition decodes the first existing base+ext file into v and returns its path.
func readDefinition(base string, v any) (string, error) {
	for _, ext := range definitionExts {
		path := base + ext
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return path, fmt.Errorf("failed to read %s: %w", path, err)
		}

		if ext == ".json" {
			err = json.Unmarshal(data, v)
		} else {
			err = yaml.Unmarshal(data, v)
		}
		if err != nil {
			return path, fmt.Errorf("failed to unmarshal %s: %w", path, err)
		}
		return path, nil
	}
	return "", fmt.Errorf("%w: %s.{json,yaml,yml}", ErrMissingFile, base)
}
