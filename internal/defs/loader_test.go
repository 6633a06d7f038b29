package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, rel, body string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

const testMapJSON = `{
  "map_id": "test_map",
  "starting_coins": 100,
  "starting_xp": 0,
  "leak_penalty": {"coins": 10, "xp": 2},
  "unlock_requirement": {"next_map": "map_02", "min_xp": 10},
  "path_waypoints": [{"x": 0, "y": 0.5}, {"x": 1, "y": 0.5}],
  "build_slots": [{"id": "s1", "x": 0.2, "y": 0.5}]
}`

const testTowersJSON = `[
  {"tower_id": "arrow", "display_name": "Arrow Tower", "effect_type": "physical",
   "levels": [
     {"level": 2, "cost": 10, "stats": {"damage": 90, "range": 5, "attack_speed": 5}},
     {"level": 1, "cost": 10, "stats": {"damage": 80, "range": 5, "attack_speed": 5}}
   ]},
  {"tower_id": "zap", "display_name": "Zap", "effect_type": "lightning",
   "levels": [{"level": 1, "cost": 100, "stats": {"damage": 58, "range": 2.8, "attack_speed": 0.8, "chain_count": 1, "chain_falloff": 35}}]}
]`

const testEnemiesJSON = `[
  {"enemy_type": "scout", "hp": 50, "speed": 0.2, "coin_reward": 5, "xp_reward": 2},
  {"enemy_type": "raider", "hp": 200, "speed": 0.1, "coin_reward": 9, "xp_reward": 3}
]`

const testProgressionJSON = `{"xp_per_wave_clear": 3, "xp_map_clear": 7}`

func writeFixture(t *testing.T, wavesName, wavesBody string) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "maps/test_map.json", testMapJSON)
	writeFile(t, dir, "towers/towers.json", testTowersJSON)
	writeFile(t, dir, "enemies/boat_types.json", testEnemiesJSON)
	writeFile(t, dir, "progression/progression.json", testProgressionJSON)
	writeFile(t, dir, "waves/"+wavesName, wavesBody)
	return dir
}

func TestLoadContentJSON(t *testing.T) {
	dir := writeFixture(t, "test_map_waves.json", `[
	  {"wave_id": 2, "spawn_interval": 0.5, "composition": {"raider": 1}},
	  {"wave_id": 1, "spawn_interval": 0.5, "composition": {"scout": 2, "raider": 1}}
	]`)

	content, err := LoadContent(dir, "test_map")
	if err != nil {
		t.Fatalf("LoadContent returned error: %v", err)
	}

	if content.Map.ID != "test_map" || content.Map.StartingCoins != 100 {
		t.Errorf("unexpected map: %+v", content.Map)
	}
	if len(content.Waves) != 2 || content.Waves[0].ID != 1 {
		t.Fatalf("waves not sorted by id: %+v", content.Waves)
	}
	want := Composition{{EnemyType: "scout", Count: 2}, {EnemyType: "raider", Count: 1}}
	if got := content.Waves[0].Composition; len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("composition order lost: %+v", got)
	}

	arrow := content.Towers["arrow"]
	if arrow.Effect != EffectNone {
		t.Errorf("physical tower should map to EffectNone, got %v", arrow.Effect)
	}
	if arrow.Levels[0].Level != 1 || arrow.Levels[0].Stats.Damage != 80 {
		t.Errorf("levels not sorted: %+v", arrow.Levels)
	}
	zap := content.Towers["zap"]
	if zap.Effect != EffectLightning || zap.Levels[0].Stats.ChainCount != 1 {
		t.Errorf("unexpected lightning tower: %+v", zap)
	}
}

func TestLoadContentYAMLKeepsCompositionOrder(t *testing.T) {
	dir := writeFixture(t, "test_map_waves.yaml", `
- wave_id: 1
  spawn_interval: 0.5
  composition:
    raider: 1
    scout: 2
`)

	content, err := LoadContent(dir, "test_map")
	if err != nil {
		t.Fatalf("LoadContent returned error: %v", err)
	}
	comp := content.Waves[0].Composition
	if len(comp) != 2 || comp[0].EnemyType != "raider" || comp[1].EnemyType != "scout" {
		t.Errorf("unexpected composition: %+v", comp)
	}
	if comp.Total() != 3 {
		t.Errorf("expected total 3, got %d", comp.Total())
	}
}

func TestLoadContentRejectsUnknownEnemyInWave(t *testing.T) {
	dir := writeFixture(t, "test_map_waves.json", `[
	  {"wave_id": 1, "spawn_interval": 0.5, "composition": {"kraken": 1}}
	]`)

	if _, err := LoadContent(dir, "test_map"); !errors.Is(err, ErrInvalidContent) {
		t.Fatalf("expected ErrInvalidContent, got %v", err)
	}
}

func TestLoadContentMissingFile(t *testing.T) {
	dir := writeFixture(t, "other_waves.json", `[]`)
	if _, err := LoadContent(dir, "test_map"); !errors.Is(err, ErrMissingFile) {
		t.Fatalf("expected ErrMissingFile, got %v", err)
	}
}

func TestLoadShippedContent(t *testing.T) {
	content, err := LoadContent(filepath.Join("..", "..", "data"), "map_01_river_bend")
	if err != nil {
		t.Fatalf("LoadContent returned error: %v", err)
	}
	if content.Map.StartingCoins != 10000 {
		t.Errorf("unexpected starting coins %d", content.Map.StartingCoins)
	}
	if len(content.Map.PathWaypoints) != 7 {
		t.Errorf("expected 7 waypoints, got %d", len(content.Map.PathWaypoints))
	}
	if len(content.Map.BuildSlots) != 10 {
		t.Errorf("expected 10 build slots, got %d", len(content.Map.BuildSlots))
	}
	for _, id := range []string{"arrow", "bone", "magic_fire", "magic_wind", "magic_lightning"} {
		if _, ok := content.Towers[id]; !ok {
			t.Errorf("missing tower %s", id)
		}
	}
	if _, ok := content.Enemies["scout"]; !ok {
		t.Errorf("missing scout")
	}
	if len(content.Waves) != 5 {
		t.Errorf("expected 5 waves, got %d", len(content.Waves))
	}
	if content.Progression.XPPerWaveClear != 25 {
		t.Errorf("unexpected xp per wave clear %d", content.Progression.XPPerWaveClear)
	}
}
