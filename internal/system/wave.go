// internal/system/wave.go
package system

import (
	"cmp"
	"fmt"
	"slices"

	"homeland/internal/component"
	"homeland/internal/defs"
)

// WaveSystem runs at most one wave at a time, in ascending wave id order.
type WaveSystem struct {
	waves   []defs.WaveDefinition
	index   int // индекс текущей волны, -1 до первого старта
	runtime *component.WaveRuntime
}

func NewWaveSystem(waves []defs.WaveDefinition) (*WaveSystem, error) {
	if len(waves) == 0 {
		return nil, ErrNoWaves
	}
	sorted := slices.Clone(waves)
	slices.SortStableFunc(sorted, func(a, b defs.WaveDefinition) int { return cmp.Compare(a.ID, b.ID) })
	return &WaveSystem{waves: sorted, index: -1}, nil
}

// CurrentWaveNumber returns the id of the latest started wave, or 0.
func (s *WaveSystem) CurrentWaveNumber() int {
	if s.index < 0 {
		return 0
	}
	return s.waves[s.index].ID
}

func (s *WaveSystem) TotalWaves() int {
	return len(s.waves)
}

func (s *WaveSystem) HasMoreWaves() bool {
	return s.index+1 < len(s.waves)
}

func (s *WaveSystem) HasActiveWave() bool {
	return s.runtime != nil
}

// StartNextWave advances to the next definition and builds its spawn queue.
func (s *WaveSystem) StartNextWave() (*component.WaveRuntime, error) {
	if s.runtime != nil {
		return nil, fmt.Errorf("start wave %d: %w", s.CurrentWaveNumber(), ErrWaveRunning)
	}
	if !s.HasMoreWaves() {
		return nil, ErrNoMoreWaves
	}
	s.index++
	s.runtime = component.NewWaveRuntime(s.waves[s.index])
	return s.runtime, nil
}

// Tick returns the boat types due this tick. Several boats can come out of
// one call when dt spans more than one spawn interval.
func (s *WaveSystem) Tick(dt float64) []string {
	if s.runtime == nil || dt <= 0 {
		return nil
	}

	rt := s.runtime
	rt.SpawnCooldown -= dt

	var spawned []string
	for len(rt.SpawnQueue) > 0 && rt.SpawnCooldown <= 0 {
		spawned = append(spawned, rt.SpawnQueue[0])
		rt.SpawnQueue = rt.SpawnQueue[1:]
		rt.SpawnCooldown += rt.Definition.SpawnInterval
	}
	return spawned
}

// IsWaveComplete is true once the queue is empty and the caller reports no
// boats of this wave left alive.
func (s *WaveSystem) IsWaveComplete(activeEnemies int) bool {
	if s.runtime == nil {
		return false
	}
	return s.runtime.FinishedSpawning() && activeEnemies == 0
}

func (s *WaveSystem) FinishWave() {
	s.runtime = nil
}

// RemainingToSpawn returns how many boats of the running wave are still queued.
func (s *WaveSystem) RemainingToSpawn() int {
	if s.runtime == nil {
		return 0
	}
	return len(s.runtime.SpawnQueue)
}
