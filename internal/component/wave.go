// internal/component/wave.go
package component

import "homeland/internal/defs"

// WaveRuntime is the spawn state of the wave currently running.
type WaveRuntime struct {
	Definition    defs.WaveDefinition
	SpawnQueue    []string // типы лодок в порядке появления
	SpawnCooldown float64
}

// NewWaveRuntime flattens the composition into a spawn queue. The first
// boat is due immediately.
func NewWaveRuntime(def defs.WaveDefinition) *WaveRuntime {
	queue := make([]string, 0, def.Composition.Total())
	for _, entry := range def.Composition {
		for i := 0; i < entry.Count; i++ {
			queue = append(queue, entry.EnemyType)
		}
	}
	return &WaveRuntime{Definition: def, SpawnQueue: queue}
}

func (w *WaveRuntime) FinishedSpawning() bool {
	return len(w.SpawnQueue) == 0
}
