// internal/defs/maps.go
package defs

import "homeland/pkg/pathing"

// LeakPenalty is debited once for every boat that reaches the end of the path.
type LeakPenalty struct {
	Coins int `json:"coins" yaml:"coins"`
	XP    int `json:"xp" yaml:"xp"`
}

// UnlockRequirement — порог опыта для открытия следующей карты.
type UnlockRequirement struct {
	NextMap string `json:"next_map" yaml:"next_map"`
	MinXP   int    `json:"min_xp" yaml:"min_xp"`
}

type Waypoint struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// BuildSlot is a fixed map position that holds at most one tower.
type BuildSlot struct {
	ID string  `json:"id" yaml:"id"`
	X  float64 `json:"x" yaml:"x"`
	Y  float64 `json:"y" yaml:"y"`
}

// Point returns the slot position in map units.
func (s BuildSlot) Point() pathing.Point {
	return pathing.Point{X: s.X, Y: s.Y}
}

type MapDefinition struct {
	ID                string            `json:"map_id" yaml:"map_id"`
	StartingCoins     int               `json:"starting_coins" yaml:"starting_coins"`
	StartingXP        int               `json:"starting_xp" yaml:"starting_xp"`
	LeakPenalty       LeakPenalty       `json:"leak_penalty" yaml:"leak_penalty"`
	UnlockRequirement UnlockRequirement `json:"unlock_requirement" yaml:"unlock_requirement"`
	PathWaypoints     []Waypoint        `json:"path_waypoints" yaml:"path_waypoints"`
	BuildSlots        []BuildSlot       `json:"build_slots" yaml:"build_slots"`
}

// PathPoints converts the waypoints for pathing.New.
func (m MapDefinition) PathPoints() []pathing.Point {
	points := make([]pathing.Point, len(m.PathWaypoints))
	for i, wp := range m.PathWaypoints {
		points[i] = pathing.Point{X: wp.X, Y: wp.Y}
	}
	return points
}

// ProgressionDefinition — опыт за прохождение волны и карты.
type ProgressionDefinition struct {
	XPPerWaveClear int `json:"xp_per_wave_clear" yaml:"xp_per_wave_clear"`
	XPMapClear     int `json:"xp_map_clear" yaml:"xp_map_clear"`
}
