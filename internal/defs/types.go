// internal/defs/types.go
package defs

import (
	"errors"
	"fmt"
)

// ErrInvalidContent wraps every content validation failure.
var ErrInvalidContent = errors.New("invalid content")

// ErrMissingFile is returned when a definition file exists in none of the supported formats.
var ErrMissingFile = errors.New("missing definition file")

// EffectType — стихия башни, определяет вторичный эффект атаки.
type EffectType int

const (
	EffectNone EffectType = iota
	EffectFire
	EffectWind
	EffectLightning
)

func (e EffectType) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectFire:
		return "fire"
	case EffectWind:
		return "wind"
	case EffectLightning:
		return "lightning"
	default:
		return fmt.Sprintf("EffectType(%d)", int(e))
	}
}

// ParseEffectType maps a content tag to its effect. "physical" and the
// empty tag are plain damage towers.
func ParseEffectType(tag string) (EffectType, error) {
	switch tag {
	case "", "none", "physical":
		return EffectNone, nil
	case "fire":
		return EffectFire, nil
	case "wind":
		return EffectWind, nil
	case "lightning":
		return EffectLightning, nil
	default:
		return EffectNone, fmt.Errorf("%w: unknown effect type %q", ErrInvalidContent, tag)
	}
}

// UnmarshalText lets both encoding/json and yaml.v3 decode effect tags.
func (e *EffectType) UnmarshalText(text []byte) error {
	parsed, err := ParseEffectType(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

func (e EffectType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}
