// pkg/render/color.go
package render

import (
	"image/color"

	"homeland/internal/component"
	"homeland/internal/config"
	"homeland/internal/defs"
	"homeland/internal/utils"
)

// Palette holds every color the map renderer needs.
type Palette struct {
	Background color.RGBA
	Water      color.RGBA
	Slot       color.RGBA
	SlotHover  color.RGBA
	Enemy      color.RGBA
	BurnTint   color.RGBA
	SlowTint   color.RGBA
	HPBack     color.RGBA
	HPFill     color.RGBA
	Text       color.RGBA
	Towers     []color.RGBA // по стихии, индекс = defs.EffectType
}

// DefaultPalette собирает палитру из config.
func DefaultPalette() Palette {
	return Palette{
		Background: config.BackgroundColor,
		Water:      config.WaterColor,
		Slot:       config.SlotColor,
		SlotHover:  config.SlotHoverColor,
		Enemy:      config.EnemyColor,
		BurnTint:   config.BurnTint,
		SlowTint:   config.SlowTint,
		HPBack:     config.HPBackColor,
		HPFill:     config.HPFillColor,
		Text:       config.TextLightColor,
		Towers:     config.TowerColors,
	}
}

// TowerColor returns the color for an effect, falling back to the first entry.
func (p Palette) TowerColor(effect defs.EffectType) color.RGBA {
	if int(effect) >= 0 && int(effect) < len(p.Towers) {
		return p.Towers[effect]
	}
	if len(p.Towers) > 0 {
		return p.Towers[0]
	}
	return p.Slot
}

// EnemyColor tints the base boat color for active burn and slow effects.
func (p Palette) EnemyColor(e *component.Enemy) color.RGBA {
	c := p.Enemy
	if e.Burn.Active() {
		c = Mix(c, p.BurnTint, 0.6)
	}
	if e.Slow.Active() {
		c = Mix(c, p.SlowTint, 0.5)
	}
	return c
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Mix интерполирует два цвета покомпонентно, t в [0, 1].
func Mix(a, b color.RGBA, t float64) color.RGBA {
	k := float32(utils.Clamp(t, 0, 1))
	return color.RGBA{
		R: uint8(utils.Lerp(float32(a.R), float32(b.R), k)),
		G: uint8(utils.Lerp(float32(a.G), float32(b.G), k)),
		B: uint8(utils.Lerp(float32(a.B), float32(b.B), k)),
		A: uint8(utils.Lerp(float32(a.A), float32(b.A), k)),
	}
}
