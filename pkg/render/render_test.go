package render

import (
	"image/color"
	"testing"

	"homeland/internal/component"
	"homeland/internal/defs"
	"homeland/pkg/pathing"
)

func TestProjectionRoundTrip(t *testing.T) {
	proj := NewProjection(1200, 900, 60)

	x, y := proj.ToScreen(pathing.Point{X: 0.5, Y: 0.5})
	if x != 600 || y != 450 {
		t.Fatalf("ToScreen(0.5, 0.5) = %v, %v", x, y)
	}
	back := proj.ToMap(float64(x), float64(y))
	if back.X != 0.5 || back.Y != 0.5 {
		t.Errorf("ToMap = %+v", back)
	}
	if (Projection{}).ToMap(10, 10) != (pathing.Point{}) {
		t.Errorf("degenerate projection should map to origin")
	}
}

func TestSlotAtPicksNearestWithinRadius(t *testing.T) {
	proj := NewProjection(1100, 1100, 50) // 1000x1000 px
	slots := []defs.BuildSlot{{ID: "a", X: 0.1, Y: 0.1}, {ID: "b", X: 0.11, Y: 0.1}}

	slot, ok := proj.SlotAt(slots, 158, 150, 14)
	if !ok || slot.ID != "b" {
		t.Errorf("expected slot b, got %+v %v", slot, ok)
	}
	if _, ok := proj.SlotAt(slots, 500, 500, 14); ok {
		t.Errorf("click far from every slot matched")
	}
}

func TestPaletteColors(t *testing.T) {
	p := DefaultPalette()
	if p.TowerColor(defs.EffectLightning) != p.Towers[3] {
		t.Errorf("lightning color mismatch")
	}
	if p.TowerColor(defs.EffectType(99)) != p.Towers[0] {
		t.Errorf("unknown effect should fall back to first color")
	}

	calm := &component.Enemy{}
	if p.EnemyColor(calm) != p.Enemy {
		t.Errorf("untinted boat changed color")
	}
	burning := &component.Enemy{Burn: component.BurnEffect{DPS: 5, Remaining: 1}}
	if p.EnemyColor(burning) == p.Enemy {
		t.Errorf("burning boat not tinted")
	}
}

func TestMixAndDarken(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{200, 100, 50, 255}
	if got := Mix(black, white, 0.5); got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("Mix = %+v", got)
	}
	if got := Mix(black, white, 3); got != white {
		t.Errorf("Mix should clamp t, got %+v", got)
	}
	if got := DarkenColor(white); got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("DarkenColor = %+v", got)
	}
}
