// internal/system/progression.go
package system

// Progression — накопленный опыт игрока, не опускается ниже нуля.
type Progression struct {
	xp int
}

func NewProgression(xp int) *Progression {
	if xp < 0 {
		xp = 0
	}
	return &Progression{xp: xp}
}

func (p *Progression) XP() int {
	return p.xp
}

// Add applies a signed delta, flooring the total at zero, and returns the new total.
func (p *Progression) Add(delta int) int {
	p.xp += delta
	if p.xp < 0 {
		p.xp = 0
	}
	return p.xp
}

func (p *Progression) HasUnlock(minXP int) bool {
	return p.xp >= minXP
}
