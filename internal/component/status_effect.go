// internal/component/status_effect.go
package component

// BurnEffect — урон в секунду, пока не истечёт Remaining.
type BurnEffect struct {
	DPS       float64
	Remaining float64
}

func (b BurnEffect) Active() bool { return b.Remaining > 0 }

// SlowEffect indicates that a boat is slowed by Percent until Remaining runs out.
type SlowEffect struct {
	Percent   float64
	Remaining float64
}

func (s SlowEffect) Active() bool { return s.Remaining > 0 }
