// internal/system/placement.go
package system

import (
	"fmt"

	"homeland/internal/component"
	"homeland/internal/defs"
	"homeland/internal/types"
)

// PlacementSystem binds towers to build slots, at most one tower per slot.
// Towers are reported in build order.
type PlacementSystem struct {
	slots     map[string]defs.BuildSlot
	slotOrder []string
	bySlot    map[string]*component.Tower
	built     []*component.Tower
	ids       types.Sequence
}

func NewPlacementSystem(slots []defs.BuildSlot) *PlacementSystem {
	p := &PlacementSystem{
		slots:  make(map[string]defs.BuildSlot, len(slots)),
		bySlot: make(map[string]*component.Tower),
	}
	for _, slot := range slots {
		if _, dup := p.slots[slot.ID]; !dup {
			p.slotOrder = append(p.slotOrder, slot.ID)
		}
		p.slots[slot.ID] = slot
	}
	return p
}

func (p *PlacementSystem) Slot(slotID string) (defs.BuildSlot, bool) {
	slot, ok := p.slots[slotID]
	return slot, ok
}

// Slots returns every build slot in map order.
func (p *PlacementSystem) Slots() []defs.BuildSlot {
	out := make([]defs.BuildSlot, 0, len(p.slotOrder))
	for _, id := range p.slotOrder {
		out = append(out, p.slots[id])
	}
	return out
}

func (p *PlacementSystem) IsSlotAvailable(slotID string) bool {
	_, known := p.slots[slotID]
	_, taken := p.bySlot[slotID]
	return known && !taken
}

// CheckPlacement reports why a tower could not be placed on slotID, without changing anything.
func (p *PlacementSystem) CheckPlacement(slotID string) error {
	if _, ok := p.slots[slotID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSlot, slotID)
	}
	if _, taken := p.bySlot[slotID]; taken {
		return fmt.Errorf("%w: %s", ErrSlotOccupied, slotID)
	}
	return nil
}

// Place creates a level 1 tower of towerType on slotID.
func (p *PlacementSystem) Place(slotID, towerType string) (*component.Tower, error) {
	if err := p.CheckPlacement(slotID); err != nil {
		return nil, err
	}
	slot := p.slots[slotID]
	tower := &component.Tower{
		ID:       types.TowerID(p.ids.Next()),
		DefID:    towerType,
		SlotID:   slotID,
		Position: slot.Point(),
		Level:    1,
	}
	p.bySlot[slotID] = tower
	p.built = append(p.built, tower)
	return tower, nil
}

func (p *PlacementSystem) TowerAt(slotID string) (*component.Tower, bool) {
	tower, ok := p.bySlot[slotID]
	return tower, ok
}

// Towers returns the placed towers in build order.
func (p *PlacementSystem) Towers() []*component.Tower {
	return append([]*component.Tower(nil), p.built...)
}

func (p *PlacementSystem) Count() int {
	return len(p.built)
}
