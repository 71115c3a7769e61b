package systems

import (
	"github.com/hvail/terminal-echo/ecs"
	"github.com/hvail/terminal-echo/ecs/components"
)

// HealthSystem advances invulnerability countdowns. Each component ticks
// exactly once per update.
type HealthSystem struct{}

// NewHealthSystem creates a HealthSystem.
func NewHealthSystem() *HealthSystem {
	return &HealthSystem{}
}

// Update ticks every health component.
func (s *HealthSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	set := w.Healths()
	if set == nil {
		return
	}
	for _, id := range set.Entities() {
		if h, ok := set.Get(id).(*components.Health); ok && h != nil {
			h.Tick()
		}
	}
}
