package ecs

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// Scheduler runs a fixed list of systems in order. The arena drives its
// systems directly because its tick interleaves collision steps between them;
// the scheduler covers the modes that only need plain system order.
type Scheduler struct {
	systems []System
}

// NewScheduler creates a scheduler over the given systems.
func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

// Add appends a system to the update order.
func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs all systems once in order.
func (s *Scheduler) Update(w *World) {
	if s == nil {
		return
	}
	for _, system := range s.systems {
		if system != nil {
			system.Update(w)
		}
	}
}
