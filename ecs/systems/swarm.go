package systems

import (
	"math"

	"github.com/hvail/terminal-echo/ecs"
	"github.com/hvail/terminal-echo/ecs/components"
)

// SwarmSystem advances swarm units toward the target entity. Each unit takes
// a direction-scaled step plus a perpendicular sinusoidal weave driven by its
// phase accumulator; there is no pathfinding or avoidance.
type SwarmSystem struct {
	Target ecs.Entity
}

// NewSwarmSystem creates a SwarmSystem chasing target.
func NewSwarmSystem(target ecs.Entity) *SwarmSystem {
	return &SwarmSystem{Target: target}
}

// Update steps every swarm unit once.
func (s *SwarmSystem) Update(w *ecs.World) {
	if w == nil || s == nil {
		return
	}
	set := w.SwarmUnits()
	if set == nil {
		return
	}
	targetTr := w.GetTransform(s.Target)
	if targetTr == nil {
		return
	}
	goal := targetTr.Pos
	if ctrl := w.GetPlayerController(s.Target); ctrl != nil {
		goal = ctrl.Center(targetTr.Pos)
	}

	for _, id := range set.Entities() {
		unit, ok := set.Get(id).(*components.SwarmUnit)
		if !ok || unit == nil {
			continue
		}
		tr := w.GetTransform(ecs.Entity{ID: id})
		if tr == nil {
			continue
		}

		dir := goal.Sub(tr.Pos)
		if dir.Length() > 0 {
			dir = dir.Normalize()
		} else {
			// Coincident with the target: hold still rather than divide
			// by zero.
			dir = cpZero
		}

		unit.Phase += unit.PhaseStep
		step := dir.Mult(unit.Speed).Add(dir.Perp().Mult(math.Sin(unit.Phase) * unit.Wobble))
		tr.Pos = tr.Pos.Add(step)
	}
}
