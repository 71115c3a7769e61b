package systems

import (
	"github.com/jakecoffman/cp"

	"github.com/hvail/terminal-echo/common"
	"github.com/hvail/terminal-echo/ecs"
	"github.com/hvail/terminal-echo/ecs/components"
)

// PlayerControllerSystem integrates player movement from the mirrored input
// state: accelerate per held direction, apply friction every tick, clamp the
// speed, then clamp the footprint to the playfield.
type PlayerControllerSystem struct {
	Width  float64
	Height float64
}

// NewPlayerControllerSystem creates a PlayerControllerSystem bounded by the
// playfield size.
func NewPlayerControllerSystem(width, height float64) *PlayerControllerSystem {
	return &PlayerControllerSystem{Width: width, Height: height}
}

// Update advances every entity with a player controller by one tick.
func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil || s == nil {
		return
	}
	set := w.PlayerControllers()
	if set == nil {
		return
	}

	for _, id := range set.Entities() {
		ctrl, ok := set.Get(id).(*components.PlayerController)
		if !ok || ctrl == nil {
			continue
		}
		ent := ecs.Entity{ID: id}
		tr := w.GetTransform(ent)
		if tr == nil {
			continue
		}
		vel := w.GetVelocity(ent)
		if vel == nil {
			vel = &components.Velocity{}
			w.SetVelocity(ent, vel)
		}

		var accel cp.Vector
		if in := w.GetInput(ent); in != nil {
			accel = cp.Vector{X: in.MoveX * ctrl.Accel, Y: in.MoveY * ctrl.Accel}
		}

		vel.V = vel.V.Add(accel)
		// Friction applies every tick, held input or not; momentum decays
		// instead of stopping.
		vel.V = vel.V.Mult(ctrl.Friction)
		if vel.V.Length() > ctrl.MaxSpeed {
			vel.V = vel.V.Clamp(ctrl.MaxSpeed)
		}

		tr.Pos = tr.Pos.Add(vel.V)
		tr.Pos.X = common.Clamp(tr.Pos.X, 0, s.Width-ctrl.Width)
		tr.Pos.Y = common.Clamp(tr.Pos.Y, 0, s.Height-ctrl.Height)
	}
}
