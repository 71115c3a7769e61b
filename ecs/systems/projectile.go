package systems

import (
	"github.com/jakecoffman/cp"

	"github.com/hvail/terminal-echo/ecs"
	"github.com/hvail/terminal-echo/ecs/components"
)

var cpZero = cp.Vector{}

// ProjectileSystem advances active projectiles and deactivates any that leave
// the playfield. Deactivated projectiles are swept by the arena's compaction
// pass, never removed mid-iteration.
type ProjectileSystem struct {
	Width  float64
	Height float64
}

// NewProjectileSystem creates a ProjectileSystem bounded by the playfield
// size.
func NewProjectileSystem(width, height float64) *ProjectileSystem {
	return &ProjectileSystem{Width: width, Height: height}
}

// Update moves every active projectile by its velocity.
func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil || s == nil {
		return
	}
	set := w.Projectiles()
	if set == nil {
		return
	}

	for _, id := range set.Entities() {
		p, ok := set.Get(id).(*components.Projectile)
		if !ok || p == nil || !p.Active {
			continue
		}
		ent := ecs.Entity{ID: id}
		tr := w.GetTransform(ent)
		vel := w.GetVelocity(ent)
		if tr == nil || vel == nil {
			continue
		}

		tr.Pos = tr.Pos.Add(vel.V)
		if tr.Pos.X < 0 || tr.Pos.X > s.Width || tr.Pos.Y < 0 || tr.Pos.Y > s.Height {
			p.Active = false
		}
	}
}

// SpawnProjectile creates a projectile at from moving along angle (radians)
// at the given speed.
func SpawnProjectile(w *ecs.World, from cp.Vector, angle, speed, radius float64) ecs.Entity {
	if w == nil {
		return ecs.Entity{}
	}
	e := w.CreateEntity()
	w.SetTransform(e, &components.Transform{Pos: from})
	w.SetVelocity(e, &components.Velocity{V: cp.ForAngle(angle).Mult(speed)})
	w.SetProjectile(e, &components.Projectile{Radius: radius, Active: true})
	return e
}
