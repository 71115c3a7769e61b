package ecs

import "github.com/hvail/terminal-echo/ecs/components"

// World owns entities and component storage. Systems mutate it one tick at a
// time; nothing in here is safe for concurrent use.
type World struct {
	entities entityStore

	transforms  *SparseSet
	velocities  *SparseSet
	healths     *SparseSet
	playerCtrls *SparseSet
	inputs      *SparseSet
	swarmUnits  *SparseSet
	projectiles *SparseSet
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity marks an entity as dead. Component removal is the caller's
// responsibility, as with the arena's compaction pass.
func (w *World) DestroyEntity(e Entity) bool {
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is still valid.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// Transforms returns the transform storage.
func (w *World) Transforms() *SparseSet {
	if w == nil {
		return nil
	}
	if w.transforms == nil {
		w.transforms = &SparseSet{}
	}
	return w.transforms
}

// Velocities returns the velocity storage.
func (w *World) Velocities() *SparseSet {
	if w == nil {
		return nil
	}
	if w.velocities == nil {
		w.velocities = &SparseSet{}
	}
	return w.velocities
}

// Healths returns the health storage.
func (w *World) Healths() *SparseSet {
	if w == nil {
		return nil
	}
	if w.healths == nil {
		w.healths = &SparseSet{}
	}
	return w.healths
}

// PlayerControllers returns the player controller storage.
func (w *World) PlayerControllers() *SparseSet {
	if w == nil {
		return nil
	}
	if w.playerCtrls == nil {
		w.playerCtrls = &SparseSet{}
	}
	return w.playerCtrls
}

// Inputs returns the input state storage.
func (w *World) Inputs() *SparseSet {
	if w == nil {
		return nil
	}
	if w.inputs == nil {
		w.inputs = &SparseSet{}
	}
	return w.inputs
}

// SwarmUnits returns the swarm unit storage.
func (w *World) SwarmUnits() *SparseSet {
	if w == nil {
		return nil
	}
	if w.swarmUnits == nil {
		w.swarmUnits = &SparseSet{}
	}
	return w.swarmUnits
}

// Projectiles returns the projectile storage.
func (w *World) Projectiles() *SparseSet {
	if w == nil {
		return nil
	}
	if w.projectiles == nil {
		w.projectiles = &SparseSet{}
	}
	return w.projectiles
}

// SetTransform attaches a transform component.
func (w *World) SetTransform(e Entity, t *components.Transform) {
	if w == nil || t == nil {
		return
	}
	w.Transforms().Set(e.ID, t)
}

// GetTransform returns a transform component.
func (w *World) GetTransform(e Entity) *components.Transform {
	if w == nil {
		return nil
	}
	if t, ok := w.Transforms().Get(e.ID).(*components.Transform); ok {
		return t
	}
	return nil
}

// SetVelocity attaches a velocity component.
func (w *World) SetVelocity(e Entity, v *components.Velocity) {
	if w == nil || v == nil {
		return
	}
	w.Velocities().Set(e.ID, v)
}

// GetVelocity returns a velocity component.
func (w *World) GetVelocity(e Entity) *components.Velocity {
	if w == nil {
		return nil
	}
	if v, ok := w.Velocities().Get(e.ID).(*components.Velocity); ok {
		return v
	}
	return nil
}

// SetHealth attaches a health component.
func (w *World) SetHealth(e Entity, h *components.Health) {
	if w == nil || h == nil {
		return
	}
	w.Healths().Set(e.ID, h)
}

// GetHealth returns a health component.
func (w *World) GetHealth(e Entity) *components.Health {
	if w == nil {
		return nil
	}
	if h, ok := w.Healths().Get(e.ID).(*components.Health); ok {
		return h
	}
	return nil
}

// SetPlayerController attaches a player controller component.
func (w *World) SetPlayerController(e Entity, p *components.PlayerController) {
	if w == nil || p == nil {
		return
	}
	w.PlayerControllers().Set(e.ID, p)
}

// GetPlayerController returns a player controller component.
func (w *World) GetPlayerController(e Entity) *components.PlayerController {
	if w == nil {
		return nil
	}
	if p, ok := w.PlayerControllers().Get(e.ID).(*components.PlayerController); ok {
		return p
	}
	return nil
}

// SetInput attaches an input state component.
func (w *World) SetInput(e Entity, i *components.InputState) {
	if w == nil || i == nil {
		return
	}
	w.Inputs().Set(e.ID, i)
}

// GetInput returns an input state component.
func (w *World) GetInput(e Entity) *components.InputState {
	if w == nil {
		return nil
	}
	if i, ok := w.Inputs().Get(e.ID).(*components.InputState); ok {
		return i
	}
	return nil
}

// SetSwarmUnit attaches a swarm unit component.
func (w *World) SetSwarmUnit(e Entity, u *components.SwarmUnit) {
	if w == nil || u == nil {
		return
	}
	w.SwarmUnits().Set(e.ID, u)
}

// GetSwarmUnit returns a swarm unit component.
func (w *World) GetSwarmUnit(e Entity) *components.SwarmUnit {
	if w == nil {
		return nil
	}
	if u, ok := w.SwarmUnits().Get(e.ID).(*components.SwarmUnit); ok {
		return u
	}
	return nil
}

// SetProjectile attaches a projectile component.
func (w *World) SetProjectile(e Entity, p *components.Projectile) {
	if w == nil || p == nil {
		return
	}
	w.Projectiles().Set(e.ID, p)
}

// GetProjectile returns a projectile component.
func (w *World) GetProjectile(e Entity) *components.Projectile {
	if w == nil {
		return nil
	}
	if p, ok := w.Projectiles().Get(e.ID).(*components.Projectile); ok {
		return p
	}
	return nil
}

// RemoveComponents detaches every component attached to id.
func (w *World) RemoveComponents(id int) {
	if w == nil {
		return
	}
	w.Transforms().Remove(id)
	w.Velocities().Remove(id)
	w.Healths().Remove(id)
	w.PlayerControllers().Remove(id)
	w.Inputs().Remove(id)
	w.SwarmUnits().Remove(id)
	w.Projectiles().Remove(id)
}
