// Package arena hosts the swarm encounter: the unit population, the
// projectile list, collision resolution, and the encounter phase machine.
package arena

import (
	"math"
	"math/rand"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/hvail/terminal-echo/config"
	"github.com/hvail/terminal-echo/ecs"
	"github.com/hvail/terminal-echo/ecs/components"
	"github.com/hvail/terminal-echo/ecs/systems"
	"github.com/hvail/terminal-echo/effect"
)

// Arena owns the swarm population and projectile list. Both are kept as
// ordered slices compacted in place, so projectile-vs-unit scans see a
// deterministic insertion order, and unit/projectile data lives in the shared
// world as components.
type Arena struct {
	cfg   *config.Config
	world *ecs.World
	fx    *effect.System
	rng   *rand.Rand

	player      ecs.Entity
	units       []ecs.Entity
	projectiles []ecs.Entity

	phase     Phase
	introLeft int

	playerCtrl *systems.PlayerControllerSystem
	healths    *systems.HealthSystem
	swarm      *systems.SwarmSystem
	shots      *systems.ProjectileSystem
}

// New creates an arena over the shared world. The player entity is owned by
// the mode controller and only mutated here while the arena is the active
// subsystem. A nil rng falls back to a time seed.
func New(cfg *config.Config, w *ecs.World, player ecs.Entity, fx *effect.System, rng *rand.Rand) *Arena {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Arena{
		cfg:        cfg,
		world:      w,
		fx:         fx,
		rng:        rng,
		player:     player,
		playerCtrl: systems.NewPlayerControllerSystem(cfg.Screen.Width, cfg.Screen.Height),
		healths:    systems.NewHealthSystem(),
		swarm:      systems.NewSwarmSystem(player),
		shots:      systems.NewProjectileSystem(cfg.Screen.Width, cfg.Screen.Height),
	}
}

// Phase returns the current encounter phase.
func (a *Arena) Phase() Phase {
	if a == nil {
		return PhaseIntro
	}
	return a.phase
}

// IntroTicksLeft returns the remaining intro countdown.
func (a *Arena) IntroTicksLeft() int {
	if a == nil {
		return 0
	}
	return a.introLeft
}

// Units returns the live swarm entities in insertion order. Read-only.
func (a *Arena) Units() []ecs.Entity {
	if a == nil {
		return nil
	}
	return a.units
}

// Projectiles returns the projectile entities in insertion order. Read-only.
func (a *Arena) Projectiles() []ecs.Entity {
	if a == nil {
		return nil
	}
	return a.projectiles
}

// Reset rebuilds the encounter: destroys any previous population, spawns the
// configured swarm at perimeter positions, repositions and fully heals the
// player, and restarts the intro countdown.
func (a *Arena) Reset() {
	if a == nil {
		return
	}
	for _, e := range a.units {
		a.world.RemoveComponents(e.ID)
		a.world.DestroyEntity(e)
	}
	a.units = a.units[:0]
	for _, e := range a.projectiles {
		a.world.RemoveComponents(e.ID)
		a.world.DestroyEntity(e)
	}
	a.projectiles = a.projectiles[:0]

	for i := 0; i < a.cfg.Swarm.Count; i++ {
		a.units = append(a.units, a.spawnUnit())
	}

	if tr := a.world.GetTransform(a.player); tr != nil {
		ctrl := a.world.GetPlayerController(a.player)
		size := 0.0
		if ctrl != nil {
			size = ctrl.Width
		}
		tr.Pos = cp.Vector{X: (a.cfg.Screen.Width - size) / 2, Y: a.cfg.Screen.Height - 100}
	}
	if vel := a.world.GetVelocity(a.player); vel != nil {
		vel.V = cp.Vector{}
	}
	if hp := a.world.GetHealth(a.player); hp != nil {
		hp.HealFull()
	}

	a.phase = PhaseIntro
	a.introLeft = a.cfg.Arena.IntroTicks
}

// Fire spawns one projectile from the player's center toward target and
// emits a recoil burst. Ignored outside the fight phase.
func (a *Arena) Fire(target cp.Vector) {
	if a == nil || a.phase != PhaseFight {
		return
	}
	tr := a.world.GetTransform(a.player)
	ctrl := a.world.GetPlayerController(a.player)
	if tr == nil || ctrl == nil {
		return
	}
	from := ctrl.Center(tr.Pos)
	angle := target.Sub(from).ToAngle()
	e := systems.SpawnProjectile(a.world, from, angle, a.cfg.Projectile.Speed, a.cfg.Projectile.Radius)
	a.projectiles = append(a.projectiles, e)
	a.fx.Spawn(from, effect.TagRecoil, 5, 1, 1)
}

// Tick advances the encounter by one simulation step. moveX/moveY are the
// held movement directions routed here by the mode controller; they only
// reach the player during the fight phase. Win and game-over freeze the
// simulation until an external transition or reset.
func (a *Arena) Tick(moveX, moveY float64) {
	if a == nil {
		return
	}
	switch a.phase {
	case PhaseIntro:
		a.introLeft--
		if a.introLeft <= 0 {
			a.introLeft = 0
			if next, ok := a.phase.Transition(EventCountdownDone); ok {
				a.phase = next
			}
		}
	case PhaseFight:
		a.tickFight(moveX, moveY)
	}
}

// tickFight runs the fixed fight order: player movement, countdown tick,
// swarm step, player contact, projectile step, projectile hits, compaction,
// terminal check. Collision always sees this tick's positions, and a unit
// that dies this tick is gone before the win check runs.
func (a *Arena) tickFight(moveX, moveY float64) {
	if in := a.world.GetInput(a.player); in != nil {
		in.MoveX = moveX
		in.MoveY = moveY
	}
	a.playerCtrl.Update(a.world)
	a.healths.Update(a.world)

	a.swarm.Update(a.world)
	a.resolvePlayerContacts()
	a.shots.Update(a.world)
	a.resolveProjectileHits()
	a.compact()
	a.checkTerminal()
}

// resolvePlayerContacts applies contact damage from any unit whose bounding
// circle overlaps the player's footprint. The invulnerability window armed by
// the first contact blocks the rest, so at most one hit lands per tick.
func (a *Arena) resolvePlayerContacts() {
	tr := a.world.GetTransform(a.player)
	ctrl := a.world.GetPlayerController(a.player)
	hp := a.world.GetHealth(a.player)
	if tr == nil || ctrl == nil || hp == nil {
		return
	}
	box := ctrl.Bounds(tr.Pos)

	for _, ue := range a.units {
		unit := a.world.GetSwarmUnit(ue)
		utr := a.world.GetTransform(ue)
		if unit == nil || utr == nil {
			continue
		}
		if !box.IntersectsCircle(utr.Pos.X, utr.Pos.Y, unit.Radius) {
			continue
		}
		if !hp.Vulnerable() {
			continue
		}
		if hp.ApplyDamage(1) {
			hp.StartIFrames(a.cfg.Player.InvulnTicks)
			a.fx.Spawn(ctrl.Center(tr.Pos), effect.TagPlayerHit, 20, 4, 1)
		}
	}
}

// resolveProjectileHits scans live units in insertion order for each active
// projectile and damages the first unit in range. First match only: one
// projectile hurts at most one unit per tick, then deactivates.
func (a *Arena) resolveProjectileHits() {
	for _, pe := range a.projectiles {
		proj := a.world.GetProjectile(pe)
		if proj == nil || !proj.Active {
			continue
		}
		ptr := a.world.GetTransform(pe)
		if ptr == nil {
			continue
		}

		for _, ue := range a.units {
			unit := a.world.GetSwarmUnit(ue)
			uhp := a.world.GetHealth(ue)
			utr := a.world.GetTransform(ue)
			if unit == nil || uhp == nil || utr == nil || !uhp.IsAlive() {
				continue
			}
			if ptr.Pos.Distance(utr.Pos) > unit.Radius+a.cfg.Projectile.HitMargin {
				continue
			}
			uhp.ApplyDamage(a.cfg.Projectile.Damage)
			a.fx.Spawn(ptr.Pos, effect.TagUnitHit, 8, 2, 1)
			proj.Active = false
			break
		}
	}
}

// compact filters both ordered collections in place: dead units get a death
// burst and are destroyed, inactive projectiles are destroyed. Filtering
// preserves insertion order for the survivors.
func (a *Arena) compact() {
	liveUnits := a.units[:0]
	for _, ue := range a.units {
		hp := a.world.GetHealth(ue)
		if hp != nil && hp.IsAlive() {
			liveUnits = append(liveUnits, ue)
			continue
		}
		if utr := a.world.GetTransform(ue); utr != nil {
			a.fx.Spawn(utr.Pos, effect.TagUnitDeath, 30, 5, 2)
		}
		a.world.RemoveComponents(ue.ID)
		a.world.DestroyEntity(ue)
	}
	a.units = liveUnits

	liveShots := a.projectiles[:0]
	for _, pe := range a.projectiles {
		if proj := a.world.GetProjectile(pe); proj != nil && proj.Active {
			liveShots = append(liveShots, pe)
			continue
		}
		a.world.RemoveComponents(pe.ID)
		a.world.DestroyEntity(pe)
	}
	a.projectiles = liveShots
}

// checkTerminal evaluates the end conditions. An empty swarm wins even if the
// player also dropped this tick; a repeated check in a terminal phase is a
// no-op because the transition table rejects it.
func (a *Arena) checkTerminal() {
	if len(a.units) == 0 {
		if next, ok := a.phase.Transition(EventAllUnitsDown); ok {
			a.phase = next
		}
		return
	}
	if hp := a.world.GetHealth(a.player); hp != nil && hp.Current <= 0 {
		if next, ok := a.phase.Transition(EventPlayerDown); ok {
			a.phase = next
		}
	}
}

// spawnUnit places one swarm unit on the upper perimeter band with a speed
// drawn once from the configured range and a randomized weave phase.
func (a *Arena) spawnUnit() ecs.Entity {
	m := a.cfg.Swarm.SpawnMargin
	w := a.cfg.Screen.Width
	h := a.cfg.Screen.Height

	var pos cp.Vector
	switch a.rng.Intn(3) {
	case 0:
		pos = cp.Vector{X: m + a.rng.Float64()*(w-2*m), Y: m}
	case 1:
		pos = cp.Vector{X: m, Y: m + a.rng.Float64()*(h/2-m)}
	default:
		pos = cp.Vector{X: w - m, Y: m + a.rng.Float64()*(h/2-m)}
	}

	e := a.world.CreateEntity()
	a.world.SetTransform(e, &components.Transform{Pos: pos})
	a.world.SetSwarmUnit(e, &components.SwarmUnit{
		Speed:     a.cfg.Swarm.SpeedMin + a.rng.Float64()*(a.cfg.Swarm.SpeedMax-a.cfg.Swarm.SpeedMin),
		Phase:     a.rng.Float64() * 2 * math.Pi,
		PhaseStep: a.cfg.Swarm.PhaseStep,
		Wobble:    a.cfg.Swarm.Wobble,
		Radius:    a.cfg.Swarm.Radius,
	})
	a.world.SetHealth(e, components.NewHealth(a.cfg.Swarm.Health))
	return e
}
