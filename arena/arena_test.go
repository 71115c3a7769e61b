package arena

import (
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/hvail/terminal-echo/config"
	"github.com/hvail/terminal-echo/ecs"
	"github.com/hvail/terminal-echo/ecs/components"
	"github.com/hvail/terminal-echo/effect"
)

func newTestArena(t *testing.T, mut func(*config.Config)) (*Arena, *ecs.World, ecs.Entity) {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("Default config: %v", err)
	}
	if mut != nil {
		mut(cfg)
	}

	w := ecs.NewWorld()
	player := w.CreateEntity()
	w.SetTransform(player, &components.Transform{})
	w.SetVelocity(player, &components.Velocity{})
	w.SetInput(player, &components.InputState{})
	w.SetHealth(player, components.NewHealth(cfg.Player.Health))
	w.SetPlayerController(player, &components.PlayerController{
		Accel:    cfg.Player.Accel,
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
		Width:    cfg.Player.Size,
		Height:   cfg.Player.Size,
	})

	fx := effect.NewSystem(rand.New(rand.NewSource(1)))
	return New(cfg, w, player, fx, rand.New(rand.NewSource(1))), w, player
}

// pinUnit parks a unit at pos and strips its motion so collision scenarios
// stay put across ticks.
func pinUnit(t *testing.T, w *ecs.World, e ecs.Entity, pos cp.Vector) {
	t.Helper()
	tr := w.GetTransform(e)
	unit := w.GetSwarmUnit(e)
	if tr == nil || unit == nil {
		t.Fatalf("unit %v missing components", e)
	}
	tr.Pos = pos
	unit.Speed = 0
	unit.Wobble = 0
}

func enterFight(t *testing.T, a *Arena) {
	t.Helper()
	a.Reset()
	for i := 0; i < 10000 && a.Phase() == PhaseIntro; i++ {
		a.Tick(0, 0)
	}
	if a.Phase() != PhaseFight {
		t.Fatalf("expected fight after countdown, got %s", a.Phase())
	}
}

func playerCenter(w *ecs.World, player ecs.Entity) cp.Vector {
	return w.GetPlayerController(player).Center(w.GetTransform(player).Pos)
}

func TestResetSpawnsSwarmAndHealsPlayer(t *testing.T) {
	a, w, player := newTestArena(t, nil)

	hp := w.GetHealth(player)
	hp.Current = 1
	hp.IFrames = 30

	a.Reset()

	if got := len(a.Units()); got != a.cfg.Swarm.Count {
		t.Fatalf("expected %d units after reset, got %d", a.cfg.Swarm.Count, got)
	}
	if a.Phase() != PhaseIntro {
		t.Fatalf("expected intro after reset, got %s", a.Phase())
	}
	if a.IntroTicksLeft() != a.cfg.Arena.IntroTicks {
		t.Fatalf("expected countdown %d, got %d", a.cfg.Arena.IntroTicks, a.IntroTicksLeft())
	}
	if hp.Current != hp.Max || hp.IFrames != 0 {
		t.Fatalf("expected full heal, got hp=%d iframes=%d", hp.Current, hp.IFrames)
	}
	wantPos := cp.Vector{X: (a.cfg.Screen.Width - a.cfg.Player.Size) / 2, Y: a.cfg.Screen.Height - 100}
	if got := w.GetTransform(player).Pos; got != wantPos {
		t.Fatalf("expected player at %v, got %v", wantPos, got)
	}
	for _, e := range a.Units() {
		uhp := w.GetHealth(e)
		if uhp == nil || uhp.Current != a.cfg.Swarm.Health {
			t.Fatalf("unit spawned without full health")
		}
		if !w.IsAlive(e) {
			t.Fatalf("unit handle dead right after spawn")
		}
	}
}

func TestResetReplacesPreviousPopulation(t *testing.T) {
	a, w, _ := newTestArena(t, nil)
	a.Reset()
	old := append([]ecs.Entity(nil), a.Units()...)

	a.Reset()

	if got := len(a.Units()); got != a.cfg.Swarm.Count {
		t.Fatalf("expected %d units, got %d", a.cfg.Swarm.Count, got)
	}
	for _, e := range old {
		if w.IsAlive(e) {
			t.Fatalf("stale unit handle %v survived reset", e)
		}
	}
}

func TestIntroCountdownIgnoresMovementThenStartsFight(t *testing.T) {
	a, w, player := newTestArena(t, func(cfg *config.Config) {
		cfg.Arena.IntroTicks = 3
	})
	a.Reset()
	start := w.GetTransform(player).Pos

	a.Tick(1, 1)
	a.Tick(1, 1)
	if a.Phase() != PhaseIntro {
		t.Fatalf("countdown ended early: %s", a.Phase())
	}
	if got := w.GetTransform(player).Pos; got != start {
		t.Fatalf("player moved during countdown: %v -> %v", start, got)
	}

	a.Tick(0, 0)
	if a.Phase() != PhaseFight {
		t.Fatalf("expected fight after 3 ticks, got %s", a.Phase())
	}
	if a.IntroTicksLeft() != 0 {
		t.Fatalf("countdown should be drained, got %d", a.IntroTicksLeft())
	}
}

func TestContactDamageOncePerInvulnWindow(t *testing.T) {
	a, w, player := newTestArena(t, func(cfg *config.Config) {
		cfg.Swarm.Count = 1
		cfg.Arena.IntroTicks = 1
	})
	enterFight(t, a)
	pinUnit(t, w, a.Units()[0], playerCenter(w, player))

	hp := w.GetHealth(player)
	for i := 0; i < 3; i++ {
		a.Tick(0, 0)
	}

	if hp.Current != hp.Max-1 {
		t.Fatalf("expected exactly one contact hit over 3 overlapping ticks, hp=%d", hp.Current)
	}
	// Armed on the first tick, decremented once on each of the next two.
	if want := a.cfg.Player.InvulnTicks - 2; hp.IFrames != want {
		t.Fatalf("expected iframes %d, got %d", want, hp.IFrames)
	}
}

func TestContactDamageResumesAfterWindow(t *testing.T) {
	a, w, player := newTestArena(t, func(cfg *config.Config) {
		cfg.Swarm.Count = 1
		cfg.Arena.IntroTicks = 1
		cfg.Player.InvulnTicks = 5
	})
	enterFight(t, a)
	pinUnit(t, w, a.Units()[0], playerCenter(w, player))

	hp := w.GetHealth(player)
	// Tick 1 lands the first hit; ticks 2-6 drain the window; tick 7 lands
	// the second hit.
	for i := 0; i < 7; i++ {
		a.Tick(0, 0)
	}
	if hp.Current != hp.Max-2 {
		t.Fatalf("expected second hit after window drained, hp=%d", hp.Current)
	}
}

func TestProjectileHitsFirstUnitInInsertionOrder(t *testing.T) {
	a, w, player := newTestArena(t, func(cfg *config.Config) {
		cfg.Swarm.Count = 2
		cfg.Arena.IntroTicks = 1
	})
	enterFight(t, a)

	target := playerCenter(w, player).Add(cp.Vector{Y: -60})
	first := a.Units()[0]
	second := a.Units()[1]
	pinUnit(t, w, first, target)
	pinUnit(t, w, second, target)

	a.Fire(target)
	if got := len(a.Projectiles()); got != 1 {
		t.Fatalf("expected one live projectile, got %d", got)
	}
	for i := 0; i < 4; i++ {
		a.Tick(0, 0)
	}

	if got := w.GetHealth(first).Current; got != a.cfg.Swarm.Health-a.cfg.Projectile.Damage {
		t.Fatalf("first unit should take the hit, hp=%d", got)
	}
	if got := w.GetHealth(second).Current; got != a.cfg.Swarm.Health {
		t.Fatalf("second overlapping unit must be untouched, hp=%d", got)
	}
	if got := len(a.Projectiles()); got != 0 {
		t.Fatalf("spent projectile should be compacted away, got %d", got)
	}
}

func TestFireIgnoredOutsideFight(t *testing.T) {
	a, _, _ := newTestArena(t, nil)
	a.Reset()

	a.Fire(cp.Vector{X: 100, Y: 100})

	if got := len(a.Projectiles()); got != 0 {
		t.Fatalf("fire during intro must be a no-op, got %d projectiles", got)
	}
}

func TestProjectileLeavingPlayfieldIsRemoved(t *testing.T) {
	a, w, player := newTestArena(t, func(cfg *config.Config) {
		cfg.Swarm.Count = 1
		cfg.Arena.IntroTicks = 1
	})
	enterFight(t, a)
	// Park the unit far from the shot's path.
	pinUnit(t, w, a.Units()[0], cp.Vector{X: 30, Y: 30})

	a.Fire(playerCenter(w, player).Add(cp.Vector{Y: 100}))
	shot := a.Projectiles()[0]
	for i := 0; i < 60 && len(a.Projectiles()) > 0; i++ {
		a.Tick(0, 0)
	}

	if len(a.Projectiles()) != 0 {
		t.Fatalf("projectile should deactivate at the boundary and be compacted")
	}
	if w.IsAlive(shot) {
		t.Fatalf("compacted projectile entity should be destroyed")
	}
}

func TestLastUnitDownWinsEncounter(t *testing.T) {
	a, w, player := newTestArena(t, func(cfg *config.Config) {
		cfg.Swarm.Count = 1
		cfg.Swarm.Health = 2
		cfg.Arena.IntroTicks = 1
	})
	enterFight(t, a)

	target := playerCenter(w, player).Add(cp.Vector{Y: -60})
	unit := a.Units()[0]
	pinUnit(t, w, unit, target)

	a.Fire(target)
	for i := 0; i < 4; i++ {
		a.Tick(0, 0)
	}

	if a.Phase() != PhaseWin {
		t.Fatalf("expected win once the swarm is empty, got %s", a.Phase())
	}
	if len(a.Units()) != 0 {
		t.Fatalf("win with %d units still tracked", len(a.Units()))
	}
	if w.IsAlive(unit) {
		t.Fatalf("dead unit entity should be destroyed during compaction")
	}
}

func TestWinFiresExactlyOnceOnLastRemoval(t *testing.T) {
	a, w, _ := newTestArena(t, func(cfg *config.Config) {
		cfg.Arena.IntroTicks = 1
	})
	enterFight(t, a)
	if got := len(a.Units()); got != 15 {
		t.Fatalf("expected the default swarm of 15, got %d", got)
	}

	wins := 0
	for len(a.Units()) > 0 {
		// Drop one unit per tick; compaction removes it the same tick.
		w.GetHealth(a.Units()[0]).Current = 0
		before := a.Phase()
		a.Tick(0, 0)
		if before != PhaseWin && a.Phase() == PhaseWin {
			wins++
		}
		if len(a.Units()) > 0 && a.Phase() != PhaseFight {
			t.Fatalf("phase left fight with %d units alive: %s", len(a.Units()), a.Phase())
		}
	}

	if wins != 1 {
		t.Fatalf("win must fire exactly once, fired %d times", wins)
	}
	if a.Phase() != PhaseWin {
		t.Fatalf("expected win after the last removal, got %s", a.Phase())
	}
}

func TestPlayerDownEntersGameOverAndFreezes(t *testing.T) {
	a, w, player := newTestArena(t, func(cfg *config.Config) {
		cfg.Swarm.Count = 1
		cfg.Arena.IntroTicks = 1
	})
	enterFight(t, a)
	unit := a.Units()[0]
	pinUnit(t, w, unit, playerCenter(w, player))
	w.GetHealth(player).Current = 1

	a.Tick(0, 0)
	if a.Phase() != PhaseGameOver {
		t.Fatalf("expected game over, got %s", a.Phase())
	}

	pos := w.GetTransform(unit).Pos
	hp := w.GetHealth(player).Current
	for i := 0; i < 5; i++ {
		a.Tick(1, 1)
	}
	if a.Phase() != PhaseGameOver {
		t.Fatalf("terminal phase must hold without an external reset, got %s", a.Phase())
	}
	if got := w.GetTransform(unit).Pos; got != pos {
		t.Fatalf("simulation advanced while frozen: %v -> %v", pos, got)
	}
	if got := w.GetHealth(player).Current; got != hp {
		t.Fatalf("player health changed while frozen: %d -> %d", hp, got)
	}
}

func TestWinBeatsPlayerDownOnSameTick(t *testing.T) {
	a, w, player := newTestArena(t, func(cfg *config.Config) {
		cfg.Swarm.Count = 1
		cfg.Swarm.Health = 2
		cfg.Arena.IntroTicks = 1
	})
	enterFight(t, a)

	// Close enough to hurt the player this tick, and close enough for a
	// point-blank shot to kill it the same tick.
	target := playerCenter(w, player).Add(cp.Vector{Y: -20})
	pinUnit(t, w, a.Units()[0], target)
	w.GetHealth(player).Current = 1

	a.Fire(target)
	a.Tick(0, 0)

	if a.Phase() != PhaseWin {
		t.Fatalf("empty swarm must win even when the player drops the same tick, got %s", a.Phase())
	}
}

func TestResetFromTerminalRestartsEncounter(t *testing.T) {
	a, w, player := newTestArena(t, func(cfg *config.Config) {
		cfg.Swarm.Count = 1
		cfg.Arena.IntroTicks = 1
	})
	enterFight(t, a)
	pinUnit(t, w, a.Units()[0], playerCenter(w, player))
	w.GetHealth(player).Current = 1
	a.Tick(0, 0)
	if a.Phase() != PhaseGameOver {
		t.Fatalf("setup: expected game over, got %s", a.Phase())
	}

	a.Reset()

	if a.Phase() != PhaseIntro {
		t.Fatalf("reset should restart at intro, got %s", a.Phase())
	}
	if got := w.GetHealth(player).Current; got != a.cfg.Player.Health {
		t.Fatalf("reset should fully heal the player, hp=%d", got)
	}
	if got := len(a.Units()); got != a.cfg.Swarm.Count {
		t.Fatalf("reset should respawn the swarm, got %d units", got)
	}
}

func TestSpawnPlacementAndTuningRanges(t *testing.T) {
	a, w, _ := newTestArena(t, nil)
	a.Reset()

	m := a.cfg.Swarm.SpawnMargin
	for _, e := range a.Units() {
		pos := w.GetTransform(e).Pos
		unit := w.GetSwarmUnit(e)
		if pos.X < m || pos.X > a.cfg.Screen.Width-m || pos.Y < m || pos.Y > a.cfg.Screen.Height/2 {
			t.Fatalf("unit spawned off the perimeter band: %v", pos)
		}
		if unit.Speed < a.cfg.Swarm.SpeedMin || unit.Speed > a.cfg.Swarm.SpeedMax {
			t.Fatalf("unit speed %f outside [%f, %f]", unit.Speed, a.cfg.Swarm.SpeedMin, a.cfg.Swarm.SpeedMax)
		}
	}
}

func TestIdenticalSeedsProduceIdenticalEncounters(t *testing.T) {
	run := func() []cp.Vector {
		a, w, _ := newTestArena(t, func(cfg *config.Config) {
			cfg.Arena.IntroTicks = 1
		})
		a.Reset()
		for i := 0; i < 120; i++ {
			a.Tick(1, 0)
		}
		var out []cp.Vector
		for _, e := range a.Units() {
			out = append(out, w.GetTransform(e).Pos)
		}
		return out
	}

	first := run()
	second := run()
	if len(first) != len(second) {
		t.Fatalf("population diverged: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("unit %d diverged: %v vs %v", i, first[i], second[i])
		}
	}
}
