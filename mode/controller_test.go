package mode

import (
	"math/rand"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hvail/terminal-echo/arena"
	"github.com/hvail/terminal-echo/common"
	"github.com/hvail/terminal-echo/config"
	"github.com/hvail/terminal-echo/ecs"
	"github.com/hvail/terminal-echo/ecs/components"
	"github.com/hvail/terminal-echo/ecs/systems"
	"github.com/hvail/terminal-echo/effect"
	"github.com/hvail/terminal-echo/input"
	"github.com/hvail/terminal-echo/state"
)

type stubPuzzle struct {
	handled  int
	resolved bool
}

func (s *stubPuzzle) HandleInput(in *input.State) { s.handled++ }
func (s *stubPuzzle) Draw(dst *ebiten.Image)      {}
func (s *stubPuzzle) Resolved() bool              { return s.resolved }

type fixture struct {
	ctrl   *Controller
	world  *ecs.World
	player ecs.Entity
	arena  *arena.Arena
	flags  *state.Flags
	cfg    *config.Config
}

func newFixture(t *testing.T, mut func(*config.Config)) *fixture {
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

	flags := state.NewFlags()
	fx := effect.NewSystem(rand.New(rand.NewSource(1)))
	ar := arena.New(cfg, w, player, fx, rand.New(rand.NewSource(1)))
	hubSys := ecs.NewScheduler(systems.NewPlayerControllerSystem(cfg.Screen.Width, cfg.Screen.Height))

	arenaZone := common.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	ctrl := NewController(flags, w, player, ar, hubSys, arenaZone)
	return &fixture{ctrl: ctrl, world: w, player: player, arena: ar, flags: flags, cfg: cfg}
}

// placePlayer moves the player's footprint to the top-left corner, inside
// the fixture's arena zone.
func (f *fixture) placePlayerInArenaZone() {
	f.world.GetTransform(f.player).Pos.X = 10
	f.world.GetTransform(f.player).Pos.Y = 10
}

func (f *fixture) unlockBoss() {
	f.flags.Set(state.FlagPowerRestored)
	f.flags.Set(state.FlagSecretKnown)
	f.flags.Set(state.FlagRepairDone)
}

func TestIntroAdvancesToHubOnAnyInput(t *testing.T) {
	f := newFixture(t, nil)

	f.ctrl.Update(&input.State{})
	if f.ctrl.Mode() != ModeIntro {
		t.Fatalf("no input should hold the intro, got %s", f.ctrl.Mode())
	}

	f.ctrl.Update(&input.State{Any: true})
	if f.ctrl.Mode() != ModeHub {
		t.Fatalf("any input should advance to the hub, got %s", f.ctrl.Mode())
	}
}

func TestHubMovesPlayerThroughScheduler(t *testing.T) {
	f := newFixture(t, nil)
	f.ctrl.Update(&input.State{Any: true})
	start := f.world.GetTransform(f.player).Pos

	for i := 0; i < 10; i++ {
		f.ctrl.Update(&input.State{MoveX: 1})
	}

	if got := f.world.GetTransform(f.player).Pos; got.X <= start.X {
		t.Fatalf("player should move in the hub, x=%f", got.X)
	}
}

func TestLockedArenaInteractIsNoOp(t *testing.T) {
	f := newFixture(t, nil)
	f.ctrl.Update(&input.State{Any: true})
	f.placePlayerInArenaZone()

	f.ctrl.Update(&input.State{Interact: true})

	if f.ctrl.Mode() != ModeHub {
		t.Fatalf("locked arena door must swallow the interact, got %s", f.ctrl.Mode())
	}
	if got := len(f.arena.Units()); got != 0 {
		t.Fatalf("locked door must not touch the arena, %d units spawned", got)
	}
}

func TestUnlockedArenaInteractEntersFreshEncounter(t *testing.T) {
	f := newFixture(t, nil)
	f.ctrl.Update(&input.State{Any: true})
	f.placePlayerInArenaZone()
	f.unlockBoss()

	f.ctrl.Update(&input.State{Interact: true})

	if f.ctrl.Mode() != ModeArena {
		t.Fatalf("expected arena mode, got %s", f.ctrl.Mode())
	}
	if f.arena.Phase() != arena.PhaseIntro {
		t.Fatalf("entry must reset the encounter, phase=%s", f.arena.Phase())
	}
	if got := len(f.arena.Units()); got != f.cfg.Swarm.Count {
		t.Fatalf("expected %d units on entry, got %d", f.cfg.Swarm.Count, got)
	}
}

func TestHubReevaluatesFlagsEachTick(t *testing.T) {
	f := newFixture(t, nil)
	f.ctrl.Update(&input.State{Any: true})
	f.unlockBoss()

	if f.flags.BossUnlocked() {
		t.Fatalf("gate must wait for a reevaluation")
	}
	f.ctrl.Update(&input.State{})
	if !f.flags.BossUnlocked() {
		t.Fatalf("hub tick should reevaluate the gate")
	}
}

func TestPuzzleRoutingAndCancel(t *testing.T) {
	f := newFixture(t, nil)
	stub := &stubPuzzle{}
	zone := common.Rect{X: 200, Y: 200, Width: 50, Height: 50}
	f.ctrl.AddPuzzle(ModeCipher, stub, zone)

	f.ctrl.Update(&input.State{Any: true})
	f.world.GetTransform(f.player).Pos.X = 210
	f.world.GetTransform(f.player).Pos.Y = 210

	f.ctrl.Update(&input.State{Interact: true})
	if f.ctrl.Mode() != ModeCipher {
		t.Fatalf("interact in zone should open the puzzle, got %s", f.ctrl.Mode())
	}
	if f.ctrl.ActivePuzzle() != stub {
		t.Fatalf("active puzzle mismatch")
	}

	f.ctrl.Update(&input.State{Fire: true})
	if stub.handled != 1 {
		t.Fatalf("puzzle should receive the tick's input, handled=%d", stub.handled)
	}

	f.ctrl.Update(&input.State{Cancel: true})
	if f.ctrl.Mode() != ModeHub {
		t.Fatalf("cancel should return to the hub, got %s", f.ctrl.Mode())
	}
}

func TestArenaCancelRouting(t *testing.T) {
	enterArena := func(t *testing.T, f *fixture) {
		f.ctrl.Update(&input.State{Any: true})
		f.placePlayerInArenaZone()
		f.unlockBoss()
		f.ctrl.Update(&input.State{})
		f.ctrl.Update(&input.State{Interact: true})
		if f.ctrl.Mode() != ModeArena {
			t.Fatalf("setup: expected arena mode, got %s", f.ctrl.Mode())
		}
	}

	t.Run("countdown_and_fight_cannot_be_abandoned", func(t *testing.T) {
		f := newFixture(t, nil)
		enterArena(t, f)

		f.ctrl.Update(&input.State{Cancel: true})
		if f.ctrl.Mode() != ModeArena {
			t.Fatalf("cancel during countdown must be ignored, got %s", f.ctrl.Mode())
		}
	})

	t.Run("win_returns_to_hub", func(t *testing.T) {
		f := newFixture(t, func(cfg *config.Config) {
			cfg.Swarm.Count = 1
			cfg.Arena.IntroTicks = 1
		})
		enterArena(t, f)
		f.ctrl.Update(&input.State{}) // countdown tick -> fight
		// Drop the last unit; the next fight tick compacts it and wins.
		f.world.GetHealth(f.arena.Units()[0]).Current = 0
		f.ctrl.Update(&input.State{})
		if f.arena.Phase() != arena.PhaseWin {
			t.Fatalf("setup: expected win, got %s", f.arena.Phase())
		}

		f.ctrl.Update(&input.State{Cancel: true})
		if f.ctrl.Mode() != ModeHub {
			t.Fatalf("cancel after a win should return to the hub, got %s", f.ctrl.Mode())
		}
	})

	t.Run("game_over_resets_and_returns_to_hub", func(t *testing.T) {
		f := newFixture(t, func(cfg *config.Config) {
			cfg.Arena.IntroTicks = 1
		})
		enterArena(t, f)
		f.ctrl.Update(&input.State{}) // countdown tick -> fight
		f.world.GetHealth(f.player).Current = 0
		f.ctrl.Update(&input.State{})
		if f.arena.Phase() != arena.PhaseGameOver {
			t.Fatalf("setup: expected game over, got %s", f.arena.Phase())
		}

		f.ctrl.Update(&input.State{Cancel: true})
		if f.ctrl.Mode() != ModeHub {
			t.Fatalf("cancel after a loss should return to the hub, got %s", f.ctrl.Mode())
		}
		if f.arena.Phase() != arena.PhaseIntro {
			t.Fatalf("loss exit is an explicit reset, phase=%s", f.arena.Phase())
		}
		if got := f.world.GetHealth(f.player).Current; got != f.cfg.Player.Health {
			t.Fatalf("reset should heal the player, hp=%d", got)
		}
	})
}
