// Command soak runs the combat arena headless for a fixed number of ticks,
// driving it with scripted input and checking the simulation invariants every
// step. It exists to shake out determinism and state bugs without a display.
package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/hvail/terminal-echo/arena"
	"github.com/hvail/terminal-echo/config"
	"github.com/hvail/terminal-echo/ecs"
	"github.com/hvail/terminal-echo/ecs/components"
	"github.com/hvail/terminal-echo/effect"
)

func main() {
	ticks := flag.Int("ticks", 36000, "ticks to simulate (60 per second)")
	seed := flag.Int64("seed", 1, "simulation seed")
	fights := flag.Int("fights", 0, "max encounters to run (0 = until ticks run out)")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	cfg, err := config.Default()
	if err != nil {
		log.Fatal(err)
	}

	world := ecs.NewWorld()
	player := world.CreateEntity()
	world.SetTransform(player, &components.Transform{})
	world.SetVelocity(player, &components.Velocity{})
	world.SetInput(player, &components.InputState{})
	world.SetHealth(player, components.NewHealth(cfg.Player.Health))
	world.SetPlayerController(player, &components.PlayerController{
		Accel:    cfg.Player.Accel,
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
		Width:    cfg.Player.Size,
		Height:   cfg.Player.Size,
	})

	fx := effect.NewSystem(rng)
	ar := arena.New(cfg, world, player, fx, rng)
	ar.Reset()

	var wins, losses, shots int
	for tick := 0; tick < *ticks; tick++ {
		// Strafe on a slow square wave and fire at the lead unit twice a second.
		moveX := 1.0
		if (tick/120)%2 == 1 {
			moveX = -1
		}
		if ar.Phase() == arena.PhaseFight && tick%30 == 0 {
			if units := ar.Units(); len(units) > 0 {
				if tr := world.GetTransform(units[0]); tr != nil {
					ar.Fire(tr.Pos)
					shots++
				}
			}
		}

		ar.Tick(moveX, 0)
		fx.Update()
		check(world, player, ar, tick)

		switch ar.Phase() {
		case arena.PhaseWin:
			wins++
			ar.Reset()
		case arena.PhaseGameOver:
			losses++
			ar.Reset()
		}
		if *fights > 0 && wins+losses >= *fights {
			break
		}
	}

	log.Printf("soak done: shots=%d wins=%d losses=%d particles=%d", shots, wins, losses, fx.Len())
}

func check(world *ecs.World, player ecs.Entity, ar *arena.Arena, tick int) {
	hp := world.GetHealth(player)
	if hp == nil {
		log.Fatalf("tick %d: player lost health component", tick)
	}
	if hp.Current < 0 || hp.Current > hp.Max {
		log.Fatalf("tick %d: player hp out of range: %d/%d", tick, hp.Current, hp.Max)
	}
	if hp.IFrames < 0 {
		log.Fatalf("tick %d: negative invulnerability window: %d", tick, hp.IFrames)
	}
	for _, e := range ar.Units() {
		if !world.IsAlive(e) {
			log.Fatalf("tick %d: destroyed unit still tracked", tick)
		}
		uhp := world.GetHealth(e)
		if uhp == nil || uhp.Current <= 0 {
			log.Fatalf("tick %d: dead unit survived compaction", tick)
		}
	}
	for _, e := range ar.Projectiles() {
		pr := world.GetProjectile(e)
		if pr == nil || !pr.Active {
			log.Fatalf("tick %d: inactive projectile survived compaction", tick)
		}
	}
	if ar.Phase().Terminal() && len(ar.Units()) > 0 && ar.Phase() == arena.PhaseWin {
		log.Fatalf("tick %d: win with %d units alive", tick, len(ar.Units()))
	}
}
