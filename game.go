package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"github.com/hvail/terminal-echo/arena"
	"github.com/hvail/terminal-echo/config"
	"github.com/hvail/terminal-echo/ecs"
	"github.com/hvail/terminal-echo/ecs/components"
	"github.com/hvail/terminal-echo/ecs/systems"
	"github.com/hvail/terminal-echo/effect"
	"github.com/hvail/terminal-echo/input"
	"github.com/hvail/terminal-echo/mode"
	"github.com/hvail/terminal-echo/puzzle"
	"github.com/hvail/terminal-echo/render"
	"github.com/hvail/terminal-echo/state"
)

type Game struct {
	frames int
	debug  bool
	paused bool

	cfg     *config.Config
	cfgPath string
	watcher *config.Watcher

	in     *input.Keyboard
	flags  *state.Flags
	world  *ecs.World
	player ecs.Entity
	fx     *effect.System
	arena  *arena.Arena
	hub    *Hub
	ctrl   *mode.Controller

	pauseUI *ebitenui.UI

	cursorX, cursorY float64
}

// NewGame wires the whole station together from a tuning set.
func NewGame(cfg *config.Config, cfgPath string, seed int64, debug bool) *Game {
	rng := rand.New(rand.NewSource(seed))

	world := ecs.NewWorld()
	player := spawnPlayer(world, cfg)

	flags := state.NewFlags()
	fx := effect.NewSystem(rng)
	ar := arena.New(cfg, world, player, fx, rng)
	hub := NewHub(cfg)

	hubSys := ecs.NewScheduler(
		systems.NewPlayerControllerSystem(cfg.Screen.Width, cfg.Screen.Height),
	)
	ctrl := mode.NewController(flags, world, player, ar, hubSys, hub.ArenaZone())

	w := cfg.Screen.Width
	h := cfg.Screen.Height
	ctrl.AddPuzzle(mode.ModePowerGrid, puzzle.NewSequence(w, h, flags, fx), hub.ConsoleZone())
	ctrl.AddPuzzle(mode.ModeCipher, puzzle.NewCipher(w, h, flags), hub.DoorZone("server"))
	ctrl.AddPuzzle(mode.ModeBotany, puzzle.NewIdentify(w, h, flags, fx, rng), hub.DoorZone("botany"))
	ctrl.AddPuzzle(mode.ModeCouplers, puzzle.NewToggles(w, h, flags), hub.DoorZone("engineering"))

	g := &Game{
		debug:   debug,
		cfg:     cfg,
		cfgPath: cfgPath,
		in:      input.NewKeyboard(),
		flags:   flags,
		world:   world,
		player:  player,
		fx:      fx,
		arena:   ar,
		hub:     hub,
		ctrl:    ctrl,
	}
	g.pauseUI = NewPauseUI(g)

	if cfgPath != "" {
		watcher, err := config.NewWatcher(cfgPath)
		if err != nil {
			log.Printf("config watch disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}
	return g
}

func spawnPlayer(w *ecs.World, cfg *config.Config) ecs.Entity {
	e := w.CreateEntity()
	w.SetTransform(e, &components.Transform{Pos: cp.Vector{
		X: (cfg.Screen.Width - cfg.Player.Size) / 2,
		Y: cfg.Screen.Height - 100,
	}})
	w.SetVelocity(e, &components.Velocity{})
	w.SetInput(e, &components.InputState{})
	w.SetHealth(e, components.NewHealth(cfg.Player.Health))
	w.SetPlayerController(e, &components.PlayerController{
		Accel:    cfg.Player.Accel,
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
		Width:    cfg.Player.Size,
		Height:   cfg.Player.Size,
	})
	return e
}

func (g *Game) Update() error {
	g.frames++

	g.drainConfigEvents()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.in.Update()
	st := g.in.State()
	g.cursorX = st.CursorX
	g.cursorY = st.CursorY

	g.ctrl.Update(st)
	g.fx.Update()
	return nil
}

// drainConfigEvents applies queued tuning reloads at the tick boundary.
func (g *Game) drainConfigEvents() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			reload = true
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("config watch: %v", err)
			}
		default:
			if reload {
				g.reloadConfig()
			}
			return
		}
	}
}

func (g *Game) reloadConfig() {
	cfg, err := config.Load(g.cfgPath)
	if err != nil {
		log.Printf("config reload failed, keeping previous tuning: %v", err)
		return
	}
	*g.cfg = *cfg

	// Movement tuning is cached on the player component.
	if ctrl := g.world.GetPlayerController(g.player); ctrl != nil {
		ctrl.Accel = cfg.Player.Accel
		ctrl.Friction = cfg.Player.Friction
		ctrl.MaxSpeed = cfg.Player.MaxSpeed
	}
	log.Printf("config reloaded from %s", g.cfgPath)
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.ctrl.Mode() {
	case mode.ModeIntro:
		g.drawIntro(screen)
	case mode.ModeHub:
		g.drawHub(screen)
	case mode.ModeArena:
		g.drawArena(screen)
	default:
		if p := g.ctrl.ActivePuzzle(); p != nil {
			p.Draw(screen)
		}
	}

	g.drawParticles(screen)
	render.CRTOverlay(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Mode: %s", g.frames, ebiten.ActualFPS(), g.ctrl.Mode()))
	}
}

func (g *Game) drawHub(screen *ebiten.Image) {
	tr := g.world.GetTransform(g.player)
	ctrl := g.world.GetPlayerController(g.player)
	if tr == nil || ctrl == nil {
		return
	}
	g.hub.Draw(screen, g.flags, ctrl.Bounds(tr.Pos))
	g.drawPlayer(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.Screen.Width), int(g.cfg.Screen.Height)
}

// Close releases the config watcher.
func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}
