// Package mode owns the top-level finite-state machine of the game: which
// surface (intro, hub, a puzzle, the arena) consumes input and renders on a
// given tick. The Controller is the only writer of the active mode.
package mode

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/hvail/terminal-echo/arena"
	"github.com/hvail/terminal-echo/common"
	"github.com/hvail/terminal-echo/ecs"
	"github.com/hvail/terminal-echo/input"
	"github.com/hvail/terminal-echo/state"
)

// Mode identifies one top-level surface.
type Mode int

const (
	ModeIntro Mode = iota
	ModeHub
	ModePowerGrid
	ModeCipher
	ModeBotany
	ModeCouplers
	ModeArena
)

func (m Mode) String() string {
	switch m {
	case ModeIntro:
		return "intro"
	case ModeHub:
		return "hub"
	case ModePowerGrid:
		return "power_grid"
	case ModeCipher:
		return "cipher"
	case ModeBotany:
		return "botany"
	case ModeCouplers:
		return "couplers"
	case ModeArena:
		return "arena"
	default:
		return "unknown"
	}
}

// Puzzle is a self-contained interactive surface the controller can hand a
// tick to. Implementations write their completion flag themselves; the
// controller only routes input and rendering.
type Puzzle interface {
	HandleInput(in *input.State)
	Draw(dst *ebiten.Image)
	Resolved() bool
}

type trigger struct {
	zone common.Rect
	mode Mode
}

// Controller routes each tick to the active surface and applies the legal
// mode transitions.
type Controller struct {
	mode    Mode
	flags   *state.Flags
	world   *ecs.World
	player  ecs.Entity
	arena   *arena.Arena
	hubSys  *ecs.Scheduler
	puzzles map[Mode]Puzzle

	triggers  []trigger
	arenaZone common.Rect
}

// NewController starts in ModeIntro. arenaZone is the hub region whose
// interact action enters the arena once the flags unlock it.
func NewController(flags *state.Flags, w *ecs.World, player ecs.Entity, a *arena.Arena, hubSys *ecs.Scheduler, arenaZone common.Rect) *Controller {
	return &Controller{
		mode:      ModeIntro,
		flags:     flags,
		world:     w,
		player:    player,
		arena:     a,
		hubSys:    hubSys,
		puzzles:   make(map[Mode]Puzzle),
		arenaZone: arenaZone,
	}
}

// AddPuzzle registers a puzzle surface and the hub zone that opens it.
func (c *Controller) AddPuzzle(m Mode, p Puzzle, zone common.Rect) {
	if c == nil || p == nil {
		return
	}
	c.puzzles[m] = p
	c.triggers = append(c.triggers, trigger{zone: zone, mode: m})
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode {
	if c == nil {
		return ModeIntro
	}
	return c.mode
}

// ActivePuzzle returns the puzzle owning the current tick, or nil.
func (c *Controller) ActivePuzzle() Puzzle {
	if c == nil {
		return nil
	}
	return c.puzzles[c.mode]
}

// Update hands the tick's input to the active surface and applies any
// resulting mode transition.
func (c *Controller) Update(in *input.State) {
	if c == nil || in == nil {
		return
	}
	switch c.mode {
	case ModeIntro:
		if in.Any {
			c.mode = ModeHub
		}
	case ModeHub:
		c.updateHub(in)
	case ModeArena:
		c.updateArena(in)
	default:
		if p := c.puzzles[c.mode]; p != nil {
			p.HandleInput(in)
		}
		if in.Cancel {
			c.flags.Reevaluate()
			c.mode = ModeHub
		}
	}
}

func (c *Controller) updateHub(in *input.State) {
	if inp := c.world.GetInput(c.player); inp != nil {
		inp.MoveX = in.MoveX
		inp.MoveY = in.MoveY
	}
	c.hubSys.Update(c.world)
	c.flags.Reevaluate()

	if !in.Interact {
		return
	}
	bounds, ok := c.playerBounds()
	if !ok {
		return
	}
	for _, t := range c.triggers {
		if t.zone.Intersects(bounds) {
			c.mode = t.mode
			return
		}
	}
	if c.arenaZone.Intersects(bounds) && c.flags.BossUnlocked() {
		// Entering the arena always starts a fresh encounter.
		c.arena.Reset()
		c.mode = ModeArena
	}
	// A locked arena door swallows the interact.
}

func (c *Controller) updateArena(in *input.State) {
	if in.Cancel {
		switch c.arena.Phase() {
		case arena.PhaseWin:
			c.mode = ModeHub
			return
		case arena.PhaseGameOver:
			// Leaving a lost fight is an explicit reset request; the next
			// entry through the hub door starts clean regardless.
			c.arena.Reset()
			c.mode = ModeHub
			return
		}
		// The countdown and the fight itself cannot be abandoned.
	}
	if in.Fire {
		c.arena.Fire(cp.Vector{X: in.CursorX, Y: in.CursorY})
	}
	c.arena.Tick(in.MoveX, in.MoveY)
}

func (c *Controller) playerBounds() (common.Rect, bool) {
	tr := c.world.GetTransform(c.player)
	ctrl := c.world.GetPlayerController(c.player)
	if tr == nil || ctrl == nil {
		return common.Rect{}, false
	}
	return ctrl.Bounds(tr.Pos), true
}
