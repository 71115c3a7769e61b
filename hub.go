package main

import (
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hvail/terminal-echo/common"
	"github.com/hvail/terminal-echo/config"
	"github.com/hvail/terminal-echo/render"
	"github.com/hvail/terminal-echo/state"
)

// Hub is the central station room: the doors to the puzzle consoles, the
// power console, and the airlock that opens once every system is back up.
type Hub struct {
	width, height float64

	doors        map[string]common.Rect
	bossDoor     common.Rect
	powerConsole common.Rect

	gridOffset float64
	alertBlink int
}

// NewHub lays the room out for the configured screen.
func NewHub(cfg *config.Config) *Hub {
	w := cfg.Screen.Width
	h := cfg.Screen.Height
	return &Hub{
		width:  w,
		height: h,
		doors: map[string]common.Rect{
			"botany":      {X: 80, Y: 40, Width: 120, Height: 10},
			"server":      {X: w/2 - 60, Y: 40, Width: 120, Height: 10},
			"engineering": {X: w - 200, Y: 40, Width: 120, Height: 10},
		},
		bossDoor:     common.Rect{X: w/2 - 100, Y: h - 60, Width: 200, Height: 20},
		powerConsole: common.Rect{X: w - 140, Y: h/2 - 25, Width: 80, Height: 50},
	}
}

// DoorZone returns the interaction zone around a named door.
func (h *Hub) DoorZone(name string) common.Rect {
	return h.doors[name].Inflate(10, 50)
}

// ConsoleZone returns the interaction zone around the power console.
func (h *Hub) ConsoleZone() common.Rect {
	return h.powerConsole.Inflate(10, 10)
}

// ArenaZone returns the interaction zone around the airlock.
func (h *Hub) ArenaZone() common.Rect {
	return h.bossDoor.Inflate(10, 30)
}

// Hint returns the interact prompt for the player's position, or "".
func (h *Hub) Hint(playerBounds common.Rect, flags *state.Flags) string {
	for name, door := range h.doors {
		if playerBounds.Intersects(door.Inflate(10, 50)) {
			return "[E] ENTER " + strings.ToUpper(name)
		}
	}
	if flags.BossUnlocked() && playerBounds.Intersects(h.ArenaZone()) {
		return "[E] ENTER AIRLOCK"
	}
	if playerBounds.Intersects(h.ConsoleZone()) {
		return "[E] POWER CONSOLE"
	}
	return ""
}

// Draw renders the room. The player and particles are drawn by the caller
// on top.
func (h *Hub) Draw(dst *ebiten.Image, flags *state.Flags, playerBounds common.Rect) {
	vector.DrawFilledRect(dst, 0, 0, float32(h.width), float32(h.height), render.Background, false)

	h.gridOffset += 0.5
	grid := render.GridLine
	if flags.BossUnlocked() {
		pulse := uint8(40 + 20*math.Sin(h.gridOffset*0.2))
		grid = color.RGBA{pulse, 0, 0, 255}
	}
	render.Grid(dst, h.gridOffset, grid)

	for name, door := range h.doors {
		vector.DrawFilledRect(dst, float32(door.X), float32(door.Y), float32(door.Width), float32(door.Height), render.Blue, false)
		render.Text(dst, strings.ToUpper(name), door.CenterX(), door.Y+door.Height+40, render.White, text.AlignCenter)
	}

	if flags.BossUnlocked() {
		h.alertBlink++
		clr := render.Red
		if (h.alertBlink/30)%2 != 0 {
			clr = color.RGBA{100, 0, 0, 255}
		}
		render.GlowRect(dst, h.bossDoor, clr)
		render.Text(dst, "!!! AIRLOCK OPEN !!!", h.bossDoor.CenterX(), h.bossDoor.Y-30, render.Red, text.AlignCenter)
		render.Text(dst, "ENTITIES DETECTED", h.bossDoor.CenterX(), h.bossDoor.Y-10, render.Red, text.AlignCenter)
	}

	consoleClr := render.Yellow
	status := "PWR: OFF"
	if flags.Get(state.FlagPowerRestored) {
		consoleClr = render.Green
		status = "PWR: ON"
	}
	render.GlowRect(dst, h.powerConsole, consoleClr)
	render.Text(dst, status, h.powerConsole.CenterX(), h.powerConsole.Y-20, consoleClr, text.AlignCenter)

	if hint := h.Hint(playerBounds, flags); hint != "" {
		render.Text(dst, hint, playerBounds.CenterX(), playerBounds.Y-20, render.Cyan, text.AlignCenter)
	}
}
