// Package puzzle holds the station's interactive consoles. Each puzzle is a
// self-contained surface: it consumes a tick's input, draws itself, and on
// resolution latches exactly one flag. None of them touch the ECS world.
package puzzle

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/hvail/terminal-echo/common"
	"github.com/hvail/terminal-echo/effect"
	"github.com/hvail/terminal-echo/input"
	"github.com/hvail/terminal-echo/render"
	"github.com/hvail/terminal-echo/state"
)

const failResetTicks = 60

type pad struct {
	name string
	rect common.Rect
	clr  color.RGBA
}

// Sequence is the power grid calibration console: four colored pads that
// must be pressed in the order the riddle encodes.
type Sequence struct {
	width, height float64
	flags         *state.Flags
	fx            *effect.System

	pads      []pad
	order     []string
	pressed   []string
	resolved  bool
	failTicks int
}

// NewSequence lays out the pads for a screen of the given size.
func NewSequence(width, height float64, flags *state.Flags, fx *effect.System) *Sequence {
	s := &Sequence{
		width:  width,
		height: height,
		flags:  flags,
		fx:     fx,
		order:  []string{"blue", "yellow", "green", "red"},
	}
	colors := map[string]color.RGBA{
		"blue":   render.Blue,
		"yellow": render.Yellow,
		"green":  render.Green,
		"red":    render.Red,
	}
	startX := (width-4*140)/2 + 20
	for i, name := range s.order {
		s.pads = append(s.pads, pad{
			name: name,
			rect: common.Rect{X: startX + float64(i)*140, Y: height - 180, Width: 100, Height: 100},
			clr:  colors[name],
		})
	}
	return s
}

// Resolved reports whether the grid has been calibrated.
func (s *Sequence) Resolved() bool {
	return s != nil && s.resolved
}

// HandleInput consumes one tick of input.
func (s *Sequence) HandleInput(in *input.State) {
	if s == nil || in == nil {
		return
	}
	if s.failTicks > 0 {
		s.failTicks--
		if s.failTicks == 0 {
			s.pressed = s.pressed[:0]
		}
		return
	}
	if s.resolved || !in.Fire {
		return
	}
	for _, p := range s.pads {
		if !p.rect.Contains(in.CursorX, in.CursorY) {
			continue
		}
		s.pressed = append(s.pressed, p.name)
		if s.fx != nil {
			s.fx.Spawn(cp.Vector{X: in.CursorX, Y: in.CursorY}, effect.TagResolve, 10, 2, 1)
		}
		if len(s.pressed) == len(s.order) {
			if s.matches() {
				s.resolved = true
				s.flags.Set(state.FlagPowerRestored)
			} else {
				s.failTicks = failResetTicks
			}
		}
		return
	}
}

func (s *Sequence) matches() bool {
	for i, name := range s.order {
		if s.pressed[i] != name {
			return false
		}
	}
	return true
}

// Draw renders the console.
func (s *Sequence) Draw(dst *ebiten.Image) {
	if s == nil {
		return
	}
	vector.DrawFilledRect(dst, 0, 0, float32(s.width), float32(s.height), color.RGBA{10, 5, 5, 255}, false)
	render.Text(dst, "POWER GRID CALIBRATION", s.width/2, 40, render.Cyan, text.AlignCenter)
	riddle := []string{
		`"The sky comes before the sun...`,
		`...but the grass must never touch the blood.`,
		`The sun is not last."`,
	}
	for i, line := range riddle {
		render.Text(dst, line, s.width/2, 90+float64(i)*30, render.White, text.AlignCenter)
	}
	for _, p := range s.pads {
		clr := p.clr
		if !s.resolved && !s.isPressed(p.name) {
			clr = render.WithAlpha(p.clr, 85)
		}
		render.GlowRect(dst, p.rect, clr)
	}
	switch {
	case s.resolved:
		render.Text(dst, "SYSTEM RESTORED", s.width/2, s.height-40, render.Green, text.AlignCenter)
	case s.failTicks > 0:
		render.Text(dst, "ERROR - RESETTING", s.width/2, s.height-40, render.Red, text.AlignCenter)
	}
}

func (s *Sequence) isPressed(name string) bool {
	for _, p := range s.pressed {
		if p == name {
			return true
		}
	}
	return false
}
