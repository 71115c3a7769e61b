package puzzle

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hvail/terminal-echo/common"
	"github.com/hvail/terminal-echo/input"
	"github.com/hvail/terminal-echo/render"
	"github.com/hvail/terminal-echo/state"
)

// Toggles is the engineering console: three couplers that must end up in the
// up, down, up pattern.
type Toggles struct {
	width, height float64
	flags         *state.Flags

	rects    []common.Rect
	up       []bool
	want     []bool
	resolved bool
}

// NewToggles builds the console for a screen of the given size.
func NewToggles(width, height float64, flags *state.Flags) *Toggles {
	t := &Toggles{
		width:  width,
		height: height,
		flags:  flags,
		up:     make([]bool, 3),
		want:   []bool{true, false, true},
	}
	startX := (width - (3*100 + 2*60)) / 2
	for i := 0; i < 3; i++ {
		t.rects = append(t.rects, common.Rect{X: startX + float64(i)*160, Y: height/2 - 60, Width: 100, Height: 120})
	}
	return t
}

// Resolved reports whether the couplers match the target pattern.
func (t *Toggles) Resolved() bool {
	return t != nil && t.resolved
}

// HandleInput consumes one tick of input.
func (t *Toggles) HandleInput(in *input.State) {
	if t == nil || in == nil || t.resolved || !in.Fire {
		return
	}
	for i, r := range t.rects {
		if !r.Contains(in.CursorX, in.CursorY) {
			continue
		}
		t.up[i] = !t.up[i]
		if t.matches() {
			t.resolved = true
			t.flags.Set(state.FlagRepairDone)
		}
		return
	}
}

func (t *Toggles) matches() bool {
	for i := range t.want {
		if t.up[i] != t.want[i] {
			return false
		}
	}
	return true
}

// Draw renders the console.
func (t *Toggles) Draw(dst *ebiten.Image) {
	if t == nil {
		return
	}
	vector.DrawFilledRect(dst, 0, 0, float32(t.width), float32(t.height), color.RGBA{20, 10, 10, 255}, false)
	render.Text(dst, "ENGINEERING: COUPLERS (UP, DOWN, UP)", t.width/2, 40, render.Red, text.AlignCenter)
	for i, r := range t.rects {
		clr := render.Red
		label := "DN"
		if t.up[i] {
			clr = render.Cyan
			label = "UP"
		}
		render.GlowRect(dst, r, clr)
		render.Text(dst, label, r.CenterX(), r.Y+r.Height+20, render.White, text.AlignCenter)
	}
	if t.resolved {
		render.Text(dst, "DRIVE STABLE", t.width/2, t.height-60, render.Green, text.AlignCenter)
	}
}
