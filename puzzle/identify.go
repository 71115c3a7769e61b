package puzzle

import (
	"fmt"
	"image/color"
	"math/rand"

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

const (
	identifyCorrect = "C"
	sporeCount      = 50
)

type tank struct {
	name string
	rect common.Rect
}

type spore struct {
	x, y, speed float64
}

// Identify is the bio-lab console: three specimen tanks, one of which shows
// the behavior the player has to single out.
type Identify struct {
	width, height float64
	flags         *state.Flags
	fx            *effect.System

	tanks    []tank
	spores   []spore
	resolved bool
	message  string
}

// NewIdentify builds the lab for a screen of the given size. rng seeds the
// spore field; nil gets a fixed layout.
func NewIdentify(width, height float64, flags *state.Flags, fx *effect.System, rng *rand.Rand) *Identify {
	id := &Identify{width: width, height: height, flags: flags, fx: fx}
	startX := (width - (3*120 + 2*80)) / 2
	for i, name := range []string{"A", "B", "C"} {
		id.tanks = append(id.tanks, tank{
			name: name,
			rect: common.Rect{X: startX + float64(i)*200, Y: height/2 - 100, Width: 120, Height: 200},
		})
	}
	for i := 0; i < sporeCount; i++ {
		s := spore{x: float64(i) * width / sporeCount, y: float64(i) * height / sporeCount, speed: 1}
		if rng != nil {
			s = spore{
				x:     rng.Float64() * width,
				y:     rng.Float64() * height,
				speed: 0.5 + rng.Float64()*1.5,
			}
		}
		id.spores = append(id.spores, s)
	}
	return id
}

// Resolved reports whether the specimen has been identified.
func (id *Identify) Resolved() bool {
	return id != nil && id.resolved
}

// HandleInput consumes one tick of input and drifts the spore field.
func (id *Identify) HandleInput(in *input.State) {
	if id == nil || in == nil {
		return
	}
	for i := range id.spores {
		id.spores[i].y -= id.spores[i].speed
		if id.spores[i].y < 0 {
			id.spores[i].y = id.height
		}
	}
	if id.resolved || !in.Fire {
		return
	}
	for _, t := range id.tanks {
		if !t.rect.Contains(in.CursorX, in.CursorY) {
			continue
		}
		center := cp.Vector{X: t.rect.CenterX(), Y: t.rect.CenterY()}
		if t.name == identifyCorrect {
			id.resolved = true
			id.flags.Set(state.FlagSecretKnown)
			id.message = "MATCH CONFIRMED: PREDICTIVE ALGORITHM DETECTED."
			if id.fx != nil {
				id.fx.Spawn(center, effect.TagResolve, 30, 3, 1)
			}
		} else {
			id.message = fmt.Sprintf("SPECIMEN %s: NEGATIVE. STANDARD BEHAVIOR.", t.name)
			if id.fx != nil {
				id.fx.Spawn(center, effect.TagError, 10, 2, 1)
			}
		}
		return
	}
}

// Draw renders the lab.
func (id *Identify) Draw(dst *ebiten.Image) {
	if id == nil {
		return
	}
	vector.DrawFilledRect(dst, 0, 0, float32(id.width), float32(id.height), color.RGBA{5, 20, 10, 255}, false)
	for _, s := range id.spores {
		vector.DrawFilledCircle(dst, float32(s.x), float32(s.y), 2, color.RGBA{40, 80, 50, 255}, false)
	}
	render.Text(dst, "BIO-LAB: SUBJECT IDENTIFICATION", id.width/2, 40, render.Green, text.AlignCenter)
	for _, t := range id.tanks {
		clr := render.Cyan
		if t.name == identifyCorrect && id.resolved {
			clr = render.Green
		}
		vector.DrawFilledRect(dst, float32(t.rect.X), float32(t.rect.Y), float32(t.rect.Width), float32(t.rect.Height), color.RGBA{0, 20, 10, 255}, false)
		vector.StrokeRect(dst, float32(t.rect.X), float32(t.rect.Y), float32(t.rect.Width), float32(t.rect.Height), 2, clr, false)
		render.Text(dst, t.name, t.rect.CenterX(), t.rect.Y-20, clr, text.AlignCenter)
	}
	if id.message != "" {
		clr := render.Red
		if id.resolved {
			clr = render.Green
		}
		render.Text(dst, id.message, id.width/2, id.height-50, clr, text.AlignCenter)
	}
}
